package utils

import (
	"fmt"

	"github.com/pairduty/roster/backend/internal/domain"
)

// ValidateScheduleReferences 检查排班表的引用完整性：
// 所有排班记录的 staffId/shiftId 以及结对声明的目标人员都必须存在。
// 渲染路径对悬空引用做降级处理，这个检查只在生成数据时使用，防止一开始就播下坏数据。
func ValidateScheduleReferences(schedule *domain.Schedule) error {
	staffIDs := make(map[string]struct{}, len(schedule.Staffs))
	for _, staff := range schedule.Staffs {
		staffIDs[staff.ID] = struct{}{}
	}
	shiftIDs := make(map[string]struct{}, len(schedule.Shifts))
	for _, shift := range schedule.Shifts {
		shiftIDs[shift.ID] = struct{}{}
	}

	for _, assignment := range schedule.Assignments {
		if _, ok := staffIDs[assignment.StaffID]; !ok {
			return fmt.Errorf("排班记录 %s 引用了不存在的人员 %s", assignment.ID, assignment.StaffID)
		}
		if _, ok := shiftIDs[assignment.ShiftID]; !ok {
			return fmt.Errorf("排班记录 %s 引用了不存在的班次 %s", assignment.ID, assignment.ShiftID)
		}
	}

	for _, staff := range schedule.Staffs {
		for _, pair := range staff.PairList {
			if _, ok := staffIDs[pair.StaffID]; !ok {
				return fmt.Errorf("人员 %s 的结对声明引用了不存在的人员 %s", staff.ID, pair.StaffID)
			}
		}
	}

	return nil
}
