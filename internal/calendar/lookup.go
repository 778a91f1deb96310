package calendar

import (
	"time"

	"github.com/pairduty/roster/backend/internal/domain"
)

// 以下查找函数都取第一个匹配项，找不到时返回 nil，从不 panic，
// 悬空引用由调用方降级为占位值处理

func ShiftByID(schedule *domain.Schedule, id string) *domain.Shift {
	if schedule == nil {
		return nil
	}
	for i := range schedule.Shifts {
		if schedule.Shifts[i].ID == id {
			return &schedule.Shifts[i]
		}
	}
	return nil
}

func StaffByID(schedule *domain.Schedule, id string) *domain.Staff {
	if schedule == nil {
		return nil
	}
	for i := range schedule.Staffs {
		if schedule.Staffs[i].ID == id {
			return &schedule.Staffs[i]
		}
	}
	return nil
}

func AssignmentByID(schedule *domain.Schedule, id string) *domain.Assignment {
	if schedule == nil {
		return nil
	}
	for i := range schedule.Assignments {
		if schedule.Assignments[i].ID == id {
			return &schedule.Assignments[i]
		}
	}
	return nil
}

// FirstEventDate 按 shiftStart 找出时间上最早的排班记录，用于日历的初始定位。
// 没有任何记录（或时间全部无法解析）时第二个返回值为 false。
func FirstEventDate(schedule *domain.Schedule) (time.Time, bool) {
	if schedule == nil {
		return time.Time{}, false
	}

	var earliest time.Time
	found := false
	for i := range schedule.Assignments {
		t, ok := ParseISODate(schedule.Assignments[i].ShiftStart)
		if !ok {
			continue
		}
		if !found || t.Before(earliest) {
			earliest = t
			found = true
		}
	}

	return earliest, found
}
