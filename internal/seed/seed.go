package seed

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/pairduty/roster/backend/internal/calendar"
	"github.com/pairduty/roster/backend/internal/config"
	"github.com/pairduty/roster/backend/internal/domain"
	"github.com/pairduty/roster/backend/internal/utils"
)

var shiftNames = []string{"早班", "午班", "晚班", "夜班"}

var roleNames = []string{"值班长", "护师", "技师"}

// GenerateSchedule 生成一份随机的演示排班表：
// 人员带休息日和结对声明（有单向声明也有双向声明），排班记录落在排班窗口内，
// 另外故意放一条窗口外的记录，方便前端验证 invalid-date 标记。
func GenerateSchedule(cfg *config.Config) *domain.Schedule {
	start := time.Now().UTC().Truncate(24 * time.Hour)
	end := start.AddDate(0, 0, 27)

	schedule := &domain.Schedule{
		ScheduleID:        "seed-" + utils.GenerateRandomID(3, 3),
		ScheduleStartDate: start.Format(calendar.LayoutISO),
		ScheduleEndDate:   end.Format(calendar.LayoutISO),
	}

	// 班次
	for i, name := range shiftNames {
		schedule.Shifts = append(schedule.Shifts, domain.Shift{
			ID:   fmt.Sprintf("shift-%d", i+1),
			Name: name,
		})
	}

	// 人员
	usedIDs := make(map[string]struct{})
	for i := 0; i < cfg.Seed.StaffCount; i++ {
		name := utils.GenerateRandomChineseName()
		id := utils.GenerateStaffIDFromChineseName(name)
		for {
			if _, exists := usedIDs[id]; !exists {
				break
			}
			id = utils.GenerateStaffIDFromChineseName(name)
		}
		usedIDs[id] = struct{}{}

		staff := domain.Staff{ID: id, Name: name}

		// 一部分人员带职务，形态模仿上游的不固定给法
		switch rand.Intn(4) {
		case 0:
			staff.Role = roleNames[rand.Intn(len(roleNames))]
		case 1:
			staff.Role = rand.Intn(9) + 1
		}

		// 随机休息日，使用 DD.MM.YYYY 格式
		offDayCount := rand.Intn(4)
		for j := 0; j < offDayCount; j++ {
			day := start.AddDate(0, 0, rand.Intn(28))
			staff.OffDays = append(staff.OffDays, day.Format(calendar.LayoutDotted))
		}

		schedule.Staffs = append(schedule.Staffs, staff)
	}

	// 结对声明：大约一半人员声明一段结对区间，声明是单向的，
	// 偶尔也会双向声明同一个对子，覆盖展示层的两条发现路径
	for i := range schedule.Staffs {
		if rand.Intn(2) == 0 {
			continue
		}
		target := rand.Intn(len(schedule.Staffs))
		if target == i {
			continue
		}

		rangeStart := start.AddDate(0, 0, rand.Intn(21))
		rangeEnd := rangeStart.AddDate(0, 0, rand.Intn(5)+1)

		schedule.Staffs[i].PairList = append(schedule.Staffs[i].PairList, domain.Pair{
			StaffID:   schedule.Staffs[target].ID,
			StartDate: rangeStart.Format(calendar.LayoutISO),
			EndDate:   rangeEnd.Format(calendar.LayoutISO),
		})

		if rand.Intn(4) == 0 {
			schedule.Staffs[target].PairList = append(schedule.Staffs[target].PairList, domain.Pair{
				StaffID:   schedule.Staffs[i].ID,
				StartDate: rangeStart.Format(calendar.LayoutISO),
				EndDate:   rangeEnd.Format(calendar.LayoutISO),
			})
		}
	}

	// 排班记录；没有人员时直接返回空排班，避免对空切片取随机下标
	if len(schedule.Staffs) == 0 {
		return schedule
	}
	for i := 0; i < cfg.Seed.AssignmentCount; i++ {
		staff := schedule.Staffs[rand.Intn(len(schedule.Staffs))]
		shiftIndex := rand.Intn(len(schedule.Shifts))

		day := start.AddDate(0, 0, rand.Intn(28))
		if i == 0 {
			// 留一条窗口外的记录
			day = end.AddDate(0, 0, 3)
		}

		startHour := 6 * shiftIndex
		shiftStart := day.Add(time.Duration(startHour) * time.Hour)
		shiftEnd := shiftStart.Add(time.Duration(rand.Intn(4)+4) * time.Hour)

		schedule.Assignments = append(schedule.Assignments, domain.Assignment{
			ID:         fmt.Sprintf("a-%s", utils.GenerateRandomID(4, 4)),
			StaffID:    staff.ID,
			ShiftID:    schedule.Shifts[shiftIndex].ID,
			ShiftStart: shiftStart.Format(time.RFC3339),
			ShiftEnd:   shiftEnd.Format(time.RFC3339),
		})
	}

	return schedule
}
