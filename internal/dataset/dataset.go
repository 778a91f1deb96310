package dataset

import "github.com/pairduty/roster/backend/internal/domain"

// Default 返回模拟上游接口的固定排班表。
// 每次调用都返回一份新的值，调用方可以放心修改而不会影响后续加载。
func Default() *domain.Schedule {
	return &domain.Schedule{
		ScheduleID:        "demo-2024-01",
		ScheduleStartDate: "2024-01-01",
		ScheduleEndDate:   "2024-01-31",
		Staffs: []domain.Staff{
			{
				ID:      "s1",
				Name:    "王伟",
				Role:    "值班长",
				OffDays: []string{"06.01.2024", "07.01.2024", "20.01.2024"},
				PairList: []domain.Pair{
					{StaffID: "s2", StartDate: "2024-01-08", EndDate: "2024-01-10"},
					{StaffID: "s3", StartDate: "2024-01-15", EndDate: "2024-01-16"},
				},
			},
			{
				ID:   "s2",
				Name: "李静",
				// 上游偶尔把 role 给成对象
				Role:    map[string]any{"name": "护师"},
				OffDays: []string{"13.01.2024", "14.01.2024"},
			},
			{
				ID:      "s3",
				Name:    "张磊",
				Role:    3, // 也可能只给编号
				OffDays: []string{"27.01.2024", "28.01.2024"},
				PairList: []domain.Pair{
					{StaffID: "s2", StartDate: "2024-01-22", EndDate: "2024-01-24"},
				},
			},
		},
		Shifts: []domain.Shift{
			{ID: "sh1", Name: "早班"},
			{ID: "sh2", Name: "午班"},
			{ID: "sh3", Name: "晚班"},
		},
		Assignments: []domain.Assignment{
			{ID: "a1", StaffID: "s1", ShiftID: "sh1", ShiftStart: "2024-01-02T08:00:00Z", ShiftEnd: "2024-01-02T12:00:00Z"},
			{ID: "a2", StaffID: "s1", ShiftID: "sh3", ShiftStart: "2024-01-05T18:00:00Z", ShiftEnd: "2024-01-05T23:00:00Z"},
			{ID: "a3", StaffID: "s2", ShiftID: "sh2", ShiftStart: "2024-01-03T12:00:00Z", ShiftEnd: "2024-01-03T18:00:00Z"},
			{ID: "a4", StaffID: "s2", ShiftID: "sh1", ShiftStart: "2024-01-09T08:00:00Z", ShiftEnd: "2024-01-09T12:00:00Z"},
			{ID: "a5", StaffID: "s3", ShiftID: "sh3", ShiftStart: "2024-01-12T18:00:00Z", ShiftEnd: "2024-01-12T23:00:00Z"},
			{ID: "a6", StaffID: "s3", ShiftID: "sh2", ShiftStart: "2024-02-02T12:00:00Z", ShiftEnd: "2024-02-02T18:00:00Z"},
		},
	}
}
