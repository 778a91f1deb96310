package utils

import (
	"testing"

	"github.com/pairduty/roster/backend/internal/dataset"
	"github.com/pairduty/roster/backend/internal/domain"
)

func TestValidateScheduleReferences_OK(t *testing.T) {
	// 内置的演示数据必须自身通过校验
	if err := ValidateScheduleReferences(dataset.Default()); err != nil {
		t.Fatalf("演示排班表未通过引用校验: %v", err)
	}
}

func TestValidateScheduleReferences_DanglingStaff(t *testing.T) {
	schedule := dataset.Default()
	schedule.Assignments[0].StaffID = "ghost"

	if err := ValidateScheduleReferences(schedule); err == nil {
		t.Fatal("悬空的人员引用应报错")
	}
}

func TestValidateScheduleReferences_DanglingShift(t *testing.T) {
	schedule := dataset.Default()
	schedule.Assignments[0].ShiftID = "ghost"

	if err := ValidateScheduleReferences(schedule); err == nil {
		t.Fatal("悬空的班次引用应报错")
	}
}

func TestValidateScheduleReferences_DanglingPairTarget(t *testing.T) {
	schedule := dataset.Default()
	schedule.Staffs[0].PairList = append(schedule.Staffs[0].PairList, domain.Pair{
		StaffID: "ghost", StartDate: "2024-01-01", EndDate: "2024-01-02",
	})

	if err := ValidateScheduleReferences(schedule); err == nil {
		t.Fatal("结对声明的悬空引用应报错")
	}
}
