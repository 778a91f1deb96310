package domain

import "testing"

func baseSchedule() *Schedule {
	return &Schedule{
		ScheduleID: "t1",
		Assignments: []Assignment{
			{ID: "a1", StaffID: "s1", ShiftID: "sh1", ShiftStart: "2024-01-02T08:00:00Z", ShiftEnd: "2024-01-02T12:00:00Z"},
			{ID: "a2", StaffID: "s2", ShiftID: "sh2", ShiftStart: "2024-01-03T18:00:00Z", ShiftEnd: "2024-01-03T23:00:00Z"},
		},
	}
}

func TestWithAssignmentUpdate_ReplacesByID(t *testing.T) {
	schedule := baseSchedule()

	updated, matched := schedule.WithAssignmentUpdate("a1", "2024-02-10", "2024-02-11")
	if !matched {
		t.Fatal("存在的记录应匹配成功")
	}

	// 按 ID 替换而不是追加
	if len(updated.Assignments) != 2 {
		t.Fatalf("更新后记录数应不变，实际 %d", len(updated.Assignments))
	}

	a1 := updated.Assignments[0]
	if a1.ShiftStart != "2024-02-10" || a1.ShiftEnd != "2024-02-11" {
		t.Fatalf("a1 的起止时间未被替换: %v", a1)
	}
	if !a1.IsUpdated {
		t.Fatal("被改期的记录应带 IsUpdated 标记")
	}

	// 未涉及的记录保持原样
	if updated.Assignments[1] != schedule.Assignments[1] {
		t.Fatalf("a2 不应被修改: %v", updated.Assignments[1])
	}
}

func TestWithAssignmentUpdate_OriginalUntouched(t *testing.T) {
	schedule := baseSchedule()

	_, _ = schedule.WithAssignmentUpdate("a1", "2024-02-10", "2024-02-11")

	if schedule.Assignments[0].ShiftStart != "2024-01-02T08:00:00Z" {
		t.Fatalf("原值不应被修改: %v", schedule.Assignments[0])
	}
	if schedule.Assignments[0].IsUpdated {
		t.Fatal("原值的 IsUpdated 不应被置位")
	}
}

func TestWithAssignmentUpdate_Idempotent(t *testing.T) {
	schedule := baseSchedule()

	first, _ := schedule.WithAssignmentUpdate("a1", "2024-02-10", "2024-02-11")
	second, _ := first.WithAssignmentUpdate("a1", "2024-02-10", "2024-02-11")

	if len(second.Assignments) != len(first.Assignments) {
		t.Fatalf("重复应用相同更新不应新增记录: %d -> %d", len(first.Assignments), len(second.Assignments))
	}
	if second.Assignments[0] != first.Assignments[0] {
		t.Fatalf("重复应用相同更新应得到相同结果:\n%v\n%v", first.Assignments[0], second.Assignments[0])
	}
}

func TestWithAssignmentUpdate_UnknownID(t *testing.T) {
	schedule := baseSchedule()

	updated, matched := schedule.WithAssignmentUpdate("ghost", "2024-02-10", "2024-02-11")
	if matched {
		t.Fatal("不存在的记录不应匹配成功")
	}
	// 返回值仍然可用，只是内容没变
	if len(updated.Assignments) != 2 || updated.Assignments[0].IsUpdated {
		t.Fatalf("未匹配时不应有任何修改: %v", updated.Assignments)
	}
}
