package domain

import "errors"

var ErrAssignmentNotFound = errors.New("未找到对应的排班记录")

// Pair: 结对关系，声明在发起方的 PairList 上，展示时按双向关系处理
type Pair struct {
	StaffID   string `json:"staffId"`
	StartDate string `json:"startDate"` // YYYY-MM-DD
	EndDate   string `json:"endDate"`
}

type Staff struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	// 上游的 role 字段形态不固定（字符串、数字或对象），原样接入，
	// 展示前经 ResolveRole 解析成标签化的 StaffRole
	Role     any      `json:"role,omitempty"`
	OffDays  []string `json:"offDays,omitempty"` // DD.MM.YYYY
	PairList []Pair   `json:"pairList,omitempty"`
}

type Shift struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type Assignment struct {
	ID         string `json:"id"`
	StaffID    string `json:"staffId"`
	ShiftID    string `json:"shiftId"`
	ShiftStart string `json:"shiftStart"` // ISO 时间戳
	ShiftEnd   string `json:"shiftEnd"`
	IsUpdated  bool   `json:"isUpdated"`
}

type Schedule struct {
	ScheduleID        string       `json:"scheduleId"`
	ScheduleStartDate string       `json:"scheduleStartDate"` // YYYY-MM-DD
	ScheduleEndDate   string       `json:"scheduleEndDate"`
	Staffs            []Staff      `json:"staffs"`
	Shifts            []Shift      `json:"shifts"`
	Assignments       []Assignment `json:"assignments"`
}

// WithAssignmentUpdate 返回替换了指定排班记录起止时间的新 Schedule，原值不被修改。
// 匹配的记录会被整体替换（而不是追加），并把 IsUpdated 置为 true，
// 因此对同一份数据重复应用相同的更新是幂等的。
func (s *Schedule) WithAssignmentUpdate(id, newStart, newEnd string) (*Schedule, bool) {
	updated := *s
	updated.Assignments = make([]Assignment, len(s.Assignments))
	copy(updated.Assignments, s.Assignments)

	matched := false
	for i := range updated.Assignments {
		if updated.Assignments[i].ID != id {
			continue
		}
		updated.Assignments[i].ShiftStart = newStart
		updated.Assignments[i].ShiftEnd = newEnd
		updated.Assignments[i].IsUpdated = true
		matched = true
	}

	return &updated, matched
}
