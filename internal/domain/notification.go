package domain

// AssignmentUpdatedMessage: 拖拽改期后投递到通知队列的消息
type AssignmentUpdatedMessage struct {
	Type string                `json:"type"`
	To   string                `json:"to"`
	Data AssignmentUpdatedData `json:"data"`
}

type AssignmentUpdatedData struct {
	StaffName string `json:"staffName"`
	ShiftName string `json:"shiftName"`
	OldStart  string `json:"oldStart"`
	OldEnd    string `json:"oldEnd"`
	NewStart  string `json:"newStart"`
	NewEnd    string `json:"newEnd"`
}
