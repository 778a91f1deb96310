package domain

// EventProps: 附加在日历事件上的扩展属性
type EventProps struct {
	StaffID   string `json:"staffId"`
	ShiftID   string `json:"shiftId"`
	IsUpdated bool   `json:"isUpdated"`
}

// CalendarEvent: 由排班记录投影出来的日历事件，起止时间原样透传，不做时区转换
type CalendarEvent struct {
	ID            string     `json:"id"`
	Title         string     `json:"title"`
	Start         string     `json:"start"`
	End           string     `json:"end"`
	AllDay        bool       `json:"allDay"`
	ExtendedProps EventProps `json:"extendedProps"`
	ClassName     string     `json:"className"`
}

// PairDay: 选中人员在某一天与某位同事结对的记录
type PairDay struct {
	Date      string `json:"date"` // DD-MM-YYYY
	Color     string `json:"color"`
	StaffID   string `json:"staffId"`
	StaffName string `json:"staffName"`
}

// DayCell: 单个日期格子的展示数据
type DayCell struct {
	Date           string `json:"date"` // DD-MM-YYYY
	DayNumber      string `json:"dayNumber"`
	IsToday        bool   `json:"isToday"`
	HighlightClass string `json:"highlightClass"`
	Tooltip        string `json:"tooltip,omitempty"`
	BorderColor    string `json:"borderColor,omitempty"`
	IsPairDay      bool   `json:"isPairDay"`
}

// EventContent: 事件格子的三行文案
type EventContent struct {
	TimeText  string `json:"timeText"`
	Title     string `json:"title"`
	StaffName string `json:"staffName"`
}
