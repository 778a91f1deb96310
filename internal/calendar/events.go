package calendar

import (
	"slices"
	"strings"

	"github.com/pairduty/roster/backend/internal/domain"
)

// 事件背景样式类，按班次在班次列表中的位置取用。
// 位置是负载相关的：两个 id 相同的班次会拿到同一个样式，所以班次列表的顺序不能乱
var bgClasses = []string{
	"bg-one", "bg-two", "bg-three", "bg-four", "bg-five",
	"bg-six", "bg-seven", "bg-eight", "bg-nine", "bg-ten",
	"bg-eleven", "bg-twelve", "bg-thirteen", "bg-fourteen", "bg-fifteen",
	"bg-sixteen", "bg-seventeen", "bg-eighteen", "bg-nineteen", "bg-twenty",
	"bg-twenty-one", "bg-twenty-two", "bg-twenty-three", "bg-twenty-four",
	"bg-twenty-five", "bg-twenty-six", "bg-twenty-seven", "bg-twenty-eight",
	"bg-twenty-nine", "bg-thirty", "bg-thirty-one", "bg-thirty-two",
	"bg-thirty-three", "bg-thirty-four", "bg-thirty-five", "bg-thirty-six",
	"bg-thirty-seven", "bg-thirty-eight", "bg-thirty-nine", "bg-forty",
}

// ProjectEvents 把排班记录投影为日历事件。
// selectedStaffID 为空表示展示所有人员；起止时间戳原样透传，这一层不做时区转换。
func ProjectEvents(schedule *domain.Schedule, selectedStaffID string) []domain.CalendarEvent {
	events := []domain.CalendarEvent{}
	if schedule == nil {
		return events
	}

	validDates := ValidDates(schedule)

	for i := range schedule.Assignments {
		assignment := &schedule.Assignments[i]
		if selectedStaffID != "" && assignment.StaffID != selectedStaffID {
			continue
		}

		title := "Unnamed Shift"
		if shift := ShiftByID(schedule, assignment.ShiftID); shift != nil {
			title = shift.Name
		}

		classIndex := slices.IndexFunc(schedule.Shifts, func(s domain.Shift) bool {
			return s.ID == assignment.ShiftID
		})
		bgClass := ""
		if classIndex >= 0 && classIndex < len(bgClasses) {
			bgClass = bgClasses[classIndex]
		}

		isValidDate := false
		if start, ok := ParseISODate(assignment.ShiftStart); ok {
			isValidDate = slices.Contains(validDates, start.Format(LayoutISO))
		}

		classes := []string{"event"}
		if bgClass != "" {
			classes = append(classes, bgClass)
		}
		if assignment.IsUpdated {
			classes = append(classes, "highlight")
		}
		if !isValidDate {
			classes = append(classes, "invalid-date")
		}

		events = append(events, domain.CalendarEvent{
			ID:     assignment.ID,
			Title:  title,
			Start:  assignment.ShiftStart,
			End:    assignment.ShiftEnd,
			AllDay: false,
			ExtendedProps: domain.EventProps{
				StaffID:   assignment.StaffID,
				ShiftID:   assignment.ShiftID,
				IsUpdated: assignment.IsUpdated,
			},
			ClassName: strings.Join(classes, " "),
		})
	}

	return events
}

// HighlightedDates 求选中人员的休息日与排班窗口的交集，结果为 DD-MM-YYYY。
// 休息日数据使用 DD.MM.YYYY 格式，所以逐天比较前要先换格式。
func HighlightedDates(schedule *domain.Schedule, selectedStaffID string) []string {
	highlighted := []string{}
	if schedule == nil {
		return highlighted
	}

	staff := StaffByID(schedule, selectedStaffID)
	if staff == nil || len(staff.OffDays) == 0 {
		return highlighted
	}

	for _, date := range DatesBetweenStrings(schedule.ScheduleStartDate, schedule.ScheduleEndDate) {
		day, ok := ParseDashed(date)
		if !ok {
			continue
		}
		if slices.Contains(staff.OffDays, day.Format(LayoutDotted)) {
			highlighted = append(highlighted, date)
		}
	}

	return highlighted
}
