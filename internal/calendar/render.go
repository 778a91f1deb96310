package calendar

import (
	"slices"
	"time"

	"github.com/pairduty/roster/backend/internal/domain"
)

// 日期格子下边框使用的 10 色调色板。
// 注意这套配色和结对引擎的 6 色调色板是两套独立的方案：
// 前者只用于格子边框，由人员 ID 的哈希决定；后者标识具体结对的是谁
var borderPalette = []string{
	"#FF0000", // 红
	"#0000FF", // 蓝
	"#00FF00", // 绿
	"#FF00FF", // 品红
	"#FF9900", // 橙
	"#FFFF00", // 黄
	"#00FFFF", // 青
	"#9900FF", // 紫
	"#FF6600", // 深橙
	"#66FF00", // 黄绿
}

// staffIDHash: 对人员 ID 做 32 位滚动哈希（h = h*31 + ch，允许回绕）
func staffIDHash(id string) int32 {
	var hash int32
	for _, ch := range id {
		hash = (hash << 5) - hash + int32(ch)
	}
	return hash
}

// BorderColorForStaff 把人员 ID 映射到 10 色边框调色板中的固定颜色
func BorderColorForStaff(staffID string) string {
	if staffID == "" {
		staffID = "1"
	}
	hash := staffIDHash(staffID)
	if hash < 0 {
		// MinInt32 取负仍是自身，先 input 到 int64 再取绝对值
		return borderPalette[int(int64(hash)*-1%10)]
	}
	return borderPalette[int(hash)%10]
}

// RenderDayCell 组装单个日期格子的展示数据。
// 结对日查找是对 pairDays 的线性扫描，取第一个匹配（正向关系优先于反向，
// 其次按 PairList 顺序），这是确定的平局裁决而不是错误。
func RenderDayCell(pairDays []domain.PairDay, highlighted []string, date time.Time, dayNumberText string, isToday bool) domain.DayCell {
	dateStr := date.Format(LayoutDashed)

	cell := domain.DayCell{
		Date:      dateStr,
		DayNumber: dayNumberText,
		IsToday:   isToday,
	}

	if slices.Contains(highlighted, dateStr) {
		cell.HighlightClass = "highlighted"
	}

	for i := range pairDays {
		if pairDays[i].Date != dateStr {
			continue
		}
		cell.IsPairDay = true
		cell.Tooltip = "Paired with: " + pairDays[i].StaffName
		cell.BorderColor = BorderColorForStaff(pairDays[i].StaffID)
		break
	}

	return cell
}

// RenderEventContent 组装事件格子的三行文案：时间、班次名、人员名。
// 人员解析失败时名字降级为空串，不影响其余两行。
func RenderEventContent(schedule *domain.Schedule, event domain.CalendarEvent) domain.EventContent {
	content := domain.EventContent{
		Title: event.Title,
	}
	if content.Title == "" {
		content.Title = "Unnamed Event"
	}

	if start, ok := ParseISODate(event.Start); ok {
		content.TimeText = start.Format("15:04")
	}

	if staff := StaffByID(schedule, event.ExtendedProps.StaffID); staff != nil {
		content.StaffName = staff.Name
	}

	return content
}
