package calendar

import (
	"time"

	"github.com/pairduty/roster/backend/internal/domain"
)

const (
	LayoutDashed = "02-01-2006" // DD-MM-YYYY，日历格子与结对日的键格式
	LayoutDotted = "02.01.2006" // DD.MM.YYYY，休息日数据使用的格式
	LayoutISO    = "2006-01-02" // YYYY-MM-DD，排班窗口与结对区间使用的格式
)

// ParseDashed 解析 DD-MM-YYYY，失败时返回零值，由调用方按缺失处理
func ParseDashed(s string) (time.Time, bool) {
	t, err := time.Parse(LayoutDashed, s)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// ParseDotted 解析 DD.MM.YYYY
func ParseDotted(s string) (time.Time, bool) {
	t, err := time.Parse(LayoutDotted, s)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// ParseISODate 解析 YYYY-MM-DD，同时兼容带时间部分的 ISO 时间戳
func ParseISODate(s string) (time.Time, bool) {
	if t, err := time.Parse(LayoutISO, s); err == nil {
		return t, true
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t.UTC(), true
	}
	// 上游偶尔会给不带时区的 ISO 时间戳
	if t, err := time.Parse("2006-01-02T15:04:05", s); err == nil {
		return t, true
	}
	return time.Time{}, false
}

// DatesBetween 返回 [start, end] 闭区间内逐天展开的 DD-MM-YYYY 字符串。
// start == end 时返回单个元素，start > end 时返回空切片，永远不会 panic。
func DatesBetween(start, end time.Time) []string {
	dates := []string{}
	if start.IsZero() || end.IsZero() {
		return dates
	}

	start = truncateToDay(start)
	end = truncateToDay(end)

	for cur := start; !cur.After(end); cur = cur.AddDate(0, 0, 1) {
		dates = append(dates, cur.Format(LayoutDashed))
	}

	return dates
}

// DatesBetweenStrings 是 DatesBetween 的字符串入口，
// 兼容两类调用方使用的格式（DD.MM.YYYY、DD-MM-YYYY）以及 ISO 日期，
// 解析失败的一侧按缺失处理，结果为空切片
func DatesBetweenStrings(start, end string) []string {
	parse := func(s string) (time.Time, bool) {
		if t, ok := ParseDotted(s); ok {
			return t, true
		}
		if t, ok := ParseDashed(s); ok {
			return t, true
		}
		return ParseISODate(s)
	}

	startDate, ok := parse(start)
	if !ok {
		return []string{}
	}
	endDate, ok := parse(end)
	if !ok {
		return []string{}
	}

	return DatesBetween(startDate, endDate)
}

// ValidDates 把排班表的 [开始, 结束] 窗口展开为 YYYY-MM-DD 字符串，
// 用于标记落在窗口之外的排班记录
func ValidDates(schedule *domain.Schedule) []string {
	dates := []string{}
	if schedule == nil {
		return dates
	}

	start, ok := ParseISODate(schedule.ScheduleStartDate)
	if !ok {
		return dates
	}
	end, ok := ParseISODate(schedule.ScheduleEndDate)
	if !ok {
		return dates
	}

	for cur := truncateToDay(start); !cur.After(end); cur = cur.AddDate(0, 0, 1) {
		dates = append(dates, cur.Format(LayoutISO))
	}

	return dates
}

func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
