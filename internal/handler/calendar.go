package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/pairduty/roster/backend/internal/calendar"
	"github.com/pairduty/roster/backend/internal/domain"
)

// GetCalendarEvents 返回选中人员（不传 staffId 时为全部人员）的日历事件，
// 以及休息日高亮列表和日历的初始定位日期
func (h *Handler) GetCalendarEvents(w http.ResponseWriter, r *http.Request) {
	schedule := r.Context().Value(ScheduleCtx).(*domain.Schedule)
	staffID := r.URL.Query().Get("staffId")

	events := calendar.ProjectEvents(schedule, staffID)
	highlighted := calendar.HighlightedDates(schedule, staffID)

	// 每个事件附带渲染好的三行文案，前端不用再查人员表
	contents := make([]domain.EventContent, 0, len(events))
	for _, event := range events {
		contents = append(contents, calendar.RenderEventContent(schedule, event))
	}

	initialDate := ""
	if first, ok := calendar.FirstEventDate(schedule); ok {
		initialDate = first.Format(calendar.LayoutISO)
	}

	data := struct {
		Events           []domain.CalendarEvent `json:"events"`
		EventContents    []domain.EventContent  `json:"eventContents"`
		HighlightedDates []string               `json:"highlightedDates"`
		InitialDate      string                 `json:"initialDate,omitempty"`
	}{
		Events:           events,
		EventContents:    contents,
		HighlightedDates: highlighted,
		InitialDate:      initialDate,
	}

	h.successResponse(w, r, "获取日历事件成功", data)
}

func (h *Handler) GetPairDays(w http.ResponseWriter, r *http.Request) {
	schedule := r.Context().Value(ScheduleCtx).(*domain.Schedule)
	staffID := r.URL.Query().Get("staffId")

	idx := calendar.NewPairIndex(schedule)

	h.successResponse(w, r, "获取结对日成功", idx.PairDays(staffID))
}

// GetDayCells 渲染一段日期窗口内每个格子的展示数据。
// from/to 为 YYYY-MM-DD，缺省时使用排班表自己的窗口。
func (h *Handler) GetDayCells(w http.ResponseWriter, r *http.Request) {
	schedule := r.Context().Value(ScheduleCtx).(*domain.Schedule)
	staffID := r.URL.Query().Get("staffId")

	fromParam := r.URL.Query().Get("from")
	toParam := r.URL.Query().Get("to")
	if fromParam == "" {
		fromParam = schedule.ScheduleStartDate
	}
	if toParam == "" {
		toParam = schedule.ScheduleEndDate
	}

	from, ok := calendar.ParseISODate(fromParam)
	if !ok {
		h.errorResponse(w, r, "无效的开始日期")
		return
	}
	to, ok := calendar.ParseISODate(toParam)
	if !ok {
		h.errorResponse(w, r, "无效的结束日期")
		return
	}

	idx := calendar.NewPairIndex(schedule)
	pairDays := idx.PairDays(staffID)
	highlighted := calendar.HighlightedDates(schedule, staffID)
	today := time.Now().UTC().Format(calendar.LayoutISO)

	cells := []domain.DayCell{}
	for _, dateStr := range calendar.DatesBetween(from, to) {
		date, ok := calendar.ParseDashed(dateStr)
		if !ok {
			continue
		}
		isToday := date.Format(calendar.LayoutISO) == today
		cell := calendar.RenderDayCell(pairDays, highlighted, date, strconv.Itoa(date.Day()), isToday)
		cells = append(cells, cell)
	}

	h.successResponse(w, r, "获取日期格子成功", cells)
}
