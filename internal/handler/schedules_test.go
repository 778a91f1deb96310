package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/pairduty/roster/backend/internal/domain"
)

func doGet(t *testing.T, h *Handler, path string, data any) {
	t.Helper()

	req := httptest.NewRequest(http.MethodGet, path, nil)
	rec := httptest.NewRecorder()
	h.Mux.ServeHTTP(rec, req)

	var resp struct {
		Success bool            `json:"success"`
		Message string          `json:"message"`
		Data    json.RawMessage `json:"data"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("响应不是合法的 JSON: %v", err)
	}
	if !resp.Success {
		t.Fatalf("请求 %s 失败: %s", path, resp.Message)
	}
	if err := json.Unmarshal(resp.Data, data); err != nil {
		t.Fatalf("data 字段无法解析: %v", err)
	}
}

// ════════════════════════════════════════════════════════════
// 人员列表：上游 role 的各种给法在接入时统一解析成展示字符串
// ════════════════════════════════════════════════════════════

func TestGetStaffs_ResolvesRoles(t *testing.T) {
	schedule := &domain.Schedule{
		ScheduleStartDate: "2024-02-01",
		ScheduleEndDate:   "2024-02-28",
		Staffs: []domain.Staff{
			{ID: "s1", Name: "Alice", Role: "值班长"},
			{ID: "s2", Name: "Bob", Role: map[string]any{"name": "护师"}},
			{ID: "s3", Name: "Carol", Role: 3},
			{ID: "s4", Name: "Dave"},
		},
	}
	h, _, _, _ := newTestHandler(t, schedule)

	var items []staffItem
	doGet(t, h, "/schedule/staffs", &items)

	if len(items) != 4 {
		t.Fatalf("期望 4 名人员，实际 %d", len(items))
	}

	wantRoles := []string{"值班长", "护师", "3", "User"}
	for i, item := range items {
		if item.Role != wantRoles[i] {
			t.Fatalf("%s 的 role 期望 %q，实际 %q", item.ID, wantRoles[i], item.Role)
		}
	}
}

func TestGetStaffs_NameFilter(t *testing.T) {
	schedule := &domain.Schedule{
		ScheduleStartDate: "2024-02-01",
		ScheduleEndDate:   "2024-02-28",
		Staffs: []domain.Staff{
			{ID: "s1", Name: "Alice"},
			{ID: "s2", Name: "Bob"},
		},
	}
	h, _, _, _ := newTestHandler(t, schedule)

	var items []staffItem
	doGet(t, h, "/schedule/staffs?q=ali", &items)

	if len(items) != 1 || items[0].ID != "s1" {
		t.Fatalf("模糊过滤应只留下 s1，实际: %v", items)
	}
}

// ════════════════════════════════════════════════════════════
// 日历事件接口：除了事件本体，还要带渲染好的三行文案
// ════════════════════════════════════════════════════════════

func TestGetCalendarEvents_IncludesRenderedContents(t *testing.T) {
	h, _, _, _ := newTestHandler(t, rescheduleScenarioSchedule())

	var data struct {
		Events        []domain.CalendarEvent `json:"events"`
		EventContents []domain.EventContent  `json:"eventContents"`
		InitialDate   string                 `json:"initialDate"`
	}
	doGet(t, h, "/calendar/events?staffId=s1", &data)

	if len(data.Events) != 1 || len(data.EventContents) != 1 {
		t.Fatalf("期望 1 个事件和 1 份文案，实际 %d / %d", len(data.Events), len(data.EventContents))
	}

	content := data.EventContents[0]
	if content.TimeText != "08:00" {
		t.Fatalf("时间行期望 08:00，实际 %q", content.TimeText)
	}
	if content.Title != "早班" {
		t.Fatalf("班次行期望 早班，实际 %q", content.Title)
	}
	if content.StaffName != "Alice" {
		t.Fatalf("人员行期望 Alice，实际 %q", content.StaffName)
	}

	if data.InitialDate != "2024-02-05" {
		t.Fatalf("初始定位日期期望 2024-02-05，实际 %q", data.InitialDate)
	}
}
