package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/pairduty/roster/backend/internal/config"
	"github.com/pairduty/roster/backend/internal/domain"
	amqp "github.com/rabbitmq/amqp091-go"
)

// ════════════════════════════════════════════════════════════
// 三个依赖的内存实现，测试不需要真的数据库、redis 和消息队列
// ════════════════════════════════════════════════════════════

type memoryStore struct {
	schedule *domain.Schedule
}

func (s *memoryStore) LoadSchedule() (*domain.Schedule, error) {
	return s.schedule, nil
}

func (s *memoryStore) ApplyAssignmentUpdate(id, newStart, newEnd string) (*domain.Schedule, error) {
	updated, matched := s.schedule.WithAssignmentUpdate(id, newStart, newEnd)
	if !matched {
		return nil, domain.ErrAssignmentNotFound
	}
	s.schedule = updated
	return updated, nil
}

type memoryDedup struct {
	values map[string]string
}

func (d *memoryDedup) LastUpdate(_ context.Context, key string) (string, error) {
	return d.values[key], nil
}

func (d *memoryDedup) MarkUpdated(_ context.Context, key, value string, _ time.Duration) error {
	d.values[key] = value
	return nil
}

type recordingPublisher struct {
	published []amqp.Publishing
	err       error
}

func (p *recordingPublisher) PublishWithContext(_ context.Context, _, _ string, _, _ bool, msg amqp.Publishing) error {
	if p.err != nil {
		return p.err
	}
	p.published = append(p.published, msg)
	return nil
}

func rescheduleScenarioSchedule() *domain.Schedule {
	return &domain.Schedule{
		ScheduleID:        "t-1",
		ScheduleStartDate: "2024-02-01",
		ScheduleEndDate:   "2024-02-28",
		Staffs: []domain.Staff{
			{ID: "s1", Name: "Alice"},
		},
		Shifts: []domain.Shift{
			{ID: "sh1", Name: "早班"},
		},
		Assignments: []domain.Assignment{
			{ID: "a1", StaffID: "s1", ShiftID: "sh1", ShiftStart: "2024-02-05T08:00:00Z", ShiftEnd: "2024-02-05T12:00:00Z"},
		},
	}
}

func newTestHandler(t *testing.T, schedule *domain.Schedule) (*Handler, *memoryStore, *recordingPublisher, *memoryDedup) {
	t.Helper()

	cfg := &config.Config{}
	cfg.Redis.ConnectTimeout = 1
	cfg.Redis.DedupExpiration = 24
	cfg.RabbitMQ.PublishTimeout = 1
	cfg.Email.StaffDomain = "example.com"

	store := &memoryStore{schedule: schedule}
	pub := &recordingPublisher{}
	dedup := &memoryDedup{values: map[string]string{}}

	h, err := NewHandler(cfg, store, pub, dedup)
	if err != nil {
		t.Fatalf("无法创建 handler: %v", err)
	}
	h.RegisterRoutes()

	return h, store, pub, dedup
}

func doReschedule(t *testing.T, h *Handler, id, body string) envelope {
	t.Helper()

	req := httptest.NewRequest(http.MethodPost, "/assignments/"+id+"/reschedule", strings.NewReader(body))
	rec := httptest.NewRecorder()
	h.Mux.ServeHTTP(rec, req)

	var e envelope
	if err := json.Unmarshal(rec.Body.Bytes(), &e); err != nil {
		t.Fatalf("响应不是合法的 JSON: %v", err)
	}
	return e
}

// ════════════════════════════════════════════════════════════
// 单次拖拽：更新生效，恰好投递一条通知
// ════════════════════════════════════════════════════════════

func TestRescheduleAssignment_SingleDrag(t *testing.T) {
	h, store, pub, dedup := newTestHandler(t, rescheduleScenarioSchedule())

	resp := doReschedule(t, h, "a1", `{"newStartDate":"2024-02-10","newEndDate":"2024-02-11"}`)
	if !resp.Success {
		t.Fatalf("更新应成功，实际消息: %s", resp.Message)
	}

	if len(pub.published) != 1 {
		t.Fatalf("应恰好投递 1 条通知，实际 %d", len(pub.published))
	}

	// 通知里要带上新旧班次时间
	var msg domain.AssignmentUpdatedMessage
	if err := json.Unmarshal(pub.published[0].Body, &msg); err != nil {
		t.Fatalf("通知消息无法解析: %v", err)
	}
	if msg.Type != "assignment_updated" {
		t.Fatalf("通知类型期望 assignment_updated，实际 %s", msg.Type)
	}
	if msg.To != "s1@example.com" {
		t.Fatalf("收件人期望 s1@example.com，实际 %s", msg.To)
	}
	if msg.Data.OldStart != "2024-02-05T08:00:00Z" || msg.Data.NewStart != "2024-02-10" {
		t.Fatalf("通知里的新旧时间不对: %+v", msg.Data)
	}

	// 排班记录已被替换而不是追加，并标记为已更新
	if len(store.schedule.Assignments) != 1 {
		t.Fatalf("排班记录数应保持 1，实际 %d", len(store.schedule.Assignments))
	}
	updated := store.schedule.Assignments[0]
	if updated.ShiftStart != "2024-02-10" || updated.ShiftEnd != "2024-02-11" || !updated.IsUpdated {
		t.Fatalf("排班记录未正确更新: %+v", updated)
	}

	// 去重标记按 "开始|结束" 写入
	if dedup.values["last_update_a1"] != "2024-02-10|2024-02-11" {
		t.Fatalf("去重标记不对: %q", dedup.values["last_update_a1"])
	}
}

// ════════════════════════════════════════════════════════════
// 重复拖到相同日期：跳过更新，不再投递
// ════════════════════════════════════════════════════════════

func TestRescheduleAssignment_IdenticalRepeatSuppressed(t *testing.T) {
	h, _, pub, _ := newTestHandler(t, rescheduleScenarioSchedule())

	body := `{"newStartDate":"2024-02-10","newEndDate":"2024-02-11"}`

	first := doReschedule(t, h, "a1", body)
	if !first.Success {
		t.Fatalf("首次更新应成功，实际消息: %s", first.Message)
	}

	second := doReschedule(t, h, "a1", body)
	if !second.Success {
		t.Fatalf("重复提交应返回成功的跳过提示，实际消息: %s", second.Message)
	}
	if second.Message != "该事件已更新到相同日期，跳过重复更新" {
		t.Fatalf("跳过提示不对: %s", second.Message)
	}

	if len(pub.published) != 1 {
		t.Fatalf("重复提交不应再投递通知，实际共 %d 条", len(pub.published))
	}

	// 换一组日期又是一次正常更新
	third := doReschedule(t, h, "a1", `{"newStartDate":"2024-02-12","newEndDate":"2024-02-13"}`)
	if !third.Success {
		t.Fatalf("换日期的更新应成功，实际消息: %s", third.Message)
	}
	if len(pub.published) != 2 {
		t.Fatalf("换日期后应投递第 2 条通知，实际共 %d 条", len(pub.published))
	}
}

// ════════════════════════════════════════════════════════════
// 找不到记录：报错且不产生任何副作用
// ════════════════════════════════════════════════════════════

func TestRescheduleAssignment_UnknownAssignment(t *testing.T) {
	h, store, pub, dedup := newTestHandler(t, rescheduleScenarioSchedule())

	resp := doReschedule(t, h, "missing", `{"newStartDate":"2024-02-10","newEndDate":"2024-02-11"}`)
	if resp.Success {
		t.Fatal("不存在的排班记录不应更新成功")
	}
	if resp.Message != "排班记录不存在" {
		t.Fatalf("错误提示不对: %s", resp.Message)
	}

	if len(pub.published) != 0 {
		t.Fatalf("失败的更新不应投递通知，实际 %d 条", len(pub.published))
	}
	if len(dedup.values) != 0 {
		t.Fatalf("失败的更新不应写入去重标记: %v", dedup.values)
	}
	if store.schedule.Assignments[0].IsUpdated {
		t.Fatal("失败的更新不应改动排班记录")
	}
}

// ════════════════════════════════════════════════════════════
// 日期不合法：在任何副作用之前被拦下
// ════════════════════════════════════════════════════════════

func TestRescheduleAssignment_InvalidDates(t *testing.T) {
	h, store, pub, _ := newTestHandler(t, rescheduleScenarioSchedule())

	resp := doReschedule(t, h, "a1", `{"newStartDate":"2024-2-10","newEndDate":""}`)
	if resp.Success {
		t.Fatal("不合法的日期不应更新成功")
	}

	if len(pub.published) != 0 {
		t.Fatalf("校验失败不应投递通知，实际 %d 条", len(pub.published))
	}
	if store.schedule.Assignments[0].IsUpdated {
		t.Fatal("校验失败不应改动排班记录")
	}
}

// ════════════════════════════════════════════════════════════
// 投递失败是尽力而为的：更新本身照常成功
// ════════════════════════════════════════════════════════════

func TestRescheduleAssignment_PublishFailureDoesNotFailUpdate(t *testing.T) {
	h, store, pub, _ := newTestHandler(t, rescheduleScenarioSchedule())
	pub.err = amqp.ErrClosed

	resp := doReschedule(t, h, "a1", `{"newStartDate":"2024-02-10","newEndDate":"2024-02-11"}`)
	if !resp.Success {
		t.Fatalf("投递失败不应影响更新，实际消息: %s", resp.Message)
	}
	if !store.schedule.Assignments[0].IsUpdated {
		t.Fatal("更新应已生效")
	}
}
