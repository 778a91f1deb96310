package handler

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/pairduty/roster/backend/internal/calendar"
	"github.com/pairduty/roster/backend/internal/domain"
	amqp "github.com/rabbitmq/amqp091-go"
)

// RescheduleAssignment 处理拖拽改期：
// 对同一事件重复提交相同的起止日期时，用去重标记直接跳过，
// 否则替换排班记录、持久化整份排班表，并向通知队列投递一条消息。
// 投递是尽力而为的，失败只记日志，不影响本次更新。
func (h *Handler) RescheduleAssignment(w http.ResponseWriter, r *http.Request) {
	assignmentID := chi.URLParam(r, "id")
	if assignmentID == "" {
		h.errorResponse(w, r, "缺少排班记录ID")
		return
	}

	var req struct {
		NewStartDate string `json:"newStartDate" validate:"required,datetime=2006-01-02"`
		NewEndDate   string `json:"newEndDate" validate:"required,datetime=2006-01-02"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	// 检查这个事件是否已经应用过完全相同的更新
	dedupKey := fmt.Sprintf("last_update_%s", assignmentID)
	dedupValue := req.NewStartDate + "|" + req.NewEndDate

	ctx, cancel := context.WithTimeout(r.Context(), time.Duration(h.config.Redis.ConnectTimeout)*time.Second)
	defer cancel()

	lastUpdate, err := h.dedup.LastUpdate(ctx, dedupKey)
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}
	if lastUpdate == dedupValue {
		h.successResponse(w, r, "该事件已更新到相同日期，跳过重复更新", nil)
		return
	}

	// 记下旧值，通知里要用
	before, err := h.repository.LoadSchedule()
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}
	oldAssignment := calendar.AssignmentByID(before, assignmentID)

	updated, err := h.repository.ApplyAssignmentUpdate(assignmentID, req.NewStartDate, req.NewEndDate)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrAssignmentNotFound):
			h.errorResponse(w, r, "排班记录不存在")
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	if err := h.dedup.MarkUpdated(ctx, dedupKey, dedupValue, time.Duration(h.config.Redis.DedupExpiration)*time.Hour); err != nil {
		// 去重标记写失败只会导致重复更新被重放一次，不值得让整个请求失败
		slog.Error("无法写入去重标记", "key", dedupKey, "error", err)
	}

	h.publishAssignmentUpdated(before, oldAssignment, req.NewStartDate, req.NewEndDate)

	h.successResponse(w, r, "排班更新成功", calendar.AssignmentByID(updated, assignmentID))
}

func (h *Handler) publishAssignmentUpdated(schedule *domain.Schedule, oldAssignment *domain.Assignment, newStart, newEnd string) {
	if oldAssignment == nil {
		return
	}

	staffName := "Unknown"
	staffID := oldAssignment.StaffID
	if staff := calendar.StaffByID(schedule, staffID); staff != nil {
		staffName = staff.Name
	}
	shiftName := "Unnamed Shift"
	if shift := calendar.ShiftByID(schedule, oldAssignment.ShiftID); shift != nil {
		shiftName = shift.Name
	}

	message := domain.AssignmentUpdatedMessage{
		Type: "assignment_updated",
		To:   staffID + "@" + h.config.Email.StaffDomain,
		Data: domain.AssignmentUpdatedData{
			StaffName: staffName,
			ShiftName: shiftName,
			OldStart:  oldAssignment.ShiftStart,
			OldEnd:    oldAssignment.ShiftEnd,
			NewStart:  newStart,
			NewEnd:    newEnd,
		},
	}

	body, err := json.Marshal(message)
	if err != nil {
		slog.Error("无法序列化通知消息", "error", err)
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(h.config.RabbitMQ.PublishTimeout)*time.Second)
	defer cancel()

	if err := h.notificationChannel.PublishWithContext(
		ctx,
		"",
		"notification_queue",
		true,
		false,
		amqp.Publishing{
			ContentType: "application/json",
			Body:        body,
		},
	); err != nil {
		slog.Error("无法投递更新通知", "assignmentID", oldAssignment.ID, "error", err)
	}
}
