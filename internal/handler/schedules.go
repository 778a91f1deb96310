package handler

import (
	"net/http"
	"strings"

	"github.com/pairduty/roster/backend/internal/domain"
)

func (h *Handler) GetSchedule(w http.ResponseWriter, r *http.Request) {
	schedule := r.Context().Value(ScheduleCtx).(*domain.Schedule)

	h.successResponse(w, r, "获取排班表成功", schedule)
}

// staffItem 是人员列表的响应项，role 已经从上游的任意形态解析成展示字符串
type staffItem struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Role string `json:"role"`
}

// GetStaffs 返回人员列表，?q= 可以按名字做不区分大小写的模糊过滤
func (h *Handler) GetStaffs(w http.ResponseWriter, r *http.Request) {
	schedule := r.Context().Value(ScheduleCtx).(*domain.Schedule)

	query := strings.ToLower(strings.TrimSpace(r.URL.Query().Get("q")))

	items := []staffItem{}
	for _, staff := range schedule.Staffs {
		if query != "" && !strings.Contains(strings.ToLower(staff.Name), query) {
			continue
		}
		items = append(items, staffItem{
			ID:   staff.ID,
			Name: staff.Name,
			Role: domain.ResolveRole(staff.Role).String(),
		})
	}

	h.successResponse(w, r, "获取人员列表成功", items)
}
