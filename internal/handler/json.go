package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-playground/validator/v10"
)

// envelope 是所有接口统一的响应外壳。
// 业务层面的失败（比如排班记录不存在、重复更新被跳过的提示）同样返回 200，
// 由 success 字段区分，只有服务器内部错误才使用 5xx 状态码
type envelope struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Data    any    `json:"data"`
}

func (h *Handler) readJSON(r *http.Request, v any) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	return dec.Decode(v)
}

func (h *Handler) writeEnvelope(w http.ResponseWriter, r *http.Request, status int, e envelope) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(e); err != nil {
		// 状态行已经写出，这里只能记日志
		slog.Error("响应序列化失败", "method", r.Method, "path", r.URL.Path, "error", err)
	}
}

func (h *Handler) successResponse(w http.ResponseWriter, r *http.Request, msg string, data any) {
	h.writeEnvelope(w, r, http.StatusOK, envelope{Success: true, Message: msg, Data: data})
}

func (h *Handler) errorResponse(w http.ResponseWriter, r *http.Request, msg string) {
	h.writeEnvelope(w, r, http.StatusOK, envelope{Success: false, Message: msg})
}

// badRequest 把校验错误翻译成中文提示，其他解码类错误原样透出
func (h *Handler) badRequest(w http.ResponseWriter, r *http.Request, err error) {
	var validationErrors validator.ValidationErrors
	if errors.As(err, &validationErrors) && len(validationErrors) > 0 {
		h.errorResponse(w, r, validationErrors[0].Translate(h.translator))
		return
	}

	h.errorResponse(w, r, err.Error())
}

func (h *Handler) internalServerError(w http.ResponseWriter, r *http.Request, err error) {
	slog.Error("服务器内部错误", "method", r.Method, "path", r.URL.Path, "error", err)
	h.writeEnvelope(w, r, http.StatusInternalServerError, envelope{Success: false, Message: "服务器内部错误"})
}
