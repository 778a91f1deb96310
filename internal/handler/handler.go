package handler

import (
	"context"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/locales/zh"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	zh_translations "github.com/go-playground/validator/v10/translations/zh"
	"github.com/pairduty/roster/backend/internal/config"
	"github.com/pairduty/roster/backend/internal/domain"
	amqp "github.com/rabbitmq/amqp091-go"
)

// ScheduleStore 是 handler 需要的排班表读写能力，由 repository.Repository 提供
type ScheduleStore interface {
	LoadSchedule() (*domain.Schedule, error)
	ApplyAssignmentUpdate(id, newStart, newEnd string) (*domain.Schedule, error)
}

// NotificationPublisher 向通知队列投递消息，*amqp.Channel 直接满足这个接口
type NotificationPublisher interface {
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error
}

type Handler struct {
	validate            *validator.Validate
	config              *config.Config
	repository          ScheduleStore
	translator          ut.Translator
	notificationChannel NotificationPublisher
	dedup               DedupStore

	Mux *chi.Mux
}

func NewHandler(cfg *config.Config, store ScheduleStore, publisher NotificationPublisher, dedup DedupStore) (*Handler, error) {
	validate := validator.New(validator.WithRequiredStructEnabled())
	zh := zh.New()
	uni := ut.New(zh, zh)
	trans, _ := uni.GetTranslator("zh")
	if err := zh_translations.RegisterDefaultTranslations(validate, trans); err != nil {
		return nil, err
	}

	return &Handler{
		validate:            validate,
		config:              cfg,
		repository:          store,
		translator:          trans,
		notificationChannel: publisher,
		dedup:               dedup,

		Mux: chi.NewRouter(),
	}, nil
}

func (h *Handler) RegisterRoutes() {
	h.Mux.Use(h.logger)
	h.Mux.Use(h.recoverer)

	h.Mux.Route("/schedule", func(r chi.Router) {
		r.Use(h.schedule)
		r.Get("/", h.GetSchedule)
		r.Get("/staffs", h.GetStaffs)
	})

	h.Mux.Route("/calendar", func(r chi.Router) {
		r.Use(h.schedule)
		r.Get("/events", h.GetCalendarEvents)
		r.Get("/pair-days", h.GetPairDays)
		r.Get("/day-cells", h.GetDayCells)
	})

	h.Mux.Route("/assignments", func(r chi.Router) {
		r.Post("/{id}/reschedule", h.RescheduleAssignment)
	})
}
