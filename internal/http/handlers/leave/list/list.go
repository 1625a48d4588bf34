// Package list реализует HTTP-обработчик выборки заявок на отпуск.
//
// Параметр запроса student_id необязателен: без него возвращаются все заявки.
// Права вызывающего не проверяются — любой клиент может запросить любые
// записи. Это известный пробел исходной системы, сохранённый намеренно.
package list

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/chweng/leave-system/internal/http/middlewarectx"
	"github.com/chweng/leave-system/internal/http/response"
	"github.com/chweng/leave-system/internal/lib/sl"
	"github.com/chweng/leave-system/internal/models"
)

// Handler обрабатывает HTTP-запросы выборки заявок.
type Handler struct {
	log     *slog.Logger
	service Service
}

// Service описывает интерфейс бизнес-логики выборки заявок.
type Service interface {
	List(ctx context.Context, studentID string) ([]models.LeaveRequest, error)
}

// New создает новый экземпляр Handler с указанными логгером и сервисом.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:     log,
		service: service,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.leave.list"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)
	if account, ok := middlewarectx.Account(r.Context()); ok {
		log = log.With(slog.String("caller", account))
	}

	studentID := r.URL.Query().Get("student_id")

	res, err := h.service.List(r.Context(), studentID)
	if err != nil {
		log.Error("failed to list leave requests", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("failed to list"))
		return
	}

	log.Info("list leave requests", slog.String("student_id", studentID), slog.Int("count", len(res)))
	// контракт требует «голый» JSON-массив без конверта
	render.JSON(w, r, res)
}
