// Package audit реализует HTTP-обработчик аудита заявки: администратор
// переводит заявку в Approved или Rejected.
//
// Предыдущее состояние заявки не проверяется, и значение статуса не
// ограничивается двумя легальными терминальными — произвольная строка
// принимается и сохраняется. Внешний контракт исходной системы сохранён
// без ужесточения (см. DESIGN.md).
package audit

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/chweng/leave-system/internal/http/response"
	"github.com/chweng/leave-system/internal/lib/sl"
	"github.com/chweng/leave-system/internal/models"
	"github.com/chweng/leave-system/internal/storage/memstore"
)

// Request — структура входных данных аудита.
type Request struct {
	ID     int    `json:"id"`
	Status string `json:"status"`
}

// Handler обрабатывает HTTP-запросы аудита заявок.
type Handler struct {
	log     *slog.Logger
	service Service
}

// Service описывает интерфейс бизнес-логики аудита.
type Service interface {
	Audit(ctx context.Context, id int, status string) (models.LeaveRequest, error)
}

// New создает новый экземпляр Handler с указанными логгером и сервисом.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:     log,
		service: service,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.leave.audit"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	var req Request
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Error("failed to decode request body", sl.Err(err))
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.Error("invalid request body"))
		return
	}
	log.Info("request body decoded", slog.Any("request", req))

	updated, err := h.service.Audit(r.Context(), req.ID, req.Status)
	if err != nil {
		if errors.Is(err, memstore.ErrLeaveNotFound) {
			log.Error("leave request not found", slog.Int("id", req.ID))
			w.WriteHeader(http.StatusNotFound)
			render.JSON(w, r, response.Error("leave request not found"))
			return
		}
		log.Error("failed to audit leave request", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("could not audit leave request"))
		return
	}

	log.Info("leave request audited", slog.Int("id", updated.ID), slog.String("status", string(updated.Status)))
	render.JSON(w, r, response.Success(
		fmt.Sprintf("leave request %d updated to %s", updated.ID, updated.Status)))
}
