// Package apply реализует HTTP-обработчик подачи заявки на отпуск.
//
// Handler принимает JSON с логином студента, датой и причиной, проверяет
// присутствие всех трёх полей и делегирует создание заявки сервису.
// Формат даты не валидируется — проверка только на присутствие,
// как и в исходной системе. Созданная запись возвращается в поле data.
package apply

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"
	"github.com/go-playground/validator"

	"github.com/chweng/leave-system/internal/http/response"
	"github.com/chweng/leave-system/internal/lib/sl"
	"github.com/chweng/leave-system/internal/models"
)

// Handler обрабатывает HTTP-запросы подачи заявок.
type Handler struct {
	log      *slog.Logger
	service  Service
	validate *validator.Validate
}

// Service описывает интерфейс бизнес-логики создания заявки.
type Service interface {
	Apply(ctx context.Context, req models.DummyLeave) (models.LeaveRequest, error)
}

// New создает новый экземпляр Handler с указанными логгером и сервисом.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:      log,
		service:  service,
		validate: validator.New(),
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.leave.apply"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	var req models.DummyLeave
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Error("failed to decode request body", sl.Err(err))
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.Error("invalid request body"))
		return
	}
	log.Info("request body decoded", slog.Any("request", req))

	if err := h.validate.Struct(req); err != nil {
		log.Error("validation failed", sl.Err(err))
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.ValidationError(err.(validator.ValidationErrors)))
		return
	}
	log.Info("all fields are validated")

	created, err := h.service.Apply(r.Context(), req)
	if err != nil {
		log.Error("failed to create leave request", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("could not create leave request"))
		return
	}

	log.Info("leave request created", slog.Int("id", created.ID))
	w.WriteHeader(http.StatusCreated)
	render.JSON(w, r, response.SuccessWithData("leave request submitted", created))
}
