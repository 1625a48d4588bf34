// Package login реализует HTTP-обработчик входа в систему.
//
// Обработчик декодирует JSON с логином и паролем, делегирует проверку
// учётных данных сервису аутентификации и возвращает роль, имя и токен.
// Любая неудача входа — неизвестный логин, неверный пароль, пустые поля —
// отдаётся одинаковым ответом 401, чтобы не раскрывать существование логина.
package login

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/chweng/leave-system/internal/http/response"
	"github.com/chweng/leave-system/internal/lib/sl"
	"github.com/chweng/leave-system/internal/services/auth"
)

// Request — структура входных данных для входа.
type Request struct {
	Account  string `json:"account"`
	Password string `json:"password"`
}

// Response — структура успешного ответа: роль, имя и декоративный токен
// лежат на верхнем уровне, как того требует контракт API.
type Response struct {
	Status  string `json:"status"`
	Message string `json:"message"`
	Role    string `json:"role"`
	Name    string `json:"name"`
	Token   string `json:"token"`
}

// Handler обрабатывает HTTP-запросы входа.
type Handler struct {
	log     *slog.Logger
	service Service
}

// Service описывает интерфейс бизнес-логики аутентификации.
type Service interface {
	Login(ctx context.Context, account, password string) (*auth.LoginResult, error)
}

// New создает новый экземпляр Handler с указанными логгером и сервисом.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:     log,
		service: service,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.auth.login"

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
	log.Info("request body decoded", slog.String("account", req.Account))

	res, err := h.service.Login(r.Context(), req.Account, req.Password)
	if err != nil {
		// пустые поля, неизвестный логин и неверный пароль неразличимы
		log.Error("login failed", sl.Err(err))
		w.WriteHeader(http.StatusUnauthorized)
		render.JSON(w, r, response.Error("invalid account or password"))
		return
	}

	log.Info("login success", slog.String("account", req.Account), slog.String("role", res.Role))
	render.JSON(w, r, Response{
		Status:  response.StatusSuccess,
		Message: "login ok",
		Role:    res.Role,
		Name:    res.Name,
		Token:   res.Token,
	})
}
