// Package app предоставляет сборку и маршруты приложения.
package app

import (
	"log/slog"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/chweng/leave-system/internal/http/handlers/auth/login"
	"github.com/chweng/leave-system/internal/http/handlers/health"
	"github.com/chweng/leave-system/internal/http/handlers/leave/apply"
	"github.com/chweng/leave-system/internal/http/handlers/leave/audit"
	"github.com/chweng/leave-system/internal/http/handlers/leave/list"
	"github.com/chweng/leave-system/internal/http/middlewarectx"
	authservice "github.com/chweng/leave-system/internal/services/auth"
	leaveservice "github.com/chweng/leave-system/internal/services/leave"
	"github.com/chweng/leave-system/internal/web"
)

// RegisterRoutes регистрирует все маршруты приложения.
func RegisterRoutes(r chi.Router, logger *slog.Logger, authService *authservice.Service, leaveService *leaveservice.Service, tokenParser middlewarectx.TokenParser) {
	// Глобальные middleware
	r.Use(
		middleware.RequestID,
		middleware.Logger,
		middleware.Recoverer,
		middleware.URLFormat,
	)

	r.Route("/api", func(r chi.Router) {
		// токен декоративный: Identity кладёт его данные в контекст,
		// но ни одна конечная точка не требует аутентификации
		r.Use(middlewarectx.Identity(tokenParser, logger))
		r.Use(middlewarectx.RateLimit(logger))

		r.Post("/login", login.New(logger, authService).ServeHTTP)
		r.Get("/leaves", list.New(logger, leaveService).ServeHTTP)
		r.Post("/apply", apply.New(logger, leaveService).ServeHTTP)
		r.Patch("/audit", audit.New(logger, leaveService).ServeHTTP)
	})

	r.Get("/health", health.New(logger).ServeHTTP)
	r.Handle("/metrics", promhttp.Handler())

	// встроенная клиентская страница
	r.Get("/", web.Index())
}
