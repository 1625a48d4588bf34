package app

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi"

	"github.com/chweng/leave-system/internal/config"
	"github.com/chweng/leave-system/internal/lib/jwt"
	authservice "github.com/chweng/leave-system/internal/services/auth"
	leaveservice "github.com/chweng/leave-system/internal/services/leave"
	"github.com/chweng/leave-system/internal/storage/memstore"
)

// App владеет HTTP-сервером и хранилищем записей на время жизни процесса.
type App struct {
	server *http.Server
	logger *slog.Logger
	store  *memstore.Store
}

// New собирает приложение: хранилище со стартовыми данными, сервисы,
// маршруты и HTTP-сервер. Хранилище живёт только в памяти процесса.
func New(cfg *config.Config, logger *slog.Logger) *App {
	store := memstore.New(memstore.DefaultSeed())

	jwtMaker := jwt.NewMaker(cfg.JWTSecretKey, cfg.TokenTTL)
	authService := authservice.New(store, jwtMaker)
	leaveService := leaveservice.New(store, logger)

	router := chi.NewRouter()
	RegisterRoutes(router, logger, authService, leaveService, jwtMaker)

	srv := &http.Server{
		Addr:         cfg.AddressHTTP,
		Handler:      router,
		ReadTimeout:  cfg.TimeoutHTTP,
		WriteTimeout: cfg.TimeoutHTTP,
		IdleTimeout:  cfg.IdleTimeout,
	}

	return &App{
		server: srv,
		logger: logger,
		store:  store,
	}
}

// Run запускает HTTP-сервер и останавливает его по отмене контекста.
func (a *App) Run(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		a.logger.Info("HTTP server starting on", slog.String("address", a.server.Addr))
		err := a.server.ListenAndServe()
		if errors.Is(err, http.ErrServerClosed) {
			errCh <- nil
		} else {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		timeoutCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()
		a.logger.Info("shutting down HTTP server gracefully")
		err := a.server.Shutdown(timeoutCtx)
		a.store.Close()
		return err
	}
}
