// Package middlewarectx содержит HTTP middleware приложения.
//
// Identity разбирает JWT из заголовка Authorization, если тот присутствует,
// и добавляет в контекст запроса логин и роль для логирования. Токен в этой
// системе декоративный: ни одна конечная точка не требует его предъявления,
// поэтому middleware никогда не отклоняет запрос — ни при отсутствии
// заголовка, ни при невалидном токене.
package middlewarectx

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-chi/chi/middleware"

	"github.com/chweng/leave-system/internal/lib/jwt"
	"github.com/chweng/leave-system/internal/lib/sl"
)

// Key тип для ключей контекста HTTP-запроса.
type Key string

const (
	// User — ключ для логина пользователя в контексте
	User Key = "account"
	// Role — ключ для роли пользователя в контексте
	Role Key = "role"
)

// TokenParser описывает интерфейс разбора JWT токена.
type TokenParser interface {
	ParseToken(tokenStr string) (*jwt.CustomClaims, error)
}

// Identity возвращает HTTP middleware, который при наличии валидного JWT
// в заголовке Authorization кладёт логин и роль в контекст запроса.
func Identity(parser TokenParser, log *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			const op = "middlewarectx.Identity"

			authHeader := r.Header.Get("Authorization")
			if !strings.HasPrefix(authHeader, "Bearer ") {
				next.ServeHTTP(w, r)
				return
			}
			tokenStr := strings.TrimPrefix(authHeader, "Bearer ")

			claims, err := parser.ParseToken(tokenStr)
			if err != nil {
				log.Warn("ignoring invalid bearer token",
					slog.String("op", op),
					slog.String("request_id", middleware.GetReqID(r.Context())),
					sl.Err(err))
				next.ServeHTTP(w, r)
				return
			}

			ctx := context.WithValue(r.Context(), User, claims.Account)
			ctx = context.WithValue(ctx, Role, claims.Role)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// Account возвращает логин из контекста запроса, если Identity его положил.
func Account(ctx context.Context) (string, bool) {
	account, ok := ctx.Value(User).(string)
	return account, ok && account != ""
}
