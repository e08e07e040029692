package middleware

import (
	"context"
	"errors"
	"net/http"
	"time"

	logctx "github.com/pribylovaa/go-quizo/internal/pkg/log"
)

// Timeout ограничивает обработку запроса сроком d: хранилище и сервис
// получают контекст с дедлайном и возвращают context.DeadlineExceeded (504).
// Более ранний дедлайн родительского контекста сохраняется. d<=0 отключает мидлвар.
func Timeout(d time.Duration) Middleware {
	return func(next http.Handler) http.Handler {
		if d <= 0 {
			return next
		}

		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx, cancel := context.WithTimeout(r.Context(), d)
			defer cancel()

			next.ServeHTTP(w, r.WithContext(ctx))

			if errors.Is(ctx.Err(), context.DeadlineExceeded) {
				logctx.From(ctx).Warn("request_deadline_exceeded", "limit", d.String())
			}
		})
	}
}
