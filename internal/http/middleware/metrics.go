package middleware

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/pribylovaa/go-quizo/internal/metrics"
)

// Metrics считает запросы и их длительность по шаблону маршрута chi.
// Шаблон берётся после обработки: до этого chi ещё не сопоставил маршрут.
func Metrics(m *metrics.HTTP) Middleware {
	return func(next http.Handler) http.Handler {
		if m == nil {
			return next
		}

		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			sw := newStatusWriter(w)
			start := time.Now()
			next.ServeHTTP(sw, r)

			m.Observe(r.Method, routePattern(r), sw.Status(), time.Since(start))
		})
	}
}

// routePattern не использует сырой путь, чтобы id не раздували кардинальность.
func routePattern(r *http.Request) string {
	if rctx := chi.RouteContext(r.Context()); rctx != nil {
		if p := rctx.RoutePattern(); p != "" {
			return p
		}
	}
	return "unmatched"
}
