package http

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/rs/cors"

	apierrors "github.com/pribylovaa/go-quizo/internal/errors"
	"github.com/pribylovaa/go-quizo/internal/http/handlers"
	"github.com/pribylovaa/go-quizo/internal/http/middleware"
	"github.com/pribylovaa/go-quizo/internal/metrics"
)

// Options — параметры сборки HTTP-роутера.
type Options struct {
	Logger         *slog.Logger
	Timeout        time.Duration
	BasePath       string // например, "/api"; если пустой — роуты регистрируются на корне.
	AllowedOrigins []string
	Metrics        *metrics.HTTP // nil отключает сбор HTTP-метрик
}

// NewRouter собирает http.Handler с chi и подключёнными middleware/роутами.
func NewRouter(svc handlers.Service, opts Options) http.Handler {
	root := chi.NewRouter()

	// Middleware (внешний -> внутренний).
	root.Use(
		middleware.RequestID(),          // формируем/прокидываем X-Request-Id (до логирования!)
		middleware.Logging(opts.Logger), // кладём request-scoped логгер в контекст и логируем
		middleware.Metrics(opts.Metrics),
		middleware.Recover(), // паника -> 500 в едином формате, попадает в лог и метрики
		corsMiddleware(opts.AllowedOrigins),
	)
	if opts.Timeout > 0 {
		root.Use(middleware.Timeout(opts.Timeout)) // общий дедлайн запроса
	}

	root.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeRouteError(w, r, http.StatusNotFound, "Route not found")
	})
	root.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		writeRouteError(w, r, http.StatusMethodNotAllowed, "Method not allowed")
	})

	h := handlers.New(svc)

	root.Get("/", h.Root)
	root.Get("/health", h.Health)

	if opts.BasePath != "" {
		sub := chi.NewRouter()
		sub.NotFound(root.NotFoundHandler())
		sub.MethodNotAllowed(root.MethodNotAllowedHandler())
		registerRoutes(sub, h)
		root.Mount(opts.BasePath, sub)
		return root
	}

	registerRoutes(root, h)
	return root
}

// registerRoutes — единая точка регистрации всех REST-эндпойнтов.
func registerRoutes(r chi.Router, h *handlers.Handlers) {
	r.Post("/login", h.Login)

	r.Post("/quizzes", h.CreateQuiz)
	r.Get("/quizzes", h.ListQuizzes)
	r.Get("/quizzes/{id}", h.GetQuiz)
	r.Put("/quizzes/{id}", h.UpdateQuiz)
	r.Delete("/quizzes/{id}", h.DeleteQuiz)
}

func corsMiddleware(origins []string) middleware.Middleware {
	c := cors.New(cors.Options{
		AllowedOrigins: origins,
		AllowedMethods: []string{
			http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions,
		},
		AllowedHeaders:   []string{"Content-Type", "Authorization", middleware.HeaderRequestID},
		ExposedHeaders:   []string{middleware.HeaderRequestID},
		AllowCredentials: true,
	})

	return c.Handler
}

// writeRouteError пишет ошибку маршрутизации в том же формате, что и apierrors.
func writeRouteError(w http.ResponseWriter, r *http.Request, status int, msg string) {
	resp := apierrors.ErrorResponse{Message: msg}
	if rid := r.Header.Get(middleware.HeaderRequestID); rid != "" {
		resp.RequestID = rid
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(resp)
}
