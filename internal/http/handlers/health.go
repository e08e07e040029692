package handlers

import (
	"net/http"

	"github.com/pribylovaa/go-quizo/internal/models"
	logctx "github.com/pribylovaa/go-quizo/internal/pkg/log"
)

// Health отвечает {"status":"OK"}, если хранилище доступно.
func (h *Handlers) Health(w http.ResponseWriter, r *http.Request) {
	if err := h.Service.Ping(r.Context()); err != nil {
		logctx.From(r.Context()).Warn("health_ping_failed", "err", err)
		writeJSON(w, http.StatusServiceUnavailable, models.HealthResponse{Status: "UNAVAILABLE"})
		return
	}

	writeJSON(w, http.StatusOK, models.HealthResponse{Status: "OK"})
}

func (h *Handlers) Root(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, models.RootResponse{Message: "Server is running"})
}
