package handler

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/GoArmGo/AdBoard/internal/errs"
)

// Pinger - то, что умеет проверить доступность хранилища.
type Pinger interface {
	Ping(ctx context.Context) error
}

type HealthHandler struct {
	store  Pinger
	logger *slog.Logger
}

func NewHealthHandler(store Pinger, logger *slog.Logger) *HealthHandler {
	return &HealthHandler{store: store, logger: logger}
}

// Check - GET /health
func (h *HealthHandler) Check(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()

	if err := h.store.Ping(ctx); err != nil {
		h.logger.Warn("health check failed", "error", err)
		respondWithJSON(w, http.StatusServiceUnavailable,
			errs.New(http.StatusServiceUnavailable, "storage unavailable").Body(), h.logger)
		return
	}
	respondWithJSON(w, http.StatusOK, statusResponse{Status: "ok"}, h.logger)
}
