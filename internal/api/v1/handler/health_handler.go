package handler

import (
	"net/http"
	"time"

	"kizuna/internal/api/v1/dto"
	"kizuna/internal/service"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
)

type HealthHandler struct {
	health service.HealthService
	now    func() time.Time
	logger zerolog.Logger
}

func NewHealthHandler(health service.HealthService, logger zerolog.Logger) *HealthHandler {
	return &HealthHandler{health: health, now: time.Now, logger: logger}
}

// RegisterRoutes mounts the keepalive route
func (h *HealthHandler) RegisterRoutes(r chi.Router) {
	r.Get("/keepalive", h.keepalive)
}

// keepalive godoc
// @Summary Keepalive
// @Description Runs a trivial query so the hosted database stays awake.
// @Tags health
// @Produce json
// @Success 200 {object} dto.KeepaliveDTO
// @Failure 500 {object} dto.KeepaliveDTO
// @Router /api/keepalive [get]
func (h *HealthHandler) keepalive(w http.ResponseWriter, r *http.Request) {
	if err := h.health.Keepalive(r.Context()); err != nil {
		h.logger.Error().Err(err).Msg("keepalive failed")
		writeJSON(w, http.StatusInternalServerError, dto.KeepaliveDTO{OK: false, Error: err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, dto.KeepaliveDTO{OK: true, TS: h.now().UTC().Format(time.RFC3339Nano)})
}
