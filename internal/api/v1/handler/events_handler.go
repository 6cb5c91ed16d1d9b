package handler

import (
	"fmt"
	"net/http"
	"time"

	"kizuna/internal/auth"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
)

const sseHeartbeat = 25 * time.Second

// EventsHandler streams auth state changes to an open admin page so it can
// leave as soon as its session is signed out elsewhere.
type EventsHandler struct {
	notifier  *auth.Notifier
	loginPath string
	heartbeat time.Duration
	logger    zerolog.Logger
}

func NewEventsHandler(notifier *auth.Notifier, loginPath string, logger zerolog.Logger) *EventsHandler {
	return &EventsHandler{
		notifier:  notifier,
		loginPath: loginPath,
		heartbeat: sseHeartbeat,
		logger:    logger.With().Str("handler", "events").Logger(),
	}
}

// RegisterRoutes mounts the event stream
func (h *EventsHandler) RegisterRoutes(r chi.Router) {
	r.Get("/session/events", h.stream)
}

// stream godoc
// @Summary Session event stream
// @Description Server-Sent Events. Emits "event: redirect" with the login path and closes when the streamed session signs out.
// @Tags admin
// @Produce text/event-stream
// @Success 200 {string} string "event stream"
// @Router /admin/session/events [get]
func (h *EventsHandler) stream(w http.ResponseWriter, r *http.Request) {
	sess := auth.SessionFrom(r.Context())
	if sess == nil {
		writeError(w, http.StatusUnauthorized, auth.ErrNoSession.Error())
		return
	}
	rc := http.NewResponseController(w)
	// The server's write timeout would cut the stream.
	_ = rc.SetWriteDeadline(time.Time{})

	events, detach := h.notifier.Subscribe()
	defer detach()

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-store")
	w.Header().Set("Connection", "keep-alive")
	w.WriteHeader(http.StatusOK)
	fmt.Fprint(w, ": connected\n\n")
	if err := rc.Flush(); err != nil {
		h.logger.Error().Err(err).Msg("streaming unsupported")
		return
	}

	ticker := time.NewTicker(h.heartbeat)
	defer ticker.Stop()

	for {
		select {
		case <-r.Context().Done():
			return
		case <-ticker.C:
			fmt.Fprint(w, ": ping\n\n")
			_ = rc.Flush()
		case ev, open := <-events:
			if !open {
				return
			}
			if ev.Type != auth.SignedOut || ev.Session.Key() != sess.Key() {
				continue
			}
			h.logger.Info().Str("user_id", sess.UserID).Msg("session signed out, redirecting stream")
			fmt.Fprintf(w, "event: redirect\ndata: %s\n\n", h.loginPath)
			_ = rc.Flush()
			return
		}
	}
}
