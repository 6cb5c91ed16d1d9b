package handler

import (
	"net/http"

	"kizuna/internal/contact"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"
)

const contactFailed = "Съобщението не беше изпратено. Опитай отново."

type ContactHandler struct {
	relay    contact.Relay
	validate *validator.Validate
	logger   zerolog.Logger
}

func NewContactHandler(relay contact.Relay, validate *validator.Validate, logger zerolog.Logger) *ContactHandler {
	return &ContactHandler{
		relay:    relay,
		validate: validate,
		logger:   logger.With().Str("handler", "contact").Logger(),
	}
}

// RegisterRoutes mounts contact routes
func (h *ContactHandler) RegisterRoutes(r chi.Router) {
	r.Post("/contact", h.submit)
}

type contactResponse struct {
	Message string `json:"message"`
}

// submit godoc
// @Summary Send the contact form
// @Description Relays the message to the school inbox. A filled honeypot field is accepted and dropped.
// @Tags public
// @Accept json
// @Produce json
// @Param submission body contact.Submission true "Contact form"
// @Success 200 {object} contactResponse
// @Failure 400 {object} dto.ErrorDTO
// @Failure 502 {object} dto.ErrorDTO
// @Router /contact [post]
func (h *ContactHandler) submit(w http.ResponseWriter, r *http.Request) {
	var s contact.Submission
	if err := decodeAndValidate(w, r, h.validate, &s); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if err := h.relay.Send(r.Context(), s); err != nil {
		h.logger.Error().Err(err).Str("source", s.Source).Msg("contact relay failed")
		writeError(w, http.StatusBadGateway, contactFailed)
		return
	}
	writeJSON(w, http.StatusOK, contactResponse{Message: contact.ThankYou})
}
