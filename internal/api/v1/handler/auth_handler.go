package handler

import (
	"context"
	"errors"
	"net/http"
	"time"

	"kizuna/internal/api/v1/dto"
	"kizuna/internal/auth"
	"kizuna/internal/middleware"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"
)

const signInUnavailable = "Входът не е възможен в момента. Опитай отново."

// SessionManager signs admins in and out.
type SessionManager interface {
	SignIn(ctx context.Context, email, password string) (*auth.Session, error)
	SignOut(ctx context.Context, sess *auth.Session) error
}

// CookieOptions describe the session cookie.
type CookieOptions struct {
	Name   string
	Secure bool
}

type AuthHandler struct {
	sessions SessionManager
	cookie   CookieOptions
	homePath string
	validate *validator.Validate
	logger   zerolog.Logger
}

func NewAuthHandler(sessions SessionManager, cookie CookieOptions, homePath string, validate *validator.Validate, logger zerolog.Logger) *AuthHandler {
	return &AuthHandler{
		sessions: sessions,
		cookie:   cookie,
		homePath: homePath,
		validate: validate,
		logger:   logger.With().Str("handler", "auth").Logger(),
	}
}

// RegisterRoutes mounts auth routes
func (h *AuthHandler) RegisterRoutes(r chi.Router) {
	r.Post("/auth/login", h.login)
	r.Post("/auth/logout", h.logout)
	r.Get("/auth/session", h.session)
}

// login godoc
// @Summary Sign in
// @Description Password sign-in. Sets the HttpOnly session cookie; a rejected sign-in returns the auth backend's own message.
// @Tags auth
// @Accept json
// @Produce json
// @Param credentials body dto.LoginRequestDTO true "Email and password"
// @Success 200 {object} dto.SessionDTO
// @Failure 400 {object} dto.ErrorDTO
// @Failure 401 {object} dto.ErrorDTO
// @Failure 502 {object} dto.ErrorDTO
// @Router /auth/login [post]
func (h *AuthHandler) login(w http.ResponseWriter, r *http.Request) {
	var req dto.LoginRequestDTO
	if err := decodeAndValidate(w, r, h.validate, &req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	sess, err := h.sessions.SignIn(r.Context(), req.Email, req.Password)
	if err != nil {
		var apiErr *auth.APIError
		if errors.As(err, &apiErr) && apiErr.Status < http.StatusInternalServerError {
			h.logger.Info().Err(err).Str("email", req.Email).Msg("sign-in rejected")
			writeError(w, http.StatusUnauthorized, apiErr.Message)
			return
		}
		h.logger.Error().Err(err).Str("email", req.Email).Msg("sign-in failed")
		writeError(w, http.StatusBadGateway, signInUnavailable)
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     h.cookie.Name,
		Value:    sess.AccessToken,
		Path:     "/",
		Expires:  sess.ExpiresAt,
		HttpOnly: true,
		Secure:   h.cookie.Secure,
		SameSite: http.SameSiteLaxMode,
	})
	writeJSON(w, http.StatusOK, sessionDTO(sess))
}

// logout godoc
// @Summary Sign out
// @Description Revokes the session, clears the cookie and redirects home.
// @Tags auth
// @Success 303
// @Router /auth/logout [post]
func (h *AuthHandler) logout(w http.ResponseWriter, r *http.Request) {
	if sess := auth.SessionFrom(r.Context()); sess != nil {
		if err := h.sessions.SignOut(r.Context(), sess); err != nil {
			h.logger.Warn().Err(err).Str("user_id", sess.UserID).Msg("sign-out incomplete")
		}
	}
	http.SetCookie(w, &http.Cookie{
		Name:     h.cookie.Name,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		Expires:  time.Unix(0, 0),
		HttpOnly: true,
		Secure:   h.cookie.Secure,
		SameSite: http.SameSiteLaxMode,
	})
	middleware.Redirect(w, h.homePath)
}

// session godoc
// @Summary Current session
// @Tags auth
// @Produce json
// @Success 200 {object} dto.SessionDTO
// @Router /auth/session [get]
func (h *AuthHandler) session(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, sessionDTO(auth.SessionFrom(r.Context())))
}

func sessionDTO(sess *auth.Session) dto.SessionDTO {
	if sess == nil {
		return dto.SessionDTO{}
	}
	exp := sess.ExpiresAt
	return dto.SessionDTO{
		Authenticated: true,
		UserID:        sess.UserID,
		Email:         sess.Email,
		ExpiresAt:     &exp,
	}
}
