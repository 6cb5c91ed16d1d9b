package middleware

import (
	"context"
	"net/http"

	"kizuna/internal/auth"

	"github.com/rs/zerolog"
)

// AdminChecker looks a user up in the admins allow-list.
type AdminChecker interface {
	IsAdmin(ctx context.Context, userID string) (bool, error)
}

// AdminGuard runs on every admin request. Without a session the caller is
// sent to loginPath; when the allow-list lookup fails or finds no row the
// caller is sent to homePath. Both are bare 303s so the two cases look the
// same from outside.
func AdminGuard(checker AdminChecker, loginPath, homePath string, logger zerolog.Logger) func(http.Handler) http.Handler {
	logger = logger.With().Str("service", "admin_guard").Logger()
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			sess := auth.SessionFrom(r.Context())
			if sess == nil {
				Redirect(w, loginPath)
				return
			}

			ok, err := checker.IsAdmin(r.Context(), sess.UserID)
			if err != nil {
				logger.Error().Err(err).Str("user_id", sess.UserID).Msg("admin lookup failed")
				Redirect(w, homePath)
				return
			}
			if !ok {
				logger.Info().Str("user_id", sess.UserID).Msg("not an admin")
				Redirect(w, homePath)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// Redirect answers 303 See Other with an empty body.
func Redirect(w http.ResponseWriter, location string) {
	w.Header().Set("Location", location)
	w.Header().Set("Cache-Control", "no-store")
	w.WriteHeader(http.StatusSeeOther)
}
