package middleware

import (
	"errors"
	"net/http"
	"strings"

	"kizuna/internal/auth"

	"github.com/rs/zerolog"
)

// SessionResolver turns an access token into a session.
type SessionResolver interface {
	Current(token string) (*auth.Session, error)
}

// SessionMiddleware resolves the caller's session once per request and puts
// it on the context. Requests without a valid session pass through with no
// session attached; guards decide what that means.
func SessionMiddleware(sessions SessionResolver, cookieName string, logger zerolog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := AccessToken(r, cookieName)
			if token == "" {
				next.ServeHTTP(w, r)
				return
			}

			sess, err := sessions.Current(token)
			if err != nil {
				if !errors.Is(err, auth.ErrSessionRevoked) {
					logger.Debug().Err(err).Msg("ignoring invalid access token")
				}
				next.ServeHTTP(w, r)
				return
			}
			next.ServeHTTP(w, r.WithContext(auth.WithSession(r.Context(), sess)))
		})
	}
}

// AccessToken reads a Bearer token, falling back to the session cookie.
func AccessToken(r *http.Request, cookieName string) string {
	if h := r.Header.Get("Authorization"); h != "" {
		parts := strings.SplitN(h, " ", 2)
		if len(parts) == 2 && strings.EqualFold(parts[0], "Bearer") {
			return strings.TrimSpace(parts[1])
		}
	}
	if c, err := r.Cookie(cookieName); err == nil {
		return c.Value
	}
	return ""
}
