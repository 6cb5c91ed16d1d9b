package router

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	_ "kizuna/docs"
	"kizuna/internal/api/v1/handler"
	"kizuna/internal/auth"
	"kizuna/internal/editor"
	"kizuna/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type tokenSessions map[string]*auth.Session

func (s tokenSessions) Current(token string) (*auth.Session, error) {
	if sess, ok := s[token]; ok {
		return sess, nil
	}
	return nil, errors.New("invalid token")
}

type allowList struct {
	admins map[string]bool
	err    error
}

func (a allowList) IsAdmin(_ context.Context, userID string) (bool, error) {
	return a.admins[userID], a.err
}

type fakeDashboard struct{}

func (fakeDashboard) Get(context.Context) (*service.Dashboard, error) {
	return &service.Dashboard{Sections: []service.DashboardSection{{Title: "Курсове", Href: "/admin/courses", Count: 2}}}, nil
}

type okHealth struct{}

func (okHealth) Keepalive(context.Context) error { return nil }

func testRoutes(admins allowList) http.Handler {
	log := zerolog.Nop()
	v := validator.New()
	notifier := auth.NewNotifier()

	h := Handlers{
		Public:  handler.NewPublicHandler(handler.PublicServices{}, v, log),
		Contact: handler.NewContactHandler(nil, v, log),
		Health:  handler.NewHealthHandler(okHealth{}, log),
		Auth:    handler.NewAuthHandler(nil, handler.CookieOptions{Name: "sb-access-token"}, "/", v, log),
		Admin: handler.NewAdminHandler(handler.AdminEditors{
			Courses:     editor.NewCourseEditor(nil, log),
			Calligraphy: editor.NewCalligraphyEditor(nil, log),
			Teachers:    editor.NewTeacherEditor(nil, "teachers", log),
			News:        editor.NewNewsEditor(nil, log),
			Quiz:        editor.NewQuizEditor(nil, log),
		}, nil, nil, fakeDashboard{}, nil, log),
		Upload: handler.NewUploadHandler(nil, nil, handler.UploadTargets{}, log),
		Events: handler.NewEventsHandler(notifier, "/login", log),
	}
	sessions := tokenSessions{
		"admin-token": {UserID: "admin"},
		"user-token":  {UserID: "visitor"},
	}
	return Routes(RouteOptions{
		SessionCookieName: "sb-access-token",
		LoginPath:         "/login",
		HomePath:          "/",
		AllowedOrigins:    []string{"https://kizuna.bg"},
	}, h, Guards{Sessions: sessions, Admins: admins}, log)
}

func get(h http.Handler, path, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if token != "" {
		req.AddCookie(&http.Cookie{Name: "sb-access-token", Value: token})
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestAdminGuardRedirects(t *testing.T) {
	h := testRoutes(allowList{admins: map[string]bool{"admin": true}})

	rec := get(h, "/v1/admin", "")
	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/login", rec.Header().Get("Location"))
	assert.Empty(t, rec.Body.String())

	rec = get(h, "/v1/admin", "garbage")
	assert.Equal(t, "/login", rec.Header().Get("Location"))

	rec = get(h, "/v1/admin/courses", "user-token")
	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/", rec.Header().Get("Location"))
	assert.Empty(t, rec.Body.String())

	rec = get(h, "/v1/admin", "admin-token")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "/admin/courses")
}

func TestAdminGuardLookupFailure(t *testing.T) {
	h := testRoutes(allowList{err: errors.New("permission denied for table admins")})

	rec := get(h, "/v1/admin", "admin-token")
	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/", rec.Header().Get("Location"))
}

func TestPublicRoutesSkipGuard(t *testing.T) {
	h := testRoutes(allowList{})

	rec := get(h, "/api/keepalive", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"ok":true`)

	rec = get(h, "/v1/auth/session", "admin-token")
	assert.Contains(t, rec.Body.String(), `"user_id":"admin"`)
}

func TestSwaggerDoc(t *testing.T) {
	rec := get(testRoutes(allowList{}), "/swagger/doc.json", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"title": "Kizuna API"`)
	assert.Contains(t, rec.Body.String(), "/news/{slug}")
}

func TestCORSPreflight(t *testing.T) {
	h := testRoutes(allowList{})
	req := httptest.NewRequest(http.MethodOptions, "/v1/contact", nil)
	req.Header.Set("Origin", "https://kizuna.bg")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.Equal(t, "https://kizuna.bg", rec.Header().Get("Access-Control-Allow-Origin"))
	assert.Equal(t, "true", rec.Header().Get("Access-Control-Allow-Credentials"))
}
