package handler

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"kizuna/internal/auth"
	"kizuna/internal/editor"
	"kizuna/internal/model"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// planStore keeps pricing plans in memory; plans make a small editor
// instance for exercising the generic routes.
type planStore struct {
	rows      []model.PricingPlan
	deleteErr error
}

func (s *planStore) List(context.Context) ([]model.PricingPlan, error) {
	return append([]model.PricingPlan(nil), s.rows...), nil
}

func (s *planStore) Insert(_ context.Context, p *model.PricingPlan) error {
	p.ID = "p" + string(rune('0'+len(s.rows)+1))
	s.rows = append(s.rows, *p)
	return nil
}

func (s *planStore) Update(_ context.Context, p *model.PricingPlan) error {
	for i := range s.rows {
		if s.rows[i].ID == p.ID {
			s.rows[i] = *p
			return nil
		}
	}
	return errors.New("no such plan")
}

func (s *planStore) Delete(_ context.Context, id string) error {
	if s.deleteErr != nil {
		return s.deleteErr
	}
	for i := range s.rows {
		if s.rows[i].ID == id {
			s.rows = append(s.rows[:i], s.rows[i+1:]...)
			break
		}
	}
	return nil
}

func newPlanRoutes(store *planStore) http.Handler {
	ed := editor.New("plans", editor.Store[model.PricingPlan](store), editor.Definition[model.PricingPlan, model.PricingPlan]{
		Fill: func(p model.PricingPlan) model.PricingPlan { return p },
		Validate: func(p model.PricingPlan) error {
			if strings.TrimSpace(p.Name) == "" {
				return &editor.ValidationError{Message: "Името е задължително."}
			}
			return nil
		},
		Row:     func(p model.PricingPlan) model.PricingPlan { return p },
		DraftID: func(p model.PricingPlan) string { return p.ID },
		RowID:   func(p model.PricingPlan) string { return p.ID },
	}, zerolog.Nop())

	r := chi.NewRouter()
	(&editorRoutes[model.PricingPlan, model.PricingPlan]{
		ed:       ed,
		confirm:  "Да изтрием ли?",
		newDraft: func() model.PricingPlan { return model.PricingPlan{Price: "0 лв."} },
		logger:   zerolog.Nop(),
	}).mount(r)
	return r
}

type planList struct {
	Rows    []model.PricingPlan `json:"rows"`
	Confirm string              `json:"confirm"`
	Error   string              `json:"error"`
}

func decodePlans(t *testing.T, rec *httptest.ResponseRecorder) planList {
	t.Helper()
	var l planList
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &l))
	return l
}

func TestEditorRoutesSaveAndReload(t *testing.T) {
	store := &planStore{}
	h := newPlanRoutes(store)

	rec := do(t, h, http.MethodPost, "/plans", `{"name":"  "}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Името е задължително.", decodePlans(t, rec).Error)
	assert.Empty(t, store.rows)

	rec = do(t, h, http.MethodPost, "/plans", `{"name":"Групов","price":"620 лв."}`)
	require.Equal(t, http.StatusOK, rec.Code)
	l := decodePlans(t, rec)
	require.Len(t, l.Rows, 1)
	assert.Equal(t, "Да изтрием ли?", l.Confirm)

	id := l.Rows[0].ID
	rec = do(t, h, http.MethodGet, "/plans/"+id+"/draft", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Групов")

	rec = do(t, h, http.MethodPost, "/plans", `{"id":"`+id+`","name":"Индивидуален","price":"40 лв."}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Индивидуален", store.rows[0].Name)
	assert.Len(t, store.rows, 1)
}

func TestEditorRoutesDrafts(t *testing.T) {
	h := newPlanRoutes(&planStore{})

	rec := do(t, h, http.MethodGet, "/plans/new/draft", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "0 лв.")

	rec = do(t, h, http.MethodGet, "/plans/nope/draft", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = do(t, h, http.MethodPost, "/plans/validate", `{"name":"ok"}`)
	assert.Equal(t, http.StatusNoContent, rec.Code)
}

func TestEditorRoutesDelete(t *testing.T) {
	store := &planStore{rows: []model.PricingPlan{{ID: "p1", Name: "A"}, {ID: "p2", Name: "B"}}}
	h := newPlanRoutes(store)

	rec := do(t, h, http.MethodDelete, "/plans/p1", "")
	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, "Да изтрием ли?", decodePlans(t, rec).Error)
	assert.Len(t, store.rows, 2)

	rec = do(t, h, http.MethodDelete, "/plans/p1?confirm=true", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, decodePlans(t, rec).Rows, 1)

	store.deleteErr = errors.New("violates foreign key constraint")
	rec = do(t, h, http.MethodDelete, "/plans/p2?confirm=true", "")
	require.Equal(t, http.StatusBadGateway, rec.Code)
	l := decodePlans(t, rec)
	assert.Contains(t, l.Error, "foreign key")
	assert.Len(t, l.Rows, 1)
}

type fakeSessions struct {
	sess       *auth.Session
	err        error
	signedOut  []string
	signOutErr error
}

func (f *fakeSessions) SignIn(context.Context, string, string) (*auth.Session, error) {
	return f.sess, f.err
}

func (f *fakeSessions) SignOut(_ context.Context, s *auth.Session) error {
	f.signedOut = append(f.signedOut, s.UserID)
	return f.signOutErr
}

func newAuthRouter(sessions SessionManager, sess *auth.Session) http.Handler {
	r := chi.NewRouter()
	r.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
			if sess != nil {
				req = req.WithContext(auth.WithSession(req.Context(), sess))
			}
			next.ServeHTTP(w, req)
		})
	})
	NewAuthHandler(sessions, CookieOptions{Name: "sb-access-token"}, "/", validator.New(), zerolog.Nop()).RegisterRoutes(r)
	return r
}

func TestLoginSetsCookie(t *testing.T) {
	exp := time.Now().Add(time.Hour).UTC().Truncate(time.Second)
	sessions := &fakeSessions{sess: &auth.Session{UserID: "u1", Email: "a@kizuna.bg", AccessToken: "tok", ExpiresAt: exp}}
	h := newAuthRouter(sessions, nil)

	rec := do(t, h, http.MethodPost, "/auth/login", `{"email":"a@kizuna.bg","password":"secret"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, "sb-access-token", cookies[0].Name)
	assert.Equal(t, "tok", cookies[0].Value)
	assert.True(t, cookies[0].HttpOnly)
	assert.Contains(t, rec.Body.String(), `"authenticated":true`)
	assert.NotContains(t, rec.Body.String(), "tok")
}

func TestLoginRejectedReturnsBackendMessage(t *testing.T) {
	h := newAuthRouter(&fakeSessions{err: &auth.APIError{Status: 400, Message: "Invalid login credentials"}}, nil)

	rec := do(t, h, http.MethodPost, "/auth/login", `{"email":"a@kizuna.bg","password":"bad"}`)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.JSONEq(t, `{"error":"Invalid login credentials"}`, rec.Body.String())
}

func TestLoginBackendFailureIsBadGateway(t *testing.T) {
	tests := []struct {
		name string
		err  error
	}{
		{"transport", errors.New("auth request failed: dial tcp: connection refused")},
		{"unverifiable token", fmt.Errorf("failed to verify issued token: %w", errors.New("token is expired"))},
		{"auth server error", &auth.APIError{Status: http.StatusServiceUnavailable, Message: "upstream down"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newAuthRouter(&fakeSessions{err: tt.err}, nil)

			rec := do(t, h, http.MethodPost, "/auth/login", `{"email":"a@kizuna.bg","password":"pw"}`)
			assert.Equal(t, http.StatusBadGateway, rec.Code)
			assert.JSONEq(t, `{"error":"`+signInUnavailable+`"}`, rec.Body.String())
			assert.Empty(t, rec.Result().Cookies())
		})
	}
}

func TestLogout(t *testing.T) {
	sessions := &fakeSessions{signOutErr: errors.New("network")}
	h := newAuthRouter(sessions, &auth.Session{UserID: "u1"})

	rec := do(t, h, http.MethodPost, "/auth/logout", "")
	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/", rec.Header().Get("Location"))
	assert.Empty(t, rec.Body.String())
	assert.Equal(t, []string{"u1"}, sessions.signedOut)

	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, -1, cookies[0].MaxAge)
}

func TestSessionEndpoint(t *testing.T) {
	rec := do(t, newAuthRouter(&fakeSessions{}, nil), http.MethodGet, "/auth/session", "")
	assert.JSONEq(t, `{"authenticated":false}`, rec.Body.String())

	rec = do(t, newAuthRouter(&fakeSessions{}, &auth.Session{UserID: "u1", Email: "a@kizuna.bg"}), http.MethodGet, "/auth/session", "")
	assert.Contains(t, rec.Body.String(), `"user_id":"u1"`)
}

func TestEventsRedirectOnSignOut(t *testing.T) {
	notifier := auth.NewNotifier()
	sess := &auth.Session{UserID: "u1", SessionID: "s1"}

	r := chi.NewRouter()
	r.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
			next.ServeHTTP(w, req.WithContext(auth.WithSession(req.Context(), sess)))
		})
	})
	NewEventsHandler(notifier, "/login", zerolog.Nop()).RegisterRoutes(r)
	srv := httptest.NewServer(r)
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/session/events")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, "text/event-stream", resp.Header.Get("Content-Type"))

	require.Eventually(t, func() bool { return notifier.Subscribers() == 1 }, time.Second, 10*time.Millisecond)

	// Another session signing out is ignored.
	notifier.Publish(auth.Event{Type: auth.SignedOut, Session: auth.Session{SessionID: "other"}})
	notifier.Publish(auth.Event{Type: auth.SignedOut, Session: *sess})

	var lines []string
	sc := bufio.NewScanner(resp.Body)
	for sc.Scan() {
		lines = append(lines, sc.Text())
	}
	assert.Contains(t, lines, "event: redirect")
	assert.Contains(t, lines, "data: /login")
	require.Eventually(t, func() bool { return notifier.Subscribers() == 0 }, time.Second, 10*time.Millisecond)
}

func TestEventsRequireSession(t *testing.T) {
	r := chi.NewRouter()
	NewEventsHandler(auth.NewNotifier(), "/login", zerolog.Nop()).RegisterRoutes(r)
	rec := do(t, r, http.MethodGet, "/session/events", "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
