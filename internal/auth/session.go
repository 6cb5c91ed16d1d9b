// Package auth resolves admin sessions against Supabase Auth.
package auth

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

var (
	ErrNoSession      = errors.New("no session")
	ErrSessionRevoked = errors.New("session revoked")
)

// Session is the authenticated principal of a request.
type Session struct {
	UserID      string    `json:"user_id"`
	Email       string    `json:"email"`
	SessionID   string    `json:"session_id"`
	AccessToken string    `json:"-"`
	ExpiresAt   time.Time `json:"expires_at"`
}

// Key identifies the session for revocation; tokens without a session_id
// claim are keyed by the token itself.
func (s Session) Key() string {
	if s.SessionID != "" {
		return s.SessionID
	}
	return s.AccessToken
}

type contextKey string

const sessionContextKey = contextKey("session")

func WithSession(ctx context.Context, s *Session) context.Context {
	return context.WithValue(ctx, sessionContextKey, s)
}

// SessionFrom returns the request's session, or nil.
func SessionFrom(ctx context.Context) *Session {
	s, _ := ctx.Value(sessionContextKey).(*Session)
	return s
}

// Sessions verifies tokens, tracks sign-outs until the token would expire
// anyway, and announces sign-in and sign-out on its Notifier.
type Sessions struct {
	identity Identity
	verifier *Verifier
	notifier *Notifier
	logger   zerolog.Logger

	mu      sync.Mutex
	revoked map[string]time.Time
	now     func() time.Time
}

func NewSessions(identity Identity, verifier *Verifier, logger zerolog.Logger) *Sessions {
	return &Sessions{
		identity: identity,
		verifier: verifier,
		notifier: NewNotifier(),
		logger:   logger.With().Str("service", "auth").Logger(),
		revoked:  make(map[string]time.Time),
		now:      time.Now,
	}
}

func (s *Sessions) Notifier() *Notifier {
	return s.notifier
}

// Current resolves an access token into a session.
func (s *Sessions) Current(token string) (*Session, error) {
	if token == "" {
		return nil, ErrNoSession
	}
	claims, err := s.verifier.Verify(token)
	if err != nil {
		return nil, err
	}

	sess := sessionFromClaims(token, claims)
	s.mu.Lock()
	_, revoked := s.revoked[sess.Key()]
	s.mu.Unlock()
	if revoked {
		return nil, ErrSessionRevoked
	}
	return sess, nil
}

// SignIn exchanges credentials for a session. Backend failures are returned
// as *APIError with the backend's message.
func (s *Sessions) SignIn(ctx context.Context, email, password string) (*Session, error) {
	tok, err := s.identity.SignInWithPassword(ctx, email, password)
	if err != nil {
		return nil, err
	}

	sess, err := s.Current(tok.AccessToken)
	if err != nil {
		return nil, fmt.Errorf("failed to verify issued token: %w", err)
	}

	s.logger.Info().Str("user_id", sess.UserID).Msg("signed in")
	s.notifier.Publish(Event{Type: SignedIn, Session: *sess})
	return sess, nil
}

// SignOut revokes the session locally even when the backend call fails, so
// the token stops working here either way.
func (s *Sessions) SignOut(ctx context.Context, sess *Session) error {
	if sess == nil {
		return ErrNoSession
	}

	s.mu.Lock()
	now := s.now()
	for k, exp := range s.revoked {
		if now.After(exp) {
			delete(s.revoked, k)
		}
	}
	s.revoked[sess.Key()] = sess.ExpiresAt
	s.mu.Unlock()

	s.notifier.Publish(Event{Type: SignedOut, Session: *sess})
	s.logger.Info().Str("user_id", sess.UserID).Msg("signed out")

	if err := s.identity.SignOut(ctx, sess.AccessToken); err != nil {
		return fmt.Errorf("backend sign-out failed: %w", err)
	}
	return nil
}

func sessionFromClaims(token string, c *Claims) *Session {
	sess := &Session{
		UserID:      c.Subject,
		Email:       c.Email,
		SessionID:   c.SessionID,
		AccessToken: token,
	}
	if c.ExpiresAt != nil {
		sess.ExpiresAt = c.ExpiresAt.Time
	}
	return sess
}
