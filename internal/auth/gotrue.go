package auth

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/supabase-community/gotrue-go"
)

// Identity is the Supabase Auth surface the service uses.
type Identity interface {
	SignInWithPassword(ctx context.Context, email, password string) (*TokenResponse, error)
	SignOut(ctx context.Context, accessToken string) error
}

// TokenResponse is the part of the password grant result sessions need.
type TokenResponse struct {
	AccessToken  string
	RefreshToken string
	ExpiresAt    int64
	UserID       string
	Email        string
}

// APIError carries the backend's own message, shown to the user verbatim.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return e.Message
}

// gotrue-go reports non-2xx answers as "response status code <n>: <body>".
var statusPattern = regexp.MustCompile(`(?s)^response status code (\d{3})(?::\s*(.*))?$`)

type goTrueClient struct {
	client gotrue.Client
}

// NewGoTrueClient talks to <supabaseURL>/auth/v1 with the project anon key.
func NewGoTrueClient(supabaseURL, anonKey string) Identity {
	client := gotrue.New("", anonKey).
		WithCustomGoTrueURL(strings.TrimRight(supabaseURL, "/") + "/auth/v1").
		WithClient(http.Client{Timeout: 10 * time.Second})
	return &goTrueClient{client: client}
}

func (c *goTrueClient) SignInWithPassword(ctx context.Context, email, password string) (*TokenResponse, error) {
	var tok *TokenResponse
	err := call(ctx, func() error {
		resp, err := c.client.SignInWithEmailPassword(email, password)
		if err != nil {
			return err
		}
		tok = &TokenResponse{
			AccessToken:  resp.AccessToken,
			RefreshToken: resp.RefreshToken,
			ExpiresAt:    resp.ExpiresAt,
			UserID:       resp.User.ID.String(),
			Email:        resp.User.Email,
		}
		if tok.ExpiresAt == 0 && resp.ExpiresIn > 0 {
			tok.ExpiresAt = time.Now().Unix() + int64(resp.ExpiresIn)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return tok, nil
}

func (c *goTrueClient) SignOut(ctx context.Context, accessToken string) error {
	return call(ctx, func() error {
		return c.client.WithToken(accessToken).Logout()
	})
}

// call runs a gotrue-go request, which takes no context, and gives up when
// ctx ends. The request itself is bounded by the client timeout.
func call(ctx context.Context, fn func() error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	done := make(chan error, 1)
	go func() { done <- fn() }()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case err := <-done:
		return translate(err)
	}
}

// translate turns a status-code failure into an *APIError; transport and
// decoding failures are wrapped as they are.
func translate(err error) error {
	if err == nil {
		return nil
	}
	m := statusPattern.FindStringSubmatch(err.Error())
	if m == nil {
		return fmt.Errorf("auth request failed: %w", err)
	}
	status, _ := strconv.Atoi(m[1])
	return &APIError{Status: status, Message: errorMessage([]byte(m[2]), status)}
}

// errorMessage understands both the OAuth-style and the newer GoTrue error
// bodies.
func errorMessage(body []byte, status int) string {
	var errorResp struct {
		Error            string `json:"error"`
		ErrorDescription string `json:"error_description"`
		Msg              string `json:"msg"`
		Message          string `json:"message"`
	}
	if err := json.Unmarshal(body, &errorResp); err == nil {
		for _, m := range []string{errorResp.ErrorDescription, errorResp.Msg, errorResp.Message, errorResp.Error} {
			if m != "" {
				return m
			}
		}
	}
	return fmt.Sprintf("auth request failed: HTTP %d", status)
}
