package contact

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const formSubmitBaseURL = "https://formsubmit.co/"

// FormSubmitRelay posts the same form the site's hidden iframe used to post.
// The response body is never read; any 2xx or 3xx counts as delivered.
type FormSubmitRelay struct {
	client  *http.Client
	baseURL string
	address string
	next    string
}

func NewFormSubmitRelay(address, next string) *FormSubmitRelay {
	return &FormSubmitRelay{
		client: &http.Client{
			Timeout: 15 * time.Second,
			CheckRedirect: func(*http.Request, []*http.Request) error {
				return http.ErrUseLastResponse
			},
		},
		baseURL: formSubmitBaseURL,
		address: address,
		next:    next,
	}
}

func (r *FormSubmitRelay) Send(ctx context.Context, s Submission) error {
	if s.IsSpam() {
		return nil
	}

	form := url.Values{
		"name":          {s.Name},
		"email":         {s.Email},
		"phone":         {s.Phone},
		"message":       {s.Message},
		"source":        {s.source()},
		"_subject":      {Subject},
		"_autoresponse": {AutoResponse},
		"_captcha":      {"false"},
		"_next":         {r.next},
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, r.baseURL+url.PathEscape(r.address), strings.NewReader(form.Encode()))
	if err != nil {
		return fmt.Errorf("failed to create formsubmit request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := r.client.Do(req)
	if err != nil {
		return fmt.Errorf("formsubmit request failed: %w", err)
	}
	defer func() {
		_, _ = io.Copy(io.Discard, resp.Body)
		_ = resp.Body.Close()
	}()

	if resp.StatusCode >= 400 {
		return fmt.Errorf("formsubmit rejected submission: HTTP %d", resp.StatusCode)
	}
	return nil
}
