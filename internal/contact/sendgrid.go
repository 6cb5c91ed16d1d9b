package contact

import (
	"context"
	"fmt"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
)

// SendGridRelay mails the submission to the school with the visitor as
// reply-to, then sends the visitor the auto-response.
type SendGridRelay struct {
	client *sendgrid.Client
	from   *mail.Email
	to     *mail.Email
}

func NewSendGridRelay(apiKey, fromAddress, toAddress string) *SendGridRelay {
	return &SendGridRelay{
		client: sendgrid.NewSendClient(apiKey),
		from:   mail.NewEmail("Kizuna", fromAddress),
		to:     mail.NewEmail("Kizuna", toAddress),
	}
}

func (r *SendGridRelay) Send(ctx context.Context, s Submission) error {
	if s.IsSpam() {
		return nil
	}

	visitor := mail.NewEmail(s.Name, s.Email)

	inbox := mail.NewSingleEmail(r.from, Subject, r.to, InboxText(s), "")
	inbox.SetReplyTo(visitor)
	if err := r.send(ctx, inbox); err != nil {
		return err
	}

	reply := mail.NewSingleEmail(r.from, "Kizuna", visitor, AutoResponse, "")
	return r.send(ctx, reply)
}

func (r *SendGridRelay) send(ctx context.Context, m *mail.SGMailV3) error {
	resp, err := r.client.SendWithContext(ctx, m)
	if err != nil {
		return fmt.Errorf("sendgrid request failed: %w", err)
	}
	if resp.StatusCode >= 300 {
		return fmt.Errorf("sendgrid rejected message: HTTP %d: %s", resp.StatusCode, resp.Body)
	}
	return nil
}

// InboxText is the plain-text body delivered to the school.
func InboxText(s Submission) string {
	return fmt.Sprintf("Име: %s\nИмейл: %s\nТелефон: %s\nИзточник: %s\n\n%s",
		s.Name, s.Email, s.Phone, s.source(), s.Message)
}
