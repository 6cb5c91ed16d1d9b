// Package contact relays contact-form submissions to the school inbox.
package contact

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"kizuna/internal/pubsub"
)

const (
	Subject      = "Ново съобщение от сайта"
	AutoResponse = "Благодарим ти! Получихме съобщението ти и ще се свържем с теб скоро."
	ThankYou     = "Благодарим ти! Ще се свържем с теб възможно най-скоро."
)

// Submission is one contact-form post. Honey is the hidden spam trap field.
type Submission struct {
	Name    string `json:"name" validate:"required"`
	Email   string `json:"email" validate:"required,email"`
	Phone   string `json:"phone" validate:"required"`
	Message string `json:"message" validate:"required"`
	Source  string `json:"source"`
	Honey   string `json:"_honey"`
}

// IsSpam reports whether a bot filled the hidden field.
func (s Submission) IsSpam() bool {
	return strings.TrimSpace(s.Honey) != ""
}

func (s Submission) source() string {
	if s.Source == "" {
		return "contact"
	}
	return s.Source
}

// Relay delivers a submission.
type Relay interface {
	Send(ctx context.Context, s Submission) error
}

// Kind names a relay implementation.
type Kind string

const (
	KindFormSubmit Kind = "formsubmit"
	KindSendGrid   Kind = "sendgrid"
	KindPubSub     Kind = "pubsub"
	KindQueue      Kind = "queue"
)

func ParseKind(s string) (Kind, error) {
	switch k := Kind(strings.ToLower(strings.TrimSpace(s))); k {
	case KindFormSubmit, KindSendGrid, KindPubSub, KindQueue:
		return k, nil
	case "":
		return KindFormSubmit, nil
	default:
		return "", fmt.Errorf("unknown contact relay %q", s)
	}
}

// Options carries the settings every relay kind might need.
type Options struct {
	FormSubmitAddress string
	FormSubmitNext    string
	SendGridAPIKey    string
	FromEmail         string
	ToEmail           string
	Publisher         pubsub.Publisher
	Topic             string
	Queue             Enqueuer
	QueueName         string
}

// New builds the relay named by kind.
func New(kind Kind, opts Options) (Relay, error) {
	switch kind {
	case KindFormSubmit:
		if opts.FormSubmitAddress == "" {
			return nil, errors.New("formsubmit relay requires FORMSUBMIT_ADDRESS")
		}
		return NewFormSubmitRelay(opts.FormSubmitAddress, opts.FormSubmitNext), nil
	case KindSendGrid:
		if opts.SendGridAPIKey == "" || opts.FromEmail == "" || opts.ToEmail == "" {
			return nil, errors.New("sendgrid relay requires SENDGRID_API_KEY, CONTACT_FROM_EMAIL and CONTACT_TO_EMAIL")
		}
		return NewSendGridRelay(opts.SendGridAPIKey, opts.FromEmail, opts.ToEmail), nil
	case KindPubSub:
		if opts.Publisher == nil {
			return nil, errors.New("pubsub relay requires GCP_PROJECT_ID")
		}
		return NewPubSubRelay(opts.Publisher, opts.Topic), nil
	case KindQueue:
		if opts.Queue == nil || opts.QueueName == "" {
			return nil, errors.New("queue relay requires a database and CONTACT_QUEUE")
		}
		return NewQueueRelay(opts.Queue, opts.QueueName), nil
	default:
		return nil, fmt.Errorf("unknown contact relay %q", kind)
	}
}
