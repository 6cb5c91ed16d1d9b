package contact

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"
)

// message is the wire form of a submission on a topic or queue.
type message struct {
	Name        string    `json:"name"`
	Email       string    `json:"email"`
	Phone       string    `json:"phone"`
	Message     string    `json:"message"`
	Source      string    `json:"source"`
	SubmittedAt time.Time `json:"submitted_at"`
}

func encode(s Submission, at time.Time) ([]byte, error) {
	payload, err := json.Marshal(message{
		Name:        s.Name,
		Email:       s.Email,
		Phone:       s.Phone,
		Message:     s.Message,
		Source:      s.source(),
		SubmittedAt: at.UTC(),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to encode contact message: %w", err)
	}
	return payload, nil
}

func decode(data []byte) (Submission, error) {
	var m message
	if err := json.Unmarshal(data, &m); err != nil {
		return Submission{}, fmt.Errorf("failed to decode contact message: %w", err)
	}
	if m.Email == "" || m.Message == "" {
		return Submission{}, errors.New("contact message is missing email or message")
	}
	return Submission{
		Name:    m.Name,
		Email:   m.Email,
		Phone:   m.Phone,
		Message: m.Message,
		Source:  m.Source,
	}, nil
}
