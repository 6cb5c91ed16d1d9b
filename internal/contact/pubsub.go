package contact

import (
	"context"
	"time"

	"kizuna/internal/pubsub"
)

// PubSubRelay hands the submission to a topic; delivery is a subscriber's job.
type PubSubRelay struct {
	publisher pubsub.Publisher
	topic     string
	now       func() time.Time
}

func NewPubSubRelay(publisher pubsub.Publisher, topic string) *PubSubRelay {
	return &PubSubRelay{publisher: publisher, topic: topic, now: time.Now}
}

func (r *PubSubRelay) Send(ctx context.Context, s Submission) error {
	if s.IsSpam() {
		return nil
	}

	payload, err := encode(s, r.now())
	if err != nil {
		return err
	}

	if _, err := r.publisher.Publish(ctx, r.topic, payload, map[string]string{"source": s.source()}); err != nil {
		return err
	}
	return nil
}
