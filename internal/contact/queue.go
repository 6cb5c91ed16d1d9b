package contact

import (
	"context"
	"time"
)

// Enqueuer is the sending half of a pgmq queue.
type Enqueuer interface {
	Send(ctx context.Context, queue string, payload []byte) (int64, error)
}

// QueueRelay stores the submission in a Supabase queue; an Outbox delivers it.
type QueueRelay struct {
	queue Enqueuer
	name  string
	now   func() time.Time
}

func NewQueueRelay(queue Enqueuer, name string) *QueueRelay {
	return &QueueRelay{queue: queue, name: name, now: time.Now}
}

func (r *QueueRelay) Send(ctx context.Context, s Submission) error {
	if s.IsSpam() {
		return nil
	}
	payload, err := encode(s, r.now())
	if err != nil {
		return err
	}
	_, err = r.queue.Send(ctx, r.name, payload)
	return err
}
