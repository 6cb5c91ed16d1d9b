package contact

import (
	"context"
	"time"

	"kizuna/internal/pgmq"

	"github.com/rs/zerolog"
)

const (
	outboxBatch       = 5
	outboxVisibility  = 2 * time.Minute
	outboxPoll        = 5 * time.Second
	outboxMaxAttempts = 5
)

// Inbox is the reading half of a pgmq queue.
type Inbox interface {
	ReadWithPoll(ctx context.Context, queue string, visibility time.Duration, maxMessages int, poll time.Duration) ([]pgmq.Message, error)
	Delete(ctx context.Context, queue string, id int64) error
	Archive(ctx context.Context, queue string, id int64) error
}

// Outbox delivers queued submissions. A failed delivery is retried when the
// message becomes visible again; after outboxMaxAttempts reads it is archived.
type Outbox struct {
	inbox   Inbox
	queue   string
	deliver Relay
	backoff time.Duration
	logger  zerolog.Logger
}

func NewOutbox(inbox Inbox, queue string, deliver Relay, logger zerolog.Logger) *Outbox {
	return &Outbox{
		inbox:   inbox,
		queue:   queue,
		deliver: deliver,
		backoff: time.Second,
		logger:  logger.With().Str("service", "contact_outbox").Str("queue", queue).Logger(),
	}
}

// Run processes the queue until ctx is done.
func (o *Outbox) Run(ctx context.Context) error {
	o.logger.Info().Msg("Starting contact outbox")
	for {
		select {
		case <-ctx.Done():
			o.logger.Info().Msg("Shutting down contact outbox")
			return nil
		default:
		}

		if _, err := o.drain(ctx); err != nil {
			if ctx.Err() != nil {
				continue
			}
			o.logger.Error().Err(err).Msg("Error reading contact queue")
			select {
			case <-ctx.Done():
			case <-time.After(o.backoff):
			}
		}
	}
}

// drain handles one batch and reports how many messages were delivered.
func (o *Outbox) drain(ctx context.Context) (int, error) {
	msgs, err := o.inbox.ReadWithPoll(ctx, o.queue, outboxVisibility, outboxBatch, outboxPoll)
	if err != nil {
		return 0, err
	}

	delivered := 0
	for _, msg := range msgs {
		log := o.logger.With().Int64("msg_id", msg.ID).Int("read_count", msg.ReadCount).Logger()

		s, err := decode(msg.Data)
		if err != nil {
			log.Error().Err(err).Msg("Unreadable contact message; archiving")
			o.archive(ctx, msg.ID, log)
			continue
		}

		if err := o.deliver.Send(ctx, s); err != nil {
			if msg.ReadCount >= outboxMaxAttempts {
				log.Error().Err(err).Msg("Contact delivery failed for the last time; archiving")
				o.archive(ctx, msg.ID, log)
			} else {
				log.Warn().Err(err).Msg("Contact delivery failed; will retry")
			}
			continue
		}

		if err := o.inbox.Delete(ctx, o.queue, msg.ID); err != nil {
			// Delivered but still queued: it will be delivered again.
			log.Error().Err(err).Msg("Error deleting contact message")
			continue
		}
		delivered++
		log.Info().Str("source", s.Source).Msg("Contact message delivered")
	}
	return delivered, nil
}

func (o *Outbox) archive(ctx context.Context, id int64, log zerolog.Logger) {
	if err := o.inbox.Archive(ctx, o.queue, id); err != nil {
		log.Error().Err(err).Msg("Error archiving contact message")
	}
}
