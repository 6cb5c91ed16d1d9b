// Package pgmq talks to Supabase Queues (the pgmq extension) over the
// shared database pool.
package pgmq

import (
	"context"
	"database/sql"
	"fmt"
	"time"
)

// Client wraps a Postgres DB for pgmq queue operations.
type Client struct {
	db *sql.DB
}

// New returns a new PGMQ client backed by the given DB connection.
func New(db *sql.DB) *Client {
	return &Client{db: db}
}

// Message is a single pgmq message. ReadCount counts deliveries including
// the current one.
type Message struct {
	ID        int64
	ReadCount int
	Data      []byte
}

// Create makes the queue if it does not exist yet.
func (c *Client) Create(ctx context.Context, queue string) error {
	if _, err := c.db.ExecContext(ctx, `SELECT pgmq.create($1)`, queue); err != nil {
		return fmt.Errorf("pgmq create %s failed: %w", queue, err)
	}
	return nil
}

// Send pushes a JSON payload into the queue and returns the message id.
func (c *Client) Send(ctx context.Context, queue string, payload []byte) (int64, error) {
	var id int64
	err := c.db.QueryRowContext(ctx, `SELECT pgmq.send($1, $2::jsonb)`, queue, string(payload)).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("pgmq send to %s failed: %w", queue, err)
	}
	return id, nil
}

// ReadWithPoll waits up to poll for messages and hides the ones it returns
// for visibility. A message that is neither deleted nor archived reappears
// after that.
func (c *Client) ReadWithPoll(ctx context.Context, queue string, visibility time.Duration, maxMessages int, poll time.Duration) ([]Message, error) {
	rows, err := c.db.QueryContext(ctx,
		`SELECT msg_id, read_ct, message FROM pgmq.read_with_poll($1, $2, $3, $4)`,
		queue, seconds(visibility), maxMessages, seconds(poll))
	if err != nil {
		return nil, fmt.Errorf("pgmq read_with_poll on %s failed: %w", queue, err)
	}
	defer rows.Close()

	var msgs []Message
	for rows.Next() {
		var m Message
		if err := rows.Scan(&m.ID, &m.ReadCount, &m.Data); err != nil {
			return nil, fmt.Errorf("pgmq read scan failed: %w", err)
		}
		msgs = append(msgs, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("pgmq read rows error: %w", err)
	}
	return msgs, nil
}

// Delete removes a processed message.
func (c *Client) Delete(ctx context.Context, queue string, id int64) error {
	if _, err := c.db.ExecContext(ctx, `SELECT pgmq.delete($1, $2::bigint)`, queue, id); err != nil {
		return fmt.Errorf("pgmq delete %d failed: %w", id, err)
	}
	return nil
}

// Archive moves a message that will never succeed to the queue's archive table.
func (c *Client) Archive(ctx context.Context, queue string, id int64) error {
	if _, err := c.db.ExecContext(ctx, `SELECT pgmq.archive($1, $2::bigint)`, queue, id); err != nil {
		return fmt.Errorf("pgmq archive %d failed: %w", id, err)
	}
	return nil
}

func seconds(d time.Duration) int {
	s := int(d / time.Second)
	if s < 1 {
		return 1
	}
	return s
}
