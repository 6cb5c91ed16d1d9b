package contact

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"kizuna/internal/pgmq"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// memQueue is an in-memory pgmq stand-in. Every read bumps ReadCount.
type memQueue struct {
	mu       sync.Mutex
	next     int64
	msgs     []pgmq.Message
	deleted  []int64
	archived []int64
	readErr  error
}

func (q *memQueue) Send(_ context.Context, _ string, payload []byte) (int64, error) {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.next++
	q.msgs = append(q.msgs, pgmq.Message{ID: q.next, Data: payload})
	return q.next, nil
}

func (q *memQueue) ReadWithPoll(_ context.Context, _ string, _ time.Duration, n int, _ time.Duration) ([]pgmq.Message, error) {
	q.mu.Lock()
	defer q.mu.Unlock()
	if q.readErr != nil {
		return nil, q.readErr
	}
	var out []pgmq.Message
	for i := range q.msgs {
		if len(out) == n {
			break
		}
		q.msgs[i].ReadCount++
		out = append(out, q.msgs[i])
	}
	return out, nil
}

func (q *memQueue) remove(id int64) {
	for i, m := range q.msgs {
		if m.ID == id {
			q.msgs = append(q.msgs[:i], q.msgs[i+1:]...)
			return
		}
	}
}

func (q *memQueue) Delete(_ context.Context, _ string, id int64) error {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.remove(id)
	q.deleted = append(q.deleted, id)
	return nil
}

func (q *memQueue) Archive(_ context.Context, _ string, id int64) error {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.remove(id)
	q.archived = append(q.archived, id)
	return nil
}

type recordingRelay struct {
	mu   sync.Mutex
	err  error
	sent []Submission
}

func (r *recordingRelay) Send(_ context.Context, s Submission) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return r.err
	}
	r.sent = append(r.sent, s)
	return nil
}

func TestQueueRelayEnqueues(t *testing.T) {
	q := &memQueue{}
	relay := NewQueueRelay(q, "contact")
	require.NoError(t, relay.Send(context.Background(), sample()))

	spam := sample()
	spam.Honey = "x"
	require.NoError(t, relay.Send(context.Background(), spam))

	require.Len(t, q.msgs, 1)
	s, err := decode(q.msgs[0].Data)
	require.NoError(t, err)
	assert.Equal(t, "maria@example.com", s.Email)
	assert.Equal(t, "contact", s.Source)
}

func TestOutboxDeliversAndDeletes(t *testing.T) {
	q := &memQueue{}
	require.NoError(t, NewQueueRelay(q, "contact").Send(context.Background(), sample()))
	_, err := q.Send(context.Background(), "contact", []byte("not json"))
	require.NoError(t, err)

	relay := &recordingRelay{}
	n, err := NewOutbox(q, "contact", relay, zerolog.Nop()).drain(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 1, n)
	require.Len(t, relay.sent, 1)
	assert.Equal(t, "Мария", relay.sent[0].Name)
	assert.Equal(t, []int64{1}, q.deleted)
	assert.Equal(t, []int64{2}, q.archived)
	assert.Empty(t, q.msgs)
}

func TestOutboxRetriesThenArchives(t *testing.T) {
	q := &memQueue{}
	require.NoError(t, NewQueueRelay(q, "contact").Send(context.Background(), sample()))

	ob := NewOutbox(q, "contact", &recordingRelay{err: errors.New("HTTP 503")}, zerolog.Nop())
	for i := 1; i < outboxMaxAttempts; i++ {
		_, err := ob.drain(context.Background())
		require.NoError(t, err)
		require.Len(t, q.msgs, 1, "attempt %d", i)
	}

	_, err := ob.drain(context.Background())
	require.NoError(t, err)
	assert.Empty(t, q.msgs)
	assert.Equal(t, []int64{1}, q.archived)
	assert.Empty(t, q.deleted)
}

func TestOutboxRunStopsOnCancel(t *testing.T) {
	q := &memQueue{readErr: errors.New("connection refused")}
	ob := NewOutbox(q, "contact", &recordingRelay{}, zerolog.Nop())
	ob.backoff = time.Millisecond

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- ob.Run(ctx) }()

	time.Sleep(10 * time.Millisecond)
	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(time.Second):
		t.Fatal("outbox did not stop")
	}
}
