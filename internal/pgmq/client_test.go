package pgmq

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMock(t *testing.T) (*Client, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return New(db), mock
}

func TestSend(t *testing.T) {
	c, mock := newMock(t)
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT pgmq.send($1, $2::jsonb)`)).
		WithArgs("contact", `{"name":"Иван"}`).
		WillReturnRows(sqlmock.NewRows([]string{"send"}).AddRow(int64(42)))

	id, err := c.Send(context.Background(), "contact", []byte(`{"name":"Иван"}`))
	require.NoError(t, err)
	assert.Equal(t, int64(42), id)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestReadWithPoll(t *testing.T) {
	c, mock := newMock(t)
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT msg_id, read_ct, message FROM pgmq.read_with_poll($1, $2, $3, $4)`)).
		WithArgs("contact", 60, 5, 1).
		WillReturnRows(sqlmock.NewRows([]string{"msg_id", "read_ct", "message"}).
			AddRow(int64(1), 1, []byte(`{"a":1}`)).
			AddRow(int64(2), 3, []byte(`{"b":2}`)))

	msgs, err := c.ReadWithPoll(context.Background(), "contact", time.Minute, 5, 200*time.Millisecond)
	require.NoError(t, err)
	require.Len(t, msgs, 2)
	assert.Equal(t, 3, msgs[1].ReadCount)
	assert.JSONEq(t, `{"a":1}`, string(msgs[0].Data))
}

func TestDeleteAndArchive(t *testing.T) {
	c, mock := newMock(t)
	mock.ExpectExec(regexp.QuoteMeta(`SELECT pgmq.delete($1, $2::bigint)`)).
		WithArgs("contact", int64(7)).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(regexp.QuoteMeta(`SELECT pgmq.archive($1, $2::bigint)`)).
		WithArgs("contact", int64(8)).WillReturnError(errors.New("queue missing"))

	require.NoError(t, c.Delete(context.Background(), "contact", 7))
	assert.ErrorContains(t, c.Archive(context.Background(), "contact", 8), "queue missing")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreate(t *testing.T) {
	c, mock := newMock(t)
	mock.ExpectExec(regexp.QuoteMeta(`SELECT pgmq.create($1)`)).
		WithArgs("contact").WillReturnResult(sqlmock.NewResult(0, 0))

	require.NoError(t, c.Create(context.Background(), "contact"))
	assert.NoError(t, mock.ExpectationsWereMet())
}
