package kafka_test

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"go-hrms/internal/messaging/kafka"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
)

func validEvent() kafka.OutboxEvent {
	return kafka.OutboxEvent{
		ID:            "o1",
		AggregateType: "request",
		AggregateID:   "r1",
		EventType:     "request_created",
		Topic:         "hr.request.lifecycle.v1",
		Payload:       []byte(`{}`),
		Status:        kafka.OutboxStatusPending,
	}
}

func TestValidateOutboxEvent(t *testing.T) {
	assert.NoError(t, kafka.ValidateOutboxEvent(validEvent()))

	e := validEvent()
	e.Topic = ""
	assert.Error(t, kafka.ValidateOutboxEvent(e))

	e = validEvent()
	e.Payload = nil
	assert.Error(t, kafka.ValidateOutboxEvent(e))

	e = validEvent()
	e.Status = "queued"
	assert.EqualError(t, kafka.ValidateOutboxEvent(e), "invalid outbox status: queued")
}

func TestOutboxRepository_CreateInTx(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO outbox_events").
		WithArgs("o1", "", "request", "r1", "request_created", "hr.request.lifecycle.v1", []byte(`{}`), kafka.OutboxStatusPending).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	tx, err := db.Begin()
	assert.NoError(t, err)
	assert.NoError(t, kafka.NewOutboxRepository(db).WithTx(tx).Create(context.Background(), validEvent()))
	assert.NoError(t, tx.Commit())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestOutboxRepository_CreateRejectsInvalid(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	e := validEvent()
	e.ID = ""
	assert.Error(t, kafka.NewOutboxRepository(db).Create(context.Background(), e))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestOutboxRepository_ListPending(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	now := time.Now()
	rows := sqlmock.NewRows([]string{"id", "request_id", "aggregate_type", "aggregate_id", "event_type", "topic", "payload", "status", "retry_count", "next_retry_at", "created_at"}).
		AddRow("o1", "req-1", "request", "r1", "request_created", "hr.request.lifecycle.v1", []byte(`{"a":1}`), "pending", 0, now, now).
		AddRow("o2", "", "employee", "e1", "employee_created", "hr.employee.lifecycle.v1", []byte(`{"b":2}`), "failed", 2, now, now)
	mock.ExpectQuery("SELECT").WithArgs(kafka.OutboxStatusPending, kafka.OutboxStatusFailed, 50).WillReturnRows(rows)

	events, err := kafka.NewOutboxRepository(db).ListPending(context.Background(), 50)
	assert.NoError(t, err)
	assert.Len(t, events, 2)
	assert.Equal(t, "req-1", events[0].RequestID)
	assert.Equal(t, 2, events[1].RetryCount)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestOutboxRepository_MarkFailedTruncatesReason(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	reason := strings.Repeat("x", 800)
	mock.ExpectExec("UPDATE outbox_events").
		WithArgs("o1", kafka.OutboxStatusFailed, strings.Repeat("x", 500), 10, 15).
		WillReturnResult(sqlmock.NewResult(0, 1))

	assert.NoError(t, kafka.NewOutboxRepository(db).MarkFailed(context.Background(), "o1", reason))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestOutboxRepository_MarkSentError(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	mock.ExpectExec("UPDATE outbox_events").WithArgs("o1", kafka.OutboxStatusSent).WillReturnError(errors.New("conn reset"))

	assert.Error(t, kafka.NewOutboxRepository(db).MarkSent(context.Background(), "o1"))
	assert.NoError(t, mock.ExpectationsWereMet())
}
