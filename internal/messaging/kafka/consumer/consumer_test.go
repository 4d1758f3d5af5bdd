package consumer_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"go-hrms/internal/events"
	"go-hrms/internal/messaging/kafka/consumer"
	"go-hrms/internal/notification/mock"

	kafkago "github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

// fakeReader serves queued messages and cancels the consumer once drained.
type fakeReader struct {
	queue     []kafkago.Message
	committed []int64
	cancel    context.CancelFunc
}

func (f *fakeReader) FetchMessage(ctx context.Context) (kafkago.Message, error) {
	if len(f.queue) == 0 {
		f.cancel()
		return kafkago.Message{}, ctx.Err()
	}
	msg := f.queue[0]
	f.queue = f.queue[1:]
	return msg, nil
}

func (f *fakeReader) CommitMessages(ctx context.Context, msgs ...kafkago.Message) error {
	for _, m := range msgs {
		f.committed = append(f.committed, m.Offset)
	}
	return nil
}

func encode(t *testing.T, offset int64, v any) kafkago.Message {
	t.Helper()
	b, err := json.Marshal(v)
	assert.NoError(t, err)
	return kafkago.Message{Offset: offset, Value: b}
}

func TestConsumeRequestLifecycle(t *testing.T) {
	ctrl := gomock.NewController(t)
	notifier := mock.NewMockService(ctrl)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	created := events.RequestLifecycleEvent{EventType: events.EventRequestCreated, RequestID: "r1", EmployeeID: "e1"}
	responded := events.RequestLifecycleEvent{EventType: events.EventRequestResponded, RequestID: "r2", EmployeeID: "e1", Status: "approved"}

	reader := &fakeReader{cancel: cancel, queue: []kafkago.Message{
		encode(t, 1, created),
		{Offset: 2, Value: []byte("not json")},
		encode(t, 3, responded),
	}}

	notifier.EXPECT().HandleRequestEvent(gomock.Any(), created).Return(nil)
	notifier.EXPECT().HandleRequestEvent(gomock.Any(), responded).Return(errors.New("lookup failed"))

	consumer.ConsumeRequestLifecycle(ctx, reader, notifier, zap.NewNop())

	// 3 stays uncommitted for redelivery; 2 is committed as poison.
	assert.Equal(t, []int64{1, 2}, reader.committed)
}

func TestConsumeEmployeeLifecycle(t *testing.T) {
	ctrl := gomock.NewController(t)
	notifier := mock.NewMockService(ctrl)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	event := events.EmployeeCreatedEvent{EventType: events.EventEmployeeCreated, EmployeeID: "e9", EmployeeName: "Dana", Email: "dana@example.com"}
	reader := &fakeReader{cancel: cancel, queue: []kafkago.Message{
		encode(t, 7, event),
		encode(t, 8, events.EmployeeCreatedEvent{EventType: "employee_archived", EmployeeID: "e9"}),
	}}

	notifier.EXPECT().HandleEmployeeCreated(gomock.Any(), event).Return(nil)

	consumer.ConsumeEmployeeLifecycle(ctx, reader, notifier, zap.NewNop())

	assert.Equal(t, []int64{7, 8}, reader.committed)
}
