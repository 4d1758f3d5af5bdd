package consumer

import (
	"context"
	"encoding/json"

	"go-hrms/internal/events"
	"go-hrms/internal/notification"

	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

// MessageReader is the part of *kafkago.Reader the consumers need.
type MessageReader interface {
	FetchMessage(ctx context.Context) (kafkago.Message, error)
	CommitMessages(ctx context.Context, msgs ...kafkago.Message) error
}

// ConsumeRequestLifecycle mails managers and owners as requests are raised
// and answered. A message is committed once handled or when it cannot be
// decoded; a handler error leaves it uncommitted for redelivery.
func ConsumeRequestLifecycle(
	ctx context.Context,
	reader MessageReader,
	notifier notification.Service,
	logger *zap.Logger,
) {
	log := logger.Named("kafka.consumer.request_lifecycle")
	consume(ctx, reader, log, func(ctx context.Context, event events.RequestLifecycleEvent) error {
		if err := notifier.HandleRequestEvent(ctx, event); err != nil {
			log.Error("handle request event failed",
				zap.String("event_type", event.EventType),
				zap.String("request_id", event.RequestID),
				zap.Error(err),
			)
			return err
		}
		log.Info("request event handled",
			zap.String("event_type", event.EventType),
			zap.String("request_id", event.RequestID),
			zap.String("trace_id", event.TraceID),
		)
		return nil
	})
}

func ConsumeEmployeeLifecycle(
	ctx context.Context,
	reader MessageReader,
	notifier notification.Service,
	logger *zap.Logger,
) {
	log := logger.Named("kafka.consumer.employee_lifecycle")
	consume(ctx, reader, log, func(ctx context.Context, event events.EmployeeCreatedEvent) error {
		if event.EventType != "" && event.EventType != events.EventEmployeeCreated {
			return nil
		}
		if err := notifier.HandleEmployeeCreated(ctx, event); err != nil {
			log.Error("handle employee_created event failed",
				zap.String("employee_id", event.EmployeeID),
				zap.Error(err),
			)
			return err
		}
		log.Info("welcome mail handled", zap.String("employee_id", event.EmployeeID))
		return nil
	})
}

func consume[T any](ctx context.Context, reader MessageReader, log *zap.Logger, handle func(context.Context, T) error) {
	log.Info("consumer started")

	for {
		msg, err := reader.FetchMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				log.Info("consumer stopped")
				return
			}
			log.Error("fetch message failed", zap.Error(err))
			continue
		}

		var event T
		if err := json.Unmarshal(msg.Value, &event); err != nil {
			log.Error("decode event failed",
				zap.Int64("offset", msg.Offset),
				zap.Error(err),
			)
			_ = reader.CommitMessages(ctx, msg)
			continue
		}

		if err := handle(ctx, event); err != nil {
			continue
		}

		if err := reader.CommitMessages(ctx, msg); err != nil {
			log.Error("commit message failed", zap.Error(err))
		}
	}
}
