package notification

import (
	"context"
	"strconv"

	"go-hrms/internal/events"

	"go.uber.org/zap"
)

// TypeResolver names request types in mail bodies.
type TypeResolver interface {
	ResolveByCode(ctx context.Context, code int) (*string, error)
}

//go:generate mockgen -source=notification_service.go -destination=mock/notification_service_mock.go -package=mock
type Service interface {
	HandleRequestEvent(ctx context.Context, event events.RequestLifecycleEvent) error
	HandleEmployeeCreated(ctx context.Context, event events.EmployeeCreatedEvent) error
}

type service struct {
	contacts ContactRepository
	types    TypeResolver
	mailer   Mailer
	logger   *zap.Logger
}

func NewService(contacts ContactRepository, types TypeResolver, mailer Mailer, logger ...*zap.Logger) Service {
	l := zap.L().Named("notification.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("notification.service")
	}
	return &service{contacts: contacts, types: types, mailer: mailer, logger: l}
}

// HandleRequestEvent returns an error only when recipients could not be
// looked up. Delivery failures are logged and dropped.
func (s *service) HandleRequestEvent(ctx context.Context, event events.RequestLifecycleEvent) error {
	switch event.EventType {
	case events.EventRequestCreated:
		return s.notifyManager(ctx, event)
	case events.EventRequestResponded:
		return s.notifyOwner(ctx, event)
	default:
		s.logger.Debug("request event ignored", zap.String("event_type", event.EventType))
		return nil
	}
}

func (s *service) notifyManager(ctx context.Context, event events.RequestLifecycleEvent) error {
	owner, err := s.contacts.FindByID(ctx, event.EmployeeID)
	if err != nil {
		return err
	}
	if owner == nil || owner.ManagerID == nil {
		s.logger.Info("request created without manager to notify", zap.String("request_id", event.RequestID))
		return nil
	}

	manager, err := s.contacts.FindByID(ctx, *owner.ManagerID)
	if err != nil {
		return err
	}
	if manager == nil || manager.Email == "" {
		s.logger.Warn("manager has no mailbox", zap.String("manager_id", *owner.ManagerID))
		return nil
	}

	html, err := render(requestCreatedTmpl, requestMailData{
		RequestID:    event.RequestID,
		RequestType:  s.typeName(ctx, event.RequestTypeCode),
		EmployeeName: owner.EmployeeName,
		ManagerName:  manager.EmployeeName,
	})
	if err != nil {
		s.logger.Error("render request created mail failed", zap.Error(err))
		return nil
	}

	s.deliver(ctx, Message{
		To:      []string{manager.Email},
		Subject: "New request from " + owner.EmployeeName,
		HTML:    html,
	}, event.RequestID)
	return nil
}

func (s *service) notifyOwner(ctx context.Context, event events.RequestLifecycleEvent) error {
	owner, err := s.contacts.FindByID(ctx, event.EmployeeID)
	if err != nil {
		return err
	}
	if owner == nil || owner.Email == "" {
		s.logger.Warn("request owner has no mailbox", zap.String("employee_id", event.EmployeeID))
		return nil
	}

	requestType := s.typeName(ctx, event.RequestTypeCode)
	html, err := render(requestRespondedTmpl, requestMailData{
		RequestID:    event.RequestID,
		RequestType:  requestType,
		EmployeeName: owner.EmployeeName,
		Status:       event.Status,
		Reply:        event.Reply,
	})
	if err != nil {
		s.logger.Error("render request responded mail failed", zap.Error(err))
		return nil
	}

	s.deliver(ctx, Message{
		To:      []string{owner.Email},
		Subject: "Your " + requestType + " request is " + event.Status,
		HTML:    html,
	}, event.RequestID)
	return nil
}

func (s *service) HandleEmployeeCreated(ctx context.Context, event events.EmployeeCreatedEvent) error {
	if event.Email == "" {
		s.logger.Warn("employee created without email", zap.String("employee_id", event.EmployeeID))
		return nil
	}

	html, err := render(welcomeTmpl, welcomeMailData{EmployeeName: event.EmployeeName, Email: event.Email})
	if err != nil {
		s.logger.Error("render welcome mail failed", zap.Error(err))
		return nil
	}

	s.deliver(ctx, Message{
		To:      []string{event.Email},
		Subject: "Welcome to HRMS",
		HTML:    html,
	}, event.EmployeeID)
	return nil
}

func (s *service) deliver(ctx context.Context, msg Message, ref string) {
	if err := s.mailer.Send(ctx, msg); err != nil {
		s.logger.Error("notification delivery failed", zap.String("ref", ref), zap.Strings("to", msg.To), zap.Error(err))
		return
	}
	s.logger.Info("notification delivered", zap.String("ref", ref), zap.Strings("to", msg.To))
}

func (s *service) typeName(ctx context.Context, code int) string {
	if s.types != nil {
		name, err := s.types.ResolveByCode(ctx, code)
		if err != nil {
			s.logger.Warn("resolve request type failed", zap.Int("code", code), zap.Error(err))
		}
		if name != nil {
			return *name
		}
	}
	return "type " + strconv.Itoa(code)
}
