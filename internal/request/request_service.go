package request

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"strings"
	"time"

	"go-hrms/internal/events"
	"go-hrms/internal/identity"
	"go-hrms/internal/messaging/kafka"
	requesterrors "go-hrms/internal/request/errors"
	"go-hrms/internal/shared/contextutil"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const dateLayout = "2006-01-02"

//go:generate mockgen -source=request_service.go -destination=mock/request_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, caller identity.Caller, req CreateRequestRequest) (RequestResponse, error)
	ListForCaller(ctx context.Context, caller identity.Caller) ([]RequestViewResponse, error)
	ListForApprover(ctx context.Context, caller identity.Caller) ([]RequestViewResponse, error)
	Respond(ctx context.Context, caller identity.Caller, req RespondRequestRequest) (RequestResponse, error)
	Update(ctx context.Context, caller identity.Caller, req UpdateRequestRequest) (RequestResponse, error)
	Delete(ctx context.Context, caller identity.Caller, req DeleteRequestRequest) (RequestResponse, error)
	GetByID(ctx context.Context, caller identity.Caller, id string) (RequestResponse, error)
}

type service struct {
	db     *sql.DB
	repo   Repository
	outbox kafka.OutboxRepository
	now    func() time.Time
	logger *zap.Logger
}

func NewService(db *sql.DB, repo Repository, logger ...*zap.Logger) Service {
	return NewServiceWithOutbox(db, repo, nil, logger...)
}

func NewServiceWithOutbox(db *sql.DB, repo Repository, outboxRepo kafka.OutboxRepository, logger ...*zap.Logger) Service {
	l := zap.L().Named("request.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("request.service")
	}
	return &service{
		db:     db,
		repo:   repo,
		outbox: outboxRepo,
		now:    func() time.Time { return time.Now().UTC() },
		logger: l,
	}
}

func (s *service) Create(ctx context.Context, caller identity.Caller, req CreateRequestRequest) (RequestResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("create request requested",
		zap.String("request_id", rid),
		zap.String("caller_id", caller.ID),
		zap.Int("request_type_code", req.RequestTypeCode),
	)

	callerID, err := uuid.Parse(caller.ID)
	if err != nil {
		return RequestResponse{}, requesterrors.ErrInvalidCallerID
	}
	from, err := parseOptionalDate(req.From)
	if err != nil {
		s.logger.Warn("create request invalid from date", zap.String("from", req.From))
		return RequestResponse{}, err
	}
	to, err := parseOptionalDate(req.To)
	if err != nil {
		s.logger.Warn("create request invalid to date", zap.String("to", req.To))
		return RequestResponse{}, err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("create request begin tx failed", zap.Error(err))
		return RequestResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	now := s.now()
	r := &Request{
		ID:              uuid.New(),
		EmployeeID:      callerID,
		RequestTypeCode: req.RequestTypeCode,
		Description:     req.Description,
		From:            from,
		To:              to,
		FileName:        req.FileName,
		Status:          StatusPending,
		CreatedBy:       callerID,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	if err := qtx.Create(ctx, r); err != nil {
		s.logger.Error("create request persist failed", zap.Error(err))
		return RequestResponse{}, err
	}

	if err := s.enqueue(ctx, tx, events.EventRequestCreated, caller, r); err != nil {
		return RequestResponse{}, err
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("create request commit failed", zap.Error(err))
		return RequestResponse{}, err
	}
	s.logger.Info("create request success",
		zap.String("request_id", rid),
		zap.String("id", r.ID.String()),
		zap.String("employee_id", caller.ID),
	)

	return mapToResponse(*r), nil
}

func (s *service) ListForCaller(ctx context.Context, caller identity.Caller) ([]RequestViewResponse, error) {
	if _, err := uuid.Parse(caller.ID); err != nil {
		return nil, requesterrors.ErrInvalidCallerID
	}

	views, err := s.repo.ListByEmployee(ctx, caller.ID)
	if err != nil {
		s.logger.Error("list own requests failed", zap.String("caller_id", caller.ID), zap.Error(err))
		return nil, err
	}
	return mapToViewListResponse(views), nil
}

// ListForApprover returns every request for role admin and the direct
// reports' requests for everyone else, super_admin included.
func (s *service) ListForApprover(ctx context.Context, caller identity.Caller) ([]RequestViewResponse, error) {
	if _, err := uuid.Parse(caller.ID); err != nil {
		return nil, requesterrors.ErrInvalidCallerID
	}

	var (
		views []RequestView
		err   error
	)
	if caller.Role == identity.RoleAdmin {
		views, err = s.repo.ListAll(ctx)
	} else {
		views, err = s.repo.ListByManager(ctx, caller.ID)
	}
	if err != nil {
		s.logger.Error("list approver requests failed",
			zap.String("caller_id", caller.ID),
			zap.String("role", string(caller.Role)),
			zap.Error(err),
		)
		return nil, err
	}
	return mapToViewListResponse(views), nil
}

func (s *service) Respond(ctx context.Context, caller identity.Caller, req RespondRequestRequest) (RequestResponse, error) {
	s.logger.Debug("respond request requested",
		zap.String("id", req.ID),
		zap.String("caller_id", caller.ID),
		zap.String("role", string(caller.Role)),
	)

	id := strings.TrimSpace(req.ID)
	if id == "" {
		return RequestResponse{}, requesterrors.ErrRequestIDRequired
	}
	callerID, err := uuid.Parse(caller.ID)
	if err != nil {
		return RequestResponse{}, requesterrors.ErrInvalidCallerID
	}
	newStatus := ""
	if req.Status != nil {
		newStatus = strings.TrimSpace(*req.Status)
	}
	if newStatus != "" && !ValidStatus(newStatus) {
		s.logger.Warn("respond request invalid status", zap.String("status", newStatus))
		return RequestResponse{}, requesterrors.ErrInvalidStatus
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("respond request begin tx failed", zap.Error(err))
		return RequestResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	r, err := s.findActive(ctx, qtx, id)
	if err != nil {
		return RequestResponse{}, err
	}

	ownerManager := ""
	if caller.Role == identity.RoleManager {
		owner, err := qtx.FindOwner(ctx, r.EmployeeID.String())
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return RequestResponse{}, requesterrors.ErrEmployeeNotFound
			}
			s.logger.Error("respond request owner lookup failed", zap.Error(err))
			return RequestResponse{}, err
		}
		ownerManager = owner.Manager()
	}
	if !CanRespond(caller, ownerManager) {
		s.logger.Warn("respond request forbidden",
			zap.String("id", id),
			zap.String("caller_id", caller.ID),
		)
		return RequestResponse{}, requesterrors.ErrNotAuthorizedToRespond
	}

	prior := r.Status
	if newStatus != "" {
		r.Status = newStatus
	}
	if req.Reply != nil {
		r.Reply = *req.Reply
	}
	r.UpdatedBy = &callerID
	r.UpdatedAt = s.now()

	written, err := qtx.UpdateIfStatus(ctx, r, prior)
	if err != nil {
		s.logger.Error("respond request persist failed", zap.String("id", id), zap.Error(err))
		return RequestResponse{}, err
	}
	if !written {
		s.logger.Warn("respond request lost concurrent update", zap.String("id", id))
		return RequestResponse{}, requesterrors.ErrRequestModified
	}

	if err := s.enqueue(ctx, tx, events.EventRequestResponded, caller, r); err != nil {
		return RequestResponse{}, err
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("respond request commit failed", zap.String("id", id), zap.Error(err))
		return RequestResponse{}, err
	}
	s.logger.Info("respond request success",
		zap.String("id", id),
		zap.String("from_status", prior),
		zap.String("status", r.Status),
	)

	return mapToResponse(*r), nil
}

func (s *service) Update(ctx context.Context, caller identity.Caller, req UpdateRequestRequest) (RequestResponse, error) {
	s.logger.Debug("update request requested",
		zap.String("id", req.ID),
		zap.String("caller_id", caller.ID),
	)

	id := strings.TrimSpace(req.ID)
	if id == "" {
		return RequestResponse{}, requesterrors.ErrRequestIDRequired
	}
	callerID, err := uuid.Parse(caller.ID)
	if err != nil {
		return RequestResponse{}, requesterrors.ErrInvalidCallerID
	}
	from, err := parseOptionalDate(req.From)
	if err != nil {
		return RequestResponse{}, err
	}
	to, err := parseOptionalDate(req.To)
	if err != nil {
		return RequestResponse{}, err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("update request begin tx failed", zap.Error(err))
		return RequestResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	r, err := s.findActive(ctx, qtx, id)
	if err != nil {
		return RequestResponse{}, err
	}
	if !CanEdit(caller, *r) {
		s.logger.Warn("update request forbidden", zap.String("id", id), zap.String("caller_id", caller.ID))
		return RequestResponse{}, requesterrors.ErrNotAuthorizedToUpdate
	}
	if !IsEditable(*r) {
		s.logger.Warn("update request not pending", zap.String("id", id), zap.String("status", r.Status))
		return RequestResponse{}, requesterrors.ErrOnlyPendingUpdatable
	}

	// Empty values keep the stored ones.
	if req.Description != "" {
		r.Description = req.Description
	}
	if from != nil {
		r.From = from
	}
	if to != nil {
		r.To = to
	}
	if req.FileName != "" {
		r.FileName = req.FileName
	}
	r.UpdatedBy = &callerID
	r.UpdatedAt = s.now()

	written, err := qtx.UpdateIfStatus(ctx, r, StatusPending)
	if err != nil {
		s.logger.Error("update request persist failed", zap.String("id", id), zap.Error(err))
		return RequestResponse{}, err
	}
	if !written {
		s.logger.Warn("update request lost concurrent update", zap.String("id", id))
		return RequestResponse{}, requesterrors.ErrRequestModified
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("update request commit failed", zap.String("id", id), zap.Error(err))
		return RequestResponse{}, err
	}
	s.logger.Info("update request success", zap.String("id", id))

	return mapToResponse(*r), nil
}

func (s *service) Delete(ctx context.Context, caller identity.Caller, req DeleteRequestRequest) (RequestResponse, error) {
	s.logger.Debug("delete request requested",
		zap.String("id", req.ID),
		zap.String("caller_id", caller.ID),
	)

	id := strings.TrimSpace(req.ID)
	if id == "" {
		return RequestResponse{}, requesterrors.ErrRequestIDRequired
	}
	callerID, err := uuid.Parse(caller.ID)
	if err != nil {
		return RequestResponse{}, requesterrors.ErrInvalidCallerID
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("delete request begin tx failed", zap.Error(err))
		return RequestResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	r, err := s.findActive(ctx, qtx, id)
	if err != nil {
		return RequestResponse{}, err
	}
	if !CanDelete(caller, *r) {
		s.logger.Warn("delete request forbidden", zap.String("id", id), zap.String("caller_id", caller.ID))
		return RequestResponse{}, requesterrors.ErrNotAuthorizedToDelete
	}

	now := s.now()
	deleted, err := qtx.SoftDelete(ctx, id, callerID, now)
	if err != nil {
		s.logger.Error("delete request persist failed", zap.String("id", id), zap.Error(err))
		return RequestResponse{}, err
	}
	if !deleted {
		return RequestResponse{}, requesterrors.ErrRequestNotFound
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("delete request commit failed", zap.String("id", id), zap.Error(err))
		return RequestResponse{}, err
	}

	r.IsDeleted = true
	r.DeletedAt = &now
	r.DeletedBy = &callerID
	r.UpdatedAt = now

	s.logger.Info("delete request success", zap.String("id", id))
	return mapToResponse(*r), nil
}

// GetByID returns the stored record, soft-deleted ones included.
func (s *service) GetByID(ctx context.Context, caller identity.Caller, id string) (RequestResponse, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return RequestResponse{}, requesterrors.ErrRequestIDRequired
	}
	if _, err := uuid.Parse(id); err != nil {
		return RequestResponse{}, requesterrors.ErrRequestNotFound
	}

	r, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return RequestResponse{}, requesterrors.ErrRequestNotFound
		}
		s.logger.Error("get request failed", zap.String("id", id), zap.Error(err))
		return RequestResponse{}, err
	}

	if !CanDelete(caller, *r) {
		owner, err := s.repo.FindOwner(ctx, r.EmployeeID.String())
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return RequestResponse{}, err
		}
		ownerManager := ""
		if owner != nil {
			ownerManager = owner.Manager()
		}
		if !CanView(caller, *r, ownerManager) {
			return RequestResponse{}, requesterrors.ErrNotAuthorizedToView
		}
	}

	return mapToResponse(*r), nil
}

// findActive loads a request that exists and is not soft-deleted.
func (s *service) findActive(ctx context.Context, repo Repository, id string) (*Request, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, requesterrors.ErrRequestNotFound
	}
	r, err := repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, requesterrors.ErrRequestNotFound
		}
		s.logger.Error("find request failed", zap.String("id", id), zap.Error(err))
		return nil, err
	}
	if r.IsDeleted {
		return nil, requesterrors.ErrRequestNotFound
	}
	return r, nil
}

func (s *service) enqueue(ctx context.Context, tx *sql.Tx, eventType string, caller identity.Caller, r *Request) error {
	if s.outbox == nil {
		return nil
	}

	rid := contextutil.GetRequestID(ctx)
	payload, err := json.Marshal(events.RequestLifecycleEvent{
		EventType:       eventType,
		RequestID:       r.ID.String(),
		TraceID:         rid,
		EmployeeID:      r.EmployeeID.String(),
		ActorID:         caller.ID,
		RequestTypeCode: r.RequestTypeCode,
		Status:          r.Status,
		Reply:           r.Reply,
		OccurredAt:      s.now(),
	})
	if err != nil {
		s.logger.Error("marshal request event failed", zap.Error(err))
		return err
	}

	if err := s.outbox.WithTx(tx).Create(ctx, kafka.OutboxEvent{
		ID:            uuid.NewString(),
		RequestID:     rid,
		AggregateType: "request",
		AggregateID:   r.ID.String(),
		EventType:     eventType,
		Topic:         events.RequestLifecycleTopic,
		Payload:       payload,
		Status:        kafka.OutboxStatusPending,
	}); err != nil {
		s.logger.Error("request outbox persist failed",
			zap.String("id", r.ID.String()),
			zap.String("event_type", eventType),
			zap.Error(err),
		)
		return err
	}
	return nil
}

func parseOptionalDate(v string) (*time.Time, error) {
	v = strings.TrimSpace(v)
	if v == "" {
		return nil, nil
	}
	t, err := time.Parse(dateLayout, v)
	if err != nil {
		// full timestamps are accepted and truncated to the date
		ts, tsErr := time.Parse(time.RFC3339, v)
		if tsErr != nil {
			return nil, requesterrors.ErrInvalidDateFormat
		}
		t = time.Date(ts.Year(), ts.Month(), ts.Day(), 0, 0, 0, 0, time.UTC)
	}
	return &t, nil
}

func formatDate(t *time.Time) *string {
	if t == nil {
		return nil
	}
	v := t.Format(dateLayout)
	return &v
}

func uuidToString(v *uuid.UUID) *string {
	if v == nil {
		return nil
	}
	s := v.String()
	return &s
}

func mapToResponse(r Request) RequestResponse {
	resp := RequestResponse{
		ID:              r.ID.String(),
		EmployeeID:      r.EmployeeID.String(),
		RequestTypeCode: r.RequestTypeCode,
		Description:     r.Description,
		From:            formatDate(r.From),
		To:              formatDate(r.To),
		FileName:        r.FileName,
		Status:          r.Status,
		Reply:           r.Reply,
		CreatedBy:       r.CreatedBy.String(),
		UpdatedBy:       uuidToString(r.UpdatedBy),
		DeletedBy:       uuidToString(r.DeletedBy),
		IsDeleted:       r.IsDeleted,
		CreatedAt:       r.CreatedAt.Format(time.RFC3339),
		UpdatedAt:       r.UpdatedAt.Format(time.RFC3339),
	}
	if r.DeletedAt != nil {
		v := r.DeletedAt.Format(time.RFC3339)
		resp.DeletedAt = &v
	}
	return resp
}

func mapToViewResponse(v RequestView) RequestViewResponse {
	return RequestViewResponse{
		ID:              v.ID.String(),
		EmployeeID:      v.EmployeeID.String(),
		RequestTypeCode: v.RequestTypeCode,
		RequestTypeName: v.RequestTypeName,
		Description:     v.Description,
		From:            formatDate(v.From),
		To:              formatDate(v.To),
		FileName:        v.FileName,
		Status:          v.Status,
		Reply:           v.Reply,
		CreatedBy:       v.CreatedBy.String(),
		CreatedAt:       v.CreatedAt.Format(time.RFC3339),
		EmployeeName:    v.EmployeeName,
		EmployeeEmail:   v.EmployeeEmail,
	}
}

func mapToViewListResponse(views []RequestView) []RequestViewResponse {
	resp := make([]RequestViewResponse, len(views))
	for i, v := range views {
		resp[i] = mapToViewResponse(v)
	}
	return resp
}
