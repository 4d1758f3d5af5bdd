package employee

import (
	"context"
	"crypto/rand"
	"database/sql"
	"encoding/base64"
	"encoding/json"
	"errors"
	"strings"
	"time"

	employeeerrors "go-hrms/internal/employee/errors"
	"go-hrms/internal/events"
	"go-hrms/internal/identity"
	"go-hrms/internal/messaging/kafka"
	"go-hrms/internal/shared/contextutil"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"golang.org/x/sync/singleflight"
	"gorm.io/gorm"
)

const EmployeeOptionsKey = "employees:options"

const dateLayout = "2006-01-02"

//go:generate mockgen -source=employee_service.go -destination=mock/employee_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, caller identity.Caller, req CreateEmployeeRequest) (CreateEmployeeResponse, error)
	GetByID(ctx context.Context, id string) (EmployeeResponse, error)
	List(ctx context.Context, query ListEmployeesQuery) ([]EmployeeResponse, int64, error)
	GetOptions(ctx context.Context) ([]EmployeeOptionResponse, error)
}

type service struct {
	db     *sql.DB
	repo   Repository
	outbox kafka.OutboxRepository
	rdb    *redis.Client
	sf     *singleflight.Group
	logger *zap.Logger
}

func NewService(db *sql.DB, repo Repository, rdb *redis.Client, logger ...*zap.Logger) Service {
	return NewServiceWithOutbox(db, repo, nil, rdb, logger...)
}

func NewServiceWithOutbox(
	db *sql.DB,
	repo Repository,
	outboxRepo kafka.OutboxRepository,
	rdb *redis.Client,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("employee.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("employee.service")
	}
	return &service{
		db:     db,
		repo:   repo,
		outbox: outboxRepo,
		rdb:    rdb,
		sf:     &singleflight.Group{},
		logger: l,
	}
}

func (s *service) Create(
	ctx context.Context,
	caller identity.Caller,
	req CreateEmployeeRequest,
) (CreateEmployeeResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("create employee requested",
		zap.String("request_id", rid),
		zap.String("caller_id", caller.ID),
		zap.String("employee_number", req.EmployeeNumber),
		zap.String("email", req.Email),
	)

	if strings.TrimSpace(req.EmployeeName) == "" ||
		strings.TrimSpace(req.EmployeeNumber) == "" ||
		strings.TrimSpace(req.DateOfJoining) == "" ||
		strings.TrimSpace(req.Email) == "" ||
		strings.TrimSpace(req.Phone) == "" ||
		strings.TrimSpace(req.Position) == "" ||
		strings.TrimSpace(req.Role) == "" {
		s.logger.Warn("create employee missing required fields", zap.String("request_id", rid))
		return CreateEmployeeResponse{}, employeeerrors.ErrMissingRequiredFields
	}
	role := identity.Role(strings.TrimSpace(req.Role))
	if !role.Valid() {
		return CreateEmployeeResponse{}, employeeerrors.ErrInvalidRole
	}
	joined, err := time.Parse(dateLayout, strings.TrimSpace(req.DateOfJoining))
	if err != nil {
		s.logger.Warn("create employee invalid dateOfJoining",
			zap.String("date_of_joining", req.DateOfJoining),
			zap.Error(err),
		)
		return CreateEmployeeResponse{}, employeeerrors.ErrInvalidDateOfJoining
	}
	var managerID *uuid.UUID
	if req.ManagerID != "" {
		id, err := uuid.Parse(req.ManagerID)
		if err != nil {
			return CreateEmployeeResponse{}, employeeerrors.ErrManagerNotFound
		}
		managerID = &id
	}

	tempPassword, err := generateTempPassword()
	if err != nil {
		s.logger.Error("create employee temp password failed", zap.Error(err))
		return CreateEmployeeResponse{}, err
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(tempPassword), bcrypt.DefaultCost)
	if err != nil {
		s.logger.Error("create employee hash password failed", zap.Error(err))
		return CreateEmployeeResponse{}, err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("create employee begin tx failed", zap.String("request_id", rid), zap.Error(err))
		return CreateEmployeeResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	if managerID != nil {
		if _, err := qtx.FindByID(ctx, managerID.String()); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				s.logger.Warn("create employee manager not found", zap.String("manager_id", managerID.String()))
				return CreateEmployeeResponse{}, employeeerrors.ErrManagerNotFound
			}
			s.logger.Error("create employee manager lookup failed", zap.Error(err))
			return CreateEmployeeResponse{}, err
		}
	}

	now := time.Now().UTC()
	empl := &Employee{
		ID:             uuid.New(),
		UserName:       req.UserName,
		EmployeeName:   strings.TrimSpace(req.EmployeeName),
		EmployeeNumber: strings.TrimSpace(req.EmployeeNumber),
		DateOfJoining:  joined,
		Email:          strings.ToLower(strings.TrimSpace(req.Email)),
		Phone:          req.Phone,
		Position:       req.Position,
		Department:     req.Department,
		ManagerID:      managerID,
		Role:           string(role),
		PasswordHash:   string(hash),
		IsTempPassword: true,
		IsActive:       true,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if callerID, err := uuid.Parse(caller.ID); err == nil {
		empl.CreatedBy = &callerID
	}

	if err := qtx.Create(ctx, empl); err != nil {
		s.logger.Error("create employee persist failed", zap.Error(err))
		return CreateEmployeeResponse{}, mapRepositoryError(err)
	}

	event := events.EmployeeCreatedEvent{
		EventType:    events.EventEmployeeCreated,
		RequestID:    rid,
		EmployeeID:   empl.ID.String(),
		EmployeeName: empl.EmployeeName,
		Email:        empl.Email,
		OccurredAt:   now,
	}
	if s.outbox != nil {
		payload, err := json.Marshal(event)
		if err != nil {
			s.logger.Error("marshal event failed", zap.String("request_id", rid), zap.Error(err))
			return CreateEmployeeResponse{}, err
		}

		outboxRepo := s.outbox.WithTx(tx)
		if err := outboxRepo.Create(ctx, kafka.OutboxEvent{
			ID:            uuid.NewString(),
			RequestID:     rid,
			AggregateType: "employee",
			AggregateID:   empl.ID.String(),
			EventType:     event.EventType,
			Topic:         events.EmployeeCreatedTopic,
			Payload:       payload,
			Status:        kafka.OutboxStatusPending,
		}); err != nil {
			s.logger.Error("create employee outbox persist failed",
				zap.String("employee_id", empl.ID.String()),
				zap.Error(err),
			)
			return CreateEmployeeResponse{}, err
		}
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("commit failed", zap.String("request_id", rid), zap.Error(err))
		return CreateEmployeeResponse{}, err
	}

	if s.rdb != nil {
		if err := s.rdb.Del(ctx, EmployeeOptionsKey).Err(); err != nil {
			s.logger.Error("failed to invalidate employee options cache",
				zap.Error(err),
				zap.String("key", EmployeeOptionsKey),
			)
		}
	}

	s.logger.Info("create employee success",
		zap.String("request_id", rid),
		zap.String("employee_id", empl.ID.String()),
	)

	return CreateEmployeeResponse{
		EmployeeResponse:  mapToResponse(*empl),
		TemporaryPassword: tempPassword,
	}, nil
}

func (s *service) GetByID(ctx context.Context, id string) (EmployeeResponse, error) {
	s.logger.Debug("get employee by id requested", zap.String("employee_id", id))
	if _, err := uuid.Parse(id); err != nil {
		return EmployeeResponse{}, employeeerrors.ErrInvalidEmployeeID
	}

	empl, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			s.logger.Error("get employee by id failed", zap.Error(err))
		}
		return EmployeeResponse{}, mapRepositoryError(err)
	}

	return mapToResponse(*empl), nil
}

func (s *service) List(ctx context.Context, query ListEmployeesQuery) ([]EmployeeResponse, int64, error) {
	s.logger.Debug("list employees requested",
		zap.String("q", query.Q),
		zap.Int("page", query.Page),
		zap.Int("limit", query.Limit),
	)

	employees, total, err := s.repo.List(ctx, query.Q, query.Page, query.Limit)
	if err != nil {
		s.logger.Error("list employees failed", zap.Error(err))
		return nil, 0, mapRepositoryError(err)
	}

	return mapToListResponse(employees), total, nil
}

func (s *service) GetOptions(ctx context.Context) ([]EmployeeOptionResponse, error) {
	if s.rdb != nil {
		if cached, err := s.rdb.Get(ctx, EmployeeOptionsKey).Result(); err == nil {
			var resp []EmployeeOptionResponse
			if json.Unmarshal([]byte(cached), &resp) == nil {
				return resp, nil
			}
		}
	}

	v, err, _ := s.sf.Do(EmployeeOptionsKey, func() (interface{}, error) {
		emps, err := s.repo.FindOptions(ctx)
		if err != nil {
			return nil, mapRepositoryError(err)
		}

		resp := make([]EmployeeOptionResponse, len(emps))
		for i, e := range emps {
			resp[i] = EmployeeOptionResponse{ID: e.ID.String(), EmployeeName: e.EmployeeName}
		}

		if s.rdb != nil {
			if jsonData, err := json.Marshal(resp); err == nil {
				s.rdb.Set(ctx, EmployeeOptionsKey, jsonData, time.Hour)
			}
		}

		return resp, nil
	})
	if err != nil {
		s.logger.Error("get employee options failed", zap.Error(err))
		return nil, err
	}

	return v.([]EmployeeOptionResponse), nil
}

func generateTempPassword() (string, error) {
	buf := make([]byte, 9)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(buf), nil
}

func mapToResponse(empl Employee) EmployeeResponse {
	resp := EmployeeResponse{
		ID:             empl.ID.String(),
		UserName:       empl.UserName,
		EmployeeName:   empl.EmployeeName,
		EmployeeNumber: empl.EmployeeNumber,
		DateOfJoining:  empl.DateOfJoining.Format(dateLayout),
		Email:          empl.Email,
		Phone:          empl.Phone,
		Position:       empl.Position,
		Department:     empl.Department,
		Role:           empl.Role,
		IsVerified:     empl.IsVerified,
		IsTempPassword: empl.IsTempPassword,
		IsActive:       empl.IsActive,
		CreatedAt:      empl.CreatedAt.Format(time.RFC3339),
		UpdatedAt:      empl.UpdatedAt.Format(time.RFC3339),
	}
	if empl.ManagerID != nil {
		v := empl.ManagerID.String()
		resp.ManagerID = &v
	}
	return resp
}

func mapToListResponse(employees []Employee) []EmployeeResponse {
	res := make([]EmployeeResponse, len(employees))
	for i, e := range employees {
		res[i] = mapToResponse(e)
	}
	return res
}
