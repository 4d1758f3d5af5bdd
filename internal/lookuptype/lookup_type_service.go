package lookuptype

import (
	"context"
	"database/sql"
	"encoding/json"
	"strings"
	"time"

	"go-hrms/internal/identity"
	lookuptypeerrors "go-hrms/internal/lookuptype/errors"
	"go-hrms/internal/shared/counter"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

const (
	CodeCounter = "lookup_type_code"
	CacheKeyAll = "lookup_types:all"
	cacheTTL    = 30 * time.Minute
)

//go:generate mockgen -source=lookup_type_service.go -destination=mock/lookup_type_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, caller identity.Caller, req CreateLookupTypeRequest) (LookupTypeResponse, error)
	List(ctx context.Context) ([]LookupTypeResponse, error)
	Update(ctx context.Context, caller identity.Caller, req UpdateLookupTypeRequest) (LookupTypeResponse, error)
	Delete(ctx context.Context, caller identity.Caller, req DeleteLookupTypeRequest) (LookupTypeResponse, error)
	ResolveByCode(ctx context.Context, code int) (*string, error)
}

type service struct {
	db          *sql.DB
	repo        Repository
	counterRepo counter.Repository
	rdb         *redis.Client
	sf          *singleflight.Group
	now         func() time.Time
	logger      *zap.Logger
}

func NewService(db *sql.DB, repo Repository, counterRepo counter.Repository, rdb *redis.Client, logger ...*zap.Logger) Service {
	l := zap.L().Named("lookuptype.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("lookuptype.service")
	}
	return &service{
		db:          db,
		repo:        repo,
		counterRepo: counterRepo,
		rdb:         rdb,
		sf:          &singleflight.Group{},
		now:         func() time.Time { return time.Now().UTC() },
		logger:      l,
	}
}

// Create takes the next code from the counters table before opening the
// transaction. A rolled back insert leaves a gap in the sequence.
func (s *service) Create(ctx context.Context, caller identity.Caller, req CreateLookupTypeRequest) (LookupTypeResponse, error) {
	s.logger.Debug("create lookup type requested", zap.String("caller_id", caller.ID), zap.String("name", req.Name))

	callerID, err := uuid.Parse(caller.ID)
	if err != nil {
		return LookupTypeResponse{}, lookuptypeerrors.ErrInvalidCallerID
	}
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return LookupTypeResponse{}, lookuptypeerrors.ErrLookupTypeNameRequired
	}

	code, err := s.counterRepo.GetNextValue(ctx, CodeCounter)
	if err != nil {
		s.logger.Error("create lookup type next code failed", zap.Error(err))
		return LookupTypeResponse{}, err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("create lookup type begin tx failed", zap.Error(err))
		return LookupTypeResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	now := s.now()
	lt := &LookupType{
		ID:          uuid.New(),
		Code:        int(code),
		Name:        name,
		Description: req.Description,
		CreatedBy:   callerID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := qtx.Create(ctx, lt); err != nil {
		s.logger.Error("create lookup type persist failed", zap.Int("code", lt.Code), zap.Error(err))
		return LookupTypeResponse{}, mapRepositoryError(err)
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("create lookup type commit failed", zap.Error(err))
		return LookupTypeResponse{}, err
	}
	s.invalidate(ctx)
	s.logger.Info("create lookup type success", zap.String("id", lt.ID.String()), zap.Int("code", lt.Code))

	return mapToResponse(*lt), nil
}

func (s *service) List(ctx context.Context) ([]LookupTypeResponse, error) {
	if s.rdb != nil {
		cached, err := s.rdb.Get(ctx, CacheKeyAll).Result()
		if err == nil {
			var resp []LookupTypeResponse
			if err := json.Unmarshal([]byte(cached), &resp); err == nil {
				return resp, nil
			}
		}
	}

	v, err, _ := s.sf.Do(CacheKeyAll, func() (interface{}, error) {
		types, err := s.repo.ListActive(ctx)
		if err != nil {
			return nil, err
		}

		resp := mapToListResponse(types)

		if s.rdb != nil {
			if data, err := json.Marshal(resp); err == nil {
				if err := s.rdb.Set(ctx, CacheKeyAll, data, cacheTTL).Err(); err != nil {
					s.logger.Warn("lookup type cache write failed", zap.Error(err))
				}
			}
		}

		return resp, nil
	})
	if err != nil {
		s.logger.Error("list lookup types failed", zap.Error(err))
		return nil, err
	}

	return v.([]LookupTypeResponse), nil
}

func (s *service) Update(ctx context.Context, caller identity.Caller, req UpdateLookupTypeRequest) (LookupTypeResponse, error) {
	s.logger.Debug("update lookup type requested", zap.String("id", req.ID), zap.String("caller_id", caller.ID))

	callerID, err := uuid.Parse(caller.ID)
	if err != nil {
		return LookupTypeResponse{}, lookuptypeerrors.ErrInvalidCallerID
	}
	id := strings.TrimSpace(req.ID)
	if id == "" {
		return LookupTypeResponse{}, lookuptypeerrors.ErrLookupTypeIDRequired
	}
	if _, err := uuid.Parse(id); err != nil {
		return LookupTypeResponse{}, lookuptypeerrors.ErrLookupTypeNotFound
	}
	var name *string
	if req.Name != nil {
		trimmed := strings.TrimSpace(*req.Name)
		if trimmed == "" {
			return LookupTypeResponse{}, lookuptypeerrors.ErrLookupTypeNameRequired
		}
		name = &trimmed
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("update lookup type begin tx failed", zap.Error(err))
		return LookupTypeResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	lt, err := qtx.FindActiveByID(ctx, id)
	if err != nil {
		return LookupTypeResponse{}, mapRepositoryError(err)
	}

	if name != nil {
		lt.Name = *name
	}
	if req.Description != nil {
		lt.Description = *req.Description
	}
	lt.UpdatedBy = &callerID
	lt.UpdatedAt = s.now()

	written, err := qtx.UpdateActive(ctx, lt)
	if err != nil {
		s.logger.Error("update lookup type persist failed", zap.String("id", id), zap.Error(err))
		return LookupTypeResponse{}, mapRepositoryError(err)
	}
	if !written {
		return LookupTypeResponse{}, lookuptypeerrors.ErrLookupTypeNotFound
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("update lookup type commit failed", zap.Error(err))
		return LookupTypeResponse{}, err
	}
	s.invalidate(ctx)
	s.logger.Info("update lookup type success", zap.String("id", id))

	return mapToResponse(*lt), nil
}

func (s *service) Delete(ctx context.Context, caller identity.Caller, req DeleteLookupTypeRequest) (LookupTypeResponse, error) {
	s.logger.Debug("delete lookup type requested", zap.String("id", req.ID), zap.String("caller_id", caller.ID))

	callerID, err := uuid.Parse(caller.ID)
	if err != nil {
		return LookupTypeResponse{}, lookuptypeerrors.ErrInvalidCallerID
	}
	id := strings.TrimSpace(req.ID)
	if id == "" {
		return LookupTypeResponse{}, lookuptypeerrors.ErrLookupTypeIDRequired
	}
	if _, err := uuid.Parse(id); err != nil {
		return LookupTypeResponse{}, lookuptypeerrors.ErrLookupTypeNotFound
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("delete lookup type begin tx failed", zap.Error(err))
		return LookupTypeResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	lt, err := qtx.FindActiveByID(ctx, id)
	if err != nil {
		return LookupTypeResponse{}, mapRepositoryError(err)
	}

	now := s.now()
	deleted, err := qtx.SoftDelete(ctx, id, callerID, now)
	if err != nil {
		s.logger.Error("delete lookup type persist failed", zap.String("id", id), zap.Error(err))
		return LookupTypeResponse{}, err
	}
	if !deleted {
		return LookupTypeResponse{}, lookuptypeerrors.ErrLookupTypeNotFound
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("delete lookup type commit failed", zap.Error(err))
		return LookupTypeResponse{}, err
	}
	s.invalidate(ctx)

	lt.IsDeleted = true
	lt.DeletedAt = &now
	lt.DeletedBy = &callerID
	lt.UpdatedAt = now

	s.logger.Info("delete lookup type success", zap.String("id", id))
	return mapToResponse(*lt), nil
}

// ResolveByCode returns nil when no type carries the code.
func (s *service) ResolveByCode(ctx context.Context, code int) (*string, error) {
	name, err := s.repo.FindNameByCode(ctx, code)
	if err != nil {
		s.logger.Error("resolve lookup type failed", zap.Int("code", code), zap.Error(err))
		return nil, err
	}
	return name, nil
}

func (s *service) invalidate(ctx context.Context) {
	if s.rdb == nil {
		return
	}
	if err := s.rdb.Del(ctx, CacheKeyAll).Err(); err != nil {
		s.logger.Error("lookup type cache invalidation failed", zap.String("key", CacheKeyAll), zap.Error(err))
	}
}

func uuidToString(v *uuid.UUID) *string {
	if v == nil {
		return nil
	}
	s := v.String()
	return &s
}

func mapToResponse(lt LookupType) LookupTypeResponse {
	resp := LookupTypeResponse{
		ID:          lt.ID.String(),
		Code:        lt.Code,
		Name:        lt.Name,
		Description: lt.Description,
		CreatedBy:   lt.CreatedBy.String(),
		UpdatedBy:   uuidToString(lt.UpdatedBy),
		DeletedBy:   uuidToString(lt.DeletedBy),
		IsDeleted:   lt.IsDeleted,
		CreatedAt:   lt.CreatedAt.Format(time.RFC3339),
		UpdatedAt:   lt.UpdatedAt.Format(time.RFC3339),
	}
	if lt.DeletedAt != nil {
		v := lt.DeletedAt.Format(time.RFC3339)
		resp.DeletedAt = &v
	}
	return resp
}

func mapToListResponse(types []LookupType) []LookupTypeResponse {
	resp := make([]LookupTypeResponse, len(types))
	for i, t := range types {
		resp[i] = mapToResponse(t)
	}
	return resp
}
