package rbac

import (
	"context"
	"sync"

	"github.com/casbin/casbin/v2"
	"go.uber.org/zap"
)

//go:generate mockgen -source=rbac_service.go -destination=mock/rbac_service_mock.go -package=mock
type Service interface {
	LoadPolicy(ctx context.Context) error
	Enforce(req EnforceRequest) (bool, error)
	Can(role, resource, action string) (bool, error)
	Policies() []PolicyResponse
}

type service struct {
	repo     Repository
	enforcer *casbin.Enforcer
	mu       sync.RWMutex
	logger   *zap.Logger
}

func NewService(repo Repository, enforcer *casbin.Enforcer, logger ...*zap.Logger) Service {
	l := zap.L().Named("rbac.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("rbac.service")
	}
	return &service{
		repo:     repo,
		enforcer: enforcer,
		logger:   l,
	}
}

// LoadPolicy seeds the default permissions and rebuilds the enforcer from storage.
func (s *service) LoadPolicy(ctx context.Context) error {
	if err := s.repo.SeedDefaults(ctx, DefaultPermissions); err != nil {
		s.logger.Error("rbac seed defaults failed", zap.Error(err))
		return err
	}

	rows, err := s.repo.ListRolePermissions(ctx)
	if err != nil {
		s.logger.Error("rbac list permissions failed", zap.Error(err))
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.enforcer.ClearPolicy()

	for _, h := range RoleHierarchy {
		if _, err := s.enforcer.AddGroupingPolicy(h[0], h[1]); err != nil {
			return err
		}
	}

	for _, rp := range rows {
		if _, err := s.enforcer.AddPolicy(rp.Role, rp.Resource, rp.Action); err != nil {
			return err
		}
	}

	s.logger.Info("rbac policy loaded", zap.Int("role_permissions", len(rows)))
	return nil
}

func (s *service) Enforce(req EnforceRequest) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	allowed, err := s.enforcer.Enforce(req.Role, req.Resource, req.Action)
	if err != nil {
		s.logger.Error("rbac enforce failed",
			zap.String("role", req.Role),
			zap.String("resource", req.Resource),
			zap.String("action", req.Action),
			zap.Error(err),
		)
		return false, err
	}

	s.logger.Debug("rbac enforce result",
		zap.String("role", req.Role),
		zap.String("resource", req.Resource),
		zap.String("action", req.Action),
		zap.Bool("allowed", allowed),
	)
	return allowed, nil
}

func (s *service) Can(role, resource, action string) (bool, error) {
	return s.Enforce(EnforceRequest{Role: role, Resource: resource, Action: action})
}

func (s *service) Policies() []PolicyResponse {
	s.mu.RLock()
	defer s.mu.RUnlock()

	policies, _ := s.enforcer.GetPolicy()
	resp := make([]PolicyResponse, 0, len(policies))
	for _, p := range policies {
		if len(p) < 3 {
			continue
		}
		resp = append(resp, PolicyResponse{Role: p[0], Resource: p[1], Action: p[2]})
	}
	return resp
}
