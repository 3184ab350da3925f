package rbac

import (
	"context"
	"sync"

	"sara-api/internal/domain"
	"sara-api/internal/rbac/infra"
	"sara-api/internal/shared/apperror"

	"github.com/casbin/casbin/v2"
	"go.uber.org/zap"
)

//go:generate mockgen -source=rbac_service.go -destination=mock/rbac_service_mock.go -package=mock
type Service interface {
	LoadPolicy(ctx context.Context) error
	Enforce(req domain.EnforceRequest) (bool, error)
	Policies() [][]string
	Grant(ctx context.Context, req domain.GrantRequest) error
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
		l = logger[0]
	}
	return &service{
		repo:     repo,
		enforcer: enforcer,
		logger:   l,
	}
}

// LoadPolicy rebuilds the in-memory policy from the defaults plus stored grants.
func (s *service) LoadPolicy(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.enforcer.ClearPolicy()

	if _, err := s.enforcer.AddPolicies(infra.DefaultPolicies); err != nil {
		return err
	}
	if _, err := s.enforcer.AddGroupingPolicies(infra.DefaultGroupings); err != nil {
		return err
	}

	if s.repo == nil {
		return nil
	}

	rows, err := s.repo.ListPermissions(ctx)
	if err != nil {
		return apperror.Classify("RBAC", err)
	}
	for _, row := range rows {
		if _, err := s.enforcer.AddPolicy(row.Role, row.Resource, row.Action); err != nil {
			return err
		}
	}

	s.logger.Info("rbac policy loaded",
		zap.Int("defaults", len(infra.DefaultPolicies)),
		zap.Int("stored", len(rows)),
	)
	return nil
}

func (s *service) Enforce(req domain.EnforceRequest) (bool, error) {
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

	s.logger.Debug("rbac enforce",
		zap.String("role", req.Role),
		zap.String("resource", req.Resource),
		zap.String("action", req.Action),
		zap.Bool("allowed", allowed),
	)
	return allowed, nil
}

func (s *service) Policies() [][]string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	policies, err := s.enforcer.GetPolicy()
	if err != nil {
		s.logger.Warn("read policy failed", zap.Error(err))
		return nil
	}
	return policies
}

func (s *service) Grant(ctx context.Context, req domain.GrantRequest) error {
	row := &RolePermission{Role: req.Role, Resource: req.Resource, Action: req.Action}
	if err := s.repo.AddPermission(ctx, row); err != nil {
		return apperror.Classify("RBAC", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	_, err := s.enforcer.AddPolicy(req.Role, req.Resource, req.Action)
	return err
}
