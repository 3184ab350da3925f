package crud

import (
	"context"
	"strconv"
	"strings"

	"sara-api/internal/shared/apperror"
	"sara-api/internal/shared/contextutil"
	"sara-api/internal/shared/validation"

	"go.uber.org/zap"
)

const DefaultPageSize = 10

//go:generate mockgen -source=crud_service.go -destination=mock/crud_service_mock.go -package=mock
type Service interface {
	List(ctx context.Context, model, page string) (any, int64, error)
}

type service struct {
	repo     Repository
	registry *Registry
	logger   *zap.Logger
}

func NewService(repo Repository, registry *Registry, logger ...*zap.Logger) Service {
	l := zap.L().Named("crud.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0]
	}
	return &service{repo: repo, registry: registry, logger: l}
}

// ParsePage reads a page number from text. Anything that is not a positive
// integer is page 1.
func ParsePage(page string) int {
	page = strings.TrimSpace(page)
	if !validation.IsNumeric(page) {
		return 1
	}
	n, err := strconv.ParseFloat(page, 64)
	if err != nil || n < 1 {
		return 1
	}
	return int(n)
}

// List returns one page of non-deleted rows of model plus the total count of
// non-deleted rows.
func (s *service) List(ctx context.Context, model, page string) (any, int64, error) {
	m, ok := s.registry.Lookup(model)
	if !ok {
		return nil, 0, apperror.ModelNotFound(model)
	}

	pageSize := m.PageSize
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	offset := (ParsePage(page) - 1) * pageSize

	log := contextutil.GetLogger(ctx, s.logger)

	data, err := s.repo.List(ctx, m, pageSize, offset)
	if err != nil {
		log.Error("list failed", zap.String("model", model), zap.Error(err))
		return nil, 0, apperror.Classify(model, err)
	}

	total, err := s.repo.Count(ctx, m)
	if err != nil {
		log.Error("count failed", zap.String("model", model), zap.Error(err))
		return nil, 0, apperror.Classify(model, err)
	}

	return data, total, nil
}
