package crud

import (
	"context"

	"gorm.io/gorm"
)

//go:generate mockgen -source=crud_repo.go -destination=mock/crud_repo_mock.go -package=mock
type Repository interface {
	List(ctx context.Context, m Model, limit, offset int) (any, error)
	Count(ctx context.Context, m Model) (int64, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) List(ctx context.Context, m Model, limit, offset int) (any, error) {
	dest := m.newSlice()
	q := r.db.WithContext(ctx).
		Model(m.newPointer()).
		Where("deleted = ?", false).
		Limit(limit).
		Offset(offset)
	if m.OrderBy != "" {
		q = q.Order(m.OrderBy)
	}
	if err := q.Find(dest).Error; err != nil {
		return nil, err
	}
	return dest, nil
}

func (r *repository) Count(ctx context.Context, m Model) (int64, error) {
	var total int64
	err := r.db.WithContext(ctx).
		Model(m.newPointer()).
		Where("deleted = ?", false).
		Count(&total).Error
	return total, err
}
