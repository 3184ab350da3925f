package staff

import (
	"context"
	"errors"

	"gorm.io/gorm"
)

//go:generate mockgen -source=staff_repo.go -destination=mock/staff_repo_mock.go -package=mock
type Repository interface {
	FindByID(ctx context.Context, id uint) (*Staff, error)
	FindByIDs(ctx context.Context, ids []uint) ([]Staff, error)
	Create(ctx context.Context, s *Staff) error
	Update(ctx context.Context, id uint, fields map[string]any) error
	SoftDelete(ctx context.Context, id uint) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

// FindByID returns nil, nil when no row has that id.
func (r *repository) FindByID(ctx context.Context, id uint) (*Staff, error) {
	var s Staff
	err := r.db.WithContext(ctx).Where("id = ?", id).Take(&s).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *repository) FindByIDs(ctx context.Context, ids []uint) ([]Staff, error) {
	var rows []Staff
	if len(ids) == 0 {
		return rows, nil
	}
	err := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&rows).Error
	return rows, err
}

func (r *repository) Create(ctx context.Context, s *Staff) error {
	return r.db.WithContext(ctx).Create(s).Error
}

// Update reports gorm.ErrRecordNotFound when no row matched.
func (r *repository) Update(ctx context.Context, id uint, fields map[string]any) error {
	res := r.db.WithContext(ctx).Model(&Staff{}).Where("id = ?", id).Updates(fields)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *repository) SoftDelete(ctx context.Context, id uint) error {
	return r.Update(ctx, id, map[string]any{"deleted": true})
}
