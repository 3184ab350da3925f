package authkey

import (
	"context"
	"errors"

	"gorm.io/gorm"
)

//go:generate mockgen -source=authkey_repo.go -destination=mock/authkey_repo_mock.go -package=mock
type Repository interface {
	FindByKey(ctx context.Context, key string) (*AuthKey, error)
	FindByID(ctx context.Context, id uint) (*AuthKey, error)
	Create(ctx context.Context, k *AuthKey) error
	Revoke(ctx context.Context, id uint) (int64, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

// FindByKey returns nil, nil when the key does not exist or was revoked.
func (r *repository) FindByKey(ctx context.Context, key string) (*AuthKey, error) {
	var k AuthKey
	err := r.db.WithContext(ctx).
		Where("key = ? AND deleted = ?", key, false).
		Take(&k).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &k, nil
}

func (r *repository) FindByID(ctx context.Context, id uint) (*AuthKey, error) {
	var k AuthKey
	err := r.db.WithContext(ctx).Where("id = ? AND deleted = ?", id, false).Take(&k).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &k, nil
}

func (r *repository) Create(ctx context.Context, k *AuthKey) error {
	return r.db.WithContext(ctx).Create(k).Error
}

func (r *repository) Revoke(ctx context.Context, id uint) (int64, error) {
	res := r.db.WithContext(ctx).
		Model(&AuthKey{}).
		Where("id = ?", id).
		Update("deleted", true)
	return res.RowsAffected, res.Error
}
