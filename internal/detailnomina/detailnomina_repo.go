package detailnomina

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

//go:generate mockgen -source=detailnomina_repo.go -destination=mock/detailnomina_repo_mock.go -package=mock
type Repository interface {
	Create(ctx context.Context, d *DetailNomina) error
	// CreateBulk inserts rows in one statement, skipping any whose
	// (idNomina, idStaff) already exists. It returns the rows inserted.
	CreateBulk(ctx context.Context, rows []DetailNomina) (int64, error)
	FindOne(ctx context.Context, idNomina, idStaff uint) (*DetailNomina, error)
	ListByNomina(ctx context.Context, idNomina uint) ([]DetailNomina, error)
	Update(ctx context.Context, idNomina, idStaff uint, fields map[string]any) error
	SoftDelete(ctx context.Context, idNomina, idStaff uint) error
	// NominaDate returns the date of a run, "" when it does not exist.
	NominaDate(ctx context.Context, idNomina uint) (string, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, d *DetailNomina) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Create(d).Error
}

func (r *repository) CreateBulk(ctx context.Context, rows []DetailNomina) (int64, error) {
	if len(rows) == 0 {
		return 0, nil
	}
	res := r.db.WithContext(ctx).
		Omit(clause.Associations).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&rows)
	return res.RowsAffected, res.Error
}

func (r *repository) FindOne(ctx context.Context, idNomina, idStaff uint) (*DetailNomina, error) {
	var d DetailNomina
	err := r.db.WithContext(ctx).
		Where("id_nomina = ? AND id_staff = ?", idNomina, idStaff).
		Take(&d).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &d, nil
}

func (r *repository) ListByNomina(ctx context.Context, idNomina uint) ([]DetailNomina, error) {
	var rows []DetailNomina
	err := r.db.WithContext(ctx).
		Preload("Staff", func(db *gorm.DB) *gorm.DB {
			return db.Select("id", "name", "last_name1", "last_name2", "position", "status")
		}).
		Where("id_nomina = ? AND deleted = ?", idNomina, false).
		Order("id_staff").
		Find(&rows).Error
	return rows, err
}

func (r *repository) Update(ctx context.Context, idNomina, idStaff uint, fields map[string]any) error {
	res := r.db.WithContext(ctx).
		Model(&DetailNomina{}).
		Where("id_nomina = ? AND id_staff = ?", idNomina, idStaff).
		Updates(fields)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *repository) SoftDelete(ctx context.Context, idNomina, idStaff uint) error {
	return r.Update(ctx, idNomina, idStaff, map[string]any{"deleted": true})
}

func (r *repository) NominaDate(ctx context.Context, idNomina uint) (string, error) {
	var dates []string
	err := r.db.WithContext(ctx).
		Table("nomina").
		Where("id = ?", idNomina).
		Limit(1).
		Pluck("date", &dates).Error
	if err != nil || len(dates) == 0 {
		return "", err
	}
	return dates[0], nil
}
