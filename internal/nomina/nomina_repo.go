package nomina

import (
	"context"
	"errors"

	"sara-api/internal/detailnomina"

	"gorm.io/gorm"
)

const sumColumns = `COALESCE(SUM(salary), 0) AS salary, ` +
	`COALESCE(SUM(overtime_pay), 0) AS overtime_pay, ` +
	`COALESCE(SUM(sfs), 0) AS sfs, ` +
	`COALESCE(SUM(afp), 0) AS afp, ` +
	`COALESCE(SUM(loans), 0) AS loans, ` +
	`COALESCE(SUM(other), 0) AS other, ` +
	`COALESCE(SUM(total), 0) AS total`

//go:generate mockgen -source=nomina_repo.go -destination=mock/nomina_repo_mock.go -package=mock
type Repository interface {
	Create(ctx context.Context, n *Nomina) error
	// FindByID returns nil, nil when the run does not exist. withDetails
	// also loads its non-deleted line items.
	FindByID(ctx context.Context, id uint, withDetails bool) (*Nomina, error)
	Update(ctx context.Context, id uint, fields map[string]any) error
	SoftDelete(ctx context.Context, id uint) error

	// ListInYear returns non-deleted runs dated within year and the
	// inclusive month span.
	ListInYear(ctx context.Context, year string, startMonth, endMonth int) ([]Nomina, error)
	// ListByStaff returns an employee's non-deleted line items whose date
	// starts with datePrefix.
	ListByStaff(ctx context.Context, idStaff uint, datePrefix string) ([]detailnomina.DetailNomina, error)
	// ListDetails returns the non-deleted line items of a run.
	ListDetails(ctx context.Context, id uint) ([]detailnomina.DetailNomina, error)

	SumByNomina(ctx context.Context, id uint) (Totals, error)
	SumByStaff(ctx context.Context, idStaff uint, datePrefix string) (Totals, error)
	// SumByDateRange includes soft-deleted line items.
	SumByDateRange(ctx context.Context, from, to string) (Totals, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, n *Nomina) error {
	return r.db.WithContext(ctx).Omit("Details").Create(n).Error
}

func (r *repository) FindByID(ctx context.Context, id uint, withDetails bool) (*Nomina, error) {
	q := r.db.WithContext(ctx)
	if withDetails {
		q = q.Preload("Details", "deleted = ?", false)
	}

	var n Nomina
	err := q.Where("id = ?", id).Take(&n).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &n, nil
}

func (r *repository) Update(ctx context.Context, id uint, fields map[string]any) error {
	res := r.db.WithContext(ctx).Model(&Nomina{}).Where("id = ?", id).Updates(fields)
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

func (r *repository) ListInYear(ctx context.Context, year string, startMonth, endMonth int) ([]Nomina, error) {
	from, _ := MonthBounds(year, startMonth)
	_, to := MonthBounds(year, endMonth)

	var runs []Nomina
	err := r.db.WithContext(ctx).
		Where("deleted = ?", false).
		Where("date LIKE ?", year+"%").
		Where("date >= ? AND date <= ?", from, to).
		Order("date, id").
		Find(&runs).Error
	return runs, err
}

func (r *repository) ListByStaff(ctx context.Context, idStaff uint, datePrefix string) ([]detailnomina.DetailNomina, error) {
	var rows []detailnomina.DetailNomina
	err := r.db.WithContext(ctx).
		Where("id_staff = ? AND deleted = ? AND date LIKE ?", idStaff, false, datePrefix+"%").
		Order("date").
		Find(&rows).Error
	return rows, err
}

func (r *repository) ListDetails(ctx context.Context, id uint) ([]detailnomina.DetailNomina, error) {
	var rows []detailnomina.DetailNomina
	err := r.db.WithContext(ctx).
		Where("id_nomina = ? AND deleted = ?", id, false).
		Order("id_staff").
		Find(&rows).Error
	return rows, err
}

func (r *repository) sum(ctx context.Context, query string, args ...any) (Totals, error) {
	var t Totals
	err := r.db.WithContext(ctx).
		Model(&detailnomina.DetailNomina{}).
		Select(sumColumns).
		Where(query, args...).
		Scan(&t).Error
	return t, err
}

func (r *repository) SumByNomina(ctx context.Context, id uint) (Totals, error) {
	return r.sum(ctx, "id_nomina = ? AND deleted = ?", id, false)
}

func (r *repository) SumByStaff(ctx context.Context, idStaff uint, datePrefix string) (Totals, error) {
	return r.sum(ctx, "id_staff = ? AND deleted = ? AND date LIKE ?", idStaff, false, datePrefix+"%")
}

func (r *repository) SumByDateRange(ctx context.Context, from, to string) (Totals, error) {
	return r.sum(ctx, "date >= ? AND date <= ?", from, to)
}
