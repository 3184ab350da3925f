package detailnomina_test

import (
	"context"
	"testing"

	"sara-api/internal/detailnomina"
	detailnominaerrors "sara-api/internal/detailnomina/errors"
	"sara-api/internal/shared/apperror"
	"sara-api/internal/shared/validation"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type fakeRepo struct {
	create       func(ctx context.Context, d *detailnomina.DetailNomina) error
	createBulk   func(ctx context.Context, rows []detailnomina.DetailNomina) (int64, error)
	findOne      func(ctx context.Context, idNomina, idStaff uint) (*detailnomina.DetailNomina, error)
	listByNomina func(ctx context.Context, idNomina uint) ([]detailnomina.DetailNomina, error)
	update       func(ctx context.Context, idNomina, idStaff uint, fields map[string]any) error
	softDelete   func(ctx context.Context, idNomina, idStaff uint) error
	nominaDate   func(ctx context.Context, idNomina uint) (string, error)
}

func (f *fakeRepo) Create(ctx context.Context, d *detailnomina.DetailNomina) error {
	return f.create(ctx, d)
}

func (f *fakeRepo) CreateBulk(ctx context.Context, rows []detailnomina.DetailNomina) (int64, error) {
	return f.createBulk(ctx, rows)
}

func (f *fakeRepo) FindOne(ctx context.Context, idNomina, idStaff uint) (*detailnomina.DetailNomina, error) {
	return f.findOne(ctx, idNomina, idStaff)
}

func (f *fakeRepo) ListByNomina(ctx context.Context, idNomina uint) ([]detailnomina.DetailNomina, error) {
	return f.listByNomina(ctx, idNomina)
}

func (f *fakeRepo) Update(ctx context.Context, idNomina, idStaff uint, fields map[string]any) error {
	return f.update(ctx, idNomina, idStaff, fields)
}

func (f *fakeRepo) SoftDelete(ctx context.Context, idNomina, idStaff uint) error {
	return f.softDelete(ctx, idNomina, idStaff)
}

func (f *fakeRepo) NominaDate(ctx context.Context, idNomina uint) (string, error) {
	return f.nominaDate(ctx, idNomina)
}

func validRequest() detailnomina.DetailRequest {
	return detailnomina.DetailRequest{
		IDNomina:  "1",
		IDStaff:   "1",
		Date:      "2024-01-15",
		Salary:    "20000",
		ExtraDays: "4",
		Loans:     "0",
		Other:     "0",
	}
}

func TestService_CreateComputesDerivedFields(t *testing.T) {
	var stored detailnomina.DetailNomina
	repo := &fakeRepo{create: func(_ context.Context, d *detailnomina.DetailNomina) error {
		stored = *d
		return nil
	}}
	svc := detailnomina.NewService(repo, zap.NewNop())

	d, err := svc.Create(context.Background(), validRequest())
	require.NoError(t, err)

	assert.Equal(t, 3357.11, stored.OvertimePay)
	assert.Equal(t, 608.00, stored.SFS)
	assert.Equal(t, 556.00, stored.AFP)
	assert.Equal(t, 22193.11, stored.Total)
	assert.Equal(t, 4, stored.ExtraDays)
	assert.Equal(t, "2024-01-15", d.Date)
}

func TestService_CreateInheritsRunDate(t *testing.T) {
	repo := &fakeRepo{
		nominaDate: func(_ context.Context, id uint) (string, error) {
			if id == 1 {
				return "2024-02-29", nil
			}
			return "", nil
		},
		create: func(context.Context, *detailnomina.DetailNomina) error { return nil },
	}
	svc := detailnomina.NewService(repo, zap.NewNop())

	req := validRequest()
	req.Date = ""
	d, err := svc.Create(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, "2024-02-29", d.Date)

	req.IDNomina = "2"
	_, err = svc.Create(context.Background(), req)
	assert.ErrorIs(t, err, detailnominaerrors.ErrNominaNotFound)
}

func TestService_CreateValidationOrder(t *testing.T) {
	svc := detailnomina.NewService(&fakeRepo{}, zap.NewNop())
	ctx := context.Background()

	cases := []struct {
		name   string
		mutate func(r *detailnomina.DetailRequest)
		want   string
	}{
		{"missing loans", func(r *detailnomina.DetailRequest) { r.Loans = "" }, "Faltan datos requeridos"},
		{"bad date before ids", func(r *detailnomina.DetailRequest) { r.Date = "2023-02-29"; r.IDStaff = "x" }, "Formato de fecha de nomina invalido"},
		{"id nomina", func(r *detailnomina.DetailRequest) { r.IDNomina = "uno" }, "Id de nomina no numerico"},
		{"id staff before money", func(r *detailnomina.DetailRequest) { r.IDStaff = "x"; r.Salary = "y" }, "Id de empleado no numerico"},
		{"salary", func(r *detailnomina.DetailRequest) { r.Salary = "y" }, "Salario no numerico"},
		{"total", func(r *detailnomina.DetailRequest) { r.Total = "?" }, "Total no numerico"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := validRequest()
			tc.mutate(&req)
			_, err := svc.Create(ctx, req)
			require.Error(t, err)
			httpErr := apperror.ToHTTP(err)
			assert.Equal(t, 400, httpErr.Status)
			assert.Equal(t, tc.want, httpErr.Message)
		})
	}
}

func TestService_CreateForeignKeyViolation(t *testing.T) {
	repo := &fakeRepo{create: func(context.Context, *detailnomina.DetailNomina) error {
		return &pgconn.PgError{Code: "23503"}
	}}
	svc := detailnomina.NewService(repo, zap.NewNop())

	_, err := svc.Create(context.Background(), validRequest())
	httpErr := apperror.ToHTTP(err)
	assert.Equal(t, 400, httpErr.Status)
	assert.Equal(t, "[Detail Nomina] Se recibio un Id invalido en la data", httpErr.Message)
}

func TestService_CreateBulk(t *testing.T) {
	ctx := context.Background()
	flat := map[string]validation.NumericString{
		"0_idNomina": "1", "0_idStaff": "1", "0_salary": "20000", "0_extraDays": "4", "0_loans": "0", "0_other": "0",
		"1_idNomina": "1", "1_idStaff": "2", "1_salary": "15000", "1_extraDays": "0", "1_loans": "0", "1_other": "0",
		"2_idNomina": "1", "2_idStaff": "1", "2_salary": "20000", "2_extraDays": "4", "2_loans": "0", "2_other": "0",
	}

	t.Run("duplicates are skipped", func(t *testing.T) {
		dateLookups := 0
		repo := &fakeRepo{
			nominaDate: func(context.Context, uint) (string, error) {
				dateLookups++
				return "2024-01-15", nil
			},
			createBulk: func(_ context.Context, rows []detailnomina.DetailNomina) (int64, error) {
				require.Len(t, rows, 3)
				for _, r := range rows {
					assert.Equal(t, "2024-01-15", r.Date)
				}
				assert.Equal(t, 22193.11, rows[0].Total)
				// (1, 1) appears twice; the store keeps the first.
				return 2, nil
			},
		}
		svc := detailnomina.NewService(repo, zap.NewNop())

		res, err := svc.CreateBulk(ctx, flat)
		require.NoError(t, err)
		assert.Equal(t, int64(2), res.Count)
		assert.Equal(t, 1, dateLookups)
	})

	t.Run("first invalid row rejects the batch", func(t *testing.T) {
		bad := map[string]validation.NumericString{}
		for k, v := range flat {
			bad[k] = v
		}
		bad["1_salary"] = "mucho"
		repo := &fakeRepo{
			nominaDate: func(context.Context, uint) (string, error) { return "2024-01-15", nil },
			createBulk: func(context.Context, []detailnomina.DetailNomina) (int64, error) {
				t.Fatal("nothing may be inserted")
				return 0, nil
			},
		}
		svc := detailnomina.NewService(repo, zap.NewNop())

		_, err := svc.CreateBulk(ctx, bad)
		httpErr := apperror.ToHTTP(err)
		assert.Equal(t, 400, httpErr.Status)
		assert.Equal(t, "Registro 1: Salario no numerico", httpErr.Message)
	})

	t.Run("no rows", func(t *testing.T) {
		svc := detailnomina.NewService(&fakeRepo{}, zap.NewNop())
		_, err := svc.CreateBulk(ctx, map[string]validation.NumericString{"salary": "1"})
		assert.ErrorIs(t, err, detailnominaerrors.ErrEmptyBulk)
	})
}

func TestService_UpdateAndDelete(t *testing.T) {
	ctx := context.Background()

	t.Run("update recomputes", func(t *testing.T) {
		var got map[string]any
		repo := &fakeRepo{
			update: func(_ context.Context, idNomina, idStaff uint, fields map[string]any) error {
				assert.Equal(t, uint(1), idNomina)
				assert.Equal(t, uint(1), idStaff)
				got = fields
				return nil
			},
			findOne: func(_ context.Context, idNomina, idStaff uint) (*detailnomina.DetailNomina, error) {
				return &detailnomina.DetailNomina{IDNomina: idNomina, IDStaff: idStaff, Total: 22193.11}, nil
			},
		}
		svc := detailnomina.NewService(repo, zap.NewNop())

		req := validRequest()
		req.Date = ""
		d, err := svc.Update(ctx, req)
		require.NoError(t, err)
		assert.Equal(t, 22193.11, d.Total)
		assert.Equal(t, 22193.11, got["total"])
		assert.NotContains(t, got, "date")
	})

	t.Run("delete of a missing pair", func(t *testing.T) {
		repo := &fakeRepo{softDelete: func(context.Context, uint, uint) error {
			return gorm.ErrRecordNotFound
		}}
		svc := detailnomina.NewService(repo, zap.NewNop())

		err := svc.Delete(ctx, 1, 2)
		assert.Equal(t, apperror.CodeMissingDependency, apperror.ToHTTP(err).Code)
	})
}
