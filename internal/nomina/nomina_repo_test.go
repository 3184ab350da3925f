package nomina_test

import (
	"context"
	"testing"

	"sara-api/internal/nomina"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var totalsColumns = []string{"salary", "overtime_pay", "sfs", "afp", "loans", "other", "total"}

func newGormMock(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	gdb, err := gorm.Open(postgres.New(postgres.Config{Conn: db}), &gorm.Config{})
	require.NoError(t, err)
	return gdb, mock
}

func TestRepository_SumByDateRangeIncludesDeleted(t *testing.T) {
	gdb, mock := newGormMock(t)
	repo := nomina.NewRepository(gdb)

	mock.ExpectQuery(`COALESCE\(SUM\(total\), 0\) AS total FROM "detail_nomina" WHERE date >= \$1 AND date <= \$2$`).
		WithArgs("2024-01-01", "2024-01-31").
		WillReturnRows(sqlmock.NewRows(totalsColumns).AddRow(40000, 0, 1216, 1112, 0, 0, 37672))

	got, err := repo.SumByDateRange(context.Background(), "2024-01-01", "2024-01-31")
	require.NoError(t, err)
	assert.Equal(t, 40000.0, got.Salary)
	assert.Equal(t, 37672.0, got.Total)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_SumByNominaExcludesDeleted(t *testing.T) {
	gdb, mock := newGormMock(t)
	repo := nomina.NewRepository(gdb)

	mock.ExpectQuery(`FROM "detail_nomina" WHERE id_nomina = \$1 AND deleted = \$2`).
		WithArgs(3, false).
		WillReturnRows(sqlmock.NewRows(totalsColumns).AddRow(0, 0, 0, 0, 0, 0, 0))

	got, err := repo.SumByNomina(context.Background(), 3)
	require.NoError(t, err)
	assert.Equal(t, nomina.Totals{}, got)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_ListInYear(t *testing.T) {
	gdb, mock := newGormMock(t)
	repo := nomina.NewRepository(gdb)

	mock.ExpectQuery(`SELECT \* FROM "nomina" WHERE deleted = \$1 AND date LIKE \$2 AND \(date >= \$3 AND date <= \$4\) ORDER BY date, id`).
		WithArgs(false, "2024%", "2024-07-01", "2024-12-31").
		WillReturnRows(sqlmock.NewRows([]string{"id", "date", "type", "deleted"}).
			AddRow(13, "2024-07-15", "quincenal", false))

	runs, err := repo.ListInYear(context.Background(), "2024", 7, 12)
	require.NoError(t, err)
	require.Len(t, runs, 1)
	assert.Equal(t, uint(13), runs[0].ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_FindByID(t *testing.T) {
	t.Run("missing run", func(t *testing.T) {
		gdb, mock := newGormMock(t)
		mock.ExpectQuery(`SELECT \* FROM "nomina" WHERE id = \$1`).
			WillReturnRows(sqlmock.NewRows([]string{"id"}))

		n, err := nomina.NewRepository(gdb).FindByID(context.Background(), 8, false)
		require.NoError(t, err)
		assert.Nil(t, n)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("details skip deleted items", func(t *testing.T) {
		gdb, mock := newGormMock(t)
		mock.ExpectQuery(`SELECT \* FROM "nomina" WHERE id = \$1`).
			WillReturnRows(sqlmock.NewRows([]string{"id", "date", "type", "deleted"}).
				AddRow(8, "2024-01-15", "quincenal", true))
		mock.ExpectQuery(`SELECT \* FROM "detail_nomina" WHERE "detail_nomina"."id_nomina" = \$1 AND deleted = \$2`).
			WithArgs(8, false).
			WillReturnRows(sqlmock.NewRows([]string{"id_nomina", "id_staff", "date", "salary", "total"}).
				AddRow(8, 1, "2024-01-15", 20000, 22193.11))

		n, err := nomina.NewRepository(gdb).FindByID(context.Background(), 8, true)
		require.NoError(t, err)
		require.NotNil(t, n)
		assert.True(t, n.Deleted)
		require.Len(t, n.Details, 1)
		assert.Equal(t, 22193.11, n.Details[0].Total)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
