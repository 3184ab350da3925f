package detailnomina_test

import (
	"testing"

	"sara-api/internal/detailnomina"
	"sara-api/internal/shared/validation"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReconstructRows(t *testing.T) {
	flat := map[string]validation.NumericString{
		"1_idNomina":  "3",
		"1_idStaff":   "8",
		"1_salary":    "15000",
		"0_idNomina":  "3",
		"0_idStaff":   "7",
		"0_salary":    "20000",
		"0_extraDays": "4",
		"0_date":      "2024-01-15",
		"x_salary":    "1",
		"salary":      "2",
		"-1_salary":   "3",
		"5_unknown":   "9",
	}

	rows := detailnomina.ReconstructRows(flat)
	require.Len(t, rows, 3)

	assert.Equal(t, 0, rows[0].Index)
	assert.Equal(t, validation.NumericString("7"), rows[0].Request.IDStaff)
	assert.Equal(t, validation.NumericString("4"), rows[0].Request.ExtraDays)
	assert.Equal(t, "2024-01-15", rows[0].Request.Date)

	assert.Equal(t, 1, rows[1].Index)
	assert.Equal(t, validation.NumericString("15000"), rows[1].Request.Salary)
	assert.False(t, rows[1].Request.ExtraDays.Present())

	assert.Equal(t, 5, rows[2].Index)
	assert.Equal(t, detailnomina.DetailRequest{}, rows[2].Request)
}

func TestReconstructRows_Empty(t *testing.T) {
	assert.Empty(t, detailnomina.ReconstructRows(map[string]validation.NumericString{"foo": "1"}))
	assert.Empty(t, detailnomina.ReconstructRows(nil))
}
