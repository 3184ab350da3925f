package payslip

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func samplePayslip() Payslip {
	return Payslip{
		NominaID:    3,
		NominaDate:  "2024-01-15",
		NominaType:  "quincenal",
		StaffID:     11,
		FullName:    "María Pérez Núñez",
		Cedula:      "00112345678",
		Position:    "Maestra",
		ExtraDays:   4,
		Salary:      20000,
		OvertimePay: 3357.11,
		SFS:         608,
		AFP:         556,
		Total:       22193.11,
	}
}

func TestRenderer_Render(t *testing.T) {
	data, err := NewRenderer("").Render(samplePayslip())

	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(data, []byte("%PDF-")))
}

func TestRenderer_WriteFile(t *testing.T) {
	dir := t.TempDir()

	path, err := NewRenderer("").WriteFile(dir, samplePayslip())

	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "3", "11.pdf"), path)
	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(0))
}

func TestFormatAmount(t *testing.T) {
	assert.Equal(t, "-608.00", formatAmount(-608))
	assert.Equal(t, "22193.11", formatAmount(22193.11))
}
