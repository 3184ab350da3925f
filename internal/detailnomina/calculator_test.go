package detailnomina_test

import (
	"strings"
	"testing"

	"sara-api/internal/detailnomina"
	detailnominaerrors "sara-api/internal/detailnomina/errors"
	"sara-api/internal/shared/validation"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func nsv(s string) validation.NumericString {
	return validation.NumericString(s)
}

func round2(d decimal.Decimal) float64 {
	return d.Round(2).InexactFloat64()
}

func TestCalculate_Formulas(t *testing.T) {
	cases := []struct {
		name                            string
		salary, extraDays, loans, other string
		overtime, sfs, afp, total       float64
	}{
		{"four extra days", "20000", "4", "0", "0", 3357.11, 608.00, 556.00, 22193.11},
		{"no extra days with deductions", "15000.50", "0", "100", "50.25", 0, 456.02, 417.01, 13977.22},
		{"fractional extra days truncate", "23830", "2.9", "0", "0", 2000.00, 724.43, 662.47, 24443.10},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := detailnomina.Calculate(detailnomina.Input{
				Salary:    nsv(tc.salary),
				ExtraDays: nsv(tc.extraDays),
				Loans:     nsv(tc.loans),
				Other:     nsv(tc.other),
			})
			require.NoError(t, err)
			assert.Equal(t, tc.overtime, got.OvertimePay)
			assert.Equal(t, tc.sfs, got.SFS)
			assert.Equal(t, tc.afp, got.AFP)
			assert.Equal(t, tc.total, got.Total)
		})
	}
}

func TestCalculate_MatchesFormulaAcrossSalaries(t *testing.T) {
	for _, salary := range []string{"1", "999.99", "12345.67", "50000", "87654.32"} {
		for _, days := range []string{"0", "1", "3", "10"} {
			got, err := detailnomina.Calculate(detailnomina.Input{
				Salary: nsv(salary), ExtraDays: nsv(days), Loans: "12.5", Other: "3",
			})
			require.NoError(t, err)

			s := decimal.RequireFromString(salary)
			d := decimal.RequireFromString(days)
			overtime := s.Div(decimal.RequireFromString("23.83")).Mul(d).Round(2)
			sfs := s.Mul(decimal.RequireFromString("0.0304")).Round(2)
			afp := s.Mul(decimal.RequireFromString("0.0278")).Round(2)
			total := s.Add(overtime).Sub(sfs).Sub(afp).Sub(decimal.RequireFromString("15.5"))

			assert.Equal(t, round2(overtime), got.OvertimePay, "salary=%s days=%s", salary, days)
			assert.Equal(t, round2(sfs), got.SFS)
			assert.Equal(t, round2(afp), got.AFP)
			assert.Equal(t, round2(total), got.Total)
		}
	}
}

func TestCalculate_Overrides(t *testing.T) {
	got, err := detailnomina.Calculate(detailnomina.Input{
		Salary:      "20000",
		ExtraDays:   "4",
		Loans:       "0",
		Other:       "0",
		OvertimePay: "100",
		SFS:         "1.234",
		AFP:         "2.345",
	})
	require.NoError(t, err)
	assert.Equal(t, 100.0, got.OvertimePay)
	assert.Equal(t, 1.23, got.SFS)
	assert.Equal(t, 2.35, got.AFP)
	assert.Equal(t, 20096.42, got.Total)

	got, err = detailnomina.Calculate(detailnomina.Input{
		Salary: "20000", ExtraDays: "4", Loans: "0", Other: "0", Total: "10.005",
	})
	require.NoError(t, err)
	assert.Equal(t, 10.01, got.Total)
	assert.Equal(t, 3357.11, got.OvertimePay)
}

func TestCalculate_Errors(t *testing.T) {
	base := func() detailnomina.Input {
		return detailnomina.Input{Salary: "20000", ExtraDays: "4", Loans: "0", Other: "0"}
	}

	cases := []struct {
		name   string
		mutate func(in *detailnomina.Input)
		want   error
	}{
		{"extra days checked before salary", func(in *detailnomina.Input) { in.ExtraDays = "x"; in.Salary = "abc" }, detailnominaerrors.ErrExtraDays},
		{"salary", func(in *detailnomina.Input) { in.Salary = "abc" }, detailnominaerrors.ErrSalary},
		{"salary zero", func(in *detailnomina.Input) { in.Salary = "0" }, detailnominaerrors.ErrSalaryNotPositive},
		{"overtime", func(in *detailnomina.Input) { in.OvertimePay = "1,5" }, detailnominaerrors.ErrOvertimePay},
		{"sfs", func(in *detailnomina.Input) { in.SFS = "n/a" }, detailnominaerrors.ErrSFS},
		{"afp", func(in *detailnomina.Input) { in.AFP = "-1" }, detailnominaerrors.ErrAFP},
		{"loans", func(in *detailnomina.Input) { in.Loans = "-5" }, detailnominaerrors.ErrLoans},
		{"other", func(in *detailnomina.Input) { in.Other = "dos" }, detailnominaerrors.ErrOther},
		{"total", func(in *detailnomina.Input) { in.Total = "1e3" }, detailnominaerrors.ErrTotal},
		{"missing loans", func(in *detailnomina.Input) { in.Loans = "" }, detailnominaerrors.ErrLoans},
		{"extra days past int32", func(in *detailnomina.Input) { in.ExtraDays = "99999999999999999999999" }, detailnominaerrors.ErrExtraDays},
		{"extra days just past int32", func(in *detailnomina.Input) { in.ExtraDays = "2147483648" }, detailnominaerrors.ErrExtraDays},
		{"salary beyond float range", func(in *detailnomina.Input) { in.Salary = validation.NumericString(strings.Repeat("9", 401)) }, detailnominaerrors.ErrSalary},
		{"loans beyond float range", func(in *detailnomina.Input) { in.Loans = validation.NumericString(strings.Repeat("9", 320)) }, detailnominaerrors.ErrLoans},
		{"overtime overflows from finite inputs", func(in *detailnomina.Input) {
			in.Salary = validation.NumericString(strings.Repeat("9", 308))
			in.ExtraDays = "2147483647"
		}, detailnominaerrors.ErrExtraDays},
		{"total overflows from finite inputs", func(in *detailnomina.Input) {
			in.Salary = validation.NumericString(strings.Repeat("9", 308))
			in.ExtraDays = "0"
			in.OvertimePay = validation.NumericString(strings.Repeat("9", 308))
		}, detailnominaerrors.ErrSalary},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			in := base()
			tc.mutate(&in)
			_, err := detailnomina.Calculate(in)
			assert.ErrorIs(t, err, tc.want)
		})
	}
}
