package detailnomina

import (
	"math"

	detailnominaerrors "sara-api/internal/detailnomina/errors"
	"sara-api/internal/shared/validation"

	"github.com/shopspring/decimal"
)

var (
	// WorkingDaysPerMonth is the average number of working days in a month.
	WorkingDaysPerMonth = decimal.RequireFromString("23.83")
	SFSRate             = decimal.RequireFromString("0.0304")
	AFPRate             = decimal.RequireFromString("0.0278")

	maxExtraDays = decimal.NewFromInt(math.MaxInt32)
)

// Input holds the raw monetary fields of a line item as text. OvertimePay,
// SFS, AFP and Total are optional overrides.
type Input struct {
	Salary      validation.NumericString
	ExtraDays   validation.NumericString
	OvertimePay validation.NumericString
	SFS         validation.NumericString
	AFP         validation.NumericString
	Loans       validation.NumericString
	Other       validation.NumericString
	Total       validation.NumericString
}

// Amounts is a fully populated line item, every money field at 2 decimals.
type Amounts struct {
	Salary      float64
	ExtraDays   int
	OvertimePay float64
	SFS         float64
	AFP         float64
	Loans       float64
	Other       float64
	Total       float64
}

type numericField struct {
	value    validation.NumericString
	optional bool
	err      error
	out      *decimal.Decimal
}

// Calculate validates in and fills in the derived fields:
//
//	overtimePay = salary / 23.83 * extraDays
//	sfs         = salary * 3.04%
//	afp         = salary * 2.78%
//	total       = salary + overtimePay - sfs - afp - loans - other
//
// Each result is rounded half away from zero to 2 decimals. A supplied
// override is used as is, rounded the same way.
func Calculate(in Input) (Amounts, error) {
	var salary, extraDays, overtime, sfs, afp, loans, other, total decimal.Decimal

	fields := []numericField{
		{value: in.ExtraDays, err: detailnominaerrors.ErrExtraDays, out: &extraDays},
		{value: in.Salary, err: detailnominaerrors.ErrSalary, out: &salary},
		{value: in.OvertimePay, optional: true, err: detailnominaerrors.ErrOvertimePay, out: &overtime},
		{value: in.SFS, optional: true, err: detailnominaerrors.ErrSFS, out: &sfs},
		{value: in.AFP, optional: true, err: detailnominaerrors.ErrAFP, out: &afp},
		{value: in.Loans, err: detailnominaerrors.ErrLoans, out: &loans},
		{value: in.Other, err: detailnominaerrors.ErrOther, out: &other},
		{value: in.Total, optional: true, err: detailnominaerrors.ErrTotal, out: &total},
	}
	for _, f := range fields {
		if !f.value.Present() {
			if f.optional {
				continue
			}
			return Amounts{}, f.err
		}
		if !validation.IsNumeric(f.value.String()) {
			return Amounts{}, f.err
		}
		d, err := decimal.NewFromString(f.value.String())
		if err != nil || !fitsFloat(d) {
			return Amounts{}, f.err
		}
		*f.out = d
	}

	if !salary.IsPositive() {
		return Amounts{}, detailnominaerrors.ErrSalaryNotPositive
	}

	extraDays = extraDays.Truncate(0)
	if extraDays.GreaterThan(maxExtraDays) {
		return Amounts{}, detailnominaerrors.ErrExtraDays
	}
	loans = loans.Round(2)
	other = other.Round(2)

	if in.OvertimePay.Present() {
		overtime = overtime.Round(2)
	} else {
		overtime = salary.Div(WorkingDaysPerMonth).Mul(extraDays).Round(2)
	}
	if in.SFS.Present() {
		sfs = sfs.Round(2)
	} else {
		sfs = salary.Mul(SFSRate).Round(2)
	}
	if in.AFP.Present() {
		afp = afp.Round(2)
	} else {
		afp = salary.Mul(AFPRate).Round(2)
	}
	if in.Total.Present() {
		total = total.Round(2)
	} else {
		total = salary.Add(overtime).Sub(sfs).Sub(afp).Sub(loans).Sub(other).Round(2)
	}

	// Derived values can still overflow a float64 from finite inputs.
	if !fitsFloat(overtime) {
		if in.OvertimePay.Present() {
			return Amounts{}, detailnominaerrors.ErrOvertimePay
		}
		return Amounts{}, detailnominaerrors.ErrExtraDays
	}
	if !fitsFloat(total) {
		if in.Total.Present() {
			return Amounts{}, detailnominaerrors.ErrTotal
		}
		return Amounts{}, detailnominaerrors.ErrSalary
	}

	return Amounts{
		Salary:      salary.InexactFloat64(),
		ExtraDays:   int(extraDays.IntPart()),
		OvertimePay: overtime.InexactFloat64(),
		SFS:         sfs.InexactFloat64(),
		AFP:         afp.InexactFloat64(),
		Loans:       loans.InexactFloat64(),
		Other:       other.InexactFloat64(),
		Total:       total.InexactFloat64(),
	}, nil
}

func fitsFloat(d decimal.Decimal) bool {
	f := d.InexactFloat64()
	return !math.IsInf(f, 0) && !math.IsNaN(f)
}
