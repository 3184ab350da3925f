package detailnomina

import (
	"strings"

	detailnominaerrors "sara-api/internal/detailnomina/errors"
	"sara-api/internal/shared/apperror"
	"sara-api/internal/shared/validation"

	"github.com/shopspring/decimal"
)

// DetailRequest is the body of a single line-item create or update. Every
// numeric field is accepted as a JSON string or number.
type DetailRequest struct {
	IDNomina    validation.NumericString `json:"idNomina"`
	IDStaff     validation.NumericString `json:"idStaff"`
	Date        string                   `json:"date"`
	Salary      validation.NumericString `json:"salary"`
	ExtraDays   validation.NumericString `json:"extraDays"`
	OvertimePay validation.NumericString `json:"overtimePay"`
	SFS         validation.NumericString `json:"sfs"`
	AFP         validation.NumericString `json:"afp"`
	Loans       validation.NumericString `json:"loans"`
	Other       validation.NumericString `json:"other"`
	Total       validation.NumericString `json:"total"`
}

// validRow is a DetailRequest that passed every check. Date is empty when
// the caller left it to the parent run.
type validRow struct {
	IDNomina uint
	IDStaff  uint
	Date     string
	Amounts
}

type BulkResult struct {
	Count int64 `json:"count"`
}

func parseID(s validation.NumericString, err *apperror.AppError) (uint, error) {
	if !validation.IsNumeric(s.String()) {
		return 0, err
	}
	d, parseErr := decimal.NewFromString(s.String())
	if parseErr != nil || d.Truncate(0).Sign() <= 0 {
		return 0, err
	}
	return uint(d.IntPart()), nil
}

// Validate checks r in a fixed order: required fields, date format, ids,
// then the monetary fields through Calculate.
func (r DetailRequest) Validate() (validRow, error) {
	if !(r.IDNomina.Present() && r.IDStaff.Present() && r.Salary.Present() &&
		r.ExtraDays.Present() && r.Loans.Present() && r.Other.Present()) {
		return validRow{}, apperror.ErrMissingFields
	}

	var date string
	if d := strings.TrimSpace(r.Date); d != "" {
		normalized, ok := validation.NormalizeDate(d)
		if !ok {
			return validRow{}, detailnominaerrors.ErrInvalidDate
		}
		date = normalized
	}

	idNomina, err := parseID(r.IDNomina, detailnominaerrors.ErrIDNominaNotNumeric)
	if err != nil {
		return validRow{}, err
	}
	idStaff, err := parseID(r.IDStaff, detailnominaerrors.ErrIDStaffNotNumeric)
	if err != nil {
		return validRow{}, err
	}

	amounts, err := Calculate(Input{
		Salary:      r.Salary,
		ExtraDays:   r.ExtraDays,
		OvertimePay: r.OvertimePay,
		SFS:         r.SFS,
		AFP:         r.AFP,
		Loans:       r.Loans,
		Other:       r.Other,
		Total:       r.Total,
	})
	if err != nil {
		return validRow{}, err
	}

	return validRow{IDNomina: idNomina, IDStaff: idStaff, Date: date, Amounts: amounts}, nil
}

func (v validRow) toEntity() DetailNomina {
	return DetailNomina{
		IDNomina:    v.IDNomina,
		IDStaff:     v.IDStaff,
		Date:        v.Date,
		Salary:      v.Salary,
		ExtraDays:   v.ExtraDays,
		OvertimePay: v.OvertimePay,
		SFS:         v.SFS,
		AFP:         v.AFP,
		Loans:       v.Loans,
		Other:       v.Other,
		Total:       v.Total,
	}
}

func (v validRow) updateFields() map[string]any {
	fields := map[string]any{
		"salary":       v.Salary,
		"extra_days":   v.ExtraDays,
		"overtime_pay": v.OvertimePay,
		"sfs":          v.SFS,
		"afp":          v.AFP,
		"loans":        v.Loans,
		"other":        v.Other,
		"total":        v.Total,
	}
	if v.Date != "" {
		fields["date"] = v.Date
	}
	return fields
}
