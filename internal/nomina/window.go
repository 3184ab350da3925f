package nomina

import (
	"fmt"

	nominaerrors "sara-api/internal/nomina/errors"
)

// PageSize is the number of fortnightly runs shown per page.
const PageSize = 12

const (
	EntriesQuincenal = 2
	EntriesMensual   = 1
)

// MonthRange maps a 1-based page to the span of months it covers:
//
//	start = (page-1)*PageSize/entriesPerMonth + 1
//	end   = PageSize/entriesPerMonth + start - 1
//
// Pages below 1 are treated as 1. A page starting past December is
// rejected; a span running past December stops there.
func MonthRange(page, entriesPerMonth int) (start, end int, err error) {
	if page < 1 {
		page = 1
	}
	if entriesPerMonth < 1 {
		entriesPerMonth = 1
	}

	start = (page-1)*PageSize/entriesPerMonth + 1
	end = PageSize/entriesPerMonth + start - 1
	if start > 12 {
		return 0, 0, nominaerrors.ErrPageOutOfRange
	}
	if end > 12 {
		end = 12
	}
	return start, end, nil
}

// PadMonth renders a month as two digits.
func PadMonth(m int) string {
	return fmt.Sprintf("%02d", m)
}

// MonthBounds is the literal string range for a month, day 01 to day 31.
// Shorter months simply have no rows past their last day.
func MonthBounds(year string, month int) (from, to string) {
	m := PadMonth(month)
	return year + "-" + m + "-01", year + "-" + m + "-31"
}
