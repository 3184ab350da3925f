package nomina

import (
	"strconv"
	"time"
)

const (
	// DefaultRecentMonths is the rollup length when the caller gives none.
	DefaultRecentMonths = 6
	MaxRecentMonths     = 120
)

type yearMonth struct {
	Year  int
	Month int
}

// recentMonths walks back n calendar months from now, current month first.
func recentMonths(now time.Time, n int) []yearMonth {
	first := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
	out := make([]yearMonth, 0, n)
	for i := 0; i < n; i++ {
		t := first.AddDate(0, -i, 0)
		out = append(out, yearMonth{Year: t.Year(), Month: int(t.Month())})
	}
	return out
}

func (ym yearMonth) yearString() string {
	return strconv.Itoa(ym.Year)
}
