package nomina

import (
	"testing"
	"time"

	nominaerrors "sara-api/internal/nomina/errors"
	"sara-api/internal/staff"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMonthRange(t *testing.T) {
	cases := []struct {
		page, entries int
		start, end    int
	}{
		{1, EntriesQuincenal, 1, 6},
		{2, EntriesQuincenal, 7, 12},
		{0, EntriesQuincenal, 1, 6},
		{-4, EntriesQuincenal, 1, 6},
		{1, EntriesMensual, 1, 12},
	}
	for _, tc := range cases {
		start, end, err := MonthRange(tc.page, tc.entries)
		require.NoError(t, err)
		assert.Equal(t, tc.start, start, "page=%d entries=%d", tc.page, tc.entries)
		assert.Equal(t, tc.end, end, "page=%d entries=%d", tc.page, tc.entries)
	}

	_, _, err := MonthRange(3, EntriesQuincenal)
	assert.ErrorIs(t, err, nominaerrors.ErrPageOutOfRange)
	_, _, err = MonthRange(2, EntriesMensual)
	assert.ErrorIs(t, err, nominaerrors.ErrPageOutOfRange)
}

func TestMonthRange_UnevenEntries(t *testing.T) {
	start, end, err := MonthRange(5, 5)
	require.NoError(t, err)
	assert.Equal(t, 10, start)
	assert.Equal(t, 11, end)

	start, end, err = MonthRange(2, 7)
	require.NoError(t, err)
	assert.Equal(t, 2, start)
	assert.Equal(t, 2, end)
}

func TestMonthBounds(t *testing.T) {
	from, to := MonthBounds("2024", 2)
	assert.Equal(t, "2024-02-01", from)
	assert.Equal(t, "2024-02-31", to)
	assert.Equal(t, "07", PadMonth(7))
}

func TestRecentMonths(t *testing.T) {
	jan := time.Date(2024, time.January, 31, 23, 0, 0, 0, time.UTC)

	got := recentMonths(jan, 3)
	assert.Equal(t, []yearMonth{{2024, 1}, {2023, 12}, {2023, 11}}, got)

	got = recentMonths(jan, 14)
	require.Len(t, got, 14)
	assert.Equal(t, yearMonth{2023, 1}, got[12])
	assert.Equal(t, yearMonth{2022, 12}, got[13])

	dec := time.Date(2023, time.December, 1, 0, 0, 0, 0, time.UTC)
	got = recentMonths(dec, 13)
	assert.Equal(t, yearMonth{2023, 12}, got[0])
	assert.Equal(t, yearMonth{2022, 12}, got[12])

	seen := map[yearMonth]bool{}
	for _, ym := range recentMonths(jan, 36) {
		assert.False(t, seen[ym], "month repeated: %v", ym)
		assert.True(t, ym.Month >= 1 && ym.Month <= 12)
		seen[ym] = true
	}
}

func TestBankDocLine(t *testing.T) {
	second := "Gomez"
	s := staff.Staff{
		Name: "Ana", LastName1: "Perez", LastName2: &second,
		Cedula: "00112345678", AccountType: "CA", BankRoute: "10101070",
	}
	origin := OriginAccount{Type: "CC", Currency: "DOP", Number: "123456"}

	line := bankDocLine(origin, s, "9601234567", 22193.11, "2024-01-15")
	assert.Equal(t,
		"CC,DOP,123456,10101070,CA,9601234567,22193.11,Ana Perez Gomez,cedula,00112345678,Pago nomina para la fecha 2024-01-15",
		line)

	s.LastName2 = nil
	line = bankDocLine(origin, s, "1", 20000, "2024-01-31")
	assert.Contains(t, line, ",20000,Ana Perez,cedula,")
}
