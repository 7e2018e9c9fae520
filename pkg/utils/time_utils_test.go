package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustDate(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := ParseDate(s)
	require.NoError(t, err)
	return d
}

func TestParseDate(t *testing.T) {
	d := mustDate(t, "2025-03-09")
	assert.Equal(t, "2025-03-09", FormatDate(d))

	for _, bad := range []string{"", "2025-13-01", "09/03/2025", "2025-02-30"} {
		_, err := ParseDate(bad)
		assert.ErrorIs(t, err, ErrInvalidDate, bad)
	}
}

func TestDayCount(t *testing.T) {
	assert.Equal(t, 4, DayCount(mustDate(t, "2024-02-27"), mustDate(t, "2024-03-01")))
	assert.Equal(t, 1, DayCount(mustDate(t, "2024-05-01"), mustDate(t, "2024-05-01")))
	assert.Equal(t, 0, DayCount(mustDate(t, "2024-05-02"), mustDate(t, "2024-05-01")))
	assert.Equal(t, 3652059, DayCount(mustDate(t, "0001-01-01"), mustDate(t, "9999-12-31")))
}

func TestDaysInclusive(t *testing.T) {
	days := DaysInclusive(mustDate(t, "2024-02-27"), mustDate(t, "2024-03-01"), 10)
	require.Len(t, days, 4)
	assert.Equal(t, "2024-02-29", FormatDate(days[2]))

	assert.Len(t, DaysInclusive(mustDate(t, "2024-05-01"), mustDate(t, "2024-05-01"), 10), 1)
	assert.Nil(t, DaysInclusive(mustDate(t, "2024-05-02"), mustDate(t, "2024-05-01"), 10))
	assert.Nil(t, DaysInclusive(mustDate(t, "2024-05-01"), mustDate(t, "2024-05-03"), 0))
}

func TestDaysInclusive_LimitStopsEnumeration(t *testing.T) {
	start, end := mustDate(t, "0001-01-01"), mustDate(t, "9999-12-31")

	allocs := testing.AllocsPerRun(5, func() {
		days := DaysInclusive(start, end, 366)
		if len(days) != 366 {
			t.Fatalf("got %d days", len(days))
		}
	})
	assert.LessOrEqual(t, allocs, 1.0)

	days := DaysInclusive(start, end, 3)
	require.Len(t, days, 3)
	assert.Equal(t, "0001-01-03", FormatDate(days[2]))
}

func TestNightsBetween(t *testing.T) {
	assert.Equal(t, 3, NightsBetween(mustDate(t, "2025-06-01"), mustDate(t, "2025-06-04")))
	assert.Equal(t, 0, NightsBetween(mustDate(t, "2025-06-04"), mustDate(t, "2025-06-04")))
	assert.Equal(t, 0, NightsBetween(mustDate(t, "2025-06-04"), mustDate(t, "2025-06-01")))
	assert.Equal(t, 3652058, NightsBetween(mustDate(t, "0001-01-01"), mustDate(t, "9999-12-31")))
}

func TestDurationLabel(t *testing.T) {
	assert.Equal(t, "0 days", DurationLabel(0))
	assert.Equal(t, "1 day", DurationLabel(1))
	assert.Equal(t, "7 days", DurationLabel(7))
}
