package utils

import (
	"fmt"
	"time"
)

const DateLayout = "2006-01-02"

// ParseDate reads an ISO calendar date (YYYY-MM-DD) as midnight UTC.
func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDate, s)
	}
	return t, nil
}

func FormatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(DateLayout)
}

// TruncateDay drops the clock part so day arithmetic stays calendar based.
func TruncateDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

const secondsPerDay = 24 * 60 * 60

// DayCount returns how many calendar days lie between start and end, both
// included, without enumerating them. It is 0 when end is before start.
func DayCount(start, end time.Time) int {
	span := TruncateDay(end).Unix() - TruncateDay(start).Unix()
	if span < 0 {
		return 0
	}
	return int(span/secondsPerDay) + 1
}

// DaysInclusive lists the calendar days from start to end, both included,
// stopping after limit days. It returns nil when end is before start or
// limit is not positive.
func DaysInclusive(start, end time.Time, limit int) []time.Time {
	n := DayCount(start, end)
	if n > limit {
		n = limit
	}
	if n <= 0 {
		return nil
	}

	start = TruncateDay(start)
	days := make([]time.Time, n)
	for i := range days {
		days[i] = start.AddDate(0, 0, i)
	}
	return days
}

// NightsBetween counts the nights between check-in and check-out. A negative
// span counts as zero nights.
func NightsBetween(checkIn, checkOut time.Time) int {
	span := TruncateDay(checkOut).Unix() - TruncateDay(checkIn).Unix()
	if span < 0 {
		return 0
	}
	return int(span / secondsPerDay)
}

// DurationLabel renders a day count as "1 day" / "N days".
func DurationLabel(days int) string {
	if days == 1 {
		return "1 day"
	}
	return fmt.Sprintf("%d days", days)
}
