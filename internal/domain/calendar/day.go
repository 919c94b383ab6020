package calendar

import (
	"fmt"
	"time"
)

// Day is a calendar day in canonical yyyy-mm-dd form. Keeping days as
// plain strings with no time-of-day or zone avoids the off-by-one
// drift that timezone-aware date arithmetic introduces; ISO dates also
// order lexically, so string comparison is date comparison.
type Day string

// ParseDay validates s as a yyyy-mm-dd calendar day.
func ParseDay(s string) (Day, error) {
	t, err := time.Parse(time.DateOnly, s)
	if err != nil {
		return "", fmt.Errorf("invalid calendar day %q: %w", s, err)
	}
	// Round-trip to reject forms like 2024-6-1 that time.Parse would
	// otherwise not produce.
	if t.Format(time.DateOnly) != s {
		return "", fmt.Errorf("invalid calendar day %q: not canonical yyyy-mm-dd", s)
	}
	return Day(s), nil
}

// DayOf truncates a time to its calendar day in UTC.
func DayOf(t time.Time) Day {
	return Day(t.UTC().Format(time.DateOnly))
}

// Time returns the day as midnight UTC.
func (d Day) Time() time.Time {
	t, _ := time.Parse(time.DateOnly, string(d))
	return t
}

// Next returns the following calendar day.
func (d Day) Next() Day {
	return Day(d.Time().AddDate(0, 0, 1).Format(time.DateOnly))
}

// Before reports whether d is strictly earlier than other.
func (d Day) Before(other Day) bool {
	return d < other
}

// After reports whether d is strictly later than other.
func (d Day) After(other Day) bool {
	return d > other
}

// String returns the canonical yyyy-mm-dd form.
func (d Day) String() string {
	return string(d)
}
