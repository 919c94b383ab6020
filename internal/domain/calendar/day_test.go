package calendar

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDay_Valid(t *testing.T) {
	day, err := ParseDay("2025-07-10")
	require.NoError(t, err)
	assert.Equal(t, Day("2025-07-10"), day)
}

func TestParseDay_Invalid(t *testing.T) {
	cases := []string{
		"",
		"2025-7-10",
		"10-07-2025",
		"2025-13-01",
		"2025-02-30",
		"2025-07-10T00:00:00Z",
		"not a date",
	}
	for _, raw := range cases {
		_, err := ParseDay(raw)
		assert.Error(t, err, "expected %q to be rejected", raw)
	}
}

func TestDay_Next(t *testing.T) {
	assert.Equal(t, Day("2025-07-11"), Day("2025-07-10").Next())
	assert.Equal(t, Day("2025-08-01"), Day("2025-07-31").Next())
	assert.Equal(t, Day("2025-01-01"), Day("2024-12-31").Next())
	// Leap year.
	assert.Equal(t, Day("2024-02-29"), Day("2024-02-28").Next())
	assert.Equal(t, Day("2025-03-01"), Day("2025-02-28").Next())
}

func TestDay_Ordering(t *testing.T) {
	assert.True(t, Day("2025-07-10").Before(Day("2025-07-11")))
	assert.True(t, Day("2025-07-11").After(Day("2025-07-10")))
	assert.False(t, Day("2025-07-10").Before(Day("2025-07-10")))
	assert.False(t, Day("2025-07-10").After(Day("2025-07-10")))
	// Lexical order crosses month and year boundaries correctly.
	assert.True(t, Day("2024-12-31").Before(Day("2025-01-01")))
	assert.True(t, Day("2025-09-30").Before(Day("2025-10-01")))
}

func TestDayOf(t *testing.T) {
	ts := time.Date(2025, 7, 10, 23, 59, 59, 0, time.UTC)
	assert.Equal(t, Day("2025-07-10"), DayOf(ts))
}

func TestDay_Time(t *testing.T) {
	ts := Day("2025-07-10").Time()
	assert.Equal(t, time.Date(2025, 7, 10, 0, 0, 0, 0, time.UTC), ts)
}
