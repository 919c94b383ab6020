package calendar

import (
	"github.com/veristay/service-admin/internal/domain/listing"
)

// DayStatus is the derived availability of one listing on one calendar day.
type DayStatus string

const (
	StatusAvailable       DayStatus = "available"
	StatusBooked          DayStatus = "booked"
	StatusPartiallyBooked DayStatus = "partially-booked"
	StatusFullyBooked     DayStatus = "fully-booked"
	StatusBlocked         DayStatus = "blocked"
)

// Stay is the slice of a booking the calendar cares about: an inclusive
// day range and whether the booking still counts toward occupancy.
type Stay struct {
	CheckIn  Day
	CheckOut Day
	Active   bool
}

// Covers reports whether day falls inside the stay's inclusive range.
func (s Stay) Covers(day Day) bool {
	return !day.Before(s.CheckIn) && !day.After(s.CheckOut)
}

// capacityFor returns the number of concurrent active bookings a
// listing category tolerates on one day before it is fully booked.
func capacityFor(category listing.Category) int {
	if category == listing.CategoryAttraction {
		return 2
	}
	return 1
}

// ExpandOccupancy walks every active stay day by day and counts how
// many stays cover each calendar day. A same-day stay (check-in equals
// check-out) occupies exactly that one day; inactive stays contribute
// nothing. The result is rebuilt from scratch on every call; occupancy
// is derived state, never stored.
func ExpandOccupancy(stays []Stay) map[Day]int {
	occupancy := make(map[Day]int)
	for _, s := range stays {
		if !s.Active {
			continue
		}
		for day := s.CheckIn; !day.After(s.CheckOut); day = day.Next() {
			occupancy[day]++
		}
	}
	return occupancy
}

// ComputeDayStatus derives the availability of one day from the
// occupancy counts and the blocked-day set. A blocked day is blocked
// no matter how many bookings cover it; otherwise the count is
// classified against the category's capacity.
func ComputeDayStatus(category listing.Category, day Day, occupancy map[Day]int, blocked map[Day]bool) DayStatus {
	if blocked[day] {
		return StatusBlocked
	}

	count := occupancy[day]
	if capacityFor(category) == 1 {
		if count > 0 {
			return StatusBooked
		}
		return StatusAvailable
	}

	switch {
	case count >= 2:
		return StatusFullyBooked
	case count == 1:
		return StatusPartiallyBooked
	default:
		return StatusAvailable
	}
}

// BlockedSet indexes blocked dates by day for O(1) lookups in
// ComputeDayStatus.
func BlockedSet(blockedDates []*BlockedDate) map[Day]bool {
	set := make(map[Day]bool, len(blockedDates))
	for _, bd := range blockedDates {
		set[bd.Day()] = true
	}
	return set
}
