package calendar

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/veristay/service-admin/internal/domain/listing"
)

func TestExpandOccupancy_InclusiveRange(t *testing.T) {
	occupancy := ExpandOccupancy([]Stay{
		{CheckIn: "2025-07-10", CheckOut: "2025-07-12", Active: true},
	})

	assert.Equal(t, 1, occupancy["2025-07-10"])
	assert.Equal(t, 1, occupancy["2025-07-11"])
	assert.Equal(t, 1, occupancy["2025-07-12"])
	assert.Equal(t, 0, occupancy["2025-07-09"])
	assert.Equal(t, 0, occupancy["2025-07-13"])
}

func TestExpandOccupancy_SameDayStay(t *testing.T) {
	occupancy := ExpandOccupancy([]Stay{
		{CheckIn: "2025-07-10", CheckOut: "2025-07-10", Active: true},
	})

	assert.Equal(t, 1, occupancy["2025-07-10"])
	assert.Len(t, occupancy, 1)
}

func TestExpandOccupancy_InactiveStaysContributeNothing(t *testing.T) {
	occupancy := ExpandOccupancy([]Stay{
		{CheckIn: "2025-07-10", CheckOut: "2025-07-12", Active: false},
	})

	assert.Empty(t, occupancy)
}

func TestExpandOccupancy_OverlappingStaysAccumulate(t *testing.T) {
	occupancy := ExpandOccupancy([]Stay{
		{CheckIn: "2025-08-01", CheckOut: "2025-08-05", Active: true},
		{CheckIn: "2025-08-03", CheckOut: "2025-08-07", Active: true},
	})

	assert.Equal(t, 1, occupancy["2025-08-01"])
	assert.Equal(t, 2, occupancy["2025-08-03"])
	assert.Equal(t, 2, occupancy["2025-08-05"])
	assert.Equal(t, 1, occupancy["2025-08-06"])
}

func TestExpandOccupancy_MonthBoundary(t *testing.T) {
	occupancy := ExpandOccupancy([]Stay{
		{CheckIn: "2025-01-31", CheckOut: "2025-02-02", Active: true},
	})

	assert.Equal(t, 1, occupancy["2025-01-31"])
	assert.Equal(t, 1, occupancy["2025-02-01"])
	assert.Equal(t, 1, occupancy["2025-02-02"])
	assert.Len(t, occupancy, 3)
}

func TestComputeDayStatus_ApartmentNoBookings(t *testing.T) {
	status := ComputeDayStatus(listing.CategoryApartment, "2025-07-10", map[Day]int{}, map[Day]bool{})
	assert.Equal(t, StatusAvailable, status)
}

func TestComputeDayStatus_ApartmentSingleBooking(t *testing.T) {
	occupancy := map[Day]int{"2025-07-10": 1}
	status := ComputeDayStatus(listing.CategoryApartment, "2025-07-10", occupancy, map[Day]bool{})
	assert.Equal(t, StatusBooked, status)
}

func TestComputeDayStatus_AttractionCapacityTiers(t *testing.T) {
	blocked := map[Day]bool{}

	assert.Equal(t, StatusAvailable,
		ComputeDayStatus(listing.CategoryAttraction, "2025-07-10", map[Day]int{}, blocked))
	assert.Equal(t, StatusPartiallyBooked,
		ComputeDayStatus(listing.CategoryAttraction, "2025-07-10", map[Day]int{"2025-07-10": 1}, blocked))
	assert.Equal(t, StatusFullyBooked,
		ComputeDayStatus(listing.CategoryAttraction, "2025-07-10", map[Day]int{"2025-07-10": 2}, blocked))
	assert.Equal(t, StatusFullyBooked,
		ComputeDayStatus(listing.CategoryAttraction, "2025-07-10", map[Day]int{"2025-07-10": 3}, blocked))
}

func TestComputeDayStatus_BlockedDominatesBookings(t *testing.T) {
	occupancy := map[Day]int{"2025-07-10": 2}
	blocked := map[Day]bool{"2025-07-10": true}

	assert.Equal(t, StatusBlocked,
		ComputeDayStatus(listing.CategoryApartment, "2025-07-10", occupancy, blocked))
	assert.Equal(t, StatusBlocked,
		ComputeDayStatus(listing.CategoryAttraction, "2025-07-10", occupancy, blocked))
}

func TestComputeDayStatus_Deterministic(t *testing.T) {
	occupancy := ExpandOccupancy([]Stay{
		{CheckIn: "2025-07-10", CheckOut: "2025-07-12", Active: true},
	})
	blocked := map[Day]bool{"2025-07-11": true}

	first := ComputeDayStatus(listing.CategoryApartment, "2025-07-11", occupancy, blocked)
	second := ComputeDayStatus(listing.CategoryApartment, "2025-07-11", occupancy, blocked)
	assert.Equal(t, first, second)
}

func TestComputeDayStatus_CancellationFreesDays(t *testing.T) {
	stay := Stay{CheckIn: "2025-07-10", CheckOut: "2025-07-12", Active: true}

	occupancy := ExpandOccupancy([]Stay{stay})
	assert.Equal(t, StatusBooked,
		ComputeDayStatus(listing.CategoryApartment, "2025-07-11", occupancy, map[Day]bool{}))

	stay.Active = false
	occupancy = ExpandOccupancy([]Stay{stay})
	assert.Equal(t, StatusAvailable,
		ComputeDayStatus(listing.CategoryApartment, "2025-07-11", occupancy, map[Day]bool{}))
}

func TestComputeDayStatus_BackToBackStaysShareBoundary(t *testing.T) {
	// Guest A checks out the same day guest B checks in. With inclusive
	// ranges both stays cover the boundary day.
	occupancy := ExpandOccupancy([]Stay{
		{CheckIn: "2025-07-08", CheckOut: "2025-07-10", Active: true},
		{CheckIn: "2025-07-10", CheckOut: "2025-07-13", Active: true},
	})

	assert.Equal(t, 2, occupancy["2025-07-10"])
	assert.Equal(t, StatusFullyBooked,
		ComputeDayStatus(listing.CategoryAttraction, "2025-07-10", occupancy, map[Day]bool{}))
	assert.Equal(t, StatusBooked,
		ComputeDayStatus(listing.CategoryApartment, "2025-07-10", occupancy, map[Day]bool{}))
}

func TestStay_Covers(t *testing.T) {
	stay := Stay{CheckIn: "2025-07-10", CheckOut: "2025-07-12", Active: true}

	assert.False(t, stay.Covers("2025-07-09"))
	assert.True(t, stay.Covers("2025-07-10"))
	assert.True(t, stay.Covers("2025-07-11"))
	assert.True(t, stay.Covers("2025-07-12"))
	assert.False(t, stay.Covers("2025-07-13"))
}

func TestBlockedSet(t *testing.T) {
	bd, err := NewBlockedDate(uuid.New(), listing.CategoryApartment, "2025-07-10", "maintenance")
	require.NoError(t, err)

	set := BlockedSet([]*BlockedDate{bd})
	assert.True(t, set["2025-07-10"])
	assert.False(t, set["2025-07-11"])
}
