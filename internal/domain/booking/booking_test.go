package booking

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	commonDomain "github.com/veristay/service-admin/internal/common/domain"
	"github.com/veristay/service-admin/internal/domain/listing"
)

func validGuest() Guest {
	return Guest{
		FirstName: "Amira",
		LastName:  "Hassan",
		Email:     "amira@example.com",
		Phone:     "+60123456789",
	}
}

func TestNewBooking_Valid(t *testing.T) {
	bk, err := NewBooking(uuid.New(), listing.CategoryApartment, validGuest(),
		"2025-07-10", "2025-07-13", 2, 1500, 45000)
	require.NoError(t, err)

	assert.Equal(t, StatusPending, bk.Status())
	assert.Equal(t, 3, bk.Nights())
	assert.Equal(t, int64(1), bk.Version())
}

func TestNewBooking_Validation(t *testing.T) {
	listingID := uuid.New()

	cases := []struct {
		name string
		fn   func() (*Booking, error)
	}{
		{"missing listing", func() (*Booking, error) {
			return NewBooking(uuid.Nil, listing.CategoryApartment, validGuest(), "2025-07-10", "2025-07-11", 1, 0, 100)
		}},
		{"bad category", func() (*Booking, error) {
			return NewBooking(listingID, listing.Category("villa"), validGuest(), "2025-07-10", "2025-07-11", 1, 0, 100)
		}},
		{"missing guest name", func() (*Booking, error) {
			return NewBooking(listingID, listing.CategoryApartment, Guest{Email: "x@y.z"}, "2025-07-10", "2025-07-11", 1, 0, 100)
		}},
		{"bad check-in", func() (*Booking, error) {
			return NewBooking(listingID, listing.CategoryApartment, validGuest(), "10/07/2025", "2025-07-11", 1, 0, 100)
		}},
		{"check-out before check-in", func() (*Booking, error) {
			return NewBooking(listingID, listing.CategoryApartment, validGuest(), "2025-07-11", "2025-07-10", 1, 0, 100)
		}},
		{"zero guests", func() (*Booking, error) {
			return NewBooking(listingID, listing.CategoryApartment, validGuest(), "2025-07-10", "2025-07-11", 0, 0, 100)
		}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := tc.fn()
			require.Error(t, err)
			assert.Equal(t, commonDomain.KindValidation, commonDomain.KindOf(err))
		})
	}
}

func TestNewBooking_SameDayStay(t *testing.T) {
	bk, err := NewBooking(uuid.New(), listing.CategoryAttraction, validGuest(),
		"2025-07-10", "2025-07-10", 2, 0, 12000)
	require.NoError(t, err)
	assert.Equal(t, 0, bk.Nights())

	stay := bk.Stay()
	assert.Equal(t, bk.CheckIn(), stay.CheckIn)
	assert.Equal(t, bk.CheckOut(), stay.CheckOut)
	assert.True(t, stay.Active)
}

func TestBooking_StatusTransitions(t *testing.T) {
	bk, err := NewBooking(uuid.New(), listing.CategoryApartment, validGuest(),
		"2025-07-10", "2025-07-13", 2, 0, 45000)
	require.NoError(t, err)

	// pending -> completed is not allowed.
	err = bk.Complete()
	require.Error(t, err)
	assert.Equal(t, StatusPending, bk.Status())

	require.NoError(t, bk.Confirm())
	assert.Equal(t, StatusConfirmed, bk.Status())

	// confirmed -> confirmed is not allowed.
	assert.Error(t, bk.Confirm())

	require.NoError(t, bk.Complete())
	assert.Equal(t, StatusCompleted, bk.Status())

	// completed is terminal.
	assert.Error(t, bk.Cancel())
}

func TestBooking_CancelledStayIsInactive(t *testing.T) {
	bk, err := NewBooking(uuid.New(), listing.CategoryApartment, validGuest(),
		"2025-07-10", "2025-07-13", 2, 0, 45000)
	require.NoError(t, err)

	require.NoError(t, bk.Cancel())
	assert.Equal(t, StatusCancelled, bk.Status())
	assert.False(t, bk.Stay().Active)

	// cancelled is terminal.
	assert.Error(t, bk.Confirm())
}

func TestStatus_CanTransitionTo(t *testing.T) {
	assert.True(t, StatusPending.CanTransitionTo(StatusConfirmed))
	assert.True(t, StatusPending.CanTransitionTo(StatusCancelled))
	assert.False(t, StatusPending.CanTransitionTo(StatusCompleted))
	assert.True(t, StatusConfirmed.CanTransitionTo(StatusCompleted))
	assert.False(t, StatusCompleted.CanTransitionTo(StatusCancelled))
	assert.False(t, StatusCancelled.CanTransitionTo(StatusPending))
}

func TestStatus_IsActive(t *testing.T) {
	assert.True(t, StatusPending.IsActive())
	assert.True(t, StatusConfirmed.IsActive())
	assert.True(t, StatusCompleted.IsActive())
	assert.False(t, StatusCancelled.IsActive())
}

func TestBooking_IncrementVersion(t *testing.T) {
	bk, err := NewBooking(uuid.New(), listing.CategoryApartment, validGuest(),
		"2025-07-10", "2025-07-13", 2, 0, 45000)
	require.NoError(t, err)

	bk.IncrementVersion()
	assert.Equal(t, int64(2), bk.Version())
}
