//go:build integration

package main_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/veristay/service-admin/internal/application"
	commonDomain "github.com/veristay/service-admin/internal/common/domain"
	"github.com/veristay/service-admin/internal/domain/booking"
	"github.com/veristay/service-admin/internal/domain/calendar"
	"github.com/veristay/service-admin/internal/domain/listing"
	adminEvents "github.com/veristay/service-admin/internal/events"
)

// TestStorefrontSubmission_CreatesPendingBooking verifies that when the
// storefront publishes a booking submission, the admin service records
// it as a pending booking and announces it on the admin topic.
func TestStorefrontSubmission_CreatesPendingBooking(t *testing.T) {
	infra := setupContainers(t)
	defer infra.Cleanup()

	stack := setupAdminStack(t, infra.DB, infra.KafkaBrokers)
	defer stack.CleanupProducer()
	defer func() { _ = stack.Consumer.Close() }()

	// Start the consumer.
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go func() { _ = stack.Consumer.Start(ctx) }()
	time.Sleep(3 * time.Second) // Wait for consumer group join.

	listingID := uuid.New()
	evt := adminEvents.BookingSubmittedEvent{
		ListingID: listingID,
		Category:  "apartment",
		Guest: booking.Guest{
			FirstName: "Maya",
			LastName:  "Lindqvist",
			Email:     "maya@example.com",
			Phone:     "+46701234567",
		},
		CheckIn:         "2026-09-10",
		CheckOut:        "2026-09-14",
		Guests:          2,
		TaxesCents:      4500,
		TotalPriceCents: 58500,
	}
	publishTestEvent(t, infra.KafkaBrokers, testStorefrontTopic,
		"service-storefront", adminEvents.EventBookingSubmitted, evt)

	// Assert: a pending booking row appears for the listing.
	model := waitForBooking(t, infra.DB, listingID, "pending", 15*time.Second)
	assert.Equal(t, "2026-09-10", model.CheckIn)
	assert.Equal(t, "2026-09-14", model.CheckOut)
	assert.Equal(t, int64(58500), model.TotalPriceCents)

	// Assert: BookingCreated CloudEvent on admin.events.
	ce := consumeOneEvent(t, infra.KafkaBrokers, testAdminTopic,
		application.EventBookingCreated, 15*time.Second)

	var payload application.BookingEvent
	require.NoError(t, ce.ParseData(&payload))
	assert.Equal(t, model.ID, payload.BookingID)
	assert.Equal(t, listingID, payload.ListingID)
	assert.Equal(t, "pending", payload.Status)

	// The imported booking derives occupancy: check-in through check-out
	// inclusive, so the calendar shows five booked days.
	cal, err := stack.Calendar.GetCalendar(ctx, listingID, listing.CategoryApartment)
	require.NoError(t, err)
	for _, day := range []string{"2026-09-10", "2026-09-11", "2026-09-12", "2026-09-13", "2026-09-14"} {
		assert.Equal(t, string(calendar.StatusBooked), cal.Days[day], "day %s", day)
	}
	assert.NotContains(t, cal.Days, "2026-09-15")
}

// TestBookingLifecycle_ConfirmAndComplete drives a booking through its
// status transitions against the real database, exercising optimistic
// locking on each update.
func TestBookingLifecycle_ConfirmAndComplete(t *testing.T) {
	infra := setupContainers(t)
	defer infra.Cleanup()

	stack := setupAdminStack(t, infra.DB, infra.KafkaBrokers)
	defer stack.CleanupProducer()

	ctx := context.Background()
	dto, err := stack.Bookings.CreateBooking(ctx, application.CreateBookingRequest{
		ListingID: uuid.New(),
		Category:  "attraction",
		Guest: booking.Guest{
			FirstName: "Jonas",
			LastName:  "Berg",
			Email:     "jonas@example.com",
			Phone:     "+4791234567",
		},
		CheckIn:         "2026-10-01",
		CheckOut:        "2026-10-01",
		Guests:          4,
		TaxesCents:      1200,
		TotalPriceCents: 16200,
	})
	require.NoError(t, err)
	require.Equal(t, "pending", dto.Status)

	// Completing a pending booking is not a valid transition.
	_, err = stack.Bookings.CompleteBooking(ctx, dto.ID)
	require.Error(t, err)
	assert.True(t, commonDomain.IsConflict(err))

	confirmed, err := stack.Bookings.ConfirmBooking(ctx, dto.ID)
	require.NoError(t, err)
	assert.Equal(t, "confirmed", confirmed.Status)
	assert.Greater(t, confirmed.Version, dto.Version)

	completed, err := stack.Bookings.CompleteBooking(ctx, dto.ID)
	require.NoError(t, err)
	assert.Equal(t, "completed", completed.Status)
}

// TestBlockDay_DerivedCalendarAndDuplicateRejection verifies the manual
// block flow: a blocked day dominates the derived calendar, blocking the
// same day twice is rejected, and unblocking restores availability.
func TestBlockDay_DerivedCalendarAndDuplicateRejection(t *testing.T) {
	infra := setupContainers(t)
	defer infra.Cleanup()

	stack := setupAdminStack(t, infra.DB, infra.KafkaBrokers)
	defer stack.CleanupProducer()

	ctx := context.Background()
	listingID := uuid.New()

	bd, err := stack.Calendar.BlockDay(ctx, listingID, application.BlockDayRequest{
		Category: "apartment",
		Day:      "2026-11-20",
		Reason:   "maintenance",
	})
	require.NoError(t, err)

	status, err := stack.Calendar.GetDayStatus(ctx, listingID, listing.CategoryApartment, "2026-11-20")
	require.NoError(t, err)
	assert.Equal(t, calendar.StatusBlocked, status)

	// The unique index on (listing_id, day) rejects a second block.
	_, err = stack.Calendar.BlockDay(ctx, listingID, application.BlockDayRequest{
		Category: "apartment",
		Day:      "2026-11-20",
	})
	require.Error(t, err)
	assert.True(t, commonDomain.IsConflict(err))

	// Assert: the block was announced on admin.events.
	ce := consumeOneEvent(t, infra.KafkaBrokers, testAdminTopic,
		application.EventDayBlocked, 15*time.Second)
	var payload application.DayBlockedEvent
	require.NoError(t, ce.ParseData(&payload))
	assert.Equal(t, bd.ID, payload.BlockedDateID)

	require.NoError(t, stack.Calendar.UnblockDay(ctx, bd.ID))

	status, err = stack.Calendar.GetDayStatus(ctx, listingID, listing.CategoryApartment, "2026-11-20")
	require.NoError(t, err)
	assert.Equal(t, calendar.StatusAvailable, status)

	// Unblocking an id that no longer exists is a not-found error.
	err = stack.Calendar.UnblockDay(ctx, bd.ID)
	require.Error(t, err)
	assert.True(t, commonDomain.IsNotFound(err))
}
