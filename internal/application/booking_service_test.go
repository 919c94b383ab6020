package application

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	commonDomain "github.com/veristay/service-admin/internal/common/domain"
	bookingDomain "github.com/veristay/service-admin/internal/domain/booking"
)

func newBookingFixture() (*BookingService, *fakeBookingRepo, *capturingPublisher) {
	repo := newFakeBookingRepo()
	publisher := &capturingPublisher{}
	svc := NewBookingService(repo, publisher, "admin.events", zap.NewNop())
	return svc, repo, publisher
}

func validCreateBookingRequest() CreateBookingRequest {
	return CreateBookingRequest{
		ListingID: uuid.New(),
		Category:  "apartment",
		Guest: bookingDomain.Guest{
			FirstName: "Amira",
			LastName:  "Hassan",
			Email:     "amira@example.com",
			Phone:     "+60123456789",
		},
		CheckIn:         "2025-07-10",
		CheckOut:        "2025-07-13",
		Guests:          2,
		TaxesCents:      1500,
		TotalPriceCents: 46500,
	}
}

func TestCreateBooking_PendingAndPublished(t *testing.T) {
	svc, repo, publisher := newBookingFixture()

	dto, err := svc.CreateBooking(context.Background(), validCreateBookingRequest())
	require.NoError(t, err)

	assert.Equal(t, "pending", dto.Status)
	assert.Equal(t, 3, dto.Nights)
	assert.Len(t, repo.bookings, 1)

	require.Len(t, publisher.events, 1)
	assert.Equal(t, EventBookingCreated, publisher.events[0].Type)
}

func TestCreateBooking_RejectsBadDates(t *testing.T) {
	svc, _, _ := newBookingFixture()

	req := validCreateBookingRequest()
	req.CheckOut = "2025-07-09"
	_, err := svc.CreateBooking(context.Background(), req)
	require.Error(t, err)
	assert.Equal(t, commonDomain.KindValidation, commonDomain.KindOf(err))

	req = validCreateBookingRequest()
	req.CheckIn = "July 10, 2025"
	_, err = svc.CreateBooking(context.Background(), req)
	require.Error(t, err)
	assert.Equal(t, commonDomain.KindValidation, commonDomain.KindOf(err))
}

func TestBookingLifecycle_ConfirmComplete(t *testing.T) {
	svc, _, publisher := newBookingFixture()

	created, err := svc.CreateBooking(context.Background(), validCreateBookingRequest())
	require.NoError(t, err)

	confirmed, err := svc.ConfirmBooking(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, "confirmed", confirmed.Status)
	assert.Equal(t, created.Version+1, confirmed.Version)

	completed, err := svc.CompleteBooking(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, "completed", completed.Status)

	types := make([]string, len(publisher.events))
	for i, e := range publisher.events {
		types[i] = e.Type
	}
	assert.Equal(t, []string{EventBookingCreated, EventBookingConfirmed, EventBookingCompleted}, types)
}

func TestBookingLifecycle_InvalidTransition(t *testing.T) {
	svc, _, _ := newBookingFixture()

	created, err := svc.CreateBooking(context.Background(), validCreateBookingRequest())
	require.NoError(t, err)

	// pending cannot complete directly.
	_, err = svc.CompleteBooking(context.Background(), created.ID)
	require.Error(t, err)
	assert.Equal(t, commonDomain.KindConflict, commonDomain.KindOf(err))
}

func TestCancelBooking_Unknown(t *testing.T) {
	svc, _, _ := newBookingFixture()

	_, err := svc.CancelBooking(context.Background(), uuid.New())
	require.Error(t, err)
	assert.True(t, commonDomain.IsNotFound(err))
}

func TestDeleteBooking(t *testing.T) {
	svc, repo, _ := newBookingFixture()

	created, err := svc.CreateBooking(context.Background(), validCreateBookingRequest())
	require.NoError(t, err)

	require.NoError(t, svc.DeleteBooking(context.Background(), created.ID))
	assert.Empty(t, repo.bookings)

	err = svc.DeleteBooking(context.Background(), created.ID)
	assert.True(t, commonDomain.IsNotFound(err))
}
