package application

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	commonDomain "github.com/veristay/service-admin/internal/common/domain"
	ckafka "github.com/veristay/service-admin/internal/common/kafka"
	bookingDomain "github.com/veristay/service-admin/internal/domain/booking"
	"github.com/veristay/service-admin/internal/domain/calendar"
	"github.com/veristay/service-admin/internal/domain/listing"
)

// fakeBookingRepo is an in-memory BookingRepository for service tests.
type fakeBookingRepo struct {
	bookings map[uuid.UUID]*bookingDomain.Booking
}

func newFakeBookingRepo() *fakeBookingRepo {
	return &fakeBookingRepo{bookings: make(map[uuid.UUID]*bookingDomain.Booking)}
}

func (f *fakeBookingRepo) FindByID(_ context.Context, id uuid.UUID) (*bookingDomain.Booking, error) {
	bk, ok := f.bookings[id]
	if !ok {
		return nil, commonDomain.NewNotFoundError("Booking", id.String())
	}
	return bk, nil
}

func (f *fakeBookingRepo) FindByListingID(_ context.Context, listingID uuid.UUID) ([]*bookingDomain.Booking, error) {
	var out []*bookingDomain.Booking
	for _, bk := range f.bookings {
		if bk.ListingID() == listingID {
			out = append(out, bk)
		}
	}
	return out, nil
}

func (f *fakeBookingRepo) List(_ context.Context, _ bookingDomain.ListFilter, _ bookingDomain.ListSort, _, _ int) ([]*bookingDomain.Booking, int64, error) {
	return nil, 0, nil
}

func (f *fakeBookingRepo) CountByStatus(_ context.Context) (map[string]int64, error) {
	return map[string]int64{}, nil
}

func (f *fakeBookingRepo) CountCreatedBetween(_ context.Context, _, _ time.Time) (int64, error) {
	return 0, nil
}

func (f *fakeBookingRepo) FindRecent(_ context.Context, _ int, _ *listing.Category) ([]*bookingDomain.Booking, error) {
	return nil, nil
}

func (f *fakeBookingRepo) Save(_ context.Context, bk *bookingDomain.Booking) error {
	f.bookings[bk.ID()] = bk
	return nil
}

func (f *fakeBookingRepo) Update(_ context.Context, bk *bookingDomain.Booking) error {
	f.bookings[bk.ID()] = bk
	return nil
}

func (f *fakeBookingRepo) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := f.bookings[id]; !ok {
		return commonDomain.NewNotFoundError("Booking", id.String())
	}
	delete(f.bookings, id)
	return nil
}

// fakeBlockedDateRepo is an in-memory BlockedDateRepository.
type fakeBlockedDateRepo struct {
	blocked map[uuid.UUID]*calendar.BlockedDate
}

func newFakeBlockedDateRepo() *fakeBlockedDateRepo {
	return &fakeBlockedDateRepo{blocked: make(map[uuid.UUID]*calendar.BlockedDate)}
}

func (f *fakeBlockedDateRepo) FindByListingID(_ context.Context, listingID uuid.UUID) ([]*calendar.BlockedDate, error) {
	var out []*calendar.BlockedDate
	for _, bd := range f.blocked {
		if bd.ListingID() == listingID {
			out = append(out, bd)
		}
	}
	return out, nil
}

func (f *fakeBlockedDateRepo) ExistsForDay(_ context.Context, listingID uuid.UUID, day calendar.Day) (bool, error) {
	for _, bd := range f.blocked {
		if bd.ListingID() == listingID && bd.Day() == day {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeBlockedDateRepo) Save(_ context.Context, bd *calendar.BlockedDate) error {
	f.blocked[bd.ID()] = bd
	return nil
}

func (f *fakeBlockedDateRepo) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := f.blocked[id]; !ok {
		return commonDomain.NewNotFoundError("BlockedDate", id.String())
	}
	delete(f.blocked, id)
	return nil
}

// capturingPublisher records every event the services publish.
type capturingPublisher struct {
	events []ckafka.CloudEvent
	topics []string
}

func (p *capturingPublisher) PublishEvent(_ context.Context, topic string, event ckafka.CloudEvent) error {
	p.topics = append(p.topics, topic)
	p.events = append(p.events, event)
	return nil
}

func newCalendarFixture() (*CalendarService, *fakeBookingRepo, *fakeBlockedDateRepo, *capturingPublisher) {
	bookings := newFakeBookingRepo()
	blocked := newFakeBlockedDateRepo()
	publisher := &capturingPublisher{}
	svc := NewCalendarService(bookings, blocked, publisher, "admin.events", zap.NewNop())
	return svc, bookings, blocked, publisher
}

func seedBooking(t *testing.T, repo *fakeBookingRepo, listingID uuid.UUID, category listing.Category, checkIn, checkOut string) *bookingDomain.Booking {
	t.Helper()
	bk, err := bookingDomain.NewBooking(listingID, category, bookingDomain.Guest{
		FirstName: "Test",
		LastName:  "Guest",
		Email:     "guest@example.com",
		Phone:     "+60100000000",
	}, calendar.Day(checkIn), calendar.Day(checkOut), 2, 0, 30000)
	require.NoError(t, err)
	require.NoError(t, repo.Save(context.Background(), bk))
	return bk
}

func TestGetCalendar_EmptyListingIsAllAvailable(t *testing.T) {
	svc, _, _, _ := newCalendarFixture()

	view, err := svc.GetCalendar(context.Background(), uuid.New(), listing.CategoryApartment)
	require.NoError(t, err)
	assert.Empty(t, view.Days)
	assert.Empty(t, view.BlockedDates)
	assert.Empty(t, view.Bookings)
}

func TestGetCalendar_ApartmentStayMarksDaysBooked(t *testing.T) {
	svc, bookings, _, _ := newCalendarFixture()
	listingID := uuid.New()
	seedBooking(t, bookings, listingID, listing.CategoryApartment, "2025-07-10", "2025-07-12")

	view, err := svc.GetCalendar(context.Background(), listingID, listing.CategoryApartment)
	require.NoError(t, err)

	for _, day := range []string{"2025-07-10", "2025-07-11", "2025-07-12"} {
		assert.Equal(t, string(calendar.StatusBooked), view.Days[day])
	}
	_, present := view.Days["2025-07-13"]
	assert.False(t, present)
	assert.Len(t, view.Bookings, 1)
}

func TestGetCalendar_AttractionTiers(t *testing.T) {
	svc, bookings, _, _ := newCalendarFixture()
	listingID := uuid.New()
	seedBooking(t, bookings, listingID, listing.CategoryAttraction, "2025-07-10", "2025-07-12")
	seedBooking(t, bookings, listingID, listing.CategoryAttraction, "2025-07-11", "2025-07-13")

	view, err := svc.GetCalendar(context.Background(), listingID, listing.CategoryAttraction)
	require.NoError(t, err)

	assert.Equal(t, string(calendar.StatusPartiallyBooked), view.Days["2025-07-10"])
	assert.Equal(t, string(calendar.StatusFullyBooked), view.Days["2025-07-11"])
	assert.Equal(t, string(calendar.StatusFullyBooked), view.Days["2025-07-12"])
	assert.Equal(t, string(calendar.StatusPartiallyBooked), view.Days["2025-07-13"])
}

func TestGetCalendar_CancelledBookingFreesDays(t *testing.T) {
	svc, bookings, _, _ := newCalendarFixture()
	listingID := uuid.New()
	bk := seedBooking(t, bookings, listingID, listing.CategoryApartment, "2025-07-10", "2025-07-12")

	require.NoError(t, bk.Cancel())
	require.NoError(t, bookings.Update(context.Background(), bk))

	view, err := svc.GetCalendar(context.Background(), listingID, listing.CategoryApartment)
	require.NoError(t, err)
	assert.Empty(t, view.Days)
	assert.Empty(t, view.Bookings, "cancelled bookings are not listed")
}

func TestGetCalendar_BlockedDominatesBooked(t *testing.T) {
	svc, bookings, _, _ := newCalendarFixture()
	listingID := uuid.New()
	seedBooking(t, bookings, listingID, listing.CategoryApartment, "2025-07-10", "2025-07-12")

	_, err := svc.BlockDay(context.Background(), listingID, BlockDayRequest{
		Category: "apartment",
		Day:      "2025-07-11",
		Reason:   "deep clean",
	})
	require.NoError(t, err)

	view, err := svc.GetCalendar(context.Background(), listingID, listing.CategoryApartment)
	require.NoError(t, err)
	assert.Equal(t, string(calendar.StatusBooked), view.Days["2025-07-10"])
	assert.Equal(t, string(calendar.StatusBlocked), view.Days["2025-07-11"])
	assert.Equal(t, string(calendar.StatusBooked), view.Days["2025-07-12"])
}

func TestGetDayStatus_DefaultsToAvailable(t *testing.T) {
	svc, _, _, _ := newCalendarFixture()

	status, err := svc.GetDayStatus(context.Background(), uuid.New(), listing.CategoryApartment, "2025-07-10")
	require.NoError(t, err)
	assert.Equal(t, calendar.StatusAvailable, status)
}

func TestGetDayStatus_RejectsMalformedDay(t *testing.T) {
	svc, _, _, _ := newCalendarFixture()

	_, err := svc.GetDayStatus(context.Background(), uuid.New(), listing.CategoryApartment, "07/10/2025")
	require.Error(t, err)
	assert.Equal(t, commonDomain.KindValidation, commonDomain.KindOf(err))
}

func TestBlockDay_PublishesEvent(t *testing.T) {
	svc, _, blocked, publisher := newCalendarFixture()
	listingID := uuid.New()

	dto, err := svc.BlockDay(context.Background(), listingID, BlockDayRequest{
		Category: "apartment",
		Day:      "2025-07-11",
	})
	require.NoError(t, err)
	assert.Equal(t, "2025-07-11", dto.Day)
	assert.Len(t, blocked.blocked, 1)

	require.Len(t, publisher.events, 1)
	assert.Equal(t, EventDayBlocked, publisher.events[0].Type)
	assert.Equal(t, "admin.events", publisher.topics[0])
}

func TestBlockDay_DuplicateRejectedWithConflict(t *testing.T) {
	svc, _, _, _ := newCalendarFixture()
	listingID := uuid.New()

	req := BlockDayRequest{Category: "apartment", Day: "2025-07-11"}
	_, err := svc.BlockDay(context.Background(), listingID, req)
	require.NoError(t, err)

	_, err = svc.BlockDay(context.Background(), listingID, req)
	require.Error(t, err)
	assert.Equal(t, commonDomain.KindConflict, commonDomain.KindOf(err))
}

func TestBlockDay_SameDayDifferentListingsAllowed(t *testing.T) {
	svc, _, _, _ := newCalendarFixture()

	req := BlockDayRequest{Category: "apartment", Day: "2025-07-11"}
	_, err := svc.BlockDay(context.Background(), uuid.New(), req)
	require.NoError(t, err)
	_, err = svc.BlockDay(context.Background(), uuid.New(), req)
	require.NoError(t, err)
}

func TestBlockDay_RejectsBadInput(t *testing.T) {
	svc, _, _, _ := newCalendarFixture()

	_, err := svc.BlockDay(context.Background(), uuid.New(), BlockDayRequest{Category: "villa", Day: "2025-07-11"})
	require.Error(t, err)
	assert.Equal(t, commonDomain.KindValidation, commonDomain.KindOf(err))

	_, err = svc.BlockDay(context.Background(), uuid.New(), BlockDayRequest{Category: "apartment", Day: "2025-7-1"})
	require.Error(t, err)
	assert.Equal(t, commonDomain.KindValidation, commonDomain.KindOf(err))
}

func TestUnblockDay_RoundTrip(t *testing.T) {
	svc, bookings, _, publisher := newCalendarFixture()
	listingID := uuid.New()
	seedBooking(t, bookings, listingID, listing.CategoryApartment, "2025-07-10", "2025-07-12")

	dto, err := svc.BlockDay(context.Background(), listingID, BlockDayRequest{Category: "apartment", Day: "2025-07-11"})
	require.NoError(t, err)

	require.NoError(t, svc.UnblockDay(context.Background(), dto.ID))

	view, err := svc.GetCalendar(context.Background(), listingID, listing.CategoryApartment)
	require.NoError(t, err)
	// The day reverts to its booking-derived status once unblocked.
	assert.Equal(t, string(calendar.StatusBooked), view.Days["2025-07-11"])

	require.Len(t, publisher.events, 2)
	assert.Equal(t, EventDayUnblocked, publisher.events[1].Type)
}

func TestUnblockDay_MissingIDIsNotFound(t *testing.T) {
	svc, _, _, _ := newCalendarFixture()

	err := svc.UnblockDay(context.Background(), uuid.New())
	require.Error(t, err)
	assert.True(t, commonDomain.IsNotFound(err))
}
