package application

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/veristay/service-admin/internal/common/domain"
	ckafka "github.com/veristay/service-admin/internal/common/kafka"
	bookingDomain "github.com/veristay/service-admin/internal/domain/booking"
	"github.com/veristay/service-admin/internal/domain/calendar"
	"github.com/veristay/service-admin/internal/domain/listing"
)

// BlockDayRequest is the request DTO for blocking a calendar day.
type BlockDayRequest struct {
	Category string `json:"category" binding:"required"`
	Day      string `json:"day" binding:"required"`
	Reason   string `json:"reason"`
}

// BlockedDateDTO is the API representation of a blocked date.
type BlockedDateDTO struct {
	ID        uuid.UUID `json:"id"`
	ListingID uuid.UUID `json:"listing_id"`
	Category  string    `json:"category"`
	Day       string    `json:"day"`
	Reason    string    `json:"reason,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// CalendarDTO is the derived availability view for one listing. Days
// absent from Days are available.
type CalendarDTO struct {
	ListingID    uuid.UUID           `json:"listing_id"`
	Category     string              `json:"category"`
	Days         map[string]string   `json:"days"`
	BlockedDates []BlockedDateDTO    `json:"blocked_dates"`
	Bookings     []BookingSummaryDTO `json:"bookings"`
}

// BookingSummaryDTO is the compact booking view shown on calendar day detail.
type BookingSummaryDTO struct {
	ID        uuid.UUID `json:"id"`
	GuestName string    `json:"guest_name"`
	CheckIn   string    `json:"check_in"`
	CheckOut  string    `json:"check_out"`
	Guests    int       `json:"guests"`
	Status    string    `json:"status"`
}

// Calendar event types published on the admin topic.
const (
	EventDayBlocked   = "veristay.calendar.day_blocked"
	EventDayUnblocked = "veristay.calendar.day_unblocked"
)

// DayBlockedEvent is published after a day is blocked or unblocked.
type DayBlockedEvent struct {
	BlockedDateID uuid.UUID `json:"blocked_date_id"`
	ListingID     uuid.UUID `json:"listing_id"`
	Category      string    `json:"category"`
	Day           string    `json:"day"`
	Reason        string    `json:"reason,omitempty"`
	OccurredAt    time.Time `json:"occurred_at"`
}

// CalendarService derives per-day availability for a listing and
// mediates block/unblock mutations. It holds no calendar state of its
// own: every view is recomputed from the current booking and
// blocked-date rows, so the result is identical no matter what order
// of mutations produced those rows.
type CalendarService struct {
	bookings bookingDomain.BookingRepository
	blocked  calendar.BlockedDateRepository
	producer EventPublisher
	topic    string
	logger   *zap.Logger
}

// NewCalendarService creates a new CalendarService.
func NewCalendarService(
	bookings bookingDomain.BookingRepository,
	blocked calendar.BlockedDateRepository,
	producer EventPublisher,
	topic string,
	logger *zap.Logger,
) *CalendarService {
	return &CalendarService{
		bookings: bookings,
		blocked:  blocked,
		producer: producer,
		topic:    topic,
		logger:   logger,
	}
}

// GetCalendar fetches the listing's bookings and blocked dates and
// derives the status of every day that is not plainly available.
func (s *CalendarService) GetCalendar(ctx context.Context, listingID uuid.UUID, category listing.Category) (*CalendarDTO, error) {
	if listingID == uuid.Nil {
		return nil, domain.NewValidationError("listing ID is required")
	}
	if !category.IsValid() {
		return nil, domain.NewValidationError("invalid listing category: " + string(category))
	}

	bookings, err := s.bookings.FindByListingID(ctx, listingID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch bookings: %w", err)
	}
	blockedDates, err := s.blocked.FindByListingID(ctx, listingID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch blocked dates: %w", err)
	}

	stays := make([]calendar.Stay, len(bookings))
	for i, b := range bookings {
		stays[i] = b.Stay()
	}

	occupancy := calendar.ExpandOccupancy(stays)
	blockedSet := calendar.BlockedSet(blockedDates)

	days := make(map[string]string, len(occupancy)+len(blockedSet))
	for day := range occupancy {
		days[day.String()] = string(calendar.ComputeDayStatus(category, day, occupancy, blockedSet))
	}
	for day := range blockedSet {
		days[day.String()] = string(calendar.StatusBlocked)
	}

	blockedDTOs := make([]BlockedDateDTO, len(blockedDates))
	for i, bd := range blockedDates {
		blockedDTOs[i] = toBlockedDateDTO(bd)
	}

	summaries := make([]BookingSummaryDTO, 0, len(bookings))
	for _, b := range bookings {
		if !b.Status().IsActive() {
			continue
		}
		summaries = append(summaries, BookingSummaryDTO{
			ID:        b.ID(),
			GuestName: b.Guest().FirstName + " " + b.Guest().LastName,
			CheckIn:   b.CheckIn().String(),
			CheckOut:  b.CheckOut().String(),
			Guests:    b.Guests(),
			Status:    string(b.Status()),
		})
	}

	return &CalendarDTO{
		ListingID:    listingID,
		Category:     string(category),
		Days:         days,
		BlockedDates: blockedDTOs,
		Bookings:     summaries,
	}, nil
}

// GetDayStatus derives the availability of a single day.
func (s *CalendarService) GetDayStatus(ctx context.Context, listingID uuid.UUID, category listing.Category, dayStr string) (calendar.DayStatus, error) {
	day, err := calendar.ParseDay(dayStr)
	if err != nil {
		return "", domain.NewValidationError(err.Error())
	}

	view, err := s.GetCalendar(ctx, listingID, category)
	if err != nil {
		return "", err
	}
	if status, ok := view.Days[day.String()]; ok {
		return calendar.DayStatus(status), nil
	}
	return calendar.StatusAvailable, nil
}

// BlockDay inserts a blocked-date override for the given listing and
// day. Booking occupancy is deliberately not consulted: blocking an
// already-booked day just means the calendar shows blocked from then
// on; the bookings underneath are untouched. A second block for the
// same (listing, day) pair is rejected.
func (s *CalendarService) BlockDay(ctx context.Context, listingID uuid.UUID, req BlockDayRequest) (*BlockedDateDTO, error) {
	category, err := listing.ParseCategory(req.Category)
	if err != nil {
		return nil, err
	}
	day, err := calendar.ParseDay(req.Day)
	if err != nil {
		return nil, domain.NewValidationError(err.Error())
	}

	exists, err := s.blocked.ExistsForDay(ctx, listingID, day)
	if err != nil {
		return nil, fmt.Errorf("failed to check existing block: %w", err)
	}
	if exists {
		return nil, domain.NewConflictError(fmt.Sprintf("date %s is already blocked for this listing", day))
	}

	bd, err := calendar.NewBlockedDate(listingID, category, day, req.Reason)
	if err != nil {
		return nil, err
	}

	if err := s.blocked.Save(ctx, bd); err != nil {
		return nil, fmt.Errorf("failed to save blocked date: %w", err)
	}

	s.logger.Info("calendar day blocked",
		zap.String("listing_id", listingID.String()),
		zap.String("day", day.String()),
	)
	s.publishDayEvent(ctx, EventDayBlocked, bd)

	result := toBlockedDateDTO(bd)
	return &result, nil
}

// UnblockDay removes a blocked-date override by its identifier. An
// unknown id surfaces as not-found so the dashboard can tell "already
// gone" apart from success.
func (s *CalendarService) UnblockDay(ctx context.Context, blockedDateID uuid.UUID) error {
	if blockedDateID == uuid.Nil {
		return domain.NewValidationError("blocked date ID is required")
	}

	if err := s.blocked.Delete(ctx, blockedDateID); err != nil {
		return err
	}

	s.logger.Info("calendar day unblocked",
		zap.String("blocked_date_id", blockedDateID.String()),
	)
	s.publishUnblocked(ctx, blockedDateID)
	return nil
}

func (s *CalendarService) publishDayEvent(ctx context.Context, eventType string, bd *calendar.BlockedDate) {
	if s.producer == nil {
		return
	}
	evt := DayBlockedEvent{
		BlockedDateID: bd.ID(),
		ListingID:     bd.ListingID(),
		Category:      string(bd.Category()),
		Day:           bd.Day().String(),
		Reason:        bd.Reason(),
		OccurredAt:    time.Now().UTC(),
	}
	publishEvent(ctx, s.producer, s.topic, eventType, evt, s.logger)
}

func (s *CalendarService) publishUnblocked(ctx context.Context, blockedDateID uuid.UUID) {
	if s.producer == nil {
		return
	}
	evt := DayBlockedEvent{
		BlockedDateID: blockedDateID,
		OccurredAt:    time.Now().UTC(),
	}
	publishEvent(ctx, s.producer, s.topic, EventDayUnblocked, evt, s.logger)
}

func toBlockedDateDTO(bd *calendar.BlockedDate) BlockedDateDTO {
	return BlockedDateDTO{
		ID:        bd.ID(),
		ListingID: bd.ListingID(),
		Category:  string(bd.Category()),
		Day:       bd.Day().String(),
		Reason:    bd.Reason(),
		CreatedAt: bd.CreatedAt(),
	}
}

// EventPublisher is the slice of the Kafka producer the services need.
type EventPublisher interface {
	PublishEvent(ctx context.Context, topic string, event ckafka.CloudEvent) error
}

// publishEvent wraps data in a CloudEvent and publishes it, logging
// rather than failing the caller's operation on error.
func publishEvent(ctx context.Context, producer EventPublisher, topic, eventType string, data interface{}, logger *zap.Logger) {
	cloudEvent, err := ckafka.NewCloudEvent("service-admin", eventType, data)
	if err != nil {
		logger.Error("failed to create cloud event",
			zap.String("event_type", eventType),
			zap.Error(err),
		)
		return
	}
	if err := producer.PublishEvent(ctx, topic, cloudEvent); err != nil {
		logger.Error("failed to publish event",
			zap.String("topic", topic),
			zap.String("event_type", eventType),
			zap.Error(err),
		)
	}
}
