package application

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/veristay/service-admin/internal/common/domain"
	bookingDomain "github.com/veristay/service-admin/internal/domain/booking"
	"github.com/veristay/service-admin/internal/domain/calendar"
	"github.com/veristay/service-admin/internal/domain/listing"
)

// Booking event types published on the admin topic.
const (
	EventBookingCreated   = "veristay.booking.created"
	EventBookingConfirmed = "veristay.booking.confirmed"
	EventBookingCompleted = "veristay.booking.completed"
	EventBookingCancelled = "veristay.booking.cancelled"
)

// BookingEvent is the payload for all booking lifecycle events.
type BookingEvent struct {
	BookingID  uuid.UUID `json:"booking_id"`
	ListingID  uuid.UUID `json:"listing_id"`
	Category   string    `json:"category"`
	CheckIn    string    `json:"check_in"`
	CheckOut   string    `json:"check_out"`
	Status     string    `json:"status"`
	GuestEmail string    `json:"guest_email"`
	OccurredAt time.Time `json:"occurred_at"`
}

// CreateBookingRequest holds the data needed to record a new booking.
type CreateBookingRequest struct {
	ListingID       uuid.UUID           `json:"listing_id" binding:"required"`
	Category        string              `json:"category" binding:"required"`
	Guest           bookingDomain.Guest `json:"guest" binding:"required"`
	CheckIn         string              `json:"check_in" binding:"required"`
	CheckOut        string              `json:"check_out" binding:"required"`
	Guests          int                 `json:"guests" binding:"required"`
	TaxesCents      int64               `json:"taxes_cents"`
	TotalPriceCents int64               `json:"total_price_cents"`
}

// BookingDTO is the response representation of a booking.
type BookingDTO struct {
	ID              uuid.UUID           `json:"id"`
	ListingID       uuid.UUID           `json:"listing_id"`
	Category        string              `json:"category"`
	Guest           bookingDomain.Guest `json:"guest"`
	CheckIn         string              `json:"check_in"`
	CheckOut        string              `json:"check_out"`
	Guests          int                 `json:"guests"`
	Nights          int                 `json:"nights"`
	TaxesCents      int64               `json:"taxes_cents"`
	TotalPriceCents int64               `json:"total_price_cents"`
	Status          string              `json:"status"`
	Version         int64               `json:"version"`
	CreatedAt       time.Time           `json:"created_at"`
	UpdatedAt       time.Time           `json:"updated_at"`
}

// BookingService is the application service orchestrating booking use cases.
type BookingService struct {
	repo     bookingDomain.BookingRepository
	producer EventPublisher
	topic    string
	logger   *zap.Logger
}

// NewBookingService creates a new BookingService.
func NewBookingService(
	repo bookingDomain.BookingRepository,
	producer EventPublisher,
	topic string,
	logger *zap.Logger,
) *BookingService {
	return &BookingService{
		repo:     repo,
		producer: producer,
		topic:    topic,
		logger:   logger,
	}
}

// CreateBooking records a new pending booking, typically imported from
// a storefront submission.
func (s *BookingService) CreateBooking(ctx context.Context, req CreateBookingRequest) (*BookingDTO, error) {
	category, err := listing.ParseCategory(req.Category)
	if err != nil {
		return nil, err
	}
	checkIn, err := calendar.ParseDay(req.CheckIn)
	if err != nil {
		return nil, domain.NewValidationError(err.Error())
	}
	checkOut, err := calendar.ParseDay(req.CheckOut)
	if err != nil {
		return nil, domain.NewValidationError(err.Error())
	}

	bk, err := bookingDomain.NewBooking(
		req.ListingID,
		category,
		req.Guest,
		checkIn,
		checkOut,
		req.Guests,
		req.TaxesCents,
		req.TotalPriceCents,
	)
	if err != nil {
		return nil, err
	}

	if err := s.repo.Save(ctx, bk); err != nil {
		return nil, fmt.Errorf("failed to save booking: %w", err)
	}

	s.logger.Info("booking created",
		zap.String("booking_id", bk.ID().String()),
		zap.String("listing_id", bk.ListingID().String()),
	)
	s.publishBookingEvent(ctx, EventBookingCreated, bk)

	result := toBookingDTO(bk)
	return &result, nil
}

// ConfirmBooking transitions a pending booking to confirmed.
func (s *BookingService) ConfirmBooking(ctx context.Context, bookingID uuid.UUID) (*BookingDTO, error) {
	return s.transition(ctx, bookingID, EventBookingConfirmed, (*bookingDomain.Booking).Confirm)
}

// CompleteBooking transitions a confirmed booking to completed.
func (s *BookingService) CompleteBooking(ctx context.Context, bookingID uuid.UUID) (*BookingDTO, error) {
	return s.transition(ctx, bookingID, EventBookingCompleted, (*bookingDomain.Booking).Complete)
}

// CancelBooking cancels a booking, releasing its calendar days on the
// next availability derivation.
func (s *BookingService) CancelBooking(ctx context.Context, bookingID uuid.UUID) (*BookingDTO, error) {
	return s.transition(ctx, bookingID, EventBookingCancelled, (*bookingDomain.Booking).Cancel)
}

func (s *BookingService) transition(
	ctx context.Context,
	bookingID uuid.UUID,
	eventType string,
	apply func(*bookingDomain.Booking) error,
) (*BookingDTO, error) {
	bk, err := s.repo.FindByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}

	if err := apply(bk); err != nil {
		return nil, err
	}

	bk.IncrementVersion()
	if err := s.repo.Update(ctx, bk); err != nil {
		return nil, err
	}

	s.logger.Info("booking status changed",
		zap.String("booking_id", bk.ID().String()),
		zap.String("status", string(bk.Status())),
	)
	s.publishBookingEvent(ctx, eventType, bk)

	result := toBookingDTO(bk)
	return &result, nil
}

// GetBooking retrieves a single booking by ID.
func (s *BookingService) GetBooking(ctx context.Context, bookingID uuid.UUID) (*BookingDTO, error) {
	bk, err := s.repo.FindByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	result := toBookingDTO(bk)
	return &result, nil
}

// ListBookings retrieves paginated bookings with filtering and sorting.
func (s *BookingService) ListBookings(
	ctx context.Context,
	filter bookingDomain.ListFilter,
	sort bookingDomain.ListSort,
	page, limit int,
) (*domain.PaginatedResult[BookingDTO], error) {
	bookings, total, err := s.repo.List(ctx, filter, sort, page, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list bookings: %w", err)
	}

	dtos := make([]BookingDTO, len(bookings))
	for i, bk := range bookings {
		dtos[i] = toBookingDTO(bk)
	}

	result := domain.NewPaginatedResult(dtos, total, page, limit)
	return &result, nil
}

// GetListingBookings retrieves all bookings for one listing, ascending
// by check-in. This is the calendar view's companion list.
func (s *BookingService) GetListingBookings(ctx context.Context, listingID uuid.UUID) ([]BookingDTO, error) {
	bookings, err := s.repo.FindByListingID(ctx, listingID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch listing bookings: %w", err)
	}
	dtos := make([]BookingDTO, len(bookings))
	for i, bk := range bookings {
		dtos[i] = toBookingDTO(bk)
	}
	return dtos, nil
}

// DeleteBooking removes a booking entirely (explicit admin delete).
func (s *BookingService) DeleteBooking(ctx context.Context, bookingID uuid.UUID) error {
	if err := s.repo.Delete(ctx, bookingID); err != nil {
		return err
	}
	s.logger.Info("booking deleted", zap.String("booking_id", bookingID.String()))
	return nil
}

func (s *BookingService) publishBookingEvent(ctx context.Context, eventType string, bk *bookingDomain.Booking) {
	if s.producer == nil {
		return
	}
	evt := BookingEvent{
		BookingID:  bk.ID(),
		ListingID:  bk.ListingID(),
		Category:   string(bk.Category()),
		CheckIn:    bk.CheckIn().String(),
		CheckOut:   bk.CheckOut().String(),
		Status:     string(bk.Status()),
		GuestEmail: bk.Guest().Email,
		OccurredAt: time.Now().UTC(),
	}
	publishEvent(ctx, s.producer, s.topic, eventType, evt, s.logger)
}

func toBookingDTO(bk *bookingDomain.Booking) BookingDTO {
	return BookingDTO{
		ID:              bk.ID(),
		ListingID:       bk.ListingID(),
		Category:        string(bk.Category()),
		Guest:           bk.Guest(),
		CheckIn:         bk.CheckIn().String(),
		CheckOut:        bk.CheckOut().String(),
		Guests:          bk.Guests(),
		Nights:          bk.Nights(),
		TaxesCents:      bk.TaxesCents(),
		TotalPriceCents: bk.TotalPriceCents(),
		Status:          string(bk.Status()),
		Version:         bk.Version(),
		CreatedAt:       bk.CreatedAt(),
		UpdatedAt:       bk.UpdatedAt(),
	}
}
