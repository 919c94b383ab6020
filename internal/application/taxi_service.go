package application

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/veristay/service-admin/internal/common/domain"
	"github.com/veristay/service-admin/internal/domain/calendar"
	"github.com/veristay/service-admin/internal/domain/taxi"
)

// Taxi booking event types published on the admin topic.
const (
	EventTaxiBookingCreated   = "veristay.taxi_booking.created"
	EventTaxiBookingCompleted = "veristay.taxi_booking.completed"
	EventTaxiBookingCancelled = "veristay.taxi_booking.cancelled"
)

// TaxiBookingEvent is the payload for taxi booking lifecycle events.
type TaxiBookingEvent struct {
	BookingID  uuid.UUID `json:"booking_id"`
	CarType    string    `json:"car_type"`
	ArrivalDay string    `json:"arrival_day"`
	Status     string    `json:"status"`
	OccurredAt time.Time `json:"occurred_at"`
}

// CreateTaxiRequest holds the data needed to register a fleet vehicle.
type CreateTaxiRequest struct {
	Name            string `json:"name" binding:"required"`
	CarType         string `json:"car_type" binding:"required"`
	PassengerSeats  int    `json:"passenger_seats" binding:"required"`
	LuggageQuantity int    `json:"luggage_quantity"`
	CarryOnLuggage  int    `json:"carry_on_luggage"`
	PriceCents      int64  `json:"price_cents"`
}

// UpdateTaxiRequest holds partial updates; zero values are ignored.
type UpdateTaxiRequest struct {
	Name            string `json:"name"`
	PassengerSeats  int    `json:"passenger_seats"`
	LuggageQuantity int    `json:"luggage_quantity"`
	CarryOnLuggage  int    `json:"carry_on_luggage"`
	PriceCents      int64  `json:"price_cents"`
}

// TaxiDTO is the response representation of a fleet vehicle.
type TaxiDTO struct {
	ID              uuid.UUID `json:"id"`
	Name            string    `json:"name"`
	CarType         string    `json:"car_type"`
	PassengerSeats  int       `json:"passenger_seats"`
	LuggageQuantity int       `json:"luggage_quantity"`
	CarryOnLuggage  int       `json:"carry_on_luggage"`
	PriceCents      int64     `json:"price_cents"`
	Status          string    `json:"status"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// CreateTaxiBookingRequest holds the data for an airport transfer reservation.
type CreateTaxiBookingRequest struct {
	Pickup      string     `json:"pickup" binding:"required"`
	Destination string     `json:"destination" binding:"required"`
	FlightNo    string     `json:"flight_no"`
	Airline     string     `json:"airline"`
	ArrivalDay  string     `json:"arrival_day" binding:"required"`
	ArrivalTime string     `json:"arrival_time"`
	BookingType string     `json:"booking_type" binding:"required"`
	Rider       taxi.Rider `json:"rider" binding:"required"`
	Luggage     string     `json:"luggage"`
	Instruction string     `json:"instruction"`
	CarType     string     `json:"car_type" binding:"required"`
}

// TaxiBookingDTO is the response representation of an airport transfer.
type TaxiBookingDTO struct {
	ID          uuid.UUID  `json:"id"`
	Pickup      string     `json:"pickup"`
	Destination string     `json:"destination"`
	FlightNo    string     `json:"flight_no"`
	Airline     string     `json:"airline"`
	ArrivalDay  string     `json:"arrival_day"`
	ArrivalTime string     `json:"arrival_time"`
	BookingType string     `json:"booking_type"`
	Rider       taxi.Rider `json:"rider"`
	Luggage     string     `json:"luggage"`
	Instruction string     `json:"instruction"`
	CarType     string     `json:"car_type"`
	PriceCents  int64      `json:"price_cents"`
	Status      string     `json:"status"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

// TaxiService is the application service for the fleet and its transfers.
type TaxiService struct {
	taxis    taxi.TaxiRepository
	bookings taxi.TaxiBookingRepository
	producer EventPublisher
	topic    string
	logger   *zap.Logger
}

// NewTaxiService creates a new TaxiService.
func NewTaxiService(
	taxis taxi.TaxiRepository,
	bookings taxi.TaxiBookingRepository,
	producer EventPublisher,
	topic string,
	logger *zap.Logger,
) *TaxiService {
	return &TaxiService{
		taxis:    taxis,
		bookings: bookings,
		producer: producer,
		topic:    topic,
		logger:   logger,
	}
}

// --- Fleet management ---

// CreateTaxi registers a new fleet vehicle.
func (s *TaxiService) CreateTaxi(ctx context.Context, req CreateTaxiRequest) (*TaxiDTO, error) {
	carType := taxi.CarType(req.CarType)
	if !carType.IsValid() {
		return nil, domain.NewValidationError("invalid car type: " + req.CarType)
	}

	t, err := taxi.NewTaxi(req.Name, carType, req.PassengerSeats, req.LuggageQuantity, req.CarryOnLuggage, req.PriceCents)
	if err != nil {
		return nil, err
	}

	if err := s.taxis.Save(ctx, t); err != nil {
		return nil, fmt.Errorf("failed to save taxi: %w", err)
	}

	s.logger.Info("taxi created",
		zap.String("taxi_id", t.ID().String()),
		zap.String("car_type", string(t.CarType())),
	)

	result := toTaxiDTO(t)
	return &result, nil
}

// GetTaxi retrieves a single taxi by ID.
func (s *TaxiService) GetTaxi(ctx context.Context, taxiID uuid.UUID) (*TaxiDTO, error) {
	t, err := s.taxis.FindByID(ctx, taxiID)
	if err != nil {
		return nil, err
	}
	result := toTaxiDTO(t)
	return &result, nil
}

// ListTaxis retrieves paginated fleet vehicles.
func (s *TaxiService) ListTaxis(ctx context.Context, page, limit int) (*domain.PaginatedResult[TaxiDTO], error) {
	taxis, total, err := s.taxis.List(ctx, page, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list taxis: %w", err)
	}

	dtos := make([]TaxiDTO, len(taxis))
	for i, t := range taxis {
		dtos[i] = toTaxiDTO(t)
	}

	result := domain.NewPaginatedResult(dtos, total, page, limit)
	return &result, nil
}

// UpdateTaxi applies partial updates to a fleet vehicle.
func (s *TaxiService) UpdateTaxi(ctx context.Context, taxiID uuid.UUID, req UpdateTaxiRequest) (*TaxiDTO, error) {
	t, err := s.taxis.FindByID(ctx, taxiID)
	if err != nil {
		return nil, err
	}

	t.Update(req.Name, req.PassengerSeats, req.LuggageQuantity, req.CarryOnLuggage, req.PriceCents)
	if err := s.taxis.Update(ctx, t); err != nil {
		return nil, err
	}

	s.logger.Info("taxi updated", zap.String("taxi_id", t.ID().String()))

	result := toTaxiDTO(t)
	return &result, nil
}

// DeleteTaxi removes a fleet vehicle.
func (s *TaxiService) DeleteTaxi(ctx context.Context, taxiID uuid.UUID) error {
	if err := s.taxis.Delete(ctx, taxiID); err != nil {
		return err
	}
	s.logger.Info("taxi deleted", zap.String("taxi_id", taxiID.String()))
	return nil
}

// --- Transfers ---

// CreateTaxiBooking records a pending airport transfer.
func (s *TaxiService) CreateTaxiBooking(ctx context.Context, req CreateTaxiBookingRequest) (*TaxiBookingDTO, error) {
	arrivalDay, err := calendar.ParseDay(req.ArrivalDay)
	if err != nil {
		return nil, domain.NewValidationError(err.Error())
	}

	bk, err := taxi.NewBooking(
		req.Pickup, req.Destination, req.FlightNo, req.Airline,
		arrivalDay,
		req.ArrivalTime,
		taxi.BookingType(req.BookingType),
		req.Rider,
		req.Luggage, req.Instruction,
		taxi.CarType(req.CarType),
	)
	if err != nil {
		return nil, err
	}

	if err := s.bookings.Save(ctx, bk); err != nil {
		return nil, fmt.Errorf("failed to save taxi booking: %w", err)
	}

	s.logger.Info("taxi booking created",
		zap.String("booking_id", bk.ID().String()),
		zap.String("arrival_day", bk.ArrivalDay().String()),
	)
	s.publishTaxiEvent(ctx, EventTaxiBookingCreated, bk)

	result := toTaxiBookingDTO(bk)
	return &result, nil
}

// GetTaxiBooking retrieves a single transfer by ID.
func (s *TaxiService) GetTaxiBooking(ctx context.Context, bookingID uuid.UUID) (*TaxiBookingDTO, error) {
	bk, err := s.bookings.FindByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	result := toTaxiBookingDTO(bk)
	return &result, nil
}

// ListTaxiBookings retrieves paginated transfers, optionally filtered by status.
func (s *TaxiService) ListTaxiBookings(
	ctx context.Context,
	status *taxi.BookingStatus,
	page, limit int,
) (*domain.PaginatedResult[TaxiBookingDTO], error) {
	bookings, total, err := s.bookings.List(ctx, status, page, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list taxi bookings: %w", err)
	}

	dtos := make([]TaxiBookingDTO, len(bookings))
	for i, bk := range bookings {
		dtos[i] = toTaxiBookingDTO(bk)
	}

	result := domain.NewPaginatedResult(dtos, total, page, limit)
	return &result, nil
}

// CompleteTaxiBooking marks a transfer as done.
func (s *TaxiService) CompleteTaxiBooking(ctx context.Context, bookingID uuid.UUID) (*TaxiBookingDTO, error) {
	return s.transitionTaxiBooking(ctx, bookingID, EventTaxiBookingCompleted, (*taxi.Booking).Complete)
}

// CancelTaxiBooking cancels a pending transfer.
func (s *TaxiService) CancelTaxiBooking(ctx context.Context, bookingID uuid.UUID) (*TaxiBookingDTO, error) {
	return s.transitionTaxiBooking(ctx, bookingID, EventTaxiBookingCancelled, (*taxi.Booking).Cancel)
}

func (s *TaxiService) transitionTaxiBooking(
	ctx context.Context,
	bookingID uuid.UUID,
	eventType string,
	apply func(*taxi.Booking) error,
) (*TaxiBookingDTO, error) {
	bk, err := s.bookings.FindByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}

	if err := apply(bk); err != nil {
		return nil, err
	}

	if err := s.bookings.Update(ctx, bk); err != nil {
		return nil, err
	}

	s.logger.Info("taxi booking status changed",
		zap.String("booking_id", bk.ID().String()),
		zap.String("status", string(bk.Status())),
	)
	s.publishTaxiEvent(ctx, eventType, bk)

	result := toTaxiBookingDTO(bk)
	return &result, nil
}

// DeleteTaxiBooking removes a transfer record.
func (s *TaxiService) DeleteTaxiBooking(ctx context.Context, bookingID uuid.UUID) error {
	if err := s.bookings.Delete(ctx, bookingID); err != nil {
		return err
	}
	s.logger.Info("taxi booking deleted", zap.String("booking_id", bookingID.String()))
	return nil
}

func (s *TaxiService) publishTaxiEvent(ctx context.Context, eventType string, bk *taxi.Booking) {
	if s.producer == nil {
		return
	}
	evt := TaxiBookingEvent{
		BookingID:  bk.ID(),
		CarType:    string(bk.CarType()),
		ArrivalDay: bk.ArrivalDay().String(),
		Status:     string(bk.Status()),
		OccurredAt: time.Now().UTC(),
	}
	publishEvent(ctx, s.producer, s.topic, eventType, evt, s.logger)
}

func toTaxiDTO(t *taxi.Taxi) TaxiDTO {
	return TaxiDTO{
		ID:              t.ID(),
		Name:            t.Name(),
		CarType:         string(t.CarType()),
		PassengerSeats:  t.PassengerSeats(),
		LuggageQuantity: t.LuggageQuantity(),
		CarryOnLuggage:  t.CarryOnLuggage(),
		PriceCents:      t.PriceCents(),
		Status:          string(t.Status()),
		CreatedAt:       t.CreatedAt(),
		UpdatedAt:       t.UpdatedAt(),
	}
}

func toTaxiBookingDTO(bk *taxi.Booking) TaxiBookingDTO {
	return TaxiBookingDTO{
		ID:          bk.ID(),
		Pickup:      bk.Pickup(),
		Destination: bk.Destination(),
		FlightNo:    bk.FlightNo(),
		Airline:     bk.Airline(),
		ArrivalDay:  bk.ArrivalDay().String(),
		ArrivalTime: bk.ArrivalTime(),
		BookingType: string(bk.BookingType()),
		Rider:       bk.Rider(),
		Luggage:     bk.Luggage(),
		Instruction: bk.Instruction(),
		CarType:     string(bk.CarType()),
		PriceCents:  bk.PriceCents(),
		Status:      string(bk.Status()),
		CreatedAt:   bk.CreatedAt(),
		UpdatedAt:   bk.UpdatedAt(),
	}
}
