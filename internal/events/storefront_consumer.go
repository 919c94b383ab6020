package events

import (
	"context"
	"encoding/json"

	"github.com/google/uuid"
	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"

	"github.com/veristay/service-admin/internal/application"
	"github.com/veristay/service-admin/internal/common/kafka"
	"github.com/veristay/service-admin/internal/domain/booking"
)

// Storefront event types consumed from the storefront bookings topic.
const (
	EventBookingSubmitted     = "veristay.storefront.booking.submitted"
	EventTaxiBookingSubmitted = "veristay.storefront.taxi_booking.submitted"
)

// BookingSubmittedEvent is the storefront's payload for a new stay booking.
type BookingSubmittedEvent struct {
	ListingID       uuid.UUID     `json:"listing_id"`
	Category        string        `json:"category"`
	Guest           booking.Guest `json:"guest"`
	CheckIn         string        `json:"check_in"`
	CheckOut        string        `json:"check_out"`
	Guests          int           `json:"guests"`
	TaxesCents      int64         `json:"taxes_cents"`
	TotalPriceCents int64         `json:"total_price_cents"`
}

// StorefrontConsumer listens to storefront submissions and records them
// as pending bookings for the admin team to action.
type StorefrontConsumer struct {
	consumer *kafka.Consumer
	bookings *application.BookingService
	taxis    *application.TaxiService
	logger   *zap.Logger
}

// NewStorefrontConsumer creates a new StorefrontConsumer.
func NewStorefrontConsumer(
	brokers []string,
	groupID string,
	topic string,
	bookings *application.BookingService,
	taxis *application.TaxiService,
	logger *zap.Logger,
) *StorefrontConsumer {
	consumer := kafka.NewConsumer(brokers, groupID, topic, logger)
	return &StorefrontConsumer{
		consumer: consumer,
		bookings: bookings,
		taxis:    taxis,
		logger:   logger,
	}
}

// Start begins consuming storefront events. This blocks until the
// context is cancelled.
func (c *StorefrontConsumer) Start(ctx context.Context) error {
	return c.consumer.Consume(ctx, c.handleMessage)
}

// Close closes the underlying Kafka consumer.
func (c *StorefrontConsumer) Close() error {
	return c.consumer.Close()
}

func (c *StorefrontConsumer) handleMessage(ctx context.Context, msg kafkago.Message) error {
	var cloudEvent kafka.CloudEvent
	if err := json.Unmarshal(msg.Value, &cloudEvent); err != nil {
		c.logger.Error("failed to parse cloud event from storefront topic",
			zap.Error(err),
			zap.String("raw", string(msg.Value)),
		)
		return nil // Don't retry malformed messages
	}

	switch cloudEvent.Type {
	case EventBookingSubmitted:
		return c.handleBookingSubmitted(ctx, cloudEvent)
	case EventTaxiBookingSubmitted:
		return c.handleTaxiBookingSubmitted(ctx, cloudEvent)
	default:
		c.logger.Debug("ignoring unhandled storefront event type",
			zap.String("type", cloudEvent.Type),
		)
		return nil
	}
}

func (c *StorefrontConsumer) handleBookingSubmitted(ctx context.Context, cloudEvent kafka.CloudEvent) error {
	var evt BookingSubmittedEvent
	if err := cloudEvent.ParseData(&evt); err != nil {
		c.logger.Error("failed to parse BookingSubmittedEvent data",
			zap.Error(err),
		)
		return nil // Don't retry malformed data
	}

	c.logger.Info("processing storefront booking submission",
		zap.String("listing_id", evt.ListingID.String()),
		zap.String("check_in", evt.CheckIn),
	)

	result, err := c.bookings.CreateBooking(ctx, application.CreateBookingRequest{
		ListingID:       evt.ListingID,
		Category:        evt.Category,
		Guest:           evt.Guest,
		CheckIn:         evt.CheckIn,
		CheckOut:        evt.CheckOut,
		Guests:          evt.Guests,
		TaxesCents:      evt.TaxesCents,
		TotalPriceCents: evt.TotalPriceCents,
	})
	if err != nil {
		c.logger.Error("failed to record storefront booking",
			zap.String("listing_id", evt.ListingID.String()),
			zap.Error(err),
		)
		return nil // Invalid submissions are dropped, not retried
	}

	c.logger.Info("storefront booking recorded as pending",
		zap.String("booking_id", result.ID.String()),
	)
	return nil
}

func (c *StorefrontConsumer) handleTaxiBookingSubmitted(ctx context.Context, cloudEvent kafka.CloudEvent) error {
	var req application.CreateTaxiBookingRequest
	if err := cloudEvent.ParseData(&req); err != nil {
		c.logger.Error("failed to parse taxi booking submission data",
			zap.Error(err),
		)
		return nil
	}

	result, err := c.taxis.CreateTaxiBooking(ctx, req)
	if err != nil {
		c.logger.Error("failed to record storefront taxi booking",
			zap.Error(err),
		)
		return nil
	}

	c.logger.Info("storefront taxi booking recorded as pending",
		zap.String("booking_id", result.ID.String()),
	)
	return nil
}
