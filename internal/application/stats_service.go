package application

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	bookingDomain "github.com/veristay/service-admin/internal/domain/booking"
	"github.com/veristay/service-admin/internal/domain/listing"
	"github.com/veristay/service-admin/internal/domain/taxi"
)

// DashboardStatsDTO is the admin dashboard's headline numbers.
type DashboardStatsDTO struct {
	TotalListings        int64            `json:"total_listings"`
	TotalTaxis           int64            `json:"total_taxis"`
	BookingsByStatus     map[string]int64 `json:"bookings_by_status"`
	TaxiBookingsByStatus map[string]int64 `json:"taxi_bookings_by_status"`
	PendingBookings      int64            `json:"pending_bookings"`
	PendingTaxiBookings  int64            `json:"pending_taxi_bookings"`
}

// MonthlyCountDTO is one bar of the bookings-per-month chart.
type MonthlyCountDTO struct {
	Month string `json:"month"` // yyyy-mm
	Count int64  `json:"count"`
}

// StatsService aggregates read-only dashboard figures.
type StatsService struct {
	listings     listing.ListingRepository
	bookings     bookingDomain.BookingRepository
	taxis        taxi.TaxiRepository
	taxiBookings taxi.TaxiBookingRepository
	logger       *zap.Logger
}

// NewStatsService creates a new StatsService.
func NewStatsService(
	listings listing.ListingRepository,
	bookings bookingDomain.BookingRepository,
	taxis taxi.TaxiRepository,
	taxiBookings taxi.TaxiBookingRepository,
	logger *zap.Logger,
) *StatsService {
	return &StatsService{
		listings:     listings,
		bookings:     bookings,
		taxis:        taxis,
		taxiBookings: taxiBookings,
		logger:       logger,
	}
}

// GetDashboardStats computes the dashboard's headline numbers.
func (s *StatsService) GetDashboardStats(ctx context.Context) (*DashboardStatsDTO, error) {
	totalListings, err := s.listings.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count listings: %w", err)
	}
	totalTaxis, err := s.taxis.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count taxis: %w", err)
	}
	byStatus, err := s.bookings.CountByStatus(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count bookings: %w", err)
	}
	taxiByStatus, err := s.taxiBookings.CountByStatus(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count taxi bookings: %w", err)
	}

	return &DashboardStatsDTO{
		TotalListings:        totalListings,
		TotalTaxis:           totalTaxis,
		BookingsByStatus:     byStatus,
		TaxiBookingsByStatus: taxiByStatus,
		PendingBookings:      byStatus[string(bookingDomain.StatusPending)],
		PendingTaxiBookings:  taxiByStatus[string(taxi.BookingStatusPending)],
	}, nil
}

// GetMonthlyBookingCounts returns booking counts for the last `months`
// calendar months, oldest first, including the current month.
func (s *StatsService) GetMonthlyBookingCounts(ctx context.Context, months int) ([]MonthlyCountDTO, error) {
	if months <= 0 {
		months = 12
	}

	now := time.Now().UTC()
	currentMonth := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)

	counts := make([]MonthlyCountDTO, 0, months)
	for i := months - 1; i >= 0; i-- {
		from := currentMonth.AddDate(0, -i, 0)
		to := from.AddDate(0, 1, 0)

		count, err := s.bookings.CountCreatedBetween(ctx, from, to)
		if err != nil {
			return nil, fmt.Errorf("failed to count bookings for %s: %w", from.Format("2006-01"), err)
		}
		counts = append(counts, MonthlyCountDTO{
			Month: from.Format("2006-01"),
			Count: count,
		})
	}
	return counts, nil
}

// GetRecentBookings returns the most recently created bookings,
// optionally restricted to one category.
func (s *StatsService) GetRecentBookings(ctx context.Context, limit int, category *listing.Category) ([]BookingDTO, error) {
	if limit <= 0 {
		limit = 5
	}

	bookings, err := s.bookings.FindRecent(ctx, limit, category)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch recent bookings: %w", err)
	}

	dtos := make([]BookingDTO, len(bookings))
	for i, bk := range bookings {
		dtos[i] = toBookingDTO(bk)
	}
	return dtos, nil
}
