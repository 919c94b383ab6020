package application

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/veristay/service-admin/internal/common/domain"
	"github.com/veristay/service-admin/internal/domain/listing"
)

// CreateListingRequest holds the data needed to create a listing.
type CreateListingRequest struct {
	Title             string   `json:"title" binding:"required"`
	Category          string   `json:"category" binding:"required"`
	Description       string   `json:"description"`
	City              string   `json:"city"`
	Location          string   `json:"location"`
	Zipcode           string   `json:"zipcode"`
	Latitude          float64  `json:"latitude"`
	Longitude         float64  `json:"longitude"`
	GuestCapacity     int      `json:"guest_capacity" binding:"required"`
	BedroomsCount     int      `json:"bedrooms_count"`
	BathroomsCount    int      `json:"bathrooms_count"`
	NightlyPriceCents int64    `json:"nightly_price_cents" binding:"required"`
	Tags              []string `json:"tags"`
}

// UpdateListingRequest holds partial updates; zero values are ignored.
type UpdateListingRequest struct {
	Title             string   `json:"title"`
	Description       string   `json:"description"`
	City              string   `json:"city"`
	Location          string   `json:"location"`
	Zipcode           string   `json:"zipcode"`
	Latitude          float64  `json:"latitude"`
	Longitude         float64  `json:"longitude"`
	GuestCapacity     int      `json:"guest_capacity"`
	BedroomsCount     int      `json:"bedrooms_count"`
	BathroomsCount    int      `json:"bathrooms_count"`
	NightlyPriceCents int64    `json:"nightly_price_cents"`
	Tags              []string `json:"tags"`
}

// ListingDTO is the response representation of a listing.
type ListingDTO struct {
	ID                uuid.UUID `json:"id"`
	Title             string    `json:"title"`
	Category          string    `json:"category"`
	Description       string    `json:"description"`
	City              string    `json:"city"`
	Location          string    `json:"location"`
	Zipcode           string    `json:"zipcode"`
	Latitude          float64   `json:"latitude"`
	Longitude         float64   `json:"longitude"`
	GuestCapacity     int       `json:"guest_capacity"`
	BedroomsCount     int       `json:"bedrooms_count"`
	BathroomsCount    int       `json:"bathrooms_count"`
	NightlyPriceCents int64     `json:"nightly_price_cents"`
	Tags              []string  `json:"tags"`
	Status            string    `json:"status"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}

// ListingService is the application service for listing management.
type ListingService struct {
	repo   listing.ListingRepository
	logger *zap.Logger
}

// NewListingService creates a new ListingService.
func NewListingService(repo listing.ListingRepository, logger *zap.Logger) *ListingService {
	return &ListingService{repo: repo, logger: logger}
}

// CreateListing creates a new open listing.
func (s *ListingService) CreateListing(ctx context.Context, req CreateListingRequest) (*ListingDTO, error) {
	category, err := listing.ParseCategory(req.Category)
	if err != nil {
		return nil, err
	}

	l, err := listing.NewListing(
		req.Title,
		category,
		req.Description, req.City, req.Location, req.Zipcode,
		req.Latitude, req.Longitude,
		req.GuestCapacity, req.BedroomsCount, req.BathroomsCount,
		req.NightlyPriceCents,
		req.Tags,
	)
	if err != nil {
		return nil, err
	}

	if err := s.repo.Save(ctx, l); err != nil {
		return nil, fmt.Errorf("failed to save listing: %w", err)
	}

	s.logger.Info("listing created",
		zap.String("listing_id", l.ID().String()),
		zap.String("category", string(l.Category())),
	)

	result := toListingDTO(l)
	return &result, nil
}

// GetListing retrieves a single listing by ID.
func (s *ListingService) GetListing(ctx context.Context, listingID uuid.UUID) (*ListingDTO, error) {
	l, err := s.repo.FindByID(ctx, listingID)
	if err != nil {
		return nil, err
	}
	result := toListingDTO(l)
	return &result, nil
}

// ListListings retrieves paginated listings, optionally filtered by category.
func (s *ListingService) ListListings(
	ctx context.Context,
	category *listing.Category,
	page, limit int,
) (*domain.PaginatedResult[ListingDTO], error) {
	listings, total, err := s.repo.List(ctx, category, page, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list listings: %w", err)
	}

	dtos := make([]ListingDTO, len(listings))
	for i, l := range listings {
		dtos[i] = toListingDTO(l)
	}

	result := domain.NewPaginatedResult(dtos, total, page, limit)
	return &result, nil
}

// UpdateListing applies partial updates to a listing.
func (s *ListingService) UpdateListing(ctx context.Context, listingID uuid.UUID, req UpdateListingRequest) (*ListingDTO, error) {
	l, err := s.repo.FindByID(ctx, listingID)
	if err != nil {
		return nil, err
	}

	l.Update(
		req.Title, req.Description, req.City, req.Location, req.Zipcode,
		req.Latitude, req.Longitude,
		req.GuestCapacity, req.BedroomsCount, req.BathroomsCount,
		req.NightlyPriceCents,
		req.Tags,
	)

	if err := s.repo.Update(ctx, l); err != nil {
		return nil, err
	}

	s.logger.Info("listing updated", zap.String("listing_id", l.ID().String()))

	result := toListingDTO(l)
	return &result, nil
}

// CloseListing marks a listing as closed to new bookings.
func (s *ListingService) CloseListing(ctx context.Context, listingID uuid.UUID) (*ListingDTO, error) {
	l, err := s.repo.FindByID(ctx, listingID)
	if err != nil {
		return nil, err
	}

	l.Close()
	if err := s.repo.Update(ctx, l); err != nil {
		return nil, err
	}

	s.logger.Info("listing closed", zap.String("listing_id", l.ID().String()))

	result := toListingDTO(l)
	return &result, nil
}

// OpenListing re-opens a closed listing.
func (s *ListingService) OpenListing(ctx context.Context, listingID uuid.UUID) (*ListingDTO, error) {
	l, err := s.repo.FindByID(ctx, listingID)
	if err != nil {
		return nil, err
	}

	l.Open()
	if err := s.repo.Update(ctx, l); err != nil {
		return nil, err
	}

	s.logger.Info("listing reopened", zap.String("listing_id", l.ID().String()))

	result := toListingDTO(l)
	return &result, nil
}

// DeleteListing removes a listing.
func (s *ListingService) DeleteListing(ctx context.Context, listingID uuid.UUID) error {
	if err := s.repo.Delete(ctx, listingID); err != nil {
		return err
	}
	s.logger.Info("listing deleted", zap.String("listing_id", listingID.String()))
	return nil
}

func toListingDTO(l *listing.Listing) ListingDTO {
	return ListingDTO{
		ID:                l.ID(),
		Title:             l.Title(),
		Category:          string(l.Category()),
		Description:       l.Description(),
		City:              l.City(),
		Location:          l.Location(),
		Zipcode:           l.Zipcode(),
		Latitude:          l.Latitude(),
		Longitude:         l.Longitude(),
		GuestCapacity:     l.GuestCapacity(),
		BedroomsCount:     l.BedroomsCount(),
		BathroomsCount:    l.BathroomsCount(),
		NightlyPriceCents: l.NightlyPriceCents(),
		Tags:              l.Tags(),
		Status:            string(l.Status()),
		CreatedAt:         l.CreatedAt(),
		UpdatedAt:         l.UpdatedAt(),
	}
}
