package application

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/veristay/service-admin/internal/common/domain"
	bookingDomain "github.com/veristay/service-admin/internal/domain/booking"
	"github.com/veristay/service-admin/internal/domain/review"
)

// CreateReviewRequest holds the data needed to record a guest review.
type CreateReviewRequest struct {
	ListingID   uuid.UUID `json:"listing_id" binding:"required"`
	BookingID   uuid.UUID `json:"booking_id" binding:"required"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Rating      int       `json:"rating" binding:"required"`
	Name        string    `json:"name" binding:"required"`
}

// ReviewDTO is the response representation of a review.
type ReviewDTO struct {
	ID          uuid.UUID `json:"id"`
	ListingID   uuid.UUID `json:"listing_id"`
	BookingID   uuid.UUID `json:"booking_id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Rating      int       `json:"rating"`
	Name        string    `json:"name"`
	CreatedAt   time.Time `json:"created_at"`
}

// ReviewService is the application service for guest reviews.
type ReviewService struct {
	reviews  review.ReviewRepository
	bookings bookingDomain.BookingRepository
	logger   *zap.Logger
}

// NewReviewService creates a new ReviewService.
func NewReviewService(reviews review.ReviewRepository, bookings bookingDomain.BookingRepository, logger *zap.Logger) *ReviewService {
	return &ReviewService{reviews: reviews, bookings: bookings, logger: logger}
}

// CreateReview records a review against an existing booking. The review
// is pinned to the booking's listing so the two cannot drift apart.
func (s *ReviewService) CreateReview(ctx context.Context, req CreateReviewRequest) (*ReviewDTO, error) {
	bk, err := s.bookings.FindByID(ctx, req.BookingID)
	if err != nil {
		return nil, err
	}
	if bk.ListingID() != req.ListingID {
		return nil, domain.NewValidationError("booking does not belong to the given listing")
	}

	r, err := review.NewReview(req.ListingID, req.BookingID, req.Title, req.Description, req.Rating, req.Name)
	if err != nil {
		return nil, err
	}

	if err := s.reviews.Save(ctx, r); err != nil {
		return nil, fmt.Errorf("failed to save review: %w", err)
	}

	s.logger.Info("review created",
		zap.String("review_id", r.ID().String()),
		zap.String("listing_id", r.ListingID().String()),
		zap.Int("rating", r.Rating()),
	)

	result := toReviewDTO(r)
	return &result, nil
}

// GetReview retrieves a single review by ID.
func (s *ReviewService) GetReview(ctx context.Context, reviewID uuid.UUID) (*ReviewDTO, error) {
	r, err := s.reviews.FindByID(ctx, reviewID)
	if err != nil {
		return nil, err
	}
	result := toReviewDTO(r)
	return &result, nil
}

// GetListingReviews retrieves all reviews for one listing.
func (s *ReviewService) GetListingReviews(ctx context.Context, listingID uuid.UUID) ([]ReviewDTO, error) {
	reviews, err := s.reviews.FindByListingID(ctx, listingID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch listing reviews: %w", err)
	}
	dtos := make([]ReviewDTO, len(reviews))
	for i, r := range reviews {
		dtos[i] = toReviewDTO(r)
	}
	return dtos, nil
}

// ListReviews retrieves paginated reviews across all listings.
func (s *ReviewService) ListReviews(ctx context.Context, page, limit int) (*domain.PaginatedResult[ReviewDTO], error) {
	reviews, total, err := s.reviews.List(ctx, page, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list reviews: %w", err)
	}

	dtos := make([]ReviewDTO, len(reviews))
	for i, r := range reviews {
		dtos[i] = toReviewDTO(r)
	}

	result := domain.NewPaginatedResult(dtos, total, page, limit)
	return &result, nil
}

// DeleteReview removes a review.
func (s *ReviewService) DeleteReview(ctx context.Context, reviewID uuid.UUID) error {
	if err := s.reviews.Delete(ctx, reviewID); err != nil {
		return err
	}
	s.logger.Info("review deleted", zap.String("review_id", reviewID.String()))
	return nil
}

func toReviewDTO(r *review.Review) ReviewDTO {
	return ReviewDTO{
		ID:          r.ID(),
		ListingID:   r.ListingID(),
		BookingID:   r.BookingID(),
		Title:       r.Title(),
		Description: r.Description(),
		Rating:      r.Rating(),
		Name:        r.Name(),
		CreatedAt:   r.CreatedAt(),
	}
}
