package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/veristay/service-admin/internal/common/domain"
	"github.com/veristay/service-admin/internal/domain/listing"
)

// ListingModel is the GORM model for the listings table.
type ListingModel struct {
	ID                uuid.UUID       `gorm:"type:uuid;primaryKey"`
	Title             string          `gorm:"not null;size:200"`
	Category          string          `gorm:"not null;size:20;index"`
	Description       string          `gorm:"size:5000"`
	City              string          `gorm:"size:100;index"`
	Location          string          `gorm:"size:300"`
	Zipcode           string          `gorm:"size:20"`
	Latitude          float64         `gorm:""`
	Longitude         float64         `gorm:""`
	GuestCapacity     int             `gorm:"not null"`
	BedroomsCount     int             `gorm:""`
	BathroomsCount    int             `gorm:""`
	NightlyPriceCents int64           `gorm:"not null"`
	Tags              json.RawMessage `gorm:"type:jsonb"`
	Status            string          `gorm:"not null;size:20;index"`
	CreatedAt         time.Time       `gorm:"not null"`
	UpdatedAt         time.Time       `gorm:"not null"`
}

// TableName returns the table name for the GORM model.
func (ListingModel) TableName() string {
	return "listings"
}

// GormListingRepository is the GORM-based implementation of ListingRepository.
type GormListingRepository struct {
	db *gorm.DB
}

// NewGormListingRepository creates a new GormListingRepository.
func NewGormListingRepository(db *gorm.DB) *GormListingRepository {
	return &GormListingRepository{db: db}
}

// FindByID retrieves a listing by its unique identifier.
func (r *GormListingRepository) FindByID(ctx context.Context, id uuid.UUID) (*listing.Listing, error) {
	var model ListingModel
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.NewNotFoundError("Listing", id.String())
		}
		return nil, fmt.Errorf("failed to find listing by ID: %w", err)
	}
	return toDomainListing(&model)
}

// List retrieves listings with pagination, optionally filtered by category.
func (r *GormListingRepository) List(ctx context.Context, category *listing.Category, page, limit int) ([]*listing.Listing, int64, error) {
	query := r.db.WithContext(ctx).Model(&ListingModel{})
	if category != nil {
		query = query.Where("category = ?", string(*category))
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count listings: %w", err)
	}

	var models []ListingModel
	offset := (page - 1) * limit
	if err := query.
		Order("created_at DESC").
		Offset(offset).
		Limit(limit).
		Find(&models).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list listings: %w", err)
	}

	listings := make([]*listing.Listing, len(models))
	for i, m := range models {
		l, err := toDomainListing(&m)
		if err != nil {
			return nil, 0, err
		}
		listings[i] = l
	}

	return listings, total, nil
}

// Count returns the total number of listings.
func (r *GormListingRepository) Count(ctx context.Context) (int64, error) {
	var total int64
	if err := r.db.WithContext(ctx).Model(&ListingModel{}).Count(&total).Error; err != nil {
		return 0, fmt.Errorf("failed to count listings: %w", err)
	}
	return total, nil
}

// Save persists a new listing.
func (r *GormListingRepository) Save(ctx context.Context, l *listing.Listing) error {
	model, err := toListingModel(l)
	if err != nil {
		return fmt.Errorf("failed to convert listing to model: %w", err)
	}
	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return fmt.Errorf("failed to save listing: %w", err)
	}
	return nil
}

// Update persists changes to an existing listing.
func (r *GormListingRepository) Update(ctx context.Context, l *listing.Listing) error {
	model, err := toListingModel(l)
	if err != nil {
		return fmt.Errorf("failed to convert listing to model: %w", err)
	}

	result := r.db.WithContext(ctx).
		Model(&ListingModel{}).
		Where("id = ?", model.ID).
		Updates(map[string]interface{}{
			"title":               model.Title,
			"description":         model.Description,
			"city":                model.City,
			"location":            model.Location,
			"zipcode":             model.Zipcode,
			"latitude":            model.Latitude,
			"longitude":           model.Longitude,
			"guest_capacity":      model.GuestCapacity,
			"bedrooms_count":      model.BedroomsCount,
			"bathrooms_count":     model.BathroomsCount,
			"nightly_price_cents": model.NightlyPriceCents,
			"tags":                model.Tags,
			"status":              model.Status,
			"updated_at":          model.UpdatedAt,
		})
	if result.Error != nil {
		return fmt.Errorf("failed to update listing: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.NewNotFoundError("Listing", model.ID.String())
	}
	return nil
}

// Delete removes a listing by identifier.
func (r *GormListingRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(&ListingModel{})
	if result.Error != nil {
		return fmt.Errorf("failed to delete listing: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.NewNotFoundError("Listing", id.String())
	}
	return nil
}

// --- Conversion Helpers ---

func toListingModel(l *listing.Listing) (*ListingModel, error) {
	tagsJSON, err := json.Marshal(l.Tags())
	if err != nil {
		return nil, fmt.Errorf("failed to marshal tags: %w", err)
	}

	return &ListingModel{
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
		Tags:              tagsJSON,
		Status:            string(l.Status()),
		CreatedAt:         l.CreatedAt(),
		UpdatedAt:         l.UpdatedAt(),
	}, nil
}

func toDomainListing(m *ListingModel) (*listing.Listing, error) {
	var tags []string
	if len(m.Tags) > 0 {
		if err := json.Unmarshal(m.Tags, &tags); err != nil {
			return nil, fmt.Errorf("failed to unmarshal tags: %w", err)
		}
	}

	return listing.Reconstruct(
		m.ID,
		m.Title,
		listing.Category(m.Category),
		m.Description, m.City, m.Location, m.Zipcode,
		m.Latitude, m.Longitude,
		m.GuestCapacity, m.BedroomsCount, m.BathroomsCount,
		m.NightlyPriceCents,
		tags,
		listing.Status(m.Status),
		m.CreatedAt, m.UpdatedAt,
	), nil
}
