package listing

import (
	"time"

	"github.com/google/uuid"

	"github.com/veristay/service-admin/internal/common/domain"
)

// Category distinguishes the two bookable listing kinds. The category
// drives calendar capacity: an apartment hosts one stay per day, an
// attraction admits two concurrent bookings.
type Category string

const (
	CategoryApartment  Category = "apartment"
	CategoryAttraction Category = "attraction"
)

// IsValid returns true if the category is recognized.
func (c Category) IsValid() bool {
	return c == CategoryApartment || c == CategoryAttraction
}

// ParseCategory converts a string to a Category, returning an error if invalid.
func ParseCategory(s string) (Category, error) {
	c := Category(s)
	if !c.IsValid() {
		return "", domain.NewValidationError("invalid listing category: " + s)
	}
	return c, nil
}

// Status represents whether a listing accepts new bookings.
type Status string

const (
	StatusOpen   Status = "open"
	StatusClosed Status = "closed"
)

// Listing is the aggregate root for a bookable property or attraction.
type Listing struct {
	id               uuid.UUID
	title            string
	category         Category
	description      string
	city             string
	location         string
	zipcode          string
	latitude         float64
	longitude        float64
	guestCapacity    int
	bedroomsCount    int
	bathroomsCount   int
	nightlyPriceCents int64
	tags             []string
	status           Status
	createdAt        time.Time
	updatedAt        time.Time
}

// NewListing creates an open listing with validated fields.
func NewListing(
	title string,
	category Category,
	description, city, location, zipcode string,
	latitude, longitude float64,
	guestCapacity, bedroomsCount, bathroomsCount int,
	nightlyPriceCents int64,
	tags []string,
) (*Listing, error) {
	if title == "" {
		return nil, domain.NewValidationError("listing title is required")
	}
	if !category.IsValid() {
		return nil, domain.NewValidationError("invalid listing category: " + string(category))
	}
	if nightlyPriceCents <= 0 {
		return nil, domain.NewValidationError("nightly price must be positive")
	}
	if guestCapacity <= 0 {
		return nil, domain.NewValidationError("guest capacity must be positive")
	}

	now := time.Now().UTC()
	return &Listing{
		id:                uuid.New(),
		title:             title,
		category:          category,
		description:       description,
		city:              city,
		location:          location,
		zipcode:           zipcode,
		latitude:          latitude,
		longitude:         longitude,
		guestCapacity:     guestCapacity,
		bedroomsCount:     bedroomsCount,
		bathroomsCount:    bathroomsCount,
		nightlyPriceCents: nightlyPriceCents,
		tags:              tags,
		status:            StatusOpen,
		createdAt:         now,
		updatedAt:         now,
	}, nil
}

// Reconstruct rebuilds a Listing from persistence data (no validation).
func Reconstruct(
	id uuid.UUID,
	title string,
	category Category,
	description, city, location, zipcode string,
	latitude, longitude float64,
	guestCapacity, bedroomsCount, bathroomsCount int,
	nightlyPriceCents int64,
	tags []string,
	status Status,
	createdAt, updatedAt time.Time,
) *Listing {
	return &Listing{
		id:                id,
		title:             title,
		category:          category,
		description:       description,
		city:              city,
		location:          location,
		zipcode:           zipcode,
		latitude:          latitude,
		longitude:         longitude,
		guestCapacity:     guestCapacity,
		bedroomsCount:     bedroomsCount,
		bathroomsCount:    bathroomsCount,
		nightlyPriceCents: nightlyPriceCents,
		tags:              tags,
		status:            status,
		createdAt:         createdAt,
		updatedAt:         updatedAt,
	}
}

// --- Getters ---

func (l *Listing) ID() uuid.UUID            { return l.id }
func (l *Listing) Title() string            { return l.title }
func (l *Listing) Category() Category       { return l.category }
func (l *Listing) Description() string      { return l.description }
func (l *Listing) City() string             { return l.city }
func (l *Listing) Location() string         { return l.location }
func (l *Listing) Zipcode() string          { return l.zipcode }
func (l *Listing) Latitude() float64        { return l.latitude }
func (l *Listing) Longitude() float64       { return l.longitude }
func (l *Listing) GuestCapacity() int       { return l.guestCapacity }
func (l *Listing) BedroomsCount() int       { return l.bedroomsCount }
func (l *Listing) BathroomsCount() int      { return l.bathroomsCount }
func (l *Listing) NightlyPriceCents() int64 { return l.nightlyPriceCents }
func (l *Listing) Tags() []string           { return l.tags }
func (l *Listing) Status() Status           { return l.status }
func (l *Listing) CreatedAt() time.Time     { return l.createdAt }
func (l *Listing) UpdatedAt() time.Time     { return l.updatedAt }

// --- Behavior ---

// Update applies partial updates; empty or zero values leave fields unchanged.
func (l *Listing) Update(
	title, description, city, location, zipcode string,
	latitude, longitude float64,
	guestCapacity, bedroomsCount, bathroomsCount int,
	nightlyPriceCents int64,
	tags []string,
) {
	if title != "" {
		l.title = title
	}
	if description != "" {
		l.description = description
	}
	if city != "" {
		l.city = city
	}
	if location != "" {
		l.location = location
	}
	if zipcode != "" {
		l.zipcode = zipcode
	}
	if latitude != 0 {
		l.latitude = latitude
	}
	if longitude != 0 {
		l.longitude = longitude
	}
	if guestCapacity > 0 {
		l.guestCapacity = guestCapacity
	}
	if bedroomsCount > 0 {
		l.bedroomsCount = bedroomsCount
	}
	if bathroomsCount > 0 {
		l.bathroomsCount = bathroomsCount
	}
	if nightlyPriceCents > 0 {
		l.nightlyPriceCents = nightlyPriceCents
	}
	if tags != nil {
		l.tags = tags
	}
	l.updatedAt = time.Now().UTC()
}

// Close marks the listing as no longer accepting bookings.
func (l *Listing) Close() {
	l.status = StatusClosed
	l.updatedAt = time.Now().UTC()
}

// Open re-opens a closed listing.
func (l *Listing) Open() {
	l.status = StatusOpen
	l.updatedAt = time.Now().UTC()
}

// IsOpen returns true if the listing accepts new bookings.
func (l *Listing) IsOpen() bool {
	return l.status == StatusOpen
}
