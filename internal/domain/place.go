package domain

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Common validation errors for Place
var (
	ErrEmptyPlaceID          = errors.New("place ID cannot be empty")
	ErrEmptyPlaceTitle       = errors.New("place title cannot be empty")
	ErrEmptyPlaceDescription = errors.New("place description cannot be empty")
	ErrEmptyPlaceAddress     = errors.New("place address cannot be empty")
	ErrEmptyPlaceImageURL    = errors.New("place image URL cannot be empty")
	ErrEmptyPlaceCreator     = errors.New("place creator ID cannot be empty")
	ErrInvalidLocation       = errors.New("location coordinates out of range")
)

// Location is a WGS84 coordinate pair.
type Location struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// Valid reports whether the coordinates are within the WGS84 bounds.
func (l Location) Valid() bool {
	return l.Lat >= -90 && l.Lat <= 90 && l.Lng >= -180 && l.Lng <= 180
}

// Place represents a user-created point of interest.
//
// Address, Location, ImageURL and CreatorID are fixed at creation time:
// the location is resolved from the address exactly once, and the creator
// reference participates in the bidirectional consistency invariant with
// the owning user's places set. Only Title and Description may change.
type Place struct {
	ID          uuid.UUID `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Address     string    `json:"address"`
	Location    Location  `json:"location"`
	ImageURL    string    `json:"image_url"`
	CreatorID   uuid.UUID `json:"creator"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// NewPlace creates a new Place owned by creatorID with the given resolved
// location. It generates a new UUID and sets the creation/update timestamps.
// Returns an error if validation fails.
func NewPlace(title, description, address, imageURL string, location Location, creatorID uuid.UUID) (*Place, error) {
	now := time.Now().UTC()
	place := &Place{
		ID:          uuid.New(),
		Title:       title,
		Description: description,
		Address:     address,
		Location:    location,
		ImageURL:    imageURL,
		CreatorID:   creatorID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := place.Validate(); err != nil {
		return nil, err
	}

	return place, nil
}

// Validate checks if the Place has valid data.
// Returns an error if any field fails validation.
func (p *Place) Validate() error {
	if p.ID == uuid.Nil {
		return ErrEmptyPlaceID
	}

	if strings.TrimSpace(p.Title) == "" {
		return ErrEmptyPlaceTitle
	}

	if strings.TrimSpace(p.Description) == "" {
		return ErrEmptyPlaceDescription
	}

	if strings.TrimSpace(p.Address) == "" {
		return ErrEmptyPlaceAddress
	}

	if p.ImageURL == "" {
		return ErrEmptyPlaceImageURL
	}

	if !p.Location.Valid() {
		return ErrInvalidLocation
	}

	if p.CreatorID == uuid.Nil {
		return ErrEmptyPlaceCreator
	}

	return nil
}

// UpdateDetails replaces the mutable fields of the place and bumps the
// update timestamp. All other fields are immutable after creation.
func (p *Place) UpdateDetails(title, description string) error {
	if strings.TrimSpace(title) == "" {
		return ErrEmptyPlaceTitle
	}
	if strings.TrimSpace(description) == "" {
		return ErrEmptyPlaceDescription
	}

	p.Title = title
	p.Description = description
	p.UpdatedAt = time.Now().UTC()
	return nil
}
