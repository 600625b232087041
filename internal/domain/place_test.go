package domain

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validLocation() Location {
	return Location{Lat: 40.7484474, Lng: -73.9871516}
}

func TestLocationValid(t *testing.T) {
	t.Parallel()

	assert.True(t, validLocation().Valid())
	assert.True(t, Location{Lat: -90, Lng: 180}.Valid())
	assert.False(t, Location{Lat: 90.1, Lng: 0}.Valid())
	assert.False(t, Location{Lat: 0, Lng: -180.5}.Valid())
}

func TestNewPlace(t *testing.T) {
	t.Parallel()

	creatorID := uuid.New()
	place, err := NewPlace(
		"Empire State Building",
		"One of the most famous sky scrapers in the world!",
		"20 W 34th St, New York, NY 10001",
		"https://example.com/esb.jpg",
		validLocation(),
		creatorID,
	)
	require.NoError(t, err)

	assert.NotEqual(t, uuid.Nil, place.ID)
	assert.Equal(t, creatorID, place.CreatorID)
	assert.Equal(t, place.CreatedAt, place.UpdatedAt)
}

func TestNewPlaceValidation(t *testing.T) {
	t.Parallel()

	creatorID := uuid.New()

	cases := []struct {
		name    string
		mutate  func() (*Place, error)
		wantErr error
	}{
		{"empty title", func() (*Place, error) {
			return NewPlace("", "desc text", "addr", "https://x/y.jpg", validLocation(), creatorID)
		}, ErrEmptyPlaceTitle},
		{"empty description", func() (*Place, error) {
			return NewPlace("Title", "  ", "addr", "https://x/y.jpg", validLocation(), creatorID)
		}, ErrEmptyPlaceDescription},
		{"empty address", func() (*Place, error) {
			return NewPlace("Title", "desc text", "", "https://x/y.jpg", validLocation(), creatorID)
		}, ErrEmptyPlaceAddress},
		{"empty image", func() (*Place, error) {
			return NewPlace("Title", "desc text", "addr", "", validLocation(), creatorID)
		}, ErrEmptyPlaceImageURL},
		{"bad location", func() (*Place, error) {
			return NewPlace("Title", "desc text", "addr", "https://x/y.jpg", Location{Lat: 200}, creatorID)
		}, ErrInvalidLocation},
		{"nil creator", func() (*Place, error) {
			return NewPlace("Title", "desc text", "addr", "https://x/y.jpg", validLocation(), uuid.Nil)
		}, ErrEmptyPlaceCreator},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := tc.mutate()
			assert.ErrorIs(t, err, tc.wantErr)
		})
	}
}

func TestUpdateDetails(t *testing.T) {
	t.Parallel()

	place, err := NewPlace(
		"Old Title", "Old description", "addr", "https://x/y.jpg", validLocation(), uuid.New(),
	)
	require.NoError(t, err)

	originalAddress := place.Address
	originalLocation := place.Location
	originalCreated := place.CreatedAt

	time.Sleep(time.Millisecond)
	require.NoError(t, place.UpdateDetails("New Title", "New description"))

	assert.Equal(t, "New Title", place.Title)
	assert.Equal(t, "New description", place.Description)
	assert.True(t, place.UpdatedAt.After(originalCreated))

	// Everything else is immutable.
	assert.Equal(t, originalAddress, place.Address)
	assert.Equal(t, originalLocation, place.Location)
	assert.Equal(t, originalCreated, place.CreatedAt)
}

func TestUpdateDetailsRejectsBlank(t *testing.T) {
	t.Parallel()

	place, err := NewPlace(
		"Title", "Description", "addr", "https://x/y.jpg", validLocation(), uuid.New(),
	)
	require.NoError(t, err)

	assert.ErrorIs(t, place.UpdateDetails("", "desc"), ErrEmptyPlaceTitle)
	assert.ErrorIs(t, place.UpdateDetails("title", " "), ErrEmptyPlaceDescription)

	// Failed updates leave the place untouched.
	assert.Equal(t, "Title", place.Title)
	assert.Equal(t, "Description", place.Description)
}
