package api

import (
	"time"

	"github.com/google/uuid"

	"github.com/ShriduttPatel121/MERN-BACKEND/internal/domain"
)

// Common request/response structures

// SignupRequest defines the payload for the user signup endpoint.
type SignupRequest struct {
	Name     string `json:"name"      validate:"required,min=1,max=100"`
	Email    string `json:"email"     validate:"required,email"`
	Password string `json:"password"  validate:"required,min=6,max=72"`
	ImageURL string `json:"image_url" validate:"omitempty,url"`
}

// LoginRequest defines the payload for the user login endpoint.
type LoginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required,min=1"`
}

// AuthResponse defines the successful response for authentication endpoints.
type AuthResponse struct {
	// UserID is the unique identifier for the authenticated user
	UserID uuid.UUID `json:"user_id"`

	// Email of the authenticated account
	Email string `json:"email"`

	// Token is the JWT session token used for API authorization
	Token string `json:"token"`
}

// CreatePlaceRequest defines the payload for the place creation endpoint.
// Coordinates are never accepted from the client; they are always derived
// from the address by the geocoding gateway.
type CreatePlaceRequest struct {
	Title       string `json:"title"       validate:"required,min=1,max=200"`
	Description string `json:"description" validate:"required,min=5"`
	Address     string `json:"address"     validate:"required,min=1"`
	ImageURL    string `json:"image_url"   validate:"omitempty,url"`
}

// UpdatePlaceRequest defines the payload for the place update endpoint.
// Only title and description may change after creation.
type UpdatePlaceRequest struct {
	Title       string `json:"title"       validate:"required,min=1,max=200"`
	Description string `json:"description" validate:"required,min=5"`
}

// LocationResponse is the coordinate pair carried on place responses.
type LocationResponse struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// PlaceResponse defines the representation of a place in API responses.
type PlaceResponse struct {
	ID          uuid.UUID        `json:"id"`
	Title       string           `json:"title"`
	Description string           `json:"description"`
	Address     string           `json:"address"`
	Location    LocationResponse `json:"location"`
	ImageURL    string           `json:"image_url"`
	CreatorID   uuid.UUID        `json:"creator_id"`
	CreatedAt   time.Time        `json:"created_at"`
	UpdatedAt   time.Time        `json:"updated_at"`
}

// PlaceListResponse wraps a list of places.
type PlaceListResponse struct {
	Places []PlaceResponse `json:"places"`
}

// UserResponse defines the representation of a user in API responses.
// Password material never appears here.
type UserResponse struct {
	ID       uuid.UUID   `json:"id"`
	Name     string      `json:"name"`
	Email    string      `json:"email"`
	ImageURL string      `json:"image_url,omitempty"`
	Places   []uuid.UUID `json:"places"`
}

// UserListResponse wraps a list of users.
type UserListResponse struct {
	Users []UserResponse `json:"users"`
}

// newPlaceResponse converts a domain place to its API representation.
func newPlaceResponse(place *domain.Place) PlaceResponse {
	return PlaceResponse{
		ID:          place.ID,
		Title:       place.Title,
		Description: place.Description,
		Address:     place.Address,
		Location: LocationResponse{
			Lat: place.Location.Lat,
			Lng: place.Location.Lng,
		},
		ImageURL:  place.ImageURL,
		CreatorID: place.CreatorID,
		CreatedAt: place.CreatedAt,
		UpdatedAt: place.UpdatedAt,
	}
}

// newUserResponse converts a domain user to its API representation.
func newUserResponse(user *domain.User) UserResponse {
	places := user.Places
	if places == nil {
		places = []uuid.UUID{}
	}

	return UserResponse{
		ID:       user.ID,
		Name:     user.Name,
		Email:    user.Email,
		ImageURL: user.ImageURL,
		Places:   places,
	}
}
