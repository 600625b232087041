package api_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ShriduttPatel121/MERN-BACKEND/internal/api"
	"github.com/ShriduttPatel121/MERN-BACKEND/internal/api/shared"
	"github.com/ShriduttPatel121/MERN-BACKEND/internal/domain"
	"github.com/ShriduttPatel121/MERN-BACKEND/internal/platform/geocoding"
	"github.com/ShriduttPatel121/MERN-BACKEND/internal/service"
	"github.com/ShriduttPatel121/MERN-BACKEND/internal/store"
)

// newPlaceRouter wires the place handler into a chi router, optionally
// injecting an authenticated user ID the way the auth middleware would.
func newPlaceRouter(handler *api.PlaceHandler, userID uuid.UUID) http.Handler {
	r := chi.NewRouter()
	if userID != uuid.Nil {
		r.Use(func(next http.Handler) http.Handler {
			return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
				ctx := context.WithValue(req.Context(), shared.UserIDContextKey, userID)
				next.ServeHTTP(w, req.WithContext(ctx))
			})
		})
	}
	r.Get("/api/places/{id}", handler.GetPlace)
	r.Get("/api/users/{id}/places", handler.ListPlacesByUser)
	r.Post("/api/places", handler.CreatePlace)
	r.Patch("/api/places/{id}", handler.UpdatePlace)
	r.Delete("/api/places/{id}", handler.DeletePlace)
	return r
}

func samplePlace(creatorID uuid.UUID) *domain.Place {
	now := time.Now().UTC()
	return &domain.Place{
		ID:          uuid.New(),
		Title:       "Empire State Building",
		Description: "One of the most famous sky scrapers in the world!",
		Address:     "20 W 34th St, New York, NY 10001",
		Location:    domain.Location{Lat: 40.7484474, Lng: -73.9871516},
		ImageURL:    "https://example.com/esb.jpg",
		CreatorID:   creatorID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

func doJSON(t *testing.T, router http.Handler, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)
	return rr
}

func TestCreatePlaceEndpoint(t *testing.T) {
	t.Parallel()

	userID := uuid.New()
	placeService := &mockPlaceService{
		CreatePlaceFn: func(ctx context.Context, input service.CreatePlaceInput) (*domain.Place, error) {
			assert.Equal(t, userID, input.CreatorID)
			return samplePlace(input.CreatorID), nil
		},
	}

	router := newPlaceRouter(api.NewPlaceHandler(placeService, nil), userID)

	rr := doJSON(t, router, http.MethodPost, "/api/places", api.CreatePlaceRequest{
		Title:       "Empire State Building",
		Description: "One of the most famous sky scrapers in the world!",
		Address:     "20 W 34th St, New York, NY 10001",
	})

	require.Equal(t, http.StatusCreated, rr.Code)
	body := decodeBody(t, rr)
	assert.Equal(t, "Empire State Building", body["title"])
	assert.Equal(t, userID.String(), body["creator_id"])
}

func TestCreatePlaceRequiresAuth(t *testing.T) {
	t.Parallel()

	router := newPlaceRouter(api.NewPlaceHandler(&mockPlaceService{}, nil), uuid.Nil)

	rr := doJSON(t, router, http.MethodPost, "/api/places", api.CreatePlaceRequest{
		Title:       "Empire State Building",
		Description: "One of the most famous sky scrapers in the world!",
		Address:     "20 W 34th St, New York, NY 10001",
	})

	assert.Equal(t, http.StatusUnauthorized, rr.Code)
}

func TestCreatePlaceUnresolvableAddress(t *testing.T) {
	t.Parallel()

	placeService := &mockPlaceService{
		CreatePlaceFn: func(ctx context.Context, input service.CreatePlaceInput) (*domain.Place, error) {
			return nil, service.NewPlaceServiceError("create", geocoding.ErrAddressNotFound)
		},
	}

	router := newPlaceRouter(api.NewPlaceHandler(placeService, nil), uuid.New())

	rr := doJSON(t, router, http.MethodPost, "/api/places", api.CreatePlaceRequest{
		Title:       "Nowhere",
		Description: "An address the gateway cannot resolve",
		Address:     "zzz",
	})

	require.Equal(t, http.StatusUnprocessableEntity, rr.Code)
	assert.Equal(t, "Could not find location for the specified address", decodeBody(t, rr)["error"])
}

func TestGetPlaceEndpoint(t *testing.T) {
	t.Parallel()

	place := samplePlace(uuid.New())
	placeService := &mockPlaceService{
		GetPlaceFn: func(ctx context.Context, placeID uuid.UUID) (*domain.Place, error) {
			assert.Equal(t, place.ID, placeID)
			return place, nil
		},
	}

	router := newPlaceRouter(api.NewPlaceHandler(placeService, nil), uuid.Nil)

	rr := doJSON(t, router, http.MethodGet, "/api/places/"+place.ID.String(), nil)

	require.Equal(t, http.StatusOK, rr.Code)
	body := decodeBody(t, rr)
	assert.Equal(t, place.ID.String(), body["id"])
	location, ok := body["location"].(map[string]interface{})
	require.True(t, ok)
	assert.InDelta(t, 40.7484474, location["lat"], 1e-9)
}

func TestGetPlaceNotFoundEndpoint(t *testing.T) {
	t.Parallel()

	placeService := &mockPlaceService{
		GetPlaceFn: func(ctx context.Context, placeID uuid.UUID) (*domain.Place, error) {
			return nil, service.NewPlaceServiceError("get", store.ErrPlaceNotFound)
		},
	}

	router := newPlaceRouter(api.NewPlaceHandler(placeService, nil), uuid.Nil)

	rr := doJSON(t, router, http.MethodGet, "/api/places/"+uuid.NewString(), nil)

	require.Equal(t, http.StatusNotFound, rr.Code)
	assert.Equal(t, "Place not found", decodeBody(t, rr)["error"])
}

func TestGetPlaceMalformedID(t *testing.T) {
	t.Parallel()

	router := newPlaceRouter(api.NewPlaceHandler(&mockPlaceService{}, nil), uuid.Nil)

	rr := doJSON(t, router, http.MethodGet, "/api/places/not-a-uuid", nil)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestListPlacesByUserEndpoint(t *testing.T) {
	t.Parallel()

	creatorID := uuid.New()
	placeService := &mockPlaceService{
		ListPlacesByCreatorFn: func(ctx context.Context, id uuid.UUID) ([]*domain.Place, error) {
			assert.Equal(t, creatorID, id)
			return []*domain.Place{samplePlace(creatorID)}, nil
		},
	}

	router := newPlaceRouter(api.NewPlaceHandler(placeService, nil), uuid.Nil)

	rr := doJSON(t, router, http.MethodGet, "/api/users/"+creatorID.String()+"/places", nil)

	require.Equal(t, http.StatusOK, rr.Code)
	body := decodeBody(t, rr)
	places, ok := body["places"].([]interface{})
	require.True(t, ok)
	assert.Len(t, places, 1)
}

func TestListPlacesByUserEmpty(t *testing.T) {
	t.Parallel()

	placeService := &mockPlaceService{
		ListPlacesByCreatorFn: func(ctx context.Context, id uuid.UUID) ([]*domain.Place, error) {
			return []*domain.Place{}, nil
		},
	}

	router := newPlaceRouter(api.NewPlaceHandler(placeService, nil), uuid.Nil)

	rr := doJSON(t, router, http.MethodGet, "/api/users/"+uuid.NewString()+"/places", nil)

	// An existing user with no places is a 200 with an empty list, not a 404.
	require.Equal(t, http.StatusOK, rr.Code)
	body := decodeBody(t, rr)
	places, ok := body["places"].([]interface{})
	require.True(t, ok)
	assert.Empty(t, places)
}

func TestUpdatePlaceEndpoint(t *testing.T) {
	t.Parallel()

	userID := uuid.New()
	place := samplePlace(userID)
	placeService := &mockPlaceService{
		UpdatePlaceFn: func(ctx context.Context, placeID, requesterID uuid.UUID, title, description string) (*domain.Place, error) {
			assert.Equal(t, userID, requesterID)
			place.Title = title
			place.Description = description
			return place, nil
		},
	}

	router := newPlaceRouter(api.NewPlaceHandler(placeService, nil), userID)

	rr := doJSON(t, router, http.MethodPatch, "/api/places/"+place.ID.String(), api.UpdatePlaceRequest{
		Title:       "New Title",
		Description: "New description text",
	})

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "New Title", decodeBody(t, rr)["title"])
}

func TestUpdatePlaceForbiddenForNonOwner(t *testing.T) {
	t.Parallel()

	placeService := &mockPlaceService{
		UpdatePlaceFn: func(ctx context.Context, placeID, requesterID uuid.UUID, title, description string) (*domain.Place, error) {
			return nil, service.NewPlaceServiceError("update", service.ErrNotOwned)
		},
	}

	router := newPlaceRouter(api.NewPlaceHandler(placeService, nil), uuid.New())

	rr := doJSON(t, router, http.MethodPatch, "/api/places/"+uuid.NewString(), api.UpdatePlaceRequest{
		Title:       "New Title",
		Description: "New description text",
	})

	require.Equal(t, http.StatusForbidden, rr.Code)
	assert.Equal(t, "You do not own this place", decodeBody(t, rr)["error"])
}

func TestDeletePlaceEndpoint(t *testing.T) {
	t.Parallel()

	userID := uuid.New()
	placeID := uuid.New()
	deleted := false
	placeService := &mockPlaceService{
		DeletePlaceFn: func(ctx context.Context, id, requesterID uuid.UUID) error {
			assert.Equal(t, placeID, id)
			assert.Equal(t, userID, requesterID)
			deleted = true
			return nil
		},
	}

	router := newPlaceRouter(api.NewPlaceHandler(placeService, nil), userID)

	rr := doJSON(t, router, http.MethodDelete, "/api/places/"+placeID.String(), nil)

	require.Equal(t, http.StatusOK, rr.Code)
	assert.True(t, deleted)
	assert.Equal(t, "Deleted place.", decodeBody(t, rr)["message"])
}

func TestDeletePlaceNotFoundEndpoint(t *testing.T) {
	t.Parallel()

	placeService := &mockPlaceService{
		DeletePlaceFn: func(ctx context.Context, id, requesterID uuid.UUID) error {
			return service.NewPlaceServiceError("delete", store.ErrPlaceNotFound)
		},
	}

	router := newPlaceRouter(api.NewPlaceHandler(placeService, nil), uuid.New())

	rr := doJSON(t, router, http.MethodDelete, "/api/places/"+uuid.NewString(), nil)

	assert.Equal(t, http.StatusNotFound, rr.Code)
}
