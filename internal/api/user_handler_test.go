package api_test

import (
	"context"
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ShriduttPatel121/MERN-BACKEND/internal/api"
	"github.com/ShriduttPatel121/MERN-BACKEND/internal/domain"
	"github.com/ShriduttPatel121/MERN-BACKEND/internal/store"
)

func newUserRouter(handler *api.UserHandler) http.Handler {
	r := chi.NewRouter()
	r.Get("/api/users", handler.ListUsers)
	r.Get("/api/users/{id}", handler.GetUser)
	return r
}

func sampleUser() *domain.User {
	now := time.Now().UTC()
	return &domain.User{
		ID:             uuid.New(),
		Name:           "Max Schwarz",
		Email:          "max@example.com",
		HashedPassword: "$2a$12$stored-hash",
		Places:         []uuid.UUID{uuid.New()},
		CreatedAt:      now,
		UpdatedAt:      now,
	}
}

func TestListUsersEndpoint(t *testing.T) {
	t.Parallel()

	user := sampleUser()
	userService := &mockUserService{
		ListUsersFn: func(ctx context.Context) ([]*domain.User, error) {
			return []*domain.User{user}, nil
		},
	}

	router := newUserRouter(api.NewUserHandler(userService, nil))

	rr := doJSON(t, router, http.MethodGet, "/api/users", nil)

	require.Equal(t, http.StatusOK, rr.Code)
	body := decodeBody(t, rr)
	users, ok := body["users"].([]interface{})
	require.True(t, ok)
	require.Len(t, users, 1)

	first, ok := users[0].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, user.Email, first["email"])

	// Password material must never appear in responses.
	assert.NotContains(t, rr.Body.String(), user.HashedPassword)
	assert.NotContains(t, rr.Body.String(), "password")
}

func TestListUsersFailure(t *testing.T) {
	t.Parallel()

	userService := &mockUserService{
		ListUsersFn: func(ctx context.Context) ([]*domain.User, error) {
			return nil, fmt.Errorf("query timeout")
		},
	}

	router := newUserRouter(api.NewUserHandler(userService, nil))

	rr := doJSON(t, router, http.MethodGet, "/api/users", nil)

	require.Equal(t, http.StatusInternalServerError, rr.Code)
	// The raw error text stays out of the response.
	assert.NotContains(t, rr.Body.String(), "query timeout")
}

func TestGetUserEndpoint(t *testing.T) {
	t.Parallel()

	user := sampleUser()
	userService := &mockUserService{
		GetUserFn: func(ctx context.Context, id uuid.UUID) (*domain.User, error) {
			assert.Equal(t, user.ID, id)
			return user, nil
		},
	}

	router := newUserRouter(api.NewUserHandler(userService, nil))

	rr := doJSON(t, router, http.MethodGet, "/api/users/"+user.ID.String(), nil)

	require.Equal(t, http.StatusOK, rr.Code)
	body := decodeBody(t, rr)
	assert.Equal(t, user.ID.String(), body["id"])
	assert.Equal(t, user.Name, body["name"])
}

func TestGetUserNotFoundEndpoint(t *testing.T) {
	t.Parallel()

	userService := &mockUserService{
		GetUserFn: func(ctx context.Context, id uuid.UUID) (*domain.User, error) {
			return nil, fmt.Errorf("failed to retrieve user: %w", store.ErrUserNotFound)
		},
	}

	router := newUserRouter(api.NewUserHandler(userService, nil))

	rr := doJSON(t, router, http.MethodGet, "/api/users/"+uuid.NewString(), nil)

	require.Equal(t, http.StatusNotFound, rr.Code)
	assert.Equal(t, "User not found", decodeBody(t, rr)["error"])
}
