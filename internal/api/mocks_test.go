package api_test

import (
	"context"

	"github.com/google/uuid"

	"github.com/ShriduttPatel121/MERN-BACKEND/internal/domain"
	"github.com/ShriduttPatel121/MERN-BACKEND/internal/service"
	"github.com/ShriduttPatel121/MERN-BACKEND/internal/service/auth"
)

// mockUserService implements service.UserService with function fields.
type mockUserService struct {
	SignUpFn    func(ctx context.Context, name, email, password, imageURL string) (*domain.User, error)
	GetUserFn   func(ctx context.Context, userID uuid.UUID) (*domain.User, error)
	ListUsersFn func(ctx context.Context) ([]*domain.User, error)
}

var _ service.UserService = (*mockUserService)(nil)

func (m *mockUserService) SignUp(ctx context.Context, name, email, password, imageURL string) (*domain.User, error) {
	return m.SignUpFn(ctx, name, email, password, imageURL)
}

func (m *mockUserService) GetUser(ctx context.Context, userID uuid.UUID) (*domain.User, error) {
	return m.GetUserFn(ctx, userID)
}

func (m *mockUserService) ListUsers(ctx context.Context) ([]*domain.User, error) {
	return m.ListUsersFn(ctx)
}

// mockPlaceService implements service.PlaceService with function fields.
type mockPlaceService struct {
	CreatePlaceFn         func(ctx context.Context, input service.CreatePlaceInput) (*domain.Place, error)
	UpdatePlaceFn         func(ctx context.Context, placeID, requesterID uuid.UUID, title, description string) (*domain.Place, error)
	DeletePlaceFn         func(ctx context.Context, placeID, requesterID uuid.UUID) error
	GetPlaceFn            func(ctx context.Context, placeID uuid.UUID) (*domain.Place, error)
	ListPlacesByCreatorFn func(ctx context.Context, creatorID uuid.UUID) ([]*domain.Place, error)
}

var _ service.PlaceService = (*mockPlaceService)(nil)

func (m *mockPlaceService) CreatePlace(ctx context.Context, input service.CreatePlaceInput) (*domain.Place, error) {
	return m.CreatePlaceFn(ctx, input)
}

func (m *mockPlaceService) UpdatePlace(ctx context.Context, placeID, requesterID uuid.UUID, title, description string) (*domain.Place, error) {
	return m.UpdatePlaceFn(ctx, placeID, requesterID, title, description)
}

func (m *mockPlaceService) DeletePlace(ctx context.Context, placeID, requesterID uuid.UUID) error {
	return m.DeletePlaceFn(ctx, placeID, requesterID)
}

func (m *mockPlaceService) GetPlace(ctx context.Context, placeID uuid.UUID) (*domain.Place, error) {
	return m.GetPlaceFn(ctx, placeID)
}

func (m *mockPlaceService) ListPlacesByCreator(ctx context.Context, creatorID uuid.UUID) ([]*domain.Place, error) {
	return m.ListPlacesByCreatorFn(ctx, creatorID)
}

// mockAuthenticator implements api.Authenticator with a function field.
type mockAuthenticator struct {
	AuthenticateFn func(ctx context.Context, email, password string) (*auth.AuthenticatedUser, error)
}

func (m *mockAuthenticator) Authenticate(ctx context.Context, email, password string) (*auth.AuthenticatedUser, error) {
	return m.AuthenticateFn(ctx, email, password)
}
