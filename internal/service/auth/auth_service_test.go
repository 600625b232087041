package auth_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ShriduttPatel121/MERN-BACKEND/internal/domain"
	"github.com/ShriduttPatel121/MERN-BACKEND/internal/mocks"
	"github.com/ShriduttPatel121/MERN-BACKEND/internal/service/auth"
	"github.com/ShriduttPatel121/MERN-BACKEND/internal/store"
)

func newStoredUser(t *testing.T) *domain.User {
	t.Helper()
	now := time.Now().UTC()
	return &domain.User{
		ID:             uuid.New(),
		Name:           "Max Schwarz",
		Email:          "max@example.com",
		HashedPassword: "$2a$12$stored-hash",
		CreatedAt:      now,
		UpdatedAt:      now,
	}
}

func TestAuthenticateSuccess(t *testing.T) {
	t.Parallel()

	user := newStoredUser(t)
	userStore := mocks.NewMockUserStore()
	userStore.Users[user.Email] = user

	verifier := &mocks.MockPasswordVerifier{ShouldSucceed: true}
	jwtService := &mocks.MockJWTService{Token: "signed-token"}

	svc := auth.NewService(userStore, verifier, jwtService, nil)

	result, err := svc.Authenticate(context.Background(), user.Email, "secret123")
	require.NoError(t, err)
	assert.Equal(t, user.ID, result.UserID)
	assert.Equal(t, user.Email, result.Email)
	assert.Equal(t, "signed-token", result.Token)
	assert.Equal(t, user.HashedPassword, verifier.CompareCalledWith.HashedPassword)
	assert.Equal(t, "secret123", verifier.CompareCalledWith.Password)
}

func TestAuthenticateUnknownEmail(t *testing.T) {
	t.Parallel()

	userStore := mocks.NewMockUserStore()
	verifier := &mocks.MockPasswordVerifier{ShouldSucceed: true}
	jwtService := &mocks.MockJWTService{Token: "signed-token"}

	svc := auth.NewService(userStore, verifier, jwtService, nil)

	_, err := svc.Authenticate(context.Background(), "nobody@example.com", "secret123")
	assert.ErrorIs(t, err, auth.ErrInvalidCredentials)

	// No hash comparison should run for an unknown account.
	assert.Zero(t, verifier.CompareCallCount)
}

func TestAuthenticateWrongPassword(t *testing.T) {
	t.Parallel()

	user := newStoredUser(t)
	userStore := mocks.NewMockUserStore()
	userStore.Users[user.Email] = user

	verifier := &mocks.MockPasswordVerifier{ShouldSucceed: false}
	jwtService := &mocks.MockJWTService{Token: "signed-token"}

	svc := auth.NewService(userStore, verifier, jwtService, nil)

	_, err := svc.Authenticate(context.Background(), user.Email, "wrong")
	assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
}

func TestAuthenticateFailuresAreUniform(t *testing.T) {
	t.Parallel()

	user := newStoredUser(t)
	userStore := mocks.NewMockUserStore()
	userStore.Users[user.Email] = user

	verifier := &mocks.MockPasswordVerifier{ShouldSucceed: false}
	jwtService := &mocks.MockJWTService{Token: "signed-token"}

	svc := auth.NewService(userStore, verifier, jwtService, nil)

	_, unknownEmailErr := svc.Authenticate(context.Background(), "nobody@example.com", "whatever")
	_, wrongPasswordErr := svc.Authenticate(context.Background(), user.Email, "wrong")

	// Both failure modes must be indistinguishable to the caller.
	assert.ErrorIs(t, unknownEmailErr, auth.ErrInvalidCredentials)
	assert.ErrorIs(t, wrongPasswordErr, auth.ErrInvalidCredentials)
	assert.Equal(t, unknownEmailErr.Error(), wrongPasswordErr.Error())
}

func TestAuthenticateStoreFailure(t *testing.T) {
	t.Parallel()

	storeErr := errors.New("connection reset")
	userStore := mocks.NewMockUserStore()
	userStore.GetByEmailFn = func(ctx context.Context, email string) (*domain.User, error) {
		return nil, storeErr
	}

	svc := auth.NewService(userStore, &mocks.MockPasswordVerifier{}, &mocks.MockJWTService{}, nil)

	_, err := svc.Authenticate(context.Background(), "max@example.com", "secret123")
	require.Error(t, err)
	assert.NotErrorIs(t, err, auth.ErrInvalidCredentials)
	assert.ErrorIs(t, err, storeErr)
}

func TestAuthenticateTokenIssueFailure(t *testing.T) {
	t.Parallel()

	user := newStoredUser(t)
	userStore := mocks.NewMockUserStore()
	userStore.Users[user.Email] = user

	jwtService := &mocks.MockJWTService{Err: errors.New("signing failed")}

	svc := auth.NewService(userStore, &mocks.MockPasswordVerifier{ShouldSucceed: true}, jwtService, nil)

	_, err := svc.Authenticate(context.Background(), user.Email, "secret123")
	require.Error(t, err)
	assert.NotErrorIs(t, err, store.ErrUserNotFound)
}
