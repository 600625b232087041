package service

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ShriduttPatel121/MERN-BACKEND/internal/domain"
	"github.com/ShriduttPatel121/MERN-BACKEND/internal/mocks"
	"github.com/ShriduttPatel121/MERN-BACKEND/internal/store"
)

func TestSignUpHashesPasswordBeforePersisting(t *testing.T) {
	db, dbMock, err := sqlmock.New()
	require.NoError(t, err)
	defer func() { _ = db.Close() }()

	dbMock.ExpectBegin()
	dbMock.ExpectCommit()

	userStore := mocks.NewMockUserStore()
	var persisted *domain.User
	userStore.CreateFn = func(ctx context.Context, user *domain.User) error {
		persisted = user
		return nil
	}
	hasher := &mocks.MockPasswordHasher{}

	svc := NewUserService(userStore, hasher, db, nil)

	user, err := svc.SignUp(context.Background(), "Max Schwarz", "max@example.com", "secret123", "")
	require.NoError(t, err)

	require.NotNil(t, persisted)
	assert.Equal(t, "hashed:secret123", persisted.HashedPassword)
	// The plaintext never reaches the store.
	assert.Empty(t, persisted.Password)
	assert.Empty(t, user.Password)
	assert.Equal(t, 1, hasher.HashCallCount)

	assert.NoError(t, dbMock.ExpectationsWereMet())
}

func TestSignUpDuplicateEmail(t *testing.T) {
	db, dbMock, err := sqlmock.New()
	require.NoError(t, err)
	defer func() { _ = db.Close() }()

	dbMock.ExpectBegin()
	dbMock.ExpectRollback()

	userStore := mocks.NewMockUserStore()
	userStore.CreateFn = func(ctx context.Context, user *domain.User) error {
		return store.ErrEmailExists
	}

	svc := NewUserService(userStore, &mocks.MockPasswordHasher{}, db, nil)

	_, err = svc.SignUp(context.Background(), "Max Schwarz", "max@example.com", "secret123", "")
	require.Error(t, err)
	assert.ErrorIs(t, err, store.ErrEmailExists)

	assert.NoError(t, dbMock.ExpectationsWereMet())
}

func TestSignUpInvalidInputSkipsHashing(t *testing.T) {
	userStore := mocks.NewMockUserStore()
	hasher := &mocks.MockPasswordHasher{}

	svc := NewUserService(userStore, hasher, nil, nil)

	_, err := svc.SignUp(context.Background(), "Max Schwarz", "max@example.com", "short", "")
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrPasswordTooShort)
	assert.Zero(t, hasher.HashCallCount)
}

func TestSignUpHashingFailureWritesNothing(t *testing.T) {
	userStore := mocks.NewMockUserStore()
	created := false
	userStore.CreateFn = func(ctx context.Context, user *domain.User) error {
		created = true
		return nil
	}
	hasher := &mocks.MockPasswordHasher{
		HashFn: func(password string) (string, error) {
			return "", assert.AnError
		},
	}

	svc := NewUserService(userStore, hasher, nil, nil)

	_, err := svc.SignUp(context.Background(), "Max Schwarz", "max@example.com", "secret123", "")
	require.Error(t, err)
	assert.False(t, created)
}

func TestGetUserNotFound(t *testing.T) {
	svc := NewUserService(mocks.NewMockUserStore(), &mocks.MockPasswordHasher{}, nil, nil)

	_, err := svc.GetUser(context.Background(), uuid.New())
	require.Error(t, err)
	assert.ErrorIs(t, err, store.ErrUserNotFound)
}

func TestListUsers(t *testing.T) {
	userStore := mocks.NewMockUserStore()
	seedUser(userStore)

	svc := NewUserService(userStore, &mocks.MockPasswordHasher{}, nil, nil)

	users, err := svc.ListUsers(context.Background())
	require.NoError(t, err)
	assert.Len(t, users, 1)
}
