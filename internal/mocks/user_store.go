package mocks

import (
	"context"
	"database/sql"

	"github.com/google/uuid"

	"github.com/ShriduttPatel121/MERN-BACKEND/internal/domain"
	"github.com/ShriduttPatel121/MERN-BACKEND/internal/store"
)

// MockUserStore implements store.UserStore for testing
type MockUserStore struct {
	// Function fields for customizable behavior
	CreateFn      func(ctx context.Context, user *domain.User) error
	GetByIDFn     func(ctx context.Context, id uuid.UUID) (*domain.User, error)
	GetByEmailFn  func(ctx context.Context, email string) (*domain.User, error)
	ListFn        func(ctx context.Context) ([]*domain.User, error)
	AddPlaceFn    func(ctx context.Context, userID, placeID uuid.UUID) error
	RemovePlaceFn func(ctx context.Context, userID, placeID uuid.UUID) error
	WithTxFn      func(tx *sql.Tx) store.UserStore

	// Data for default implementation, keyed by email
	Users map[string]*domain.User

	// Call recording
	AddPlaceCalls    []uuid.UUID
	RemovePlaceCalls []uuid.UUID
}

// Ensure MockUserStore implements store.UserStore
var _ store.UserStore = (*MockUserStore)(nil)

// NewMockUserStore creates a new mock store with initialized defaults
func NewMockUserStore() *MockUserStore {
	return &MockUserStore{
		Users: make(map[string]*domain.User),
	}
}

// Create implements the UserStore interface
func (m *MockUserStore) Create(ctx context.Context, user *domain.User) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, user)
	}

	if _, exists := m.Users[user.Email]; exists {
		return store.ErrEmailExists
	}

	m.Users[user.Email] = user
	return nil
}

// GetByID implements the UserStore interface
func (m *MockUserStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}

	for _, user := range m.Users {
		if user.ID == id {
			return user, nil
		}
	}
	return nil, store.ErrUserNotFound
}

// GetByEmail implements the UserStore interface
func (m *MockUserStore) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	if m.GetByEmailFn != nil {
		return m.GetByEmailFn(ctx, email)
	}

	user, exists := m.Users[email]
	if !exists {
		return nil, store.ErrUserNotFound
	}
	return user, nil
}

// List implements the UserStore interface
func (m *MockUserStore) List(ctx context.Context) ([]*domain.User, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx)
	}

	users := []*domain.User{}
	for _, user := range m.Users {
		users = append(users, user)
	}
	return users, nil
}

// AddPlace implements the UserStore interface
func (m *MockUserStore) AddPlace(ctx context.Context, userID, placeID uuid.UUID) error {
	m.AddPlaceCalls = append(m.AddPlaceCalls, placeID)

	if m.AddPlaceFn != nil {
		return m.AddPlaceFn(ctx, userID, placeID)
	}

	for _, user := range m.Users {
		if user.ID == userID {
			user.Places = append(user.Places, placeID)
			return nil
		}
	}
	return store.ErrUserNotFound
}

// RemovePlace implements the UserStore interface
func (m *MockUserStore) RemovePlace(ctx context.Context, userID, placeID uuid.UUID) error {
	m.RemovePlaceCalls = append(m.RemovePlaceCalls, placeID)

	if m.RemovePlaceFn != nil {
		return m.RemovePlaceFn(ctx, userID, placeID)
	}

	for _, user := range m.Users {
		if user.ID == userID {
			for i, id := range user.Places {
				if id == placeID {
					user.Places = append(user.Places[:i], user.Places[i+1:]...)
					return nil
				}
			}
			return store.ErrUserNotFound
		}
	}
	return store.ErrUserNotFound
}

// WithTx implements the UserStore interface. The default returns the mock
// itself so transactional code paths can be exercised without a database.
func (m *MockUserStore) WithTx(tx *sql.Tx) store.UserStore {
	if m.WithTxFn != nil {
		return m.WithTxFn(tx)
	}
	return m
}
