package mocks

import (
	"context"
	"database/sql"

	"github.com/google/uuid"

	"github.com/ShriduttPatel121/MERN-BACKEND/internal/domain"
	"github.com/ShriduttPatel121/MERN-BACKEND/internal/store"
)

// MockPlaceStore implements store.PlaceStore for testing
type MockPlaceStore struct {
	// Function fields for customizable behavior
	CreateFn        func(ctx context.Context, place *domain.Place) error
	GetByIDFn       func(ctx context.Context, id uuid.UUID) (*domain.Place, error)
	ListByCreatorFn func(ctx context.Context, creatorID uuid.UUID) ([]*domain.Place, error)
	UpdateFn        func(ctx context.Context, place *domain.Place) error
	DeleteFn        func(ctx context.Context, id uuid.UUID) error
	WithTxFn        func(tx *sql.Tx) store.PlaceStore

	// Data for default implementation, keyed by place ID
	Places map[uuid.UUID]*domain.Place

	// Call recording
	CreateCalls []uuid.UUID
	DeleteCalls []uuid.UUID
}

// Ensure MockPlaceStore implements store.PlaceStore
var _ store.PlaceStore = (*MockPlaceStore)(nil)

// NewMockPlaceStore creates a new mock store with initialized defaults
func NewMockPlaceStore() *MockPlaceStore {
	return &MockPlaceStore{
		Places: make(map[uuid.UUID]*domain.Place),
	}
}

// Create implements the PlaceStore interface
func (m *MockPlaceStore) Create(ctx context.Context, place *domain.Place) error {
	m.CreateCalls = append(m.CreateCalls, place.ID)

	if m.CreateFn != nil {
		return m.CreateFn(ctx, place)
	}

	if _, exists := m.Places[place.ID]; exists {
		return store.ErrDuplicate
	}
	m.Places[place.ID] = place
	return nil
}

// GetByID implements the PlaceStore interface
func (m *MockPlaceStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.Place, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}

	place, exists := m.Places[id]
	if !exists {
		return nil, store.ErrPlaceNotFound
	}
	return place, nil
}

// ListByCreator implements the PlaceStore interface
func (m *MockPlaceStore) ListByCreator(ctx context.Context, creatorID uuid.UUID) ([]*domain.Place, error) {
	if m.ListByCreatorFn != nil {
		return m.ListByCreatorFn(ctx, creatorID)
	}

	places := []*domain.Place{}
	for _, place := range m.Places {
		if place.CreatorID == creatorID {
			places = append(places, place)
		}
	}
	return places, nil
}

// Update implements the PlaceStore interface
func (m *MockPlaceStore) Update(ctx context.Context, place *domain.Place) error {
	if m.UpdateFn != nil {
		return m.UpdateFn(ctx, place)
	}

	if _, exists := m.Places[place.ID]; !exists {
		return store.ErrPlaceNotFound
	}
	m.Places[place.ID] = place
	return nil
}

// Delete implements the PlaceStore interface
func (m *MockPlaceStore) Delete(ctx context.Context, id uuid.UUID) error {
	m.DeleteCalls = append(m.DeleteCalls, id)

	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, id)
	}

	if _, exists := m.Places[id]; !exists {
		return store.ErrPlaceNotFound
	}
	delete(m.Places, id)
	return nil
}

// WithTx implements the PlaceStore interface. The default returns the mock
// itself so transactional code paths can be exercised without a database.
func (m *MockPlaceStore) WithTx(tx *sql.Tx) store.PlaceStore {
	if m.WithTxFn != nil {
		return m.WithTxFn(tx)
	}
	return m
}
