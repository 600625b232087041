package store

import (
	"context"
	"database/sql"

	"github.com/google/uuid"

	"github.com/ShriduttPatel121/MERN-BACKEND/internal/domain"
)

// PlaceStore defines the interface for place data persistence.
type PlaceStore interface {
	// Create saves a new place to the store.
	// Returns ErrInvalidEntity if the creator reference is dangling.
	Create(ctx context.Context, place *domain.Place) error

	// GetByID retrieves a place by its unique ID.
	// Returns ErrPlaceNotFound if the place does not exist.
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Place, error)

	// ListByCreator returns all places created by the given user,
	// newest first. An empty result is not an error.
	ListByCreator(ctx context.Context, creatorID uuid.UUID) ([]*domain.Place, error)

	// Update persists the mutable fields (title, description) of an
	// existing place. Returns ErrPlaceNotFound if the place does not exist.
	Update(ctx context.Context, place *domain.Place) error

	// Delete removes a place from the store by its ID.
	// Returns ErrPlaceNotFound if the place does not exist.
	Delete(ctx context.Context, id uuid.UUID) error

	// WithTx returns a PlaceStore that runs all operations on the provided
	// transaction. The transaction is created and managed by the caller.
	WithTx(tx *sql.Tx) PlaceStore
}
