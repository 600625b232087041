package store

import (
	"context"
	"database/sql"

	"github.com/google/uuid"

	"github.com/ShriduttPatel121/MERN-BACKEND/internal/domain"
)

// UserStore defines the interface for user data persistence.
type UserStore interface {
	// Create saves a new user to the store. The user must already carry a
	// hashed password; plaintext never reaches the store layer.
	// Returns ErrEmailExists if the email is already taken.
	Create(ctx context.Context, user *domain.User) error

	// GetByID retrieves a user by their unique ID, including the user's
	// places set. Returns ErrUserNotFound if the user does not exist.
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)

	// GetByEmail retrieves a user by their email address (exact match).
	// Returns ErrUserNotFound if the user does not exist.
	GetByEmail(ctx context.Context, email string) (*domain.User, error)

	// List returns all users. Password hashes are populated (the API layer
	// is responsible for never serializing them).
	List(ctx context.Context) ([]*domain.User, error)

	// AddPlace appends a place ID to the user's places set. It must only be
	// called inside the same transaction that persists the place itself.
	// Returns ErrUserNotFound if the user does not exist.
	AddPlace(ctx context.Context, userID, placeID uuid.UUID) error

	// RemovePlace removes a place ID from the user's places set. It must
	// only be called inside the same transaction that deletes the place.
	// Returns ErrUserNotFound if the membership row does not exist.
	RemovePlace(ctx context.Context, userID, placeID uuid.UUID) error

	// WithTx returns a UserStore that runs all operations on the provided
	// transaction. The transaction is created and managed by the caller.
	WithTx(tx *sql.Tx) UserStore
}
