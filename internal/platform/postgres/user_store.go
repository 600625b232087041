package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/ShriduttPatel121/MERN-BACKEND/internal/domain"
	"github.com/ShriduttPatel121/MERN-BACKEND/internal/platform/logger"
	"github.com/ShriduttPatel121/MERN-BACKEND/internal/store"
)

// PostgresUserStore implements the store.UserStore interface
// using a PostgreSQL database as the storage backend.
type PostgresUserStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresUserStore creates a new PostgreSQL implementation of the
// UserStore interface. It accepts a database connection or transaction
// that should be initialized and managed by the caller.
func NewPostgresUserStore(db store.DBTX, log *slog.Logger) *PostgresUserStore {
	if db == nil {
		panic("db cannot be nil")
	}

	if log == nil {
		log = slog.Default()
	}

	return &PostgresUserStore{
		db:     db,
		logger: log.With(slog.String("component", "user_store")),
	}
}

// Ensure PostgresUserStore implements store.UserStore interface
var _ store.UserStore = (*PostgresUserStore)(nil)

// WithTx implements store.UserStore.WithTx
func (s *PostgresUserStore) WithTx(tx *sql.Tx) store.UserStore {
	return &PostgresUserStore{
		db:     tx,
		logger: s.logger,
	}
}

// Create implements store.UserStore.Create
// Returns store.ErrEmailExists if the email is already taken.
func (s *PostgresUserStore) Create(ctx context.Context, user *domain.User) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if user.HashedPassword == "" {
		return domain.ErrEmptyHashedPassword
	}

	query := `
		INSERT INTO users (id, name, email, hashed_password, image_url, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`
	_, err := s.db.ExecContext(
		ctx,
		query,
		user.ID,
		user.Name,
		user.Email,
		user.HashedPassword,
		user.ImageURL,
		user.CreatedAt,
		user.UpdatedAt,
	)

	if err != nil {
		if isUniqueViolation(err) {
			log.Debug("attempted to create user with existing email",
				slog.String("user_id", user.ID.String()))
			return store.ErrEmailExists
		}

		log.Error("failed to create user",
			slog.String("error", err.Error()),
			slog.String("user_id", user.ID.String()))
		return mapError(err)
	}

	log.Info("user created successfully",
		slog.String("user_id", user.ID.String()))
	return nil
}

// GetByID implements store.UserStore.GetByID
// The returned user includes the places set loaded from the membership table.
func (s *PostgresUserStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		SELECT id, name, email, hashed_password, image_url, created_at, updated_at
		FROM users
		WHERE id = $1
	`

	var user domain.User
	err := s.db.QueryRowContext(ctx, query, id).Scan(
		&user.ID,
		&user.Name,
		&user.Email,
		&user.HashedPassword,
		&user.ImageURL,
		&user.CreatedAt,
		&user.UpdatedAt,
	)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Debug("user not found", slog.String("user_id", id.String()))
			return nil, store.ErrUserNotFound
		}
		log.Error("failed to get user by ID",
			slog.String("error", err.Error()),
			slog.String("user_id", id.String()))
		return nil, mapError(err)
	}

	places, err := s.loadPlaces(ctx, user.ID)
	if err != nil {
		log.Error("failed to load user places",
			slog.String("error", err.Error()),
			slog.String("user_id", id.String()))
		return nil, mapError(err)
	}
	user.Places = places

	return &user, nil
}

// GetByEmail implements store.UserStore.GetByEmail
func (s *PostgresUserStore) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		SELECT id, name, email, hashed_password, image_url, created_at, updated_at
		FROM users
		WHERE email = $1
	`

	var user domain.User
	err := s.db.QueryRowContext(ctx, query, email).Scan(
		&user.ID,
		&user.Name,
		&user.Email,
		&user.HashedPassword,
		&user.ImageURL,
		&user.CreatedAt,
		&user.UpdatedAt,
	)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Debug("user not found by email")
			return nil, store.ErrUserNotFound
		}
		log.Error("failed to get user by email",
			slog.String("error", err.Error()))
		return nil, mapError(err)
	}

	places, err := s.loadPlaces(ctx, user.ID)
	if err != nil {
		log.Error("failed to load user places",
			slog.String("error", err.Error()),
			slog.String("user_id", user.ID.String()))
		return nil, mapError(err)
	}
	user.Places = places

	return &user, nil
}

// List implements store.UserStore.List
func (s *PostgresUserStore) List(ctx context.Context) ([]*domain.User, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		SELECT u.id, u.name, u.email, u.hashed_password, u.image_url,
		       u.created_at, u.updated_at
		FROM users u
		ORDER BY u.created_at ASC
	`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		log.Error("failed to query users", slog.String("error", err.Error()))
		return nil, mapError(err)
	}
	defer func() {
		if err := rows.Close(); err != nil {
			log.Error("failed to close rows", slog.String("error", err.Error()))
		}
	}()

	users := []*domain.User{}
	for rows.Next() {
		var user domain.User
		err := rows.Scan(
			&user.ID,
			&user.Name,
			&user.Email,
			&user.HashedPassword,
			&user.ImageURL,
			&user.CreatedAt,
			&user.UpdatedAt,
		)
		if err != nil {
			log.Error("failed to scan user row", slog.String("error", err.Error()))
			return nil, mapError(err)
		}
		users = append(users, &user)
	}

	if err := rows.Err(); err != nil {
		log.Error("error after scanning rows", slog.String("error", err.Error()))
		return nil, mapError(err)
	}

	for _, user := range users {
		places, err := s.loadPlaces(ctx, user.ID)
		if err != nil {
			log.Error("failed to load user places",
				slog.String("error", err.Error()),
				slog.String("user_id", user.ID.String()))
			return nil, mapError(err)
		}
		user.Places = places
	}

	return users, nil
}

// AddPlace implements store.UserStore.AddPlace
func (s *PostgresUserStore) AddPlace(ctx context.Context, userID, placeID uuid.UUID) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		INSERT INTO user_places (user_id, place_id)
		VALUES ($1, $2)
	`

	_, err := s.db.ExecContext(ctx, query, userID, placeID)
	if err != nil {
		mapped := mapError(err)
		if errors.Is(mapped, store.ErrInvalidEntity) {
			log.Warn("dangling reference while appending to places set",
				slog.String("user_id", userID.String()),
				slog.String("place_id", placeID.String()))
			return fmt.Errorf("%w: user %s", store.ErrUserNotFound, userID)
		}
		log.Error("failed to append to user places set",
			slog.String("error", err.Error()),
			slog.String("user_id", userID.String()),
			slog.String("place_id", placeID.String()))
		return mapped
	}

	log.Debug("place appended to user places set",
		slog.String("user_id", userID.String()),
		slog.String("place_id", placeID.String()))
	return nil
}

// RemovePlace implements store.UserStore.RemovePlace
func (s *PostgresUserStore) RemovePlace(ctx context.Context, userID, placeID uuid.UUID) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		DELETE FROM user_places
		WHERE user_id = $1 AND place_id = $2
	`

	result, err := s.db.ExecContext(ctx, query, userID, placeID)
	if err != nil {
		log.Error("failed to remove from user places set",
			slog.String("error", err.Error()),
			slog.String("user_id", userID.String()),
			slog.String("place_id", placeID.String()))
		return mapError(err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		log.Error("failed to get rows affected",
			slog.String("error", err.Error()),
			slog.String("user_id", userID.String()))
		return mapError(err)
	}

	if rowsAffected == 0 {
		log.Debug("membership row not found for removal",
			slog.String("user_id", userID.String()),
			slog.String("place_id", placeID.String()))
		return store.ErrUserNotFound
	}

	log.Debug("place removed from user places set",
		slog.String("user_id", userID.String()),
		slog.String("place_id", placeID.String()))
	return nil
}

// loadPlaces fetches the ordered set of place IDs owned by the user.
func (s *PostgresUserStore) loadPlaces(ctx context.Context, userID uuid.UUID) ([]uuid.UUID, error) {
	query := `
		SELECT place_id
		FROM user_places
		WHERE user_id = $1
	`

	rows, err := s.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = rows.Close()
	}()

	places := []uuid.UUID{}
	for rows.Next() {
		var id uuid.UUID
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		places = append(places, id)
	}

	return places, rows.Err()
}
