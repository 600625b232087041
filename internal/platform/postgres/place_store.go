package postgres

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"

	"github.com/google/uuid"

	"github.com/ShriduttPatel121/MERN-BACKEND/internal/domain"
	"github.com/ShriduttPatel121/MERN-BACKEND/internal/platform/logger"
	"github.com/ShriduttPatel121/MERN-BACKEND/internal/store"
)

// PostgresPlaceStore implements the store.PlaceStore interface
// using a PostgreSQL database as the storage backend.
type PostgresPlaceStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresPlaceStore creates a new PostgreSQL implementation of the
// PlaceStore interface. It accepts a database connection or transaction
// that should be initialized and managed by the caller.
func NewPostgresPlaceStore(db store.DBTX, log *slog.Logger) *PostgresPlaceStore {
	if db == nil {
		panic("db cannot be nil")
	}

	if log == nil {
		log = slog.Default()
	}

	return &PostgresPlaceStore{
		db:     db,
		logger: log.With(slog.String("component", "place_store")),
	}
}

// Ensure PostgresPlaceStore implements store.PlaceStore interface
var _ store.PlaceStore = (*PostgresPlaceStore)(nil)

// WithTx implements store.PlaceStore.WithTx
func (s *PostgresPlaceStore) WithTx(tx *sql.Tx) store.PlaceStore {
	return &PostgresPlaceStore{
		db:     tx,
		logger: s.logger,
	}
}

// Create implements store.PlaceStore.Create
// Returns store.ErrInvalidEntity if the creator reference is dangling.
func (s *PostgresPlaceStore) Create(ctx context.Context, place *domain.Place) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := place.Validate(); err != nil {
		log.Warn("place validation failed during create",
			slog.String("error", err.Error()),
			slog.String("place_id", place.ID.String()))
		return err
	}

	query := `
		INSERT INTO places (id, title, description, address, latitude, longitude,
		                    image_url, creator_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`
	_, err := s.db.ExecContext(
		ctx,
		query,
		place.ID,
		place.Title,
		place.Description,
		place.Address,
		place.Location.Lat,
		place.Location.Lng,
		place.ImageURL,
		place.CreatorID,
		place.CreatedAt,
		place.UpdatedAt,
	)

	if err != nil {
		log.Error("failed to create place",
			slog.String("error", err.Error()),
			slog.String("place_id", place.ID.String()),
			slog.String("creator_id", place.CreatorID.String()))
		return mapError(err)
	}

	log.Info("place created successfully",
		slog.String("place_id", place.ID.String()),
		slog.String("creator_id", place.CreatorID.String()))
	return nil
}

// GetByID implements store.PlaceStore.GetByID
func (s *PostgresPlaceStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.Place, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		SELECT id, title, description, address, latitude, longitude,
		       image_url, creator_id, created_at, updated_at
		FROM places
		WHERE id = $1
	`

	var place domain.Place
	err := s.db.QueryRowContext(ctx, query, id).Scan(
		&place.ID,
		&place.Title,
		&place.Description,
		&place.Address,
		&place.Location.Lat,
		&place.Location.Lng,
		&place.ImageURL,
		&place.CreatorID,
		&place.CreatedAt,
		&place.UpdatedAt,
	)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Debug("place not found", slog.String("place_id", id.String()))
			return nil, store.ErrPlaceNotFound
		}
		log.Error("failed to get place by ID",
			slog.String("error", err.Error()),
			slog.String("place_id", id.String()))
		return nil, mapError(err)
	}

	return &place, nil
}

// ListByCreator implements store.PlaceStore.ListByCreator
// Returns an empty slice if the user created no places.
func (s *PostgresPlaceStore) ListByCreator(ctx context.Context, creatorID uuid.UUID) ([]*domain.Place, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		SELECT id, title, description, address, latitude, longitude,
		       image_url, creator_id, created_at, updated_at
		FROM places
		WHERE creator_id = $1
		ORDER BY created_at DESC
	`

	rows, err := s.db.QueryContext(ctx, query, creatorID)
	if err != nil {
		log.Error("failed to query places by creator",
			slog.String("error", err.Error()),
			slog.String("creator_id", creatorID.String()))
		return nil, mapError(err)
	}
	defer func() {
		if err := rows.Close(); err != nil {
			log.Error("failed to close rows", slog.String("error", err.Error()))
		}
	}()

	places := []*domain.Place{}
	for rows.Next() {
		var place domain.Place
		err := rows.Scan(
			&place.ID,
			&place.Title,
			&place.Description,
			&place.Address,
			&place.Location.Lat,
			&place.Location.Lng,
			&place.ImageURL,
			&place.CreatorID,
			&place.CreatedAt,
			&place.UpdatedAt,
		)
		if err != nil {
			log.Error("failed to scan place row", slog.String("error", err.Error()))
			return nil, mapError(err)
		}
		places = append(places, &place)
	}

	if err := rows.Err(); err != nil {
		log.Error("error after scanning rows", slog.String("error", err.Error()))
		return nil, mapError(err)
	}

	log.Debug("listed places by creator",
		slog.String("creator_id", creatorID.String()),
		slog.Int("count", len(places)))
	return places, nil
}

// Update implements store.PlaceStore.Update
// Only title and description are written; all other columns are immutable.
func (s *PostgresPlaceStore) Update(ctx context.Context, place *domain.Place) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := place.Validate(); err != nil {
		log.Warn("place validation failed during update",
			slog.String("error", err.Error()),
			slog.String("place_id", place.ID.String()))
		return err
	}

	query := `
		UPDATE places
		SET title = $1, description = $2, updated_at = $3
		WHERE id = $4
	`

	result, err := s.db.ExecContext(
		ctx,
		query,
		place.Title,
		place.Description,
		place.UpdatedAt,
		place.ID,
	)

	if err != nil {
		log.Error("failed to update place",
			slog.String("error", err.Error()),
			slog.String("place_id", place.ID.String()))
		return mapError(err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		log.Error("failed to get rows affected",
			slog.String("error", err.Error()),
			slog.String("place_id", place.ID.String()))
		return mapError(err)
	}

	if rowsAffected == 0 {
		log.Debug("place not found for update",
			slog.String("place_id", place.ID.String()))
		return store.ErrPlaceNotFound
	}

	log.Info("place updated successfully",
		slog.String("place_id", place.ID.String()))
	return nil
}

// Delete implements store.PlaceStore.Delete
func (s *PostgresPlaceStore) Delete(ctx context.Context, id uuid.UUID) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		DELETE FROM places
		WHERE id = $1
	`

	result, err := s.db.ExecContext(ctx, query, id)
	if err != nil {
		log.Error("failed to delete place",
			slog.String("error", err.Error()),
			slog.String("place_id", id.String()))
		return mapError(err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		log.Error("failed to get rows affected",
			slog.String("error", err.Error()),
			slog.String("place_id", id.String()))
		return mapError(err)
	}

	if rowsAffected == 0 {
		log.Debug("place not found for delete",
			slog.String("place_id", id.String()))
		return store.ErrPlaceNotFound
	}

	log.Info("place deleted successfully",
		slog.String("place_id", id.String()))
	return nil
}
