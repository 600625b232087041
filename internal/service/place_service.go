package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/ShriduttPatel121/MERN-BACKEND/internal/domain"
	"github.com/ShriduttPatel121/MERN-BACKEND/internal/platform/geocoding"
	"github.com/ShriduttPatel121/MERN-BACKEND/internal/store"
)

// defaultPlaceImageURL is used when a create request carries no image.
const defaultPlaceImageURL = "https://upload.wikimedia.org/wikipedia/commons/d/df/NYC_Empire_State_Building.jpg"

// PlaceService provides place-related operations. Mutations that touch both
// a place row and its creator's places set run inside a single transaction so
// the two sides can never diverge.
type PlaceService interface {
	// CreatePlace geocodes the address, verifies the creator exists, and
	// atomically inserts the place while appending its ID to the creator's
	// places set. No partial state survives a failure at any step.
	CreatePlace(ctx context.Context, input CreatePlaceInput) (*domain.Place, error)

	// UpdatePlace rewrites the title and description of an existing place.
	// Only the owner may update; others get ErrNotOwned.
	UpdatePlace(ctx context.Context, placeID, requesterID uuid.UUID, title, description string) (*domain.Place, error)

	// DeletePlace atomically removes the place and its membership in the
	// creator's places set. Only the owner may delete.
	DeletePlace(ctx context.Context, placeID, requesterID uuid.UUID) error

	// GetPlace retrieves a single place by ID.
	GetPlace(ctx context.Context, placeID uuid.UUID) (*domain.Place, error)

	// ListPlacesByCreator returns all places created by the given user,
	// newest first. An existing user with no places yields an empty slice.
	ListPlacesByCreator(ctx context.Context, creatorID uuid.UUID) ([]*domain.Place, error)
}

// CreatePlaceInput carries the caller-supplied fields for a new place.
type CreatePlaceInput struct {
	Title       string
	Description string
	Address     string
	ImageURL    string
	CreatorID   uuid.UUID
}

// PlaceServiceImpl implements the PlaceService interface
type PlaceServiceImpl struct {
	placeStore store.PlaceStore
	userStore  store.UserStore
	geocoder   geocoding.Geocoder
	db         *sql.DB
	logger     *slog.Logger
}

// Ensure PlaceServiceImpl implements PlaceService
var _ PlaceService = (*PlaceServiceImpl)(nil)

// NewPlaceService creates a new PlaceService
func NewPlaceService(
	placeStore store.PlaceStore,
	userStore store.UserStore,
	geocoder geocoding.Geocoder,
	db *sql.DB,
	logger *slog.Logger,
) *PlaceServiceImpl {
	if logger == nil {
		logger = slog.Default()
	}

	return &PlaceServiceImpl{
		placeStore: placeStore,
		userStore:  userStore,
		geocoder:   geocoder,
		db:         db,
		logger:     logger.With("component", "place_service"),
	}
}

// CreatePlace implements PlaceService.CreatePlace
func (s *PlaceServiceImpl) CreatePlace(ctx context.Context, input CreatePlaceInput) (*domain.Place, error) {
	// Geocode before opening the transaction: a failed resolution must leave
	// no trace in the database, and the gateway call can be slow.
	location, err := s.geocoder.Resolve(ctx, input.Address)
	if err != nil {
		s.logger.Debug("failed to geocode address for new place",
			"error", err,
			"creator_id", input.CreatorID)
		return nil, NewPlaceServiceError("create", err)
	}

	if _, err := s.userStore.GetByID(ctx, input.CreatorID); err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			s.logger.Debug("creator does not exist",
				"creator_id", input.CreatorID)
			return nil, NewPlaceServiceError("create", ErrCreatorNotFound)
		}
		s.logger.Error("failed to look up creator",
			"error", err,
			"creator_id", input.CreatorID)
		return nil, NewPlaceServiceError("create", err)
	}

	imageURL := input.ImageURL
	if imageURL == "" {
		imageURL = defaultPlaceImageURL
	}

	place, err := domain.NewPlace(
		input.Title,
		input.Description,
		input.Address,
		imageURL,
		location,
		input.CreatorID,
	)
	if err != nil {
		s.logger.Debug("failed to create place object",
			"error", err,
			"creator_id", input.CreatorID)
		return nil, NewPlaceServiceError("create", err)
	}

	err = store.RunInTransaction(ctx, s.db, func(ctx context.Context, tx *sql.Tx) error {
		txPlaceStore := s.placeStore.WithTx(tx)
		txUserStore := s.userStore.WithTx(tx)

		if err := txPlaceStore.Create(ctx, place); err != nil {
			return err
		}
		return txUserStore.AddPlace(ctx, place.CreatorID, place.ID)
	})

	if err != nil {
		s.logger.Error("failed to save place in transaction",
			"error", err,
			"place_id", place.ID,
			"creator_id", place.CreatorID)
		return nil, NewPlaceServiceError("create", err)
	}

	s.logger.Info("place created in transaction",
		"place_id", place.ID,
		"creator_id", place.CreatorID)

	return place, nil
}

// UpdatePlace implements PlaceService.UpdatePlace
func (s *PlaceServiceImpl) UpdatePlace(
	ctx context.Context,
	placeID, requesterID uuid.UUID,
	title, description string,
) (*domain.Place, error) {
	place, err := s.placeStore.GetByID(ctx, placeID)
	if err != nil {
		if errors.Is(err, store.ErrPlaceNotFound) {
			s.logger.Debug("place not found for update",
				"place_id", placeID)
		} else {
			s.logger.Error("failed to load place for update",
				"error", err,
				"place_id", placeID)
		}
		return nil, NewPlaceServiceError("update", err)
	}

	if place.CreatorID != requesterID {
		s.logger.Warn("update rejected: requester does not own place",
			"place_id", placeID,
			"creator_id", place.CreatorID,
			"requester_id", requesterID)
		return nil, NewPlaceServiceError("update", ErrNotOwned)
	}

	if err := place.UpdateDetails(title, description); err != nil {
		s.logger.Debug("invalid place update",
			"error", err,
			"place_id", placeID)
		return nil, NewPlaceServiceError("update", err)
	}

	if err := s.placeStore.Update(ctx, place); err != nil {
		s.logger.Error("failed to update place",
			"error", err,
			"place_id", placeID)
		return nil, NewPlaceServiceError("update", err)
	}

	s.logger.Info("place updated",
		"place_id", placeID)

	return place, nil
}

// DeletePlace implements PlaceService.DeletePlace
func (s *PlaceServiceImpl) DeletePlace(ctx context.Context, placeID, requesterID uuid.UUID) error {
	place, err := s.placeStore.GetByID(ctx, placeID)
	if err != nil {
		if errors.Is(err, store.ErrPlaceNotFound) {
			s.logger.Debug("place not found for delete",
				"place_id", placeID)
		} else {
			s.logger.Error("failed to load place for delete",
				"error", err,
				"place_id", placeID)
		}
		return NewPlaceServiceError("delete", err)
	}

	if place.CreatorID != requesterID {
		s.logger.Warn("delete rejected: requester does not own place",
			"place_id", placeID,
			"creator_id", place.CreatorID,
			"requester_id", requesterID)
		return NewPlaceServiceError("delete", ErrNotOwned)
	}

	err = store.RunInTransaction(ctx, s.db, func(ctx context.Context, tx *sql.Tx) error {
		txPlaceStore := s.placeStore.WithTx(tx)
		txUserStore := s.userStore.WithTx(tx)

		if err := txUserStore.RemovePlace(ctx, place.CreatorID, place.ID); err != nil {
			// A missing membership row means the set was already out of
			// step with the place row; surface it so the delete rolls back.
			return fmt.Errorf("removing place from creator set: %w", err)
		}
		return txPlaceStore.Delete(ctx, place.ID)
	})

	if err != nil {
		s.logger.Error("failed to delete place in transaction",
			"error", err,
			"place_id", placeID)
		return NewPlaceServiceError("delete", err)
	}

	s.logger.Info("place deleted in transaction",
		"place_id", placeID,
		"creator_id", place.CreatorID)

	return nil
}

// GetPlace implements PlaceService.GetPlace
func (s *PlaceServiceImpl) GetPlace(ctx context.Context, placeID uuid.UUID) (*domain.Place, error) {
	place, err := s.placeStore.GetByID(ctx, placeID)
	if err != nil {
		if errors.Is(err, store.ErrPlaceNotFound) {
			s.logger.Debug("place not found",
				"place_id", placeID)
		} else {
			s.logger.Error("failed to retrieve place",
				"error", err,
				"place_id", placeID)
		}
		return nil, NewPlaceServiceError("get", err)
	}

	return place, nil
}

// ListPlacesByCreator implements PlaceService.ListPlacesByCreator
func (s *PlaceServiceImpl) ListPlacesByCreator(ctx context.Context, creatorID uuid.UUID) ([]*domain.Place, error) {
	if _, err := s.userStore.GetByID(ctx, creatorID); err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			s.logger.Debug("creator not found for place listing",
				"creator_id", creatorID)
			return nil, NewPlaceServiceError("list", ErrCreatorNotFound)
		}
		s.logger.Error("failed to look up creator for place listing",
			"error", err,
			"creator_id", creatorID)
		return nil, NewPlaceServiceError("list", err)
	}

	places, err := s.placeStore.ListByCreator(ctx, creatorID)
	if err != nil {
		s.logger.Error("failed to list places by creator",
			"error", err,
			"creator_id", creatorID)
		return nil, NewPlaceServiceError("list", err)
	}

	return places, nil
}
