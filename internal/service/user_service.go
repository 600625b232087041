package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/ShriduttPatel121/MERN-BACKEND/internal/domain"
	"github.com/ShriduttPatel121/MERN-BACKEND/internal/service/auth"
	"github.com/ShriduttPatel121/MERN-BACKEND/internal/store"
)

// UserService provides account-related operations
type UserService interface {
	// SignUp registers a new account. The plaintext password is hashed before
	// anything is persisted and never stored. Returns store.ErrEmailExists if
	// the email is already taken.
	SignUp(ctx context.Context, name, email, password, imageURL string) (*domain.User, error)

	// GetUser retrieves a user by their ID
	GetUser(ctx context.Context, userID uuid.UUID) (*domain.User, error)

	// ListUsers returns every registered account. Password hashes are carried
	// on the domain object but never serialized.
	ListUsers(ctx context.Context) ([]*domain.User, error)
}

// UserServiceImpl implements the UserService interface
type UserServiceImpl struct {
	userStore store.UserStore
	hasher    auth.PasswordHasher
	db        *sql.DB
	logger    *slog.Logger
}

// Ensure UserServiceImpl implements UserService
var _ UserService = (*UserServiceImpl)(nil)

// NewUserService creates a new UserService
func NewUserService(
	userStore store.UserStore,
	hasher auth.PasswordHasher,
	db *sql.DB,
	logger *slog.Logger,
) *UserServiceImpl {
	if logger == nil {
		logger = slog.Default()
	}

	return &UserServiceImpl{
		userStore: userStore,
		hasher:    hasher,
		db:        db,
		logger:    logger.With("component", "user_service"),
	}
}

// SignUp registers a new account with a hashed password.
func (s *UserServiceImpl) SignUp(
	ctx context.Context,
	name, email, password, imageURL string,
) (*domain.User, error) {
	user, err := domain.NewUser(name, email, password, imageURL)
	if err != nil {
		s.logger.Debug("failed to create user object",
			"error", err)
		return nil, fmt.Errorf("failed to sign up: %w", err)
	}

	hashed, err := s.hasher.Hash(user.Password)
	if err != nil {
		s.logger.Error("failed to hash password",
			"error", err,
			"user_id", user.ID)
		return nil, fmt.Errorf("failed to sign up: %w", err)
	}
	user.HashedPassword = hashed
	user.Password = ""

	err = store.RunInTransaction(ctx, s.db, func(ctx context.Context, tx *sql.Tx) error {
		txStore := s.userStore.WithTx(tx)
		return txStore.Create(ctx, user)
	})

	if err != nil {
		if errors.Is(err, store.ErrEmailExists) {
			s.logger.Debug("attempted to sign up with existing email",
				"user_id", user.ID)
		} else {
			s.logger.Error("failed to save user to database",
				"error", err,
				"user_id", user.ID)
		}
		return nil, fmt.Errorf("failed to sign up: %w", err)
	}

	s.logger.Info("user signed up successfully",
		"user_id", user.ID)

	return user, nil
}

// GetUser retrieves a user by their ID
func (s *UserServiceImpl) GetUser(ctx context.Context, userID uuid.UUID) (*domain.User, error) {
	user, err := s.userStore.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			s.logger.Debug("user not found",
				"user_id", userID)
		} else {
			s.logger.Error("failed to retrieve user",
				"error", err,
				"user_id", userID)
		}
		return nil, fmt.Errorf("failed to retrieve user: %w", err)
	}

	return user, nil
}

// ListUsers returns every registered account.
func (s *UserServiceImpl) ListUsers(ctx context.Context) ([]*domain.User, error) {
	users, err := s.userStore.List(ctx)
	if err != nil {
		s.logger.Error("failed to list users",
			"error", err)
		return nil, fmt.Errorf("failed to list users: %w", err)
	}

	s.logger.Debug("listed users",
		"count", len(users))
	return users, nil
}
