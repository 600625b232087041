package auth

import (
	"context"
	"errors"
	"log/slog"

	"github.com/google/uuid"

	"github.com/ShriduttPatel121/MERN-BACKEND/internal/platform/logger"
	"github.com/ShriduttPatel121/MERN-BACKEND/internal/store"
)

// AuthenticatedUser is the result of a successful credential check:
// the account identity plus a freshly signed session token.
type AuthenticatedUser struct {
	UserID uuid.UUID
	Name   string
	Email  string
	Token  string
}

// Service authenticates email/password credentials and issues session tokens.
type Service struct {
	userStore  store.UserStore
	verifier   PasswordVerifier
	jwtService JWTService
	logger     *slog.Logger
}

// NewService creates a new authentication service.
func NewService(
	userStore store.UserStore,
	verifier PasswordVerifier,
	jwtService JWTService,
	log *slog.Logger,
) *Service {
	if log == nil {
		log = slog.Default()
	}

	return &Service{
		userStore:  userStore,
		verifier:   verifier,
		jwtService: jwtService,
		logger:     log.With(slog.String("component", "auth_service")),
	}
}

// Authenticate checks the credentials against the stored hash and, on
// success, returns the user identity with a signed session token.
// Unknown email and wrong password both return ErrInvalidCredentials so the
// response gives no hint about which part was wrong.
func (s *Service) Authenticate(ctx context.Context, email, password string) (*AuthenticatedUser, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	user, err := s.userStore.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			log.Debug("authentication failed: unknown email")
			return nil, ErrInvalidCredentials
		}
		log.Error("failed to look up user during authentication",
			slog.String("error", err.Error()))
		return nil, err
	}

	if err := s.verifier.Compare(user.HashedPassword, password); err != nil {
		log.Debug("authentication failed: password mismatch",
			slog.String("user_id", user.ID.String()))
		return nil, ErrInvalidCredentials
	}

	token, err := s.jwtService.GenerateToken(ctx, user.ID)
	if err != nil {
		log.Error("failed to issue session token",
			slog.String("error", err.Error()),
			slog.String("user_id", user.ID.String()))
		return nil, err
	}

	log.Info("user authenticated",
		slog.String("user_id", user.ID.String()))

	return &AuthenticatedUser{
		UserID: user.ID,
		Name:   user.Name,
		Email:  user.Email,
		Token:  token,
	}, nil
}
