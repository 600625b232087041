package api

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/ShriduttPatel121/MERN-BACKEND/internal/api/shared"
	"github.com/ShriduttPatel121/MERN-BACKEND/internal/service"
	"github.com/ShriduttPatel121/MERN-BACKEND/internal/service/auth"
	"github.com/ShriduttPatel121/MERN-BACKEND/internal/store"
)

// Authenticator checks credentials and issues a session token.
// Implemented by *auth.Service.
type Authenticator interface {
	Authenticate(ctx context.Context, email, password string) (*auth.AuthenticatedUser, error)
}

// AuthHandler handles signup and login API requests.
type AuthHandler struct {
	userService   service.UserService
	authenticator Authenticator
	jwtService    auth.JWTService
	validator     *validator.Validate
	logger        *slog.Logger
}

// NewAuthHandler creates a new AuthHandler with the given dependencies.
func NewAuthHandler(
	userService service.UserService,
	authenticator Authenticator,
	jwtService auth.JWTService,
	log *slog.Logger,
) *AuthHandler {
	if log == nil {
		log = slog.Default()
	}

	return &AuthHandler{
		userService:   userService,
		authenticator: authenticator,
		jwtService:    jwtService,
		validator:     validator.New(),
		logger:        log.With(slog.String("component", "auth_handler")),
	}
}

// Signup handles POST /api/users/signup.
func (h *AuthHandler) Signup(w http.ResponseWriter, r *http.Request) {
	var req SignupRequest

	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, SanitizeValidationError(err))
		return
	}

	user, err := h.userService.SignUp(r.Context(), req.Name, req.Email, req.Password, req.ImageURL)
	if err != nil {
		if errors.Is(err, store.ErrEmailExists) {
			shared.RespondWithError(w, r, http.StatusConflict, "Email already exists")
			return
		}
		HandleAPIError(w, r, err, "")
		return
	}

	token, err := h.jwtService.GenerateToken(r.Context(), user.ID)
	if err != nil {
		h.logger.Error("failed to generate token after signup",
			"error", err,
			"user_id", user.ID)
		shared.RespondWithError(w, r, http.StatusInternalServerError, "Failed to generate authentication token")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusCreated, AuthResponse{
		UserID: user.ID,
		Email:  user.Email,
		Token:  token,
	})
}

// Login handles POST /api/users/login.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest

	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, SanitizeValidationError(err))
		return
	}

	authenticated, err := h.authenticator.Authenticate(r.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, auth.ErrInvalidCredentials) {
			shared.RespondWithError(w, r, http.StatusUnauthorized, "Invalid credentials")
			return
		}
		HandleAPIError(w, r, err, "Failed to authenticate user")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, AuthResponse{
		UserID: authenticated.UserID,
		Email:  authenticated.Email,
		Token:  authenticated.Token,
	})
}
