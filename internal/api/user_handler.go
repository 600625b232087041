package api

import (
	"log/slog"
	"net/http"

	"github.com/ShriduttPatel121/MERN-BACKEND/internal/api/shared"
	"github.com/ShriduttPatel121/MERN-BACKEND/internal/service"
)

// UserHandler handles user listing and lookup API requests.
type UserHandler struct {
	userService service.UserService
	logger      *slog.Logger
}

// NewUserHandler creates a new UserHandler with the given dependencies.
func NewUserHandler(userService service.UserService, log *slog.Logger) *UserHandler {
	if log == nil {
		log = slog.Default()
	}

	return &UserHandler{
		userService: userService,
		logger:      log.With(slog.String("component", "user_handler")),
	}
}

// ListUsers handles GET /api/users.
func (h *UserHandler) ListUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.userService.ListUsers(r.Context())
	if err != nil {
		HandleAPIError(w, r, err, "Failed to list users")
		return
	}

	resp := UserListResponse{Users: make([]UserResponse, 0, len(users))}
	for _, user := range users {
		resp.Users = append(resp.Users, newUserResponse(user))
	}

	shared.RespondWithJSON(w, r, http.StatusOK, resp)
}

// GetUser handles GET /api/users/{id}.
func (h *UserHandler) GetUser(w http.ResponseWriter, r *http.Request) {
	id, err := getPathUUID(r, "id")
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	user, err := h.userService.GetUser(r.Context(), id)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, newUserResponse(user))
}
