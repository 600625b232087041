package api

import (
	"log/slog"
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/ShriduttPatel121/MERN-BACKEND/internal/api/shared"
	"github.com/ShriduttPatel121/MERN-BACKEND/internal/service"
)

// PlaceHandler handles place-related API requests.
type PlaceHandler struct {
	placeService service.PlaceService
	validator    *validator.Validate
	logger       *slog.Logger
}

// NewPlaceHandler creates a new PlaceHandler with the given dependencies.
func NewPlaceHandler(placeService service.PlaceService, log *slog.Logger) *PlaceHandler {
	if log == nil {
		log = slog.Default()
	}

	return &PlaceHandler{
		placeService: placeService,
		validator:    validator.New(),
		logger:       log.With(slog.String("component", "place_handler")),
	}
}

// CreatePlace handles POST /api/places.
// The creator is always the authenticated user; the request cannot name a
// different creator, and coordinates are derived from the address.
func (h *PlaceHandler) CreatePlace(w http.ResponseWriter, r *http.Request) {
	userID, ok := getUserIDFromContext(r)
	if !ok {
		h.logger.Warn("user ID not found in request context")
		shared.RespondWithError(w, r, http.StatusUnauthorized, "Authentication required")
		return
	}

	var req CreatePlaceRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, SanitizeValidationError(err))
		return
	}

	place, err := h.placeService.CreatePlace(r.Context(), service.CreatePlaceInput{
		Title:       req.Title,
		Description: req.Description,
		Address:     req.Address,
		ImageURL:    req.ImageURL,
		CreatorID:   userID,
	})
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusCreated, newPlaceResponse(place))
}

// GetPlace handles GET /api/places/{id}.
func (h *PlaceHandler) GetPlace(w http.ResponseWriter, r *http.Request) {
	id, err := getPathUUID(r, "id")
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	place, err := h.placeService.GetPlace(r.Context(), id)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, newPlaceResponse(place))
}

// ListPlacesByUser handles GET /api/users/{id}/places.
func (h *PlaceHandler) ListPlacesByUser(w http.ResponseWriter, r *http.Request) {
	creatorID, err := getPathUUID(r, "id")
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	places, err := h.placeService.ListPlacesByCreator(r.Context(), creatorID)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	resp := PlaceListResponse{Places: make([]PlaceResponse, 0, len(places))}
	for _, place := range places {
		resp.Places = append(resp.Places, newPlaceResponse(place))
	}

	shared.RespondWithJSON(w, r, http.StatusOK, resp)
}

// UpdatePlace handles PATCH /api/places/{id}.
func (h *PlaceHandler) UpdatePlace(w http.ResponseWriter, r *http.Request) {
	userID, placeID, ok := handleUserIDAndPathUUID(w, r, "id", h.logger)
	if !ok {
		return
	}

	var req UpdatePlaceRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, SanitizeValidationError(err))
		return
	}

	place, err := h.placeService.UpdatePlace(r.Context(), placeID, userID, req.Title, req.Description)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, newPlaceResponse(place))
}

// DeletePlace handles DELETE /api/places/{id}.
func (h *PlaceHandler) DeletePlace(w http.ResponseWriter, r *http.Request) {
	userID, placeID, ok := handleUserIDAndPathUUID(w, r, "id", h.logger)
	if !ok {
		return
	}

	if err := h.placeService.DeletePlace(r.Context(), placeID, userID); err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, map[string]string{
		"message": "Deleted place.",
	})
}
