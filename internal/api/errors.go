package api

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/ShriduttPatel121/MERN-BACKEND/internal/api/shared"
	"github.com/ShriduttPatel121/MERN-BACKEND/internal/domain"
	"github.com/ShriduttPatel121/MERN-BACKEND/internal/platform/geocoding"
	"github.com/ShriduttPatel121/MERN-BACKEND/internal/service"
	"github.com/ShriduttPatel121/MERN-BACKEND/internal/service/auth"
	"github.com/ShriduttPatel121/MERN-BACKEND/internal/store"
)

// MapErrorToStatusCode maps internal errors to appropriate HTTP status codes
// based on the error type. This prevents leaking internal error types or
// messages to clients.
func MapErrorToStatusCode(err error) int {
	switch {
	// Authentication errors
	case errors.Is(err, auth.ErrInvalidToken),
		errors.Is(err, auth.ErrExpiredToken),
		errors.Is(err, auth.ErrTokenNotYetValid),
		errors.Is(err, auth.ErrMissingToken),
		errors.Is(err, auth.ErrInvalidCredentials),
		errors.Is(err, domain.ErrUnauthorized):
		return http.StatusUnauthorized

	// Authorization errors
	case errors.Is(err, service.ErrNotOwned):
		return http.StatusForbidden

	// Not found errors
	case errors.Is(err, store.ErrUserNotFound),
		errors.Is(err, store.ErrPlaceNotFound),
		errors.Is(err, service.ErrCreatorNotFound):
		return http.StatusNotFound

	// Conflict errors
	case errors.Is(err, store.ErrEmailExists):
		return http.StatusConflict

	// Geocoding: a well-formed request naming an unresolvable address
	case errors.Is(err, geocoding.ErrAddressNotFound):
		return http.StatusUnprocessableEntity

	case errors.Is(err, geocoding.ErrGatewayUnavailable):
		return http.StatusBadGateway

	// Bad request errors
	case errors.Is(err, store.ErrInvalidEntity),
		errors.Is(err, domain.ErrValidation),
		errors.Is(err, domain.ErrInvalidID),
		isDomainValidationError(err):
		return http.StatusBadRequest

	// Default: internal server error
	default:
		return http.StatusInternalServerError
	}
}

// isDomainValidationError reports whether the error is one of the domain
// field-validation sentinels.
func isDomainValidationError(err error) bool {
	for _, sentinel := range []error{
		domain.ErrEmptyUserName,
		domain.ErrEmptyEmail,
		domain.ErrInvalidEmail,
		domain.ErrPasswordTooShort,
		domain.ErrPasswordTooLong,
		domain.ErrEmptyPassword,
		domain.ErrEmptyPlaceTitle,
		domain.ErrEmptyPlaceDescription,
		domain.ErrEmptyPlaceAddress,
		domain.ErrInvalidLocation,
	} {
		if errors.Is(err, sentinel) {
			return true
		}
	}
	return false
}

// GetSafeErrorMessage returns a sanitized, user-friendly error message
// based on the error type. This prevents leaking sensitive internal details.
func GetSafeErrorMessage(err error) string {
	if err == nil {
		return "An unexpected error occurred"
	}

	switch {
	// Authentication errors
	case errors.Is(err, auth.ErrInvalidToken),
		errors.Is(err, auth.ErrTokenNotYetValid):
		return "Invalid token"

	case errors.Is(err, auth.ErrExpiredToken):
		return "Token expired"

	case errors.Is(err, auth.ErrMissingToken),
		errors.Is(err, domain.ErrUnauthorized):
		return "Authentication required"

	case errors.Is(err, auth.ErrInvalidCredentials):
		return "Invalid credentials"

	// Authorization errors
	case errors.Is(err, service.ErrNotOwned):
		return "You do not own this place"

	// Not found errors
	case errors.Is(err, store.ErrUserNotFound),
		errors.Is(err, service.ErrCreatorNotFound):
		return "User not found"

	case errors.Is(err, store.ErrPlaceNotFound):
		return "Place not found"

	// Conflict errors
	case errors.Is(err, store.ErrEmailExists):
		return "Email already exists"

	// Geocoding errors
	case errors.Is(err, geocoding.ErrAddressNotFound):
		return "Could not find location for the specified address"

	case errors.Is(err, geocoding.ErrGatewayUnavailable):
		return "Location lookup is temporarily unavailable"

	// Bad request errors
	case errors.Is(err, store.ErrInvalidEntity):
		return "Invalid entity data"

	case isDomainValidationError(err), errors.Is(err, domain.ErrValidation):
		// Domain validation sentinels carry no sensitive data.
		return capitalizeFirst(unwrapValidationMessage(err))

	case errors.Is(err, domain.ErrInvalidID):
		return "Invalid identifier format"

	// Default case for unknown errors
	default:
		return "An unexpected error occurred"
	}
}

// unwrapValidationMessage digs the innermost message out of a ValidationError
// chain, falling back to the error text itself.
func unwrapValidationMessage(err error) string {
	var validationErr *domain.ValidationError
	if errors.As(err, &validationErr) {
		return fmt.Sprintf("%s %s", validationErr.Field, validationErr.Message)
	}
	return err.Error()
}

func capitalizeFirst(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

// HandleAPIError writes an error response using the standard status and
// message mapping. If defaultMsg is non-empty it overrides the mapped
// message, which is useful when the caller has more request context.
func HandleAPIError(w http.ResponseWriter, r *http.Request, err error, defaultMsg string) {
	status := MapErrorToStatusCode(err)

	message := GetSafeErrorMessage(err)
	if defaultMsg != "" {
		message = defaultMsg
	}

	shared.RespondWithErrorAndLog(w, r, status, message, err)
}

// SanitizeValidationError removes sensitive details from validator.Struct
// errors and returns a user-friendly message.
func SanitizeValidationError(err error) string {
	errMsg := err.Error()

	// Example format: "Key: 'LoginRequest.Email' Error:Field validation for 'Email' failed on the 'required' tag"
	if strings.Contains(errMsg, "Field validation") {
		parts := strings.Split(errMsg, "Error:")
		if len(parts) >= 2 {
			fieldParts := strings.Split(parts[1], "'")
			if len(fieldParts) >= 3 {
				field := fieldParts[1]
				var tag string
				if len(fieldParts) >= 5 {
					tag = fieldParts[3]
				}

				if tag != "" {
					return fmt.Sprintf("Invalid %s: %s", field, getValidationTagMessage(tag))
				}
				return fmt.Sprintf("Invalid %s", field)
			}
		}
	}

	return "Validation error"
}

// getValidationTagMessage maps validation tags to user-friendly error messages
func getValidationTagMessage(tag string) string {
	switch tag {
	case "required":
		return "required field"
	case "email":
		return "invalid email format"
	case "min":
		return "too short"
	case "max":
		return "too long"
	case "url":
		return "invalid URL"
	default:
		return "validation failed"
	}
}
