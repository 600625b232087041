// Package geocoding provides a client for the external geocoding gateway
// that translates a postal address into a coordinate pair. The gateway is
// treated as opaque: any upstream failure surfaces as one of the two
// sentinel errors below.
package geocoding

import (
	"context"
	"errors"

	"github.com/ShriduttPatel121/MERN-BACKEND/internal/domain"
)

// Common geocoding errors
var (
	// ErrAddressNotFound indicates the gateway could not resolve the
	// address to any location.
	ErrAddressNotFound = errors.New("address could not be resolved")

	// ErrGatewayUnavailable indicates the gateway was unreachable or
	// returned a malformed or non-success response.
	ErrGatewayUnavailable = errors.New("geocoding gateway unavailable")
)

// Geocoder resolves a postal address to coordinates.
type Geocoder interface {
	// Resolve returns the coordinates for the given address text.
	// Returns ErrAddressNotFound if the gateway knows no such address,
	// or ErrGatewayUnavailable for transport and upstream failures.
	Resolve(ctx context.Context, address string) (domain.Location, error)
}
