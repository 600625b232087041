package mocks

import (
	"context"

	"github.com/ShriduttPatel121/MERN-BACKEND/internal/domain"
	"github.com/ShriduttPatel121/MERN-BACKEND/internal/platform/geocoding"
)

// MockGeocoder implements geocoding.Geocoder for testing
type MockGeocoder struct {
	// ResolveFn allows test cases to mock the Resolve behavior
	ResolveFn func(ctx context.Context, address string) (domain.Location, error)

	// Default values used when ResolveFn isn't defined
	Location domain.Location
	Err      error

	// ResolveCalledWith stores the last address passed to Resolve
	ResolveCalledWith string

	// ResolveCallCount tracks how many times Resolve was called
	ResolveCallCount int
}

// Ensure MockGeocoder implements geocoding.Geocoder
var _ geocoding.Geocoder = (*MockGeocoder)(nil)

// Resolve implements the geocoding.Geocoder interface
func (m *MockGeocoder) Resolve(ctx context.Context, address string) (domain.Location, error) {
	m.ResolveCalledWith = address
	m.ResolveCallCount++

	if m.ResolveFn != nil {
		return m.ResolveFn(ctx, address)
	}
	return m.Location, m.Err
}
