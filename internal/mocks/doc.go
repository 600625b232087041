// Package mocks provides centralized mock implementations for testing.
//
// Instead of defining inline mocks in individual test files, these
// standardized implementations can be reused across test packages. Each mock
// exposes function fields so a test can override exactly the methods it cares
// about; unset methods fall back to a simple in-memory default.
package mocks
