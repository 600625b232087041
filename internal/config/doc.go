// Package config defines the application configuration structure and
// loading logic. Configuration comes from environment variables (PLACES_
// prefix) layered over an optional config.yaml, and is validated before
// the application starts.
package config
