// Package store defines persistence interfaces for the domain entities
// together with the shared error taxonomy and the transaction helper used
// to make multi-entity mutations atomic. Concrete implementations live in
// internal/platform/postgres.
package store
