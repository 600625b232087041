// Package postgres provides PostgreSQL implementations of the store
// interfaces. All stores accept a store.DBTX so they can run either on a
// plain connection or inside a transaction threaded in by a service.
package postgres
