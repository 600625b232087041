// Package service contains the application services that orchestrate domain
// objects, stores, and external gateways. Services own transaction
// boundaries: any mutation spanning more than one table runs through
// store.RunInTransaction with transaction-aware store instances.
package service
