// Package domain contains the core entities of the places application:
// users and the places they create. Entities validate themselves; all
// persistence concerns live in the store packages.
package domain
