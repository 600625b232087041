package auth

import "errors"

// Common authentication service errors
var (
	// ErrInvalidToken indicates the token format is invalid or signature doesn't match
	ErrInvalidToken = errors.New("invalid authentication token")

	// ErrExpiredToken indicates the token has expired
	ErrExpiredToken = errors.New("authentication token has expired")

	// ErrTokenNotYetValid indicates the token is not yet valid (nbf claim in the future)
	ErrTokenNotYetValid = errors.New("authentication token not yet valid")

	// ErrMissingToken indicates a token was expected but not provided
	ErrMissingToken = errors.New("authentication token is missing")

	// ErrInvalidCredentials indicates the email/password pair does not match
	// any account. Deliberately covers both unknown email and wrong password
	// so callers cannot distinguish the two cases.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrHashingFailed indicates the password could not be hashed
	ErrHashingFailed = errors.New("password hashing failed")
)
