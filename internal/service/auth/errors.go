package auth

import "errors"

// Common authentication service errors
var (
	// ErrMalformedToken indicates the token is not a structurally valid
	// compact token.
	ErrMalformedToken = errors.New("malformed authentication token")

	// ErrInvalidToken indicates the signature doesn't match or the token
	// was signed with an unexpected method.
	ErrInvalidToken = errors.New("invalid authentication token")

	// ErrExpiredToken indicates the token has expired. Only reachable
	// when a token lifetime is configured.
	ErrExpiredToken = errors.New("authentication token has expired")

	// ErrMissingToken indicates a token was expected but not provided.
	ErrMissingToken = errors.New("authentication token is missing")
)
