package auth

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// TokenService defines operations for issuing and verifying the signed
// tokens that gate write access to the API.
type TokenService interface {
	// Issue creates a signed token carrying the user's identity claims.
	// Returns the compact token string or an error if signing fails.
	Issue(ctx context.Context, userID uuid.UUID, email string) (string, error)

	// Verify validates the provided token string and extracts the claims.
	// Returns ErrMalformedToken for structurally invalid tokens,
	// ErrInvalidToken for signature mismatches, and ErrExpiredToken for
	// tokens past their configured lifetime.
	Verify(ctx context.Context, tokenString string) (*Claims, error)
}

// Claims is the identity claim set embedded in a signed token.
type Claims struct {
	// UserID is the unique identifier of the user the token was issued for.
	UserID uuid.UUID `json:"user_id"`

	// Email is the account email at issue time.
	Email string `json:"email"`

	// IssuedAt is when the token was signed.
	IssuedAt time.Time `json:"issued_at"`

	// ExpiresAt is zero when no lifetime is configured.
	ExpiresAt time.Time `json:"expires_at,omitempty"`
}
