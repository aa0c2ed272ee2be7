package mocks

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/tobrien/bookvault-api/internal/service/auth"
)

// MockTokenService implements auth.TokenService for testing.
type MockTokenService struct {
	Token     string
	IssueErr  error
	Claims    *auth.Claims
	VerifyErr error
}

var _ auth.TokenService = (*MockTokenService)(nil)

// Issue returns the configured token or error.
func (m *MockTokenService) Issue(ctx context.Context, userID uuid.UUID, email string) (string, error) {
	if m.IssueErr != nil {
		return "", m.IssueErr
	}
	return m.Token, nil
}

// Verify returns the configured claims or error. When no claims are
// configured, a minimal valid claim set is fabricated.
func (m *MockTokenService) Verify(ctx context.Context, tokenString string) (*auth.Claims, error) {
	if m.VerifyErr != nil {
		return nil, m.VerifyErr
	}
	if m.Claims != nil {
		return m.Claims, nil
	}
	return &auth.Claims{
		UserID:   uuid.New(),
		Email:    "mock@example.com",
		IssuedAt: time.Now().UTC(),
	}, nil
}

// MockPasswordHasher implements auth.PasswordHasher and
// auth.PasswordVerifier for testing.
type MockPasswordHasher struct {
	HashResult    string
	HashErr       error
	ShouldSucceed bool
}

var (
	_ auth.PasswordHasher   = (*MockPasswordHasher)(nil)
	_ auth.PasswordVerifier = (*MockPasswordHasher)(nil)
)

// Hash returns the configured digest or error.
func (m *MockPasswordHasher) Hash(password string) (string, error) {
	if m.HashErr != nil {
		return "", m.HashErr
	}
	if m.HashResult != "" {
		return m.HashResult, nil
	}
	return "hashed-" + password, nil
}

// Compare succeeds when ShouldSucceed is set.
func (m *MockPasswordHasher) Compare(hashedPassword, password string) error {
	if m.ShouldSucceed {
		return nil
	}
	return errMismatch
}

var errMismatch = errors.New("password mismatch")
