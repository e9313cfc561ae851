package ports

import (
	"context"

	"github.com/websap/websap-api/internal/core/domain"
)

// AuthService implements the simulated demo authentication the
// frontend was built against: a fixed credential set and placeholder
// session tokens verified by prefix only.
type AuthService interface {
	// Login returns the matched demo user and a fresh placeholder
	// token, or domain.ErrInvalidCredentials.
	Login(ctx context.Context, username, password string) (*domain.AuthUser, string, error)
	// VerifyToken reports whether the token carries the expected
	// placeholder prefix.
	VerifyToken(token string) bool
}
