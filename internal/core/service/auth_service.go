package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/websap/websap-api/internal/core/domain"
)

// AuthService implements the simulated demo authentication. The
// credential set is fixed and the issued token is a placeholder string
// whose only property is its prefix; this mirrors the simulator the
// frontend authenticates against.
type AuthService struct {
	users []demoAccount
}

type demoAccount struct {
	user domain.AuthUser
	hash []byte
}

// demoCredentials is the fixed demo credential set. Passwords are
// bcrypt-hashed at construction so the comparison path matches a real
// credential check.
var demoCredentials = []struct {
	user     domain.AuthUser
	password string
}{
	{domain.AuthUser{ID: 1, Username: "admin", Name: "Administrador", Role: "admin", Email: "admin@example.com"}, "admin123"},
	{domain.AuthUser{ID: 2, Username: "empleado", Name: "Empleado Demo", Role: "employee", Email: "empleado@example.com"}, "empleado123"},
	{domain.AuthUser{ID: 3, Username: "usuario", Name: "Usuario Regular", Role: "user", Email: "usuario@example.com"}, "usuario123"},
}

func NewAuthService() (*AuthService, error) {
	s := &AuthService{users: make([]demoAccount, 0, len(demoCredentials))}
	for _, cred := range demoCredentials {
		hash, err := bcrypt.GenerateFromPassword([]byte(cred.password), bcrypt.DefaultCost)
		if err != nil {
			return nil, fmt.Errorf("hash demo credentials: %w", err)
		}
		s.users = append(s.users, demoAccount{user: cred.user, hash: hash})
	}
	return s, nil
}

// Login matches the credentials against the demo set and issues a
// fresh placeholder token.
func (s *AuthService) Login(_ context.Context, username, password string) (*domain.AuthUser, string, error) {
	if username == "" || password == "" {
		return nil, "", domain.ErrInvalidCredentials
	}

	for _, account := range s.users {
		if account.user.Username != username {
			continue
		}
		if bcrypt.CompareHashAndPassword(account.hash, []byte(password)) != nil {
			return nil, "", domain.ErrInvalidCredentials
		}
		user := account.user
		return &user, s.generateToken(), nil
	}

	return nil, "", domain.ErrInvalidCredentials
}

// VerifyToken reports whether the token carries the placeholder
// prefix. Validity is a prefix match only.
func (s *AuthService) VerifyToken(token string) bool {
	return strings.HasPrefix(token, domain.SimulatedTokenPrefix)
}

func (s *AuthService) generateToken() string {
	return fmt.Sprintf("%s%d", domain.SimulatedTokenPrefix, time.Now().Unix())
}
