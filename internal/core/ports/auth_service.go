package ports

import (
	"context"

	"github.com/notekeep/notes-api/internal/core/domain"
)

// AuthResult is returned by Signup and Signin: a session token plus the
// public account fields (the password hash never leaves the service).
type AuthResult struct {
	Token string
	User  *domain.User
}

// AuthService defines account use-cases.
type AuthService interface {
	Signup(ctx context.Context, email, password, name string) (*AuthResult, error)
	Signin(ctx context.Context, email, password string) (*AuthResult, error)
	// Profile loads the account behind an already-verified identity.
	// Returns domain.ErrUserNotFound when the account was deleted after the
	// token was issued.
	Profile(ctx context.Context, userID string) (*domain.User, error)
}
