package ports

import (
	"context"

	"github.com/notekeep/notes-api/internal/core/domain"
)

// UserRepository defines persistence for user accounts.
type UserRepository interface {
	// Create inserts a new account. Returns domain.ErrUserExists on a
	// duplicate email and domain.ErrIdentityModeConflict when the account
	// mixes password and external identity modes.
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
}
