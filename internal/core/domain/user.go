package domain

import (
	"errors"
	"time"
)

var ErrUserNotFound = errors.New("user not found")
var ErrUserExists = errors.New("user already exists")
var ErrInvalidCredentials = errors.New("invalid credentials")
var ErrExternalAccount = errors.New("account uses external sign-in")
var ErrIdentityModeConflict = errors.New("conflicting identity modes")

// User models an account holder. An account is either password-based
// (PasswordHash set, IsExternal false) or externally authenticated
// (ExternalID set, IsExternal true). Mixing the two modes is invalid.
type User struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	Name         string    `json:"name"`
	PasswordHash string    `json:"-"`
	Picture      string    `json:"picture,omitempty"`
	ExternalID   string    `json:"-"`
	IsExternal   bool      `json:"isExternal"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// ValidIdentityMode reports whether exactly one credential mode is set and
// the IsExternal flag agrees with it.
func (u *User) ValidIdentityMode() bool {
	hasPassword := u.PasswordHash != ""
	hasExternal := u.ExternalID != ""
	if hasPassword == hasExternal {
		return false
	}
	return u.IsExternal == hasExternal
}
