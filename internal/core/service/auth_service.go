package service

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/notekeep/notes-api/internal/core/domain"
	"github.com/notekeep/notes-api/internal/core/ports"
	"github.com/notekeep/notes-api/internal/token"
)

// AuthService implements signup, signin and profile lookup.
type AuthService struct {
	repo   ports.UserRepository
	issuer *token.Issuer
	log    zerolog.Logger
}

func NewAuthService(repo ports.UserRepository, issuer *token.Issuer, log zerolog.Logger) *AuthService {
	return &AuthService{repo: repo, issuer: issuer, log: log}
}

// Signup creates a password-based account and returns a session token plus
// the public account fields. The password hash never appears in the result's
// JSON form.
func (s *AuthService) Signup(ctx context.Context, email, password, name string) (*ports.AuthResult, error) {
	if email == "" || password == "" || name == "" {
		return nil, domain.ErrInvalidCredentials
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	user := &domain.User{
		Email:        email,
		Name:         name,
		PasswordHash: string(hash),
		IsExternal:   false,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	created, err := s.repo.Create(ctx, user)
	if err != nil {
		return nil, err
	}

	signed, err := s.issuer.Issue(created.ID, created.Email, created.Name)
	if err != nil {
		return nil, err
	}

	s.log.Info().Str("user_id", created.ID).Msg("account created")

	return &ports.AuthResult{Token: signed, User: created}, nil
}

// Signin authenticates an email/password pair. External-identity accounts
// are refused before the hash comparison so their empty hash can never match.
func (s *AuthService) Signin(ctx context.Context, email, password string) (*ports.AuthResult, error) {
	if email == "" || password == "" {
		return nil, domain.ErrInvalidCredentials
	}

	user, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}

	if user.IsExternal {
		return nil, domain.ErrExternalAccount
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return nil, domain.ErrInvalidCredentials
	}

	signed, err := s.issuer.Issue(user.ID, user.Email, user.Name)
	if err != nil {
		return nil, err
	}

	s.log.Info().Str("user_id", user.ID).Msg("signin")

	return &ports.AuthResult{Token: signed, User: user}, nil
}

// Profile loads the account for an identity that already passed token
// verification. The account may have been deleted since the token was
// issued; that surfaces as ErrUserNotFound.
func (s *AuthService) Profile(ctx context.Context, userID string) (*domain.User, error) {
	user, err := s.repo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, domain.ErrUserNotFound
		}
		return nil, err
	}
	return user, nil
}
