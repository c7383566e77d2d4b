// Package token issues and verifies the stateless session tokens that carry
// a user's identity between requests. Validity is purely a function of the
// HMAC signature and the embedded expiry; nothing is persisted server-side.
package token

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// DefaultTTL is the token lifetime applied when none is configured.
const DefaultTTL = 7 * 24 * time.Hour

// ErrInvalidToken covers missing, malformed, expired, and mis-signed tokens.
var ErrInvalidToken = errors.New("invalid token")

// Identity is the verified payload of a session token.
type Identity struct {
	UserID string
	Email  string
	Name   string
}

// Claims embeds the registered JWT claims next to the identity fields.
type Claims struct {
	jwt.RegisteredClaims
	UserID string `json:"userId"`
	Email  string `json:"email"`
	Name   string `json:"name"`
}

// Issuer signs and verifies session tokens with a shared HS256 secret.
type Issuer struct {
	secret []byte
	ttl    time.Duration
}

func NewIssuer(secret string, ttl time.Duration) *Issuer {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Issuer{secret: []byte(secret), ttl: ttl}
}

// Issue produces a signed token embedding the identity with an absolute
// expiry ttl from now.
func (i *Issuer) Issue(userID, email, name string) (string, error) {
	now := time.Now()
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(i.ttl)),
		},
		UserID: userID,
		Email:  email,
		Name:   name,
	})
	return t.SignedString(i.secret)
}

// Verify parses and validates a token, returning the embedded identity.
// Any failure collapses into ErrInvalidToken.
func (i *Issuer) Verify(tokenString string) (*Identity, error) {
	claims := &Claims{}
	t, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return i.secret, nil
	})
	if err != nil || !t.Valid {
		return nil, ErrInvalidToken
	}
	if claims.UserID == "" {
		return nil, ErrInvalidToken
	}
	return &Identity{UserID: claims.UserID, Email: claims.Email, Name: claims.Name}, nil
}
