// Package token issues and verifies the signed bearer tokens used to
// authenticate job routes. Tokens are stateless: the claim set carries
// everything downstream handlers need to identify the caller.
package token

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/applytrack/applytrack/internal/model"
)

// Common errors for token verification.
var (
	ErrInvalidToken = errors.New("invalid token")
	ErrTokenExpired = errors.New("token expired")
)

// Claims is the claim set embedded in issued tokens:
// the standard registered claims plus the owning user id and display name.
type Claims struct {
	jwt.RegisteredClaims
	UserID string `json:"userID"`
	Name   string `json:"name"`
}

// Manager signs and verifies tokens with a shared HMAC secret.
type Manager struct {
	secret   []byte
	lifespan time.Duration
}

// NewManager creates a Manager with the given signing secret and token lifespan.
func NewManager(secret string, lifespan time.Duration) *Manager {
	return &Manager{
		secret:   []byte(secret),
		lifespan: lifespan,
	}
}

// Issue creates a signed token bound to the given user id and display name.
func (m *Manager) Issue(userID, name string) (string, error) {
	now := time.Now()
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(m.lifespan)),
		},
		UserID: userID,
		Name:   name,
	}

	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(m.secret)
}

// Verify parses and validates a token string.
// Returns the decoded identity, or an error if the signature is invalid,
// the token is malformed, or it has expired.
func (m *Manager) Verify(raw string) (*model.AuthContext, error) {
	claims := &Claims{}

	tok, err := jwt.ParseWithClaims(raw, claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return m.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrTokenExpired
		}
		return nil, ErrInvalidToken
	}

	if !tok.Valid {
		return nil, ErrInvalidToken
	}

	return &model.AuthContext{
		UserID: claims.UserID,
		Name:   claims.Name,
	}, nil
}
