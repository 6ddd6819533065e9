// Package token issues and verifies the bearer tokens the HTTP API hands out
// after a successful login. Tokens are stateless HS256 JWTs.
package token

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/MrJamesThe3rd/valueplus/internal/apperr"
	"github.com/MrJamesThe3rd/valueplus/internal/auth"
	"github.com/MrJamesThe3rd/valueplus/internal/session"
)

// Claims is the payload of an API token.
type Claims struct {
	UserID      uuid.UUID    `json:"uid"`
	Username    string       `json:"username"`
	DisplayName string       `json:"name,omitempty"`
	Email       string       `json:"email,omitempty"`
	Role        session.Role `json:"role"`
	jwt.RegisteredClaims
}

// User rebuilds the identity carried by the token.
func (c *Claims) User() *auth.User {
	return &auth.User{
		ID:          c.UserID,
		Username:    c.Username,
		DisplayName: c.DisplayName,
		Email:       c.Email,
	}
}

type Issuer struct {
	secret []byte
	issuer string
	ttl    time.Duration
	now    func() time.Time
}

func NewIssuer(secret, issuer string, ttl time.Duration) (*Issuer, error) {
	if secret == "" {
		return nil, errors.New("token secret is required")
	}

	if ttl <= 0 {
		return nil, fmt.Errorf("token ttl must be positive, got %s", ttl)
	}

	return &Issuer{
		secret: []byte(secret),
		issuer: issuer,
		ttl:    ttl,
		now:    time.Now,
	}, nil
}

// WithClock replaces the time source.
func (i *Issuer) WithClock(now func() time.Time) *Issuer {
	i.now = now
	return i
}

// Issue signs a token for user with the given role.
func (i *Issuer) Issue(user *auth.User, role session.Role) (string, *Claims, error) {
	if user == nil {
		return "", nil, apperr.Auth("no authenticated user", nil)
	}

	now := i.now()

	claims := &Claims{
		UserID:      user.ID,
		Username:    user.Username,
		DisplayName: user.DisplayName,
		Email:       user.Email,
		Role:        role,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Issuer:    i.issuer,
			Subject:   user.ID.String(),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(i.ttl)),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(i.secret)
	if err != nil {
		return "", nil, fmt.Errorf("signing token: %w", err)
	}

	return signed, claims, nil
}

// Parse verifies raw and returns its claims. Any failure is an auth error.
func (i *Issuer) Parse(raw string) (*Claims, error) {
	if raw == "" {
		return nil, apperr.Auth("missing token", nil)
	}

	claims := &Claims{}

	_, err := jwt.ParseWithClaims(raw, claims, func(*jwt.Token) (any, error) {
		return i.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(i.issuer),
		jwt.WithTimeFunc(i.now),
	)
	if err != nil {
		return nil, apperr.Auth("invalid or expired token", err)
	}

	return claims, nil
}
