package auth

import (
	"context"
	"time"

	"github.com/phrazzld/coupon-api/internal/domain"
)

// JWTService defines operations for issuing and checking bearer tokens.
type JWTService interface {
	// GenerateToken creates a signed token carrying the user's name and role.
	GenerateToken(ctx context.Context, user *domain.User) (string, error)

	// ValidateToken checks signature and expiry and returns the claims.
	// Returns ErrExpiredToken, ErrTokenNotYetValid or ErrInvalidToken on failure.
	ValidateToken(ctx context.Context, tokenString string) (*Claims, error)
}

// Claims is the validated content of a bearer token.
type Claims struct {
	// Name is the username the token was issued to.
	Name string `json:"name"`

	// Role gates access to admin-only routes.
	Role string `json:"role"`

	// Standard registered JWT claims
	Subject   string    `json:"sub,omitempty"`
	IssuedAt  time.Time `json:"iat,omitempty"`
	ExpiresAt time.Time `json:"exp,omitempty"`
	ID        string    `json:"jti,omitempty"`
}

// HasRole reports whether the claims carry role.
func (c *Claims) HasRole(role string) bool {
	return c != nil && c.Role == role
}
