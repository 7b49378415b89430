package store

import (
	"context"

	"github.com/phrazzld/coupon-api/internal/domain"
)

// UserStore defines the interface for local user persistence.
type UserStore interface {
	// Create saves a new user and sets its ID.
	// The user must carry a HashedPassword; the plaintext is never stored.
	// Returns ErrUsernameExists if the username is taken.
	Create(ctx context.Context, user *domain.User) error

	// GetByUsername retrieves a user by exact, case-sensitive username.
	// Returns ErrUserNotFound if the user does not exist.
	GetByUsername(ctx context.Context, username string) (*domain.User, error)
}
