package domain

import (
	"errors"
	"time"
)

// DefaultRole is assigned to users who register without naming one.
const DefaultRole = "customer"

// User validation errors
var (
	ErrEmptyUsername   = errors.New("username cannot be empty")
	ErrEmptyPassword   = errors.New("password cannot be empty")
	ErrPasswordTooLong = errors.New("password must be at most 72 characters long")
)

// User is a locally registered account that can log in and receive a token.
type User struct {
	ID             int
	Username       string
	Name           string
	Role           string
	Password       string // Plaintext, only set while registering
	HashedPassword string
	CreatedAt      time.Time
}

// NewUser creates a new User from registration data. The caller hashes the
// password before the user is stored.
func NewUser(username, password, name, role string) (*User, error) {
	if role == "" {
		role = DefaultRole
	}

	user := &User{
		Username:  username,
		Name:      name,
		Role:      role,
		Password:  password,
		CreatedAt: time.Now().UTC(),
	}

	if err := user.Validate(); err != nil {
		return nil, err
	}

	return user, nil
}

// Validate checks if the User has valid data.
func (u *User) Validate() error {
	if u.Username == "" {
		return ErrEmptyUsername
	}

	if u.Password != "" {
		// bcrypt ignores everything past 72 bytes
		if len(u.Password) > 72 {
			return ErrPasswordTooLong
		}
	} else if u.HashedPassword == "" {
		return ErrEmptyPassword
	}

	return nil
}

// HasRole reports whether the user holds role.
func (u *User) HasRole(role string) bool {
	return u.Role == role
}

// Sanitized returns a copy with both password fields cleared.
func (u *User) Sanitized() *User {
	clean := *u
	clean.Password = ""
	clean.HashedPassword = ""
	return &clean
}
