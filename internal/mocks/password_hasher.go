package mocks

import (
	"strings"

	"github.com/phrazzld/coupon-api/internal/service/auth"
)

// hashedPrefix marks a value produced by MockPasswordHasher.Hash.
const hashedPrefix = "hashed:"

// MockPasswordHasher implements auth.PasswordHasher without bcrypt's cost.
type MockPasswordHasher struct {
	HashFn    func(password string) (string, error)
	CompareFn func(hashedPassword, password string) error
}

// Ensure MockPasswordHasher implements auth.PasswordHasher
var _ auth.PasswordHasher = (*MockPasswordHasher)(nil)

// Hash implements auth.PasswordHasher.
func (m *MockPasswordHasher) Hash(password string) (string, error) {
	if m.HashFn != nil {
		return m.HashFn(password)
	}
	return hashedPrefix + password, nil
}

// Compare implements auth.PasswordHasher.
func (m *MockPasswordHasher) Compare(hashedPassword, password string) error {
	if m.CompareFn != nil {
		return m.CompareFn(hashedPassword, password)
	}
	if !strings.HasPrefix(hashedPassword, hashedPrefix) || hashedPassword[len(hashedPrefix):] != password {
		return auth.ErrPasswordMismatch
	}
	return nil
}
