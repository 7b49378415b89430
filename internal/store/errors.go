package store

import (
	"errors"
	"fmt"
)

// Category sentinels. Implementations wrap the entity-specific errors below,
// so callers can match either the category or the exact case.
var (
	ErrNotFound      = errors.New("entity not found")
	ErrDuplicate     = errors.New("entity already exists")
	ErrInvalidEntity = errors.New("invalid entity")
)

// Entity-specific sentinels.
var (
	ErrCouponNotFound   = fmt.Errorf("%w: coupon", ErrNotFound)
	ErrUserNotFound     = fmt.Errorf("%w: user", ErrNotFound)
	ErrCouponNameExists = fmt.Errorf("%w: coupon name", ErrDuplicate)
	ErrUsernameExists   = fmt.Errorf("%w: username", ErrDuplicate)
)

// StoreError records which entity and operation a failed store call was
// working on. It unwraps to the underlying cause.
type StoreError struct {
	Entity    string
	Operation string
	Err       error
}

func (e *StoreError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Operation, e.Entity, e.Err)
}

func (e *StoreError) Unwrap() error { return e.Err }

// NewStoreError wraps err with the entity and operation it came from.
func NewStoreError(entity, operation string, err error) *StoreError {
	return &StoreError{Entity: entity, Operation: operation, Err: err}
}
