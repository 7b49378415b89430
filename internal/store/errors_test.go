package store

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSentinelCategories(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		category error
		match    bool
	}{
		{"coupon not found", ErrCouponNotFound, ErrNotFound, true},
		{"user not found", ErrUserNotFound, ErrNotFound, true},
		{"coupon name exists", ErrCouponNameExists, ErrDuplicate, true},
		{"username exists", ErrUsernameExists, ErrDuplicate, true},
		{"wrapped in StoreError", NewStoreError("coupon", "delete", ErrCouponNotFound), ErrNotFound, true},
		{"wrapped twice", fmt.Errorf("register: %w", NewStoreError("user", "create", ErrUsernameExists)), ErrDuplicate, true},
		{"duplicate is not not-found", ErrCouponNameExists, ErrNotFound, false},
		{"not found is not duplicate", ErrUserNotFound, ErrDuplicate, false},
		{"coupon is not user", ErrCouponNotFound, ErrUserNotFound, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.match, errors.Is(tt.err, tt.category))
		})
	}
}

func TestStoreError(t *testing.T) {
	cause := errors.New("connection reset")
	err := NewStoreError("coupon", "update", cause)

	assert.Equal(t, "update coupon: connection reset", err.Error())
	assert.ErrorIs(t, err, cause)

	var storeErr *StoreError
	assert.True(t, errors.As(fmt.Errorf("outer: %w", err), &storeErr))
	assert.Equal(t, "coupon", storeErr.Entity)
	assert.Equal(t, "update", storeErr.Operation)
}
