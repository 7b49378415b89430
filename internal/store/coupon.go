package store

import (
	"context"

	"github.com/phrazzld/coupon-api/internal/domain"
)

// CouponFilter narrows and pages a coupon listing.
type CouponFilter struct {
	// NameContains keeps coupons whose name contains this substring,
	// compared case-insensitively. Empty matches everything.
	NameContains string

	// Offset is the number of matching rows to skip.
	Offset int

	// Limit is the maximum number of rows to return.
	Limit int
}

// CouponStore defines the interface for coupon persistence.
// Every method issues a single statement; no method spans a transaction.
type CouponStore interface {
	// Create inserts a coupon and sets its ID from the generated key.
	Create(ctx context.Context, coupon *domain.Coupon) error

	// GetByID returns ErrCouponNotFound if no row has the id.
	GetByID(ctx context.Context, id int) (*domain.Coupon, error)

	// GetByName looks a coupon up by name, ignoring case.
	// Returns ErrCouponNotFound if there is none.
	GetByName(ctx context.Context, name string) (*domain.Coupon, error)

	// List returns every coupon ordered by id.
	List(ctx context.Context) ([]*domain.Coupon, error)

	// Search returns the page of coupons matching filter, ordered by id.
	Search(ctx context.Context, filter CouponFilter) ([]*domain.Coupon, error)

	// Update saves the mutable fields of an existing coupon.
	// Returns ErrCouponNotFound if the row is gone.
	Update(ctx context.Context, coupon *domain.Coupon) error

	// Delete removes the coupon with the given id.
	// Returns ErrCouponNotFound if no row was removed.
	Delete(ctx context.Context, id int) error
}
