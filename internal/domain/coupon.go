package domain

import (
	"fmt"
	"strings"
	"time"

	"golang.org/x/text/cases"
)

// Percent bounds for a coupon discount, both inclusive.
const (
	MinCouponPercent = 0
	MaxCouponPercent = 100
)

// Coupon is a named discount record.
type Coupon struct {
	ID          int
	Name        string
	Percent     int
	IsActive    bool
	Created     time.Time
	LastUpdated *time.Time
}

// NewCoupon creates a coupon stamped with the current UTC time.
// The ID is left zero; the store assigns it on insert.
func NewCoupon(name string, percent int, isActive bool) (*Coupon, error) {
	c := &Coupon{
		Name:     name,
		Percent:  percent,
		IsActive: isActive,
		Created:  time.Now().UTC(),
	}

	if err := c.Validate(); err != nil {
		return nil, err
	}

	return c, nil
}

// Validate checks the coupon fields. The first violation is returned.
func (c *Coupon) Validate() error {
	if c.ID < 0 {
		return NewValidationError("Id", "must be greater than '0'.", ErrInvalidID)
	}
	if strings.TrimSpace(c.Name) == "" {
		return NewValidationError("Name", "must not be empty.", ErrValidation)
	}
	if c.Percent < MinCouponPercent || c.Percent > MaxCouponPercent {
		return NewValidationError("Percent",
			fmt.Sprintf("must be between %d and %d. You entered %d.", MinCouponPercent, MaxCouponPercent, c.Percent),
			ErrValidation)
	}
	return nil
}

// Update overwrites the mutable fields and stamps LastUpdated.
func (c *Coupon) Update(name string, percent int, isActive bool, now time.Time) error {
	updated := *c
	updated.Name = name
	updated.Percent = percent
	updated.IsActive = isActive

	if err := updated.Validate(); err != nil {
		return err
	}

	ts := now.UTC()
	updated.LastUpdated = &ts
	*c = updated
	return nil
}

// HasName reports whether name equals the coupon name under Unicode case folding.
func (c *Coupon) HasName(name string) bool {
	fold := cases.Fold()
	return fold.String(c.Name) == fold.String(name)
}
