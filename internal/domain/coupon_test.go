package domain

import (
	"errors"
	"testing"
	"time"
)

func TestNewCoupon(t *testing.T) {
	c, err := NewCoupon("10OFF", 10, true)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if c.ID != 0 {
		t.Errorf("Expected unassigned ID, got %d", c.ID)
	}
	if c.Created.IsZero() {
		t.Error("Expected Created to be set")
	}
	if c.LastUpdated != nil {
		t.Error("Expected LastUpdated to be nil for a new coupon")
	}
}

func TestCouponValidate(t *testing.T) {
	tests := []struct {
		name    string
		coupon  Coupon
		wantErr error
		field   string
	}{
		{"valid", Coupon{Name: "10OFF", Percent: 10}, nil, ""},
		{"zero percent", Coupon{Name: "FREE", Percent: 0}, nil, ""},
		{"full percent", Coupon{Name: "ALL", Percent: 100}, nil, ""},
		{"empty name", Coupon{Name: "", Percent: 10}, ErrValidation, "Name"},
		{"blank name", Coupon{Name: "   ", Percent: 10}, ErrValidation, "Name"},
		{"negative percent", Coupon{Name: "NEG", Percent: -1}, ErrValidation, "Percent"},
		{"percent over 100", Coupon{Name: "BIG", Percent: 101}, ErrValidation, "Percent"},
		{"negative id", Coupon{ID: -3, Name: "X", Percent: 1}, ErrInvalidID, "Id"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.coupon.Validate()
			if tt.wantErr == nil {
				if err != nil {
					t.Fatalf("Expected no error, got %v", err)
				}
				return
			}

			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("Expected %v, got %v", tt.wantErr, err)
			}
			var vErr *ValidationError
			if !errors.As(err, &vErr) {
				t.Fatalf("Expected a ValidationError, got %T", err)
			}
			if vErr.Field != tt.field {
				t.Errorf("Expected field %s, got %s", tt.field, vErr.Field)
			}
		})
	}
}

func TestCouponUpdate(t *testing.T) {
	c := &Coupon{ID: 4, Name: "10OFF", Percent: 10, IsActive: true, Created: time.Now().UTC()}
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	if err := c.Update("15OFF", 15, false, now); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if c.Name != "15OFF" || c.Percent != 15 || c.IsActive {
		t.Errorf("Expected fields to be overwritten, got %+v", c)
	}
	if c.LastUpdated == nil || !c.LastUpdated.Equal(now) {
		t.Errorf("Expected LastUpdated %v, got %v", now, c.LastUpdated)
	}

	if err := c.Update("   ", 15, false, now); !errors.Is(err, ErrValidation) {
		t.Fatalf("Expected validation error for blank name, got %v", err)
	}
	if c.Name != "15OFF" {
		t.Errorf("Expected name to survive a blank rename, got %q", c.Name)
	}

	// A rejected update leaves the coupon untouched
	if err := c.Update("15OFF", 150, true, now.Add(time.Hour)); !errors.Is(err, ErrValidation) {
		t.Fatalf("Expected validation error, got %v", err)
	}
	if c.Percent != 15 || !c.LastUpdated.Equal(now) {
		t.Errorf("Expected coupon to be unchanged after failed update, got %+v", c)
	}
}

func TestCouponHasName(t *testing.T) {
	c := &Coupon{Name: "Summer10"}

	for _, name := range []string{"Summer10", "summer10", "SUMMER10"} {
		if !c.HasName(name) {
			t.Errorf("Expected %q to match %q", name, c.Name)
		}
	}
	if c.HasName("Summer1") {
		t.Error("Expected a prefix not to match")
	}
}

func TestCouponValidate_PercentMessage(t *testing.T) {
	err := (&Coupon{Name: "BIG", Percent: 150}).Validate()
	want := "'Percent' must be between 0 and 100. You entered 150."
	if err == nil || err.Error() != want {
		t.Errorf("Expected %q, got %v", want, err)
	}
}
