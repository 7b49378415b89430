package api

import "time"

// CouponCreateRequest defines the payload for creating a coupon.
type CouponCreateRequest struct {
	Name     string `json:"name"     validate:"notblank"`
	Percent  int    `json:"percent"  validate:"percent"`
	IsActive bool   `json:"isActive"`
}

// CouponUpdateRequest defines the payload for replacing a coupon's fields.
type CouponUpdateRequest struct {
	ID       int    `json:"id"       validate:"required,gt=0"`
	Name     string `json:"name"     validate:"notblank"`
	Percent  int    `json:"percent"  validate:"percent"`
	IsActive bool   `json:"isActive"`
}

// CouponResponse is the full view of a stored coupon.
type CouponResponse struct {
	ID          int        `json:"id"`
	Name        string     `json:"name"`
	Percent     int        `json:"percent"`
	IsActive    bool       `json:"isActive"`
	Created     time.Time  `json:"created"`
	LastUpdated *time.Time `json:"lastUpdated"`
}

// CouponCreateResponse is returned from a successful create.
type CouponCreateResponse struct {
	ID       int       `json:"id"`
	Name     string    `json:"name"`
	Percent  int       `json:"percent"`
	IsActive bool      `json:"isActive"`
	Created  time.Time `json:"created"`
}

// LoginRequest defines the payload for the login endpoint.
type LoginRequest struct {
	UserName string `json:"userName" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// RegistrationRequest defines the payload for the registration endpoint.
// Role may be omitted, in which case the user is a customer.
type RegistrationRequest struct {
	UserName string `json:"userName" validate:"required"`
	Name     string `json:"name"     validate:"notblank"`
	Password string `json:"password" validate:"required"`
	Role     string `json:"role"`
}

// UserResponse is the public view of a user. It never carries a password.
type UserResponse struct {
	ID       int    `json:"id"`
	UserName string `json:"userName"`
	Name     string `json:"name"`
	Role     string `json:"role"`
}

// LoginResponse is returned from a successful login.
type LoginResponse struct {
	User  *UserResponse `json:"user"`
	Token string        `json:"token"`
}
