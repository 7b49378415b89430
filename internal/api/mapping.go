package api

import "github.com/phrazzld/coupon-api/internal/domain"

func toCouponResponse(c *domain.Coupon) *CouponResponse {
	return &CouponResponse{
		ID:          c.ID,
		Name:        c.Name,
		Percent:     c.Percent,
		IsActive:    c.IsActive,
		Created:     c.Created,
		LastUpdated: c.LastUpdated,
	}
}

func toCouponResponses(coupons []*domain.Coupon) []*CouponResponse {
	out := make([]*CouponResponse, 0, len(coupons))
	for _, c := range coupons {
		out = append(out, toCouponResponse(c))
	}
	return out
}

func toCouponCreateResponse(c *domain.Coupon) *CouponCreateResponse {
	return &CouponCreateResponse{
		ID:       c.ID,
		Name:     c.Name,
		Percent:  c.Percent,
		IsActive: c.IsActive,
		Created:  c.Created,
	}
}

func toUserResponse(u *domain.User) *UserResponse {
	return &UserResponse{
		ID:       u.ID,
		UserName: u.Username,
		Name:     u.Name,
		Role:     u.Role,
	}
}
