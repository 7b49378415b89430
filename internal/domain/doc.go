// Package domain contains the core business entities of the coupon service:
// coupons, local users and the errors their validation produces. It is
// independent of storage and transport.
package domain
