// Package service contains the coupon and account use cases. It sits
// between the HTTP handlers in internal/api and the persistence interfaces
// in internal/store.
//
// Services receive their dependencies through constructors and never see a
// concrete store. Domain validation errors and store sentinels pass through
// wrapped in a ServiceError, so callers can still match them with errors.Is
// while logs keep the failing operation.
//
// Coupon names are unique regardless of case. CouponService checks this
// before every create and rename; the database does not enforce it.
// UserService hashes passwords with a PasswordHasher and issues tokens from
// a JWTService, both from internal/service/auth.
package service
