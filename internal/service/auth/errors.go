package auth

import "errors"

// Token errors returned by JWTService.ValidateToken. The API maps all of
// them to 401.
var (
	ErrInvalidToken     = errors.New("invalid authentication token")
	ErrExpiredToken     = errors.New("authentication token has expired")
	ErrTokenNotYetValid = errors.New("authentication token not yet valid")
	ErrMissingToken     = errors.New("authentication token is missing")
)

// ErrPasswordMismatch is returned by PasswordHasher.Compare when the
// password does not produce the stored hash.
var ErrPasswordMismatch = errors.New("password does not match")
