package api

import (
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/phrazzld/coupon-api/internal/api/shared"
	"github.com/phrazzld/coupon-api/internal/domain"
	"github.com/phrazzld/coupon-api/internal/service"
	"github.com/phrazzld/coupon-api/internal/service/auth"
	"github.com/phrazzld/coupon-api/internal/store"
)

// Client-facing messages.
const (
	msgInvalidPathID      = "Coupon Id cannot be less than or equal to 0 or null"
	msgInvalidID          = "Invalid Id"
	msgInvalidCouponID    = "Invalid Coupon Id"
	msgCouponNameExists   = "Coupon Name already Exists"
	msgUsernameExists     = "Username already exists."
	msgBadCredentials     = "UserName or Password is incorrect."
	msgInvalidRequest     = "Invalid request format"
	msgUnexpected         = "An unexpected error occurred"
	msgInvalidToken       = "Invalid token"
	msgExpiredToken       = "Token expired"
	msgForbidden          = "Forbidden"
	msgInvalidEntity      = "Invalid entity data"
	msgValidationFallback = "Validation error"
)

var (
	// errInvalidRequestBody marks a body that could not be decoded as JSON.
	errInvalidRequestBody = errors.New("invalid request body")

	// errInvalidPathID marks a path id that is missing, non-numeric or not positive.
	errInvalidPathID = errors.New("invalid coupon id in path")
)

func isValidationError(err error) bool {
	var fieldErrs validator.ValidationErrors
	return errors.Is(err, domain.ErrValidation) ||
		errors.Is(err, domain.ErrInvalidID) ||
		errors.As(err, &fieldErrs)
}

// MapErrorToStatusCode maps internal errors to HTTP status codes without
// exposing the errors themselves.
func MapErrorToStatusCode(err error) int {
	switch {
	case isValidationError(err),
		errors.Is(err, errInvalidRequestBody),
		errors.Is(err, store.ErrInvalidEntity),
		errors.Is(err, store.ErrDuplicate),
		errors.Is(err, service.ErrInvalidCredentials),
		errors.Is(err, domain.ErrEmptyUsername),
		errors.Is(err, domain.ErrEmptyPassword),
		errors.Is(err, domain.ErrPasswordTooLong):
		return http.StatusBadRequest

	case errors.Is(err, auth.ErrInvalidToken),
		errors.Is(err, auth.ErrExpiredToken),
		errors.Is(err, auth.ErrTokenNotYetValid),
		errors.Is(err, auth.ErrMissingToken),
		errors.Is(err, domain.ErrUnauthorized):
		return http.StatusUnauthorized

	case errors.Is(err, domain.ErrForbidden):
		return http.StatusForbidden

	case errors.Is(err, store.ErrNotFound):
		return http.StatusNotFound

	default:
		return http.StatusInternalServerError
	}
}

// GetSafeErrorMessage returns the client-facing message for err.
func GetSafeErrorMessage(err error) string {
	if err == nil {
		return msgUnexpected
	}

	switch {
	case errors.Is(err, errInvalidPathID):
		return msgInvalidPathID
	case isValidationError(err):
		if msg := shared.FirstValidationMessage(err); msg != "" {
			return msg
		}
		return msgValidationFallback
	case errors.Is(err, domain.ErrEmptyUsername):
		return "'UserName' must not be empty."
	case errors.Is(err, domain.ErrEmptyPassword):
		return "'Password' must not be empty."
	case errors.Is(err, domain.ErrPasswordTooLong):
		return "'Password' must be 72 characters or fewer."
	case errors.Is(err, errInvalidRequestBody):
		return msgInvalidRequest
	case errors.Is(err, store.ErrCouponNotFound):
		return msgInvalidCouponID
	case errors.Is(err, store.ErrCouponNameExists):
		return msgCouponNameExists
	case errors.Is(err, store.ErrUsernameExists):
		return msgUsernameExists
	case errors.Is(err, store.ErrInvalidEntity):
		return msgInvalidEntity
	case errors.Is(err, service.ErrInvalidCredentials):
		return msgBadCredentials
	case errors.Is(err, auth.ErrExpiredToken):
		return msgExpiredToken
	case errors.Is(err, auth.ErrInvalidToken),
		errors.Is(err, auth.ErrTokenNotYetValid),
		errors.Is(err, auth.ErrMissingToken):
		return msgInvalidToken
	case errors.Is(err, domain.ErrForbidden):
		return msgForbidden
	default:
		return msgUnexpected
	}
}

// HandleAPIError writes the error envelope for err. The status and message
// come from MapErrorToStatusCode and GetSafeErrorMessage.
func HandleAPIError(w http.ResponseWriter, r *http.Request, err error) {
	shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
}
