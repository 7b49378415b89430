package service

import (
	"errors"
	"fmt"
)

// Sentinel errors returned by the services. The API layer maps them to
// status codes and messages.
var (
	// ErrInvalidCredentials is returned by Login for an unknown username and
	// for a wrong password alike, so callers cannot tell the two apart.
	ErrInvalidCredentials = errors.New("invalid username or password")
)

// ServiceError adds the failed operation to an unexpected error.
type ServiceError struct {
	Service   string
	Operation string
	Message   string
	Err       error
}

// Error implements the error interface for ServiceError.
func (e *ServiceError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s service %s failed: %s: %v", e.Service, e.Operation, e.Message, e.Err)
	}
	return fmt.Sprintf("%s service %s failed: %s", e.Service, e.Operation, e.Message)
}

// Unwrap returns the wrapped error to support errors.Is/errors.As.
func (e *ServiceError) Unwrap() error {
	return e.Err
}

// NewCouponServiceError creates a ServiceError for the coupon service.
func NewCouponServiceError(operation, message string, err error) *ServiceError {
	return &ServiceError{Service: "coupon", Operation: operation, Message: message, Err: err}
}

// NewUserServiceError creates a ServiceError for the user service.
func NewUserServiceError(operation, message string, err error) *ServiceError {
	return &ServiceError{Service: "user", Operation: operation, Message: message, Err: err}
}
