package service

import "fmt"

// ServiceError represents a business logic error with a code
type ServiceError struct {
	Err     error
	Message string
	Code    string
}

func (e *ServiceError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap returns the underlying error for errors.Is/As support
func (e *ServiceError) Unwrap() error {
	return e.Err
}

// Common error codes
const (
	ErrCodeNotFound           = "not_found"
	ErrCodeConflict           = "conflict"
	ErrCodeAlreadyVerified    = "already_verified"
	ErrCodeInvalidCode        = "invalid_code"
	ErrCodeCodeExpired        = "code_expired"
	ErrCodeForbidden          = "forbidden"
	ErrCodeValidation         = "validation_error"
	ErrCodeDeliveryFailed     = "delivery_failed"
	ErrCodeStoreUnavailable   = "store_unavailable"
	ErrCodeConfig             = "config_error"
	ErrCodeInvalidCredentials = "invalid_credentials"
	ErrCodeEmailUnverified    = "email_unverified"
	ErrCodeInternalError      = "internal_error"
)
