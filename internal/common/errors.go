// Package common defines shared constants and sentinel errors used across
// the artfolio server layers. Callers should use errors.Is to match these
// values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrorNotFound = errors.New("not found")

	// Service-level errors.
	ErrorInternal         = errors.New("internal error")
	ErrorUnauthorized     = errors.New("unauthorized")
	ErrorValidation       = errors.New("validation error")
	ErrInvalidCredentials = errors.New("invalid email or password")

	// Upload errors. The HTTP layer maps them to 400, 403 and 500.
	ErrBadRequest           = errors.New("bad request")
	ErrForbidden            = errors.New("forbidden")
	ErrStorageNotConfigured = errors.New("storage not configured")

	// Auth errors (invalid or malformed token).
	ErrInvalidToken = errors.New("invalid token")
	ErrTokenExpired = errors.New("token expired")
)

// ValidationError is a rejected input whose Message is safe to show to the
// client. It matches ErrorValidation with errors.Is.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string        { return ErrorValidation.Error() + ": " + e.Message }
func (e *ValidationError) Is(target error) bool { return target == ErrorValidation }
