package ingest

import (
	"errors"

	"github.com/dmitrijs2005/artfolio/internal/common"
)

// Error is a pipeline failure with a user-facing message. Kind is one of
// common.ErrBadRequest, common.ErrForbidden or common.ErrorInternal and is
// what errors.Is matches against.
type Error struct {
	Kind    error
	Message string
}

func (e *Error) Error() string { return e.Message }
func (e *Error) Unwrap() error { return e.Kind }

func BadRequest(msg string) *Error  { return &Error{Kind: common.ErrBadRequest, Message: msg} }
func Forbidden(msg string) *Error   { return &Error{Kind: common.ErrForbidden, Message: msg} }
func ServerError(msg string) *Error { return &Error{Kind: common.ErrorInternal, Message: msg} }

const (
	msgNoFile        = "no file provided"
	msgNotImage      = "file must be an image"
	msgTooLarge      = "image exceeds size limit"
	msgLocalDisabled = "local upload is disabled in production, use /api/upload"
	msgNotConfigured = "storage not configured"
	msgUploadFailed  = "upload failed"
)

// asServerError turns any internal failure into a ServerError carrying the
// underlying message. Pipeline errors pass through untouched.
func asServerError(err error) *Error {
	var e *Error
	if errors.As(err, &e) {
		return e
	}
	if err == nil || err.Error() == "" {
		return ServerError(msgUploadFailed)
	}
	return ServerError(err.Error())
}

// readinessError maps a store readiness failure to its pipeline error.
func readinessError(err error) *Error {
	switch {
	case errors.Is(err, common.ErrForbidden):
		return Forbidden(msgLocalDisabled)
	case errors.Is(err, common.ErrStorageNotConfigured):
		return ServerError(msgNotConfigured)
	default:
		return asServerError(err)
	}
}
