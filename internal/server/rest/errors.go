package rest

import (
	"errors"
	"net/http"

	"github.com/dmitrijs2005/artfolio/internal/common"
	"github.com/dmitrijs2005/artfolio/internal/server/ingest"
	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

const (
	msgInvalidData  = "invalid data"
	msgUnauthorized = "unauthorized"
	msgNotFound     = "not found"
	msgBadRequest   = "bad request"
	msgInternal     = "internal error"
)

// mapError picks the status and client message for err.
func mapError(err error) (int, string) {
	var ie *ingest.Error
	if errors.As(err, &ie) {
		switch {
		case errors.Is(ie.Kind, common.ErrBadRequest):
			return http.StatusBadRequest, ie.Message
		case errors.Is(ie.Kind, common.ErrForbidden):
			return http.StatusForbidden, ie.Message
		default:
			return http.StatusInternalServerError, ie.Message
		}
	}

	var ve *common.ValidationError
	if errors.As(err, &ve) {
		return http.StatusBadRequest, ve.Message
	}

	switch {
	case errors.Is(err, common.ErrorNotFound):
		return http.StatusNotFound, msgNotFound
	case errors.Is(err, common.ErrorValidation):
		return http.StatusBadRequest, msgInvalidData
	case errors.Is(err, common.ErrBadRequest):
		return http.StatusBadRequest, msgBadRequest
	case errors.Is(err, common.ErrInvalidCredentials):
		return http.StatusUnauthorized, common.ErrInvalidCredentials.Error()
	case errors.Is(err, common.ErrorUnauthorized),
		errors.Is(err, common.ErrInvalidToken),
		errors.Is(err, common.ErrTokenExpired):
		return http.StatusUnauthorized, msgUnauthorized
	case errors.Is(err, common.ErrForbidden):
		return http.StatusForbidden, common.ErrForbidden.Error()
	default:
		return http.StatusInternalServerError, msgInternal
	}
}

func (s *Server) fail(c *gin.Context, err error) {
	status, msg := mapError(err)
	if status >= http.StatusInternalServerError {
		s.logger.Error(c.Request.Context(), "request failed", "error", err, "path", c.FullPath())
	}
	c.AbortWithStatusJSON(status, gin.H{"success": false, "error": msg})
}

// bindFailed answers a payload that did not decode or validate.
func bindFailed(c *gin.Context, err error) {
	body := gin.H{"success": false, "error": msgInvalidData}
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		body["details"] = validationDetails(verrs)
	}
	c.AbortWithStatusJSON(http.StatusBadRequest, body)
}
