package rest

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/feral-file/ff-artbot/internal/domain"
	"github.com/feral-file/ff-artbot/internal/logger"
)

// ErrorCode is the machine readable part of an error body
type ErrorCode string

const (
	errCodeBadRequest         ErrorCode = "bad_request"
	errCodeNotFound           ErrorCode = "not_found"
	errCodeServiceUnavailable ErrorCode = "service_unavailable"
	errCodeInternalError      ErrorCode = "internal_error"
)

type errorBody struct {
	Error errorDetail `json:"error"`
}

type errorDetail struct {
	Code    ErrorCode `json:"code"`
	Message string    `json:"message"`
	Details string    `json:"details,omitempty"`
}

// statusFor maps domain errors onto HTTP statuses
func statusFor(err error) (int, ErrorCode) {
	switch {
	case errors.Is(err, domain.ErrInvalidFormat), errors.Is(err, domain.ErrInvalidNumber):
		return http.StatusBadRequest, errCodeBadRequest
	case errors.Is(err, domain.ErrProjectNotFound), errors.Is(err, domain.ErrUnknownCommand):
		return http.StatusNotFound, errCodeNotFound
	case errors.Is(err, domain.ErrDirectoryNotReady), errors.Is(err, domain.ErrRateLimited):
		return http.StatusServiceUnavailable, errCodeServiceUnavailable
	default:
		return http.StatusInternalServerError, errCodeInternalError
	}
}

// respondError writes err as an error body. details is echoed back to the
// caller for client errors only.
func respondError(c *gin.Context, err error, details string) {
	status, code := statusFor(err)
	detail := errorDetail{Code: code, Message: err.Error()}
	if status < http.StatusInternalServerError {
		detail.Details = details
	}
	if status == http.StatusInternalServerError {
		logger.ErrorCtx(c.Request.Context(), err)
		detail.Message = "Internal server error"
	}
	c.JSON(status, errorBody{Error: detail})
}

func invalidQuery(reason string) error {
	return fmt.Errorf("%w: %s", domain.ErrInvalidFormat, reason)
}
