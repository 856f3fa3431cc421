package common

import (
	"errors"
	"net/http"

	"github.com/charapedia/charapedia-backend/pkg/logger"
	"github.com/gin-gonic/gin"
)

// APIResponse standard API response structure
type APIResponse struct {
	Data  interface{} `json:"data"`
	Meta  *Meta       `json:"meta,omitempty"`
	Error *ErrorInfo  `json:"error,omitempty"`
}

// Meta pagination and additional metadata
type Meta struct {
	WorkID uint64 `json:"work_id,omitempty"`
	Page   int    `json:"page,omitempty"`
	Limit  int    `json:"limit,omitempty"`
	Total  int64  `json:"total,omitempty"`
}

// ErrorInfo error details
type ErrorInfo struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Details string `json:"details,omitempty"`
}

// SuccessResponse returns a successful JSON response
func SuccessResponse(c *gin.Context, data interface{}, meta *Meta) {
	c.JSON(http.StatusOK, APIResponse{
		Data: data,
		Meta: meta,
	})
}

// CreatedResponse returns a 201 Created JSON response
func CreatedResponse(c *gin.Context, data interface{}) {
	c.JSON(http.StatusCreated, APIResponse{
		Data: data,
	})
}

// ErrorResponse returns an error JSON response
func ErrorResponse(c *gin.Context, status int, message string, err error) {
	errInfo := &ErrorInfo{
		Code:    getErrorCode(status),
		Message: message,
	}
	if err != nil {
		errInfo.Details = err.Error()
	}

	c.JSON(status, gin.H{
		"error": errInfo,
	})
}

// RespondError maps a business error to its HTTP status and writes the
// error envelope. Unknown errors are reported as opaque 500s so a store
// failure is never confused with an expected outcome.
func RespondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrInvalidInput):
		ErrorResponse(c, http.StatusBadRequest, "Invalid input", err)
	case errors.Is(err, ErrUnauthorized):
		ErrorResponse(c, http.StatusUnauthorized, "Authentication required", err)
	case errors.Is(err, ErrPermissionDenied):
		ErrorResponse(c, http.StatusForbidden, "Permission denied", err)
	case errors.Is(err, ErrWorkNotFound):
		ErrorResponse(c, http.StatusNotFound, "Work not found", err)
	case errors.Is(err, ErrCharacterNotFound), errors.Is(err, ErrNotificationNotFound), errors.Is(err, ErrNotFound):
		ErrorResponse(c, http.StatusNotFound, "Resource not found", err)
	case errors.Is(err, ErrInvalidState):
		ErrorResponse(c, http.StatusConflict, "Record was changed by a concurrent operation", err)
	case errors.Is(err, ErrQuotaExceeded):
		ErrorResponse(c, http.StatusTooManyRequests, "Pending submission quota exceeded", err)
	default:
		logger.GetLogger().Error().
			Err(err).
			Str("method", c.Request.Method).
			Str("path", c.FullPath()).
			Msg("unhandled error")
		ErrorResponse(c, http.StatusInternalServerError, "Internal server error", nil)
	}
}

// getErrorCode generates error code from HTTP status
func getErrorCode(status int) string {
	switch status {
	case 400:
		return "BAD_REQUEST"
	case 401:
		return "UNAUTHORIZED"
	case 403:
		return "FORBIDDEN"
	case 404:
		return "NOT_FOUND"
	case 409:
		return "CONFLICT"
	case 429:
		return "QUOTA_EXCEEDED"
	case 500:
		return "INTERNAL_SERVER_ERROR"
	default:
		return "ERROR"
	}
}
