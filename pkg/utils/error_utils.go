package utils

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// APIError is the JSON body of every failed request.
type APIError struct {
	StatusCode int    `json:"-"` // HTTP status code, not included in JSON response body
	Code       string `json:"code,omitempty"`
	Message    string `json:"message"`
	Error      string `json:"error,omitempty"` // Underlying error text, when there is one
}

// NewAPIError creates a new APIError instance
func NewAPIError(statusCode int, code string, message string, details string) *APIError {
	return &APIError{
		StatusCode: statusCode,
		Code:       code,
		Message:    message,
		Error:      details,
	}
}

// RespondWithError sends a standardized JSON error response and stops the handler chain.
func RespondWithError(c *gin.Context, err *APIError) {
	c.AbortWithStatusJSON(err.StatusCode, err)
}

const (
	ErrCodeBadRequest          = "BAD_REQUEST"
	ErrCodeUnauthorized        = "UNAUTHORIZED"
	ErrCodeForbidden           = "FORBIDDEN"
	ErrCodeNotFound            = "NOT_FOUND"
	ErrCodeConflict            = "CONFLICT"
	ErrCodeTooManyRequests     = "TOO_MANY_REQUESTS"
	ErrCodeInternalServerError = "INTERNAL_SERVER_ERROR"
	ErrCodeValidationFailed    = "VALIDATION_FAILED"
)

// IsEmpty checks if a string is empty after trimming whitespace.
func IsEmpty(s string) bool {
	return strings.TrimSpace(s) == ""
}

// RespondValidationFailed is a shortcut for a 400 with a readable message.
func RespondValidationFailed(c *gin.Context, message string, details string) {
	RespondWithError(c, NewAPIError(http.StatusBadRequest, ErrCodeValidationFailed, message, details))
}

// RespondNotFound is a shortcut for a 404.
func RespondNotFound(c *gin.Context, message string) {
	RespondWithError(c, NewAPIError(http.StatusNotFound, ErrCodeNotFound, message, ""))
}

// RespondInternalError reports an unexpected failure, surfacing the underlying error text.
func RespondInternalError(c *gin.Context, message string, err error) {
	details := ""
	if err != nil {
		details = err.Error()
	}
	RespondWithError(c, NewAPIError(http.StatusInternalServerError, ErrCodeInternalServerError, message, details))
}
