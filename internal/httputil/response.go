// Package httputil provides HTTP utility functions for request and response handling.
package httputil

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "github.com/patientcare/auth-service/internal/errors"
	customValidation "github.com/patientcare/auth-service/internal/validation"
)

// ErrorResponse represents a structured error response.
type ErrorResponse struct {
	Error      string                       `json:"error"`
	Message    string                       `json:"message,omitempty"`
	Violations []customValidation.Violation `json:"violations,omitempty"`
}

// HandleErrorGin maps domain errors to HTTP status codes and writes a JSON response.
// Unknown errors become 500 without exposing details to the client.
func HandleErrorGin(c *gin.Context, err error, logger *slog.Logger) {
	if err == nil {
		return
	}

	var statusCode int
	var errorResponse ErrorResponse

	switch {
	case apperrors.Is(err, apperrors.ErrNotFound):
		statusCode = http.StatusNotFound
		errorResponse = ErrorResponse{
			Error:   "not_found",
			Message: "The requested resource was not found",
		}

	case apperrors.Is(err, apperrors.ErrConflict):
		statusCode = http.StatusConflict
		errorResponse = ErrorResponse{
			Error:   "conflict",
			Message: "A conflict occurred with existing data",
		}

	case apperrors.Is(err, apperrors.ErrInvalidInput):
		statusCode = http.StatusBadRequest
		errorResponse = ErrorResponse{
			Error:   "invalid_input",
			Message: err.Error(),
		}

	case apperrors.Is(err, apperrors.ErrUnauthorized):
		statusCode = http.StatusUnauthorized
		errorResponse = ErrorResponse{
			Error:   "unauthorized",
			Message: "Authentication is required",
		}

	case apperrors.Is(err, apperrors.ErrForbidden):
		statusCode = http.StatusForbidden
		errorResponse = ErrorResponse{
			Error:   "forbidden",
			Message: "You don't have permission to access this resource",
		}

	default:
		statusCode = http.StatusInternalServerError
		errorResponse = ErrorResponse{
			Error:   "internal_error",
			Message: "An internal error occurred",
		}
	}

	if logger != nil {
		logger.Error("request failed",
			slog.Int("status_code", statusCode),
			slog.String("error_code", errorResponse.Error),
			slog.Any("error", err),
		)
	}

	c.JSON(statusCode, errorResponse)
}

// HandleValidationErrorGin writes a 400 Bad Request response listing every violation
// found in err. Malformed JSON is reported as a single violation without a field.
func HandleValidationErrorGin(c *gin.Context, err error, logger *slog.Logger) {
	violations := customValidation.ToViolations(err)

	if logger != nil {
		logger.Warn("validation failed",
			slog.Any("error", err),
			slog.Int("violation_count", len(violations)),
		)
	}

	c.JSON(http.StatusBadRequest, ErrorResponse{
		Error:      "validation_error",
		Message:    "The request body is invalid",
		Violations: violations,
	})
}

// AbortUnauthorized ends the request with a bare 401 and no body, so callers cannot
// tell which credential check failed.
func AbortUnauthorized(c *gin.Context) {
	c.AbortWithStatus(http.StatusUnauthorized)
}
