package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	apperrors "github.com/origem/origem-api/pkg/errors"
)

// attachError attaches err to the gin context so the observability middleware
// can include the reason in the request log. c.Error() returns *gin.Error (not
// the error interface), so we suppress errcheck here intentionally.
func attachError(c *gin.Context, err error) {
	if err != nil {
		_ = c.Error(err) //nolint:errcheck
	}
}

// respondError sends an error JSON response and attaches the error to the gin context
// so the observability middleware can include the reason in the request log.
func respondError(c *gin.Context, status int, message string, err error) {
	attachError(c, err)
	c.JSON(status, gin.H{"error": message})
}

// respondErrorWithDetails sends an error response with an additional details field.
func respondErrorWithDetails(c *gin.Context, status int, message string, details any, err error) {
	attachError(c, err)
	c.JSON(status, gin.H{"error": message, "details": details})
}

// respondServiceError maps a service error onto a status code and a generic message
func respondServiceError(c *gin.Context, err error) {
	status := apperrors.HTTPStatus(err)
	switch status {
	case http.StatusBadRequest:
		detail := ValidationError{Field: "body", Message: "Invalid request"}
		var fieldErr *apperrors.FieldError
		if errors.As(err, &fieldErr) {
			detail = ValidationError{Field: fieldErr.Field, Message: fieldErr.Reason}
		}
		respondErrorWithDetails(c, status, "Validation failed", []ValidationError{detail}, err)
	case http.StatusNotFound:
		respondError(c, status, "Not found", err)
	case http.StatusServiceUnavailable:
		respondError(c, status, "Service unavailable", err)
	default:
		respondError(c, http.StatusInternalServerError, "Internal server error", err)
	}
}

// bindJSON binds the request body into req and writes a 400 response on failure
func bindJSON(c *gin.Context, req any) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		respondErrorWithDetails(c, http.StatusBadRequest, "Validation failed", ParseValidationErrors(err), err)
		return false
	}
	return true
}
