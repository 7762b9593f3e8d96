package api

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/linguaflow/linguaflow/pkg/services"
)

// respondError writes the JSON error envelope for a service-layer failure.
func respondError(c *gin.Context, err error) {
	status, msg := mapServiceError(err)
	c.JSON(status, ErrorResponse{Error: msg})
}

// mapServiceError maps service-layer errors to an HTTP status and a safe
// message.
func mapServiceError(err error) (int, string) {
	var validErr *services.ValidationError
	if errors.As(err, &validErr) {
		return http.StatusBadRequest, validErr.Error()
	}
	if errors.Is(err, services.ErrInvalidInput) {
		return http.StatusBadRequest, err.Error()
	}
	if errors.Is(err, services.ErrNotFound) {
		return http.StatusNotFound, "resource not found"
	}
	if errors.Is(err, services.ErrInvalidState) {
		return http.StatusConflict, "operation not allowed in the run's current state"
	}
	if errors.Is(err, services.ErrAlreadyExists) {
		return http.StatusConflict, "resource already exists"
	}

	// Unexpected error: log the detail, return a generic message.
	slog.Error("Unexpected service error", "error", err)
	return http.StatusInternalServerError, "internal server error"
}
