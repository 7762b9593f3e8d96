package api

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/linguaflow/linguaflow/pkg/services"
)

func TestMapServiceError(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantMsg    string
	}{
		{
			name:       "validation error carries the field",
			err:        services.NewValidationError("project_path", "required"),
			wantStatus: http.StatusBadRequest,
			wantMsg:    "validation error on field 'project_path': required",
		},
		{
			name:       "invalid input",
			err:        fmt.Errorf("parse overrides: %w", services.ErrInvalidInput),
			wantStatus: http.StatusBadRequest,
			wantMsg:    "parse overrides: invalid input",
		},
		{
			name:       "not found",
			err:        services.ErrNotFound,
			wantStatus: http.StatusNotFound,
			wantMsg:    "resource not found",
		},
		{
			name:       "invalid state",
			err:        fmt.Errorf("cancel: %w", services.ErrInvalidState),
			wantStatus: http.StatusConflict,
			wantMsg:    "operation not allowed in the run's current state",
		},
		{
			name:       "already exists",
			err:        services.ErrAlreadyExists,
			wantStatus: http.StatusConflict,
			wantMsg:    "resource already exists",
		},
		{
			name:       "unknown errors stay opaque",
			err:        errors.New("pq: connection reset"),
			wantStatus: http.StatusInternalServerError,
			wantMsg:    "internal server error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, msg := mapServiceError(tt.err)
			assert.Equal(t, tt.wantStatus, status)
			assert.Equal(t, tt.wantMsg, msg)
		})
	}
}
