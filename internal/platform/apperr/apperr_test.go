// Copyright (c) 2026 Artistly. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package apperr_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/artistly/internal/platform/apperr"
)

func TestConstructors(t *testing.T) {
	tests := []struct {
		name   string
		err    *apperr.AppError
		code   string
		status int
	}{
		{"not found", apperr.NotFound("Artist"), apperr.CodeNotFound, http.StatusNotFound},
		{"unauthorized", apperr.Unauthorized("x"), apperr.CodeUnauthorized, http.StatusUnauthorized},
		{"forbidden", apperr.Forbidden("x"), apperr.CodeForbidden, http.StatusForbidden},
		{"method", apperr.MethodNotAllowed(), apperr.CodeMethodNotAllowed, http.StatusMethodNotAllowed},
		{"conflict", apperr.Conflict("x"), apperr.CodeConflict, http.StatusConflict},
		{"validation", apperr.ValidationError("x"), apperr.CodeValidation, http.StatusBadRequest},
		{"unprocessable", apperr.Unprocessable("x"), apperr.CodeUnprocessable, http.StatusUnprocessableEntity},
		{"rate limit", apperr.TooManyRequests(), apperr.CodeTooManyRequests, http.StatusTooManyRequests},
		{"internal", apperr.Internal(errors.New("boom")), apperr.CodeInternal, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.code, tt.err.Code)
			assert.Equal(t, tt.status, tt.err.HTTPStatus)
		})
	}

	assert.Equal(t, "Artist not found", apperr.NotFound("Artist").Error())
}

func TestInternal_HidesCause(t *testing.T) {
	cause := errors.New("pq: relation does not exist")
	err := apperr.Internal(cause)

	assert.Equal(t, "An unexpected error occurred", err.Error())
	assert.ErrorIs(t, err, cause)
}

func TestAs_Wrapped(t *testing.T) {
	wrapped := fmt.Errorf("submission_review_failed: %w", apperr.Conflict("Application has already been approved"))

	appErr := apperr.As(wrapped)
	require.NotNil(t, appErr)
	assert.Equal(t, apperr.CodeConflict, appErr.Code)

	assert.Nil(t, apperr.As(errors.New("plain")))
	assert.True(t, apperr.HasCode(wrapped, apperr.CodeConflict))
	assert.False(t, apperr.HasCode(wrapped, apperr.CodeNotFound))
	assert.False(t, apperr.HasCode(nil, apperr.CodeConflict))
}

func TestValidationError_Details(t *testing.T) {
	err := apperr.ValidationError("Invalid input",
		apperr.FieldError{Field: "email", Message: "Please enter a valid email address"},
		apperr.FieldError{Field: "bio", Message: "Bio must be at least 50 characters"},
	)

	require.Len(t, err.Details, 2)
	assert.Equal(t, "bio", err.Details[1].Field)
}
