package errors

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCode_HTTPStatus(t *testing.T) {
	tests := []struct {
		code Code
		want int
	}{
		{CodeNotFound, http.StatusNotFound},
		{CodeValidation, http.StatusBadRequest},
		{CodeInvalidFormat, http.StatusBadRequest},
		{CodeRateLimited, http.StatusTooManyRequests},
		{CodeInternal, http.StatusInternalServerError},
		{Code("SOMETHING_ELSE"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(string(tt.code), func(t *testing.T) {
			assert.Equal(t, tt.want, tt.code.HTTPStatus())
		})
	}
}

func TestError_IsMatchesByCode(t *testing.T) {
	err := InvalidFormatf("invalid hex color %q", "blue")

	assert.True(t, Is(err, ErrInvalidFormat))
	assert.False(t, Is(err, ErrValidation))
	assert.Equal(t, `invalid hex color "blue"`, err.Error())
}

func TestError_IsThroughWrapping(t *testing.T) {
	wrapped := fmt.Errorf("parse base color: %w", InvalidFormat("bad"))

	assert.True(t, Is(wrapped, ErrInvalidFormat))

	var domainErr *Error
	require.True(t, As(wrapped, &domainErr))
	assert.Equal(t, CodeInvalidFormat, domainErr.Code)
	assert.Equal(t, http.StatusBadRequest, domainErr.HTTPStatus())
}

func TestError_WithCause(t *testing.T) {
	cause := fmt.Errorf("disk on fire")
	err := Internal("load catalog").WithCause(cause)

	assert.Equal(t, "load catalog: disk on fire", err.Error())
	assert.Equal(t, cause, Unwrap(err))
}

func TestError_WithDetails(t *testing.T) {
	details := map[string]string{"email": "is required"}
	err := ErrValidation.WithDetails(details)

	assert.Equal(t, details, err.Details)
	assert.Nil(t, ErrValidation.Details, "sentinel must not be mutated")
}

func TestWrapf(t *testing.T) {
	cause := fmt.Errorf("boom")
	err := Wrapf(cause, CodeNotFound, "sake %s", "9")

	assert.True(t, Is(err, ErrNotFound))
	assert.Equal(t, "sake 9: boom", err.Error())
}
