package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/danielgtaylor/huma/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domainerrors "github.com/iroha-labs/palette-server/internal/errors"
)

func TestEnvelopeTransformer_AlwaysIncludesVersion(t *testing.T) {
	tests := []struct {
		name   string
		status string
		input  any
	}{
		{"success response", "200", map[string]string{"key": "value"}},
		{"created response", "201", map[string]string{"id": "1"}},
		{"no content response", "204", nil},
		{"bad request error", "400", errors.New("invalid input")},
		{"not found error", "404", errors.New("resource not found")},
		{"coded error with details", "400", &APIError{Code: "VALIDATION", Message: "invalid", Details: map[string]string{"name": "is required"}}},
		{"internal server error", "500", errors.New("internal error")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := EnvelopeTransformer(nil, tt.status, tt.input)
			require.NoError(t, err)

			jsonBytes, err := json.Marshal(result)
			require.NoError(t, err)

			var envelope map[string]any
			require.NoError(t, json.Unmarshal(jsonBytes, &envelope))

			require.Contains(t, envelope, "v", "Envelope must contain version field 'v'")
			assert.Equal(t, float64(EnvelopeVersion), envelope["v"])
			require.Contains(t, envelope, "success")
		})
	}
}

func TestEnvelopeTransformer_SuccessResponse(t *testing.T) {
	data := map[string]string{"hex": "#3B82F6"}

	result, err := EnvelopeTransformer(nil, "200", data)
	require.NoError(t, err)

	envelope, ok := result.(APIEnvelope)
	require.True(t, ok, "Expected APIEnvelope type")
	assert.Equal(t, EnvelopeVersion, envelope.Version)
	assert.True(t, envelope.Success)
	assert.Equal(t, data, envelope.Data)
	assert.Empty(t, envelope.Error)
}

func TestEnvelopeTransformer_PlainError(t *testing.T) {
	result, err := EnvelopeTransformer(nil, "400", errors.New("validation failed"))
	require.NoError(t, err)

	envelope, ok := result.(APIEnvelope)
	require.True(t, ok, "Expected APIEnvelope type")
	assert.False(t, envelope.Success)
	assert.Nil(t, envelope.Data)
	assert.Equal(t, "validation failed", envelope.Error)
}

func TestEnvelopeTransformer_UncodedAPIError(t *testing.T) {
	result, err := EnvelopeTransformer(nil, "404", &APIError{Message: "Resource not found"})
	require.NoError(t, err)

	envelope, ok := result.(APIEnvelope)
	require.True(t, ok, "Expected APIEnvelope type")
	assert.False(t, envelope.Success)
	assert.Equal(t, "Resource not found", envelope.Error)
}

func TestEnvelopeTransformer_CodedAPIError(t *testing.T) {
	apiErr := &APIError{
		Code:    "INVALID_FORMAT",
		Message: "invalid hex color",
		Details: []string{"#12"},
	}

	result, err := EnvelopeTransformer(nil, "400", apiErr)
	require.NoError(t, err)

	envelope, ok := result.(APIErrorEnvelope)
	require.True(t, ok, "Expected APIErrorEnvelope type")
	assert.Equal(t, EnvelopeVersion, envelope.Version)
	assert.False(t, envelope.Success)
	assert.Equal(t, "INVALID_FORMAT", envelope.Code)
	assert.Equal(t, "invalid hex color", envelope.Error)
	assert.Equal(t, []string{"#12"}, envelope.Details)
}

func TestEnvelopeTransformer_ErrorStatusWithoutErrorValue(t *testing.T) {
	result, err := EnvelopeTransformer(nil, "500", map[string]string{"detail": "x"})
	require.NoError(t, err)

	envelope, ok := result.(APIEnvelope)
	require.True(t, ok)
	assert.False(t, envelope.Success)
}

func TestNewAPIError_DomainError(t *testing.T) {
	err := newAPIError(http.StatusInternalServerError, "unexpected error occurred",
		domainerrors.NotFoundf("sake %s not found", "9"))

	apiErr, ok := err.(*APIError)
	require.True(t, ok)
	assert.Equal(t, http.StatusNotFound, apiErr.GetStatus())
	assert.Equal(t, "NOT_FOUND", apiErr.Code)
	assert.Equal(t, "sake 9 not found", apiErr.Message)
}

func TestNewAPIError_SchemaValidation(t *testing.T) {
	err := newAPIError(http.StatusUnprocessableEntity, "validation failed",
		&huma.ErrorDetail{Location: "query.baseColor", Message: "required query parameter is missing"},
		&huma.ErrorDetail{Location: "body.name", Message: "expected string"},
	)

	apiErr, ok := err.(*APIError)
	require.True(t, ok)
	assert.Equal(t, http.StatusBadRequest, apiErr.GetStatus())
	assert.Equal(t, "VALIDATION", apiErr.Code)
	assert.Equal(t, map[string]string{
		"query.baseColor": "required query parameter is missing",
		"name":            "expected string",
	}, apiErr.Details)
}

func TestNewAPIError_StatusOnly(t *testing.T) {
	tests := []struct {
		status int
		code   string
	}{
		{http.StatusBadRequest, "VALIDATION"},
		{http.StatusNotFound, "NOT_FOUND"},
		{http.StatusTooManyRequests, "RATE_LIMITED"},
		{http.StatusInternalServerError, "INTERNAL"},
	}

	for _, tt := range tests {
		t.Run(http.StatusText(tt.status), func(t *testing.T) {
			apiErr, ok := newAPIError(tt.status, "msg").(*APIError)
			require.True(t, ok)
			assert.Equal(t, tt.status, apiErr.GetStatus())
			assert.Equal(t, tt.code, apiErr.Code)
			assert.Equal(t, "msg", apiErr.Error())
		})
	}
}
