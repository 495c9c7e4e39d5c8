package api

import (
	"errors"
	"net/http"
	"strings"

	"github.com/danielgtaylor/huma/v2"

	domainerrors "github.com/iroha-labs/palette-server/internal/errors"
)

// APIError is a custom error type that implements huma.StatusError.
// It maps domain errors to HTTP responses with consistent structure.
type APIError struct { //nolint:revive // API prefix is intentional for clarity
	status  int
	Code    string `json:"code" doc:"Machine-readable error code"`
	Message string `json:"message" doc:"Human-readable error message"`
	Details any    `json:"details,omitempty" doc:"Additional error details"`
}

// Error implements the error interface.
func (e *APIError) Error() string {
	return e.Message
}

// GetStatus implements huma.StatusError.
func (e *APIError) GetStatus() int {
	return e.status
}

// ContentType returns the content type for the error response.
func (e *APIError) ContentType(_ string) string {
	return "application/json"
}

// RegisterErrorHandler configures huma to use domain errors.
// Call this after creating the huma.API but before registering routes.
func RegisterErrorHandler() {
	huma.NewError = newAPIError
}

func newAPIError(status int, message string, errs ...error) huma.StatusError {
	// Check if any of the errors are domain errors
	for _, err := range errs {
		var domainErr *domainerrors.Error
		if errors.As(err, &domainErr) {
			return &APIError{
				status:  domainErr.HTTPStatus(),
				Code:    string(domainErr.Code),
				Message: domainErr.Message,
				Details: domainErr.Details,
			}
		}
	}

	// Schema validation failures are reported as plain 400s with one
	// message per offending location.
	if status == http.StatusUnprocessableEntity || (status == http.StatusBadRequest && hasErrorDetails(errs)) {
		return &APIError{
			status:  http.StatusBadRequest,
			Code:    string(domainerrors.CodeValidation),
			Message: message,
			Details: validationDetails(errs),
		}
	}

	return &APIError{
		status:  status,
		Code:    statusToCode(status),
		Message: message,
	}
}

func hasErrorDetails(errs []error) bool {
	for _, err := range errs {
		var detail *huma.ErrorDetail
		if errors.As(err, &detail) {
			return true
		}
	}
	return false
}

// validationDetails flattens huma's error details into location -> message.
func validationDetails(errs []error) map[string]string {
	details := make(map[string]string)
	for _, err := range errs {
		var detail *huma.ErrorDetail
		if !errors.As(err, &detail) {
			continue
		}
		key := strings.TrimPrefix(detail.Location, "body.")
		if existing, ok := details[key]; ok {
			details[key] = existing + "; " + detail.Message
			continue
		}
		details[key] = detail.Message
	}
	if len(details) == 0 {
		return nil
	}
	return details
}

// statusToCode maps HTTP status codes to our domain error codes.
func statusToCode(status int) string {
	switch status {
	case http.StatusBadRequest, http.StatusMethodNotAllowed, http.StatusUnsupportedMediaType, http.StatusRequestEntityTooLarge:
		return string(domainerrors.CodeValidation)
	case http.StatusNotFound:
		return string(domainerrors.CodeNotFound)
	case http.StatusTooManyRequests:
		return string(domainerrors.CodeRateLimited)
	default:
		return string(domainerrors.CodeInternal)
	}
}

// apiError converts a service error into an *APIError carrying the domain
// status. Non-domain errors become 500s.
func apiError(err error) error {
	if err == nil {
		return nil
	}
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr
	}
	return newAPIError(http.StatusInternalServerError, "unexpected error occurred", err)
}
