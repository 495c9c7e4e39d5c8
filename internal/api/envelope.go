package api

import (
	"strconv"

	"github.com/danielgtaylor/huma/v2"

	"github.com/iroha-labs/palette-server/internal/http/response"
)

// EnvelopeVersion is bumped whenever the envelope shape changes.
const EnvelopeVersion = response.Version

// APIEnvelope wraps every successful body and plain error strings.
type APIEnvelope struct { //nolint:revive // API prefix is intentional for clarity
	Version int    `json:"v"`
	Success bool   `json:"success"`
	Data    any    `json:"data,omitempty"`
	Error   string `json:"error,omitempty"`
}

// APIErrorEnvelope is used for coded errors so clients can branch on Code.
type APIErrorEnvelope struct { //nolint:revive // API prefix is intentional for clarity
	Version int    `json:"v"`
	Success bool   `json:"success"`
	Error   string `json:"error"`
	Code    string `json:"code"`
	Details any    `json:"details,omitempty"`
}

// EnvelopeTransformer is a huma transformer that wraps every response body.
func EnvelopeTransformer(_ huma.Context, status string, v any) (any, error) {
	code, _ := strconv.Atoi(status)
	isError := code >= 400

	switch body := v.(type) {
	case *APIError:
		if body.Code != "" {
			return APIErrorEnvelope{
				Version: EnvelopeVersion,
				Success: false,
				Error:   body.Message,
				Code:    body.Code,
				Details: body.Details,
			}, nil
		}
		return APIEnvelope{Version: EnvelopeVersion, Success: false, Error: body.Message}, nil
	case error:
		return APIEnvelope{Version: EnvelopeVersion, Success: false, Error: body.Error()}, nil
	}

	if isError {
		return APIEnvelope{Version: EnvelopeVersion, Success: false, Data: v}, nil
	}
	return APIEnvelope{Version: EnvelopeVersion, Success: true, Data: v}, nil
}
