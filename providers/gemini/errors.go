package gemini

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/mrafaeldie12/nano-banana-pro-mcp/core"
)

const providerID = "gemini"

// normalizeError converts an HTTP error response to a ProviderError
// with the appropriate sentinel. The raw body travels verbatim in the
// message; a structured code is extracted when the body parses.
func normalizeError(status int, body []byte) error {
	message := strings.TrimSpace(string(body))
	if message == "" {
		message = http.StatusText(status)
	}

	var errResp geminiErrorResponse
	_ = json.Unmarshal(body, &errResp)

	code := errResp.Error.Status
	if code == "" {
		code = "unknown_error"
	}

	return &core.ProviderError{
		Provider: providerID,
		Status:   status,
		Code:     code,
		Message:  message,
		Err:      sentinelForStatus(status),
	}
}

// sentinelForStatus maps an HTTP status code to a core sentinel error.
func sentinelForStatus(status int) error {
	switch {
	case status == http.StatusBadRequest:
		return core.ErrBadRequest
	case status == http.StatusUnauthorized || status == http.StatusForbidden:
		return core.ErrUnauthorized
	case status == http.StatusNotFound:
		return core.ErrNotFound
	case status == http.StatusTooManyRequests:
		return core.ErrRateLimited
	default:
		return core.ErrServer
	}
}

// newNetworkError creates a ProviderError for transport failures. A
// canceled or timed-out context keeps its own sentinel so callers see
// the cancellation rather than a fabricated network classification.
func newNetworkError(err error) error {
	sentinel := core.ErrNetwork
	switch {
	case errors.Is(err, context.Canceled):
		sentinel = context.Canceled
	case errors.Is(err, context.DeadlineExceeded):
		sentinel = context.DeadlineExceeded
	}

	return &core.ProviderError{
		Provider: providerID,
		Message:  err.Error(),
		Err:      sentinel,
	}
}

// newDecodeError creates a ProviderError for JSON decode failures.
func newDecodeError(err error) error {
	return &core.ProviderError{
		Provider: providerID,
		Message:  err.Error(),
		Err:      core.ErrDecode,
	}
}

// newInvalidModelError rejects an identifier outside the allow-list.
// The message names the offending value and the full allowed set.
func newInvalidModelError(id core.ModelID) error {
	return &core.ProviderError{
		Provider: providerID,
		Message:  fmt.Sprintf("unknown model %q, allowed models: %s", id, allowedModelList()),
		Err:      core.ErrInvalidModel,
	}
}

// newProviderReportedError wraps an error object found in the body of
// a success-status response. The provider's message travels verbatim;
// the symbolic status (e.g. INVALID_ARGUMENT) becomes the code.
func newProviderReportedError(e *geminiError) error {
	return &core.ProviderError{
		Provider: providerID,
		Code:     e.Status,
		Message:  e.Message,
		Err:      core.ErrProvider,
	}
}

// newEmptyResponseError marks a success response with no candidates.
func newEmptyResponseError(message string) error {
	return &core.ProviderError{
		Provider: providerID,
		Message:  message,
		Err:      core.ErrEmptyResponse,
	}
}

// newMissingPayloadError marks candidates that held no usable payload.
func newMissingPayloadError(message string) error {
	return &core.ProviderError{
		Provider: providerID,
		Message:  message,
		Err:      core.ErrMissingPayload,
	}
}
