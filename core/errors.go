package core

import (
	"errors"
	"fmt"
)

// ProviderError represents an error returned by a provider with full context.
type ProviderError struct {
	Provider string
	Status   int
	Code     string
	Message  string
	Err      error
}

// Error implements the error interface.
func (e *ProviderError) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("%s: %s (status=%d, code=%s)",
			e.Provider, e.Message, e.Status, e.Code)
	}
	if e.Code != "" {
		return fmt.Sprintf("%s: %s (code=%s)", e.Provider, e.Message, e.Code)
	}
	return fmt.Sprintf("%s: %s", e.Provider, e.Message)
}

// Unwrap returns the underlying error for error chaining.
func (e *ProviderError) Unwrap() error {
	return e.Err
}

// Sentinel errors for classification.
var (
	ErrUnauthorized = errors.New("unauthorized")
	ErrRateLimited  = errors.New("rate limited")
	ErrBadRequest   = errors.New("bad request")
	ErrNotFound     = errors.New("not found")
	ErrServer       = errors.New("server error")
	ErrNetwork      = errors.New("network error")
	ErrDecode       = errors.New("decode error")

	// ErrInvalidModel marks a model identifier outside the allow-list,
	// rejected before any network access.
	ErrInvalidModel = errors.New("invalid model")
	// ErrProvider marks a success-status response carrying an error
	// object in its body.
	ErrProvider = errors.New("provider error")
	// ErrEmptyResponse marks a success-status response with no candidates.
	ErrEmptyResponse = errors.New("empty response")
	// ErrMissingPayload marks a response whose candidates held no usable
	// image (generate/edit) or text (describe).
	ErrMissingPayload = errors.New("missing payload")
)

// Validation errors with actionable guidance.
var (
	ErrAPIKeyRequired = errors.New("api key required: set GEMINI_API_KEY or pass a non-empty key to gemini.New")
	ErrNoImages       = errors.New("no images: supply at least one image attachment")
)
