package core

import (
	"errors"
	"strings"
	"testing"
)

func TestProviderErrorFormat(t *testing.T) {
	tests := []struct {
		name string
		err  *ProviderError
		want string
	}{
		{
			name: "with status",
			err: &ProviderError{
				Provider: "gemini",
				Status:   401,
				Code:     "UNAUTHENTICATED",
				Message:  "Unauthorized",
				Err:      ErrUnauthorized,
			},
			want: "gemini: Unauthorized (status=401, code=UNAUTHENTICATED)",
		},
		{
			name: "code only",
			err: &ProviderError{
				Provider: "gemini",
				Code:     "INVALID_ARGUMENT",
				Message:  "Invalid request",
				Err:      ErrProvider,
			},
			want: "gemini: Invalid request (code=INVALID_ARGUMENT)",
		},
		{
			name: "message only",
			err: &ProviderError{
				Provider: "gemini",
				Message:  "no image data in response",
				Err:      ErrMissingPayload,
			},
			want: "gemini: no image data in response",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("Error() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestProviderErrorUnwrap(t *testing.T) {
	err := &ProviderError{
		Provider: "gemini",
		Status:   429,
		Message:  "quota exceeded",
		Err:      ErrRateLimited,
	}

	if !errors.Is(err, ErrRateLimited) {
		t.Error("errors.Is(err, ErrRateLimited) = false, want true")
	}
	if errors.Is(err, ErrUnauthorized) {
		t.Error("errors.Is(err, ErrUnauthorized) = true, want false")
	}

	var pe *ProviderError
	if !errors.As(err, &pe) {
		t.Fatal("errors.As(err, *ProviderError) = false, want true")
	}
	if pe.Status != 429 {
		t.Errorf("ProviderError.Status = %d, want 429", pe.Status)
	}
}

func TestValidationErrorsCarryGuidance(t *testing.T) {
	if !strings.Contains(ErrAPIKeyRequired.Error(), "GEMINI_API_KEY") {
		t.Errorf("ErrAPIKeyRequired = %q, want mention of GEMINI_API_KEY", ErrAPIKeyRequired)
	}
	if !strings.Contains(ErrNoImages.Error(), "at least one image") {
		t.Errorf("ErrNoImages = %q, want mention of the minimum attachment count", ErrNoImages)
	}
}
