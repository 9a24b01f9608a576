package commands

import (
	"errors"
	"fmt"
	"testing"

	"github.com/mrafaeldie12/nano-banana-pro-mcp/core"
)

func TestExitError(t *testing.T) {
	underlying := errors.New("something failed")
	err := exitWithCode(ExitNetwork, underlying)

	var exitErr *exitError
	if !errors.As(err, &exitErr) {
		t.Fatal("exitWithCode did not produce an *exitError")
	}
	if exitErr.ExitCode() != ExitNetwork {
		t.Errorf("ExitCode() = %d, want %d", exitErr.ExitCode(), ExitNetwork)
	}
	if err.Error() != "something failed" {
		t.Errorf("Error() = %q, want %q", err.Error(), "something failed")
	}
	if !errors.Is(err, underlying) {
		t.Error("errors.Is(err, underlying) = false, want true")
	}
}

func TestExitErrorPreservesSentinels(t *testing.T) {
	provErr := &core.ProviderError{
		Provider: "gemini",
		Status:   429,
		Message:  "quota exceeded",
		Err:      core.ErrRateLimited,
	}
	err := exitWithCode(ExitProvider, fmt.Errorf("generate: %w", provErr))

	if !errors.Is(err, core.ErrRateLimited) {
		t.Error("errors.Is(err, ErrRateLimited) = false, want true through exitError")
	}
	var got *core.ProviderError
	if !errors.As(err, &got) {
		t.Fatal("errors.As(*core.ProviderError) = false, want true through exitError")
	}
	if got.Status != 429 {
		t.Errorf("Status = %d, want 429", got.Status)
	}
}

func TestErrorReported(t *testing.T) {
	if errorReported(errors.New("plain")) {
		t.Error("errorReported(plain error) = true, want false")
	}
	if errorReported(exitWithCode(ExitValidation, errors.New("unprinted"))) {
		t.Error("errorReported(exitWithCode) = true, want false")
	}
	if !errorReported(&exitError{code: ExitProvider, err: errors.New("printed"), reported: true}) {
		t.Error("errorReported(reported exitError) = false, want true")
	}
}
