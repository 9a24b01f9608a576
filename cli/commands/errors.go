package commands

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/mrafaeldie12/nano-banana-pro-mcp/core"
)

// Exit codes returned by the CLI.
const (
	ExitSuccess    = 0
	ExitValidation = 1
	ExitProvider   = 2
	ExitNetwork    = 3
)

// exitError carries an exit code alongside the underlying error so
// main can translate failures into process exit codes. reported marks
// errors already printed to stderr, which Execute must not print
// again.
type exitError struct {
	code     int
	err      error
	reported bool
}

func (e *exitError) Error() string {
	if e.err == nil {
		return ""
	}
	return e.err.Error()
}

func (e *exitError) Unwrap() error { return e.err }

// ExitCode implements the ExitCoder interface checked in main.
func (e *exitError) ExitCode() int { return e.code }

func exitWithCode(code int, err error) error {
	return &exitError{code: code, err: err}
}

func errorReported(err error) bool {
	var exitErr *exitError
	return errors.As(err, &exitErr) && exitErr.reported
}

// handleProviderError prints a diagnosis to stderr and wraps err with
// the matching exit code.
func (a *App) handleProviderError(err error) error {
	var provErr *core.ProviderError
	if errors.As(err, &provErr) {
		if a.jsonOutput {
			a.printErrorJSON(provErr)
		} else {
			fmt.Fprintf(a.stderr, "Error: %s\n", provErr.Message)
			if a.verbose {
				fmt.Fprintf(a.stderr, "  provider=%s status=%d code=%s\n",
					provErr.Provider, provErr.Status, provErr.Code)
			}
		}
	} else {
		fmt.Fprintf(a.stderr, "Error: %s\n", err)
	}

	code := ExitProvider
	switch {
	case errors.Is(err, core.ErrNetwork):
		code = ExitNetwork
	case errors.Is(err, core.ErrInvalidModel),
		errors.Is(err, core.ErrNoImages),
		errors.Is(err, core.ErrAPIKeyRequired):
		code = ExitValidation
	}
	return &exitError{code: code, err: err, reported: true}
}

func (a *App) printErrorJSON(provErr *core.ProviderError) {
	payload := map[string]any{
		"error":    provErr.Message,
		"provider": provErr.Provider,
	}
	if provErr.Status != 0 {
		payload["status"] = provErr.Status
	}
	if provErr.Code != "" {
		payload["code"] = provErr.Code
	}
	data, err := json.Marshal(payload)
	if err != nil {
		fmt.Fprintf(a.stderr, "Error: %s\n", provErr.Message)
		return
	}
	fmt.Fprintln(a.stderr, string(data))
}
