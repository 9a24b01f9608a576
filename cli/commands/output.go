package commands

import (
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"golang.org/x/term"

	"github.com/mrafaeldie12/nano-banana-pro-mcp/core"
)

// readAttachments loads image files and wraps them as base64
// attachments. A bad path is a validation error: nothing has gone to
// the network yet.
func (a *App) readAttachments(paths []string) ([]core.Attachment, error) {
	if len(paths) == 0 {
		return nil, nil
	}
	attachments := make([]core.Attachment, 0, len(paths))
	for _, path := range paths {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, exitWithCode(ExitValidation, fmt.Errorf("reading image %s: %w", path, err))
		}
		attachments = append(attachments, core.Attachment{
			MIMEType: core.DetectMIMEType(path, data),
			Data:     base64.StdEncoding.EncodeToString(data),
		})
	}
	return attachments, nil
}

// writeImageResult delivers a returned image to the user. Precedence:
// --output path, then --json, then raw bytes on stdout. Raw bytes are
// refused when stdout is a terminal.
func (a *App) writeImageResult(result *core.ImageResult, outputPath string) error {
	if outputPath != "" {
		raw, err := result.Bytes()
		if err != nil {
			return exitWithCode(ExitProvider, fmt.Errorf("decoding image data: %w", err))
		}
		if err := os.WriteFile(outputPath, raw, 0o644); err != nil {
			return exitWithCode(ExitValidation, fmt.Errorf("writing %s: %w", outputPath, err))
		}
		if a.jsonOutput {
			return a.printImageJSON(result, outputPath)
		}
		fmt.Fprintf(a.stderr, "Wrote %s (%s, %d bytes)\n", outputPath, result.MIMEType, len(raw))
		if result.Description != "" {
			fmt.Fprintln(a.stderr, result.Description)
		}
		return nil
	}

	if a.jsonOutput {
		return a.printImageJSON(result, "")
	}

	if isTerminal(a.stdout) {
		return exitWithCode(ExitValidation,
			errors.New("refusing to write image bytes to a terminal: pass --output or pipe stdout"))
	}

	raw, err := result.Bytes()
	if err != nil {
		return exitWithCode(ExitProvider, fmt.Errorf("decoding image data: %w", err))
	}
	if _, err := a.stdout.Write(raw); err != nil {
		return exitWithCode(ExitValidation, fmt.Errorf("writing image to stdout: %w", err))
	}
	if result.Description != "" {
		fmt.Fprintln(a.stderr, result.Description)
	}
	return nil
}

func (a *App) printImageJSON(result *core.ImageResult, outputPath string) error {
	payload := map[string]string{
		"mime_type": result.MIMEType,
		"data":      result.Data,
	}
	if outputPath != "" {
		payload["path"] = outputPath
		delete(payload, "data")
	}
	if result.Description != "" {
		payload["description"] = result.Description
	}
	data, err := json.Marshal(payload)
	if err != nil {
		return exitWithCode(ExitProvider, err)
	}
	fmt.Fprintln(a.stdout, string(data))
	return nil
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
