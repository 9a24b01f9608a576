// Command nanobanana is the Gemini image MCP server and CLI.
package main

import (
	"errors"
	"os"

	"github.com/mrafaeldie12/nano-banana-pro-mcp/cli/commands"
)

// ExitCoder is implemented by errors that carry a process exit code.
type ExitCoder interface {
	ExitCode() int
}

func main() {
	app := commands.NewApp()
	if err := app.Execute(); err != nil {
		var coder ExitCoder
		if errors.As(err, &coder) {
			os.Exit(coder.ExitCode())
		}
		os.Exit(1)
	}
}
