package commands

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/mrafaeldie12/nano-banana-pro-mcp/mcpserver"
)

func (a *App) newServeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the MCP server on stdio",
		Long: `Serve speaks the Model Context Protocol over stdin and stdout,
exposing the generate_image, edit_image, and describe_image tools.

Point an MCP host at the binary:

  {
    "mcpServers": {
      "nano-banana": {
        "command": "nanobanana",
        "args": ["serve"],
        "env": {"GEMINI_API_KEY": "..."}
      }
    }
  }

Logs are written to stderr so the protocol stream stays clean.`,
		RunE: a.runServe,
	}
}

func (a *App) runServe(cmd *cobra.Command, args []string) error {
	client, err := a.newProviderClient()
	if err != nil {
		return err
	}

	logger, err := newLogger(a.verbose, a.cfg)
	if err != nil {
		return exitWithCode(ExitValidation, err)
	}
	defer logger.Sync()

	srv := mcpserver.New(client,
		mcpserver.WithLogger(logger),
		mcpserver.WithVersion(Version),
	)

	logger.Info("starting MCP server",
		zap.String("version", Version),
		zap.String("transport", "stdio"),
	)
	if err := srv.ServeStdio(); err != nil {
		logger.Error("server stopped", zap.Error(err))
		return exitWithCode(ExitProvider, err)
	}
	return nil
}
