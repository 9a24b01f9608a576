// Package commands implements the nanobanana CLI commands.
package commands

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/mrafaeldie12/nano-banana-pro-mcp/cli/config"
	"github.com/mrafaeldie12/nano-banana-pro-mcp/core"
	"github.com/mrafaeldie12/nano-banana-pro-mcp/providers/gemini"
)

// ConfigLoader loads CLI configuration from a path.
type ConfigLoader func(path string) (*config.Config, error)

// ClientFactory builds the image provider from an API key and config.
type ClientFactory func(apiKey string, cfg *config.Config) (core.Provider, error)

// KeyLookup resolves the API key, usually from the environment.
type KeyLookup func() string

// App wires the CLI commands to their dependencies so tests can swap
// in fakes without touching process state.
type App struct {
	root *cobra.Command

	loadConfig   ConfigLoader
	newClient    ClientFactory
	lookupAPIKey KeyLookup
	stdin        io.Reader
	stdout       io.Writer
	stderr       io.Writer

	cfgFile    string
	model      string
	jsonOutput bool
	verbose    bool
	cfg        *config.Config

	genPrompt string
	genAspect string
	genSize   string
	genImages []string
	genOutput string

	editPrompt string
	editOutput string

	descPrompt string
}

// AppOption customizes an App.
type AppOption func(*App)

// WithConfigLoader overrides how configuration is loaded.
func WithConfigLoader(loader ConfigLoader) AppOption {
	return func(a *App) { a.loadConfig = loader }
}

// WithClientFactory overrides how the provider client is built.
func WithClientFactory(factory ClientFactory) AppOption {
	return func(a *App) { a.newClient = factory }
}

// WithKeyLookup overrides how the API key is resolved.
func WithKeyLookup(lookup KeyLookup) AppOption {
	return func(a *App) { a.lookupAPIKey = lookup }
}

// WithIO overrides the standard streams.
func WithIO(stdin io.Reader, stdout, stderr io.Writer) AppOption {
	return func(a *App) {
		a.stdin = stdin
		a.stdout = stdout
		a.stderr = stderr
	}
}

// NewApp constructs the CLI with its default dependencies applied,
// then any options.
func NewApp(opts ...AppOption) *App {
	a := &App{
		loadConfig:   config.LoadConfig,
		newClient:    defaultClientFactory,
		lookupAPIKey: config.APIKey,
		stdin:        os.Stdin,
		stdout:       os.Stdout,
		stderr:       os.Stderr,
	}
	for _, opt := range opts {
		opt(a)
	}
	a.root = a.newRootCommand()
	return a
}

// Execute runs the CLI and returns the first error encountered.
// Errors not already reported by a handler are printed to stderr
// here, so main only has to map the exit code.
func (a *App) Execute() error {
	err := a.root.Execute()
	if err != nil && !errorReported(err) {
		fmt.Fprintf(a.stderr, "Error: %s\n", err)
	}
	return err
}

func defaultClientFactory(apiKey string, cfg *config.Config) (core.Provider, error) {
	var opts []gemini.Option
	if cfg != nil {
		if cfg.BaseURL != "" {
			opts = append(opts, gemini.WithBaseURL(cfg.BaseURL))
		}
		if cfg.TimeoutSeconds > 0 {
			opts = append(opts, gemini.WithTimeout(time.Duration(cfg.TimeoutSeconds)*time.Second))
		}
	}
	return gemini.New(apiKey, opts...)
}

func (a *App) newRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   "nanobanana",
		Short: "Gemini image generation over MCP and the command line",
		Long: `nanobanana exposes Google Gemini image models as MCP tools and as
direct commands.

Run "nanobanana serve" to speak the Model Context Protocol over
stdio, or use generate, edit, and describe for one-off calls. The API
key is read from ` + config.EnvAPIKey + ` or a .env file in the working
directory.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.initConfig()
		},
		// MCP hosts launch the bare binary with stdin on a pipe, so a
		// bare invocation serves. At a terminal, serving would block
		// silently on stdin; show help instead.
		RunE: func(cmd *cobra.Command, args []string) error {
			if f, ok := a.stdin.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
				return cmd.Help()
			}
			return a.runServe(cmd, args)
		},
	}

	root.PersistentFlags().StringVar(&a.cfgFile, "config", "", "config file (default ~/.nanobanana/config.yaml)")
	root.PersistentFlags().StringVar(&a.model, "model", "", "model ID (default "+string(gemini.DefaultModel)+")")
	root.PersistentFlags().BoolVar(&a.jsonOutput, "json", false, "emit machine-readable JSON output")
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "verbose logging and error detail")

	root.AddCommand(a.newServeCommand())
	root.AddCommand(a.newGenerateCommand())
	root.AddCommand(a.newEditCommand())
	root.AddCommand(a.newDescribeCommand())
	root.AddCommand(a.newModelsCommand())
	root.AddCommand(a.newVersionCommand())

	return root
}

func (a *App) initConfig() error {
	config.LoadEnv()

	cfg, err := a.loadConfig(a.cfgFile)
	if err != nil {
		return exitWithCode(ExitValidation, err)
	}
	a.cfg = cfg

	if a.model == "" {
		a.model = cfg.DefaultModel
	}
	return nil
}

// newProviderClient resolves the API key and builds the provider.
// Both failure modes are user-fixable, so they map to validation
// errors.
func (a *App) newProviderClient() (core.Provider, error) {
	apiKey := a.lookupAPIKey()
	if apiKey == "" {
		return nil, exitWithCode(ExitValidation,
			fmt.Errorf("%s is not set: export it or add it to a .env file", config.EnvAPIKey))
	}

	client, err := a.newClient(apiKey, a.cfg)
	if err != nil {
		return nil, exitWithCode(ExitValidation, err)
	}
	return client, nil
}
