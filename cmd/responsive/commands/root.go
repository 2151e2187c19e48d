// Package commands implements the CLI commands for responsive.
package commands

import (
	"context"
	"errors"
	"io"
	"io/fs"
	"os"

	"github.com/spf13/cobra"
	"go.trai.ch/responsive/internal/adapters/config"
	"go.trai.ch/responsive/internal/app"
	"go.trai.ch/responsive/internal/build"
	"go.trai.ch/responsive/internal/core/domain"
)

// CLI represents the command line interface for responsive.
type CLI struct {
	app       Application
	rootCmd   *cobra.Command
	logOutput func(json, debug bool)
}

// Application represents the application logic interface.
type Application interface {
	Queries(path string) (*domain.Descriptors, error)
	Match(path string, width, height int) (*domain.Snapshot, error)
	Watch(ctx context.Context, path string, opts app.WatchOptions) error
}

// Option configures the CLI.
type Option func(*CLI)

// WithLogOutput registers fn to apply the logging flags before a command runs.
func WithLogOutput(fn func(json, debug bool)) Option {
	return func(c *CLI) { c.logOutput = fn }
}

// New creates a new CLI instance with the given app.
func New(a Application, opts ...Option) *CLI {
	rootCmd := &cobra.Command{
		Use:           "responsive",
		Short:         "Track which breakpoint the terminal falls into",
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       build.Version,
	}

	rootCmd.InitDefaultVersionFlag()
	rootCmd.Flags().Lookup("version").Usage = "Print the application version"

	rootCmd.InitDefaultHelpFlag()
	rootCmd.Flags().Lookup("help").Usage = "Show help for command"

	rootCmd.PersistentFlags().StringP("config", "c", "",
		"Path to the configuration file (default "+config.DefaultFilename+" when present)")
	rootCmd.PersistentFlags().Bool("log-json", false, "Write logs as JSON")
	rootCmd.PersistentFlags().Bool("verbose", false, "Enable debug logs")

	c := &CLI{
		app:     a,
		rootCmd: rootCmd,
	}
	for _, opt := range opts {
		opt(c)
	}

	rootCmd.PersistentPreRun = func(cmd *cobra.Command, _ []string) {
		if c.logOutput == nil {
			return
		}
		jsonLogs, _ := cmd.Flags().GetBool("log-json")
		verbose, _ := cmd.Flags().GetBool("verbose")
		c.logOutput(jsonLogs, verbose)
	}

	rootCmd.AddCommand(c.newQueriesCmd())
	rootCmd.AddCommand(c.newMatchCmd())
	rootCmd.AddCommand(c.newWatchCmd())
	rootCmd.AddCommand(c.newVersionCmd())

	return c
}

// Execute runs the root command with the given context.
func (c *CLI) Execute(ctx context.Context) error {
	c.rootCmd.SetContext(ctx)
	return c.rootCmd.Execute()
}

// SetArgs sets the arguments for the root command. Used for testing.
func (c *CLI) SetArgs(args []string) {
	c.rootCmd.SetArgs(args)
}

// SetOutput sets the output and error streams for the root command. Used for testing.
func (c *CLI) SetOutput(out, err io.Writer) {
	c.rootCmd.SetOut(out)
	c.rootCmd.SetErr(err)
}

// configPath returns the --config flag, or the default file name when that
// file exists in the working directory. An empty path selects the built-in
// defaults.
func configPath(cmd *cobra.Command) string {
	if path, _ := cmd.Flags().GetString("config"); path != "" {
		return path
	}
	if _, err := os.Stat(config.DefaultFilename); err == nil || !errors.Is(err, fs.ErrNotExist) {
		return config.DefaultFilename
	}
	return ""
}
