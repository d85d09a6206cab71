package app

import (
	"context"
	"errors"
	"os"

	"github.com/spf13/cobra"

	"github.com/agentstation/sitebridge/cmd/sitebridge/cmd/callapi"
	"github.com/agentstation/sitebridge/cmd/sitebridge/cmd/discover"
	"github.com/agentstation/sitebridge/cmd/sitebridge/cmd/generate"
	"github.com/agentstation/sitebridge/cmd/sitebridge/output"
)

// Execute runs the sitebridge CLI application with the given arguments.
// This is the main entry point called from main.go.
func (a *App) Execute(ctx context.Context, args []string) error {
	rootCmd := a.createRootCommand()
	rootCmd.SetArgs(args)
	return rootCmd.ExecuteContext(ctx)
}

// createRootCommand creates the root cobra command with all subcommands.
func (a *App) createRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:     "sitebridge",
		Short:   "LLM website bridge for socket-agent APIs",
		Version: a.version,
		Long: `Sitebridge is the command-line bridge a hosting browser shell invokes to
turn socket-agent APIs into interactive websites.

It discovers a service's self-description from its well-known path, feeds
that description to an LLM provider to synthesize a complete page, and
relays user-triggered API calls back to the service. Every invocation
prints exactly one JSON result object to standard output.`,
		Args:              cobra.ArbitraryArgs,
		PersistentPreRunE: a.setupCommand,
		SilenceUsage:      true,
		SilenceErrors:     true,
		RunE: func(_ *cobra.Command, args []string) error {
			// Reached when no subcommand matched. The hosting application
			// expects a JSON error object, not cobra's usage text.
			if len(args) == 0 {
				return output.Usage(a.output, "No command specified")
			}
			return output.Usage(a.output, "Unknown command: "+args[0])
		},
	}

	rootCmd.AddGroup(&cobra.Group{
		ID:    "bridge",
		Title: "Bridge Commands:",
	})

	// Global flags
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "verbose output (shortcut for --log-level=debug)")
	rootCmd.PersistentFlags().BoolP("quiet", "q", false, "minimal output (shortcut for --log-level=warn)")
	rootCmd.PersistentFlags().Bool("no-color", false, "disable colored output")
	rootCmd.PersistentFlags().String("log-level", "", "log level: trace, debug, info, warn, error (overrides -v/-q)")

	rootCmd.SetVersionTemplate("sitebridge {{.Version}}\n")

	a.registerCommands(rootCmd)

	return rootCmd
}

// registerCommands adds all subcommands to the root command.
func (a *App) registerCommands(rootCmd *cobra.Command) {
	rootCmd.AddCommand(discover.NewCommand(a))
	rootCmd.AddCommand(generate.NewCommand(a))
	rootCmd.AddCommand(callapi.NewCommand(a))
}

// setupCommand is called before any command runs.
func (a *App) setupCommand(cmd *cobra.Command, _ []string) error {
	verbose := mustGetBool(cmd, "verbose")
	quiet := mustGetBool(cmd, "quiet")
	noColor := mustGetBool(cmd, "no-color")
	logLevel := mustGetString(cmd, "log-level")

	a.config.UpdateFromFlags(verbose, quiet, noColor, logLevel)

	if verbose || quiet || logLevel != "" {
		logger := NewLogger(a.config)
		a.logger = &logger
	}

	return nil
}

// ExitOnError is a helper that reports an error and exits with status 1.
// This is meant to be used in main.go for top-level error handling. Failures
// whose JSON result was already emitted exit silently.
func ExitOnError(err error) {
	if err == nil {
		return
	}
	if !errors.Is(err, output.ErrFailed) {
		_, _ = os.Stderr.WriteString(err.Error() + "\n")
	}
	os.Exit(1)
}

// mustGetBool retrieves a boolean flag value or panics if the flag doesn't exist.
// This should only be used for flags defined in this package.
func mustGetBool(cmd *cobra.Command, name string) bool {
	val, err := cmd.Flags().GetBool(name)
	if err != nil {
		panic("programming error: failed to get flag " + name + ": " + err.Error())
	}
	return val
}

// mustGetString retrieves a string flag value or panics if the flag doesn't exist.
// This should only be used for flags defined in this package.
func mustGetString(cmd *cobra.Command, name string) string {
	val, err := cmd.Flags().GetString(name)
	if err != nil {
		panic("programming error: failed to get flag " + name + ": " + err.Error())
	}
	return val
}
