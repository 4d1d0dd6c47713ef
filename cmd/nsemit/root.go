package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dshills/nsemit/internal/app"
	"github.com/dshills/nsemit/internal/config"
)

// rootFlags holds the persistent flags shared by every command.
type rootFlags struct {
	configPath string
	verbosity  int
	logFormat  string
}

// NewRootCmd builds the command tree.
func NewRootCmd() *cobra.Command {
	flags := &rootFlags{}

	rootCmd := &cobra.Command{
		Use:   "nsemit",
		Short: "A namespaced event emitter driven by Lua scripts",
		Long: `nsemit registers Lua callbacks under namespaced event names and
dispatches them synchronously.

Names are written value.namespace; a bare value uses the "base" namespace
and, when triggered, reaches that value in every namespace.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().StringVar(&flags.configPath, "config", "",
		fmt.Sprintf("config file (default is %s)", config.DefaultPath()))
	rootCmd.PersistentFlags().CountVarP(&flags.verbosity, "verbose", "v",
		"Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)")
	rootCmd.PersistentFlags().StringVar(&flags.logFormat, "log-format", "",
		"Log format: console or json (overrides config)")

	rootCmd.AddCommand(
		newRunCmd(flags),
		newTriggerCmd(flags),
		newInspectCmd(flags),
		newSplitCmd(),
		newParseCmd(),
		newVersionCmd(),
	)

	return rootCmd
}

// newApp creates an Application wired to the command's output streams.
func newApp(cmd *cobra.Command, flags *rootFlags, scripts []string) (*app.Application, error) {
	application, err := app.New(app.Options{
		ConfigPath: flags.configPath,
		Verbosity:  flags.verbosity,
		LogFormat:  flags.logFormat,
		Scripts:    scripts,
		Output:     cmd.OutOrStdout(),
		LogOutput:  cmd.ErrOrStderr(),
	})
	if err != nil {
		return nil, err
	}

	logger := application.Logger()
	logger.Debug().Str("command", cmd.Name()).Msg("Command started")
	return application, nil
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "nsemit version %s\n", version)
			fmt.Fprintf(out, "  commit: %s\n", commit)
			fmt.Fprintf(out, "  built:  %s\n", date)
		},
	}
}
