package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dshills/nsemit/internal/app"
	"github.com/dshills/nsemit/internal/event/names"
)

func newRunCmd(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "run [script...]",
		Short: "Run Lua scripts against a fresh emitter",
		Long: `Run executes the configured scripts followed by the given ones, in order,
sharing a single emitter. Scripts can register, trigger and remove callbacks
through the global "emitter" table.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			application, err := newApp(cmd, flags, args)
			if err != nil {
				return err
			}
			defer application.Shutdown()

			return application.LoadScripts(cmd.Context())
		},
	}
}

func newTriggerCmd(flags *rootFlags) *cobra.Command {
	var (
		rawArgs string
		scripts []string
		asJSON  bool
	)

	cmd := &cobra.Command{
		Use:   "trigger <name>",
		Short: "Load scripts and trigger an event",
		Long: `Trigger loads the configured scripts and any --script files, then
dispatches the first name in <name> with the --args JSON array.`,
		Example: `  nsemit trigger --script handlers.lua 'save.file' --args '["a.txt"]'`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			triggerArgs, err := app.ParseArgs(rawArgs)
			if err != nil {
				return err
			}

			application, err := newApp(cmd, flags, scripts)
			if err != nil {
				return err
			}
			defer application.Shutdown()

			if err := application.LoadScripts(cmd.Context()); err != nil {
				return err
			}

			report, err := application.Trigger(cmd.Context(), args[0], triggerArgs)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if asJSON {
				data, err := report.JSON()
				if err != nil {
					return err
				}
				fmt.Fprintln(out, data)
				return nil
			}

			if !report.Fired {
				fmt.Fprintf(out, "%s: no callbacks\n", args[0])
				return nil
			}
			fmt.Fprintf(out, "%s: %d callback(s), result %v\n", args[0], report.Callbacks, report.Result)
			return nil
		},
	}

	cmd.Flags().StringVar(&rawArgs, "args", "", "JSON array of arguments passed to callbacks")
	cmd.Flags().StringArrayVarP(&scripts, "script", "s", nil, "Lua script to load before triggering (repeatable)")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print the result as JSON")

	return cmd
}

func newInspectCmd(flags *rootFlags) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "inspect [script...]",
		Short: "Load scripts and list registered events",
		RunE: func(cmd *cobra.Command, args []string) error {
			application, err := newApp(cmd, flags, args)
			if err != nil {
				return err
			}
			defer application.Shutdown()

			if err := application.LoadScripts(cmd.Context()); err != nil {
				return err
			}

			in := application.Inspect()
			out := cmd.OutOrStdout()

			if asJSON {
				data, err := in.JSON()
				if err != nil {
					return err
				}
				fmt.Fprintln(out, data)
				return nil
			}

			for _, ns := range in.Namespaces {
				fmt.Fprintf(out, "%s\n", ns.Name)
				for _, ev := range ns.Events {
					fmt.Fprintf(out, "  %s (%d)\n", ev.Value, ev.Callbacks)
				}
			}
			fmt.Fprintf(out, "%d callback(s)\n", in.Total)
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Print registrations as JSON")

	return cmd
}

func newSplitCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "split <names>",
		Short: "Show how a multi-name string is tokenized",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			for _, token := range names.Split(args[0]) {
				fmt.Fprintf(cmd.OutOrStdout(), "%q\n", token)
			}
		},
	}
}

func newParseCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "parse <token>",
		Short: "Show the namespace and value of a single token",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			n := names.Parse(args[0])
			fmt.Fprintf(cmd.OutOrStdout(), "namespace=%s value=%q\n", n.Namespace, n.Value)
		},
	}
}
