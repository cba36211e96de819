package commands

import (
	"github.com/spf13/cobra"

	"tableflip.dev/remcal/pkg/commands/options"
)

// New returns the remcal root command.
func New() *cobra.Command {
	cmd := &cobra.Command{
		Use:          "remcal",
		Short:        options.Wrap80("A month calendar with per-day reminders, on the command line."),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	AddCommands(cmd)
	return cmd
}

// AddCommands attaches every subcommand to topLevel.
func AddCommands(topLevel *cobra.Command) {
	addUI(topLevel)
	addGrid(topLevel)
	addVersion(topLevel)
}
