package commands

import (
	"errors"

	"github.com/spf13/cobra"

	"tableflip.dev/remcal/pkg/calendar"
	"tableflip.dev/remcal/pkg/commands/options"
	"tableflip.dev/remcal/pkg/diag"
	"tableflip.dev/remcal/pkg/tui/app"
	"tableflip.dev/remcal/pkg/tui/theme"
)

// ErrNotTerminal is returned when the UI is started without a terminal.
var ErrNotTerminal = errors.New("ui needs an interactive terminal, try `remcal grid`")

func addUI(topLevel *cobra.Command) {
	on := &options.OnOptions{}
	co := &options.ConfigOptions{}
	imp := &options.ImportOptions{}
	noMouse := false

	cmd := &cobra.Command{
		Use:   "ui",
		Short: "open the month calendar",
		Example: `
remcal ui
remcal ui --on 2021-3-1
remcal ui --ics ~/calendar.ics
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ref, err := on.GetOn()
			if err != nil {
				return err
			}
			if !options.IsTerminal(cmd.OutOrStdout()) {
				return ErrNotTerminal
			}
			cfg, err := co.Load()
			if err != nil {
				return err
			}
			book, err := imp.Book(cfg.ReminderColor)
			if err != nil {
				return err
			}
			log, closer, err := diag.NewLogger(cfg.LogFile, cfg.LogLevel)
			if err != nil {
				return err
			}
			defer closer.Close()

			log.Info("starting ui", "month", ref, "mouse", cfg.Mouse && !noMouse, "reminders", book.Len())
			theme.Apply(cfg.Theme)
			return app.Run(cmd.Context(), app.Options{
				Reference:    ref,
				Today:        calendar.Today(),
				DefaultColor: cfg.ReminderColor,
				Logger:       log,
				Theme:        theme.Default(),
				Mouse:        cfg.Mouse && !noMouse,
				Book:         book,
			})
		},
	}

	options.AddOnArgs(cmd, on)
	options.AddConfigArgs(cmd, co)
	options.AddImportArgs(cmd, imp)
	cmd.Flags().BoolVar(&noMouse, "no-mouse", false, "Disable mouse support.")

	topLevel.AddCommand(cmd)
}
