package commands

import (
	"github.com/spf13/cobra"

	"tableflip.dev/remcal/pkg/calendar"
	"tableflip.dev/remcal/pkg/commands/options"
	"tableflip.dev/remcal/pkg/printers"
)

func addGrid(topLevel *cobra.Command) {
	on := &options.OnOptions{}
	oo := &options.OutputOptions{}
	imp := &options.ImportOptions{}
	table := false

	cmd := &cobra.Command{
		Use:   "grid",
		Short: "print the week rows of a month",
		Example: `
remcal grid
remcal grid --on 2021-3-10 --table
remcal grid --on 2/1 --json
remcal grid --on 2021-3-1 --ics ./work.ics
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			oo.Out = cmd.OutOrStdout()
			ref, err := on.GetOn()
			if err != nil {
				return oo.HandleError(err)
			}
			g, err := calendar.ComputeMonthGrid(ref)
			if err != nil {
				return oo.HandleError(err)
			}

			book, err := imp.Book("")
			if err != nil {
				return oo.HandleError(err)
			}

			gp := &printers.GridPrinter{Out: cmd.OutOrStdout(), Today: calendar.Today(), Book: book}
			switch {
			case oo.JSON:
				return oo.HandleError(gp.JSON(g))
			case table:
				gp.Table(g)
			default:
				gp.Text(g)
			}
			return nil
		},
	}

	options.AddOnArgs(cmd, on)
	options.AddOutputArg(cmd, oo)
	options.AddImportArgs(cmd, imp)
	cmd.Flags().BoolVar(&table, "table", false, "Output as a table.")

	topLevel.AddCommand(cmd)
}
