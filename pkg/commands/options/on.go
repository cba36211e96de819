package options

import (
	"github.com/spf13/cobra"

	"tableflip.dev/remcal/pkg/calendar"
)

// OnOptions picks the reference date.
type OnOptions struct {
	OnString string
}

func AddOnArgs(cmd *cobra.Command, o *OnOptions) {
	cmd.Flags().StringVar(&o.OnString, "on", "",
		`Specify a date, example: --on="2021-3-10" or --on="3/10". Defaults to today.`)
}

// GetOn returns the parsed date, or today when --on is unset.
func (o *OnOptions) GetOn() (calendar.Date, error) {
	if o.OnString == "" {
		return calendar.Today(), nil
	}
	return calendar.ParseDate(o.OnString)
}
