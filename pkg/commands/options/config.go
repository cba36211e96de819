package options

import (
	"github.com/spf13/cobra"

	"tableflip.dev/remcal/pkg/config"
)

// ConfigOptions points at an extra directory holding .remcal.yaml.
type ConfigOptions struct {
	Dir string
}

func AddConfigArgs(cmd *cobra.Command, o *ConfigOptions) {
	cmd.Flags().StringVar(&o.Dir, "config-dir", "",
		"Directory to search first for .remcal.yaml.")
}

// Load resolves the configuration.
func (o *ConfigOptions) Load() (*config.Config, error) {
	return config.Load(config.New(o.Dir))
}
