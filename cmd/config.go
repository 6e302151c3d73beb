package cmd

import (
	"github.com/spf13/cobra"

	"github.com/PolarWolf314/rvault/internal/configs"
	"github.com/PolarWolf314/rvault/internal/ui"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Prints the effective configuration",
	Long: `Prints the configuration this invocation would use, as TOML.

Values come from flags, then RVAULT_* environment variables, then the
config file, then built-in defaults. The output can be saved as the
config file.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := configs.Load(cmd.Flags())
		if err != nil {
			return err
		}
		if path, err := configs.DefaultPath(); err == nil {
			cmd.PrintErrln(ui.Muted.Sprint("config file " + path))
		}
		return configs.Encode(cmd.OutOrStdout(), cfg)
	},
}
