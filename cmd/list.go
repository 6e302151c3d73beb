package cmd

import (
	"github.com/spf13/cobra"

	"github.com/PolarWolf314/rvault/internal/ui"
	"github.com/PolarWolf314/rvault/internal/utils"
	"github.com/PolarWolf314/rvault/internal/workflows"
)

var listCmd = &cobra.Command{
	Use:     "list [pattern]",
	Aliases: []string{"l", "ls"},
	Short:   "Lists stored secrets",
	Long: `Lists the names of stored secrets in sorted order.

The optional pattern is a glob where ** crosses directories.

Examples:
  rvault list
  rvault list 'otp/**'
  rvault list 'aws-*'`,
	Args: cobra.MaximumNArgs(1),
	RunE: runList,
}

func runList(cmd *cobra.Command, args []string) error {
	env, _, err := loadEnv(cmd)
	if err != nil {
		return err
	}

	opts := workflows.ListOptions{}
	if len(args) > 0 {
		opts.Pattern = args[0]
	}

	result, err := workflows.List(cmd.Context(), env, opts)
	if err != nil {
		return err
	}
	Logger.Debugf("Listed %d secrets", len(result.Names))

	if len(result.Names) == 0 {
		if opts.Pattern != "" {
			cmd.PrintErrln(ui.Muted.Sprint("no secrets match " + opts.Pattern))
		} else {
			cmd.PrintErrln(ui.Muted.Sprint("no secrets stored"))
		}
		return nil
	}

	out := cmd.OutOrStdout()
	for _, name := range result.Names {
		if _, err := out.Write([]byte(name + "\n")); err != nil {
			return err
		}
	}
	if stdoutTerminal() {
		n := len(result.Names)
		cmd.PrintErrln(ui.Muted.Sprintf("%d %s", n, utils.Pluralize(n, "secret")))
	}
	return nil
}
