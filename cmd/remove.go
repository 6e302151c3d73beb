package cmd

import (
	"github.com/spf13/cobra"

	"github.com/PolarWolf314/rvault/internal/ui"
	"github.com/PolarWolf314/rvault/internal/workflows"
)

var removeCmd = &cobra.Command{
	Use:     "remove [name]",
	Aliases: []string{"r", "rm"},
	Short:   "Deletes a secret from the vault",
	Args:    cobra.MaximumNArgs(1),
	RunE:    runRemove,
}

func runRemove(cmd *cobra.Command, args []string) error {
	Logger.Infof("Starting remove command")

	env, _, err := loadEnv(cmd)
	if err != nil {
		return err
	}

	name, err := nameArg(cmd.Context(), env, args, "Which secret should be removed?")
	if err != nil {
		return err
	}

	result, err := workflows.Remove(cmd.Context(), env, workflows.RemoveOptions{Name: name})
	if err != nil {
		return err
	}
	cmd.Println(success("Removed " + ui.Name.Sprint(result.Name)))
	return nil
}
