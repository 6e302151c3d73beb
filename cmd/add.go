package cmd

import (
	"github.com/spf13/cobra"

	"github.com/PolarWolf314/rvault/internal/secrets"
	"github.com/PolarWolf314/rvault/internal/ui"
	"github.com/PolarWolf314/rvault/internal/workflows"
)

var addCmd = &cobra.Command{
	Use:     "add [name]",
	Aliases: []string{"a"},
	Short:   "Encrypts a new secret into the vault",
	Long: `Encrypts a secret to the vault's key and stores it under name.

The value is read from stdin when it is piped, otherwise you are asked
for it without echo. An existing secret with the same name is replaced.

Examples:
  rvault add github-token
  echo -n hunter2 | rvault add bank`,
	Args: cobra.MaximumNArgs(1),
	RunE: runAdd,
}

func runAdd(cmd *cobra.Command, args []string) error {
	Logger.Infof("Starting add command")

	env, _, err := loadEnv(cmd)
	if err != nil {
		return err
	}

	var name string
	if len(args) > 0 {
		name = args[0]
	} else {
		if err := needTerminal("a secret name"); err != nil {
			return err
		}
		name, err = promptInput("Name of the new secret", "github-token", secrets.ValidateName)
		if err != nil {
			return err
		}
	}
	// Fail on a bad name before asking for the value.
	if err := secrets.ValidateName(name); err != nil {
		return err
	}

	var value []byte
	if stdinPiped() {
		Logger.Debugf("Reading the value of %s from stdin", name)
		value, err = readStdin()
	} else {
		if err := needTerminal("the value of " + name); err != nil {
			return err
		}
		var typed string
		typed, err = promptPassword("Value of " + name)
		value = []byte(typed)
	}
	if err != nil {
		return err
	}

	spinner, cleanup := startSpinner("Encrypting " + name + "...")
	defer cleanup()

	result, err := workflows.Add(cmd.Context(), env, workflows.AddOptions{Name: name, Secret: value})
	clear(value)
	if err != nil {
		return err
	}

	if result.Overwritten {
		spinner.FinalMSG = ui.Warning.Sprint("!") + " Replaced the existing value of " + ui.Name.Sprint(result.Name)
		return nil
	}
	spinner.FinalMSG = success("Stored " + ui.Name.Sprint(result.Name))
	return nil
}
