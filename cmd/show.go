package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/PolarWolf314/rvault/internal/otp"
	"github.com/PolarWolf314/rvault/internal/ui"
	"github.com/PolarWolf314/rvault/internal/workflows"
)

var showCmd = &cobra.Command{
	Use:     "show [name]",
	Aliases: []string{"s"},
	Short:   "Decrypts a secret and prints it",
	Long: `Decrypts a secret and prints its value on stdout.

For secrets holding an otpauth:// URI the current one-time code is
printed instead, and the time it stays valid goes to stderr.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runShow,
}

func runShow(cmd *cobra.Command, args []string) error {
	env, _, err := loadEnv(cmd)
	if err != nil {
		return err
	}

	name, err := nameArg(cmd.Context(), env, args, "Which secret should be shown?")
	if err != nil {
		return err
	}

	result, err := workflows.Show(cmd.Context(), env, workflows.ShowOptions{Name: name})
	if err != nil {
		return err
	}

	if _, err := fmt.Fprintln(cmd.OutOrStdout(), ui.Secret.Sprint(result.Value)); err != nil {
		return err
	}
	if result.Kind == otp.KindOTP {
		cmd.PrintErrln(ui.Muted.Sprint("valid for " + result.Remaining.Round(time.Second).String()))
	}
	return nil
}
