package cmd

import (
	"fmt"
	"time"

	"github.com/briandowns/spinner"
	"github.com/spf13/cobra"

	"github.com/PolarWolf314/rvault/internal/clipboard"
	"github.com/PolarWolf314/rvault/internal/configs"
	"github.com/PolarWolf314/rvault/internal/otp"
	"github.com/PolarWolf314/rvault/internal/ui"
	"github.com/PolarWolf314/rvault/internal/workflows"
)

func init() {
	clipCmd.Flags().DurationP(configs.FlagClipTimeout, "t", 0, "how long the value stays on the clipboard (default 10s)")
}

var clipCmd = &cobra.Command{
	Use:     "clip [name]",
	Aliases: []string{"c"},
	Short:   "Copies a secret to the clipboard for a few seconds",
	Long: `Decrypts a secret and copies it to the clipboard, then clears the
clipboard once the timeout passes or any key is pressed.

For secrets holding an otpauth:// URI the current one-time code is copied.

Examples:
  rvault clip bank
  rvault clip --timeout 30s otp/GitHub/alice`,
	Args: cobra.MaximumNArgs(1),
	RunE: runClip,
}

func runClip(cmd *cobra.Command, args []string) error {
	env, cfg, err := loadEnv(cmd)
	if err != nil {
		return err
	}

	name, err := nameArg(cmd.Context(), env, args, "Which secret should be copied?")
	if err != nil {
		return err
	}

	stopCountdown := func() {}
	result, err := workflows.Clip(cmd.Context(), env, workflows.ClipOptions{
		Name:    name,
		Session: clipboard.NewSession(newClipboard(), cfg.ClipTimeout),
		Listen:  keyEvents,
		Exposing: func(shown *workflows.ShowResult) {
			stopCountdown = startCountdown(shown, cfg.ClipTimeout)
		},
	})
	stopCountdown()
	if err != nil {
		return err
	}

	if result.Outcome.ClearErr != nil {
		Logger.WarnfUser("The clipboard could not be cleared, it may still hold the secret: %v", result.Outcome.ClearErr)
		return nil
	}
	cmd.Println(success("Clipboard cleared " + ui.Muted.Sprint(result.Outcome.Reason.String())))
	return nil
}

// startCountdown shows a spinner counting down the exposure window.
func startCountdown(shown *workflows.ShowResult, window time.Duration) func() {
	what := "Copied " + ui.Name.Sprint(shown.Name)
	if shown.Kind == otp.KindOTP {
		what = "Copied the code for " + ui.Name.Sprint(shown.Name)
	}

	deadline := time.Now().Add(window)
	s, cleanup := startSpinner(countdown(what, window))
	s.Lock()
	s.PreUpdate = func(s *spinner.Spinner) {
		s.Suffix = " " + countdown(what, time.Until(deadline))
	}
	s.Unlock()
	return cleanup
}

func countdown(what string, left time.Duration) string {
	if left < 0 {
		left = 0
	}
	return fmt.Sprintf("%s, clearing in %s %s", what, left.Round(time.Second), ui.Muted.Sprint("press any key to clear now"))
}
