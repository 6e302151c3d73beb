package cmd

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/PolarWolf314/rvault/internal/otp"
	"github.com/PolarWolf314/rvault/internal/ui"
	"github.com/PolarWolf314/rvault/internal/workflows"
)

// qrDecoder reads enrollment QR codes. Tests replace it.
var qrDecoder otp.Decoder = otp.QRDecoder{}

var otpCmd = &cobra.Command{
	Use:   "otp [uri-or-image]",
	Short: "Enrolls a one-time password secret",
	Long: `Stores an otpauth:// provisioning URI under otp/<issuer>/<account>.

The argument is either the URI itself or the path of an image holding
its QR code. Without an argument you are asked for the URI.

Examples:
  rvault otp 'otpauth://totp/GitHub:alice?secret=JBSWY3DPEHPK3PXP&issuer=GitHub'
  rvault otp ~/Downloads/github-qr.png`,
	Args: cobra.MaximumNArgs(1),
	RunE: runOTP,
}

func runOTP(cmd *cobra.Command, args []string) error {
	Logger.Infof("Starting otp command")

	env, _, err := loadEnv(cmd)
	if err != nil {
		return err
	}

	var input string
	if len(args) > 0 {
		input = args[0]
	} else {
		if err := needTerminal("a provisioning URI"); err != nil {
			return err
		}
		input, err = promptInput("Provisioning URI", otp.Scheme+"totp/...", nil)
		if err != nil {
			return err
		}
	}
	if !strings.HasPrefix(strings.TrimSpace(input), otp.Scheme) {
		Logger.Debugf("Treating %s as a QR code image", input)
	}

	spinner, cleanup := startSpinner("Enrolling one-time password...")
	defer cleanup()

	result, err := workflows.EnrollOTP(cmd.Context(), env, workflows.OTPOptions{
		Input:   input,
		Decoder: qrDecoder,
	})
	if err != nil {
		return err
	}

	msg := success("Enrolled " + ui.Name.Sprint(result.Account) + " at " + ui.Name.Sprint(result.Issuer) +
		" as " + ui.Name.Sprint(result.Name))
	if result.Overwritten {
		msg += "\n" + ui.Warning.Sprint("!") + " It replaced an existing enrollment"
	}
	msg += "\n" + ui.Info.Sprint("→") + " Run " + ui.Command.Sprint("rvault show "+result.Name) + " for the current code"
	spinner.FinalMSG = msg
	return nil
}
