package cmd

import (
	"fmt"

	"github.com/common-nighthawk/go-figure"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/PolarWolf314/rvault/internal/clipboard"
	"github.com/PolarWolf314/rvault/internal/configs"
	"github.com/PolarWolf314/rvault/internal/gpg"
	logger "github.com/PolarWolf314/rvault/internal/logging"
	"github.com/PolarWolf314/rvault/internal/ui"
	"github.com/PolarWolf314/rvault/internal/utils"
	"github.com/PolarWolf314/rvault/internal/workflows"
)

var (
	verbose bool
	debug   bool
	Logger  logger.Logger

	RootCmd = &cobra.Command{
		Use:   "rvault",
		Short: "A local secret vault backed by your GPG key",
		Long: `rvault keeps secrets as individually encrypted files, each readable only
by the GPG key the vault is bound to.

Plain secrets are revealed as stored. Secrets holding an otpauth:// URI
reveal the one-time code that is valid right now.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			Logger = logger.Logger{
				Verbose: verbose,
				Debug:   debug,
			}
			Logger.Debugf("Running %s with verbose=%t, debug=%t", cmd.CommandPath(), verbose, debug)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if !stdoutTerminal() {
				return cmd.Help()
			}
			fmt.Println()
			figure.NewColorFigure("rvault", "alligator2", "green", true).Print()
			fmt.Println()
			fmt.Println(ui.Info.Sprint("→") + " Run " + ui.Command.Sprint("rvault --help") + " to see available commands")
			return nil
		},
	}
)

// Collaborators replaced by tests.
var (
	newEngine    = func(binary string) (gpg.Engine, gpg.KeyLister) { g := gpg.New(binary); return g, g }
	newClipboard = func() clipboard.Clipboard { return clipboard.System{} }
	keyEvents    = clipboard.TTYEvents

	interactive    = utils.IsTTYAvailable
	stdoutTerminal = utils.IsStdoutTerminal
	stdinPiped     = utils.StdinIsPiped
	readStdin      = utils.ReadStdin
	promptSelect   = ui.Select
	promptInput    = ui.Input
	promptPassword = ui.Password
)

func init() {
	RootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")
	RootCmd.PersistentFlags().BoolVarP(&debug, "debug", "d", false, "enable debug output")
	RootCmd.PersistentFlags().String(configs.FlagVault, "", "vault directory (default ~/.vault)")
	RootCmd.PersistentFlags().Bool(configs.FlagAskPassword, false, "prompt for the key passphrase instead of relying on gpg-agent")
	RootCmd.PersistentFlags().String(configs.FlagGPGBinary, "", "gpg executable (default gpg)")

	RootCmd.AddCommand(initCmd)
	RootCmd.AddCommand(listCmd)
	RootCmd.AddCommand(addCmd)
	RootCmd.AddCommand(removeCmd)
	RootCmd.AddCommand(showCmd)
	RootCmd.AddCommand(clipCmd)
	RootCmd.AddCommand(otpCmd)
	RootCmd.AddCommand(logCmd)
	RootCmd.AddCommand(configCmd)
}

// loadEnv resolves the configuration of this invocation and builds the
// workflow environment from it.
func loadEnv(cmd *cobra.Command) (*workflows.Env, *configs.Config, error) {
	cfg, err := configs.Load(cmd.Flags())
	if err != nil {
		return nil, nil, Logger.ErrorfAndReturn("failed to load configuration: %w", err)
	}
	Logger.Debugf("Vault %s, gpg %q, ask-password=%t, clip timeout %s", cfg.VaultPath, cfg.GPGBinary, cfg.AskPassword, cfg.ClipTimeout)

	engine, keys := newEngine(cfg.GPGBinary)
	env := &workflows.Env{
		Root:   cfg.VaultPath,
		Engine: engine,
		Keys:   keys,
		Logger: Logger,
	}
	if cfg.AskPassword {
		env.Passphrase = utils.TerminalPassphrase{Prompt: "Key passphrase: "}
	}
	return env, cfg, nil
}

// ResetGlobalState resets all global variables to their default values for testing.
func ResetGlobalState() {
	reset := func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	}
	RootCmd.PersistentFlags().VisitAll(reset)
	for _, c := range RootCmd.Commands() {
		c.Flags().VisitAll(reset)
	}
	verbose = false
	debug = false
	Logger = logger.Logger{}
}
