package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	kerrors "github.com/PolarWolf314/rvault/internal/errors"
	"github.com/PolarWolf314/rvault/internal/gpg"
	"github.com/PolarWolf314/rvault/internal/ui"
	"github.com/PolarWolf314/rvault/internal/utils"
	"github.com/PolarWolf314/rvault/internal/workflows"
)

var initKey string

func init() {
	initCmd.Flags().StringVarP(&initKey, "key", "k", "", "key id to bind, or a suffix of it")
}

var initCmd = &cobra.Command{
	Use:     "init",
	Aliases: []string{"i"},
	Short:   "Binds the vault to one of your GPG secret keys",
	Long: `Binds the vault to one of your GPG secret keys, creating the vault
directory if needed. With several keys you are asked to pick one.

Running init again rebinds the vault. Secrets already stored stay
encrypted to the key they were added with.

Examples:
  rvault init
  rvault init --key 0123456789ABCDEF`,
	Args: cobra.NoArgs,
	RunE: runInit,
}

func runInit(cmd *cobra.Command, args []string) error {
	Logger.Infof("Starting init command")

	env, _, err := loadEnv(cmd)
	if err != nil {
		return err
	}

	result, err := workflows.Init(cmd.Context(), env, workflows.InitOptions{
		KeyID: initKey,
		Pick:  pickKey,
	})
	if err != nil {
		return err
	}

	if result.Previous != "" && result.Previous != result.Identity.ID {
		Logger.WarnfUser("Vault was bound to %s; existing secrets remain encrypted to it", ui.Key.Sprint(result.Previous))
	}
	cmd.Println(success("Vault " + ui.Path.Sprint(env.Root) + " is bound to " + ui.Key.Sprint(result.Identity.String())))
	return nil
}

func pickKey(keys []gpg.Identity) (gpg.Identity, error) {
	items := make([]string, len(keys))
	for i, k := range keys {
		items[i] = k.String()
	}
	if !interactive() {
		return gpg.Identity{}, fmt.Errorf("%w: %d keys available, choose one with --key:%s",
			kerrors.ErrKeyNotFound, len(keys), utils.FormatList(items, ui.Key))
	}
	i, err := promptSelect("Which key should encrypt this vault?", items)
	if err != nil {
		return gpg.Identity{}, err
	}
	return keys[i], nil
}
