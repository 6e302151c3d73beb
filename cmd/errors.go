package cmd

import (
	"errors"

	"github.com/PolarWolf314/rvault/internal/configs"
	kerrors "github.com/PolarWolf314/rvault/internal/errors"
	"github.com/PolarWolf314/rvault/internal/ui"
)

// FormatError formats an error for display to the user, with a hint on how
// to recover where one exists.
func FormatError(err error) string {
	failed := ui.Error.Sprint("✗") + " " + err.Error()
	hint := func(parts ...string) string {
		msg := failed + "\n" + ui.Info.Sprint("→")
		for _, p := range parts {
			msg += " " + p
		}
		return msg
	}

	switch {
	case errors.Is(err, kerrors.ErrPromptCancelled):
		return ui.Muted.Sprint("cancelled")

	case errors.Is(err, kerrors.ErrNotInitialized):
		return hint("Run", ui.Command.Sprint("rvault init"), "first")

	case errors.Is(err, kerrors.ErrSecretNotFound):
		return hint("Run", ui.Command.Sprint("rvault list"), "to see stored secrets")

	case errors.Is(err, kerrors.ErrNoSecretKeys):
		return hint("Create a key with", ui.Command.Sprint("gpg --full-generate-key"))

	case errors.Is(err, kerrors.ErrKeyNotFound):
		return hint("Pass one of the ids shown by", ui.Command.Sprint("gpg --list-secret-keys --keyid-format long"), "to", ui.Flag.Sprint("--key"))

	case errors.Is(err, kerrors.ErrKeyTool):
		return hint("Check that gpg is installed, or set", ui.Flag.Sprint("--gpg-binary"))

	case errors.Is(err, kerrors.ErrDecryptFailed):
		return hint("Unlock your key with gpg-agent, or retry with", ui.Flag.Sprint("--ask-password"))

	case errors.Is(err, kerrors.ErrInvalidName):
		return hint("Names may only contain letters, digits, spaces, underscores and dashes")

	case errors.Is(err, kerrors.ErrInvalidConfig):
		path, _ := configs.DefaultPath()
		return hint("Check the RVAULT_* environment variables and", ui.Path.Sprint(path))

	case errors.Is(err, kerrors.ErrClipboardUnavailable):
		return hint("Use", ui.Command.Sprint("rvault show"), "instead")

	default:
		return failed
	}
}
