// Package identity persists the binding between a vault and its gpg key.
//
// The binding is a single JSON document at <root>/.rvault:
//
//	{"id": "<key-id>"}
//
// It is written once by `rvault init` and read by every other command.
package identity

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	kerrors "github.com/PolarWolf314/rvault/internal/errors"
)

// FileName is the binding file inside the vault root.
const FileName = ".rvault"

type binding struct {
	ID string `json:"id"`
}

// Path returns the binding file location for root.
func Path(root string) string {
	return filepath.Join(root, FileName)
}

// Read returns the key id the vault at root is bound to.
//
// Returns ErrNotInitialized if the root is missing or not a directory, or if
// the binding file is absent, malformed, or has no id.
func Read(root string) (string, error) {
	info, err := os.Stat(root)
	if err != nil {
		return "", fmt.Errorf("%w: %s does not exist", kerrors.ErrNotInitialized, root)
	}
	if !info.IsDir() {
		return "", fmt.Errorf("%w: %s is not a directory", kerrors.ErrNotInitialized, root)
	}

	data, err := os.ReadFile(Path(root))
	if err != nil {
		return "", fmt.Errorf("%w: %w", kerrors.ErrNotInitialized, err)
	}

	var b binding
	if err := json.Unmarshal(data, &b); err != nil {
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) && typeErr.Field == "id" {
			return "", fmt.Errorf("%w: %s id must be a string, found a %s", kerrors.ErrNotInitialized, FileName, typeErr.Value)
		}
		return "", fmt.Errorf("%w: failed to parse %s: %w", kerrors.ErrNotInitialized, FileName, err)
	}
	if b.ID == "" {
		return "", fmt.Errorf("%w: %s has no key id", kerrors.ErrNotInitialized, FileName)
	}
	return b.ID, nil
}

// Write binds the vault at root to keyID, creating the root if needed and
// replacing any previous binding.
func Write(root, keyID string) error {
	if keyID == "" {
		return fmt.Errorf("%w: empty key id", kerrors.ErrInvalidConfig)
	}
	if err := os.MkdirAll(root, 0700); err != nil {
		return fmt.Errorf("%w: creating %s: %w", kerrors.ErrIO, root, err)
	}

	data, err := json.Marshal(binding{ID: keyID})
	if err != nil {
		return err
	}
	if err := os.WriteFile(Path(root), data, 0600); err != nil {
		return fmt.Errorf("%w: writing %s: %w", kerrors.ErrIO, FileName, err)
	}
	return nil
}
