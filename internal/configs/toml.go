package configs

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"strings"

	"github.com/BurntSushi/toml"

	kerrors "github.com/PolarWolf314/rvault/internal/errors"
)

// loadTOML reads a config file layer. It returns nil, nil when the file does
// not exist. Unknown keys are rejected so typos do not go unnoticed.
func loadTOML(path string) (*layer, error) {
	l := &layer{}
	meta, err := toml.DecodeFile(path, l)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, invalid(fmt.Errorf("failed to load %s: %w", path, err))
	}

	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, 0, len(undecoded))
		for _, key := range undecoded {
			keys = append(keys, key.String())
		}
		return nil, invalid(fmt.Errorf("unknown keys in %s: %s", path, strings.Join(keys, ", ")))
	}

	return l, nil
}

// Encode writes cfg in config file format.
func Encode(w io.Writer, cfg *Config) error {
	return toml.NewEncoder(w).Encode(struct {
		VaultPath   string `toml:"vault_path"`
		GPGBinary   string `toml:"gpg_binary"`
		AskPassword bool   `toml:"ask_password"`
		ClipTimeout string `toml:"clip_timeout"`
	}{cfg.VaultPath, cfg.GPGBinary, cfg.AskPassword, cfg.ClipTimeout.String()})
}

func invalid(err error) error {
	return fmt.Errorf("%w: %w", kerrors.ErrInvalidConfig, err)
}
