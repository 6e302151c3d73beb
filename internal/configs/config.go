package configs

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	kerrors "github.com/PolarWolf314/rvault/internal/errors"
)

const (
	DefaultGPGBinary   = "gpg"
	DefaultClipTimeout = 10 * time.Second
	defaultVaultDir    = ".vault"
)

// Config is the resolved runtime configuration of one invocation.
type Config struct {
	VaultPath   string
	GPGBinary   string
	AskPassword bool
	ClipTimeout time.Duration
}

// layer is one configuration source. Zero values and nil pointers mean the
// source did not set the field.
type layer struct {
	VaultPath   string        `toml:"vault_path" env:"RVAULT_VAULT"`
	GPGBinary   string        `toml:"gpg_binary" env:"RVAULT_GPG"`
	AskPassword *bool         `toml:"ask_password" env:"RVAULT_ASK_PASSWORD"`
	ClipTimeout time.Duration `toml:"clip_timeout" env:"RVAULT_CLIP_TIMEOUT"`
}

func defaults() *layer {
	askPassword := false
	vaultPath := ""
	if home, err := os.UserHomeDir(); err == nil {
		vaultPath = filepath.Join(home, defaultVaultDir)
	}
	return &layer{
		VaultPath:   vaultPath,
		GPGBinary:   DefaultGPGBinary,
		AskPassword: &askPassword,
		ClipTimeout: DefaultClipTimeout,
	}
}

// DefaultPath returns the location of the user's config file,
// $XDG_CONFIG_HOME/rvault/config.toml on Linux.
func DefaultPath() (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("error getting config directory: %w", err)
	}
	return filepath.Join(configDir, "rvault", "config.toml"), nil
}

func (l *layer) config() *Config {
	cfg := &Config{
		VaultPath:   expandHome(l.VaultPath),
		GPGBinary:   l.GPGBinary,
		ClipTimeout: l.ClipTimeout,
	}
	if l.AskPassword != nil {
		cfg.AskPassword = *l.AskPassword
	}
	return cfg
}

func (cfg *Config) validate() error {
	if strings.TrimSpace(cfg.VaultPath) == "" {
		return fmt.Errorf("%w: vault path is empty", kerrors.ErrInvalidConfig)
	}
	if strings.TrimSpace(cfg.GPGBinary) == "" {
		return fmt.Errorf("%w: gpg binary is empty", kerrors.ErrInvalidConfig)
	}
	if cfg.ClipTimeout <= 0 {
		return fmt.Errorf("%w: clip timeout must be positive, got %s", kerrors.ErrInvalidConfig, cfg.ClipTimeout)
	}
	return nil
}

func expandHome(path string) string {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~"))
}
