// Package configs resolves rvault's runtime configuration.
//
// Settings come from four layers, highest priority first:
//
//   - command line flags the user set explicitly (--vault, --gpg-binary,
//     --ask-password, --timeout)
//   - environment variables (RVAULT_VAULT, RVAULT_GPG, RVAULT_ASK_PASSWORD,
//     RVAULT_CLIP_TIMEOUT)
//   - the TOML config file at $XDG_CONFIG_HOME/rvault/config.toml
//   - built-in defaults (~/.vault, gpg, no passphrase prompt, 10s)
//
// A config file looks like:
//
//	vault_path = "~/.vault"
//	gpg_binary = "gpg2"
//	ask_password = true
//	clip_timeout = "15s"
//
// Layers are merged with mergo; a field set in a higher layer is never
// replaced by a lower one. The merged result is validated and any problem
// is reported as errors.ErrInvalidConfig.
package configs
