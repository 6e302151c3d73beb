package configs

import (
	"errors"
	"fmt"
	"reflect"

	"dario.cat/mergo"
	"github.com/caarlos0/env/v11"
	"github.com/spf13/pflag"
)

// Flag names read by WithFlags.
const (
	FlagVault       = "vault"
	FlagAskPassword = "ask-password"
	FlagGPGBinary   = "gpg-binary"
	FlagClipTimeout = "timeout"
)

// Builder collects configuration layers in priority order, highest first.
// Build appends the defaults and merges everything into a Config.
type Builder struct {
	layers []*layer
	err    error
}

func NewBuilder() *Builder {
	return &Builder{layers: make([]*layer, 0, 4)}
}

// Load resolves the configuration of one invocation: flags, then the
// environment, then the config file, then defaults.
func Load(flags *pflag.FlagSet) (*Config, error) {
	b := NewBuilder().WithFlags(flags).WithEnv()
	if path, err := DefaultPath(); err == nil {
		b = b.WithFile(path)
	}
	return b.Build()
}

// WithFlags adds the flags the user set explicitly. Flags left at their
// default value do not shadow lower layers.
func (b *Builder) WithFlags(flags *pflag.FlagSet) *Builder {
	if flags == nil {
		return b
	}

	l := &layer{}
	var err error
	if changed(flags, FlagVault) {
		l.VaultPath, err = flags.GetString(FlagVault)
		b.err = errors.Join(b.err, err)
	}
	if changed(flags, FlagGPGBinary) {
		l.GPGBinary, err = flags.GetString(FlagGPGBinary)
		b.err = errors.Join(b.err, err)
	}
	if changed(flags, FlagAskPassword) {
		askPassword, err := flags.GetBool(FlagAskPassword)
		b.err = errors.Join(b.err, err)
		l.AskPassword = &askPassword
	}
	if changed(flags, FlagClipTimeout) {
		l.ClipTimeout, err = flags.GetDuration(FlagClipTimeout)
		b.err = errors.Join(b.err, err)
	}

	b.layers = append(b.layers, l)
	return b
}

// WithEnv adds the RVAULT_* environment variables.
func (b *Builder) WithEnv() *Builder {
	l := &layer{}
	if err := env.Parse(l); err != nil {
		b.err = errors.Join(b.err, fmt.Errorf("error getting env configs: %w", err))
		return b
	}
	b.layers = append(b.layers, l)
	return b
}

// WithFile adds a TOML config file. A missing file is not an error.
func (b *Builder) WithFile(path string) *Builder {
	l, err := loadTOML(path)
	if err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}
	if l != nil {
		b.layers = append(b.layers, l)
	}
	return b
}

func (b *Builder) Build() (*Config, error) {
	if b.err != nil {
		return nil, invalid(fmt.Errorf("error occurred during building config: %w", b.err))
	}

	merged := &layer{}
	for _, l := range append(b.layers, defaults()) {
		if err := mergo.Merge(merged, l, mergo.WithTransformers(keepSet{})); err != nil {
			return nil, invalid(fmt.Errorf("error merging configs: %w", err))
		}
	}

	cfg := merged.config()
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func changed(flags *pflag.FlagSet, name string) bool {
	f := flags.Lookup(name)
	return f != nil && f.Changed
}

// keepSet stops mergo from descending into a *bool that a higher layer
// already set, so an explicit false is not replaced by a lower true.
type keepSet struct{}

func (keepSet) Transformer(typ reflect.Type) func(dst, src reflect.Value) error {
	if typ != reflect.TypeOf((*bool)(nil)) {
		return nil
	}
	return func(dst, src reflect.Value) error {
		return nil
	}
}
