package workflows

import (
	"context"
	"fmt"

	"github.com/PolarWolf314/rvault/internal/audit"
	kerrors "github.com/PolarWolf314/rvault/internal/errors"
	"github.com/PolarWolf314/rvault/internal/secrets"
)

// AddOptions configures the add workflow.
type AddOptions struct {
	Name   string
	Secret []byte
}

// AddResult contains the outcome of an add operation.
type AddResult struct {
	Name string
	Path string

	// Overwritten is true if a record with this name already existed.
	Overwritten bool
}

// Add encrypts a secret to the vault's key and stores it under Name,
// replacing any existing record.
//
// Returns ErrNotInitialized if the vault has no key binding.
// Returns ErrInvalidName if Name fails validation.
// Returns ErrEncryptFailed if gpg refuses the plaintext.
func Add(ctx context.Context, env *Env, opts AddOptions) (*AddResult, error) {
	keyID, err := env.boundKey()
	if err != nil {
		return nil, err
	}
	if err := secrets.ValidateName(opts.Name); err != nil {
		return nil, err
	}
	if len(opts.Secret) == 0 {
		return nil, fmt.Errorf("%w: empty secret", kerrors.ErrEncryptFailed)
	}

	return store(ctx, env, keyID, opts.Name, opts.Secret, audit.OpAdd)
}

// store encrypts plaintext for keyID and writes it under name.
func store(ctx context.Context, env *Env, keyID, name string, plaintext []byte, op string) (*AddResult, error) {
	s := env.store()
	path, err := s.Resolve(name)
	if err != nil {
		return nil, err
	}
	existed, err := s.Exists(name)
	if err != nil {
		return nil, err
	}

	ciphertext, err := env.Engine.Encrypt(ctx, plaintext, keyID)
	if err != nil {
		return nil, err
	}
	if err := s.Write(name, ciphertext); err != nil {
		return nil, err
	}
	env.Logger.Infof("Wrote %s", path)

	env.audit(audit.Entry{Operation: op, Name: name, KeyID: keyID})
	return &AddResult{Name: name, Path: path, Overwritten: existed}, nil
}
