package workflows

import (
	"context"

	"github.com/PolarWolf314/rvault/internal/audit"
)

// RemoveOptions configures the remove workflow.
type RemoveOptions struct {
	Name string
}

// RemoveResult contains the outcome of a remove operation.
type RemoveResult struct {
	Name string
	Path string
}

// Remove deletes a record from the vault.
//
// Returns ErrNotInitialized if the vault has no key binding.
// Returns ErrSecretNotFound if no record exists under Name.
func Remove(_ context.Context, env *Env, opts RemoveOptions) (*RemoveResult, error) {
	if _, err := env.boundKey(); err != nil {
		return nil, err
	}

	s := env.store()
	path, err := s.Resolve(opts.Name)
	if err != nil {
		return nil, err
	}
	if err := s.Remove(opts.Name); err != nil {
		return nil, err
	}
	env.Logger.Infof("Removed %s", path)

	env.audit(audit.Entry{Operation: audit.OpRemove, Name: opts.Name})
	return &RemoveResult{Name: opts.Name, Path: path}, nil
}
