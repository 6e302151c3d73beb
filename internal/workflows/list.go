package workflows

import (
	"context"
	"slices"
)

// ListOptions configures the list workflow.
type ListOptions struct {
	// Pattern is a doublestar glob such as "otp/**". Empty lists everything.
	Pattern string
}

// ListResult contains the outcome of a list operation.
type ListResult struct {
	// Names are sorted logical names.
	Names []string
}

// List returns the names of the records in the vault.
//
// Returns ErrNotInitialized if the vault has no key binding.
// Returns ErrIO if the vault cannot be walked.
func List(ctx context.Context, env *Env, opts ListOptions) (*ListResult, error) {
	if _, err := env.boundKey(); err != nil {
		return nil, err
	}

	var names []string
	for name, err := range env.store().Match(opts.Pattern) {
		if err != nil {
			return nil, err
		}
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		names = append(names, name)
	}
	slices.Sort(names)

	return &ListResult{Names: names}, nil
}
