package workflows

import (
	"context"
	"fmt"
	"strings"

	"github.com/PolarWolf314/rvault/internal/audit"
	kerrors "github.com/PolarWolf314/rvault/internal/errors"
	"github.com/PolarWolf314/rvault/internal/gpg"
	"github.com/PolarWolf314/rvault/internal/identity"
)

// InitOptions configures the init workflow.
type InitOptions struct {
	// KeyID selects the key without asking. It may be the full id or a
	// suffix of it, compared case-insensitively.
	KeyID string

	// Pick chooses among several keys when KeyID is empty.
	Pick func(keys []gpg.Identity) (gpg.Identity, error)
}

// InitResult contains the outcome of an init operation.
type InitResult struct {
	Identity gpg.Identity

	// Previous is the key the vault was bound to before, if any.
	Previous string
}

// Init binds the vault to one of the user's secret keys, creating the
// vault directory if needed. Running it again rebinds the vault; existing
// records stay encrypted to their original key.
//
// Returns ErrNoSecretKeys if the keyring is empty.
// Returns ErrKeyNotFound if KeyID matches no key, or matches several.
func Init(ctx context.Context, env *Env, opts InitOptions) (*InitResult, error) {
	keys, err := env.Keys.ListSecretKeys(ctx)
	if err != nil {
		return nil, err
	}
	if len(keys) == 0 {
		return nil, kerrors.ErrNoSecretKeys
	}
	env.Logger.Debugf("Found %d secret keys", len(keys))

	chosen, err := chooseKey(keys, opts)
	if err != nil {
		return nil, err
	}

	result := &InitResult{Identity: chosen}
	if previous, err := identity.Read(env.Root); err == nil {
		result.Previous = previous
	}

	if err := identity.Write(env.Root, chosen.ID); err != nil {
		return nil, err
	}
	env.Logger.Infof("Bound %s to %s", env.Root, chosen)

	env.audit(audit.Entry{Operation: audit.OpInit, KeyID: chosen.ID})
	return result, nil
}

func chooseKey(keys []gpg.Identity, opts InitOptions) (gpg.Identity, error) {
	if opts.KeyID != "" {
		return matchKey(keys, opts.KeyID)
	}
	if len(keys) == 1 {
		return keys[0], nil
	}
	if opts.Pick == nil {
		return gpg.Identity{}, fmt.Errorf("%w: %d keys available, choose one explicitly", kerrors.ErrKeyNotFound, len(keys))
	}
	return opts.Pick(keys)
}

func matchKey(keys []gpg.Identity, want string) (gpg.Identity, error) {
	want = strings.TrimPrefix(strings.ToUpper(strings.TrimSpace(want)), "0X")
	if want == "" {
		return gpg.Identity{}, fmt.Errorf("%w: empty key id", kerrors.ErrKeyNotFound)
	}

	var matches []gpg.Identity
	for _, k := range keys {
		if strings.HasSuffix(strings.ToUpper(k.ID), want) {
			matches = append(matches, k)
		}
	}

	switch len(matches) {
	case 0:
		return gpg.Identity{}, fmt.Errorf("%w: %s", kerrors.ErrKeyNotFound, want)
	case 1:
		return matches[0], nil
	default:
		return gpg.Identity{}, fmt.Errorf("%w: %s is ambiguous", kerrors.ErrKeyNotFound, want)
	}
}
