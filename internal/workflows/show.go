package workflows

import (
	"context"
	"fmt"
	"time"

	"github.com/PolarWolf314/rvault/internal/audit"
	kerrors "github.com/PolarWolf314/rvault/internal/errors"
	"github.com/PolarWolf314/rvault/internal/otp"
)

// ShowOptions configures the show workflow.
type ShowOptions struct {
	Name string
}

// ShowResult contains a revealed record.
type ShowResult struct {
	Name string
	Kind otp.Kind

	// Value is the plain secret, or the current code for OTP records.
	Value string

	// Remaining is how long an OTP code stays valid. Zero for plain secrets.
	Remaining time.Duration
}

// Show decrypts a record and reveals it. OTP records yield the code that
// is valid now rather than the stored URI.
//
// Returns ErrNotInitialized if the vault has no key binding.
// Returns ErrSecretNotFound if no record exists under Name.
// Returns ErrDecryptFailed if gpg cannot decrypt the record.
// Returns ErrOTPComputation if an OTP record holds an unusable URI.
func Show(ctx context.Context, env *Env, opts ShowOptions) (*ShowResult, error) {
	result, err := reveal(ctx, env, opts.Name)
	if err != nil {
		return nil, err
	}
	env.audit(audit.Entry{Operation: audit.OpShow, Name: opts.Name})
	return result, nil
}

func reveal(ctx context.Context, env *Env, name string) (*ShowResult, error) {
	if _, err := env.boundKey(); err != nil {
		return nil, err
	}

	s := env.store()
	path, err := s.Resolve(name)
	if err != nil {
		return nil, err
	}
	exists, err := s.Exists(name)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, fmt.Errorf("%w: %s", kerrors.ErrSecretNotFound, name)
	}

	plaintext, err := env.Engine.Decrypt(ctx, path, env.Passphrase)
	if err != nil {
		return nil, err
	}
	payload := otp.Classify(string(plaintext))
	zero(plaintext)
	env.Logger.Debugf("Decrypted %s as a %s record", name, payload.Kind)

	now := env.now()
	value, err := payload.Reveal(now)
	if err != nil {
		return nil, err
	}

	result := &ShowResult{Name: name, Kind: payload.Kind, Value: value}
	if payload.Kind == otp.KindOTP {
		// Reveal already parsed the URI successfully.
		uri, _ := payload.URI()
		result.Remaining = otp.Remaining(uri, now)
	}
	return result, nil
}
