package otp

import (
	"fmt"
	"time"

	potp "github.com/pquerna/otp"
	"github.com/pquerna/otp/totp"

	kerrors "github.com/PolarWolf314/rvault/internal/errors"
)

// CurrentCode derives the RFC 6238 code for uri at now, honouring the
// period, digit count and algorithm the URI was provisioned with.
//
// Returns ErrOTPComputation if the URI is invalid or its secret is not base32.
func CurrentCode(uri *URI, now time.Time) (string, error) {
	if uri == nil {
		return "", fmt.Errorf("%w: no uri", kerrors.ErrOTPComputation)
	}
	if err := uri.validate(); err != nil {
		return "", fmt.Errorf("%w: %w", kerrors.ErrOTPComputation, err)
	}
	algorithm, _ := uri.algorithm()

	code, err := totp.GenerateCodeCustom(uri.Secret, now, totp.ValidateOpts{
		Period:    uri.Period,
		Digits:    potp.Digits(uri.Digits),
		Algorithm: algorithm,
	})
	if err != nil {
		return "", fmt.Errorf("%w: %w", kerrors.ErrOTPComputation, err)
	}
	return code, nil
}

// Remaining returns how long the code generated at now stays valid.
func Remaining(uri *URI, now time.Time) time.Duration {
	period := int64(uri.Period)
	if period == 0 {
		period = DefaultPeriod
	}
	left := period - now.Unix()%period
	return time.Duration(left) * time.Second
}
