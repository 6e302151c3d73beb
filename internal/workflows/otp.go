package workflows

import (
	"context"

	"github.com/PolarWolf314/rvault/internal/audit"
	"github.com/PolarWolf314/rvault/internal/otp"
)

// OTPOptions configures the OTP enrollment workflow.
type OTPOptions struct {
	// Input is an otpauth URI or the path of an image holding its QR code.
	Input string

	// Decoder reads QR codes from images. nil accepts raw URIs only.
	Decoder otp.Decoder
}

// OTPResult contains the outcome of an enrollment.
type OTPResult struct {
	AddResult
	Issuer  string
	Account string
}

// EnrollOTP stores an OTP provisioning URI under otp/<issuer>/<account>.
//
// Returns ErrNotInitialized if the vault has no key binding.
// Returns ErrInvalidOTPURI if the URI is malformed or lacks an issuer or account.
// Returns ErrOTPDecode or ErrOTPAmbiguous if an image holds no or several codes.
func EnrollOTP(ctx context.Context, env *Env, opts OTPOptions) (*OTPResult, error) {
	keyID, err := env.boundKey()
	if err != nil {
		return nil, err
	}

	raw, err := otp.EnrollmentURI(opts.Input, opts.Decoder)
	if err != nil {
		return nil, err
	}
	record, err := otp.Provision(raw)
	if err != nil {
		return nil, err
	}

	added, err := store(ctx, env, keyID, record.Name, []byte(record.Plaintext), audit.OpOTP)
	if err != nil {
		return nil, err
	}

	return &OTPResult{
		AddResult: *added,
		Issuer:    record.URI.Issuer,
		Account:   record.URI.Account,
	}, nil
}
