package otp

import (
	"fmt"
	"strings"

	kerrors "github.com/PolarWolf314/rvault/internal/errors"
	"github.com/PolarWolf314/rvault/internal/secrets"
)

// Record is an OTP secret ready to be encrypted into the vault.
type Record struct {
	Name      string
	Plaintext string
	URI       *URI
}

// Provision prepares an enrollment URI for storage under otp/<issuer>/<account>.
// The whole URI is kept as plaintext so codes can be regenerated with the
// original parameters.
//
// Returns ErrInvalidOTPURI if the URI is malformed or lacks an issuer or account.
func Provision(raw string) (*Record, error) {
	uri, err := ParseURI(raw)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", kerrors.ErrInvalidOTPURI, err)
	}
	if uri.Issuer == "" {
		return nil, fmt.Errorf("%w: missing issuer", kerrors.ErrInvalidOTPURI)
	}
	if uri.Account == "" {
		return nil, fmt.Errorf("%w: missing account", kerrors.ErrInvalidOTPURI)
	}

	return &Record{
		Name:      secrets.OTPName(uri.Issuer, uri.Account),
		Plaintext: uri.Raw,
		URI:       uri,
	}, nil
}

// Decoder extracts candidate payloads from a barcode image.
type Decoder interface {
	Decode(path string) ([]string, error)
}

// SingleCandidate returns the only non-empty candidate.
//
// Returns ErrOTPDecode when there is none and ErrOTPAmbiguous when there are several.
func SingleCandidate(candidates []string) (string, error) {
	var found []string
	for _, c := range candidates {
		if c = strings.TrimSpace(c); c != "" {
			found = append(found, c)
		}
	}

	switch len(found) {
	case 0:
		return "", kerrors.ErrOTPDecode
	case 1:
		return found[0], nil
	default:
		return "", fmt.Errorf("%w: found %d", kerrors.ErrOTPAmbiguous, len(found))
	}
}

// EnrollmentURI turns enrollment input into a URI: raw otpauth strings pass
// through, anything else is treated as an image path for decoder.
func EnrollmentURI(input string, decoder Decoder) (string, error) {
	input = strings.TrimSpace(input)
	if strings.HasPrefix(input, Scheme) {
		return input, nil
	}
	if decoder == nil {
		return "", fmt.Errorf("%w: %q is not an otpauth URI", kerrors.ErrInvalidOTPURI, input)
	}

	candidates, err := decoder.Decode(input)
	if err != nil {
		return "", err
	}
	return SingleCandidate(candidates)
}
