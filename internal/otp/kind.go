package otp

import (
	"fmt"
	"strings"
	"time"

	kerrors "github.com/PolarWolf314/rvault/internal/errors"
)

// Scheme prefixes every OTP provisioning URI.
const Scheme = "otpauth://"

// Kind tells plain secrets apart from OTP provisioning URIs.
type Kind int

const (
	KindPlain Kind = iota
	KindOTP
)

func (k Kind) String() string {
	if k == KindOTP {
		return "otp"
	}
	return "plain"
}

// Payload is a decrypted secret together with its classification.
type Payload struct {
	Kind Kind
	Text string
}

// Classify reports whether plaintext is an OTP provisioning URI.
// Plain secrets are returned unchanged.
func Classify(plaintext string) Payload {
	if strings.HasPrefix(plaintext, Scheme) {
		return Payload{Kind: KindOTP, Text: plaintext}
	}
	return Payload{Kind: KindPlain, Text: plaintext}
}

// URI parses an OTP payload. It fails for plain payloads.
func (p Payload) URI() (*URI, error) {
	if p.Kind != KindOTP {
		return nil, fmt.Errorf("%w: payload is not an otpauth URI", kerrors.ErrOTPComputation)
	}
	uri, err := ParseURI(p.Text)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", kerrors.ErrOTPComputation, err)
	}
	return uri, nil
}

// Reveal returns what should be shown for the payload at now: the secret
// itself, or the current one-time code for OTP payloads.
func (p Payload) Reveal(now time.Time) (string, error) {
	if p.Kind == KindPlain {
		return p.Text, nil
	}
	uri, err := p.URI()
	if err != nil {
		return "", err
	}
	return CurrentCode(uri, now)
}
