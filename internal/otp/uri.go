package otp

import (
	"errors"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	potp "github.com/pquerna/otp"
)

// Defaults applied when a URI omits a parameter.
const (
	DefaultAlgorithm = "SHA1"
	DefaultDigits    = 6
	DefaultPeriod    = 30
)

// URI is a parsed otpauth provisioning URI.
type URI struct {
	Raw       string
	Type      string
	Issuer    string
	Account   string
	Secret    string
	Algorithm string
	Digits    int
	Period    uint
}

// ParseURI parses raw as an otpauth URI. It checks the structure only; the
// shared secret is decoded when a code is generated.
func ParseURI(raw string) (*URI, error) {
	raw = strings.TrimSpace(raw)
	if !strings.HasPrefix(raw, Scheme) {
		return nil, fmt.Errorf("missing %s prefix", Scheme)
	}

	key, err := potp.NewKeyFromURL(raw)
	if err != nil {
		return nil, fmt.Errorf("parsing uri: %w", err)
	}
	parsed, err := url.Parse(raw)
	if err != nil {
		return nil, fmt.Errorf("parsing uri: %w", err)
	}
	query := parsed.Query()

	uri := &URI{
		Raw:       raw,
		Type:      key.Type(),
		Issuer:    strings.TrimSpace(key.Issuer()),
		Account:   strings.TrimSpace(key.AccountName()),
		Secret:    key.Secret(),
		Algorithm: DefaultAlgorithm,
		Digits:    DefaultDigits,
		Period:    DefaultPeriod,
	}

	if v := query.Get("algorithm"); v != "" {
		uri.Algorithm = strings.ToUpper(v)
	}
	if v := query.Get("digits"); v != "" {
		digits, err := strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("bad digits %q", v)
		}
		uri.Digits = digits
	}
	if v := query.Get("period"); v != "" {
		period, err := strconv.ParseUint(v, 10, 32)
		if err != nil {
			return nil, fmt.Errorf("bad period %q", v)
		}
		uri.Period = uint(period)
	}

	if err := uri.validate(); err != nil {
		return nil, err
	}
	return uri, nil
}

func (u *URI) validate() error {
	if u.Type != "totp" {
		return fmt.Errorf("unsupported otp type %q", u.Type)
	}
	if u.Secret == "" {
		return errors.New("missing shared secret")
	}
	if _, err := u.algorithm(); err != nil {
		return err
	}
	if u.Digits < 6 || u.Digits > 8 {
		return fmt.Errorf("unsupported digit count %d", u.Digits)
	}
	if u.Period == 0 {
		return errors.New("period must be positive")
	}
	return nil
}

func (u *URI) algorithm() (potp.Algorithm, error) {
	switch u.Algorithm {
	case "SHA1":
		return potp.AlgorithmSHA1, nil
	case "SHA256":
		return potp.AlgorithmSHA256, nil
	case "SHA512":
		return potp.AlgorithmSHA512, nil
	}
	return 0, fmt.Errorf("unsupported algorithm %q", u.Algorithm)
}
