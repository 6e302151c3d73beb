package secrets

import (
	"fmt"
	"regexp"
	"strings"

	kerrors "github.com/PolarWolf314/rvault/internal/errors"
)

// OTPNamespace is the top-level directory reserved for enrolled OTP secrets.
const OTPNamespace = "otp"

var nameCharset = regexp.MustCompile(`^[a-zA-Z0-9_\- ]+$`)

// ValidateName checks a user-supplied logical name.
// Only alphanumerics, spaces, underscores and dashes are allowed; slashes are
// rejected because nested paths are reserved for generated OTP names.
func ValidateName(name string) error {
	if name == "" {
		return fmt.Errorf("%w: name is empty", kerrors.ErrInvalidName)
	}
	if strings.Contains(name, "/") {
		return fmt.Errorf("%w: %q cannot contain slashes", kerrors.ErrInvalidName, name)
	}
	if !nameCharset.MatchString(name) {
		return fmt.Errorf("%w: %q can only contain alphanumeric characters, spaces, underscores and dashes", kerrors.ErrInvalidName, name)
	}
	if name == OTPNamespace {
		return fmt.Errorf("%w: %q is reserved", kerrors.ErrInvalidName, name)
	}
	return nil
}

// validateLogicalName accepts plain user names and generated otp/<issuer>/<account> names.
func validateLogicalName(name string) error {
	if strings.ContainsAny(name, "\\\x00") {
		return fmt.Errorf("%w: %q", kerrors.ErrInvalidName, name)
	}
	if !strings.Contains(name, "/") {
		return ValidateName(name)
	}

	segments := strings.Split(name, "/")
	if segments[0] != OTPNamespace || len(segments) != 3 {
		return fmt.Errorf("%w: %q cannot contain slashes", kerrors.ErrInvalidName, name)
	}
	for _, segment := range segments[1:] {
		if segment == "" || segment == "." || segment == ".." || strings.TrimSpace(segment) == "" {
			return fmt.Errorf("%w: %q has an empty or relative segment", kerrors.ErrInvalidName, name)
		}
	}
	return nil
}

// OTPName builds the logical name for an enrolled OTP secret.
// Path separators inside either part are replaced so the name stays three segments deep.
func OTPName(issuer, account string) string {
	return OTPNamespace + "/" + sanitizeSegment(issuer) + "/" + sanitizeSegment(account)
}

func sanitizeSegment(s string) string {
	s = strings.TrimSpace(s)
	s = strings.NewReplacer("/", "-", "\\", "-", "\x00", "").Replace(s)
	if s == "." || s == ".." {
		s = strings.Repeat("-", len(s))
	}
	return s
}
