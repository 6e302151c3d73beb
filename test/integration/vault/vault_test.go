package vault_test

import (
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	kerrors "github.com/PolarWolf314/rvault/internal/errors"
	"github.com/PolarWolf314/rvault/test/integration/shared"
)

const rfcURI = "otpauth://totp/RFC:alice@example.com?secret=GEZDGNBVGY3TQOJQGEZDGNBVGY3TQOJQ&issuer=RFC"

// TestVaultWithRealGPG drives every non-interactive command against gpg itself.
func TestVaultWithRealGPG(t *testing.T) {
	vault := shared.SetupGnuPG(t)

	output, err := shared.RunCLI(t, "", "--vault", vault, "init")
	require.NoError(t, err, output)
	assert.Contains(t, output, "rvault test")
	keyID := shared.BoundKey(t, vault)
	assert.Len(t, keyID, 16)

	t.Run("AddAndShow", func(t *testing.T) {
		output, err := shared.RunCLI(t, "hunter2\n", "--vault", vault, "add", "bank")
		require.NoError(t, err, output)

		output, err = shared.RunCLI(t, "", "--vault", vault, "show", "bank")
		require.NoError(t, err, output)
		assert.Equal(t, "hunter2\n", output)
	})

	t.Run("EnrollAndShowOTP", func(t *testing.T) {
		output, err := shared.RunCLI(t, "", "--vault", vault, "otp", rfcURI)
		require.NoError(t, err, output)

		output, err = shared.RunCLI(t, "", "--vault", vault, "show", "otp/RFC/alice@example.com")
		require.NoError(t, err, output)
		code := strings.SplitN(output, "\n", 2)[0]
		assert.Regexp(t, regexp.MustCompile(`^\d{6}$`), code)
	})

	t.Run("List", func(t *testing.T) {
		output, err := shared.RunCLI(t, "", "--vault", vault, "list")
		require.NoError(t, err)
		assert.Equal(t, "bank\notp/RFC/alice@example.com\n", output)
	})

	t.Run("Remove", func(t *testing.T) {
		_, err := shared.RunCLI(t, "", "--vault", vault, "remove", "bank")
		require.NoError(t, err)

		_, err = shared.RunCLI(t, "", "--vault", vault, "show", "bank")
		assert.ErrorIs(t, err, kerrors.ErrSecretNotFound)
	})

	t.Run("LogNeverHoldsSecrets", func(t *testing.T) {
		output, err := shared.RunCLI(t, "", "--vault", vault, "log")
		require.NoError(t, err)
		for _, op := range []string{"init", "add", "show", "otp", "remove"} {
			assert.Contains(t, output, op)
		}
		assert.Contains(t, output, keyID)
		assert.NotContains(t, output, "hunter2")
		assert.NotContains(t, output, "GEZDGNBVGY3TQOJQ")
	})
}

func TestMissingGPGBinary(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	_, err := shared.RunCLI(t, "", "--vault", t.TempDir(), "--gpg-binary", "/nonexistent/gpg", "init")
	assert.ErrorIs(t, err, kerrors.ErrKeyTool)
}
