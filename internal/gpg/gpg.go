package gpg

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strings"

	kerrors "github.com/PolarWolf314/rvault/internal/errors"
)

// DefaultBinary is the gpg executable looked up on PATH.
const DefaultBinary = "gpg"

// GPG drives the gpg command line tool. Every call spawns one process.
type GPG struct {
	Binary string
}

// New returns a GPG adapter for binary, falling back to DefaultBinary.
func New(binary string) *GPG {
	if binary == "" {
		binary = DefaultBinary
	}
	return &GPG{Binary: binary}
}

// Encrypt pipes plaintext through `gpg --encrypt --recipient <id>`.
//
// Returns ErrEncryptFailed with gpg's diagnostics if the process exits non-zero.
func (g *GPG) Encrypt(ctx context.Context, plaintext []byte, recipient string) ([]byte, error) {
	if recipient == "" {
		return nil, fmt.Errorf("%w: no recipient key", kerrors.ErrEncryptFailed)
	}

	cmd := exec.CommandContext(ctx, g.Binary, "--batch", "--yes", "--encrypt", "--recipient", recipient)
	cmd.Stdin = bytes.NewReader(plaintext)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		return nil, fmt.Errorf("%w: %s", kerrors.ErrEncryptFailed, diagnostics(err, &stderr))
	}
	return stdout.Bytes(), nil
}

// Decrypt runs `gpg --decrypt <path>` and returns its output.
// A supplied passphrase is written to gpg's stdin through --passphrase-fd 0
// so it never appears in the process listing.
//
// Returns ErrDecryptFailed with gpg's diagnostics if the process exits non-zero.
func (g *GPG) Decrypt(ctx context.Context, path string, passphrase PassphraseSource) ([]byte, error) {
	args := []string{"--decrypt"}
	var stdin []byte

	if passphrase != nil {
		secret, err := passphrase.Passphrase(ctx)
		if err != nil {
			return nil, fmt.Errorf("%w: reading passphrase: %w", kerrors.ErrDecryptFailed, err)
		}
		stdin = make([]byte, 0, len(secret)+1)
		stdin = append(append(stdin, secret...), '\n')
		clear(secret)
		args = append(args, "--batch", "--pinentry-mode", "loopback", "--passphrase-fd", "0")
	}
	args = append(args, path)

	cmd := exec.CommandContext(ctx, g.Binary, args...)
	if stdin != nil {
		cmd.Stdin = bytes.NewReader(stdin)
	}
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	clear(stdin)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", kerrors.ErrDecryptFailed, diagnostics(err, &stderr))
	}
	return stdout.Bytes(), nil
}

// ListSecretKeys runs `gpg --list-secret-keys --with-colons` and parses the result.
//
// Returns ErrKeyTool if gpg cannot be started or exits non-zero. Malformed
// lines in the listing are skipped.
func (g *GPG) ListSecretKeys(ctx context.Context) ([]Identity, error) {
	cmd := exec.CommandContext(ctx, g.Binary, "--list-secret-keys", "--with-colons")
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		return nil, fmt.Errorf("%w: %s", kerrors.ErrKeyTool, diagnostics(err, &stderr))
	}
	return ParseKeyListing(&stdout), nil
}

func diagnostics(err error, stderr *bytes.Buffer) string {
	msg := strings.TrimSpace(stderr.String())
	if msg == "" {
		return err.Error()
	}
	return fmt.Sprintf("%v: %s", err, msg)
}
