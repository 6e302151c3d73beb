// Package gpgtest provides in-memory stand-ins for the gpg adapters.
package gpgtest

import (
	"bytes"
	"context"
	"encoding/base64"
	"fmt"
	"os"
	"strings"

	kerrors "github.com/PolarWolf314/rvault/internal/errors"
	"github.com/PolarWolf314/rvault/internal/gpg"
)

const header = "-----FAKE GPG MESSAGE-----\n"

// Engine is a reversible fake of gpg. Ciphertext records the recipient, and
// decryption only succeeds for recipients in SecretKeys. When a recipient has
// an entry in Passphrases, decryption requires that passphrase from the source.
type Engine struct {
	SecretKeys  map[string]bool
	Passphrases map[string]string

	EncryptErr error
	DecryptErr error

	Encrypted []string
	Decrypted []string
}

// NewEngine returns an engine holding the given secret key ids.
func NewEngine(keyIDs ...string) *Engine {
	e := &Engine{SecretKeys: map[string]bool{}, Passphrases: map[string]string{}}
	for _, id := range keyIDs {
		e.SecretKeys[id] = true
	}
	return e
}

func (e *Engine) Encrypt(_ context.Context, plaintext []byte, recipient string) ([]byte, error) {
	if e.EncryptErr != nil {
		return nil, e.EncryptErr
	}
	if recipient == "" {
		return nil, fmt.Errorf("%w: no recipient key", kerrors.ErrEncryptFailed)
	}
	e.Encrypted = append(e.Encrypted, recipient)

	var b bytes.Buffer
	b.WriteString(header)
	b.WriteString(recipient)
	b.WriteByte('\n')
	b.WriteString(base64.StdEncoding.EncodeToString(plaintext))
	return b.Bytes(), nil
}

func (e *Engine) Decrypt(ctx context.Context, path string, passphrase gpg.PassphraseSource) ([]byte, error) {
	if e.DecryptErr != nil {
		return nil, e.DecryptErr
	}
	e.Decrypted = append(e.Decrypted, path)

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", kerrors.ErrDecryptFailed, err)
	}
	body, ok := bytes.CutPrefix(data, []byte(header))
	if !ok {
		return nil, fmt.Errorf("%w: no valid OpenPGP data found", kerrors.ErrDecryptFailed)
	}
	recipient, payload, ok := strings.Cut(string(body), "\n")
	if !ok {
		return nil, fmt.Errorf("%w: truncated message", kerrors.ErrDecryptFailed)
	}
	if !e.SecretKeys[recipient] {
		return nil, fmt.Errorf("%w: no secret key for %s", kerrors.ErrDecryptFailed, recipient)
	}

	if want, locked := e.Passphrases[recipient]; locked {
		if passphrase == nil {
			return nil, fmt.Errorf("%w: no agent available", kerrors.ErrDecryptFailed)
		}
		got, err := passphrase.Passphrase(ctx)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", kerrors.ErrDecryptFailed, err)
		}
		if string(got) != want {
			return nil, fmt.Errorf("%w: bad passphrase", kerrors.ErrDecryptFailed)
		}
	}

	plaintext, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", kerrors.ErrDecryptFailed, err)
	}
	return plaintext, nil
}

// Keys is a fake key directory backed by a colon listing.
type Keys struct {
	Listing string
	Err     error
	Calls   int
}

func (k *Keys) ListSecretKeys(context.Context) ([]gpg.Identity, error) {
	k.Calls++
	if k.Err != nil {
		return nil, k.Err
	}
	return gpg.ParseKeyListing(strings.NewReader(k.Listing)), nil
}
