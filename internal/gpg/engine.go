package gpg

import (
	"bytes"
	"context"
)

// Engine encrypts and decrypts secret payloads for a recipient key.
type Engine interface {
	// Encrypt returns plaintext encrypted for the recipient key id.
	Encrypt(ctx context.Context, plaintext []byte, recipient string) ([]byte, error)

	// Decrypt returns the plaintext of the encrypted file at path. When
	// passphrase is nil the engine relies on its own agent.
	Decrypt(ctx context.Context, path string, passphrase PassphraseSource) ([]byte, error)
}

// KeyLister lists the secret identities available to the engine.
type KeyLister interface {
	ListSecretKeys(ctx context.Context) ([]Identity, error)
}

// PassphraseSource supplies the key passphrase when the caller cannot rely on an agent.
type PassphraseSource interface {
	Passphrase(ctx context.Context) ([]byte, error)
}

// PassphraseFunc adapts a function to PassphraseSource.
type PassphraseFunc func(ctx context.Context) ([]byte, error)

func (f PassphraseFunc) Passphrase(ctx context.Context) ([]byte, error) {
	return f(ctx)
}

// StaticPassphrase always returns the same passphrase.
type StaticPassphrase []byte

func (p StaticPassphrase) Passphrase(context.Context) ([]byte, error) {
	return bytes.Clone(p), nil
}
