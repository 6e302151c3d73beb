package utils

import (
	"bytes"
	"fmt"
	"io"
	"os"
)

// StdinIsPiped reports whether stdin carries data rather than a terminal.
func StdinIsPiped() bool {
	stat, err := os.Stdin.Stat()
	if err != nil {
		return false
	}
	return stat.Mode()&os.ModeCharDevice == 0
}

// ReadStdin reads all content from stdin.
// Returns an error if stdin is empty, is a terminal (no piped data), or cannot be read.
func ReadStdin() ([]byte, error) {
	if !StdinIsPiped() {
		return nil, fmt.Errorf("no data provided on stdin (hint: pipe the secret to this command)")
	}
	return ReadSecret(os.Stdin)
}

// ReadSecret reads a secret value from r. A single trailing newline, as
// left by echo or a here-string, is dropped.
func ReadSecret(r io.Reader) ([]byte, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read from stdin: %w", err)
	}

	data = bytes.TrimSuffix(data, []byte("\n"))
	data = bytes.TrimSuffix(data, []byte("\r"))
	if len(data) == 0 {
		return nil, fmt.Errorf("stdin is empty")
	}

	return data, nil
}
