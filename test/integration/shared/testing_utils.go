// Package shared contains testing utilities shared between integration tests.
// This file provides common functions for setting up a throwaway GnuPG home
// with a generated key, running the CLI, and capturing its output.
package shared

import (
	"bytes"
	"context"
	"io"
	"log"
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/PolarWolf314/rvault/cmd"
	"github.com/PolarWolf314/rvault/internal/identity"
)

// TestUserID is the user id of the key generated by SetupGnuPG.
const TestUserID = "rvault test <rvault-test@example.com>"

// RequireGPG skips the test when no gpg binary is on PATH.
func RequireGPG(t *testing.T) string {
	t.Helper()
	bin, err := exec.LookPath("gpg")
	if err != nil {
		t.Skip("gpg is not installed")
	}
	return bin
}

// SetupGnuPG points GNUPGHOME at a fresh directory holding one unprotected
// secret key, and isolates the rvault configuration. It returns the vault
// directory to use.
func SetupGnuPG(t *testing.T) string {
	t.Helper()
	bin := RequireGPG(t)

	// The agent socket lives in GNUPGHOME, so keep the path short.
	gnupgHome, err := os.MkdirTemp("", "rvault-gpg-")
	if err != nil {
		t.Fatalf("Failed to create GnuPG home: %v", err)
	}
	if err := os.Chmod(gnupgHome, 0700); err != nil {
		t.Fatalf("Failed to restrict GnuPG home: %v", err)
	}

	home := t.TempDir()
	t.Setenv("GNUPGHOME", gnupgHome)
	t.Setenv("HOME", home)
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(home, ".config"))
	t.Setenv("NO_COLOR", "1")
	for _, key := range []string{"RVAULT_VAULT", "RVAULT_GPG", "RVAULT_ASK_PASSWORD", "RVAULT_CLIP_TIMEOUT"} {
		t.Setenv(key, "")
	}

	t.Cleanup(func() {
		if gpgconf, err := exec.LookPath("gpgconf"); err == nil {
			_ = exec.Command(gpgconf, "--kill", "gpg-agent").Run()
		}
		os.RemoveAll(gnupgHome)
	})

	gen := exec.Command(bin, "--batch", "--passphrase", "", "--quick-gen-key", TestUserID, "default", "default", "never")
	if out, err := gen.CombinedOutput(); err != nil {
		t.Skipf("gpg cannot generate a test key here: %v: %s", err, out)
	}

	return filepath.Join(home, "vault")
}

// RunCLI executes rvault with args. stdin, when not empty, is piped to the command.
func RunCLI(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()

	if stdin != "" {
		r, w, err := os.Pipe()
		if err != nil {
			t.Fatalf("Failed to create stdin pipe: %v", err)
		}
		if _, err := io.WriteString(w, stdin); err != nil {
			t.Fatalf("Failed to write stdin: %v", err)
		}
		w.Close()

		originalStdin := os.Stdin
		os.Stdin = r
		defer func() {
			os.Stdin = originalStdin
			r.Close()
		}()
	}

	cmd.ResetGlobalState()
	cmd.RootCmd.SetArgs(args)
	return CaptureOutput(func() error {
		return cmd.RootCmd.ExecuteContext(context.Background())
	})
}

// BoundKey returns the key id the vault is bound to.
func BoundKey(t *testing.T, vault string) string {
	t.Helper()
	id, err := identity.Read(vault)
	if err != nil {
		t.Fatalf("Vault is not bound: %v", err)
	}
	return id
}

// CaptureOutput captures both stdout and stderr during function execution.
func CaptureOutput(fn func() error) (string, error) {
	originalStdout := os.Stdout
	originalStderr := os.Stderr

	stdoutReader, stdoutWriter, _ := os.Pipe()
	stderrReader, stderrWriter, _ := os.Pipe()

	os.Stdout = stdoutWriter
	os.Stderr = stderrWriter

	stdoutChan := make(chan string, 1)
	stderrChan := make(chan string, 1)

	go func() {
		var buf bytes.Buffer
		if _, err := io.Copy(&buf, stdoutReader); err != nil {
			log.Fatalf("Failed to run copy command: %s", err)
		}
		stdoutChan <- buf.String()
	}()

	go func() {
		var buf bytes.Buffer
		if _, err := io.Copy(&buf, stderrReader); err != nil {
			log.Fatalf("Failed to run copy command: %s", err)
		}
		stderrChan <- buf.String()
	}()

	err := fn()

	stdoutWriter.Close()
	stderrWriter.Close()

	os.Stdout = originalStdout
	os.Stderr = originalStderr
	log.SetOutput(os.Stderr)

	return <-stdoutChan + <-stderrChan, err
}
