// Package cmd contains testing utilities shared between command tests.
// This file provides common functions for setting up an isolated vault,
// replacing the gpg, clipboard and prompt collaborators, and capturing output.
package cmd

import (
	"bytes"
	"context"
	"errors"
	"io"
	"log"
	"os"
	"path/filepath"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/require"

	"github.com/PolarWolf314/rvault/internal/clipboard"
	kerrors "github.com/PolarWolf314/rvault/internal/errors"
	"github.com/PolarWolf314/rvault/internal/gpg"
	"github.com/PolarWolf314/rvault/internal/gpg/gpgtest"
	"github.com/PolarWolf314/rvault/internal/identity"
)

const (
	aliceKey = "ABCDEF0123456789"
	bobKey   = "1122334455667788"

	rfcURI = "otpauth://totp/RFC:alice@example.com?secret=GEZDGNBVGY3TQOJQGEZDGNBVGY3TQOJQ&issuer=RFC"
)

const aliceOnly = `sec:u:4096:1:ABCDEF0123456789:1600000000:::u:::scESC:::+:::23::0:
uid:u::::1600000000::AAAA::Alice <alice@example.com>::::::::::0:
`

const twoKeys = aliceOnly + `sec:u:255:22:1122334455667788:1600000000:::u:::scESC:::+:::23::0:
uid:u::::1600000000::BBBB::Bob <bob@example.com>::::::::::0:
`

// memClipboard records every write. failOn makes writes of that exact text fail.
type memClipboard struct {
	writes []string
	failOn *string
}

func (c *memClipboard) WriteAll(text string) error {
	c.writes = append(c.writes, text)
	if c.failOn != nil && *c.failOn == text {
		return errors.New("clipboard owner went away")
	}
	return nil
}

type fakeDecoder struct {
	candidates []string
	paths      []string
}

func (d *fakeDecoder) Decode(path string) ([]string, error) {
	d.paths = append(d.paths, path)
	return d.candidates, nil
}

// testVault is an isolated vault with in-memory collaborators.
type testVault struct {
	root   string
	engine *gpgtest.Engine
	keys   *gpgtest.Keys
	clip   *memClipboard
}

// setupTestEnvironment isolates the test from the user's configuration and
// replaces every collaborator that would touch gpg, the clipboard or the terminal.
// Prompts fail unless the test replaces them.
func setupTestEnvironment(t *testing.T, listing string) *testVault {
	t.Helper()

	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(home, ".config"))
	t.Setenv("NO_COLOR", "1")
	for _, key := range []string{"RVAULT_VAULT", "RVAULT_GPG", "RVAULT_ASK_PASSWORD", "RVAULT_CLIP_TIMEOUT"} {
		t.Setenv(key, "")
	}

	v := &testVault{
		root:   filepath.Join(home, "vault"),
		engine: gpgtest.NewEngine(aliceKey, bobKey),
		keys:   &gpgtest.Keys{Listing: listing},
		clip:   &memClipboard{},
	}

	origEngine, origClipboard, origEvents := newEngine, newClipboard, keyEvents
	origInteractive, origStdoutTerminal := interactive, stdoutTerminal
	origPiped, origStdin := stdinPiped, readStdin
	origSelect, origInput, origPassword := promptSelect, promptInput, promptPassword
	origDecoder := qrDecoder
	origNoColor := color.NoColor
	color.NoColor = true
	t.Cleanup(func() {
		color.NoColor = origNoColor
		newEngine, newClipboard, keyEvents = origEngine, origClipboard, origEvents
		interactive, stdoutTerminal = origInteractive, origStdoutTerminal
		stdinPiped, readStdin = origPiped, origStdin
		promptSelect, promptInput, promptPassword = origSelect, origInput, origPassword
		qrDecoder = origDecoder
		ResetGlobalState()
	})

	newEngine = func(string) (gpg.Engine, gpg.KeyLister) { return v.engine, v.keys }
	newClipboard = func() clipboard.Clipboard { return v.clip }
	keyEvents = func() (<-chan clipboard.Event, func(), error) {
		return nil, nil, errors.New("no terminal in tests")
	}
	interactive = func() bool { return true }
	stdoutTerminal = func() bool { return false }
	stdinPiped = func() bool { return false }
	readStdin = func() ([]byte, error) { return nil, errors.New("stdin is empty") }
	promptSelect = func(string, []string) (int, error) { return 0, kerrors.ErrPromptCancelled }
	promptInput = func(string, string, func(string) error) (string, error) { return "", kerrors.ErrPromptCancelled }
	promptPassword = func(string) (string, error) { return "", kerrors.ErrPromptCancelled }

	return v
}

// run executes rvault against the test vault.
func (v *testVault) run(args ...string) (string, error) {
	return execute(append([]string{"--vault", v.root}, args...)...)
}

// execute runs the root command with args, without pointing it at a vault.
func execute(args ...string) (string, error) {
	ResetGlobalState()
	RootCmd.SetArgs(args)
	return captureOutput(func() error {
		return RootCmd.ExecuteContext(context.Background())
	})
}

// initialize binds the test vault to alice's key.
func (v *testVault) initialize(t *testing.T) {
	t.Helper()
	output, err := v.run("init", "--key", aliceKey)
	require.NoError(t, err, output)
}

// add stores a secret as if it was piped on stdin.
func (v *testVault) add(t *testing.T, name, value string) {
	t.Helper()
	stdinPiped = func() bool { return true }
	readStdin = func() ([]byte, error) { return []byte(value), nil }
	defer func() {
		stdinPiped = func() bool { return false }
	}()

	output, err := v.run("add", name)
	require.NoError(t, err, output)
}

func (v *testVault) boundKey(t *testing.T) string {
	t.Helper()
	id, err := identity.Read(v.root)
	require.NoError(t, err)
	return id
}

// captureOutput captures both stdout and stderr during function execution.
func captureOutput(fn func() error) (string, error) {
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
