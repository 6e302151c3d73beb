package utils

import (
	"context"
	"fmt"
	"os"
	"runtime"

	"golang.org/x/term"
)

// TTYPath is the controlling terminal device: /dev/tty, or CON on Windows.
func TTYPath() string {
	if runtime.GOOS == "windows" {
		return "CON"
	}
	return "/dev/tty"
}

// ReadPassphraseFromTTY prompts for a passphrase on the controlling terminal
// without echoing it. Stdin stays free for piped data.
func ReadPassphraseFromTTY(prompt string) ([]byte, error) {
	tty, err := os.Open(TTYPath())
	if err != nil {
		return nil, fmt.Errorf("cannot open %s for passphrase input: %w", TTYPath(), err)
	}
	defer tty.Close()

	fd := int(tty.Fd())
	if !term.IsTerminal(fd) {
		return nil, fmt.Errorf("%s is not a terminal", TTYPath())
	}

	fmt.Fprint(os.Stderr, prompt)
	passphrase, err := term.ReadPassword(fd)
	fmt.Fprintln(os.Stderr)

	if err != nil {
		return nil, fmt.Errorf("failed to read passphrase: %w", err)
	}

	return passphrase, nil
}

// TerminalPassphrase prompts for the key passphrase each time it is asked.
// It satisfies gpg.PassphraseSource.
type TerminalPassphrase struct {
	Prompt string
}

func (p TerminalPassphrase) Passphrase(ctx context.Context) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	prompt := p.Prompt
	if prompt == "" {
		prompt = "Passphrase: "
	}
	return ReadPassphraseFromTTY(prompt)
}

// IsTerminal returns true if stdin is a terminal.
func IsTerminal() bool {
	return term.IsTerminal(int(os.Stdin.Fd()))
}

// IsStdoutTerminal returns true if stdout is a terminal.
func IsStdoutTerminal() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}

// IsTTYAvailable returns true if the controlling terminal can be opened.
func IsTTYAvailable() bool {
	tty, err := os.Open(TTYPath())
	if err != nil {
		return false
	}
	defer tty.Close()

	return term.IsTerminal(int(tty.Fd()))
}
