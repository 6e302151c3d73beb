package ui

import (
	"fmt"
	"os"

	"github.com/fatih/color"
)

// Formatter applies semantic formatting to text. Without colour it falls
// back to plain decorations.
type Formatter struct {
	color  *color.Color
	prefix string
	suffix string
}

func (f Formatter) Sprint(a ...interface{}) string {
	return f.render(fmt.Sprint(a...))
}

func (f Formatter) Sprintf(format string, a ...interface{}) string {
	return f.render(fmt.Sprintf(format, a...))
}

func (f Formatter) render(text string) string {
	if noColor() {
		return f.prefix + text + f.suffix
	}
	return f.color.Sprint(text)
}

// EnsureNewline ensures the string ends with a newline character.
func EnsureNewline(s string) string {
	if len(s) == 0 || s[len(s)-1] != '\n' {
		return s + "\n"
	}
	return s
}

func noColor() bool {
	// https://no-color.org/
	if _, exists := os.LookupEnv("NO_COLOR"); exists {
		return true
	}
	return color.NoColor
}

var (
	// Command formats runnable commands, `backticks` without colour.
	Command = Formatter{color.New(color.FgYellow), "`", "`"}

	Path = Formatter{color.New(color.FgYellow), "", ""}
	Flag = Formatter{color.New(color.FgYellow), "", ""}

	// Name formats secret names, 'single quotes' without colour.
	Name = Formatter{color.New(color.FgCyan), "'", "'"}

	// Key formats key ids and user ids of the bound identity.
	Key = Formatter{color.New(color.FgMagenta), "<", ">"}

	// Secret formats revealed values and one-time codes. It never decorates,
	// so piping show output yields the bare value.
	Secret = Formatter{color.New(color.Bold), "", ""}

	Success = Formatter{color.New(color.FgGreen), "", ""}
	Error   = Formatter{color.New(color.FgRed), "", ""}
	Warning = Formatter{color.New(color.FgYellow), "", ""}
	Info    = Formatter{color.New(color.FgCyan), "", ""}

	// Muted formats secondary text, (parentheses) without colour.
	Muted = Formatter{color.New(color.FgHiBlack), "(", ")"}
)
