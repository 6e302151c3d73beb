package ui

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	kerrors "github.com/PolarWolf314/rvault/internal/errors"
)

const selectPageSize = 10

// Select asks the user to pick one of items and returns its index.
// Esc or ctrl+c returns ErrPromptCancelled.
func Select(title string, items []string) (int, error) {
	if len(items) == 0 {
		return 0, fmt.Errorf("%w: nothing to select", kerrors.ErrPromptCancelled)
	}
	final, err := run(newSelectModel(title, items))
	if err != nil {
		return 0, err
	}
	m := final.(*selectModel)
	if m.cancelled {
		return 0, kerrors.ErrPromptCancelled
	}
	return m.idx, nil
}

// Input reads one line. validate, when set, runs on enter and keeps the
// prompt open with its message until the value passes.
func Input(title, placeholder string, validate func(string) error) (string, error) {
	return runInput(newInputModel(title, placeholder, false, validate))
}

// Password reads one line without echoing it.
func Password(title string) (string, error) {
	return runInput(newInputModel(title, "", true, func(v string) error {
		if v == "" {
			return fmt.Errorf("value cannot be empty")
		}
		return nil
	}))
}

func runInput(m *inputModel) (string, error) {
	final, err := run(m)
	if err != nil {
		return "", err
	}
	m = final.(*inputModel)
	if m.cancelled {
		return "", kerrors.ErrPromptCancelled
	}
	return m.value(), nil
}

// run draws on stderr and reads the terminal directly so stdout and stdin
// stay free for data.
func run(m tea.Model) (tea.Model, error) {
	final, err := tea.NewProgram(m, tea.WithInputTTY(), tea.WithOutput(os.Stderr)).Run()
	if err != nil {
		return nil, fmt.Errorf("prompt failed: %w", err)
	}
	return final, nil
}

type selectModel struct {
	title     string
	items     []string
	idx       int
	cancelled bool
	done      bool
}

func newSelectModel(title string, items []string) *selectModel {
	return &selectModel{title: title, items: items}
}

func (m *selectModel) Init() tea.Cmd {
	return nil
}

func (m *selectModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch keyMsg.String() {
	case "up", "k":
		if m.idx > 0 {
			m.idx--
		}
	case "down", "j":
		if m.idx < len(m.items)-1 {
			m.idx++
		}
	case "home", "g":
		m.idx = 0
	case "end", "G":
		m.idx = len(m.items) - 1
	case "enter":
		m.done = true
		return m, tea.Quit
	case "esc", "ctrl+c", "q":
		m.cancelled = true
		return m, tea.Quit
	}
	return m, nil
}

func (m *selectModel) View() string {
	if m.done || m.cancelled {
		return ""
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render(m.title))
	b.WriteString("\n")

	start := 0
	if m.idx >= selectPageSize {
		start = m.idx - selectPageSize + 1
	}
	end := min(start+selectPageSize, len(m.items))

	for i := start; i < end; i++ {
		if i == m.idx {
			b.WriteString(cursorStyle.Render("> "))
			b.WriteString(selectedStyle.Render(m.items[i]))
		} else {
			b.WriteString("  ")
			b.WriteString(m.items[i])
		}
		b.WriteString("\n")
	}

	if len(m.items) > selectPageSize {
		b.WriteString(helpStyle.Render(fmt.Sprintf("%d/%d", m.idx+1, len(m.items))))
		b.WriteString("\n")
	}
	b.WriteString(helpStyle.Render("↑/↓: move │ enter: select │ esc: cancel"))
	b.WriteString("\n")
	return b.String()
}

type inputModel struct {
	title     string
	input     textinput.Model
	validate  func(string) error
	errMsg    string
	cancelled bool
	done      bool
}

func newInputModel(title, placeholder string, secret bool, validate func(string) error) *inputModel {
	input := textinput.New()
	input.Placeholder = placeholder
	input.CharLimit = 4096
	input.Width = 40
	if secret {
		input.EchoMode = textinput.EchoPassword
		input.EchoCharacter = '*'
	}
	input.Focus()

	return &inputModel{title: title, input: input, validate: validate}
}

func (m *inputModel) value() string {
	return strings.TrimRight(m.input.Value(), "\r\n")
}

func (m *inputModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m *inputModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "esc", "ctrl+c":
			m.cancelled = true
			return m, tea.Quit
		case "enter":
			if m.validate != nil {
				if err := m.validate(m.value()); err != nil {
					m.errMsg = err.Error()
					return m, nil
				}
			}
			m.done = true
			return m, tea.Quit
		}
	}

	m.errMsg = ""
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *inputModel) View() string {
	if m.done || m.cancelled {
		return ""
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render(m.title))
	b.WriteString("\n")
	b.WriteString(m.input.View())
	b.WriteString("\n")
	if m.errMsg != "" {
		b.WriteString(errorStyle.Render(m.errMsg))
		b.WriteString("\n")
	}
	b.WriteString(helpStyle.Render("enter: confirm │ esc: cancel"))
	b.WriteString("\n")
	return b.String()
}
