package ui

import (
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func key(s string) tea.KeyMsg {
	switch s {
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
	}
}

func feed(m tea.Model, keys ...string) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	for _, k := range keys {
		m, cmd = m.Update(key(k))
	}
	return m, cmd
}

func TestSelectModel_Navigation(t *testing.T) {
	m := newSelectModel("Pick a secret", []string{"bank", "github", "mail"})

	final, cmd := feed(m, "down", "down", "down", "up", "enter")
	sm := final.(*selectModel)

	assert.Equal(t, 1, sm.idx)
	assert.True(t, sm.done)
	assert.False(t, sm.cancelled)
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestSelectModel_VimKeysAndBounds(t *testing.T) {
	m := newSelectModel("Pick", []string{"a", "b"})

	final, _ := feed(m, "k", "j", "j", "j")
	assert.Equal(t, 1, final.(*selectModel).idx)

	final, _ = feed(final, "g")
	assert.Equal(t, 0, final.(*selectModel).idx)
}

func TestSelectModel_Cancel(t *testing.T) {
	final, cmd := feed(newSelectModel("Pick", []string{"a"}), "esc")
	assert.True(t, final.(*selectModel).cancelled)
	require.NotNil(t, cmd)
	assert.Empty(t, final.View())
}

func TestSelectModel_ViewPages(t *testing.T) {
	items := make([]string, 0, 15)
	for _, r := range "abcdefghijklmno" {
		items = append(items, string(r))
	}
	m := newSelectModel("Pick", items)
	for range 12 {
		m.Update(key("down"))
	}

	view := m.View()
	assert.Contains(t, view, "13/15")
	assert.Contains(t, view, "m")
	assert.NotContains(t, view, "  a\n")
}

func TestInputModel_ValidationKeepsPromptOpen(t *testing.T) {
	validate := func(v string) error {
		if v == "bad/name" {
			return errors.New("name may not contain '/'")
		}
		return nil
	}
	m := newInputModel("Name", "", false, validate)

	final, cmd := feed(m, "bad/name", "enter")
	im := final.(*inputModel)
	assert.False(t, im.done)
	assert.Nil(t, cmd)
	assert.Contains(t, im.View(), "may not contain")

	im.input.SetValue("")
	final, cmd = feed(im, "github", "enter")
	im = final.(*inputModel)
	assert.True(t, im.done)
	assert.Equal(t, "github", im.value())
	require.NotNil(t, cmd)
}

func TestInputModel_PasswordIsMasked(t *testing.T) {
	m := newInputModel("Secret", "", true, nil)
	final, _ := feed(m, "hunter2")

	view := final.View()
	assert.NotContains(t, view, "hunter2")
	assert.Contains(t, view, "*******")
	assert.Equal(t, "hunter2", final.(*inputModel).value())
}

func TestInputModel_Cancel(t *testing.T) {
	final, _ := feed(newInputModel("Name", "", false, nil), "abc", "esc")
	assert.True(t, final.(*inputModel).cancelled)
}
