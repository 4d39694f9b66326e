package prompt

import (
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func key(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "ctrl+c":
		return tea.KeyMsg{Type: tea.KeyCtrlC}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func feed(m tea.Model, keys ...string) tea.Model {
	for _, k := range keys {
		m, _ = m.Update(key(k))
	}
	return m
}

func TestSelect_Navigate(t *testing.T) {
	m := feed(newSelect("pick", []string{"a", "b", "c"}, 0), "down", "down", "down", "up", "enter").(selectModel)

	assert.True(t, m.done)
	assert.Equal(t, 1, m.cursor)
	assert.Contains(t, m.View(), "b")
}

func TestSelect_VimKeysAndDefault(t *testing.T) {
	m := feed(newSelect("pick", []string{"a", "b", "c"}, 2), "k", "enter").(selectModel)
	assert.Equal(t, 1, m.cursor)

	m = newSelect("pick", []string{"a"}, 9)
	assert.Equal(t, 0, m.cursor)
}

func TestSelect_Cancel(t *testing.T) {
	for _, k := range []string{"esc", "ctrl+c"} {
		m := feed(newSelect("pick", []string{"a", "b"}, 0), k).(selectModel)
		assert.True(t, m.cancelled, k)
		assert.False(t, m.done, k)
	}
}

func TestInput_DefaultOnEmpty(t *testing.T) {
	m := feed(newInput("name", "my_project", nil), "enter").(inputModel)

	assert.True(t, m.done)
	assert.Equal(t, "my_project", m.value)
}

func TestInput_TypedValue(t *testing.T) {
	m := feed(newInput("name", "my_project", nil), "d", "a", "t", "a", "enter").(inputModel)

	assert.True(t, m.done)
	assert.Equal(t, "data", m.value)
}

func TestInput_ValidationBlocksUntilFixed(t *testing.T) {
	errBad := errors.New("no dots")
	validate := func(s string) error {
		if s == "." {
			return errBad
		}
		return nil
	}

	m := feed(newInput("name", "x", validate), ".", "enter").(inputModel)
	require.False(t, m.done)
	assert.Equal(t, errBad, m.err)
	assert.Contains(t, m.View(), "no dots")

	m.field.SetValue("ok")
	final := feed(m, "enter").(inputModel)
	assert.True(t, final.done)
	assert.Equal(t, "ok", final.value)
}

func TestConfirm(t *testing.T) {
	tests := []struct {
		def  bool
		key  string
		want bool
	}{
		{false, "enter", false},
		{true, "enter", true},
		{false, "y", true},
		{true, "n", false},
		{true, "N", false},
	}
	for _, tt := range tests {
		m := feed(newConfirm("ok?", tt.def), tt.key).(confirmModel)
		assert.True(t, m.done)
		assert.Equal(t, tt.want, m.value, "def=%v key=%s", tt.def, tt.key)
	}
}

func TestConfirm_IgnoresOtherKeys(t *testing.T) {
	m := feed(newConfirm("ok?", true), "x").(confirmModel)
	assert.False(t, m.done)
	assert.Contains(t, m.View(), "(Y/n)")
}
