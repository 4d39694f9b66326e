// Package prompt implements the interactive questions asked before a run:
// single-choice menus, validated text input and yes/no confirmation, each
// as a small Bubble Tea program returning a plain value.
package prompt

import (
	"errors"
	"fmt"
	"io"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// ErrCancelled is returned when the user aborts a prompt (Ctrl-C or Esc).
var ErrCancelled = errors.New("prompt cancelled")

// Terminal asks questions on a terminal.
type Terminal struct {
	in  io.Reader
	out io.Writer
}

// NewTerminal returns a Terminal reading keys from in and drawing to out.
func NewTerminal(in io.Reader, out io.Writer) *Terminal {
	return &Terminal{in: in, out: out}
}

func (t *Terminal) run(m tea.Model) (tea.Model, error) {
	p := tea.NewProgram(m, tea.WithInput(t.in), tea.WithOutput(t.out))
	final, err := p.Run()
	if err != nil {
		return nil, fmt.Errorf("running prompt: %w", err)
	}
	return final, nil
}

// Select shows items and returns the chosen index.
func (t *Terminal) Select(title string, items []string, def int) (int, error) {
	if len(items) == 0 {
		return 0, fmt.Errorf("select %q: no items", title)
	}
	final, err := t.run(newSelect(title, items, def))
	if err != nil {
		return 0, err
	}
	m := final.(selectModel)
	if m.cancelled {
		return 0, ErrCancelled
	}
	return m.cursor, nil
}

// Input asks for a line of text. An empty answer takes def. validate, when
// non-nil, must accept the answer before the prompt returns.
func (t *Terminal) Input(title, def string, validate func(string) error) (string, error) {
	final, err := t.run(newInput(title, def, validate))
	if err != nil {
		return "", err
	}
	m := final.(inputModel)
	if m.cancelled {
		return "", ErrCancelled
	}
	return m.value, nil
}

// Confirm asks a yes/no question.
func (t *Terminal) Confirm(title string, def bool) (bool, error) {
	final, err := t.run(newConfirm(title, def))
	if err != nil {
		return false, err
	}
	m := final.(confirmModel)
	if m.cancelled {
		return false, ErrCancelled
	}
	return m.value, nil
}

var (
	titleStyle  = lipgloss.NewStyle().Bold(true)
	cursorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
	answerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
	hintStyle   = lipgloss.NewStyle().Faint(true)
)

func isCancel(k tea.KeyMsg) bool {
	return k.Type == tea.KeyCtrlC || k.Type == tea.KeyEsc
}
