package prompt

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

type selectModel struct {
	title     string
	items     []string
	cursor    int
	done      bool
	cancelled bool
}

func newSelect(title string, items []string, def int) selectModel {
	if def < 0 || def >= len(items) {
		def = 0
	}
	return selectModel{title: title, items: items, cursor: def}
}

func (m selectModel) Init() tea.Cmd { return nil }

func (m selectModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	k, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	if isCancel(k) {
		m.cancelled = true
		return m, tea.Quit
	}
	switch k.String() {
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(m.items)-1 {
			m.cursor++
		}
	case "home":
		m.cursor = 0
	case "end":
		m.cursor = len(m.items) - 1
	case "enter":
		m.done = true
		return m, tea.Quit
	}
	return m, nil
}

func (m selectModel) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render(m.title))
	if m.done {
		b.WriteString(" · " + answerStyle.Render(m.items[m.cursor]) + "\n")
		return b.String()
	}
	if m.cancelled {
		b.WriteString("\n")
		return b.String()
	}
	b.WriteString("\n")
	for i, item := range m.items {
		if i == m.cursor {
			b.WriteString(cursorStyle.Render("> " + item))
		} else {
			b.WriteString("  " + item)
		}
		b.WriteString("\n")
	}
	b.WriteString(hintStyle.Render("↑/↓ enter esc"))
	b.WriteString("\n")
	return b.String()
}
