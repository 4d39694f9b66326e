package prompt

import (
	tea "github.com/charmbracelet/bubbletea"
)

type confirmModel struct {
	title     string
	def       bool
	value     bool
	done      bool
	cancelled bool
}

func newConfirm(title string, def bool) confirmModel {
	return confirmModel{title: title, def: def}
}

func (m confirmModel) Init() tea.Cmd { return nil }

func (m confirmModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	k, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	if isCancel(k) {
		m.cancelled = true
		return m, tea.Quit
	}
	switch k.String() {
	case "y", "Y":
		m.value = true
	case "n", "N":
		m.value = false
	case "enter":
		m.value = m.def
	default:
		return m, nil
	}
	m.done = true
	return m, tea.Quit
}

func (m confirmModel) View() string {
	hint := "(y/N)"
	if m.def {
		hint = "(Y/n)"
	}
	if m.done {
		answer := "no"
		if m.value {
			answer = "yes"
		}
		return titleStyle.Render(m.title) + " · " + answerStyle.Render(answer) + "\n"
	}
	return titleStyle.Render(m.title) + " " + hintStyle.Render(hint) + "\n"
}
