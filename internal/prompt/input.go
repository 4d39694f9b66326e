package prompt

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

type inputModel struct {
	title     string
	def       string
	validate  func(string) error
	field     textinput.Model
	err       error
	value     string
	done      bool
	cancelled bool
}

func newInput(title, def string, validate func(string) error) inputModel {
	field := textinput.New()
	field.Placeholder = def
	field.Prompt = "› "
	field.Focus()
	return inputModel{title: title, def: def, validate: validate, field: field}
}

func (m inputModel) Init() tea.Cmd { return textinput.Blink }

func (m inputModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if k, ok := msg.(tea.KeyMsg); ok {
		if isCancel(k) {
			m.cancelled = true
			return m, tea.Quit
		}
		if k.Type == tea.KeyEnter {
			v := strings.TrimSpace(m.field.Value())
			if v == "" {
				v = m.def
			}
			if m.validate != nil {
				if err := m.validate(v); err != nil {
					m.err = err
					return m, nil
				}
			}
			m.value = v
			m.done = true
			return m, tea.Quit
		}
		m.err = nil
	}

	var cmd tea.Cmd
	m.field, cmd = m.field.Update(msg)
	return m, cmd
}

func (m inputModel) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render(m.title))
	if m.done {
		b.WriteString(" · " + answerStyle.Render(m.value) + "\n")
		return b.String()
	}
	b.WriteString("\n")
	b.WriteString(m.field.View())
	b.WriteString("\n")
	if m.err != nil {
		b.WriteString(errorStyle.Render(m.err.Error()))
		b.WriteString("\n")
	}
	return b.String()
}
