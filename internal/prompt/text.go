package prompt

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// Text asks for one line of input. An empty answer yields defaultValue.
// The help line, if any, is shown below the input.
func (p *Prompter) Text(label, help, defaultValue string) (string, error) {
	if !p.interactive() {
		return p.textFallback(label, defaultValue)
	}

	ti := textinput.New()
	ti.Placeholder = defaultValue
	ti.Focus()
	ti.Width = 50

	m := textModel{label: label, help: help, input: ti}
	final, err := tea.NewProgram(m, tea.WithInput(p.in), tea.WithOutput(p.out)).Run()
	if err != nil {
		return "", err
	}
	tm := final.(textModel)
	if tm.canceled {
		return "", ErrCanceled
	}
	value := tm.input.Value()
	if value == "" {
		value = defaultValue
	}
	return value, nil
}

func (p *Prompter) textFallback(label, defaultValue string) (string, error) {
	if defaultValue != "" {
		p.printf("%s [%s]: ", label, defaultValue)
	} else {
		p.printf("%s: ", label)
	}
	line, err := p.readLine()
	if err != nil {
		return "", err
	}
	if line == "" {
		return defaultValue, nil
	}
	return line, nil
}

type textModel struct {
	label    string
	help     string
	input    textinput.Model
	done     bool
	canceled bool
}

func (m textModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m textModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "enter":
			m.done = true
			return m, tea.Quit
		case "ctrl+c", "esc":
			m.canceled = true
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m textModel) View() string {
	if m.done || m.canceled {
		return ""
	}
	view := labelStyle.Render(m.label) + "\n" + m.input.View() + "\n"
	if m.help != "" {
		view += helpStyle.Render(m.help) + "\n"
	}
	return view
}
