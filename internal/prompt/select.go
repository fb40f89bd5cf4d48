package prompt

import (
	"errors"
	"fmt"
	"strconv"

	tea "github.com/charmbracelet/bubbletea"
)

// Select asks the user to pick one of the options and returns it.
func (p *Prompter) Select(label string, options []string) (string, error) {
	if len(options) == 0 {
		return "", errors.New("nothing to select from")
	}
	if !p.interactive() {
		return p.selectFallback(label, options)
	}

	m := selectModel{label: label, options: options}
	final, err := tea.NewProgram(m, tea.WithInput(p.in), tea.WithOutput(p.out)).Run()
	if err != nil {
		return "", err
	}
	sm := final.(selectModel)
	if sm.canceled {
		return "", ErrCanceled
	}
	return options[sm.cursor], nil
}

func (p *Prompter) selectFallback(label string, options []string) (string, error) {
	p.printf("%s\n", label)
	for i, option := range options {
		p.printf("  %d) %s\n", i+1, option)
	}
	p.printf("Enter a number (1-%d): ", len(options))

	line, err := p.readLine()
	if err != nil {
		return "", err
	}
	n, err := strconv.Atoi(line)
	if err != nil || n < 1 || n > len(options) {
		return "", fmt.Errorf("invalid selection %q", line)
	}
	return options[n-1], nil
}

type selectModel struct {
	label    string
	options  []string
	cursor   int
	done     bool
	canceled bool
}

func (m selectModel) Init() tea.Cmd {
	return nil
}

func (m selectModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	switch key.String() {
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(m.options)-1 {
			m.cursor++
		}
	case "enter":
		m.done = true
		return m, tea.Quit
	case "ctrl+c", "esc", "q":
		m.canceled = true
		return m, tea.Quit
	}
	return m, nil
}

func (m selectModel) View() string {
	if m.done || m.canceled {
		return ""
	}
	view := labelStyle.Render(m.label) + "\n"
	for i, option := range m.options {
		if i == m.cursor {
			view += cursorStyle.Render("> "+option) + "\n"
		} else {
			view += "  " + option + "\n"
		}
	}
	view += helpStyle.Render("↑/↓ to move, enter to select") + "\n"
	return view
}
