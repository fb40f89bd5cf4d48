package prompt

import "fmt"

// Confirm asks a yes/no question. An empty answer yields def.
func (p *Prompter) Confirm(label string, def bool) (bool, error) {
	if p.interactive() {
		options := []string{"Yes", "No"}
		if !def {
			options = []string{"No", "Yes"}
		}
		choice, err := p.Select(label, options)
		if err != nil {
			return false, err
		}
		return choice == "Yes", nil
	}

	if def {
		p.printf("%s [Y/n]: ", label)
	} else {
		p.printf("%s [y/N]: ", label)
	}
	line, err := p.readLine()
	if err != nil {
		return false, err
	}
	switch line {
	case "":
		return def, nil
	case "y", "Y", "yes", "Yes":
		return true, nil
	case "n", "N", "no", "No":
		return false, nil
	default:
		return false, fmt.Errorf("invalid answer %q", line)
	}
}
