// Package prompt asks interactively for the values a command was not
// given as flags. Commands resolve every input through flags or a
// prompt before doing any work, so the rest of the code only ever sees
// final scalar values.
//
// When stdin or stdout is not a terminal, prompts degrade to plain
// line-based questions so the CLI stays scriptable.
package prompt

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"
)

// ErrCanceled reports that the user backed out of a prompt.
var ErrCanceled = errors.New("canceled")

var (
	labelStyle  = lipgloss.NewStyle().Bold(true)
	cursorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("212"))
	helpStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

type Prompter struct {
	in  io.Reader
	out io.Writer

	// rd buffers fallback reads so consecutive prompts don't swallow
	// each other's input.
	rd *bufio.Reader
}

func New(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{in: in, out: out}
}

func (p *Prompter) interactive() bool {
	inFile, ok := p.in.(*os.File)
	if !ok {
		return false
	}
	outFile, ok := p.out.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(inFile.Fd())) && term.IsTerminal(int(outFile.Fd()))
}

func (p *Prompter) reader() *bufio.Reader {
	if p.rd == nil {
		p.rd = bufio.NewReader(p.in)
	}
	return p.rd
}

func (p *Prompter) readLine() (string, error) {
	line, err := p.reader().ReadString('\n')
	line = strings.TrimSpace(line)
	if err != nil && line == "" {
		return "", fmt.Errorf("reading input: %w", err)
	}
	return line, nil
}

func (p *Prompter) printf(format string, args ...any) {
	fmt.Fprintf(p.out, format, args...)
}
