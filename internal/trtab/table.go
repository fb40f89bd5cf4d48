// Package trtab renders terminal tables for the Trieve CLI.
//
// Row types declare their columns with struct tags:
//
//	type row struct {
//		Name    string `trtab:"NAME"`
//		Created string `trtab:"CREATED,trunc"`
//	}
//
// Columns marked "trunc" are truncated to their share of the terminal
// width; other columns are written as-is.
package trtab

import (
	"io"
	"os"
	"text/tabwriter"
	"unicode/utf8"

	"golang.org/x/term"
)

// Column describes one table column for rows of type R.
type Column[R any] struct {
	Title    string
	Get      func(R) string
	Truncate bool
}

// Columns provides the column set for a row type.
type Columns[R any] interface {
	Columns() []Column[R]
}

type T[R any] struct {
	tw      *tabwriter.Writer
	columns []Column[R]
	width   int
	height  int
	buf     []string
}

// New builds a table for rows of type R, deriving columns from the
// row type's trtab struct tags.
func New[R any](w io.Writer) *T[R] {
	return FromColumns[R](w, taggedStructColumns[R]())
}

// FromColumns builds a table with an explicit column set.
func FromColumns[R any](w io.Writer, cols Columns[R]) *T[R] {
	columns := cols.Columns()
	t := &T[R]{
		tw:      tabwriter.NewWriter(w, 0, 0, 3, ' ', 0),
		columns: columns,
		buf:     make([]string, len(columns)),
	}
	t.width, t.height = 100, 50
	if f, ok := w.(*os.File); ok {
		if width, height, err := term.GetSize(int(f.Fd())); err == nil {
			t.width, t.height = width, height
		}
	}
	return t
}

// SetTermSize overrides the detected terminal size. Used by tests and
// by callers that render somewhere other than a terminal.
func (t *T[R]) SetTermSize(width, height int) {
	t.width, t.height = width, height
}

func (t *T[R]) AddHeader() error {
	for i, col := range t.columns {
		t.buf[i] = col.Title
	}
	return t.writeLine()
}

func (t *T[R]) AddRow(r R) error {
	for i, col := range t.columns {
		t.buf[i] = col.Get(r)
	}
	return t.writeLine()
}

func (t *T[R]) Flush() error {
	return t.tw.Flush()
}

// writeLine emits the buffered cells as one tabwriter record, capping
// truncatable cells at an equal share of the terminal width.
func (t *T[R]) writeLine() error {
	share := t.width / len(t.columns)
	for i, col := range t.columns {
		if i > 0 {
			if _, err := io.WriteString(t.tw, "\t"); err != nil {
				return err
			}
		}
		cell := t.buf[i]
		if col.Truncate {
			cell = Truncate(cell, share)
		}
		if _, err := io.WriteString(t.tw, cell); err != nil {
			return err
		}
	}
	_, err := io.WriteString(t.tw, "\n")
	return err
}

// Truncate shortens s to at most n runes, marking removed text with
// a ".." suffix when room allows.
func Truncate(s string, n int) string {
	if n <= 0 {
		return ""
	}
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	runes := []rune(s)
	if n <= 2 {
		return string(runes[:n])
	}
	return string(runes[:n-2]) + ".."
}
