package prompt

import (
	"bytes"
	"strings"
	"testing"
)

// The tests drive the line-based fallback paths; buffers are never
// terminals, so the interactive models stay out of the way.

func TestTextFallback(t *testing.T) {
	tests := []struct {
		name  string
		input string
		def   string
		want  string
	}{
		{name: "answer given", input: "my-dataset\n", want: "my-dataset"},
		{name: "empty answer takes default", input: "\n", def: "default", want: "default"},
		{name: "whitespace trimmed", input: "  padded  \n", want: "padded"},
		{name: "last line without newline", input: "no-newline", want: "no-newline"},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			out := &bytes.Buffer{}
			p := New(strings.NewReader(test.input), out)
			got, err := p.Text("Dataset Name", "", test.def)
			if err != nil {
				t.Fatal(err)
			}
			if got != test.want {
				t.Errorf("got %q, want %q", got, test.want)
			}
			if !strings.Contains(out.String(), "Dataset Name") {
				t.Errorf("prompt output %q missing label", out.String())
			}
		})
	}
}

func TestTextFallbackEOF(t *testing.T) {
	p := New(strings.NewReader(""), &bytes.Buffer{})
	if _, err := p.Text("Name", "", ""); err == nil {
		t.Fatal("expected an error on empty input")
	}
}

func TestSelectFallback(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{name: "first option", input: "1\n", want: "YC Companies"},
		{name: "last option", input: "3\n", want: "Trieve Docs"},
		{name: "out of range", input: "4\n", wantErr: true},
		{name: "zero", input: "0\n", wantErr: true},
		{name: "not a number", input: "first\n", wantErr: true},
	}
	options := []string{"YC Companies", "PhilosophizeThis", "Trieve Docs"}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			out := &bytes.Buffer{}
			p := New(strings.NewReader(test.input), out)
			got, err := p.Select("Select an example dataset to add:", options)
			if test.wantErr {
				if err == nil {
					t.Fatalf("got %q, want error", got)
				}
				return
			}
			if err != nil {
				t.Fatal(err)
			}
			if got != test.want {
				t.Errorf("got %q, want %q", got, test.want)
			}
			for _, option := range options {
				if !strings.Contains(out.String(), option) {
					t.Errorf("prompt output missing option %q", option)
				}
			}
		})
	}
}

func TestSelectRejectsEmptyOptions(t *testing.T) {
	p := New(strings.NewReader("1\n"), &bytes.Buffer{})
	if _, err := p.Select("pick", nil); err == nil {
		t.Fatal("expected an error")
	}
}

func TestConfirmFallback(t *testing.T) {
	tests := []struct {
		input   string
		def     bool
		want    bool
		wantErr bool
	}{
		{input: "y\n", want: true},
		{input: "yes\n", want: true},
		{input: "N\n", def: true, want: false},
		{input: "\n", def: true, want: true},
		{input: "\n", def: false, want: false},
		{input: "maybe\n", wantErr: true},
	}
	for _, test := range tests {
		t.Run(strings.TrimSpace(test.input), func(t *testing.T) {
			p := New(strings.NewReader(test.input), &bytes.Buffer{})
			got, err := p.Confirm("Are you sure you want to delete this dataset?", test.def)
			if test.wantErr {
				if err == nil {
					t.Fatal("expected an error")
				}
				return
			}
			if err != nil {
				t.Fatal(err)
			}
			if got != test.want {
				t.Errorf("got %v, want %v", got, test.want)
			}
		})
	}
}

func TestSequentialPromptsShareInput(t *testing.T) {
	// one reader feeds several prompts without dropping buffered lines
	in := strings.NewReader("n\ntr-pasted-key\nwork\n")
	p := New(in, &bytes.Buffer{})

	viaBrowser, err := p.Confirm("Log in through the browser?", true)
	if err != nil {
		t.Fatal(err)
	}
	if viaBrowser {
		t.Error("expected n to mean no")
	}

	key, err := p.Text("API Key", "", "")
	if err != nil {
		t.Fatal(err)
	}
	if key != "tr-pasted-key" {
		t.Errorf("key = %q", key)
	}

	name, err := p.Text("Profile name", "", "default")
	if err != nil {
		t.Fatal(err)
	}
	if name != "work" {
		t.Errorf("name = %q", name)
	}
}
