package trtab

import (
	"bytes"
	"os"
	"strings"
	"testing"
	"unicode/utf8"
)

func Example() {
	type row struct {
		Name string `trtab:"NAME"`
		Role string `trtab:"ROLE"`
	}

	tab := New[row](os.Stdout)
	tab.SetTermSize(80, 24)
	tab.AddHeader()
	tab.AddRow(row{Name: "alpha", Role: "owner"})
	tab.AddRow(row{Name: "b", Role: "read"})
	tab.Flush()

	// Output:
	// NAME    ROLE
	// alpha   owner
	// b       read
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		name string
		in   string
		n    int
		want string
	}{
		{"fits", "hello", 10, "hello"},
		{"exact", "hello", 5, "hello"},
		{"truncated", "hello world", 7, "hello.."},
		{"tiny budget", "hello", 2, "he"},
		{"zero budget", "hello", 0, ""},
		{"negative budget", "hello", -3, ""},
		{"multibyte", "héllo", 4, "hé.."},
		{"empty", "", 5, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Truncate(tt.in, tt.n); got != tt.want {
				t.Errorf("Truncate(%q, %d) = %q, want %q", tt.in, tt.n, got, tt.want)
			}
		})
	}
}

func TestTruncColumnsShareWidth(t *testing.T) {
	type row struct {
		A string `trtab:"A,trunc"`
		B string `trtab:"B,trunc"`
	}

	var buf bytes.Buffer
	tab := New[row](&buf)
	tab.SetTermSize(20, 10)
	if err := tab.AddRow(row{
		A: strings.Repeat("a", 14),
		B: strings.Repeat("b", 14),
	}); err != nil {
		t.Fatalf("AddRow: %v", err)
	}
	if err := tab.Flush(); err != nil {
		t.Fatalf("Flush: %v", err)
	}

	want := "aaaaaaaa..   bbbbbbbb..\n"
	if got := buf.String(); got != want {
		t.Errorf("rendered %q, want %q", got, want)
	}
}

func FuzzTruncate(f *testing.F) {
	f.Add("abc", 10)
	f.Add("abcdef", 6)
	f.Add(strings.Repeat("abc", 70), 30)
	f.Add(strings.Repeat("Hello, 世界", 70), 8)

	f.Fuzz(func(t *testing.T, in string, truncLen int) {
		inLen := utf8.RuneCountInString(in)
		if truncLen < 0 {
			truncLen = 0
		}

		out := Truncate(in, truncLen)
		outLen := utf8.RuneCountInString(out)
		if outLen > truncLen {
			t.Errorf("RuneCountInString() = %v; want at most %v", outLen, truncLen)
		}
		if utf8.ValidString(in) && !utf8.ValidString(out) {
			t.Errorf("truncation produced invalid UTF-8 string %q", out)
		}
		if inLen <= truncLen && out != in {
			t.Errorf("Truncate(%q, %v) = %q; expected no change", in, truncLen, out)
		}
	})
}
