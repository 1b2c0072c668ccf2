package stats

import "testing"

func TestChars(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		expected int
	}{
		{"empty string", "", 0},
		{"ascii word", "hello", 5},
		{"accented char", "café", 4}, // é is one user-perceived character
		{"whitespace included", "a b", 3},
		{"emoji", "hi 👋", 4}, // emoji is one grapheme cluster
		{"combining mark", "é", 1},
		{"newlines count", "a\nb", 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Chars(tt.text); got != tt.expected {
				t.Errorf("Chars(%q) = %d, want %d", tt.text, got, tt.expected)
			}
		})
	}
}

func TestWords(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		expected int
	}{
		{"empty string", "", 0},
		{"whitespace only", "   ", 0},
		{"two words", "hello world", 2},
		{"newline runs collapse", "hello\n\n\nworld", 2},
		{"mixed separators", "  one\ttwo  three\n", 3},
		{"unicode words", "café naïve résumé", 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Words(tt.text); got != tt.expected {
				t.Errorf("Words(%q) = %d, want %d", tt.text, got, tt.expected)
			}
		})
	}
}

func TestLines(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		expected int
	}{
		{"empty string", "", 0},
		{"single line", "a", 1},
		{"two lines", "a\nb", 2},
		{"lone newline", "\n", 2},
		{"trailing newline", "a\n", 2},
		{"consecutive newlines not collapsed", "a\n\nb", 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Lines(tt.text); got != tt.expected {
				t.Errorf("Lines(%q) = %d, want %d", tt.text, got, tt.expected)
			}
		})
	}
}

func TestBytes(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		expected int
	}{
		{"empty string", "", 0},
		{"ascii", "abc", 3},
		{"multi-byte accent", "café", 5}, // é encodes as two bytes
		{"emoji", "👋", 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Bytes(tt.text); got != tt.expected {
				t.Errorf("Bytes(%q) = %d, want %d", tt.text, got, tt.expected)
			}
		})
	}
}

func TestFormatSize(t *testing.T) {
	tests := []struct {
		name     string
		bytes    int
		expected string
	}{
		{"zero", 0, "0 B"},
		{"just under a kilobyte", 1023, "1023 B"},
		{"kilobyte boundary", 1024, "1.0 KB"},
		{"one and a half kilobytes", 1536, "1.5 KB"},
		{"just under a megabyte", 1048064, "1023.5 KB"},
		{"megabyte boundary", 1048576, "1.0 MB"},
		{"several megabytes", 5 * 1048576, "5.0 MB"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatSize(tt.bytes); got != tt.expected {
				t.Errorf("FormatSize(%d) = %q, want %q", tt.bytes, got, tt.expected)
			}
		})
	}
}

func TestMeasure(t *testing.T) {
	rep := Measure("hello world\n")

	if rep.Chars != 12 {
		t.Errorf("Measure Chars = %d, want 12", rep.Chars)
	}
	if rep.Words != 2 {
		t.Errorf("Measure Words = %d, want 2", rep.Words)
	}
	if rep.Lines != 2 {
		t.Errorf("Measure Lines = %d, want 2", rep.Lines)
	}
	if rep.Bytes != 12 {
		t.Errorf("Measure Bytes = %d, want 12", rep.Bytes)
	}
	if rep.Size != "12 B" {
		t.Errorf("Measure Size = %q, want %q", rep.Size, "12 B")
	}
}

func TestMeasureEmpty(t *testing.T) {
	rep := Measure("")

	want := Report{Chars: 0, Words: 0, Lines: 0, Bytes: 0, Size: "0 B"}
	if rep != want {
		t.Errorf("Measure(\"\") = %+v, want %+v", rep, want)
	}
}

// measuring is deterministic: the same buffer always yields the same report
func TestMeasureIdempotent(t *testing.T) {
	inputs := []string{"", "hello", "a\nb\n", "café 👋\n\nmore", "   "}

	for _, in := range inputs {
		first := Measure(in)
		second := Measure(in)
		if first != second {
			t.Errorf("Measure(%q) not deterministic: %+v != %+v", in, first, second)
		}
	}
}
