package edit

import (
	"testing"
)

func TestNormalizeNewlines(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"empty", "", ""},
		{"already clean", "a\nb\n", "a\nb\n"},
		{"windows endings", "a\r\nb\r\n", "a\nb\n"},
		{"old mac endings", "a\rb\r", "a\nb\n"},
		{"mixed endings", "a\r\nb\rc\n", "a\nb\nc\n"},
		{"bare carriage return run", "a\r\r\nb", "a\n\nb"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := NormalizeNewlines(tt.input)
			if result != tt.expected {
				t.Errorf("NormalizeNewlines(%q) = %q, want %q", tt.input, result, tt.expected)
			}
		})
	}
}

func TestExpandTabs(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		width    int
		expected string
	}{
		{"no tabs", "abc", 4, "abc"},
		{"single tab", "a\tb", 4, "a    b"},
		{"width two", "a\tb", 2, "a  b"},
		{"leading tabs", "\t\tx", 4, "        x"},
		{"zero width is off", "a\tb", 0, "a\tb"},
		{"negative width is off", "a\tb", -1, "a\tb"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := ExpandTabs(tt.input, tt.width)
			if result != tt.expected {
				t.Errorf("ExpandTabs(%q, %d) = %q, want %q", tt.input, tt.width, result, tt.expected)
			}
		})
	}
}

func TestSqueezeBlankLines(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"empty", "", ""},
		{"nothing to squeeze", "a\n\nb", "a\n\nb"},
		{"one extra blank line", "a\n\n\nb", "a\n\nb"},
		{"long run", "a\n\n\n\n\n\nb", "a\n\nb"},
		{"multiple runs", "a\n\n\nb\n\n\n\nc", "a\n\nb\n\nc"},
		{"blank line with spaces survives", "a\n \n\nb", "a\n \n\nb"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := SqueezeBlankLines(tt.input)
			if result != tt.expected {
				t.Errorf("SqueezeBlankLines(%q) = %q, want %q", tt.input, result, tt.expected)
			}
		})
	}
}

func TestFinalNewline(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"empty stays empty", "", ""},
		{"adds missing newline", "abc", "abc\n"},
		{"keeps single newline", "abc\n", "abc\n"},
		{"collapses trailing newlines", "abc\n\n\n", "abc\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := FinalNewline(tt.input)
			if result != tt.expected {
				t.Errorf("FinalNewline(%q) = %q, want %q", tt.input, result, tt.expected)
			}
		})
	}
}

func TestApply(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		opts     Options
		expected string
	}{
		{
			name:     "zero options change nothing",
			input:    "  a\tb\n\n\n\n",
			opts:     Options{},
			expected: "  a\tb\n\n\n\n",
		},
		{
			name:     "trim only",
			input:    "  hello  \n",
			opts:     Options{TrimSpace: true},
			expected: "hello",
		},
		{
			name:     "all steps combined",
			input:    "one\tmore\n\n\n\ntwo  \n\n",
			opts:     Options{TrimSpace: true, Squeeze: true, TabWidth: 4, FinalNewline: true},
			expected: "one    more\n\ntwo\n",
		},
		{
			name:     "final newline after trim",
			input:    "abc\n\n",
			opts:     Options{TrimSpace: true, FinalNewline: true},
			expected: "abc\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Apply(tt.input, tt.opts)
			if result != tt.expected {
				t.Errorf("Apply(%q, %+v) = %q, want %q", tt.input, tt.opts, result, tt.expected)
			}
		})
	}
}

func TestApplyIdempotent(t *testing.T) {
	opts := Options{TrimSpace: true, Squeeze: true, TabWidth: 4, FinalNewline: true}
	input := "\tone\r\n\n\n\ntwo  \n"

	once := Apply(NormalizeNewlines(input), opts)
	twice := Apply(once, opts)
	if once != twice {
		t.Errorf("Apply is not idempotent: first %q, second %q", once, twice)
	}
}
