// Package stats provides text measurement for the clipdrop CLI tool.
//
// Every function is pure and total: any string (and any non-negative byte
// count) maps to a value, never an error. The command layer calls Measure on
// the current buffer and displays the Report read-only; structured output
// formats embed the same Report in saved documents.
//
// Usage Example:
//
//	rep := stats.Measure("hello world\n")
//	// rep.Words == 2, rep.Lines == 2, rep.Size == "12 B"
package stats

import (
	"fmt"
	"strings"

	"github.com/rivo/uniseg"
)

// Report holds every measurement for a single buffer. Field tags cover JSON,
// YAML, and XML so the struct can ride along inside structured renders.
type Report struct {
	Chars int    `json:"chars" yaml:"chars" xml:"chars"`
	Words int    `json:"words" yaml:"words" xml:"words"`
	Lines int    `json:"lines" yaml:"lines" xml:"lines"`
	Bytes int    `json:"bytes" yaml:"bytes" xml:"bytes"`
	Size  string `json:"size" yaml:"size" xml:"size"`
}

// Measure computes all statistics for s in one call. Measuring the same
// string twice yields identical Reports.
func Measure(s string) Report {
	b := Bytes(s)
	return Report{
		Chars: Chars(s),
		Words: Words(s),
		Lines: Lines(s),
		Bytes: b,
		Size:  FormatSize(b),
	}
}

// Chars returns the number of user-perceived characters in s, counted as
// Unicode grapheme clusters. A combining sequence or a multi-rune emoji
// counts once, regardless of how many runes or bytes encode it.
func Chars(s string) int {
	if s == "" {
		return 0
	}
	return uniseg.GraphemeClusterCount(s)
}

// Words returns the number of whitespace-separated words in s. Runs of any
// Unicode whitespace collapse to a single separator, so a blank or empty
// string has zero words.
func Words(s string) int {
	return len(strings.Fields(s))
}

// Lines returns the number of newline-delimited segments in s. The empty
// string has zero lines; consecutive newlines are not collapsed, and a
// trailing newline opens a final empty segment, so Lines("a\n") is 2 and
// Lines("\n") is 2.
func Lines(s string) int {
	if s == "" {
		return 0
	}
	return strings.Count(s, "\n") + 1
}

// Bytes returns the length of the UTF-8 encoding of s.
func Bytes(s string) int {
	return len(s)
}

// size tier boundaries
const (
	kb = 1 << 10
	mb = 1 << 20
)

// FormatSize renders a byte count for display: whole bytes below 1 KB, then
// one decimal place of KB or MB. The boundary value 1024 formats as "1.0 KB",
// never "1024 B".
func FormatSize(n int) string {
	switch {
	case n < kb:
		return fmt.Sprintf("%d B", n)
	case n < mb:
		return fmt.Sprintf("%.1f KB", float64(n)/kb)
	default:
		return fmt.Sprintf("%.1f MB", float64(n)/mb)
	}
}
