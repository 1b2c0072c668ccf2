// Package edit applies light text cleanup to clipboard content before it is
// measured and written out.
//
// Newline normalization is unconditional and happens at acquisition time;
// everything else is opt-in through Options. Every transform is a pure
// string function and is idempotent on its own output, so repeated runs over
// already-clean text change nothing.
package edit

import (
	"regexp"
	"strings"
)

// Options selects the optional cleanup steps. The zero value applies none.
type Options struct {
	TrimSpace    bool // strip leading and trailing whitespace
	Squeeze      bool // collapse runs of blank lines down to one
	TabWidth     int  // expand tabs to this many spaces when > 0
	FinalNewline bool // end the text with exactly one newline
}

var newlineReplacer = strings.NewReplacer("\r\n", "\n", "\r", "\n")

var blankRuns = regexp.MustCompile(`\n{3,}`)

// NormalizeNewlines rewrites Windows (\r\n) and old Mac (\r) line endings to
// plain \n. Every acquired source passes through here, so line counts and
// emitted files do not depend on where the text was copied from.
func NormalizeNewlines(s string) string {
	if !strings.ContainsRune(s, '\r') {
		return s
	}
	return newlineReplacer.Replace(s)
}

// ExpandTabs replaces each tab with width spaces. A width of zero or less
// leaves the text unchanged.
func ExpandTabs(s string, width int) string {
	if width <= 0 || !strings.ContainsRune(s, '\t') {
		return s
	}
	return strings.ReplaceAll(s, "\t", strings.Repeat(" ", width))
}

// SqueezeBlankLines collapses runs of three or more newlines to exactly two,
// leaving at most one blank line between paragraphs. Blank lines that still
// carry spaces or tabs are not considered empty and survive.
func SqueezeBlankLines(s string) string {
	return blankRuns.ReplaceAllString(s, "\n\n")
}

// FinalNewline returns the text with exactly one trailing newline. Empty
// text stays empty rather than becoming a lone newline.
func FinalNewline(s string) string {
	if s == "" {
		return ""
	}
	return strings.TrimRight(s, "\n") + "\n"
}

// Apply runs the selected transforms in a fixed order: tab expansion, blank
// line squeezing, whitespace trimming, final newline. The order keeps the
// steps independent; in particular the final newline is added after trimming
// so it always survives.
func Apply(s string, opts Options) string {
	if opts.TabWidth > 0 {
		s = ExpandTabs(s, opts.TabWidth)
	}
	if opts.Squeeze {
		s = SqueezeBlankLines(s)
	}
	if opts.TrimSpace {
		s = strings.TrimSpace(s)
	}
	if opts.FinalNewline {
		s = FinalNewline(s)
	}
	return s
}
