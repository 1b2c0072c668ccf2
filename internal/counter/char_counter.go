package counter

import (
	"log/slog"

	"github.com/scasella/ClipDrop/internal/stats"
)

// CharCounter implements character counting in grapheme clusters, matching
// the character figure the stats command reports for the same text.
type CharCounter struct{}

// NewCharCounter creates a new CharCounter instance.
func NewCharCounter() Counter {
	return &CharCounter{}
}

// Count returns the number of user-perceived characters in the given text.
func (cc *CharCounter) Count(text string) int {
	if text == "" {
		return 0
	}

	charCount := stats.Chars(text)

	slog.Debug("Character count calculated", "textLength", len(text), "charCount", charCount)
	return charCount
}

// Name returns the name of this counting method for logging and debugging.
func (cc *CharCounter) Name() string {
	return "chars"
}
