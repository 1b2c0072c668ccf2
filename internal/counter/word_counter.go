package counter

import (
	"log/slog"

	"github.com/scasella/ClipDrop/internal/stats"
)

// WordCounter implements word counting using whitespace splitting.
type WordCounter struct{}

// NewWordCounter creates a new WordCounter instance.
func NewWordCounter() Counter {
	return &WordCounter{}
}

// Count returns the number of words in the given text. It delegates to the
// stats package so limits and reported statistics agree on what a word is.
func (wc *WordCounter) Count(text string) int {
	if text == "" {
		return 0
	}

	wordCount := stats.Words(text)

	slog.Debug("Word count calculated", "textLength", len(text), "wordCount", wordCount)
	return wordCount
}

// Name returns the name of this counting method for logging and debugging.
func (wc *WordCounter) Name() string {
	return "words"
}
