package counter

import (
	"fmt"
	"log/slog"
	"sync"

	"github.com/pkoukk/tiktoken-go"
)

// TokenCounter counts and truncates text in cl100k_base tokens, the unit
// clip limits use when the output feeds an LLM prompt.
type TokenCounter struct {
	mu       sync.RWMutex // guards encoding
	encoding *tiktoken.Tiktoken
}

// NewTokenCounter initializes the cl100k_base encoding. The first call may
// have to load the BPE table, so failure is reported here rather than
// surfacing later from Count.
func NewTokenCounter() (Counter, error) {
	encoding, err := tiktoken.GetEncoding("cl100k_base")
	if err != nil {
		return nil, fmt.Errorf("failed to initialize cl100k_base encoding: %w", err)
	}
	return &TokenCounter{encoding: encoding}, nil
}

// Count returns the number of tokens in text. Safe for concurrent use.
func (tc *TokenCounter) Count(text string) int {
	if text == "" {
		return 0
	}

	tc.mu.RLock()
	defer tc.mu.RUnlock()

	n := len(tc.encoding.Encode(text, nil, nil))
	slog.Debug("Token count calculated", "textLength", len(text), "tokenCount", n)
	return n
}

// Name returns the name of this counting method for logging and debugging.
func (tc *TokenCounter) Name() string {
	return "tokens (cl100k_base)"
}

// Truncate returns a prefix of text holding at most maxTokens tokens. Text
// already within the limit comes back unchanged. The cut re-decodes the kept
// tokens, so it can land mid-word where the encoder split one.
func (tc *TokenCounter) Truncate(text string, maxTokens int) string {
	if maxTokens <= 0 || text == "" {
		return ""
	}

	tc.mu.RLock()
	defer tc.mu.RUnlock()

	tokens := tc.encoding.Encode(text, nil, nil)
	if len(tokens) <= maxTokens {
		return text
	}

	partial := tc.encoding.Decode(tokens[:maxTokens])
	slog.Debug("Truncated by token budget", "originalTokens", len(tokens), "maxTokens", maxTokens)
	return partial
}
