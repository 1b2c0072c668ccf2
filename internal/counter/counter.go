// Package counter provides the unit-counting strategies behind size limits
// in the clipdrop CLI tool.
//
// A limit can be expressed in tokens, words, or characters, and each unit has
// a Counter implementation: token counting uses OpenAI's tiktoken with the
// cl100k_base encoding, word counting splits on whitespace, and character
// counting works in grapheme clusters so limits line up with the character
// figure reported by the stats command.
//
// Usage Example:
//
//	c, err := counter.New(counter.Words)
//	count := c.Count("Hello, world!")
//	// Returns 2
//
// All strategies are exposed through the Counter interface, so callers pick a
// unit once and stay agnostic about how it is measured.
package counter

// Counter defines the interface for different text counting strategies.
type Counter interface {
	// Count returns the number of units (tokens, words, or characters) in given text.
	Count(text string) int

	// Name returns a human-readable name for this counting method (for logging)
	Name() string
}

// Method represents the different available counting strategies.
type Method int

const (
	// Tokens uses tiktoken with cl100k_base encoding (default)
	Tokens Method = iota
	// Words counts words using whitespace splitting
	Words
	// Chars counts user-perceived characters (grapheme clusters)
	Chars
)

// String returns the string representation of the counting method.
func (m Method) String() string {
	switch m {
	case Tokens:
		return "tokens"
	case Words:
		return "words"
	case Chars:
		return "chars"
	default:
		return "unknown"
	}
}

// New creates a new Counter instance based on the specified method.
// This functions as a factory; it returns concrete Counter types,
// providing a single, simple entry point to get a counter instance.
// Returns an error if the counter cannot be initialized (e.g., tiktoken encoding fails).
func New(method Method) (Counter, error) {
	switch method {
	case Tokens:
		return NewTokenCounter()
	case Words:
		return NewWordCounter(), nil
	case Chars:
		return NewCharCounter(), nil
	default:
		return NewTokenCounter() // fallback to default
	}
}
