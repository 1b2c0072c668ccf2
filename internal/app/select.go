// Chunk selection: sizing, anchor ordering, and reassembly under a unit budget.
package app

import (
	"fmt"
	"log/slog"
	"sort"
	"strings"

	"github.com/scasella/ClipDrop/internal/chunk"
	"github.com/scasella/ClipDrop/internal/counter"
)

// Strategy anchors the kept region when a unit limit trims the clip.
type Strategy int

const (
	// Beginning keeps chunks from the start of the clip
	Beginning Strategy = iota
	// Middle keeps chunks from the center outward
	Middle
	// End keeps chunks from the end of the clip
	End
)

// String returns the flag-value spelling of the strategy
func (s Strategy) String() string {
	switch s {
	case Beginning:
		return "beginning"
	case Middle:
		return "middle"
	case End:
		return "end"
	default:
		return "unknown"
	}
}

// ParseStrategy maps a --from flag value onto a Strategy.
func ParseStrategy(name string) (Strategy, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "beginning", "begin", "start":
		return Beginning, nil
	case "middle", "center":
		return Middle, nil
	case "end":
		return End, nil
	default:
		return Beginning, fmt.Errorf("unknown anchor %q (want beginning, middle, or end)", name)
	}
}

// Passage pairs chunk text with its original position in the clip.
type Passage struct {
	Text  string
	Index int
	Score float64 // relevance score; zero outside match mode
}

// chunk sizing per counting method; buffers past the threshold get
// proportionally larger chunks so huge clips do not shatter into hundreds
// of pieces
var chunkSizing = map[counter.Method]struct{ base, threshold int }{
	counter.Tokens: {base: 200, threshold: 2500},
	counter.Words:  {base: 150, threshold: 1800},
	counter.Chars:  {base: 700, threshold: 9500},
}

const largeBufferScale = 1.5

// Selector breaks a clip into chunks and reassembles the subset that fits
// the configured unit budget.
type Selector struct {
	counter   counter.Counter
	method    counter.Method
	maxUnits  int
	strategy  Strategy
	matchMode bool // gaps between non-adjacent chunks get a marker
}

// NewSelector creates a Selector counting with the given method. A maxUnits
// of zero or less means no budget.
func NewSelector(method counter.Method, maxUnits int, strategy Strategy) (*Selector, error) {
	c, err := counter.New(method)
	if err != nil {
		return nil, fmt.Errorf("failed to create counter: %w", err)
	}

	return &Selector{
		counter:  c,
		method:   method,
		maxUnits: maxUnits,
		strategy: strategy,
	}, nil
}

// SetMatchMode turns on relevance-style assembly: gap markers between
// non-adjacent chunks and score-based filtering when no budget is set.
func (s *Selector) SetMatchMode(enabled bool) {
	s.matchMode = enabled
}

// PrepareChunks breaks text into chunks sized for the counting method.
func (s *Selector) PrepareChunks(text string) []string {
	size := s.chunkSize(text)
	slog.Debug("Chunking clip", "method", s.counter.Name(), "chunkSize", size, "textLength", len(text))
	return chunk.Split(text, size)
}

func (s *Selector) chunkSize(text string) int {
	cfg, ok := chunkSizing[s.method]
	if !ok {
		cfg = chunkSizing[counter.Chars]
	}
	if len(text) > cfg.threshold {
		return int(float64(cfg.base) * largeBufferScale)
	}
	return cfg.base
}

// OrderByStrategy arranges chunks in the order the anchor strategy should
// consume them: document order for Beginning, reversed for End, and
// center-outward for Middle. Indices always refer to document positions.
func (s *Selector) OrderByStrategy(chunks []string) []Passage {
	passages := make([]Passage, len(chunks))
	for i, c := range chunks {
		passages[i] = Passage{Text: c, Index: i}
	}

	switch s.strategy {
	case End:
		for i, j := 0, len(passages)-1; i < j; i, j = i+1, j-1 {
			passages[i], passages[j] = passages[j], passages[i]
		}
		return passages
	case Middle:
		return middleOut(passages)
	default:
		return passages
	}
}

// middleOut starts at the center chunk and alternates outward, so the budget
// is spent on the core of the clip first.
func middleOut(passages []Passage) []Passage {
	if len(passages) < 2 {
		return passages
	}

	mid := len(passages) / 2
	out := make([]Passage, 0, len(passages))
	out = append(out, passages[mid])

	for left, right := mid-1, mid+1; len(out) < len(passages); {
		if right < len(passages) {
			out = append(out, passages[right])
			right++
		}
		if left >= 0 {
			out = append(out, passages[left])
			left--
		}
	}

	return out
}

// Select walks ordered passages, pulling each one in along with its context
// window, until the unit budget runs out. With no budget it keeps everything,
// except in match mode where only relevant passages survive. The result is
// reassembled in document order.
func (s *Selector) Select(ordered []Passage, all []string, before, after int) string {
	if len(ordered) == 0 {
		return ""
	}

	slog.Debug("Selecting chunks", "ordered", len(ordered), "maxUnits", s.maxUnits, "before", before, "after", after, "matchMode", s.matchMode)

	if s.maxUnits <= 0 {
		return s.selectUnbounded(ordered, all, before, after)
	}
	return s.selectBudgeted(ordered, all, before, after)
}

func (s *Selector) selectUnbounded(ordered []Passage, all []string, before, after int) string {
	if s.matchMode {
		ordered = topRelevant(ordered)
	}

	var selected []Passage
	added := make(map[int]bool)
	for _, p := range ordered {
		for _, cand := range contextWindow(p.Index, all, before, after, added) {
			selected = append(selected, cand)
			added[cand.Index] = true
		}
	}

	return s.assemble(selected)
}

func (s *Selector) selectBudgeted(ordered []Passage, all []string, before, after int) string {
	var selected []Passage
	added := make(map[int]bool)
	used := 0

	for _, p := range ordered {
		if used >= s.maxUnits {
			break
		}

		for _, cand := range contextWindow(p.Index, all, before, after, added) {
			n := s.counter.Count(cand.Text)
			if used+n <= s.maxUnits {
				selected = append(selected, cand)
				added[cand.Index] = true
				used += n
				slog.Debug("Selected chunk", "index", cand.Index, "units", n, "totalUnits", used)
				continue
			}

			// over budget; try a partial tail to land on the limit
			if partial := s.partialChunk(cand.Text, s.maxUnits-used); partial != "" {
				selected = append(selected, Passage{Text: partial, Index: cand.Index})
				used = s.maxUnits
				slog.Debug("Selected partial chunk", "index", cand.Index, "totalUnits", used)
			}
			break
		}
	}

	slog.Debug("Selection complete", "chunks", len(selected), "units", used)
	return s.assemble(selected)
}

// topRelevant keeps the highest-scoring passages when no budget bounds the
// selection: above-threshold scores only, capped at half the hits or five,
// whichever is smaller. When nothing clears the threshold the top two
// passages are kept anyway.
func topRelevant(ordered []Passage) []Passage {
	const minScore = 0.01

	var hits []Passage
	for _, p := range ordered {
		if p.Score > minScore {
			hits = append(hits, p)
		}
	}

	if len(hits) == 0 {
		if len(ordered) > 2 {
			return ordered[:2]
		}
		return ordered
	}

	keep := len(hits) / 2
	if keep == 0 {
		keep = 1
	}
	if keep > 5 {
		keep = 5
	}
	if len(hits) > keep {
		hits = hits[:keep]
	}

	slog.Debug("Relevance filter applied", "candidates", len(ordered), "kept", len(hits))
	return hits
}

// contextWindow returns the passage at target plus up to before preceding and
// after following neighbors, skipping positions already selected.
func contextWindow(target int, all []string, before, after int, added map[int]bool) []Passage {
	var window []Passage
	for i := target - before; i <= target+after; i++ {
		if i < 0 || i >= len(all) || added[i] {
			continue
		}
		window = append(window, Passage{Text: all[i], Index: i})
	}
	return window
}

// partialChunk cuts text down to at most budget units. Token budgets use the
// encoder's own truncation; other methods accumulate whole words.
func (s *Selector) partialChunk(text string, budget int) string {
	if budget <= 0 {
		return ""
	}
	if tc, ok := s.counter.(*counter.TokenCounter); ok {
		return tc.Truncate(text, budget)
	}
	return limitByUnits(text, budget, s.counter)
}

// assemble joins selected passages back into document order, dropping
// word-sequence overlap between neighbors and restoring the break each
// passage originally carried. In match mode, jumps between non-adjacent
// chunks are marked with a horizontal rule.
func (s *Selector) assemble(selected []Passage) string {
	if len(selected) == 0 {
		return ""
	}

	sort.Slice(selected, func(i, j int) bool {
		return selected[i].Index < selected[j].Index
	})

	slog.Debug("Assembling selected chunks", "count", len(selected))

	var b strings.Builder
	var prevText string
	prevIndex := -1

	for _, p := range selected {
		text := p.Text
		if b.Len() > 0 {
			text = trimOverlap(text, prevText)
		}
		if strings.TrimSpace(text) == "" {
			continue
		}

		if b.Len() > 0 {
			if s.matchMode && p.Index != prevIndex+1 {
				b.WriteString("\n\n---\n\n")
			} else {
				b.WriteString(separator(prevText))
			}
		}

		b.WriteString(strings.TrimRight(text, "\n"))
		prevText = p.Text
		prevIndex = p.Index
	}

	return b.String()
}

// separator restores the break the previous passage carried: explicit
// newlines are preserved, substantial sentences get a paragraph break, and
// everything else flows onto the next line.
func separator(prev string) string {
	if strings.HasSuffix(prev, "\n\n") {
		return "\n\n"
	}
	if strings.HasSuffix(prev, "\n") {
		return "\n"
	}

	trimmed := strings.TrimSpace(prev)
	if len(trimmed) > 40 && strings.ContainsAny(trimmed[len(trimmed)-1:], ".!?") {
		return "\n\n"
	}
	return "\n"
}

// trimOverlap drops a word-sequence prefix of text that repeats the tail of
// prev, checking up to 15 words.
func trimOverlap(text, prev string) string {
	words := strings.Fields(text)
	prevWords := strings.Fields(prev)
	if len(words) == 0 || len(prevWords) == 0 {
		return text
	}

	for n := min(len(words), len(prevWords), 15); n > 0; n-- {
		if wordsEqual(prevWords[len(prevWords)-n:], words[:n]) {
			if n == len(words) {
				return ""
			}
			return strings.Join(words[n:], " ")
		}
	}

	return text
}

func wordsEqual(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
