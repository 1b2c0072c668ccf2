// Package app wires the clipdrop pipeline: acquire sources, convert HTML
// clips to Markdown, apply light edits, and trim the result to a unit budget
// or a relevance query. CLI concerns stay in cmd.
package app

import (
	"context"
	"fmt"
	"os"
	"sort"
	"strings"
	"unicode"

	"github.com/chriscorrea/bm25md"
	"github.com/scasella/ClipDrop/internal/classify"
	"github.com/scasella/ClipDrop/internal/convert"
	"github.com/scasella/ClipDrop/internal/counter"
	"github.com/scasella/ClipDrop/internal/edit"
	"github.com/scasella/ClipDrop/internal/progress"
	"github.com/scasella/ClipDrop/internal/source"
	"golang.org/x/term"
)

// Config holds everything one clipdrop invocation needs.
type Config struct {
	Sources    []string // file paths, "-" for stdin, "clip" for the clipboard; empty means clipboard
	FromHTML   bool     // force HTML conversion even when the clip doesn't look like HTML
	Selector   string   // CSS selector for HTML conversion; implies conversion
	IncludeAll bool     // convert whole documents and keep boilerplate chunks
	Edits      edit.Options
	Method     counter.Method
	MaxUnits   int // unit budget for trimming; 0 means no limit
	Strategy   Strategy
	Query      string // relevance query; empty means no matching
	Quiet      bool   // suppress warnings and progress
}

// neighbor context kept around each matched chunk, in document order
const (
	matchContextBefore = 1
	matchContextAfter  = 2
)

// Run executes one clipdrop pass.
//
// Pipeline:
//  1. acquire and combine all sources, converting HTML clips to Markdown
//  2. apply the light edits
//  3. trim to the unit budget or the match query
//
// ctx allows cancellation of acquisition and ranking.
func Run(ctx context.Context, cfg Config) (string, error) {
	text, converted, err := combineSources(ctx, cfg)
	if err != nil {
		return "", err
	}

	text = edit.Apply(text, cfg.Edits)

	return trim(ctx, text, cfg, converted)
}

// combineSources acquires every configured source and joins their text with
// blank lines, in argument order. A source that fails is a warning, not an
// error; only coming up completely empty fails the run. The second return
// reports whether any source went through HTML conversion.
func combineSources(ctx context.Context, cfg Config) (string, bool, error) {
	sources := cfg.Sources
	if len(sources) == 0 {
		sources = []string{source.Clipboard}
	}

	var combined strings.Builder
	converted := false

	for _, spec := range sources {
		text, conv, err := processSource(ctx, spec, cfg)
		if err != nil {
			if !cfg.Quiet {
				fmt.Fprintf(os.Stderr, "Warning: failed to process source %q: %v\n", spec, err)
			}
			continue
		}

		if combined.Len() > 0 {
			combined.WriteString("\n\n")
		}
		combined.WriteString(text)
		converted = converted || conv
	}

	if combined.Len() == 0 {
		return "", false, fmt.Errorf("no content acquired from any source")
	}

	return combined.String(), converted, nil
}

// processSource reads one source and converts it to Markdown when it carries
// HTML. Plain text passes through untouched.
func processSource(ctx context.Context, spec string, cfg Config) (string, bool, error) {
	text, err := source.Read(ctx, spec)
	if err != nil {
		return "", false, err
	}

	forced := cfg.FromHTML || cfg.Selector != ""
	if !forced && !convert.LooksLikeHTML(text) {
		if strings.TrimSpace(text) == "" {
			return "", false, fmt.Errorf("source is empty")
		}
		return text, false, nil
	}

	markdown, err := convert.ToMarkdown(strings.NewReader(text), cfg.Selector, cfg.IncludeAll)
	if err != nil {
		return "", false, fmt.Errorf("failed to convert: %w", err)
	}
	if strings.TrimSpace(markdown) == "" {
		return "", false, fmt.Errorf("no content after conversion")
	}

	return markdown, true, nil
}

// trim applies the unit budget and the match query. converted enables
// boilerplate filtering on the chunked paths; classification is tuned for
// web clutter and stays away from plain-text clips.
func trim(ctx context.Context, text string, cfg Config, converted bool) (string, error) {
	query := strings.TrimSpace(cfg.Query)

	if query == "" {
		if cfg.MaxUnits <= 0 {
			return text, nil
		}

		// a beginning anchor needs no chunking, just a word-boundary cut
		if cfg.Strategy == Beginning {
			c, err := counter.New(cfg.Method)
			if err != nil {
				return "", fmt.Errorf("failed to create counter: %w", err)
			}
			return limitByUnits(text, cfg.MaxUnits, c), nil
		}
	}

	sel, err := NewSelector(cfg.Method, cfg.MaxUnits, cfg.Strategy)
	if err != nil {
		return "", fmt.Errorf("failed to create selector: %w", err)
	}

	chunks := sel.PrepareChunks(text)
	if converted && !cfg.IncludeAll {
		chunks = dropExtraneous(chunks)
	}
	if len(chunks) == 0 {
		return "", nil
	}

	if query == "" {
		return sel.Select(sel.OrderByStrategy(chunks), chunks, 0, 0), nil
	}

	sel.SetMatchMode(true)
	ranked := rankPassages(ctx, chunks, query, cfg.Quiet)
	return sel.Select(ranked, chunks, matchContextBefore, matchContextAfter), nil
}

// dropExtraneous removes chunks the classifier flags as boilerplate, like
// navigation lists and footer clutter surviving HTML conversion.
func dropExtraneous(chunks []string) []string {
	classifier := classify.NewClassifier()
	kept := make([]string, 0, len(chunks))
	for i, c := range chunks {
		if !classifier.IsExtraneous(c, i, len(chunks)) {
			kept = append(kept, c)
		}
	}
	return kept
}

// rankPassages scores chunks against the query with field-weighted BM25 and
// returns them highest first, document order breaking ties.
func rankPassages(ctx context.Context, chunks []string, query string, quiet bool) []Passage {
	if !quiet && term.IsTerminal(int(os.Stderr.Fd())) {
		sp := progress.New(ctx, os.Stderr, "Matching passages...")
		sp.Start()
		defer sp.Stop()
	}

	corpus := bm25md.NewCorpus()
	parser := bm25md.NewMarkdownFieldParser()
	for i, text := range chunks {
		fields := parser.ParseDocument(text)
		corpus.AddDocument(bm25md.Document{
			ID:       i,
			Fields:   fields,
			Original: text,
		})
	}

	ranked := make([]Passage, len(chunks))
	for i, text := range chunks {
		ranked[i] = Passage{Text: text, Index: i, Score: corpus.Score(query, i)}
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Score > ranked[j].Score
	})

	return ranked
}

// limitByUnits cuts content on word boundaries so the result counts at most
// maxUnits under c. Interior whitespace is preserved as it was.
func limitByUnits(content string, maxUnits int, c counter.Counter) string {
	if maxUnits <= 0 {
		return content
	}

	var b strings.Builder
	used := 0

	for _, seg := range splitRetainingSpace(content) {
		n := c.Count(seg)
		if used+n > maxUnits {
			break
		}
		b.WriteString(seg)
		used += n
		if used >= maxUnits {
			break
		}
	}

	return strings.TrimRightFunc(b.String(), unicode.IsSpace)
}

// splitRetainingSpace splits content into alternating word and whitespace
// segments, so a truncation can be rebuilt without disturbing the original
// formatting.
func splitRetainingSpace(content string) []string {
	if content == "" {
		return nil
	}

	var segs []string
	start := 0
	var inSpace bool

	for i, r := range content {
		isSpace := unicode.IsSpace(r)
		if i == 0 {
			inSpace = isSpace
			continue
		}
		if isSpace != inSpace {
			segs = append(segs, content[start:i])
			start = i
			inSpace = isSpace
		}
	}

	return append(segs, content[start:])
}
