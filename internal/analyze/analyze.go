// Package analyze derives lightweight lexical insight from clip text.
//
// Beyond raw counts, the stats view of a clip reports how many sentences it
// holds and which words dominate it. Word frequencies are grouped by Snowball
// stem so inflections of one word ("run", "runs", "running") count together,
// with the most common surface form standing in for the group. Sentence
// boundaries come from prose's statistical segmenter rather than naive
// punctuation splitting, so abbreviations and decimals do not inflate the
// count.
package analyze

import (
	"fmt"
	"regexp"
	"sort"
	"strings"

	"github.com/jdkato/prose/v2"
	"github.com/kljensen/snowball"
)

// tokenRegex is compiled once at package initialization for efficient tokenization
var tokenRegex = regexp.MustCompile(`[^a-zA-Z0-9_-]+`)

// WordFreq is one entry of a word frequency ranking. Word is the most common
// surface form of its stem group and Count the total across all forms.
type WordFreq struct {
	Word  string `json:"word" yaml:"word"`
	Count int    `json:"count" yaml:"count"`
}

// TopWords returns the n most frequent words in the text, counting stem
// groups rather than exact spellings. Ranking is by count descending with
// alphabetical order breaking ties, so results are deterministic.
func TopWords(text string, n int) []WordFreq {
	if n <= 0 {
		return nil
	}

	tokens := tokenize(text)
	if len(tokens) == 0 {
		return nil
	}

	type group struct {
		total    int
		surfaces map[string]int
		order    []string // surface forms in first-seen order
	}

	groups := make(map[string]*group)
	for _, tok := range tokens {
		stemmed, err := snowball.Stem(tok, "english", true)
		if err != nil {
			// if stemming fails, the token is its own group
			stemmed = tok
		}

		g := groups[stemmed]
		if g == nil {
			g = &group{surfaces: make(map[string]int)}
			groups[stemmed] = g
		}
		if _, seen := g.surfaces[tok]; !seen {
			g.order = append(g.order, tok)
		}
		g.surfaces[tok]++
		g.total++
	}

	freqs := make([]WordFreq, 0, len(groups))
	for _, g := range groups {
		// representative surface form: most common, first-seen breaks ties
		best := g.order[0]
		for _, s := range g.order {
			if g.surfaces[s] > g.surfaces[best] {
				best = s
			}
		}
		freqs = append(freqs, WordFreq{Word: best, Count: g.total})
	}

	sort.Slice(freqs, func(i, j int) bool {
		if freqs[i].Count != freqs[j].Count {
			return freqs[i].Count > freqs[j].Count
		}
		return freqs[i].Word < freqs[j].Word
	})

	if len(freqs) > n {
		freqs = freqs[:n]
	}
	return freqs
}

// Sentences returns the number of sentences in the text, using prose's
// statistical segmenter. Whitespace-only text holds zero sentences.
func Sentences(text string) (int, error) {
	if strings.TrimSpace(text) == "" {
		return 0, nil
	}

	doc, err := prose.NewDocument(text,
		prose.WithTagging(false),
		prose.WithExtraction(false))
	if err != nil {
		return 0, fmt.Errorf("segmenting sentences: %w", err)
	}

	return len(doc.Sentences()), nil
}

// tokenize breaks text into normalized tokens suitable for frequency
// analysis. It lowercases, splits on non-alphanumeric characters (keeping
// underscores and dashes), and drops words shorter than 3 characters, which
// rarely say anything about what a clip is about.
func tokenize(text string) []string {
	if text == "" {
		return []string{}
	}

	text = strings.ToLower(text)
	tokens := tokenRegex.Split(text, -1)

	var filtered []string
	for _, token := range tokens {
		token = strings.TrimSpace(token)
		if len(token) >= 3 {
			filtered = append(filtered, token)
		}
	}

	return filtered
}
