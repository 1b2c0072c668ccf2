// Package classify flags chunks of clipboard text that look like boilerplate
// rather than content.
//
// Text copied from a browser routinely drags page furniture along with it:
// cookie banners, navigation menus, share buttons, subscribe prompts, legal
// footers. The classifier scores each chunk by the density of such boilerplate
// vocabulary and applies a position-aware threshold, since furniture clusters
// at the start and end of a selection while the middle is usually the content
// the user actually wanted.
package classify

import (
	"math"
	"regexp"
	"strings"

	"github.com/kljensen/snowball"
)

// boilerplateSeeds lists surface words that mark page furniture in copied
// text. They are stemmed once at init so membership checks agree with the
// stemmer no matter which inflection shows up.
var boilerplateSeeds = []string{
	// consent banners and popups
	"accept", "banner", "consent", "cookie", "dismiss", "notification",
	"preferences",

	// navigation and page chrome
	"bookmark", "breadcrumb", "click", "footer", "header", "homepage",
	"javascript", "menu", "navigation", "search", "sidebar", "skip",
	"trending",

	// engagement prompts
	"comment", "follow", "newsletter", "share", "signup", "subscribe",
	"subscription",

	// accounts
	"login", "password", "profile", "register", "username",

	// legal footers
	"copyright", "disclaimer", "policy", "privacy", "reserved", "rights",
	"terms",

	// ads and social
	"advertisement", "facebook", "instagram", "sponsored", "twitter",
}

var boilerplateStems = func() map[string]struct{} {
	set := make(map[string]struct{}, len(boilerplateSeeds))
	for _, w := range boilerplateSeeds {
		stemmed, err := snowball.Stem(w, "english", true)
		if err != nil {
			stemmed = w
		}
		set[stemmed] = struct{}{}
	}
	return set
}()

// Classifier identifies boilerplate chunks using stemmed stopword density
// and position-based thresholding.
type Classifier struct {
	// tokenRegex extracts word tokens from text
	tokenRegex *regexp.Regexp
}

// NewClassifier creates and initializes a new Classifier instance.
func NewClassifier() *Classifier {
	return &Classifier{
		tokenRegex: regexp.MustCompile(`\b[a-zA-Z]+\b`),
	}
}

// IsExtraneous reports whether a chunk should be treated as boilerplate. It
// measures the ratio of boilerplate stems to total tokens and compares it
// against a threshold that is stricter near the edges of the clip, where
// page furniture usually lands.
//
// chunkIndex is the zero-based position of the chunk and totalChunks the
// number of chunks in the clip.
func (c *Classifier) IsExtraneous(chunkText string, chunkIndex int, totalChunks int) bool {
	// invalid positions are never classified as extraneous
	if totalChunks <= 0 || chunkIndex < 0 || chunkIndex >= totalChunks {
		return false
	}

	tokens := c.tokenRegex.FindAllString(strings.ToLower(chunkText), -1)
	if len(tokens) == 0 {
		// chunks with no words at all carry no content
		return true
	}

	boilerplateCount := 0
	for _, token := range tokens {
		stemmed, err := snowball.Stem(token, "english", true)
		if err != nil {
			// if stemming fails, use the original token
			stemmed = token
		}

		if _, hit := boilerplateStems[stemmed]; hit {
			boilerplateCount++
		}
	}

	ratio := float64(boilerplateCount) / float64(len(tokens))
	threshold := c.threshold(chunkIndex, totalChunks)

	return ratio > threshold
}

// threshold computes a position-adjusted cutoff. Chunks at the beginning and
// end of the clip get a low threshold (furniture territory) while chunks in
// the middle need a much higher boilerplate density before they are dropped.
func (c *Classifier) threshold(chunkIndex int, totalChunks int) float64 {
	if totalChunks <= 0 || chunkIndex < 0 || chunkIndex >= totalChunks {
		return 0.33 // moderate default for out-of-range input
	}
	if totalChunks <= 3 {
		// small clips get a high bar to avoid false positives
		return 0.5
	}

	// relative position 0.0 to 1.0
	relative := float64(chunkIndex) / float64(totalChunks-1)

	// inverted V: 0 at the edges, 1 in the middle
	positionFactor := 1.0 - math.Abs(2.0*relative-1.0)

	minThreshold := 0.1  // edges
	maxThreshold := 0.33 // middle

	return minThreshold + (maxThreshold-minThreshold)*positionFactor
}
