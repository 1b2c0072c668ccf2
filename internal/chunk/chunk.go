// Package chunk splits clip text into pieces that respect semantic
// boundaries.
//
// Size limits and relevance matching both need the clip broken into candidate
// passages. Splitting runs in waves over a ladder of boundaries, largest
// semantic unit first:
//  1. Paragraph boundaries (double newlines)
//  2. Sentence boundaries (period, question mark, exclamation mark)
//  3. Line boundaries (single newlines)
//  4. Word boundaries, as a last resort for oversized content
//
// Usage Example:
//
//	chunks := chunk.Split(content, 250)
//	// Produces chunks of at most 250 bytes each
//
// Pieces shorter than a quarter of the limit are merged with a neighbor so
// that fragments like initials do not survive as chunks of their own.
package chunk

import (
	"log/slog"
	"strings"
)

// boundary is one rung of the splitting ladder. delim is what we split on;
// suffix is reattached to every piece but the last so the text reads the same
// once chunks are joined back together.
type boundary struct {
	name   string
	delim  string
	suffix string
}

// boundaries are ordered from largest semantic unit to smallest; each wave
// applies one to every chunk still over the limit. Plain substring delimiters
// keep this cheap; no regex.
var boundaries = []boundary{
	{name: "paragraph", delim: "\n\n", suffix: "\n\n"},
	{name: "sentence", delim: ". ", suffix: "."},
	{name: "question", delim: "? ", suffix: "?"},
	{name: "exclamation", delim: "! ", suffix: "!"},
	{name: "line", delim: "\n", suffix: "\n"},
	{name: "word", delim: " ", suffix: ""},
}

// Split breaks text into chunks of at most maxChunkSize bytes, working down
// the boundary ladder in waves: every chunk still over the limit after one
// wave is handed to the next, finer boundary. A piece that no boundary can
// break (a single huge word) is returned oversized rather than dropped.
func Split(text string, maxChunkSize int) []string {
	slog.Debug("Split called", "textLength", len(text), "maxChunkSize", maxChunkSize)

	if maxChunkSize <= 0 {
		slog.Debug("Invalid maxChunkSize", "maxChunkSize", maxChunkSize)
		return []string{}
	}

	// whitespace-only input yields no chunks
	if strings.TrimSpace(text) == "" {
		return []string{}
	}

	// trim spaces and tabs only, preserving intentional line breaks
	text = trimEdges(text)

	if len(text) <= maxChunkSize {
		slog.Debug("Text fits in single chunk", "textLength", len(text))
		return []string{text}
	}

	var done []string
	pending := []string{text} // start with the full text

	for _, b := range boundaries {
		if len(pending) == 0 {
			break
		}

		slog.Debug("Applying boundary", "boundary", b.name, "pending", len(pending))

		var next []string
		for _, c := range pending {
			if len(c) <= maxChunkSize {
				done = append(done, c)
				continue
			}

			// still oversized; split at this boundary and re-queue
			for _, sub := range splitAt(c, b, maxChunkSize) {
				if trimmed := trimEdges(sub); trimmed != "" {
					next = append(next, trimmed)
				}
			}
		}

		pending = next
	}

	// whatever survived the word wave is kept even when oversized
	for _, c := range pending {
		if trimmed := trimEdges(c); trimmed != "" {
			done = append(done, trimmed)
		}
	}

	slog.Debug("Split completed", "chunkCount", len(done))
	return done
}

// splitAt splits text at one boundary and packs the pieces back up toward
// the size limit.
func splitAt(text string, b boundary, maxChunkSize int) []string {
	if !strings.Contains(text, b.delim) {
		return []string{text}
	}

	parts := strings.Split(text, b.delim)
	slog.Debug("Split by delimiter", "boundary", b.name, "parts", len(parts))

	// reattach the boundary suffix to every piece but the last, so joining
	// the chunks reproduces readable text
	var segments []string
	for i, part := range parts {
		trimmed := trimEdges(part)
		if trimmed == "" {
			continue
		}
		if i < len(parts)-1 {
			trimmed += b.suffix
		}
		segments = append(segments, trimmed)
	}

	if len(segments) == 0 {
		return []string{}
	}

	// words pack upward into full chunks; larger units only merge when a
	// piece falls below the minimum, preventing over-splitting
	if b.name == "word" {
		return packWords(segments, maxChunkSize)
	}
	return mergeShort(segments, maxChunkSize, minChunkSize(maxChunkSize))
}

// minChunkSize is the floor below which a chunk is considered a fragment:
// a quarter of the limit, never less than 3 bytes.
func minChunkSize(maxChunkSize int) int {
	min := int(float64(maxChunkSize) * 0.25)
	if min < 3 {
		min = 3
	}
	return min
}

// packWords greedily combines word segments into chunks near the size limit.
func packWords(segments []string, maxChunkSize int) []string {
	var result []string
	var current strings.Builder

	for _, segment := range segments {
		needed := len(segment)
		if current.Len() > 0 {
			needed++ // space separator
		}

		if current.Len() > 0 && current.Len()+needed > maxChunkSize {
			if c := trimEdges(current.String()); c != "" {
				result = append(result, c)
			}
			current.Reset()
		}

		if current.Len() > 0 {
			current.WriteString(" ")
		}
		current.WriteString(segment)
	}

	if c := trimEdges(current.String()); c != "" {
		result = append(result, c)
	}

	return result
}

// mergeShort merges segments below minSize with a neighbor so fragments do
// not survive as standalone chunks. Forward merge is tried first, then a
// merge into the previous result; a fragment that fits nowhere is kept.
func mergeShort(segments []string, maxChunkSize, minSize int) []string {
	if len(segments) <= 1 {
		return segments
	}

	var result []string
	i := 0

	for i < len(segments) {
		current := segments[i]

		if len(current) >= minSize {
			result = append(result, current)
			i++
			continue
		}

		// try merging into the following segment
		if i+1 < len(segments) {
			combined := current + " " + segments[i+1]
			if len(combined) <= maxChunkSize {
				segments[i+1] = combined
				i++
				continue
			}
		}

		// try merging into the previous result
		if len(result) > 0 {
			combined := result[len(result)-1] + " " + current
			if len(combined) <= maxChunkSize {
				result[len(result)-1] = combined
				i++
				continue
			}
		}

		result = append(result, current)
		i++
	}

	return result
}

// trimEdges removes leading and trailing spaces and tabs but preserves line
// breaks, so intentional formatting like verse stays intact.
func trimEdges(s string) string {
	return strings.Trim(s, " \t")
}
