// Package convert turns HTML clips into Markdown.
//
// Text copied out of a browser often arrives as an HTML fragment or a whole
// document. LooksLikeHTML sniffs for that case, and ToMarkdown rewrites the
// markup as Markdown, by default extracting just the readable article content
// and leaving page chrome behind.
package convert

import (
	"fmt"
	"io"
	"net/url"
	"strings"

	md "github.com/JohannesKaufmann/html-to-markdown"
	"github.com/PuerkitoBio/goquery"
	readability "github.com/go-shiori/go-readability"
)

// htmlMarkers are lowercase fragments that only show up in real markup.
// Matching is done against the head of the clip.
var htmlMarkers = []string{
	"<!doctype html", "<html", "<head", "<body",
	"<div", "<span", "<p>", "<p ", "<br", "<a href",
	"<table", "<ul", "<ol", "<li", "<h1", "<h2", "<h3",
	"<article", "<section", "<img",
}

// LooksLikeHTML reports whether a clip appears to be HTML rather than plain
// text. It is a sniff, not a parse: a few angle brackets in prose or a
// Markdown autolink do not trigger it, a recognizable tag near the start
// does.
func LooksLikeHTML(s string) bool {
	if !strings.Contains(s, "<") || !strings.Contains(s, ">") {
		return false
	}

	probe := s
	if len(probe) > 1024 {
		probe = probe[:1024]
	}
	probe = strings.ToLower(probe)

	for _, marker := range htmlMarkers {
		if strings.Contains(probe, marker) {
			return true
		}
	}
	return false
}

// ToMarkdown converts HTML content to Markdown.
//
// With a CSS selector, only matching elements are converted. With includeAll,
// the whole document is converted without filtering. Otherwise readability
// extraction pulls out the main content first, so navigation, sidebars, and
// footers copied along with an article do not survive into the output.
func ToMarkdown(content io.Reader, selector string, includeAll bool) (string, error) {
	// an explicit selector overrides the includeAll setting
	if selector != "" {
		return selectorMarkdown(content, selector)
	}

	if includeAll {
		return wholeMarkdown(content)
	}

	return readableMarkdown(content)
}

// readableMarkdown extracts the main article content with go-readability
// and converts it.
func readableMarkdown(content io.Reader) (string, error) {
	// clips carry no URL context, so readability gets an empty base URL
	article, err := readability.FromReader(content, &url.URL{})
	if err != nil {
		return "", fmt.Errorf("failed to extract main content: %w", err)
	}

	return renderMarkdown(article.Content)
}

// selectorMarkdown converts only the elements matching a CSS selector.
func selectorMarkdown(content io.Reader, selector string) (string, error) {
	doc, err := goquery.NewDocumentFromReader(content)
	if err != nil {
		return "", fmt.Errorf("failed to parse HTML: %w", err)
	}

	selection := doc.Find(selector)
	if selection.Length() == 0 {
		return "", fmt.Errorf("no elements found matching selector: %s", selector)
	}

	// re-wrap each match in its own tag so structure survives conversion
	var htmlParts []string
	selection.Each(func(i int, s *goquery.Selection) {
		html, err := s.Html()
		if err == nil {
			tagName := goquery.NodeName(s)
			htmlParts = append(htmlParts, fmt.Sprintf("<%s>%s</%s>", tagName, html, tagName))
		}
	})

	if len(htmlParts) == 0 {
		return "", fmt.Errorf("failed to extract HTML from selection")
	}

	return renderMarkdown(strings.Join(htmlParts, "\n"))
}

// wholeMarkdown converts the entire document without content filtering.
func wholeMarkdown(content io.Reader) (string, error) {
	htmlBytes, err := io.ReadAll(content)
	if err != nil {
		return "", fmt.Errorf("failed to read HTML content: %w", err)
	}

	return renderMarkdown(string(htmlBytes))
}

// renderMarkdown converts an HTML string to clean Markdown.
func renderMarkdown(htmlString string) (string, error) {
	converter := md.NewConverter("", true, nil)

	// tidy up excessive whitespace left behind by stripped elements
	converter.Use(md.Plugin(func(c *md.Converter) []md.Rule {
		return []md.Rule{
			{
				Filter: []string{"*"},
				Replacement: func(content string, selec *goquery.Selection, opt *md.Options) *string {
					cleaned := strings.TrimSpace(content)
					result := strings.ReplaceAll(cleaned, "\n\n\n", "\n\n")
					return &result
				},
			},
		}
	}))

	markdown, err := converter.ConvertString(htmlString)
	if err != nil {
		return "", fmt.Errorf("failed to convert HTML to Markdown: %w", err)
	}

	cleaned := strings.TrimSpace(markdown)
	cleaned = strings.ReplaceAll(cleaned, "\n\n\n", "\n\n")

	return cleaned, nil
}
