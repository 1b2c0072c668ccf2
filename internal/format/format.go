// Package format defines the output formats a clip can be written as.
//
// Every format derives from the clip's plain text; the difference is in the
// wrapping. Text, Markdown, and Log emit the buffer byte for byte. HTML
// treats the buffer as Markdown and renders a minimal document. CSV
// re-encodes tab-separated lines, which is what spreadsheets put on the
// clipboard. JSON, YAML, and XML wrap the text together with its statistics
// in a small structured document, so a saved clip carries its own
// measurements.
//
// The format roster is a static table: formats are code, not configuration,
// and each one carries metadata (extension, aliases, MIME type) used by flag
// parsing, extension detection, and the formats listing.
package format

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"encoding/xml"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/yuin/goldmark"
	"gopkg.in/yaml.v3"

	"github.com/scasella/ClipDrop/internal/stats"
)

// Format identifies one supported output format.
type Format int

const (
	Text Format = iota
	Markdown
	Log
	HTML
	CSV
	JSON
	YAML
	XML
)

// ErrUnknownFormat is returned when a name, alias, or file extension does
// not correspond to any supported format.
var ErrUnknownFormat = errors.New("unknown output format")

// Info is the static metadata carried by each format.
type Info struct {
	Name        string
	Ext         string
	Aliases     []string
	MIME        string
	Description string
	Structured  bool // wraps the clip in a document instead of emitting it verbatim
}

var infos = [...]Info{
	Text: {
		Name:        "text",
		Ext:         ".txt",
		Aliases:     []string{"txt", "plain"},
		MIME:        "text/plain",
		Description: "the clip byte for byte",
	},
	Markdown: {
		Name:        "markdown",
		Ext:         ".md",
		Aliases:     []string{"md"},
		MIME:        "text/markdown",
		Description: "the clip byte for byte; plain text is valid Markdown",
	},
	Log: {
		Name:        "log",
		Ext:         ".log",
		MIME:        "text/plain",
		Description: "the clip byte for byte, under a log extension",
	},
	HTML: {
		Name:        "html",
		Ext:         ".html",
		Aliases:     []string{"htm"},
		MIME:        "text/html",
		Description: "the clip rendered as Markdown inside a minimal HTML page",
	},
	CSV: {
		Name:        "csv",
		Ext:         ".csv",
		MIME:        "text/csv",
		Description: "lines re-encoded as CSV records, splitting fields on tabs",
	},
	JSON: {
		Name:        "json",
		Ext:         ".json",
		MIME:        "application/json",
		Description: "a JSON document holding the clip and its statistics",
		Structured:  true,
	},
	YAML: {
		Name:        "yaml",
		Ext:         ".yaml",
		Aliases:     []string{"yml"},
		MIME:        "application/yaml",
		Description: "a YAML document holding the clip and its statistics",
		Structured:  true,
	},
	XML: {
		Name:        "xml",
		Ext:         ".xml",
		MIME:        "application/xml",
		Description: "an XML document holding the clip and its statistics",
		Structured:  true,
	},
}

// All returns every supported format in display order.
func All() []Format {
	return []Format{Text, Markdown, Log, HTML, CSV, JSON, YAML, XML}
}

// Meta returns the format's static metadata. Unknown values get a zero Info.
func (f Format) Meta() Info {
	if f < Text || int(f) >= len(infos) {
		return Info{}
	}
	return infos[f]
}

// String returns the canonical name of the format.
func (f Format) String() string {
	if meta := f.Meta(); meta.Name != "" {
		return meta.Name
	}
	return "unknown"
}

// Parse resolves a format name or alias, as given on the command line.
// Matching is case-insensitive and tolerates a leading dot, so "md", "MD",
// and ".md" all name Markdown.
func Parse(name string) (Format, error) {
	needle := strings.ToLower(strings.TrimSpace(name))
	needle = strings.TrimPrefix(needle, ".")

	for _, f := range All() {
		info := infos[f]
		if needle == info.Name {
			return f, nil
		}
		for _, alias := range info.Aliases {
			if needle == alias {
				return f, nil
			}
		}
	}

	return Text, fmt.Errorf("%w: %q", ErrUnknownFormat, name)
}

// FromPath detects a format from a file extension, so `clipdrop -o todo.md`
// writes Markdown without being told. Paths without a recognized extension
// return ErrUnknownFormat and leave the choice to the caller.
func FromPath(path string) (Format, error) {
	ext := strings.ToLower(filepath.Ext(path))
	if ext == "" {
		return Text, fmt.Errorf("%w: %q has no extension", ErrUnknownFormat, path)
	}

	for _, f := range All() {
		info := infos[f]
		if ext == info.Ext || ext == "."+info.Name {
			return f, nil
		}
		for _, alias := range info.Aliases {
			if ext == "."+alias {
				return f, nil
			}
		}
	}

	return Text, fmt.Errorf("%w: extension %q", ErrUnknownFormat, ext)
}

// Document is the structured payload emitted by the JSON, YAML, and XML
// renders: the clip text plus its measurements.
type Document struct {
	XMLName xml.Name     `json:"-" yaml:"-" xml:"clip"`
	Text    string       `json:"text" yaml:"text" xml:"text"`
	Stats   stats.Report `json:"stats" yaml:"stats" xml:"stats"`
}

// Render encodes text in the given format. Verbatim formats return the text
// unchanged; the others wrap or re-encode it.
func Render(f Format, text string) ([]byte, error) {
	switch f {
	case Text, Markdown, Log:
		return []byte(text), nil
	case HTML:
		return renderHTML(text)
	case CSV:
		return renderCSV(text)
	case JSON:
		return renderJSON(text)
	case YAML:
		return renderYAML(text)
	case XML:
		return renderXML(text)
	default:
		return nil, fmt.Errorf("%w: Format(%d)", ErrUnknownFormat, int(f))
	}
}

// renderHTML treats the clip as Markdown and wraps the rendered result in a
// minimal standalone page.
func renderHTML(text string) ([]byte, error) {
	var body bytes.Buffer
	if err := goldmark.Convert([]byte(text), &body); err != nil {
		return nil, fmt.Errorf("failed to render HTML: %w", err)
	}

	var out bytes.Buffer
	out.WriteString("<!DOCTYPE html>\n<html>\n<head>\n<meta charset=\"utf-8\">\n<title>clip</title>\n</head>\n<body>\n")
	out.Write(body.Bytes())
	out.WriteString("</body>\n</html>\n")
	return out.Bytes(), nil
}

// renderCSV writes one record per line, splitting fields on tabs. Cells
// pasted from a spreadsheet arrive exactly this way, so a tabular clip
// round-trips into a well-formed CSV file; ordinary prose becomes one
// quoted field per line.
func renderCSV(text string) ([]byte, error) {
	if text == "" {
		return []byte{}, nil
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	for _, line := range strings.Split(strings.TrimRight(text, "\n"), "\n") {
		if err := w.Write(strings.Split(line, "\t")); err != nil {
			return nil, fmt.Errorf("failed to encode CSV: %w", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("failed to encode CSV: %w", err)
	}

	return buf.Bytes(), nil
}

func renderJSON(text string) ([]byte, error) {
	doc := Document{Text: text, Stats: stats.Measure(text)}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	if err := enc.Encode(doc); err != nil {
		return nil, fmt.Errorf("failed to encode JSON: %w", err)
	}

	return buf.Bytes(), nil
}

func renderYAML(text string) ([]byte, error) {
	doc := Document{Text: text, Stats: stats.Measure(text)}

	data, err := yaml.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("failed to encode YAML: %w", err)
	}

	return data, nil
}

func renderXML(text string) ([]byte, error) {
	doc := Document{Text: text, Stats: stats.Measure(text)}

	data, err := xml.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to encode XML: %w", err)
	}

	out := make([]byte, 0, len(xml.Header)+len(data)+1)
	out = append(out, xml.Header...)
	out = append(out, data...)
	out = append(out, '\n')
	return out, nil
}
