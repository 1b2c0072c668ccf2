// Package source acquires clip content for the clipdrop CLI tool.
//
// A source spec names where the text comes from: the system clipboard
// ("clip", the default), standard input ("-"), or a local file path. Every
// reader is size-capped so a runaway source cannot exhaust memory, and all
// acquired text has its line endings normalized before anything downstream
// sees it.
package source

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/atotto/clipboard"

	"github.com/scasella/ClipDrop/internal/edit"
)

// Clipboard is the source spec naming the system clipboard. It is the
// default source when none are given.
const Clipboard = "clip"

// MaxSourceBytes caps the in-memory buffer per source.
// TODO: make this configurable via command-line flag
const MaxSourceBytes = 50 * 1024 * 1024 // 50MB

// limitedReadCloser wraps an io.ReadCloser to enforce size limits
type limitedReadCloser struct {
	io.ReadCloser
	N      int64  // max bytes remaining
	source string // for error messages
}

func (l *limitedReadCloser) Read(p []byte) (n int, err error) {
	if l.N <= 0 {
		return 0, fmt.Errorf("content from %q exceeds size limit", l.source)
	}
	if int64(len(p)) > l.N {
		p = p[0:l.N]
	}
	n, err = l.ReadCloser.Read(p)
	l.N -= int64(n)
	return
}

// Open returns a size-capped reader for one source spec:
//   - "clip" reads the system clipboard
//   - "-" reads standard input
//   - everything else is treated as a local file path
//
// ctx is accepted for call-site consistency; acquisition is local and does
// not block on the network.
func Open(ctx context.Context, spec string) (io.ReadCloser, error) {
	switch spec {
	case Clipboard:
		return openClipboard()
	case "-":
		return &limitedReadCloser{
			ReadCloser: os.Stdin,
			N:          MaxSourceBytes,
			source:     "stdin",
		}, nil
	default:
		return openFile(spec)
	}
}

// Read acquires one source in full and returns its text with line endings
// normalized to \n.
func Read(ctx context.Context, spec string) (string, error) {
	rc, err := Open(ctx, spec)
	if err != nil {
		return "", err
	}
	defer rc.Close()

	data, err := io.ReadAll(rc)
	if err != nil {
		return "", fmt.Errorf("failed to read from %q: %w", spec, err)
	}

	return edit.NormalizeNewlines(string(data)), nil
}

// WriteClipboard replaces the system clipboard contents with text.
func WriteClipboard(text string) error {
	if clipboard.Unsupported {
		return fmt.Errorf("clipboard is not available on this platform")
	}
	if err := clipboard.WriteAll(text); err != nil {
		return fmt.Errorf("failed to write clipboard: %w", err)
	}
	return nil
}

// openClipboard reads the clipboard eagerly; a failed read is a reported
// failure, never a silent empty clip.
func openClipboard() (io.ReadCloser, error) {
	if clipboard.Unsupported {
		return nil, fmt.Errorf("clipboard is not available on this platform")
	}

	text, err := clipboard.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read clipboard: %w", err)
	}

	if len(text) > MaxSourceBytes {
		return nil, fmt.Errorf("clipboard content too large (%d bytes > %d bytes limit)",
			len(text), MaxSourceBytes)
	}

	return io.NopCloser(strings.NewReader(text)), nil
}

// openFile opens a local file for reading, checking its size up front.
func openFile(path string) (io.ReadCloser, error) {
	fileInfo, err := os.Stat(path)
	if os.IsNotExist(err) {
		return nil, fmt.Errorf("file %q does not exist", path)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to access file %q: %w", path, err)
	}

	if fileInfo.Size() > MaxSourceBytes {
		return nil, fmt.Errorf("file %q is too large (%d bytes > %d bytes limit)",
			path, fileInfo.Size(), MaxSourceBytes)
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open file %q: %w", path, err)
	}

	return file, nil
}
