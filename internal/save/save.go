// Package save writes rendered clips to disk.
//
// Saving is deliberately conservative: parent directories are created on
// demand, a missing extension is filled in from the format, and an existing
// file is never overwritten unless the caller forces it.
package save

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/scasella/ClipDrop/internal/format"
)

// Write stores data at path. A path without an extension gets the format's
// own; parent directories are created as needed. Unless force is set, an
// existing file is an error rather than a casualty. The final path is
// returned so the caller can report where the clip landed.
func Write(path string, f format.Format, data []byte, force bool) (string, error) {
	if path == "" {
		return "", fmt.Errorf("no output path given")
	}

	if filepath.Ext(path) == "" {
		path += f.Meta().Ext
	}

	if dir := filepath.Dir(path); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return "", fmt.Errorf("failed to create directory %q: %w", dir, err)
		}
	}

	// O_EXCL makes the no-clobber check atomic
	flags := os.O_WRONLY | os.O_CREATE | os.O_TRUNC
	if !force {
		flags = os.O_WRONLY | os.O_CREATE | os.O_EXCL
	}

	fh, err := os.OpenFile(path, flags, 0o644)
	if err != nil {
		if errors.Is(err, os.ErrExist) {
			return "", fmt.Errorf("file %q already exists (use --force to overwrite)", path)
		}
		return "", fmt.Errorf("failed to create %q: %w", path, err)
	}

	if _, err := fh.Write(data); err != nil {
		fh.Close()
		return "", fmt.Errorf("failed to write %q: %w", path, err)
	}
	if err := fh.Close(); err != nil {
		return "", fmt.Errorf("failed to write %q: %w", path, err)
	}

	slog.Debug("Wrote output file", "path", path, "bytes", len(data))
	return path, nil
}
