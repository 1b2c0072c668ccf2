package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"

	"github.com/scasella/ClipDrop/internal/app"
	"github.com/scasella/ClipDrop/internal/counter"
	"github.com/scasella/ClipDrop/internal/edit"
	"github.com/scasella/ClipDrop/internal/format"
	"github.com/scasella/ClipDrop/internal/save"
	"github.com/scasella/ClipDrop/internal/source"
	"github.com/scasella/ClipDrop/internal/stats"

	"github.com/spf13/cobra"
)

// buildConfig assembles an app.Config from command flags and arguments.
func buildConfig(cmd *cobra.Command, args []string) (app.Config, error) {
	selector, _ := cmd.Flags().GetString("selector")
	fromHTML, _ := cmd.Flags().GetBool("html")
	includeAll, _ := cmd.Flags().GetBool("include-all")
	tokenLimit, _ := cmd.Flags().GetInt("limit-tokens")
	wordLimit, _ := cmd.Flags().GetInt("limit-words")
	charLimit, _ := cmd.Flags().GetInt("limit-chars")
	anchor, _ := cmd.Flags().GetString("from")
	match, _ := cmd.Flags().GetString("match")
	quiet, _ := cmd.Flags().GetBool("quiet")

	trimFlag, _ := cmd.Flags().GetBool("trim")
	squeeze, _ := cmd.Flags().GetBool("squeeze")
	expandTabs, _ := cmd.Flags().GetInt("expand-tabs")
	finalNewline, _ := cmd.Flags().GetBool("final-newline")

	// the limit flag picks both the budget and the counting method; matching
	// without a limit still needs a method for chunk sizing, and words keep
	// that path independent of the token encoder
	var method counter.Method
	var maxUnits int
	switch {
	case tokenLimit > 0:
		method = counter.Tokens
		maxUnits = tokenLimit
	case wordLimit > 0:
		method = counter.Words
		maxUnits = wordLimit
	case charLimit > 0:
		method = counter.Chars
		maxUnits = charLimit
	default:
		method = counter.Words
	}

	strategy, err := app.ParseStrategy(anchor)
	if err != nil {
		return app.Config{}, err
	}

	return app.Config{
		Sources:    args,
		FromHTML:   fromHTML,
		Selector:   selector,
		IncludeAll: includeAll,
		Edits: edit.Options{
			TrimSpace:    trimFlag,
			Squeeze:      squeeze,
			TabWidth:     expandTabs,
			FinalNewline: finalNewline,
		},
		Method:   method,
		MaxUnits: maxUnits,
		Strategy: strategy,
		Query:    match,
		Quiet:    quiet,
	}, nil
}

// setupLogger configures the default slog logger based on debug mode
func setupLogger(debug bool) {
	var level slog.Level
	if debug {
		level = slog.LevelDebug
	} else {
		level = slog.LevelError
	}

	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})
	slog.SetDefault(slog.New(handler))
}

// resolveFormat picks the output format: an explicit --format wins, then the
// --out extension, then plain text.
func resolveFormat(name, outPath string) (format.Format, error) {
	if name != "" {
		return format.Parse(name)
	}
	if outPath != "" && filepath.Ext(outPath) != "" {
		return format.FromPath(outPath)
	}
	return format.Text, nil
}

// deliver routes the rendered clip: to a file with --out, back onto the
// clipboard with --copy, otherwise to stdout.
func deliver(cmd *cobra.Command, text string) error {
	outPath, _ := cmd.Flags().GetString("out")
	formatName, _ := cmd.Flags().GetString("format")
	copyBack, _ := cmd.Flags().GetBool("copy")
	force, _ := cmd.Flags().GetBool("force")
	quiet, _ := cmd.Flags().GetBool("quiet")

	f, err := resolveFormat(formatName, outPath)
	if err != nil {
		return err
	}

	data, err := format.Render(f, text)
	if err != nil {
		return fmt.Errorf("failed to render %s: %w", f, err)
	}

	delivered := false
	if outPath != "" {
		saved, err := save.Write(outPath, f, data, force)
		if err != nil {
			return err
		}
		if !quiet {
			fmt.Fprintf(os.Stderr, "Saved %s (%s)\n", saved, stats.FormatSize(len(data)))
		}
		delivered = true
	}
	if copyBack {
		if err := source.WriteClipboard(string(data)); err != nil {
			return err
		}
		delivered = true
	}
	if !delivered {
		fmt.Print(string(data))
	}

	return nil
}

var rootCmd = &cobra.Command{
	Use:   "clipdrop [sources...]",
	Short: "Drop clipboard text into a file",
	Long: `ClipDrop reads text from the system clipboard (or files, or stdin), applies
light edits, and drops the result into a file, back onto the clipboard, or to
stdout.

Sources may be file paths, "-" for stdin, or "clip" for the clipboard.
With no sources, the clipboard is read.

Examples:
  clipdrop --out notes.md
  clipdrop --squeeze --trim --copy
  clipdrop --out snippet --format json --stats
  clipdrop notes.txt scratch.txt --limit-words 500 --out digest
  clipdrop --match "error handling" --out relevant.md
  cat report.html | clipdrop - --selector article --out report.md`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := buildConfig(cmd, args)
		if err != nil {
			return err
		}

		debug, _ := cmd.Flags().GetBool("debug")
		setupLogger(debug)

		// signal handling for graceful shutdown
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()

		result, err := app.Run(ctx, cfg)
		if err != nil {
			return err
		}

		if err := deliver(cmd, result); err != nil {
			return err
		}

		if showStats, _ := cmd.Flags().GetBool("stats"); showStats {
			r := stats.Measure(result)
			fmt.Fprintf(os.Stderr, "%d chars / %d words / %d lines / %s\n", r.Chars, r.Words, r.Lines, r.Size)
		}

		return nil
	},
}

func init() {
	// delivery
	rootCmd.Flags().StringP("out", "o", "", "Write the clip to this path (extension appended from the format)")
	rootCmd.Flags().StringP("format", "f", "", "Output format: text, markdown, log, html, csv, json, yaml, or xml")
	rootCmd.Flags().Bool("copy", false, "Write the result back onto the clipboard")
	rootCmd.Flags().Bool("force", false, "Overwrite the output file if it exists")
	rootCmd.Flags().Bool("stats", false, "Print a statistics summary to stderr")

	// light edits
	rootCmd.Flags().Bool("trim", false, "Trim leading and trailing whitespace")
	rootCmd.Flags().Bool("squeeze", false, "Collapse runs of blank lines down to one")
	rootCmd.Flags().Int("expand-tabs", 0, "Replace tabs with this many spaces")
	rootCmd.Flags().Bool("final-newline", false, "End the clip with exactly one newline")

	// HTML conversion
	rootCmd.Flags().Bool("html", false, "Treat the clip as HTML even when it doesn't look like it")
	rootCmd.Flags().StringP("selector", "s", "", "CSS selector for HTML conversion")
	rootCmd.Flags().BoolP("include-all", "i", false, "Convert whole documents and keep boilerplate")

	// trimming
	rootCmd.Flags().IntP("limit-tokens", "t", 0, "Limit output to this many tokens")
	rootCmd.Flags().IntP("limit-words", "w", 0, "Limit output to this many words")
	rootCmd.Flags().IntP("limit-chars", "c", 0, "Limit output to this many characters")
	rootCmd.MarkFlagsMutuallyExclusive("limit-tokens", "limit-words", "limit-chars")
	rootCmd.Flags().String("from", "beginning", "Where the kept region anchors: beginning, middle, or end")
	rootCmd.Flags().StringP("match", "m", "", "Keep only passages relevant to this query")

	rootCmd.PersistentFlags().BoolP("quiet", "q", false, "Suppress warnings and progress")
	rootCmd.PersistentFlags().BoolP("debug", "D", false, "Enable debug logging")
	_ = rootCmd.PersistentFlags().MarkHidden("debug")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
