package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/signal"

	"github.com/scasella/ClipDrop/internal/analyze"
	"github.com/scasella/ClipDrop/internal/app"
	"github.com/scasella/ClipDrop/internal/counter"
	"github.com/scasella/ClipDrop/internal/stats"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

// statsReport is the full measurement set for one clip.
type statsReport struct {
	stats.Report
	Sentences int                `json:"sentences"`
	Tokens    int                `json:"tokens,omitempty"`
	TopWords  []analyze.WordFreq `json:"top_words,omitempty"`
}

// buildStatsReport measures text and fills in the analysis extras. A token
// encoder that fails to initialize drops the token row with a warning
// instead of failing the whole report.
func buildStatsReport(text string, top int, quiet bool) (statsReport, error) {
	report := statsReport{Report: stats.Measure(text)}

	sentences, err := analyze.Sentences(text)
	if err != nil {
		return statsReport{}, err
	}
	report.Sentences = sentences

	if tc, err := counter.New(counter.Tokens); err == nil {
		report.Tokens = tc.Count(text)
	} else if !quiet {
		fmt.Fprintf(os.Stderr, "Warning: token counts unavailable: %v\n", err)
	}

	if top > 0 {
		report.TopWords = analyze.TopWords(text, top)
	}

	return report, nil
}

// printStatsTable writes the human-readable report to stdout.
func printStatsTable(report statsReport) {
	label := color.New(color.FgCyan).SprintfFunc()

	fmt.Printf("%s %d\n", label("%-10s", "chars"), report.Chars)
	fmt.Printf("%s %d\n", label("%-10s", "words"), report.Words)
	fmt.Printf("%s %d\n", label("%-10s", "lines"), report.Lines)
	fmt.Printf("%s %d\n", label("%-10s", "bytes"), report.Bytes)
	fmt.Printf("%s %s\n", label("%-10s", "size"), report.Size)
	fmt.Printf("%s %d\n", label("%-10s", "sentences"), report.Sentences)
	if report.Tokens > 0 {
		fmt.Printf("%s %d\n", label("%-10s", "tokens"), report.Tokens)
	}

	if len(report.TopWords) > 0 {
		fmt.Printf("\n%s\n", color.New(color.Bold).Sprint("top words"))
		for _, wf := range report.TopWords {
			fmt.Printf("  %-14s %d\n", wf.Word, wf.Count)
		}
	}
}

var statsCmd = &cobra.Command{
	Use:   "stats [sources...]",
	Short: "Show statistics for the clip",
	Long: `Reads the clip like the root command (clipboard by default) and reports
character, word, line, byte, sentence, and token counts, plus the most
frequent words with --top.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		quiet, _ := cmd.Flags().GetBool("quiet")
		debug, _ := cmd.Flags().GetBool("debug")
		asJSON, _ := cmd.Flags().GetBool("json")
		top, _ := cmd.Flags().GetInt("top")

		setupLogger(debug)

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()

		text, err := app.Run(ctx, app.Config{Sources: args, Quiet: quiet})
		if err != nil {
			return err
		}

		report, err := buildStatsReport(text, top, quiet)
		if err != nil {
			return err
		}

		if asJSON {
			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			return enc.Encode(report)
		}

		printStatsTable(report)
		return nil
	},
}

func init() {
	statsCmd.Flags().IntP("top", "n", 0, "Also list the N most frequent words")
	statsCmd.Flags().Bool("json", false, "Emit the report as JSON")
	rootCmd.AddCommand(statsCmd)
}
