package main

import (
	"fmt"
	"strings"

	"github.com/scasella/ClipDrop/internal/format"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var formatsCmd = &cobra.Command{
	Use:   "formats",
	Short: "List the supported output formats",
	Run: func(cmd *cobra.Command, args []string) {
		name := color.New(color.FgCyan).SprintfFunc()
		for _, f := range format.All() {
			meta := f.Meta()
			aliases := ""
			if len(meta.Aliases) > 0 {
				aliases = " (also: " + strings.Join(meta.Aliases, ", ") + ")"
			}
			fmt.Printf("%s %-6s %-18s %s%s\n",
				name("%-9s", meta.Name), meta.Ext, meta.MIME, meta.Description, aliases)
		}
	},
}

func init() {
	rootCmd.AddCommand(formatsCmd)
}
