// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pdiddy/meeting-notes/internal/chunk"
	"github.com/pdiddy/meeting-notes/pkg/types"
)

var chunkCmd = &cobra.Command{
	Use:   "chunk [transcript]",
	Short: "Show how a transcript is split into chunks",
	Long: `Chunk splits a transcript the same way summarize does and prints each
chunk's index, character offsets, and length. Chunks are cut purely by
position, so a cut may fall inside a word or sentence.`,
	Args: cobra.MaximumNArgs(1),
	PreRunE: func(cmd *cobra.Command, args []string) error {
		return bindFlags(cmd.Flags(), map[string]string{
			"summarize.chunk_size": "chunk-size",
		})
	},
	RunE: runChunk,
}

func runChunk(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	text, err := transcriptInput(cmd, args)
	if err != nil {
		return err
	}

	// Offsets refer to the trimmed text, as in summarize.
	spans := chunk.Spans(strings.TrimSpace(text), cfg.Summarize.ChunkSize)
	out := cmd.OutOrStdout()

	jsonOutput, _ := cmd.Flags().GetBool("json")
	if jsonOutput {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(spans)
	}

	fmt.Fprintf(out, "%-5s  %-8s  %-8s  %-6s  %s\n", "Index", "Start", "End", "Length", "Preview")
	fmt.Fprintln(out, strings.Repeat("-", 72))
	for _, c := range spans {
		fmt.Fprintf(out, "%-5d  %-8d  %-8d  %-6d  %s\n", c.Index, c.Start, c.End, c.Len(), preview(c.Text, 36))
	}
	fmt.Fprintf(out, "\n%d chunks\n", len(spans))
	return nil
}

// preview returns the first n characters of s on one line.
func preview(s string, n int) string {
	s = strings.Join(strings.Fields(s), " ")
	r := []rune(s)
	if len(r) > n {
		return string(r[:n-3]) + "..."
	}
	return s
}

func init() {
	chunkCmd.Flags().Int("chunk-size", types.DefaultChunkSize, "maximum characters per chunk")
	chunkCmd.Flags().Bool("json", false, "print chunks as JSON")
	chunkCmd.Flags().Bool("sample", false, "use the built-in sample transcript")

	rootCmd.AddCommand(chunkCmd)
}
