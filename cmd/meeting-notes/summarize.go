// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pdiddy/meeting-notes/internal/render"
	"github.com/pdiddy/meeting-notes/internal/summarize"
	"github.com/pdiddy/meeting-notes/pkg/types"
)

var summarizeCmd = &cobra.Command{
	Use:   "summarize [transcript]",
	Short: "Summarize a transcript into Markdown and PDF",
	Long: `Summarize reads a transcript from a file, from stdin (no argument or
"-"), or uses the built-in sample with --sample. It extracts key points and
action items chunk by chunk, merges them, and writes

  <output-dir>/meeting_summary_<tone>_<length>bullets.md
  <output-dir>/meeting_summary_<tone>_<length>bullets.pdf

according to --format. Use --stdout to print the Markdown instead, or --json
to print the summary with its stats.`,
	Args: cobra.MaximumNArgs(1),
	PreRunE: func(cmd *cobra.Command, args []string) error {
		return bindFlags(cmd.Flags(), map[string]string{
			"summarize.length":     "length",
			"summarize.tone":       "tone",
			"summarize.chunk_size": "chunk-size",
			"summarize.workers":    "workers",
			"summarize.keywords":   "keywords",
			"output.dir":           "output-dir",
			"output.format":        "format",
			"output.export":        "export",
		})
	},
	RunE: runSummarize,
}

func runSummarize(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	text, err := transcriptInput(cmd, args)
	if err != nil {
		return err
	}

	extractor, err := loadExtractor(cfg.Summarize.KeywordsFile)
	if err != nil {
		return err
	}

	s, err := summarize.Run(cmd.Context(), text, summarize.Options{
		Length:    cfg.Summarize.Length,
		Tone:      cfg.Summarize.Tone,
		ChunkSize: cfg.Summarize.ChunkSize,
		Workers:   cfg.Summarize.Workers,
		Extractor: extractor,
	}, appLog)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()

	jsonOutput, _ := cmd.Flags().GetBool("json")
	if jsonOutput {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(s)
	}

	toStdout, _ := cmd.Flags().GetBool("stdout")
	if toStdout {
		_, err := fmt.Fprint(out, render.Markdown(s.KeyPoints, s.ActionItems))
		return err
	}

	if _, err := render.WriteFiles(s, render.WriteOptions{
		Dir:    cfg.Output.Dir,
		Format: cfg.Output.Format,
		Export: cfg.Output.Export,
	}, out); err != nil {
		return err
	}
	printStats(cmd, s)
	return nil
}

func printStats(cmd *cobra.Command, s *types.Summary) {
	fmt.Fprintf(cmd.OutOrStdout(), "\n%d key points, %d action items, %d characters (%d chunks)\n",
		s.Stats.KeyPoints, s.Stats.ActionItems, s.Stats.TotalCharacters, s.Chunks)
}

func init() {
	summarizeCmd.Flags().Int("length", types.DefaultLength, fmt.Sprintf("target key points per chunk (%d-%d)", types.MinLength, types.MaxLength))
	summarizeCmd.Flags().String("tone", string(types.ToneNeutral), "summary tone: neutral, executive, friendly, or detailed")
	summarizeCmd.Flags().Int("chunk-size", types.DefaultChunkSize, "maximum characters per chunk")
	summarizeCmd.Flags().Int("workers", 1, "chunks extracted concurrently")
	summarizeCmd.Flags().String("keywords", "", "YAML file of keyword sets replacing the defaults per category")
	summarizeCmd.Flags().String("format", string(types.FormatBoth), "output format: markdown, pdf, or both")
	summarizeCmd.Flags().String("output-dir", types.DefaultOutputDir, "directory for written summaries")
	summarizeCmd.Flags().Bool("export", false, "also write the summary as YAML")
	summarizeCmd.Flags().Bool("stdout", false, "print the Markdown summary instead of writing files")
	summarizeCmd.Flags().Bool("json", false, "print the summary and stats as JSON instead of writing files")
	summarizeCmd.Flags().Bool("sample", false, "summarize the built-in sample transcript")

	rootCmd.AddCommand(summarizeCmd)
}
