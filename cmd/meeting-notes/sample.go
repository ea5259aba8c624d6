// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pdiddy/meeting-notes/internal/summarize"
)

var sampleCmd = &cobra.Command{
	Use:   "sample",
	Short: "Print the built-in sample transcript",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintln(cmd.OutOrStdout(), summarize.SampleTranscript)
	},
}

func init() {
	rootCmd.AddCommand(sampleCmd)
}
