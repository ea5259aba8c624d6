// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.yaml.in/yaml/v3"
)

var keywordsCmd = &cobra.Command{
	Use:   "keywords",
	Short: "Print the effective keyword sets as YAML",
	Long: `Keywords prints the keyword sets the extractor matches against. With
--keywords (or summarize.keywords in the config), categories present in the
file replace the built-in ones. The output is itself a valid keyword file.`,
	Args: cobra.NoArgs,
	PreRunE: func(cmd *cobra.Command, args []string) error {
		return bindFlags(cmd.Flags(), map[string]string{
			"summarize.keywords": "keywords",
		})
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		extractor, err := loadExtractor(cfg.Summarize.KeywordsFile)
		if err != nil {
			return err
		}

		data, err := yaml.Marshal(extractor.Keywords())
		if err != nil {
			return fmt.Errorf("marshaling keywords: %w", err)
		}
		_, err = cmd.OutOrStdout().Write(data)
		return err
	},
}

func init() {
	keywordsCmd.Flags().String("keywords", "", "YAML file of keyword sets replacing the defaults per category")

	rootCmd.AddCommand(keywordsCmd)
}
