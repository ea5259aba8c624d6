// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/pdiddy/meeting-notes/internal/extract"
	"github.com/pdiddy/meeting-notes/internal/summarize"
	"github.com/pdiddy/meeting-notes/pkg/types"
)

// bindFlags binds viper keys to the named flags of fs. Binding happens when
// a command runs so that commands sharing a key do not overwrite each
// other's bindings.
func bindFlags(fs *pflag.FlagSet, keys map[string]string) error {
	for key, name := range keys {
		f := fs.Lookup(name)
		if f == nil {
			return fmt.Errorf("binding %s: flag --%s not defined", key, name)
		}
		if err := viper.BindPFlag(key, f); err != nil {
			return fmt.Errorf("binding %s: %w", key, err)
		}
	}
	return nil
}

func logConfig() types.LogConfig {
	return types.LogConfig{
		Level: viper.GetString("log.level"),
		File:  viper.GetString("log.file"),
	}
}

// loadConfig assembles the effective configuration from viper and
// validates it.
func loadConfig() (types.Config, error) {
	cfg := types.Config{
		Summarize: types.SummarizeConfig{
			Length:       viper.GetInt("summarize.length"),
			Tone:         types.Tone(viper.GetString("summarize.tone")),
			ChunkSize:    viper.GetInt("summarize.chunk_size"),
			Workers:      viper.GetInt("summarize.workers"),
			KeywordsFile: viper.GetString("summarize.keywords"),
		},
		Output: types.OutputConfig{
			Dir:    viper.GetString("output.dir"),
			Format: types.OutputFormat(viper.GetString("output.format")),
			Export: viper.GetBool("output.export"),
		},
		Log: logConfig(),
	}
	// Validate treats a zero length as unset. Here zero can only come from
	// an explicit flag, env var or config value, so it is out of range.
	if viper.IsSet("summarize.length") && cfg.Summarize.Length == 0 {
		return cfg, fmt.Errorf("invalid configuration: %w", types.ValidateLength(0))
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// loadExtractor returns an extractor for the keyword file at path, or the
// default keywords when path is empty.
func loadExtractor(path string) (*extract.Extractor, error) {
	if path == "" {
		return extract.New(nil), nil
	}
	kw, err := extract.LoadKeywords(path)
	if err != nil {
		return nil, err
	}
	appLog.WithField("file", path).Debug("loaded keyword sets")
	return extract.New(kw), nil
}

// transcriptInput returns the transcript named by args: the built-in sample
// when --sample is set, stdin for no argument or "-", a file otherwise.
func transcriptInput(cmd *cobra.Command, args []string) (string, error) {
	useSample, _ := cmd.Flags().GetBool("sample")
	if useSample {
		return summarize.SampleTranscript, nil
	}
	path := ""
	if len(args) > 0 {
		path = args[0]
	}
	return summarize.ReadTranscript(path, cmd.InOrStdin())
}
