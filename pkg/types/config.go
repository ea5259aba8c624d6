// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import (
	"fmt"
	"strings"
)

const (
	// DefaultLength is the default number of key points requested.
	DefaultLength = 10
	// MinLength and MaxLength bound the requested number of key points.
	MinLength = 5
	MaxLength = 20
	// DefaultChunkSize is the default chunk size in characters.
	DefaultChunkSize = 3000
	// DefaultOutputDir is where output files are written when unset.
	DefaultOutputDir = "output"
)

// OutputFormat selects which documents are written.
type OutputFormat string

const (
	FormatMarkdown OutputFormat = "markdown"
	FormatPDF      OutputFormat = "pdf"
	FormatBoth     OutputFormat = "both"
)

// Includes reports whether documents of format f are part of o.
func (o OutputFormat) Includes(f OutputFormat) bool {
	return o == f || o == FormatBoth
}

// SummarizeConfig holds settings for the summarize stage.
type SummarizeConfig struct {
	// Length is the target number of key points per chunk (5-20, default 10).
	Length int `json:"length" yaml:"length"`

	// Tone labels the summary (neutral, executive, friendly, detailed).
	Tone Tone `json:"tone" yaml:"tone"`

	// ChunkSize is the maximum chunk size in characters (default 3000).
	ChunkSize int `json:"chunk_size" yaml:"chunk_size"`

	// Workers is the number of chunks extracted concurrently (default 1).
	Workers int `json:"workers" yaml:"workers"`

	// KeywordsFile optionally points at a YAML file of keyword sets.
	KeywordsFile string `json:"keywords,omitempty" yaml:"keywords,omitempty"`
}

// OutputConfig holds settings for written documents.
type OutputConfig struct {
	// Dir is the directory output files are written to.
	Dir string `json:"dir" yaml:"dir"`

	// Format selects markdown, pdf, or both.
	Format OutputFormat `json:"format" yaml:"format"`

	// Export also writes the summary as YAML next to the documents.
	Export bool `json:"export" yaml:"export"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	// Level is a logrus level name (default "info").
	Level string `json:"level" yaml:"level"`

	// File, when set, receives JSON logs through a rotating writer.
	File string `json:"file,omitempty" yaml:"file,omitempty"`
}

// Config groups all settings for the CLI.
type Config struct {
	Summarize SummarizeConfig `json:"summarize" yaml:"summarize"`
	Output    OutputConfig    `json:"output" yaml:"output"`
	Log       LogConfig       `json:"log" yaml:"log"`
}

// ValidateLength rejects a key point count outside MinLength..MaxLength.
func ValidateLength(n int) error {
	if n < MinLength || n > MaxLength {
		return fmt.Errorf("summarize.length must be between %d and %d, got %d", MinLength, MaxLength, n)
	}
	return nil
}

// Validate fills defaults for zero values and rejects out-of-range settings.
func (c *Config) Validate() error {
	if c.Summarize.Length == 0 {
		c.Summarize.Length = DefaultLength
	}
	if err := ValidateLength(c.Summarize.Length); err != nil {
		return err
	}

	if c.Summarize.Tone == "" {
		c.Summarize.Tone = ToneNeutral
	}
	c.Summarize.Tone = Tone(strings.ToLower(string(c.Summarize.Tone)))
	if !c.Summarize.Tone.Valid() {
		return fmt.Errorf("summarize.tone %q is not one of %v", c.Summarize.Tone, Tones)
	}

	if c.Summarize.ChunkSize == 0 {
		c.Summarize.ChunkSize = DefaultChunkSize
	}
	if c.Summarize.ChunkSize < 0 {
		return fmt.Errorf("summarize.chunk_size must be positive, got %d", c.Summarize.ChunkSize)
	}

	if c.Summarize.Workers <= 0 {
		c.Summarize.Workers = 1
	}

	if c.Output.Dir == "" {
		c.Output.Dir = DefaultOutputDir
	}
	if c.Output.Format == "" {
		c.Output.Format = FormatBoth
	}
	switch c.Output.Format {
	case FormatMarkdown, FormatPDF, FormatBoth:
	default:
		return fmt.Errorf("output.format %q must be markdown, pdf, or both", c.Output.Format)
	}

	if c.Log.Level == "" {
		c.Log.Level = "info"
	}

	return nil
}
