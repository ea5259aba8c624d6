// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "time"

// Tone labels the register a summary is requested in. The extractor accepts
// it but does not change its output; it is carried through for labelling
// output files and exports.
type Tone string

const (
	ToneNeutral   Tone = "neutral"
	ToneExecutive Tone = "executive"
	ToneFriendly  Tone = "friendly"
	ToneDetailed  Tone = "detailed"
)

// Tones lists the accepted tones in display order.
var Tones = []Tone{ToneNeutral, ToneExecutive, ToneFriendly, ToneDetailed}

// Valid reports whether t is one of Tones.
func (t Tone) Valid() bool {
	for _, known := range Tones {
		if t == known {
			return true
		}
	}
	return false
}

// TranscriptChunk is a bounded, contiguous slice of a transcript.
// Start and End are character (rune) offsets into the original text.
type TranscriptChunk struct {
	Index int    `json:"index" yaml:"index"`
	Start int    `json:"start" yaml:"start"`
	End   int    `json:"end" yaml:"end"`
	Text  string `json:"text" yaml:"text"`
}

// Len returns the number of characters in the chunk.
func (c TranscriptChunk) Len() int {
	return c.End - c.Start
}

// ExtractionResult holds the key points and action items found in one chunk.
type ExtractionResult struct {
	KeyPoints   []string `json:"key_points" yaml:"key_points"`
	ActionItems []string `json:"action_items" yaml:"action_items"`
}

// SummaryStats are the counts reported after a summary is generated.
type SummaryStats struct {
	// KeyPoints is the number of merged key points.
	KeyPoints int `json:"key_points" yaml:"key_points"`

	// ActionItems is the number of merged action items.
	ActionItems int `json:"action_items" yaml:"action_items"`

	// TotalCharacters is the character count of the Markdown rendering.
	TotalCharacters int `json:"total_characters" yaml:"total_characters"`
}

// Summary is the merged, deduplicated result of summarizing a transcript.
// It is the value callers pass to the renderers; nothing else holds it.
type Summary struct {
	Tone        Tone         `json:"tone" yaml:"tone"`
	Length      int          `json:"length" yaml:"length"`
	Chunks      int          `json:"chunks" yaml:"chunks"`
	KeyPoints   []string     `json:"key_points" yaml:"key_points"`
	ActionItems []string     `json:"action_items" yaml:"action_items"`
	Stats       SummaryStats `json:"stats" yaml:"stats"`
	GeneratedAt time.Time    `json:"generated_at" yaml:"generated_at"`
}
