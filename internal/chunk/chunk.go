// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package chunk splits transcripts into bounded segments for extraction.
// Splits are purely positional: a chunk may end mid-word or mid-sentence
// and nothing downstream re-joins partial sentences.
package chunk

import "github.com/pdiddy/meeting-notes/pkg/types"

// DefaultMaxChars is the chunk size used when the caller passes a
// non-positive size.
const DefaultMaxChars = types.DefaultChunkSize

// Split partitions text into consecutive, non-overlapping pieces of at most
// maxChars characters. Concatenating the pieces in order reproduces text
// exactly. Empty text yields nil.
func Split(text string, maxChars int) []string {
	spans := Spans(text, maxChars)
	if len(spans) == 0 {
		return nil
	}
	out := make([]string, len(spans))
	for i, s := range spans {
		out[i] = s.Text
	}
	return out
}

// Spans is Split with each piece's index and character offsets. Offsets
// count runes, so a multi-byte character is never cut in half. Invalid
// UTF-8 bytes count as one character each and are carried through as-is.
func Spans(text string, maxChars int) []types.TranscriptChunk {
	if maxChars <= 0 {
		maxChars = DefaultMaxChars
	}

	var chunks []types.TranscriptChunk
	start := 0 // byte offset of the current chunk
	n := 0     // characters seen so far

	for i := range text {
		if n > 0 && n%maxChars == 0 {
			chunks = append(chunks, types.TranscriptChunk{
				Index: len(chunks),
				Start: n - maxChars,
				End:   n,
				Text:  text[start:i],
			})
			start = i
		}
		n++
	}

	if start < len(text) {
		chunks = append(chunks, types.TranscriptChunk{
			Index: len(chunks),
			Start: len(chunks) * maxChars,
			End:   n,
			Text:  text[start:],
		})
	}

	return chunks
}
