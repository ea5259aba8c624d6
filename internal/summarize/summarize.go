// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package summarize runs the whole transcript pipeline: decode, chunk,
// extract per chunk, merge, and count. It returns a types.Summary that the
// caller hands to the renderers; no state is kept between runs.
package summarize

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/sirupsen/logrus"
	"github.com/sourcegraph/conc/iter"

	"github.com/pdiddy/meeting-notes/internal/chunk"
	"github.com/pdiddy/meeting-notes/internal/extract"
	"github.com/pdiddy/meeting-notes/internal/logger"
	"github.com/pdiddy/meeting-notes/internal/render"
	"github.com/pdiddy/meeting-notes/pkg/types"
)

// ErrEmptyTranscript is returned when the transcript has no text after
// trimming whitespace.
var ErrEmptyTranscript = errors.New("transcript is empty")

// Options controls one run. Zero values fall back to the package defaults.
type Options struct {
	Length    int
	Tone      types.Tone
	ChunkSize int

	// Workers bounds how many chunks are extracted at once. Results are
	// merged in chunk order regardless.
	Workers int

	// Extractor overrides the default keyword sets.
	Extractor *extract.Extractor

	// Now stamps Summary.GeneratedAt; time.Now when nil.
	Now func() time.Time
}

func (o Options) withDefaults() Options {
	if o.Length == 0 {
		o.Length = types.DefaultLength
	}
	if o.Tone == "" {
		o.Tone = types.ToneNeutral
	}
	if o.ChunkSize <= 0 {
		o.ChunkSize = types.DefaultChunkSize
	}
	if o.Workers <= 0 {
		o.Workers = 1
	}
	if o.Extractor == nil {
		o.Extractor = extract.New(nil)
	}
	if o.Now == nil {
		o.Now = time.Now
	}
	return o
}

// Run summarizes text. Each chunk is extracted independently with the
// requested length and tone; the per-chunk results are concatenated in
// chunk order and deduplicated with Dedupe. Cancelling ctx stops work
// between chunks.
func Run(ctx context.Context, text string, opts Options, log logger.FieldLogger) (*types.Summary, error) {
	opts = opts.withDefaults()
	if log == nil {
		log = logger.Discard()
	}

	text = strings.TrimSpace(text)
	if text == "" {
		return nil, ErrEmptyTranscript
	}

	spans := chunk.Spans(text, opts.ChunkSize)
	log.WithFields(logrus.Fields{
		"characters": utf8.RuneCountInString(text),
		"chunks":     len(spans),
		"chunk_size": opts.ChunkSize,
		"workers":    opts.Workers,
	}).Info("summarizing transcript")

	results, err := extractAll(ctx, spans, opts, log)
	if err != nil {
		return nil, fmt.Errorf("extracting chunks: %w", err)
	}

	keyPoints, actionItems := Merge(results)
	s := &types.Summary{
		Tone:        opts.Tone,
		Length:      opts.Length,
		Chunks:      len(spans),
		KeyPoints:   keyPoints,
		ActionItems: actionItems,
		Stats:       Stats(keyPoints, actionItems),
		GeneratedAt: opts.Now().UTC(),
	}

	log.WithFields(logrus.Fields{
		"key_points":   s.Stats.KeyPoints,
		"action_items": s.Stats.ActionItems,
	}).Info("summary ready")
	return s, nil
}

func extractAll(ctx context.Context, spans []types.TranscriptChunk, opts Options, log logger.FieldLogger) ([]types.ExtractionResult, error) {
	mapper := iter.Mapper[types.TranscriptChunk, types.ExtractionResult]{MaxGoroutines: opts.Workers}

	results, err := mapper.MapErr(spans, func(c *types.TranscriptChunk) (types.ExtractionResult, error) {
		if err := ctx.Err(); err != nil {
			return types.ExtractionResult{}, err
		}
		kp, ai := opts.Extractor.Extract(c.Text, opts.Length, opts.Tone)
		log.WithFields(logrus.Fields{
			"chunk":        c.Index + 1,
			"of":           len(spans),
			"key_points":   len(kp),
			"action_items": len(ai),
		}).Debug("chunk extracted")
		return types.ExtractionResult{KeyPoints: kp, ActionItems: ai}, nil
	})
	if ctxErr := ctx.Err(); ctxErr != nil {
		return nil, ctxErr
	}
	return results, err
}

// Merge concatenates per-chunk results in order and deduplicates each list.
func Merge(results []types.ExtractionResult) (keyPoints, actionItems []string) {
	var allKP, allAI []string
	for _, r := range results {
		allKP = append(allKP, r.KeyPoints...)
		allAI = append(allAI, r.ActionItems...)
	}
	return Dedupe(allKP), Dedupe(allAI)
}

// Dedupe strips leading and trailing spaces, hyphens, and newlines from
// each item, drops items left empty, and removes repeats keeping the first
// occurrence. The result is never nil.
func Dedupe(items []string) []string {
	seen := make(map[string]struct{}, len(items))
	out := make([]string, 0, len(items))
	for _, item := range items {
		if strings.TrimSpace(item) == "" {
			continue
		}
		item = strings.Trim(item, " -\n")
		if item == "" {
			continue
		}
		if _, ok := seen[item]; ok {
			continue
		}
		seen[item] = struct{}{}
		out = append(out, item)
	}
	return out
}

// Stats counts the merged lists and the characters of their Markdown
// rendering.
func Stats(keyPoints, actionItems []string) types.SummaryStats {
	return types.SummaryStats{
		KeyPoints:       len(keyPoints),
		ActionItems:     len(actionItems),
		TotalCharacters: utf8.RuneCountInString(render.Markdown(keyPoints, actionItems)),
	}
}
