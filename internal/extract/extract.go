// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package extract classifies transcript sentences into key points and
// action items by keyword membership.
//
// Classification is exclusive per sentence and action keywords win: a
// sentence containing both "will" and "decided" is an action item. Output
// is capped per call and padded with fixed filler when too few sentences
// match.
package extract

import (
	"regexp"
	"strings"

	"github.com/pdiddy/meeting-notes/pkg/types"
)

const (
	// minKeyPoints and minActionItems trigger the fallback filler.
	minKeyPoints   = 3
	minActionItems = 2
	// minActionCap is the lower bound of the action item cap.
	minActionCap = 3
)

// sentenceBoundary matches one or more sentence terminators.
var sentenceBoundary = regexp.MustCompile(`[.!?]+`)

var fallbackKeyPoints = []string{
	"Meeting covered important topics and decisions",
	"Team discussed current progress and challenges",
	"Key points were reviewed and next steps identified",
}

var fallbackActionItems = []string{
	"Follow up on discussed action items",
	"Prepare materials for next meeting",
}

// Extractor classifies sentences against a fixed set of keywords. It holds
// no mutable state and is safe for concurrent use.
type Extractor struct {
	keywords KeywordSets
}

// New returns an Extractor using keywords, or the defaults when keywords
// is nil.
func New(keywords KeywordSets) *Extractor {
	if keywords == nil {
		keywords = DefaultKeywords()
	}
	return &Extractor{keywords: keywords}
}

// Keywords returns the keyword sets the extractor matches against.
func (e *Extractor) Keywords() KeywordSets {
	return e.keywords
}

var defaultExtractor = New(nil)

// Extract runs the default Extractor. See (*Extractor).Extract.
func Extract(text string, targetLength int, tone types.Tone) (keyPoints, actionItems []string) {
	return defaultExtractor.Extract(text, targetLength, tone)
}

// ActionCap returns the maximum number of action items kept for a target
// key point count: max(3, targetLength/2).
func ActionCap(targetLength int) int {
	return max(minActionCap, targetLength/2)
}

// Extract scans text sentence by sentence and returns at most targetLength
// key points and at most ActionCap(targetLength) action items, in sentence
// order. Once a cap is reached, later matches of that kind are dropped.
// The tone is accepted for callers that label output by it; it does not
// affect extraction.
func (e *Extractor) Extract(text string, targetLength int, _ types.Tone) (keyPoints, actionItems []string) {
	if targetLength < 0 {
		targetLength = 0
	}
	actionCap := ActionCap(targetLength)

	for _, sentence := range Sentences(text) {
		lower := strings.ToLower(sentence)

		switch {
		case e.keywords.Matches(CategoryAction, lower):
			if len(actionItems) < actionCap {
				actionItems = append(actionItems, sentence)
			}
		case e.keywords.Matches(CategoryDecision, lower), e.keywords.Matches(CategoryMeeting, lower):
			if len(keyPoints) < targetLength {
				keyPoints = append(keyPoints, sentence)
			}
		}
	}

	if len(keyPoints) < minKeyPoints {
		keyPoints = append(keyPoints, fallbackKeyPoints...)
	}
	if len(actionItems) < minActionItems {
		actionItems = append(actionItems, fallbackActionItems...)
	}

	return truncate(keyPoints, targetLength), truncate(actionItems, actionCap)
}

// Sentences splits text on runs of '.', '!' and '?', trims each piece and
// drops empty ones.
func Sentences(text string) []string {
	var out []string
	for _, s := range sentenceBoundary.Split(text, -1) {
		s = strings.TrimSpace(s)
		if s != "" {
			out = append(out, s)
		}
	}
	return out
}

func truncate(items []string, n int) []string {
	if len(items) > n {
		return items[:n]
	}
	return items
}
