// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package extract

import (
	"fmt"
	"os"
	"strings"

	"go.yaml.in/yaml/v3"
)

// Category names a keyword set.
type Category string

const (
	CategoryAction   Category = "action"
	CategoryDecision Category = "decision"
	CategoryMeeting  Category = "meeting"
)

// Categories lists the known categories. Action is checked first.
var Categories = []Category{CategoryAction, CategoryDecision, CategoryMeeting}

// KeywordSets maps a category to its lowercase keywords. A sentence matches
// a category when its lower-cased text contains any keyword as a substring.
type KeywordSets map[Category][]string

var defaultKeywords = KeywordSets{
	CategoryAction: {
		"action", "task", "todo", "need to", "will", "should", "must",
		"assign", "responsible", "deadline", "due",
	},
	CategoryDecision: {
		"decided", "agreed", "concluded", "resolved", "approved",
		"rejected", "chose", "selected",
	},
	CategoryMeeting: {
		"meeting", "discuss", "review", "present", "propose", "suggest",
		"recommend", "plan", "strategy",
	},
}

// DefaultKeywords returns a copy of the built-in keyword sets.
func DefaultKeywords() KeywordSets {
	out := make(KeywordSets, len(defaultKeywords))
	for c, words := range defaultKeywords {
		out[c] = append([]string(nil), words...)
	}
	return out
}

// Matches reports whether lower contains any keyword of category c.
// lower must already be lower-cased.
func (k KeywordSets) Matches(c Category, lower string) bool {
	for _, kw := range k[c] {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}

// Validate rejects unknown categories and blank or non-lowercase keywords.
func (k KeywordSets) Validate() error {
	for c, words := range k {
		if !knownCategory(c) {
			return fmt.Errorf("unknown keyword category %q", c)
		}
		for i, w := range words {
			if strings.TrimSpace(w) == "" {
				return fmt.Errorf("category %s: keyword %d is empty", c, i)
			}
			if w != strings.ToLower(w) {
				return fmt.Errorf("category %s: keyword %q is not lowercase", c, w)
			}
		}
	}
	return nil
}

// LoadKeywords reads keyword sets from a YAML file mapping category names to
// keyword lists. Categories present in the file replace the defaults;
// categories absent from it keep the defaults. Keywords are trimmed and
// lower-cased.
func LoadKeywords(path string) (KeywordSets, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading keywords %s: %w", path, err)
	}

	var raw map[string][]string
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parsing keywords %s: %w", path, err)
	}

	sets := DefaultKeywords()
	for name, words := range raw {
		c := Category(strings.ToLower(strings.TrimSpace(name)))
		normalized := make([]string, 0, len(words))
		for _, w := range words {
			normalized = append(normalized, strings.ToLower(strings.TrimSpace(w)))
		}
		sets[c] = normalized
	}

	if err := sets.Validate(); err != nil {
		return nil, fmt.Errorf("keywords %s: %w", path, err)
	}
	return sets, nil
}

func knownCategory(c Category) bool {
	for _, known := range Categories {
		if c == known {
			return true
		}
	}
	return false
}
