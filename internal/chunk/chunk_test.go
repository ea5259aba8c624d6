// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package chunk

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplit(t *testing.T) {
	tests := []struct {
		name       string
		text       string
		maxChars   int
		wantChunks int
	}{
		{name: "empty text", text: "", maxChars: 10, wantChunks: 0},
		{name: "shorter than max", text: "hello", maxChars: 10, wantChunks: 1},
		{name: "exactly max", text: "0123456789", maxChars: 10, wantChunks: 1},
		{name: "one over max", text: "0123456789a", maxChars: 10, wantChunks: 2},
		{name: "several full chunks", text: strings.Repeat("x", 30), maxChars: 10, wantChunks: 3},
		{name: "max of one", text: "abc", maxChars: 1, wantChunks: 3},
		{name: "multibyte characters", text: strings.Repeat("é✓", 7), maxChars: 5, wantChunks: 3},
		{name: "long transcript at default size", text: strings.Repeat("Alice: hi. ", 1000), maxChars: 3000, wantChunks: 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Split(tt.text, tt.maxChars)

			require.Len(t, got, tt.wantChunks)
			assert.Equal(t, tt.text, strings.Join(got, ""))

			total := utf8.RuneCountInString(tt.text)
			wantCount := (total + tt.maxChars - 1) / tt.maxChars
			assert.Equal(t, wantCount, len(got))

			for i, c := range got {
				n := utf8.RuneCountInString(c)
				assert.LessOrEqual(t, n, tt.maxChars, "chunk %d", i)
				if i < len(got)-1 {
					assert.Equal(t, tt.maxChars, n, "only the last chunk may be short")
				}
			}
		})
	}
}

func TestSplitEmptyIsNil(t *testing.T) {
	assert.Nil(t, Split("", 3000))
}

func TestSplitNonPositiveMaxUsesDefault(t *testing.T) {
	text := strings.Repeat("a", DefaultMaxChars+1)

	for _, maxChars := range []int{0, -5} {
		got := Split(text, maxChars)
		require.Len(t, got, 2)
		assert.Len(t, got[0], DefaultMaxChars)
		assert.Equal(t, "a", got[1])
	}
}

func TestSplitCutsMidWord(t *testing.T) {
	got := Split("decided to ship", 4)
	assert.Equal(t, []string{"deci", "ded ", "to s", "hip"}, got)
}

func TestSpansOffsets(t *testing.T) {
	text := "αβγδεζηθι" // nine two-byte characters
	spans := Spans(text, 4)

	require.Len(t, spans, 3)
	for i, s := range spans {
		assert.Equal(t, i, s.Index)
	}
	assert.Equal(t, 0, spans[0].Start)
	assert.Equal(t, 4, spans[0].End)
	assert.Equal(t, "αβγδ", spans[0].Text)
	assert.Equal(t, 4, spans[1].Start)
	assert.Equal(t, 8, spans[1].End)
	assert.Equal(t, 8, spans[2].Start)
	assert.Equal(t, 9, spans[2].End)
	assert.Equal(t, "ι", spans[2].Text)
	assert.Equal(t, 1, spans[2].Len())
}

func TestSpansKeepsInvalidBytes(t *testing.T) {
	text := "ab\xffcd"
	spans := Spans(text, 2)

	require.Len(t, spans, 3)
	assert.Equal(t, text, spans[0].Text+spans[1].Text+spans[2].Text)
	assert.Equal(t, "\xffc", spans[1].Text)
}
