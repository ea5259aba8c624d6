// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package render

import (
	"strings"
	"unicode"
)

// WrapWidth is the column width bullets are wrapped to in the PDF.
const WrapWidth = 90

// tabSize is the tab stop used when expanding tabs to spaces.
const tabSize = 8

// Wrap breaks text into lines of at most width characters, the way Python's
// textwrap.wrap does with its default options:
//
//   - tabs expand to the next multiple of 8 and every other whitespace
//     character becomes a single space; runs of spaces inside a line are kept
//   - lines may break after a hyphen joining two letters ("pre-" "launch")
//   - a word longer than the line fills what is left of it, cut after a
//     hyphen when one fits, and continues on the next line
//   - spaces are dropped at the end of every line and at the start of every
//     line but the first
//
// Blank text yields no lines. A width below 1 is treated as 1.
func Wrap(text string, width int) []string {
	if width < 1 {
		width = 1
	}
	return wrapChunks(splitChunks(normalizeSpace(text)), width)
}

// isSpace matches the ASCII whitespace set the wrapper splits on.
func isSpace(r rune) bool {
	switch r {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	}
	return false
}

func isWordChar(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsNumber(r)
}

func isLetter(r rune) bool {
	return isWordChar(r) && !unicode.IsDigit(r)
}

// isWordPunct matches characters that may precede an em-dash ("--").
func isWordPunct(r rune) bool {
	return isWordChar(r) || strings.ContainsRune(`!"'&.,?`, r)
}

// normalizeSpace expands tabs and turns every whitespace character into a
// single space, so lengths measured afterwards are column counts.
func normalizeSpace(text string) []rune {
	out := make([]rune, 0, len(text))
	col := 0
	for _, r := range text {
		switch {
		case r == '\t':
			n := tabSize - col%tabSize
			for i := 0; i < n; i++ {
				out = append(out, ' ')
			}
			col += n
			continue
		case r == '\n' || r == '\r':
			col = 0
		default:
			col++
		}
		if isSpace(r) {
			r = ' '
		}
		out = append(out, r)
	}
	return out
}

// splitChunks cuts s into space runs and words. Words are further cut after
// a hyphen between letters and around em-dashes.
func splitChunks(s []rune) [][]rune {
	var chunks [][]rune
	for i := 0; i < len(s); {
		j := i
		if isSpace(s[i]) {
			for j < len(s) && isSpace(s[j]) {
				j++
			}
		} else if j = emDashEnd(s, i); j == i {
			j = wordEnd(s, i)
		}
		chunks = append(chunks, s[i:j])
		i = j
	}
	return chunks
}

func letterAt(s []rune, k int) bool {
	return k >= 0 && k < len(s) && isLetter(s[k])
}

func hyphenRunEnd(s []rune, k int) int {
	for k < len(s) && s[k] == '-' {
		k++
	}
	return k
}

// startsEmDash reports whether s[k:] is two or more hyphens followed by a
// word character.
func startsEmDash(s []rune, k int) bool {
	end := hyphenRunEnd(s, k)
	return end-k >= 2 && end < len(s) && isWordChar(s[end])
}

// emDashEnd returns the end of an em-dash chunk starting at i, or i when
// there is none.
func emDashEnd(s []rune, i int) int {
	if i > 0 && isWordPunct(s[i-1]) && startsEmDash(s, i) {
		return hyphenRunEnd(s, i)
	}
	return i
}

// wordEnd returns the end of the shortest word chunk starting at i: it
// stops after a hyphen that joins letters, at the next space, or before an
// em-dash.
func wordEnd(s []rune, i int) int {
	for j := i + 1; ; j++ {
		if j < len(s) && s[j] == '-' {
			lettersBefore := letterAt(s, j-2) && letterAt(s, j-1) ||
				letterAt(s, j-3) && s[j-2] == '-' && letterAt(s, j-1)
			lettersAfter := letterAt(s, j+1) &&
				(letterAt(s, j+2) || j+2 < len(s) && s[j+2] == '-' && letterAt(s, j+3))
			if lettersBefore && lettersAfter {
				return j + 1
			}
		}
		if j == len(s) || isSpace(s[j]) {
			return j
		}
		if isWordPunct(s[j-1]) && startsEmDash(s, j) {
			return j
		}
	}
}

func isBlank(chunk []rune) bool {
	return strings.TrimSpace(string(chunk)) == ""
}

func wrapChunks(chunks [][]rune, width int) []string {
	var lines []string
	for len(chunks) > 0 {
		if len(lines) > 0 && isBlank(chunks[0]) {
			chunks = chunks[1:]
		}

		var cur [][]rune
		n := 0
		for len(chunks) > 0 && n+len(chunks[0]) <= width {
			cur = append(cur, chunks[0])
			n += len(chunks[0])
			chunks = chunks[1:]
		}

		if len(chunks) > 0 && len(chunks[0]) > width {
			head, rest := breakLongWord(chunks[0], width-n)
			cur = append(cur, head)
			chunks[0] = rest
		}

		if len(cur) > 0 && isBlank(cur[len(cur)-1]) {
			cur = cur[:len(cur)-1]
		}
		if len(cur) > 0 {
			var b strings.Builder
			for _, c := range cur {
				b.WriteString(string(c))
			}
			lines = append(lines, b.String())
		}
	}
	return lines
}

// breakLongWord splits off the part of chunk that fits in space, preferring
// to cut just after the last hyphen that fits.
func breakLongWord(chunk []rune, space int) (head, rest []rune) {
	end := space
	if len(chunk) > space {
		if h := lastHyphen(chunk[:space]); h > 0 && strings.Trim(string(chunk[:h]), "-") != "" {
			end = h + 1
		}
	}
	return chunk[:end], chunk[end:]
}

func lastHyphen(rs []rune) int {
	for i := len(rs) - 1; i >= 0; i-- {
		if rs[i] == '-' {
			return i
		}
	}
	return -1
}
