// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package summarize

import (
	"fmt"
	"io"
	"os"
	"strings"
)

// SampleTranscript is a short planning meeting used by `sample` and
// `summarize --sample`.
const SampleTranscript = `Alice: Thanks for joining. Goal is to decide the landing page hero.
Bob: Current bounce rate is 62%. We need a clearer value prop.
Carol: I propose "Track expenses effortlessly. See savings in real time."
Bob: A/B test that vs "Control your money with smart insights."
Alice: OK. Bob owns the A/B test. Deadline Friday.
Carol: I'll deliver two hero images by Wednesday.`

// Decode turns raw input bytes into text, dropping byte sequences that are
// not valid UTF-8.
func Decode(raw []byte) string {
	return strings.ToValidUTF8(string(raw), "")
}

// ReadTranscript reads and decodes a transcript from path, or from stdin
// when path is "" or "-".
func ReadTranscript(path string, stdin io.Reader) (string, error) {
	if path == "" || path == "-" {
		raw, err := io.ReadAll(stdin)
		if err != nil {
			return "", fmt.Errorf("reading transcript from stdin: %w", err)
		}
		return Decode(raw), nil
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("reading transcript: %w", err)
	}
	return Decode(raw), nil
}
