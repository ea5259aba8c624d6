// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package render turns merged key points and action items into output
// documents: a Markdown string and a paginated A4 PDF. Both are pure
// functions of their inputs.
package render

import "strings"

const (
	markdownSummaryHeading = "## 📝 Meeting Summary\n\n"
	markdownActionHeading  = "\n## ✅ Action Items\n\n"
	listMarker             = "- "
)

// Markdown renders the key points under a summary heading and, when there
// are any, the action items under a second heading.
func Markdown(keyPoints, actionItems []string) string {
	var b strings.Builder
	b.WriteString(markdownSummaryHeading)
	for _, kp := range keyPoints {
		b.WriteString(listMarker)
		b.WriteString(kp)
		b.WriteString("\n")
	}

	if len(actionItems) > 0 {
		b.WriteString(markdownActionHeading)
		for _, a := range actionItems {
			b.WriteString(listMarker)
			b.WriteString(a)
			b.WriteString("\n")
		}
	}

	return b.String()
}
