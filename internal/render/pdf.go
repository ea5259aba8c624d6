// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package render

import (
	"bytes"
	"fmt"

	"github.com/go-pdf/fpdf"
)

const fontFamily = "Helvetica"

// Document renders key points and action items as an A4 PDF following
// Layout and returns the assembled file. Empty inputs produce a single page
// holding only the title.
func Document(keyPoints, actionItems []string) ([]byte, error) {
	pdf := buildPDF(Layout(keyPoints, actionItems), true)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("assembling pdf: %w", err)
	}
	return buf.Bytes(), nil
}

// buildPDF draws the planned pages. compress is switched off in tests so
// the content streams can be inspected.
func buildPDF(pages []Page, compress bool) *fpdf.Fpdf {
	pdf := fpdf.NewCustom(&fpdf.InitType{
		OrientationStr: "P",
		UnitStr:        "pt",
		Size:           fpdf.SizeType{Wd: pageWidthA4, Ht: pageHeightA4},
	})
	pdf.SetCompression(compress)
	pdf.SetAutoPageBreak(false, 0)
	pdf.SetTitle(summaryTitle, true)
	pdf.SetCreator("meeting-notes", true)

	// Core fonts are cp1252; translate so accented names survive.
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	for _, page := range pages {
		pdf.AddPage()
		for _, line := range page.Lines {
			setStyle(pdf, line.Style)
			pdf.Text(line.X, line.Y, tr(line.Text))
		}
	}
	return pdf
}

func setStyle(pdf *fpdf.Fpdf, style Style) {
	switch style {
	case StyleTitle:
		pdf.SetFont(fontFamily, "B", titleFontSize)
	default:
		pdf.SetFont(fontFamily, "", bodyFontSize)
	}
}
