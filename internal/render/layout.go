// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package render

// Page geometry in points. Y coordinates are text baselines measured from
// the top edge of the page.
const (
	pageWidthA4  = 595.28
	pageHeightA4 = 841.89

	marginLeft   = 40.0
	marginTop    = 50.0
	marginBottom = 40.0

	titleAdvance = 25.0
	lineAdvance  = 14.0
	bulletGap    = 4.0
	sectionGap   = 20.0

	titleFontSize = 14.0
	bodyFontSize  = 10.0
)

const (
	summaryTitle = "Meeting Summary"
	actionTitle  = "Action Items"
)

// Style selects the font a line is drawn with.
type Style int

const (
	// StyleBody is Helvetica 10.
	StyleBody Style = iota
	// StyleTitle is Helvetica-Bold 14.
	StyleTitle
)

// Line is one string drawn at an absolute position.
type Line struct {
	Text  string
	X     float64
	Y     float64
	Style Style
}

// Page holds the lines drawn on one page, in drawing order.
type Page struct {
	Lines []Line
}

// Layout plans the PDF: the summary title, each key point wrapped to
// WrapWidth columns with a list marker on every line, then, if there are
// action items, a second title and the items laid out the same way.
//
// Before each line is placed, a cursor that has moved past the bottom
// margin starts a new page at the top margin, so one bullet's lines may
// span two pages. The result always has at least one page.
func Layout(keyPoints, actionItems []string) []Page {
	l := &layouter{height: pageHeightA4}
	l.newPage()

	l.place(summaryTitle, StyleTitle)
	l.y += titleAdvance
	l.bullets(keyPoints)

	if len(actionItems) > 0 {
		l.y += sectionGap
		l.place(actionTitle, StyleTitle)
		l.y += titleAdvance
		l.bullets(actionItems)
	}

	return l.pages
}

type layouter struct {
	pages  []Page
	y      float64
	height float64
}

func (l *layouter) newPage() {
	l.pages = append(l.pages, Page{})
	l.y = marginTop
}

// place draws text at the cursor, breaking the page first when the cursor
// is below the bottom margin.
func (l *layouter) place(text string, style Style) {
	if l.y > l.height-marginBottom {
		l.newPage()
	}
	p := &l.pages[len(l.pages)-1]
	p.Lines = append(p.Lines, Line{Text: text, X: marginLeft, Y: l.y, Style: style})
}

func (l *layouter) bullets(items []string) {
	for _, item := range items {
		for _, line := range Wrap(item, WrapWidth) {
			l.place(listMarker+line, StyleBody)
			l.y += lineAdvance
		}
		l.y += bulletGap
	}
}
