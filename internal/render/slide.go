package render

import (
	"strings"

	"paperdeck/internal/markdown"
	"paperdeck/internal/pptx"
)

// Slide color scheme, dark academic blue.
const (
	ColorPrimary   = "003366"
	ColorSecondary = "0066CC"
	ColorText      = "333333"
	ColorMutedGray = "666666"
)

// Slide layout policy. List items past MaxListItems are dropped
// silently; longer texts are cut at the rune limit with the ellipsis
// marker.
const (
	MaxListItems      = 6
	MaxParagraphRunes = 150
	MaxListItemRunes  = 100
	Ellipsis          = "..."
)

// SlideBody renders blocks into a slide body text box. The list-item
// counter is local to the call, so rendering the same sequence twice
// produces identical output.
func SlideBody(blocks []markdown.Block, body *pptx.TextBox) {
	items := 0
	for _, b := range blocks {
		switch b.Kind {
		case markdown.BlockBlank:
			body.AddParagraph().SpaceAfter(6)

		case markdown.BlockHeading:
			p := body.AddParagraph().SpaceBefore(12).SpaceAfter(6)
			p.AddRun(b.Text()).Size(20).Bold().Color(ColorPrimary)

		case markdown.BlockBullet, markdown.BlockNumbered:
			if items >= MaxListItems {
				continue
			}
			items++
			p := body.AddParagraph().Bullet(b.Depth).SpaceBefore(4).SpaceAfter(4)
			p.AddRun(Truncate(b.Text(), MaxListItemRunes)).Size(16).Color(ColorText)

		case markdown.BlockParagraph:
			p := body.AddParagraph().Align("just").SpaceBefore(6).SpaceAfter(6)
			p.AddRun(Truncate(b.Text(), MaxParagraphRunes)).Size(16).Color(ColorText)

		case markdown.BlockCode:
			for _, line := range b.Lines {
				p := body.AddParagraph()
				p.AddRun(line).Size(14).Mono().Color(ColorText)
			}
		}
	}
}

// Overflowed reports whether a rendered body ends in the truncation
// marker, meaning content was cut and a continuation slide may be
// warranted.
func Overflowed(body *pptx.TextBox) bool {
	return strings.HasSuffix(body.Text(), Ellipsis)
}

// Truncate cuts s to at most limit runes, marker included. Text at or
// under the limit is returned untouched.
func Truncate(s string, limit int) string {
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit-len(Ellipsis)]) + Ellipsis
}
