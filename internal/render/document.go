package render

import (
	"strconv"
	"strings"

	"github.com/fumiama/go-docx"

	"paperdeck/internal/markdown"
)

const monoFont = "Consolas"

// DocumentBlocks appends blocks to a docx document. The engine
// paginates on its own; this renderer only decides paragraph makeup.
// Nested list items carry a deeper indent than top-level ones; code
// lines render monospace even when the source fence was unterminated.
func DocumentBlocks(doc *docx.Docx, blocks []markdown.Block) {
	for _, b := range blocks {
		switch b.Kind {
		case markdown.BlockBlank:
			doc.AddParagraph()

		case markdown.BlockHeading:
			size := "30"
			if b.Level == 3 {
				size = "26"
			}
			p := doc.AddParagraph()
			p.AddText(b.Text()).Size(size).Bold().Color(ColorPrimary)

		case markdown.BlockBullet:
			p := doc.AddParagraph()
			if b.Depth == 0 {
				p.AddText("• ")
			} else {
				p.AddText("        ◦ ")
			}
			addSpans(p, b.Spans)

		case markdown.BlockNumbered:
			p := doc.AddParagraph()
			prefix := strings.Repeat(" ", 8*b.Depth)
			p.AddText(prefix + strconv.Itoa(b.Index) + ". ")
			addSpans(p, b.Spans)

		case markdown.BlockParagraph:
			p := doc.AddParagraph().Justification("both")
			addSpans(p, b.Spans)

		case markdown.BlockCode:
			for _, line := range b.Lines {
				p := doc.AddParagraph()
				p.AddText(line).Size("18").Font(monoFont, "", "cs", "")
			}
		}
	}
}

func addSpans(p *docx.Paragraph, spans []markdown.Span) {
	for _, s := range spans {
		switch s.Kind {
		case markdown.SpanBold:
			p.AddText(s.Text).Bold()
		case markdown.SpanItalic:
			p.AddText(s.Text).Italic()
		case markdown.SpanCode:
			p.AddText(s.Text).Font(monoFont, "", "cs", "")
		case markdown.SpanLink:
			p.AddLink(s.Text, s.URL)
		default:
			p.AddText(s.Text)
		}
	}
}
