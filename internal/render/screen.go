// Package render turns parsed block sequences into target-native
// output: an HTML fragment for the history view, slide paragraphs for
// the deck assembler, and docx paragraphs for the report assembler.
// Renderers never fail; content beyond a policy limit is dropped
// silently.
package render

import (
	"html"
	"strconv"
	"strings"

	"paperdeck/internal/markdown"
)

// ScreenHTML renders blocks as an HTML fragment for embedding in an
// existing page. No truncation, no pagination; blank blocks become
// spacing elements.
func ScreenHTML(blocks []markdown.Block) string {
	var sb strings.Builder
	i := 0
	for i < len(blocks) {
		b := blocks[i]
		switch b.Kind {
		case markdown.BlockHeading:
			tag := "h" + strconv.Itoa(b.Level)
			sb.WriteString("<" + tag + ">")
			writeSpans(&sb, b.Spans)
			sb.WriteString("</" + tag + ">\n")
			i++
		case markdown.BlockBlank:
			sb.WriteString("<div class=\"spacer\"></div>\n")
			i++
		case markdown.BlockParagraph:
			sb.WriteString("<p>")
			writeSpans(&sb, b.Spans)
			sb.WriteString("</p>\n")
			i++
		case markdown.BlockCode:
			sb.WriteString("<pre><code>")
			sb.WriteString(html.EscapeString(strings.Join(b.Lines, "\n")))
			sb.WriteString("</code></pre>\n")
			i++
		case markdown.BlockBullet, markdown.BlockNumbered:
			i = writeList(&sb, blocks, i)
		default:
			i++
		}
	}
	return sb.String()
}

// writeList emits one top-level list, nesting depth-1 items inside
// their parent's li. Returns the index of the first block past the
// list.
func writeList(sb *strings.Builder, blocks []markdown.Block, i int) int {
	kind := blocks[i].Kind
	openTag, closeTag := listTags(kind)
	sb.WriteString(openTag + "\n")

	for i < len(blocks) && isListItem(blocks[i]) {
		b := blocks[i]
		if b.Depth == 0 && b.Kind != kind {
			break // a different list starts here
		}
		sb.WriteString(itemTag(b))
		writeSpans(sb, b.Spans)
		i++

		if i < len(blocks) && isListItem(blocks[i]) && blocks[i].Depth == 1 {
			nestedKind := blocks[i].Kind
			nestedOpen, nestedClose := listTags(nestedKind)
			sb.WriteString("\n" + nestedOpen + "\n")
			for i < len(blocks) && isListItem(blocks[i]) && blocks[i].Depth == 1 {
				sb.WriteString(itemTag(blocks[i]))
				writeSpans(sb, blocks[i].Spans)
				sb.WriteString("</li>\n")
				i++
			}
			sb.WriteString(nestedClose + "\n")
		}
		sb.WriteString("</li>\n")
	}

	sb.WriteString(closeTag + "\n")
	if i < len(blocks) && isListItem(blocks[i]) {
		// Top-level item of the other list kind.
		return writeList(sb, blocks, i)
	}
	return i
}

func isListItem(b markdown.Block) bool {
	return b.Kind == markdown.BlockBullet || b.Kind == markdown.BlockNumbered
}

func listTags(kind markdown.BlockKind) (string, string) {
	if kind == markdown.BlockNumbered {
		return "<ol>", "</ol>"
	}
	return "<ul>", "</ul>"
}

func itemTag(b markdown.Block) string {
	if b.Kind == markdown.BlockNumbered && b.Index > 0 {
		return "<li value=\"" + strconv.Itoa(b.Index) + "\">"
	}
	return "<li>"
}

func writeSpans(sb *strings.Builder, spans []markdown.Span) {
	for _, s := range spans {
		text := html.EscapeString(s.Text)
		switch s.Kind {
		case markdown.SpanBold:
			sb.WriteString("<strong>" + text + "</strong>")
		case markdown.SpanItalic:
			sb.WriteString("<em>" + text + "</em>")
		case markdown.SpanCode:
			sb.WriteString("<code>" + text + "</code>")
		case markdown.SpanLink:
			sb.WriteString("<a href=\"" + html.EscapeString(s.URL) + "\">" + text + "</a>")
		default:
			sb.WriteString(text)
		}
	}
}
