package markdown

import (
	"regexp"
	"strings"
)

// SpanKind tags one inline run of formatted text.
type SpanKind int

const (
	SpanPlain SpanKind = iota
	SpanBold
	SpanItalic
	SpanCode
	SpanLink
)

// Span is one inline run within a block. URL is set for SpanLink only.
type Span struct {
	Kind SpanKind
	Text string
	URL  string
}

// inlineRe matches the inline subset, leftmost match first. Alternative
// order matters: code and links before emphasis, bold before italic so
// "**" is never read as two "*". Unbalanced markers fall through to
// plain text because each alternative requires its closing marker.
var inlineRe = regexp.MustCompile("`([^`]+)`" +
	`|\[([^\]]+)\]\(([^)]+)\)` +
	`|\*\*(.+?)\*\*` +
	`|__(.+?)__` +
	`|\*([^*]+)\*` +
	`|_([^_]+)_`)

// FormatInline resolves the inline markers of one line into spans.
// Markers are matched left to right, non-overlapping; a span's content
// is not re-scanned. Lone markers stay literal. Empty input yields nil.
func FormatInline(text string) []Span {
	if text == "" {
		return nil
	}

	var spans []Span
	pos := 0
	for _, m := range inlineRe.FindAllStringSubmatchIndex(text, -1) {
		if m[0] > pos {
			spans = append(spans, Span{Kind: SpanPlain, Text: text[pos:m[0]]})
		}
		switch {
		case m[2] >= 0: // `code`
			spans = append(spans, Span{Kind: SpanCode, Text: text[m[2]:m[3]]})
		case m[4] >= 0: // [label](url)
			spans = append(spans, Span{Kind: SpanLink, Text: text[m[4]:m[5]], URL: text[m[6]:m[7]]})
		case m[8] >= 0: // **bold**
			spans = append(spans, Span{Kind: SpanBold, Text: text[m[8]:m[9]]})
		case m[10] >= 0: // __bold__
			spans = append(spans, Span{Kind: SpanBold, Text: text[m[10]:m[11]]})
		case m[12] >= 0: // *italic*
			spans = append(spans, Span{Kind: SpanItalic, Text: text[m[12]:m[13]]})
		case m[14] >= 0: // _italic_
			spans = append(spans, Span{Kind: SpanItalic, Text: text[m[14]:m[15]]})
		}
		pos = m[1]
	}
	if pos < len(text) {
		spans = append(spans, Span{Kind: SpanPlain, Text: text[pos:]})
	}
	return spans
}

// Flatten reconstructs the displayable text of a span sequence,
// dropping the markers but no other characters.
func Flatten(spans []Span) string {
	var sb strings.Builder
	for _, s := range spans {
		sb.WriteString(s.Text)
	}
	return sb.String()
}
