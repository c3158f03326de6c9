// Package markdown parses the constrained Markdown subset produced by
// the paper analysis LLM: ##/### headings, -/* bullets with one level
// of indentation nesting, numbered lists, fenced code blocks, inline
// bold/italic/code/link spans, and blank-line paragraph breaks.
// Parsing never fails; anything unrecognized degrades to paragraph
// text.
package markdown

import (
	"regexp"
	"strings"
)

var (
	headingRe  = regexp.MustCompile(`^(#{2,3})\s*(.*)$`)
	numberedRe = regexp.MustCompile(`^(\d+)\.\s+(.*)$`)
)

// Parse converts one field's raw text into an ordered block sequence.
// Line order is preserved exactly; nesting deeper than one level is
// clamped to depth 1.
func Parse(text string) []Block {
	lines := strings.Split(text, "\n")
	var blocks []Block

	i := 0
	for i < len(lines) {
		line := lines[i]
		trimmed := strings.TrimSpace(line)

		switch {
		case trimmed == "":
			blocks = append(blocks, Block{Kind: BlockBlank})
			i++

		case isFence(trimmed):
			var code []string
			i++
			for i < len(lines) {
				if isFence(strings.TrimSpace(lines[i])) {
					i++
					break
				}
				code = append(code, lines[i])
				i++
			}
			// An unterminated fence still emits with all remaining lines.
			blocks = append(blocks, Block{Kind: BlockCode, Lines: code})

		case headingRe.MatchString(trimmed):
			m := headingRe.FindStringSubmatch(trimmed)
			blocks = append(blocks, Block{
				Kind:  BlockHeading,
				Level: len(m[1]),
				Spans: FormatInline(strings.TrimSpace(m[2])),
			})
			i++

		case isBulletLine(trimmed):
			blocks = append(blocks, Block{
				Kind:  BlockBullet,
				Spans: FormatInline(strings.TrimSpace(trimmed[2:])),
			})
			i = consumeNested(lines, i+1, indentOf(line), &blocks)

		case numberedRe.MatchString(trimmed):
			m := numberedRe.FindStringSubmatch(trimmed)
			blocks = append(blocks, Block{
				Kind:  BlockNumbered,
				Index: atoi(m[1]),
				Spans: FormatInline(m[2]),
			})
			i = consumeNested(lines, i+1, indentOf(line), &blocks)

		default:
			// Paragraph: absorb following lines until a structural marker.
			parts := []string{trimmed}
			i++
			for i < len(lines) {
				next := strings.TrimSpace(lines[i])
				if next == "" || isFence(next) || headingRe.MatchString(next) ||
					isBulletLine(next) || numberedRe.MatchString(next) {
					break
				}
				parts = append(parts, next)
				i++
			}
			blocks = append(blocks, Block{
				Kind:  BlockParagraph,
				Spans: FormatInline(strings.Join(parts, " ")),
			})
		}
	}

	return blocks
}

// consumeNested emits depth-1 items for list lines indented deeper than
// the parent. A blank line, a same-or-less indented line, or a deeper
// non-list line ends the run and is left for the main loop.
func consumeNested(lines []string, i, parentIndent int, blocks *[]Block) int {
	for i < len(lines) {
		trimmed := strings.TrimSpace(lines[i])
		if trimmed == "" || indentOf(lines[i]) <= parentIndent {
			return i
		}
		switch {
		case isBulletLine(trimmed):
			*blocks = append(*blocks, Block{
				Kind:  BlockBullet,
				Depth: 1,
				Spans: FormatInline(strings.TrimSpace(trimmed[2:])),
			})
		case numberedRe.MatchString(trimmed):
			m := numberedRe.FindStringSubmatch(trimmed)
			*blocks = append(*blocks, Block{
				Kind:  BlockNumbered,
				Depth: 1,
				Index: atoi(m[1]),
				Spans: FormatInline(m[2]),
			})
		default:
			return i
		}
		i++
	}
	return i
}

func isFence(trimmed string) bool {
	return strings.HasPrefix(trimmed, "```") || strings.HasPrefix(trimmed, "~~~")
}

func isBulletLine(trimmed string) bool {
	return strings.HasPrefix(trimmed, "- ") || strings.HasPrefix(trimmed, "* ")
}

func indentOf(line string) int {
	n := 0
	for _, r := range line {
		if r != ' ' && r != '\t' {
			break
		}
		n++
	}
	return n
}

func atoi(s string) int {
	n := 0
	for _, r := range s {
		n = n*10 + int(r-'0')
	}
	return n
}
