package render

import (
	"fmt"
	"strings"
	"testing"

	"paperdeck/internal/markdown"
	"paperdeck/internal/pptx"
)

func newBody() *pptx.TextBox {
	return pptx.New().AddSlide().AddTextBox(0.5, 1.3, 9, 5.3)
}

func TestTruncate_Boundary(t *testing.T) {
	exact := strings.Repeat("a", MaxListItemRunes)
	if got := Truncate(exact, MaxListItemRunes); got != exact {
		t.Errorf("text at the limit must not be truncated")
	}

	over := exact + "b"
	got := Truncate(over, MaxListItemRunes)
	if !strings.HasSuffix(got, Ellipsis) {
		t.Fatalf("expected ellipsis suffix, got %q", got)
	}
	if len([]rune(got)) != MaxListItemRunes {
		t.Errorf("truncated total length: expected %d, got %d", MaxListItemRunes, len([]rune(got)))
	}
	if body := strings.TrimSuffix(got, Ellipsis); len([]rune(body)) != MaxListItemRunes-len(Ellipsis) {
		t.Errorf("truncated content length: expected %d, got %d",
			MaxListItemRunes-len(Ellipsis), len([]rune(body)))
	}
}

func TestSlideBody_ListItemCap(t *testing.T) {
	items := make([]string, 10)
	for i := range items {
		items[i] = fmt.Sprintf("- item %d", i)
	}
	blocks := markdown.Parse(strings.Join(items, "\n"))

	body := newBody()
	SlideBody(blocks, body)
	if got := len(body.Paragraphs()); got != MaxListItems {
		t.Errorf("expected %d paragraphs, got %d", MaxListItems, got)
	}
}

func TestSlideBody_CapDoesNotDropOtherBlocks(t *testing.T) {
	var sb strings.Builder
	for i := 0; i < 8; i++ {
		fmt.Fprintf(&sb, "- item %d\n", i)
	}
	sb.WriteString("\nclosing paragraph")
	blocks := markdown.Parse(sb.String())

	body := newBody()
	SlideBody(blocks, body)
	if !strings.Contains(body.Text(), "closing paragraph") {
		t.Error("paragraph after the list cap should still render")
	}
}

func TestSlideBody_TruncatesLongItems(t *testing.T) {
	long := strings.Repeat("w", 300)
	blocks := markdown.Parse("- " + long)

	body := newBody()
	SlideBody(blocks, body)
	text := body.Text()
	if !strings.HasSuffix(text, Ellipsis) {
		t.Errorf("expected truncated item with marker, got %q", text)
	}
	if len([]rune(text)) != MaxListItemRunes {
		t.Errorf("expected %d runes, got %d", MaxListItemRunes, len([]rune(text)))
	}
}

func TestSlideBody_ParagraphLimit(t *testing.T) {
	long := strings.Repeat("p", 300)
	blocks := markdown.Parse(long)

	body := newBody()
	SlideBody(blocks, body)
	if got := len([]rune(body.Text())); got != MaxParagraphRunes {
		t.Errorf("expected %d runes, got %d", MaxParagraphRunes, got)
	}
}

func TestOverflowed(t *testing.T) {
	body := newBody()
	SlideBody(markdown.Parse("- short item"), body)
	if Overflowed(body) {
		t.Error("short content must not report overflow")
	}

	body2 := newBody()
	SlideBody(markdown.Parse(strings.Repeat("z", 400)), body2)
	if !Overflowed(body2) {
		t.Error("truncated content must report overflow")
	}
}

func TestSlideBody_Idempotent(t *testing.T) {
	blocks := markdown.Parse("### H\n- a\n- b\n\npara text")

	a := newBody()
	SlideBody(blocks, a)
	b := newBody()
	SlideBody(blocks, b)
	if a.Text() != b.Text() {
		t.Error("two renders of the same blocks diverged")
	}
}

func TestSlideBody_FixtureCounts(t *testing.T) {
	blocks := markdown.Parse("### Overview\n- alpha\n- beta\n  - gamma\n1. one\n\nClosing para.")

	body := newBody()
	SlideBody(blocks, body)
	// heading + 3 list items + 1 numbered + blank + paragraph
	if got := len(body.Paragraphs()); got != 7 {
		t.Errorf("expected 7 paragraphs, got %d", got)
	}
	if !strings.Contains(body.Text(), "gamma") {
		t.Error("nested item missing")
	}
}
