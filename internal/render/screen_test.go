package render

import (
	"strings"
	"testing"

	"paperdeck/internal/markdown"
)

func TestScreenHTML_ResultsScenario(t *testing.T) {
	blocks := markdown.Parse("### Results\n- Accuracy: 92%\n- Speed: 10ms\n\nSummary text here.")
	got := ScreenHTML(blocks)

	wantOrder := []string{
		"<h3>Results</h3>",
		"<ul>",
		"<li>Accuracy: 92%</li>",
		"<li>Speed: 10ms</li>",
		"</ul>",
		"<div class=\"spacer\"></div>",
		"<p>Summary text here.</p>",
	}
	pos := 0
	for _, frag := range wantOrder {
		idx := strings.Index(got[pos:], frag)
		if idx < 0 {
			t.Fatalf("fragment %q missing or out of order in:\n%s", frag, got)
		}
		pos += idx + len(frag)
	}
}

func TestScreenHTML_NestedList(t *testing.T) {
	blocks := markdown.Parse("- parent\n  - child\n- second")
	got := ScreenHTML(blocks)

	if strings.Count(got, "<ul>") != 2 {
		t.Errorf("expected nested ul, got:\n%s", got)
	}
	if !strings.Contains(got, "<li>child</li>") {
		t.Errorf("nested item missing:\n%s", got)
	}
}

func TestScreenHTML_NumberedList(t *testing.T) {
	blocks := markdown.Parse("1. first\n2. second")
	got := ScreenHTML(blocks)
	if !strings.Contains(got, "<ol>") || !strings.Contains(got, "</ol>") {
		t.Errorf("expected ordered list:\n%s", got)
	}
	if !strings.Contains(got, "<li value=\"2\">second</li>") {
		t.Errorf("item index lost:\n%s", got)
	}
}

func TestScreenHTML_InlineSpans(t *testing.T) {
	blocks := markdown.Parse("uses **bold**, *em*, `code` and [link](https://example.com)")
	got := ScreenHTML(blocks)

	for _, frag := range []string{
		"<strong>bold</strong>",
		"<em>em</em>",
		"<code>code</code>",
		`<a href="https://example.com">link</a>`,
	} {
		if !strings.Contains(got, frag) {
			t.Errorf("missing %q in:\n%s", frag, got)
		}
	}
}

func TestScreenHTML_EscapesMarkup(t *testing.T) {
	blocks := markdown.Parse("compares a<b and **x>y**")
	got := ScreenHTML(blocks)
	if strings.Contains(got, "a<b") {
		t.Errorf("unescaped text markup:\n%s", got)
	}
	if !strings.Contains(got, "a&lt;b") || !strings.Contains(got, "<strong>x&gt;y</strong>") {
		t.Errorf("expected escaped entities:\n%s", got)
	}
}

func TestScreenHTML_Idempotent(t *testing.T) {
	blocks := markdown.Parse("## Title\n- one\n- two\n\npara")
	first := ScreenHTML(blocks)
	second := ScreenHTML(blocks)
	if first != second {
		t.Error("rendering the same blocks twice diverged")
	}
}

func TestScreenHTML_NoTruncation(t *testing.T) {
	long := strings.Repeat("x", 1000)
	blocks := markdown.Parse("- " + long)
	got := ScreenHTML(blocks)
	if !strings.Contains(got, long) {
		t.Error("screen renderer must not truncate")
	}
}
