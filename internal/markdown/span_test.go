package markdown

import "testing"

func TestFormatInline_Bold(t *testing.T) {
	spans := FormatInline("the **quick** fox")
	if len(spans) != 3 {
		t.Fatalf("expected 3 spans, got %d", len(spans))
	}
	if spans[1].Kind != SpanBold || spans[1].Text != "quick" {
		t.Errorf("expected Bold{quick}, got kind=%d text=%q", spans[1].Kind, spans[1].Text)
	}
	if got := Flatten(spans); got != "the quick fox" {
		t.Errorf("flatten: expected %q, got %q", "the quick fox", got)
	}
}

func TestFormatInline_BoldBeforeItalic(t *testing.T) {
	// "**" must never be read as two "*".
	spans := FormatInline("**bold** and *italic*")
	if len(spans) != 3 {
		t.Fatalf("expected 3 spans, got %d", len(spans))
	}
	if spans[0].Kind != SpanBold || spans[0].Text != "bold" {
		t.Errorf("span[0]: expected Bold{bold}, got kind=%d text=%q", spans[0].Kind, spans[0].Text)
	}
	if spans[2].Kind != SpanItalic || spans[2].Text != "italic" {
		t.Errorf("span[2]: expected Italic{italic}, got kind=%d text=%q", spans[2].Kind, spans[2].Text)
	}
}

func TestFormatInline_UnderscoreMarkers(t *testing.T) {
	spans := FormatInline("__strong__ _soft_")
	if len(spans) != 3 {
		t.Fatalf("expected 3 spans, got %d", len(spans))
	}
	if spans[0].Kind != SpanBold || spans[0].Text != "strong" {
		t.Errorf("span[0]: expected Bold{strong}, got kind=%d text=%q", spans[0].Kind, spans[0].Text)
	}
	if spans[2].Kind != SpanItalic || spans[2].Text != "soft" {
		t.Errorf("span[2]: expected Italic{soft}, got kind=%d text=%q", spans[2].Kind, spans[2].Text)
	}
}

func TestFormatInline_Code(t *testing.T) {
	spans := FormatInline("run `go vet` first")
	if len(spans) != 3 {
		t.Fatalf("expected 3 spans, got %d", len(spans))
	}
	if spans[1].Kind != SpanCode || spans[1].Text != "go vet" {
		t.Errorf("expected Code{go vet}, got kind=%d text=%q", spans[1].Kind, spans[1].Text)
	}
}

func TestFormatInline_Link(t *testing.T) {
	spans := FormatInline("see [the paper](https://arxiv.org/abs/1234.5678) for details")
	if len(spans) != 3 {
		t.Fatalf("expected 3 spans, got %d", len(spans))
	}
	if spans[1].Kind != SpanLink || spans[1].Text != "the paper" || spans[1].URL != "https://arxiv.org/abs/1234.5678" {
		t.Errorf("unexpected link span: %+v", spans[1])
	}
}

func TestFormatInline_LoneMarkerIsLiteral(t *testing.T) {
	spans := FormatInline("5 * 3 = 15")
	if len(spans) != 1 {
		t.Fatalf("expected 1 span, got %d", len(spans))
	}
	if spans[0].Kind != SpanPlain || spans[0].Text != "5 * 3 = 15" {
		t.Errorf("lone marker should stay literal, got %+v", spans[0])
	}
}

func TestFormatInline_UnbalancedBold(t *testing.T) {
	spans := FormatInline("**dangling marker")
	if got := Flatten(spans); got != "**dangling marker" {
		t.Errorf("expected literal passthrough, got %q", got)
	}
	for _, s := range spans {
		if s.Kind != SpanPlain {
			t.Errorf("expected only plain spans, got kind=%d", s.Kind)
		}
	}
}

func TestFormatInline_NoNestedRescan(t *testing.T) {
	// A bold span's content is not re-scanned for italic.
	spans := FormatInline("**outer *inner* text**")
	if len(spans) != 1 {
		t.Fatalf("expected 1 span, got %d", len(spans))
	}
	if spans[0].Kind != SpanBold || spans[0].Text != "outer *inner* text" {
		t.Errorf("unexpected span: %+v", spans[0])
	}
}

func TestFormatInline_Empty(t *testing.T) {
	if spans := FormatInline(""); spans != nil {
		t.Errorf("expected nil spans for empty input, got %v", spans)
	}
}

func TestFormatInline_NoStrayMarkers(t *testing.T) {
	spans := FormatInline("a **b** c `d` e")
	for _, s := range spans {
		if s.Kind == SpanPlain {
			continue
		}
		for _, r := range s.Text {
			if r == '*' || r == '`' {
				t.Errorf("marker character leaked into span %+v", s)
			}
		}
	}
	if got := Flatten(spans); got != "a b c d e" {
		t.Errorf("flatten: expected %q, got %q", "a b c d e", got)
	}
}
