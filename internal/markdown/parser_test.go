package markdown

import "testing"

func kinds(blocks []Block) []BlockKind {
	out := make([]BlockKind, len(blocks))
	for i, b := range blocks {
		out[i] = b.Kind
	}
	return out
}

func TestParse_SingleBullet(t *testing.T) {
	blocks := Parse("- item with **bold** text")
	if len(blocks) != 1 {
		t.Fatalf("expected 1 block, got %d", len(blocks))
	}
	b := blocks[0]
	if b.Kind != BlockBullet || b.Depth != 0 {
		t.Fatalf("expected depth-0 bullet, got kind=%d depth=%d", b.Kind, b.Depth)
	}
	if got := b.Text(); got != "item with bold text" {
		t.Errorf("expected %q, got %q", "item with bold text", got)
	}
}

func TestParse_ResultsScenario(t *testing.T) {
	input := "### Results\n- Accuracy: 92%\n- Speed: 10ms\n\nSummary text here."
	blocks := Parse(input)
	if len(blocks) != 5 {
		t.Fatalf("expected 5 blocks, got %d: %v", len(blocks), kinds(blocks))
	}

	if blocks[0].Kind != BlockHeading || blocks[0].Level != 3 || blocks[0].Text() != "Results" {
		t.Errorf("block 0: expected Heading(3, Results), got %+v", blocks[0])
	}
	if blocks[1].Kind != BlockBullet || blocks[1].Text() != "Accuracy: 92%" {
		t.Errorf("block 1: expected BulletItem(Accuracy: 92%%), got %+v", blocks[1])
	}
	if blocks[2].Kind != BlockBullet || blocks[2].Text() != "Speed: 10ms" {
		t.Errorf("block 2: expected BulletItem(Speed: 10ms), got %+v", blocks[2])
	}
	if blocks[3].Kind != BlockBlank {
		t.Errorf("block 3: expected Blank, got %+v", blocks[3])
	}
	if blocks[4].Kind != BlockParagraph || blocks[4].Text() != "Summary text here." {
		t.Errorf("block 4: expected Paragraph(Summary text here.), got %+v", blocks[4])
	}
}

func TestParse_NestedBullets(t *testing.T) {
	input := "- top one\n  - nested\n- top two"
	blocks := Parse(input)
	if len(blocks) != 3 {
		t.Fatalf("expected 3 blocks, got %d", len(blocks))
	}
	wantDepths := []int{0, 1, 0}
	for i, b := range blocks {
		if b.Kind != BlockBullet {
			t.Errorf("block %d: expected bullet, got kind=%d", i, b.Kind)
		}
		if b.Depth != wantDepths[i] {
			t.Errorf("block %d: expected depth %d, got %d", i, wantDepths[i], b.Depth)
		}
	}
}

func TestParse_DeepNestingClamped(t *testing.T) {
	input := "- a\n  - b\n      - c"
	blocks := Parse(input)
	if len(blocks) != 3 {
		t.Fatalf("expected 3 blocks, got %d", len(blocks))
	}
	if blocks[2].Depth != 1 {
		t.Errorf("deeper indentation should clamp to depth 1, got %d", blocks[2].Depth)
	}
}

func TestParse_BlankEndsNestedRun(t *testing.T) {
	input := "- top\n\n  - not nested anymore"
	blocks := Parse(input)
	if len(blocks) != 3 {
		t.Fatalf("expected 3 blocks, got %d: %v", len(blocks), kinds(blocks))
	}
	if blocks[1].Kind != BlockBlank {
		t.Errorf("expected blank between runs, got kind=%d", blocks[1].Kind)
	}
	if blocks[2].Kind != BlockBullet || blocks[2].Depth != 0 {
		t.Errorf("bullet after blank restarts at depth 0, got %+v", blocks[2])
	}
}

func TestParse_NumberedList(t *testing.T) {
	input := "1. first\n2. second\n10. tenth"
	blocks := Parse(input)
	if len(blocks) != 3 {
		t.Fatalf("expected 3 blocks, got %d", len(blocks))
	}
	wantIdx := []int{1, 2, 10}
	for i, b := range blocks {
		if b.Kind != BlockNumbered {
			t.Errorf("block %d: expected numbered item, got kind=%d", i, b.Kind)
		}
		if b.Index != wantIdx[i] {
			t.Errorf("block %d: expected index %d, got %d", i, wantIdx[i], b.Index)
		}
	}
}

func TestParse_NumberedNestedUnderBullet(t *testing.T) {
	input := "- parent\n  1. child"
	blocks := Parse(input)
	if len(blocks) != 2 {
		t.Fatalf("expected 2 blocks, got %d", len(blocks))
	}
	if blocks[1].Kind != BlockNumbered || blocks[1].Depth != 1 || blocks[1].Index != 1 {
		t.Errorf("expected depth-1 numbered item, got %+v", blocks[1])
	}
}

func TestParse_ParagraphJoining(t *testing.T) {
	input := "First line\nsecond line\nthird line.\n\nNext para."
	blocks := Parse(input)
	if len(blocks) != 3 {
		t.Fatalf("expected 3 blocks, got %d", len(blocks))
	}
	if got := blocks[0].Text(); got != "First line second line third line." {
		t.Errorf("expected space-joined paragraph, got %q", got)
	}
	if blocks[2].Text() != "Next para." {
		t.Errorf("expected second paragraph, got %q", blocks[2].Text())
	}
}

func TestParse_ParagraphEndsAtListMarker(t *testing.T) {
	input := "Intro text\n- bullet"
	blocks := Parse(input)
	if len(blocks) != 2 {
		t.Fatalf("expected 2 blocks, got %d", len(blocks))
	}
	if blocks[0].Kind != BlockParagraph || blocks[1].Kind != BlockBullet {
		t.Errorf("expected paragraph then bullet, got %v", kinds(blocks))
	}
}

func TestParse_HeadingLevels(t *testing.T) {
	blocks := Parse("## Section\n### Subsection")
	if len(blocks) != 2 {
		t.Fatalf("expected 2 blocks, got %d", len(blocks))
	}
	if blocks[0].Level != 2 || blocks[1].Level != 3 {
		t.Errorf("expected levels 2 and 3, got %d and %d", blocks[0].Level, blocks[1].Level)
	}
}

func TestParse_SingleHashIsNotHeading(t *testing.T) {
	blocks := Parse("# not a subset heading")
	if len(blocks) != 1 || blocks[0].Kind != BlockParagraph {
		t.Fatalf("expected lone paragraph, got %v", kinds(blocks))
	}
}

func TestParse_FourHashesParseAsLevelThree(t *testing.T) {
	// The heading pattern consumes at most three hashes; any extras
	// stay in the heading text.
	blocks := Parse("#### Deep Section")
	if len(blocks) != 1 || blocks[0].Kind != BlockHeading {
		t.Fatalf("expected 1 heading, got %v", kinds(blocks))
	}
	if blocks[0].Level != 3 {
		t.Errorf("expected level 3, got %d", blocks[0].Level)
	}
	if got := blocks[0].Text(); got != "# Deep Section" {
		t.Errorf("expected leftover hash in text, got %q", got)
	}
}

func TestParse_CodeFence(t *testing.T) {
	input := "```\nx := 1\ny := 2\n```\nafter"
	blocks := Parse(input)
	if len(blocks) != 2 {
		t.Fatalf("expected 2 blocks, got %d", len(blocks))
	}
	if blocks[0].Kind != BlockCode || len(blocks[0].Lines) != 2 {
		t.Fatalf("expected code block with 2 lines, got %+v", blocks[0])
	}
	if blocks[0].Lines[0] != "x := 1" {
		t.Errorf("code line kept verbatim, got %q", blocks[0].Lines[0])
	}
	if blocks[1].Kind != BlockParagraph {
		t.Errorf("expected trailing paragraph, got kind=%d", blocks[1].Kind)
	}
}

func TestParse_UnterminatedFence(t *testing.T) {
	blocks := Parse("~~~\nline one\nline two")
	if len(blocks) != 1 {
		t.Fatalf("expected 1 block, got %d", len(blocks))
	}
	if blocks[0].Kind != BlockCode || len(blocks[0].Lines) != 2 {
		t.Errorf("unterminated fence should emit remaining lines, got %+v", blocks[0])
	}
}

func TestParse_FixtureCounts(t *testing.T) {
	input := "### Overview\n- alpha\n- beta\n  - gamma\n1. one\n2. two\n\nClosing paragraph."
	blocks := Parse(input)

	var headings, top, nested, numbered, paras int
	for _, b := range blocks {
		switch b.Kind {
		case BlockHeading:
			headings++
		case BlockBullet:
			if b.Depth == 0 {
				top++
			} else {
				nested++
			}
		case BlockNumbered:
			numbered++
		case BlockParagraph:
			paras++
		}
	}
	if headings != 1 || top != 2 || nested != 1 || numbered != 2 || paras != 1 {
		t.Errorf("counts: headings=%d top=%d nested=%d numbered=%d paras=%d",
			headings, top, nested, numbered, paras)
	}

	// Order is the source line order.
	want := []BlockKind{BlockHeading, BlockBullet, BlockBullet, BlockBullet,
		BlockNumbered, BlockNumbered, BlockBlank, BlockParagraph}
	got := kinds(blocks)
	if len(got) != len(want) {
		t.Fatalf("expected %d blocks, got %d", len(want), len(got))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("block %d: expected kind %d, got %d", i, want[i], got[i])
		}
	}
}

func TestParse_EmptyInput(t *testing.T) {
	blocks := Parse("")
	if len(blocks) != 1 || blocks[0].Kind != BlockBlank {
		t.Errorf("empty input is one blank line, got %v", kinds(blocks))
	}
}
