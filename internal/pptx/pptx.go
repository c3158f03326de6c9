// Package pptx writes minimal PowerPoint (.pptx) files: blank-layout
// slides holding filled rectangles and text boxes. A .pptx is a zip of
// OOXML parts; the static scaffolding (master, layout, theme) is fixed
// and only the slide parts are generated per deck.
package pptx

import "strings"

// EMU per inch and per point, the OOXML coordinate units.
const (
	emuPerInch  = 914400
	emuPerPoint = 12700
)

// Presentation is an in-memory deck. Slides render 10 x 7.5 inches.
type Presentation struct {
	slides []*Slide
}

func New() *Presentation {
	return &Presentation{}
}

func (p *Presentation) AddSlide() *Slide {
	s := &Slide{}
	p.slides = append(p.slides, s)
	return s
}

func (p *Presentation) SlideCount() int {
	return len(p.slides)
}

func (p *Presentation) Slides() []*Slide {
	return p.slides
}

// Slide holds shapes in z-order.
type Slide struct {
	rects     []rect
	textBoxes []*TextBox
	order     []shapeRef
}

type shapeKind int

const (
	shapeRect shapeKind = iota
	shapeTextBox
)

type shapeRef struct {
	kind  shapeKind
	index int
}

type rect struct {
	x, y, w, h float64
	fill       string
}

// AddRect places a filled rectangle. Coordinates are in inches, fill
// is an RRGGBB hex string.
func (s *Slide) AddRect(x, y, w, h float64, fill string) {
	s.order = append(s.order, shapeRef{shapeRect, len(s.rects)})
	s.rects = append(s.rects, rect{x, y, w, h, fill})
}

// AddTextBox places an empty word-wrapped text box, in inches.
func (s *Slide) AddTextBox(x, y, w, h float64) *TextBox {
	tb := &TextBox{x: x, y: y, w: w, h: h}
	s.order = append(s.order, shapeRef{shapeTextBox, len(s.textBoxes)})
	s.textBoxes = append(s.textBoxes, tb)
	return tb
}

func (s *Slide) TextBoxes() []*TextBox {
	return s.textBoxes
}

// TextBox is a positioned frame of paragraphs.
type TextBox struct {
	x, y, w, h float64
	paras      []*Paragraph
}

func (t *TextBox) AddParagraph() *Paragraph {
	p := &Paragraph{}
	t.paras = append(t.paras, p)
	return p
}

func (t *TextBox) Paragraphs() []*Paragraph {
	return t.paras
}

// Text returns the frame's full text, paragraphs joined by newlines.
func (t *TextBox) Text() string {
	lines := make([]string, len(t.paras))
	for i, p := range t.paras {
		lines[i] = p.Text()
	}
	return strings.Join(lines, "\n")
}

// Paragraph carries runs plus paragraph-level formatting. Setters
// chain, mirroring how run properties are set.
type Paragraph struct {
	runs        []*Run
	align       string
	bullet      bool
	level       int
	spaceBefore int
	spaceAfter  int
}

// Align sets alignment: "ctr", "just", "r", or "" for default left.
func (p *Paragraph) Align(v string) *Paragraph {
	p.align = v
	return p
}

// Bullet marks the paragraph as a bulleted list item at the given
// nesting level (0 or 1).
func (p *Paragraph) Bullet(level int) *Paragraph {
	p.bullet = true
	p.level = level
	return p
}

// SpaceBefore sets spacing before the paragraph, in points.
func (p *Paragraph) SpaceBefore(pts int) *Paragraph {
	p.spaceBefore = pts
	return p
}

// SpaceAfter sets spacing after the paragraph, in points.
func (p *Paragraph) SpaceAfter(pts int) *Paragraph {
	p.spaceAfter = pts
	return p
}

func (p *Paragraph) AddRun(text string) *Run {
	r := &Run{text: text, size: 18}
	p.runs = append(p.runs, r)
	return r
}

func (p *Paragraph) Runs() []*Run {
	return p.runs
}

func (p *Paragraph) Text() string {
	var sb strings.Builder
	for _, r := range p.runs {
		sb.WriteString(r.text)
	}
	return sb.String()
}

// Run is one uniformly formatted stretch of text.
type Run struct {
	text   string
	size   int
	bold   bool
	italic bool
	mono   bool
	color  string
}

// Size sets the font size in points.
func (r *Run) Size(pts int) *Run {
	r.size = pts
	return r
}

func (r *Run) Bold() *Run {
	r.bold = true
	return r
}

func (r *Run) Italic() *Run {
	r.italic = true
	return r
}

// Mono switches the run to a monospace font.
func (r *Run) Mono() *Run {
	r.mono = true
	return r
}

// Color sets the font color as an RRGGBB hex string.
func (r *Run) Color(hex string) *Run {
	r.color = hex
	return r
}

func (r *Run) Text() string {
	return r.text
}
