// Package deck assembles a paper analysis into a PPTX presentation:
// cover slide, one slide per non-empty section (with bounded
// continuation slides on overflow), and a closing Q&A slide.
package deck

import (
	"errors"
	"strings"

	"paperdeck/internal/markdown"
	"paperdeck/internal/paper"
	"paperdeck/internal/pptx"
	"paperdeck/internal/render"
)

// ErrNoContent is returned when every field of the document is empty;
// no deck is produced in that case.
var ErrNoContent = errors.New("no content available for slides")

type section struct {
	title     string
	text      string
	maxSlides int
}

// plan builds the fixed section order. Empty sections are skipped by
// Build, never emitted as blank slides.
func plan(doc paper.Document) []section {
	introduction := doc.Introduction
	if strings.TrimSpace(introduction) == "" {
		introduction = doc.Abstract
	}
	overview, details := SplitMethodology(doc.Methodology)
	setup, results := SplitExperiments(doc.Experiments)

	var closing strings.Builder
	if strings.TrimSpace(doc.Conclusion) != "" {
		closing.WriteString("### Conclusion\n\n" + doc.Conclusion + "\n\n")
	}
	if strings.TrimSpace(doc.FutureWork) != "" {
		closing.WriteString("### Future Work\n\n" + doc.FutureWork)
	}

	return []section{
		{"Introduction & Related Work", introduction, 2},
		{"Motivation", doc.Motivation, 2},
		{"Key Contributions", doc.Contribution, 2},
		{"Methodology Overview", overview, 2},
		{"Technical Details", details, 2},
		{"Experimental Setup", setup, 2},
		{"Quantitative Results", results, 2},
		{"Limitations & Discussion", doc.Limitations, 1},
		{"Conclusion & Future Work", closing.String(), 2},
	}
}

// Build assembles the full deck. The document must have at least one
// non-empty field.
func Build(doc paper.Document, meta paper.Metadata) (*pptx.Presentation, error) {
	if doc.Empty() {
		return nil, ErrNoContent
	}
	meta.ApplyDefaults()

	pres := pptx.New()
	addCover(pres, meta)

	for _, sec := range plan(doc) {
		if strings.TrimSpace(sec.text) == "" {
			continue
		}
		addSection(pres, sec)
	}

	addClosing(pres)
	return pres, nil
}

// addSection renders one section slide and, while the body still ends
// in the truncation marker, up to maxSlides-1 continuation slides.
// Each continuation re-renders the entire section text into a fresh
// body rather than resuming past the cut.
func addSection(pres *pptx.Presentation, sec section) {
	blocks := markdown.Parse(sec.text)

	body := addTitledSlide(pres, sec.title)
	render.SlideBody(blocks, body)

	for n := 1; n < sec.maxSlides && render.Overflowed(body); n++ {
		body = addTitledSlide(pres, "(Continued)")
		render.SlideBody(blocks, body)
	}
}

// addTitledSlide creates a slide with the standard header bar and
// returns its empty body text box.
func addTitledSlide(pres *pptx.Presentation, title string) *pptx.TextBox {
	slide := pres.AddSlide()

	slide.AddRect(0, 0, 10, 1, render.ColorPrimary)
	titleBox := slide.AddTextBox(0.5, 0.2, 9, 0.6)
	titleBox.AddParagraph().AddRun(title).Size(32).Bold().Color("FFFFFF")

	return slide.AddTextBox(0.5, 1.3, 9, 5.7)
}

func addCover(pres *pptx.Presentation, meta paper.Metadata) {
	slide := pres.AddSlide()

	slide.AddRect(0, 0, 10, 1.5, render.ColorPrimary)

	titleBox := slide.AddTextBox(0.5, 0.3, 9, 1)
	titleBox.AddParagraph().Align("ctr").
		AddRun(meta.Title).Size(28).Bold().Color("FFFFFF")

	authors := meta.Authors
	if len([]rune(authors)) > 80 {
		authors = render.Truncate(authors, 80)
	}
	authorsBox := slide.AddTextBox(0.5, 2.2, 9, 0.4)
	authorsBox.AddParagraph().Align("ctr").
		AddRun("Authors: " + authors).Size(16).Color(render.ColorText)

	venueBox := slide.AddTextBox(0.5, 2.7, 9, 0.3)
	venueBox.AddParagraph().Align("ctr").
		AddRun(meta.Venue + " " + meta.Year).Size(14).Color(render.ColorSecondary)

	if meta.PaperURL != "" {
		urlBox := slide.AddTextBox(0.5, 3.1, 9, 0.3)
		urlBox.AddParagraph().Align("ctr").
			AddRun(meta.PaperURL).Size(10).Color(render.ColorMutedGray)
	}

	// Divider line between paper info and presenter info.
	slide.AddRect(2, 3.8, 6, 0.02, render.ColorSecondary)

	presenterBox := slide.AddTextBox(0.5, 4.5, 9, 0.5)
	presenterBox.AddParagraph().Align("ctr").
		AddRun("Presented by: "+meta.Presenter+" ("+meta.PresenterID+")").
		Size(18).Color(render.ColorText)
}

func addClosing(pres *pptx.Presentation) {
	slide := pres.AddSlide()

	slide.AddRect(0, 0, 10, 1, render.ColorPrimary)

	thanksBox := slide.AddTextBox(0.5, 2.8, 9, 1)
	thanksBox.AddParagraph().Align("ctr").
		AddRun("Thank You!").Size(40).Bold().Color(render.ColorPrimary)

	qaBox := slide.AddTextBox(0.5, 4, 9, 0.6)
	qaBox.AddParagraph().Align("ctr").
		AddRun("Questions & Discussion").Size(20).Color(render.ColorText)
}
