// Package report assembles a paper analysis into a single DOCX
// document: a title, then each non-empty field as a section heading
// followed by its rendered blocks. The docx engine paginates on its
// own as content accumulates.
package report

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/fumiama/go-docx"

	"paperdeck/internal/markdown"
	"paperdeck/internal/paper"
	"paperdeck/internal/render"
)

// ErrNoContent is returned when every field of the document is empty.
var ErrNoContent = errors.New("no content available for report")

// Build assembles the report document. Empty fields are skipped
// entirely, heading included.
func Build(doc paper.Document, title string) (*docx.Docx, error) {
	if doc.Empty() {
		return nil, ErrNoContent
	}
	if strings.TrimSpace(title) == "" {
		title = "Paper Analysis Report"
	}

	w := docx.New().WithDefaultTheme()

	tp := w.AddParagraph().Justification("center")
	tp.AddText(title).Size("36").Bold().Color(render.ColorPrimary)
	w.AddParagraph()

	for _, name := range paper.FieldNames {
		text := doc.Field(name)
		if strings.TrimSpace(text) == "" {
			continue
		}

		hp := w.AddParagraph()
		hp.AddText(paper.FieldTitles[name]).Size("32").Bold().Color(render.ColorPrimary)

		render.DocumentBlocks(w, markdown.Parse(text))

		// Fixed spacing between sections.
		w.AddParagraph()
	}

	return w, nil
}

// Write assembles the report and serializes it. Serialization
// failures are wrapped with the assembler context; nothing is written
// on a precondition failure.
func Write(out io.Writer, doc paper.Document, title string) error {
	w, err := Build(doc, title)
	if err != nil {
		return err
	}
	if _, err := w.WriteTo(out); err != nil {
		return fmt.Errorf("report: serialize docx: %w", err)
	}
	return nil
}
