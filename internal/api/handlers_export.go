package api

import (
	"bytes"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"paperdeck/internal/deck"
	"paperdeck/internal/paper"
	"paperdeck/internal/report"
)

const (
	pptxContentType = "application/vnd.openxmlformats-officedocument.presentationml.presentation"
	docxContentType = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
)

func (s *Server) handleExportSlides(w http.ResponseWriter, r *http.Request) {
	rec, ok := s.loadRecord(w, r)
	if !ok {
		return
	}

	meta := rec.Metadata
	applyQueryOverrides(&meta, r)

	pres, err := deck.Build(rec.Document, meta)
	if errors.Is(err, deck.ErrNoContent) {
		jsonError(w, "analysis has no content to present", http.StatusUnprocessableEntity)
		return
	}
	if err != nil {
		jsonError(w, "failed to build slides: "+err.Error(), http.StatusInternalServerError)
		return
	}

	// Serialize to a buffer first so failures don't leave a partial body.
	var buf bytes.Buffer
	if _, err := pres.WriteTo(&buf); err != nil {
		jsonError(w, "failed to write slides: "+err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", pptxContentType)
	w.Header().Set("Content-Disposition", attachment(rec.Title, "pptx"))
	w.Header().Set("Content-Length", fmt.Sprintf("%d", buf.Len()))
	w.Write(buf.Bytes())
}

func (s *Server) handleExportReport(w http.ResponseWriter, r *http.Request) {
	rec, ok := s.loadRecord(w, r)
	if !ok {
		return
	}

	var buf bytes.Buffer
	err := report.Write(&buf, rec.Document, rec.Title)
	if errors.Is(err, report.ErrNoContent) {
		jsonError(w, "analysis has no content to report", http.StatusUnprocessableEntity)
		return
	}
	if err != nil {
		jsonError(w, "failed to write report: "+err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", docxContentType)
	w.Header().Set("Content-Disposition", attachment(rec.Title, "docx"))
	w.Header().Set("Content-Length", fmt.Sprintf("%d", buf.Len()))
	w.Write(buf.Bytes())
}

// applyQueryOverrides lets export query parameters replace stored
// metadata for one download. student_id is accepted as an alias for
// presenter_id.
func applyQueryOverrides(meta *paper.Metadata, r *http.Request) {
	q := r.URL.Query()
	if v := q.Get("title"); v != "" {
		meta.Title = v
	}
	if v := q.Get("authors"); v != "" {
		meta.Authors = v
	}
	if v := q.Get("venue"); v != "" {
		meta.Venue = v
	}
	if v := q.Get("year"); v != "" {
		meta.Year = v
	}
	if v := q.Get("paper_url"); v != "" {
		meta.PaperURL = v
	}
	if v := q.Get("presenter"); v != "" {
		meta.Presenter = v
	}
	if v := q.Get("presenter_id"); v != "" {
		meta.PresenterID = v
	} else if v := q.Get("student_id"); v != "" {
		meta.PresenterID = v
	}
}

// attachment builds a Content-Disposition value with a safe filename.
func attachment(title, ext string) string {
	name := strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			return r
		case r == ' ', r == '-', r == '_':
			return '_'
		}
		return -1
	}, title)
	if name == "" {
		name = "analysis"
	}
	if len(name) > 60 {
		name = name[:60]
	}
	return fmt.Sprintf("attachment; filename=%q", name+"."+ext)
}
