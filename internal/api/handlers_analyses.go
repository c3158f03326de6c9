package api

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"html"
	"io"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/go-chi/chi/v5"

	"paperdeck/internal/markdown"
	"paperdeck/internal/paper"
	"paperdeck/internal/parser"
	"paperdeck/internal/render"
	"paperdeck/internal/store"
)

// MinTextChars is the minimum extracted text length worth analyzing.
const MinTextChars = 100

func (s *Server) handleCreateAnalysis(w http.ResponseWriter, r *http.Request) {
	// Limit total request size.
	r.Body = http.MaxBytesReader(w, r.Body, s.cfg.MaxUploadBytes+1024*1024) // extra 1MB for form overhead

	if err := r.ParseMultipartForm(32 << 20); err != nil {
		jsonError(w, "invalid multipart form: "+err.Error(), http.StatusBadRequest)
		return
	}
	defer r.MultipartForm.RemoveAll()

	userID := r.FormValue("user_id")
	if userID == "" {
		jsonError(w, "user_id is required", http.StatusBadRequest)
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		jsonError(w, "file is required: "+err.Error(), http.StatusBadRequest)
		return
	}
	defer file.Close()

	filename := sanitizeFilename(header.Filename)
	if !parser.IsSupportedExtension(filename) {
		jsonError(w, fmt.Sprintf("unsupported file type: %s", filepath.Ext(filename)), http.StatusBadRequest)
		return
	}

	data, err := io.ReadAll(io.LimitReader(file, s.cfg.MaxUploadBytes+1))
	if err != nil {
		jsonError(w, "failed to read file", http.StatusInternalServerError)
		return
	}
	if int64(len(data)) > s.cfg.MaxUploadBytes {
		jsonError(w, fmt.Sprintf("file exceeds max size (%d bytes)", s.cfg.MaxUploadBytes), http.StatusRequestEntityTooLarge)
		return
	}

	p, err := parser.ForFile(filename)
	if err != nil {
		jsonError(w, err.Error(), http.StatusBadRequest)
		return
	}
	if pdfP, ok := p.(*parser.PDFParser); ok {
		pdfP.FallbackPdftotext = s.cfg.PDFFallbackPdftotext
	}

	text, err := p.Parse(bytes.NewReader(data), filename)
	if err != nil {
		jsonError(w, "failed to parse file: "+err.Error(), http.StatusBadRequest)
		return
	}
	if len(strings.TrimSpace(text)) < MinTextChars {
		jsonError(w, "unable to extract sufficient text from the file", http.StatusUnprocessableEntity)
		return
	}

	meta := paper.GuessMetadata(text, filename)
	applyMetadataOverrides(&meta, r)

	doc, err := s.analyzer.Analyze(r.Context(), text)
	if err != nil {
		s.log.Error("analysis failed", "filename", filename, "error", err)
		jsonError(w, "analysis failed: "+err.Error(), http.StatusBadGateway)
		return
	}
	if doc.Empty() {
		jsonError(w, "analysis produced no content", http.StatusBadGateway)
		return
	}

	rec := &store.Record{
		ID:       store.NewID(),
		UserID:   userID,
		Title:    meta.Title,
		Filename: filename,
		Document: doc,
		Metadata: meta,
	}
	if err := s.store.Save(r.Context(), rec); err != nil {
		s.log.Error("save failed", "id", rec.ID, "error", err)
		jsonError(w, "failed to save analysis", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(rec)
}

// applyMetadataOverrides lets form fields replace guessed metadata.
func applyMetadataOverrides(meta *paper.Metadata, r *http.Request) {
	if v := r.FormValue("title"); v != "" {
		meta.Title = v
	}
	if v := r.FormValue("authors"); v != "" {
		meta.Authors = v
	}
	if v := r.FormValue("venue"); v != "" {
		meta.Venue = v
	}
	if v := r.FormValue("year"); v != "" {
		meta.Year = v
	}
	if v := r.FormValue("paper_url"); v != "" {
		meta.PaperURL = v
	}
	if v := r.FormValue("presenter"); v != "" {
		meta.Presenter = v
	}
	if v := r.FormValue("presenter_id"); v != "" {
		meta.PresenterID = v
	}
}

func (s *Server) handleListAnalyses(w http.ResponseWriter, r *http.Request) {
	userID := r.URL.Query().Get("user_id")

	recs, err := s.store.List(r.Context(), userID)
	if err != nil {
		jsonError(w, "failed to list analyses: "+err.Error(), http.StatusInternalServerError)
		return
	}

	summaries := make([]map[string]any, 0, len(recs))
	for _, rec := range recs {
		summaries = append(summaries, map[string]any{
			"id":         rec.ID,
			"user_id":    rec.UserID,
			"title":      rec.Title,
			"filename":   rec.Filename,
			"created_at": rec.CreatedAt,
		})
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]any{"analyses": summaries})
}

func (s *Server) handleGetAnalysis(w http.ResponseWriter, r *http.Request) {
	rec, ok := s.loadRecord(w, r)
	if !ok {
		return
	}

	if r.URL.Query().Get("format") == "html" {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		io.WriteString(w, analysisHTML(rec))
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(rec)
}

// analysisHTML renders the stored document as an HTML fragment, one
// section per non-empty field.
func analysisHTML(rec *store.Record) string {
	var sb strings.Builder
	sb.WriteString("<article class=\"analysis\">\n")
	sb.WriteString("<h1>" + html.EscapeString(rec.Title) + "</h1>\n")
	for _, name := range paper.FieldNames {
		text := rec.Document.Field(name)
		if strings.TrimSpace(text) == "" {
			continue
		}
		sb.WriteString("<section>\n<h2>" + html.EscapeString(paper.FieldTitles[name]) + "</h2>\n")
		sb.WriteString(render.ScreenHTML(markdown.Parse(text)))
		sb.WriteString("</section>\n")
	}
	sb.WriteString("</article>\n")
	return sb.String()
}

func (s *Server) handleDeleteAnalysis(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "analysisID")
	err := s.store.Delete(r.Context(), id)
	if errors.Is(err, store.ErrNotFound) {
		jsonError(w, "analysis not found", http.StatusNotFound)
		return
	}
	if err != nil {
		jsonError(w, "failed to delete analysis: "+err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"deleted": id})
}

// loadRecord fetches the record named in the URL, writing the error
// response itself when the lookup fails.
func (s *Server) loadRecord(w http.ResponseWriter, r *http.Request) (*store.Record, bool) {
	id := chi.URLParam(r, "analysisID")
	rec, err := s.store.Get(r.Context(), id)
	if errors.Is(err, store.ErrNotFound) {
		jsonError(w, "analysis not found", http.StatusNotFound)
		return nil, false
	}
	if err != nil {
		jsonError(w, "failed to load analysis: "+err.Error(), http.StatusInternalServerError)
		return nil, false
	}
	return rec, true
}

func jsonError(w http.ResponseWriter, msg string, code int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(map[string]string{"error": msg})
}

func sanitizeFilename(name string) string {
	// Strip path components, keep only the base name.
	name = filepath.Base(name)
	name = strings.ReplaceAll(name, "/", "_")
	name = strings.ReplaceAll(name, "\\", "_")
	name = strings.ReplaceAll(name, "..", "_")
	if name == "" || name == "." {
		name = "unnamed"
	}
	return name
}
