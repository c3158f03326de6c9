package api

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"paperdeck/internal/analyze"
	"paperdeck/internal/config"
	"paperdeck/internal/paper"
	"paperdeck/internal/store"
)

// Analyzer turns extracted paper text into a structured summary.
type Analyzer interface {
	Analyze(ctx context.Context, paperText string) (paper.Document, error)
	Stats() analyze.StatsSnapshot
}

// Server is the HTTP API server for paperdeck.
type Server struct {
	router   chi.Router
	store    *store.Store
	analyzer Analyzer
	log      *slog.Logger
	cfg      config.Config
}

// NewServer creates and configures the HTTP server.
func NewServer(st *store.Store, analyzer Analyzer, log *slog.Logger, cfg config.Config) *Server {
	s := &Server{
		store:    st,
		analyzer: analyzer,
		log:      log,
		cfg:      cfg,
	}
	s.setupRoutes()
	return s
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func (s *Server) setupRoutes() {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestID)
	r.Use(RequestLogger(s.log))

	// Public endpoints.
	r.Get("/health", s.handleHealth)

	// Authenticated endpoints.
	r.Group(func(r chi.Router) {
		r.Use(AuthMiddleware(s.cfg.APIKey, s.log))

		r.Post("/api/analyses", s.handleCreateAnalysis)
		r.Get("/api/analyses", s.handleListAnalyses)
		r.Get("/api/analyses/{analysisID}", s.handleGetAnalysis)
		r.Delete("/api/analyses/{analysisID}", s.handleDeleteAnalysis)

		r.Get("/api/analyses/{analysisID}/slides", s.handleExportSlides)
		r.Get("/api/analyses/{analysisID}/report", s.handleExportReport)

		r.Get("/api/stats/llm", s.handleLLMStats)
	})

	s.router = r
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.Write([]byte(`{"status":"ok"}`))
}
