package api

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/jmatteson/profilegen/internal/config"
	"github.com/jmatteson/profilegen/internal/pipeline"
	"github.com/jmatteson/profilegen/internal/profile"
)

// Server is the HTTP API server for profilegen.
type Server struct {
	router       chi.Router
	orchestrator *pipeline.Orchestrator
	stats        *profile.ParseStats
	log          *slog.Logger
	cfg          config.Config
}

// NewServer creates and configures the HTTP server.
func NewServer(orch *pipeline.Orchestrator, stats *profile.ParseStats, log *slog.Logger, cfg config.Config) *Server {
	s := &Server{
		orchestrator: orch,
		stats:        stats,
		log:          log,
		cfg:          cfg,
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

		r.Post("/api/profile/parse", s.handleParse)
		r.Post("/api/profile/upload", s.handleUpload)
		r.Post("/api/profile/batch", s.handleBatch)
		r.Get("/api/profile/jobs/{jobID}", s.handleJobStatus)

		r.Post("/api/profile/preview", s.handlePreview)
		r.Post("/api/profile/export/docx", s.handleExportDOCX)

		r.Get("/api/stats/parse", s.handleParseStats)
	})

	s.router = r
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.Write([]byte(`{"status":"ok"}`))
}
