package api

import (
	"encoding/json"
	"net/http"

	"github.com/jmatteson/profilegen/internal/paginate"
	"github.com/jmatteson/profilegen/internal/profile"
	"github.com/jmatteson/profilegen/internal/render"
)

func (s *Server) paginate(rec *profile.Record) []paginate.Page {
	return paginate.Estimate(rec)
}

// handlePreview parses pasted text and returns the rendered HTML preview.
func (s *Server) handlePreview(w http.ResponseWriter, r *http.Request) {
	text, ok := s.readText(w, r)
	if !ok {
		return
	}

	rec := s.parse(text)
	page, err := render.HTML(rec)
	if err != nil {
		jsonError(w, "render preview: "+err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write(page)
}

// handleExportDOCX parses pasted text and returns a Word document.
func (s *Server) handleExportDOCX(w http.ResponseWriter, r *http.Request) {
	text, ok := s.readText(w, r)
	if !ok {
		return
	}

	rec := s.parse(text)

	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.wordprocessingml.document")
	w.Header().Set("Content-Disposition", `attachment; filename="profile.docx"`)
	if err := render.DOCX(rec, w); err != nil {
		// Headers are already gone; all we can do is log.
		s.log.Error("docx export failed", "error", err)
	}
}

func (s *Server) handleParseStats(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]any{
		"queue_depth": s.orchestrator.QueueDepth(),
		"stats":       s.stats.Snapshot(),
	})
}
