package api

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/jmatteson/profilegen/internal/ingest"
	"github.com/jmatteson/profilegen/internal/pipeline"
	"github.com/jmatteson/profilegen/internal/profile"
)

type parseRequest struct {
	Text string `json:"text"`
}

// readText decodes and validates the pasted-text payload. Rejecting an
// empty paste is the one user-facing validation; everything past this
// point degrades silently inside the parser.
func (s *Server) readText(w http.ResponseWriter, r *http.Request) (string, bool) {
	r.Body = http.MaxBytesReader(w, r.Body, s.cfg.MaxInputBytes+4096)

	var req parseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		jsonError(w, "invalid json body: "+err.Error(), http.StatusBadRequest)
		return "", false
	}
	if strings.TrimSpace(req.Text) == "" {
		jsonError(w, "text is required: paste the profile page text before parsing", http.StatusBadRequest)
		return "", false
	}
	text := req.Text
	if int64(len(text)) > s.cfg.MaxInputBytes {
		text = text[:s.cfg.MaxInputBytes]
	}
	return text, true
}

// parse runs the extractor and records stats.
func (s *Server) parse(text string) *profile.Record {
	start := time.Now()
	rec := profile.Parse(text)
	s.stats.Observe(time.Since(start).Milliseconds(), rec)
	return rec
}

func (s *Server) handleParse(w http.ResponseWriter, r *http.Request) {
	text, ok := s.readText(w, r)
	if !ok {
		return
	}

	rec := s.parse(text)

	w.Header().Set("Content-Type", "application/json")
	if r.URL.Query().Get("pages") == "true" {
		json.NewEncoder(w).Encode(map[string]any{
			"record": rec,
			"pages":  s.paginate(rec),
		})
		return
	}
	json.NewEncoder(w).Encode(rec)
}

func (s *Server) handleUpload(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, s.cfg.MaxUploadBytes+1024*1024)

	if err := r.ParseMultipartForm(32 << 20); err != nil {
		jsonError(w, "invalid multipart form: "+err.Error(), http.StatusBadRequest)
		return
	}
	defer r.MultipartForm.RemoveAll()

	filename, data, ok := s.readUploadFile(w, r)
	if !ok {
		return
	}

	conv, err := ingest.ForFile(filename)
	if err != nil {
		jsonError(w, err.Error(), http.StatusBadRequest)
		return
	}
	if pdfConv, isPDF := conv.(*ingest.PDFConverter); isPDF {
		pdfConv.FallbackPdftotext = s.cfg.PDFFallbackPdftotext
	}

	text, err := conv.Convert(bytes.NewReader(data), filename)
	if err != nil {
		jsonError(w, "convert: "+err.Error(), http.StatusUnprocessableEntity)
		return
	}
	if strings.TrimSpace(text) == "" {
		jsonError(w, "no extractable text in file", http.StatusUnprocessableEntity)
		return
	}
	if int64(len(text)) > s.cfg.MaxInputBytes {
		text = text[:s.cfg.MaxInputBytes]
	}

	rec := s.parse(text)
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(rec)
}

func (s *Server) handleBatch(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, s.cfg.MaxUploadBytes*10+10*1024*1024)

	if err := r.ParseMultipartForm(64 << 20); err != nil {
		jsonError(w, "invalid multipart form: "+err.Error(), http.StatusBadRequest)
		return
	}
	defer r.MultipartForm.RemoveAll()

	files := r.MultipartForm.File["files"]
	if len(files) == 0 {
		jsonError(w, "at least one file is required", http.StatusBadRequest)
		return
	}

	var results []map[string]any
	for _, fh := range files {
		filename := sanitizeFilename(fh.Filename)
		if !ingest.IsSupportedExtension(filename) {
			results = append(results, map[string]any{
				"filename": filename,
				"error":    fmt.Sprintf("unsupported file type: %s", filepath.Ext(filename)),
			})
			continue
		}

		f, err := fh.Open()
		if err != nil {
			results = append(results, map[string]any{
				"filename": filename,
				"error":    "failed to open file",
			})
			continue
		}

		data, err := io.ReadAll(io.LimitReader(f, s.cfg.MaxUploadBytes+1))
		f.Close()
		if err != nil || int64(len(data)) > s.cfg.MaxUploadBytes {
			results = append(results, map[string]any{
				"filename": filename,
				"error":    "file too large or read error",
			})
			continue
		}

		job := pipeline.NewJob(filename, data)
		if err := s.orchestrator.Submit(job); err != nil {
			results = append(results, map[string]any{
				"filename": filename,
				"error":    err.Error(),
			})
			continue
		}

		results = append(results, map[string]any{
			"filename": filename,
			"job_id":   job.ID,
			"status":   job.Status,
			"poll_url": fmt.Sprintf("/api/profile/jobs/%s", job.ID),
		})
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusAccepted)
	json.NewEncoder(w).Encode(map[string]any{"jobs": results})
}

func (s *Server) handleJobStatus(w http.ResponseWriter, r *http.Request) {
	jobID := chi.URLParam(r, "jobID")
	job := s.orchestrator.GetJob(jobID)
	if job == nil {
		jsonError(w, "job not found", http.StatusNotFound)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(job.Snapshot())
}

// readUploadFile pulls the single "file" form field with size checks.
func (s *Server) readUploadFile(w http.ResponseWriter, r *http.Request) (string, []byte, bool) {
	file, header, err := r.FormFile("file")
	if err != nil {
		jsonError(w, "file is required: "+err.Error(), http.StatusBadRequest)
		return "", nil, false
	}
	defer file.Close()

	filename := sanitizeFilename(header.Filename)
	if !ingest.IsSupportedExtension(filename) {
		jsonError(w, fmt.Sprintf("unsupported file type: %s", filepath.Ext(filename)), http.StatusBadRequest)
		return "", nil, false
	}

	data, err := io.ReadAll(io.LimitReader(file, s.cfg.MaxUploadBytes+1))
	if err != nil {
		jsonError(w, "failed to read file", http.StatusInternalServerError)
		return "", nil, false
	}
	if int64(len(data)) > s.cfg.MaxUploadBytes {
		jsonError(w, fmt.Sprintf("file exceeds max size (%d bytes)", s.cfg.MaxUploadBytes), http.StatusRequestEntityTooLarge)
		return "", nil, false
	}
	return filename, data, true
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
