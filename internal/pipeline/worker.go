package pipeline

import (
	"bytes"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/jmatteson/profilegen/internal/ingest"
	"github.com/jmatteson/profilegen/internal/profile"
)

// Worker processes a single batch parse job: convert the uploaded file to
// plain text, then run the heuristic extractor over it.
type Worker struct {
	log           *slog.Logger
	stats         *profile.ParseStats
	pdfFallback   bool
	maxInputBytes int64
}

func NewWorker(log *slog.Logger, stats *profile.ParseStats, pdfFallback bool, maxInputBytes int64) *Worker {
	return &Worker{
		log:           log,
		stats:         stats,
		pdfFallback:   pdfFallback,
		maxInputBytes: maxInputBytes,
	}
}

// Process runs the convert+parse pipeline for a job.
func (w *Worker) Process(job *Job) {
	log := w.log.With("job_id", job.ID, "filename", job.Filename)

	job.SetStatus(StatusConverting, "converting")
	conv, err := ingest.ForFile(job.Filename)
	if err != nil {
		log.Error("unsupported format", "error", err)
		job.AddError(err.Error())
		job.SetStatus(StatusFailed, "converting")
		return
	}
	if pdfConv, ok := conv.(*ingest.PDFConverter); ok {
		pdfConv.FallbackPdftotext = w.pdfFallback
	}

	text, err := conv.Convert(bytes.NewReader(job.FileData()), job.Filename)
	if err != nil {
		log.Error("convert failed", "error", err)
		job.AddError(fmt.Sprintf("convert: %s", err))
		job.SetStatus(StatusFailed, "converting")
		return
	}
	if strings.TrimSpace(text) == "" {
		job.AddError("no extractable text")
		job.SetStatus(StatusFailed, "converting")
		return
	}
	if w.maxInputBytes > 0 && int64(len(text)) > w.maxInputBytes {
		text = text[:w.maxInputBytes]
	}

	job.SetStatus(StatusParsing, "parsing")
	start := time.Now()
	rec := profile.Parse(text)
	if w.stats != nil {
		w.stats.Observe(time.Since(start).Milliseconds(), rec)
	}

	job.SetRecord(rec)
	job.SetStatus(StatusCompleted, "done")
	log.Info("job completed", "name_found", rec.Name != "", "locations", len(rec.Locations))
}
