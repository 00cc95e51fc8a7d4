package pipeline

import (
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/jmatteson/profilegen/internal/profile"
)

func testWorker(t *testing.T) (*Worker, *profile.ParseStats) {
	t.Helper()
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	stats := profile.NewParseStats(time.Hour)
	return NewWorker(log, stats, false, 1<<20), stats
}

func TestWorker_ProcessTextFile(t *testing.T) {
	w, stats := testWorker(t)
	job := NewJob("profile.txt", []byte("Print\nJane A. Smith\nSmith, MD\nCardiology\n"))

	w.Process(job)

	snap := job.Snapshot()
	if snap.Status != StatusCompleted {
		t.Fatalf("expected status %q, got %q (errors: %v)", StatusCompleted, snap.Status, snap.Errors)
	}
	if snap.Record == nil {
		t.Fatal("expected a parsed record")
	}
	if snap.Record.Name != "Jane A. Smith" {
		t.Errorf("expected name %q, got %q", "Jane A. Smith", snap.Record.Name)
	}
	if stats.Snapshot().Total != 1 {
		t.Error("expected parse recorded in stats")
	}
}

func TestWorker_ProcessUnsupportedExtension(t *testing.T) {
	w, _ := testWorker(t)
	job := NewJob("profile.xlsx", []byte("irrelevant"))

	w.Process(job)

	snap := job.Snapshot()
	if snap.Status != StatusFailed {
		t.Errorf("expected status %q, got %q", StatusFailed, snap.Status)
	}
	if len(snap.Errors) == 0 {
		t.Error("expected an error recorded")
	}
}

func TestWorker_ProcessEmptyFile(t *testing.T) {
	w, _ := testWorker(t)
	job := NewJob("empty.txt", []byte("   \n  "))

	w.Process(job)

	snap := job.Snapshot()
	if snap.Status != StatusFailed {
		t.Errorf("expected status %q for empty input, got %q", StatusFailed, snap.Status)
	}
}

func TestWorker_TruncatesOversizedInput(t *testing.T) {
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	w := NewWorker(log, nil, false, 32)
	big := append([]byte("Jane Smith, MD\n"), make([]byte, 1024)...)
	for i := 15; i < len(big); i++ {
		big[i] = 'x'
	}
	job := NewJob("big.txt", big)

	w.Process(job)

	snap := job.Snapshot()
	if snap.Status != StatusCompleted {
		t.Fatalf("expected status %q, got %q (errors: %v)", StatusCompleted, snap.Status, snap.Errors)
	}
}
