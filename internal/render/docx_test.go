package render

import (
	"bytes"
	"testing"

	"github.com/jmatteson/profilegen/internal/profile"
)

func TestDOCX_WritesZipContainer(t *testing.T) {
	rec := &profile.Record{
		Name:        "Jane Smith",
		Credentials: "MD",
		Specialty:   "Cardiology",
		Background:  "Short bio.",
		Education:   []string{"Harvard Medical School — MD, 2001"},
	}
	var buf bytes.Buffer
	if err := DOCX(rec, &buf); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	out := buf.Bytes()
	if len(out) == 0 {
		t.Fatal("no output written")
	}
	// A .docx file is a zip archive.
	if !bytes.HasPrefix(out, []byte("PK")) {
		t.Errorf("output is not a zip container, starts with %q", out[:min(4, len(out))])
	}
}

func TestDOCX_EmptyRecord(t *testing.T) {
	var buf bytes.Buffer
	if err := DOCX(&profile.Record{}, &buf); err != nil {
		t.Fatalf("unexpected error on empty record: %v", err)
	}
	if buf.Len() == 0 {
		t.Error("empty record must still produce a document")
	}
}
