package ingest

import (
	"bytes"
	"strings"
	"testing"

	"github.com/jmatteson/profilegen/internal/profile"
	"github.com/jmatteson/profilegen/internal/render"
)

func TestDOCXConverter_RoundTrip(t *testing.T) {
	rec := &profile.Record{
		Name:        "Jane Smith",
		Credentials: "MD",
		Specialty:   "Cardiology",
		Background:  "A short background paragraph.",
	}
	var buf bytes.Buffer
	if err := render.DOCX(rec, &buf); err != nil {
		t.Fatalf("export failed: %v", err)
	}

	conv := &DOCXConverter{}
	got, err := conv.Convert(bytes.NewReader(buf.Bytes()), "profile.docx")
	if err != nil {
		t.Fatalf("convert failed: %v", err)
	}

	for _, want := range []string{"Jane Smith, MD", "Cardiology", "A short background paragraph."} {
		if !strings.Contains(got, want) {
			t.Errorf("expected %q in extracted text: %q", want, got)
		}
	}
}
