package profile

import (
	"strings"
	"testing"
)

func TestNormalizeLines_BasicSplitting(t *testing.T) {
	lines := NormalizeLines("First line\r\nSecond line\n\n  Third line  \n")
	want := []string{"First line", "Second line", "Third line"}
	if len(lines) != len(want) {
		t.Fatalf("expected %d lines, got %d: %v", len(want), len(lines), lines)
	}
	for i, w := range want {
		if lines[i] != w {
			t.Errorf("line[%d]: expected %q, got %q", i, w, lines[i])
		}
	}
}

func TestNormalizeLines_TabsAndUnicodeSeparators(t *testing.T) {
	lines := NormalizeLines("Name\tValue\u2028Next\u2029Last")
	want := []string{"Name Value", "Next", "Last"}
	if len(lines) != len(want) {
		t.Fatalf("expected %d lines, got %d: %v", len(want), len(lines), lines)
	}
	for i, w := range want {
		if lines[i] != w {
			t.Errorf("line[%d]: expected %q, got %q", i, w, lines[i])
		}
	}
}

func TestNormalizeLines_DropsShowMoreArtifacts(t *testing.T) {
	lines := NormalizeLines("Biography text\nShow more\nMore text\nshow less\n")
	for _, line := range lines {
		low := strings.ToLower(line)
		if low == "show more" || low == "show less" {
			t.Errorf("UI artifact survived normalization: %q", line)
		}
	}
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %d: %v", len(lines), lines)
	}
}

func TestNormalizeLines_EmptyInput(t *testing.T) {
	if got := NormalizeLines("   \n\t \n"); got != nil {
		t.Errorf("expected nil for whitespace-only input, got %v", got)
	}
}

func TestNormalizeLines_SingleBlobHeadingInjection(t *testing.T) {
	blob := "Dr. Jane Smith is a cardiologist.Languages English, Spanish Background Dr. Smith trained at..."
	lines := NormalizeLines(blob)

	if len(lines) < 3 {
		t.Fatalf("expected blob to be re-broken into multiple lines, got %d: %v", len(lines), lines)
	}
	foundLang, foundBg := false, false
	for _, line := range lines {
		if strings.HasPrefix(line, "Languages") {
			foundLang = true
		}
		if strings.HasPrefix(line, "Background") {
			foundBg = true
		}
	}
	if !foundLang || !foundBg {
		t.Errorf("expected Languages and Background to start lines, got %v", lines)
	}
}

func TestNormalizeLines_NoOverInjectionOnOverlappingHeadings(t *testing.T) {
	// "Board Certification" is a prefix of "Board Certifications"; the
	// repair must not inject a second break into the longer phrase.
	blob := "intro text Board Certifications American Board of Surgery"
	lines := NormalizeLines(blob)
	if len(lines) != 2 {
		t.Fatalf("expected exactly 2 lines, got %d: %v", len(lines), lines)
	}
	if lines[1] != "Board Certifications American Board of Surgery" {
		t.Errorf("unexpected heading line: %q", lines[1])
	}
}

func TestNormalizeLines_NoInjectionOnMultilineInput(t *testing.T) {
	// Already-multiline input must never be re-broken, even when a
	// heading phrase appears mid-line inside a normal paragraph.
	input := "First paragraph mentions Languages mid-sentence.\nSecond line."
	lines := NormalizeLines(input)
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %d: %v", len(lines), lines)
	}
	if !strings.Contains(lines[0], "Languages mid-sentence.") {
		t.Errorf("paragraph was corrupted: %q", lines[0])
	}
}
