package render

import (
	"strings"
	"testing"

	"github.com/jmatteson/profilegen/internal/profile"
)

func TestHTML_HeaderAndSpecialty(t *testing.T) {
	rec := &profile.Record{
		Name:        "Jane A. Smith",
		Credentials: "MD, PhD",
		Specialty:   "Cardiology",
	}
	out, err := HTML(rec)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	html := string(out)
	if !strings.Contains(html, "Jane A. Smith, MD, PhD") {
		t.Errorf("header missing credentials: %s", html)
	}
	if !strings.Contains(html, `<p class="specialty">Cardiology</p>`) {
		t.Errorf("specialty line missing: %s", html)
	}
}

func TestHTML_EmptySectionsHidden(t *testing.T) {
	rec := &profile.Record{Name: "Jane Smith", Languages: "English"}
	out, err := HTML(rec)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	html := string(out)
	if !strings.Contains(html, "<h2>Languages</h2>") {
		t.Errorf("languages section missing: %s", html)
	}
	for _, hidden := range []string{"<h2>Education</h2>", "<h2>Memberships</h2>", "<h2>Locations</h2>"} {
		if strings.Contains(html, hidden) {
			t.Errorf("empty section %s must be hidden", hidden)
		}
	}
}

func TestHTML_DashPlaceholderHidden(t *testing.T) {
	rec := &profile.Record{
		Name:   "Jane Smith",
		Gender: "-",
		Titles: []string{"—"},
	}
	out, err := HTML(rec)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	html := string(out)
	if strings.Contains(html, "<h2>Gender</h2>") {
		t.Error("dash-only gender must be hidden")
	}
	if strings.Contains(html, "<h2>Professional Titles</h2>") {
		t.Error("dash-only list must be hidden")
	}
}

func TestHTML_BackgroundAlwaysRendered(t *testing.T) {
	out, err := HTML(&profile.Record{Name: "Jane Smith"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(string(out), "<h2>Background</h2>") {
		t.Error("background section must render even when empty")
	}
}

func TestHTML_LocationLine(t *testing.T) {
	rec := &profile.Record{
		Name: "Jane Smith",
		Locations: []profile.Location{
			{Name: "Main Clinic", Address: "1 First St", Phone: "555-0100"},
		},
	}
	out, err := HTML(rec)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(string(out), "Main Clinic · 1 First St · Phone: 555-0100") {
		t.Errorf("location line not assembled: %s", out)
	}
}

func TestHTML_EscapesMarkup(t *testing.T) {
	out, err := HTML(&profile.Record{Name: "<script>alert(1)</script>"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if strings.Contains(string(out), "<script>alert(1)</script>") {
		t.Error("record content must be HTML-escaped")
	}
}

func TestIsBlank(t *testing.T) {
	cases := []struct {
		in   string
		want bool
	}{
		{"", true},
		{"  ", true},
		{"-", true},
		{"—", true},
		{"English", false},
	}
	for _, tc := range cases {
		if got := isBlank(tc.in); got != tc.want {
			t.Errorf("isBlank(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
}
