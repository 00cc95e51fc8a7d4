package ingest

import (
	"reflect"
	"strings"
	"testing"
)

func TestHTMLConverter_BlockBoundariesBecomeLines(t *testing.T) {
	input := `<html><body>
<h1>Jane Smith, MD</h1>
<p>Cardiology</p>
<ul><li>English</li><li>Spanish</li></ul>
</body></html>`

	conv := &HTMLConverter{}
	got, err := conv.Convert(strings.NewReader(input), "profile.html")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := []string{"Jane Smith, MD", "Cardiology", "English", "Spanish"}
	if lines := nonEmptyLines(got); !reflect.DeepEqual(lines, want) {
		t.Errorf("expected %v, got %v", want, lines)
	}
}

func TestHTMLConverter_SkipsScriptAndStyle(t *testing.T) {
	input := `<html><head><style>body{color:red}</style></head>
<body><script>var tracking = true;</script><p>Visible text</p></body></html>`

	conv := &HTMLConverter{}
	got, err := conv.Convert(strings.NewReader(input), "profile.html")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if strings.Contains(got, "tracking") || strings.Contains(got, "color:red") {
		t.Errorf("script/style content leaked: %q", got)
	}
	if !strings.Contains(got, "Visible text") {
		t.Errorf("body text missing: %q", got)
	}
}

func TestHTMLConverter_KeepsNavChrome(t *testing.T) {
	// Navigation lines carry signal for the downstream heuristics (the
	// Print marker, the trailing Locations entry), so they must survive.
	input := `<html><body><nav><div>Locations</div><div>Print</div></nav>
<h1>Jane Smith</h1></body></html>`

	conv := &HTMLConverter{}
	got, err := conv.Convert(strings.NewReader(input), "profile.html")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, want := range []string{"Locations", "Print", "Jane Smith"} {
		if !strings.Contains(got, want) {
			t.Errorf("expected %q in output: %q", want, got)
		}
	}
}

func TestHTMLConverter_BrBreaksLine(t *testing.T) {
	conv := &HTMLConverter{}
	got, err := conv.Convert(strings.NewReader("<p>100 Main St<br>Suite 200</p>"), "a.html")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []string{"100 Main St", "Suite 200"}
	if lines := nonEmptyLines(got); !reflect.DeepEqual(lines, want) {
		t.Errorf("expected %v, got %v", want, lines)
	}
}
