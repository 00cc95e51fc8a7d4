package profile

import (
	"regexp"
	"strings"
)

// blobHeadings are the headings we re-break on when a paste arrives as one
// newline-free blob. Longer phrases come first so their shorter prefixes
// don't inject a second break into an already-broken occurrence.
var blobHeadings = []string{
	"Board Certifications",
	"Board Certification",
	"Hospital Affiliations",
	"Professional Titles",
	"Academic Title",
	"Memberships",
	"Background",
	"Education",
	"Languages",
	"Locations",
	"Gender",
}

var blobHeadingRes = func() []*regexp.Regexp {
	res := make([]*regexp.Regexp, len(blobHeadings))
	for i, h := range blobHeadings {
		// Only inject when the phrase is not already at a line start.
		res[i] = regexp.MustCompile(`([^\n])` + regexp.QuoteMeta(h))
	}
	return res
}()

// NormalizeLines cleans raw pasted text into an ordered sequence of
// trimmed, non-empty lines. Line order is preserved.
func NormalizeLines(raw string) []string {
	text := strings.ReplaceAll(raw, "\r", "")
	text = strings.ReplaceAll(text, "\t", " ")
	text = strings.ReplaceAll(text, "\u2028", "\n")
	text = strings.ReplaceAll(text, "\u2029", "\n")
	text = strings.TrimSpace(text)
	if text == "" {
		return nil
	}

	// Single-blob repair: a page copied as one line gets a break injected
	// before each known heading so it is segmentable again. Never applied
	// to already-multiline input.
	if !strings.Contains(text, "\n") {
		for i, re := range blobHeadingRes {
			text = re.ReplaceAllString(text, "$1\n"+blobHeadings[i])
		}
	}

	var lines []string
	for _, piece := range strings.Split(text, "\n") {
		piece = strings.TrimSpace(piece)
		if piece == "" {
			continue
		}
		// "Show more"/"Show less" are expander widgets from the source
		// page, never content.
		if low := strings.ToLower(piece); low == "show more" || low == "show less" {
			continue
		}
		lines = append(lines, piece)
	}
	return lines
}
