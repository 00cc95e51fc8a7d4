package profile

import (
	"regexp"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var (
	bulletPrefixRe = regexp.MustCompile(`^[\s\x{2022}\x{00b7}\x{25aa}\x{25e6}*\x{2013}\x{2014}-]+`)
	innerSpaceRe   = regexp.MustCompile(`\s+`)

	// A lowercase letter immediately followed by an uppercase one marks a
	// word boundary lost when the source page concatenated list entries.
	caseBoundaryRe = regexp.MustCompile(`([a-z])([A-Z])`)

	languageSplitRe = regexp.MustCompile(`[,/;|\s]+`)

	titleCaser = cases.Title(language.English)
)

// joinedParagraph collapses a block into one paragraph: internal
// whitespace normalized per line, lines joined with single spaces.
func joinedParagraph(block []string) string {
	var parts []string
	for _, line := range block {
		line = innerSpaceRe.ReplaceAllString(line, " ")
		line = strings.TrimSpace(line)
		if line != "" {
			parts = append(parts, line)
		}
	}
	return strings.Join(parts, " ")
}

// singleValue takes the first non-empty line of a block. If the block is
// empty, the text after a colon on the heading line itself is used
// (some pages render "Gender: Female" inline on the heading).
func singleValue(block []string, headingLine string) string {
	for _, line := range block {
		if strings.TrimSpace(line) != "" {
			return strings.TrimSpace(line)
		}
	}
	if i := strings.Index(headingLine, ":"); i >= 0 {
		return strings.TrimSpace(headingLine[i+1:])
	}
	return ""
}

// listItems converts a block into list entries: bullet glyphs stripped,
// whitespace normalized, empties dropped.
func listItems(block []string) []string {
	var items []string
	for _, line := range block {
		line = bulletPrefixRe.ReplaceAllString(line, "")
		line = innerSpaceRe.ReplaceAllString(line, " ")
		line = strings.TrimSpace(line)
		if line != "" {
			items = append(items, line)
		}
	}
	return items
}

// pairedList consumes a block two lines at a time as (institution, detail)
// pairs, the layout source pages use for education and certifications.
// A trailing unpaired line is kept as a single entry, never dropped.
func pairedList(block []string) []string {
	var items []string
	for i := 0; i < len(block); i += 2 {
		first := strings.TrimSpace(bulletPrefixRe.ReplaceAllString(block[i], ""))
		second := ""
		if i+1 < len(block) {
			second = strings.TrimSpace(bulletPrefixRe.ReplaceAllString(block[i+1], ""))
		}
		switch {
		case first != "" && second != "":
			items = append(items, first+" — "+second)
		case first != "":
			items = append(items, first)
		case second != "":
			items = append(items, second)
		}
	}
	return items
}

// parseLanguages turns a raw language string into a comma-joined,
// title-cased, deduplicated list. Concatenated names ("BengaliEnglish")
// are re-split at case boundaries first.
func parseLanguages(raw string) string {
	raw = bulletPrefixRe.ReplaceAllString(raw, "")
	raw = caseBoundaryRe.ReplaceAllString(raw, "$1, $2")

	seen := make(map[string]bool)
	var out []string
	for _, tok := range languageSplitRe.Split(raw, -1) {
		tok = strings.Trim(tok, " .")
		if tok == "" {
			continue
		}
		tok = titleCaser.String(strings.ToLower(tok))
		key := strings.ToLower(tok)
		if seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, tok)
	}
	return strings.Join(out, ", ")
}
