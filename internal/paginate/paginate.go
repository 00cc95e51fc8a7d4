// Package paginate estimates how a rendered profile splits across pages.
// It works from a fixed virtual page geometry rather than real rendered
// heights: US letter, half-inch margins, 96 dpi. The estimates are
// intentionally rough — exact layout is the preview renderer's job.
package paginate

import (
	"strings"

	"github.com/jmatteson/profilegen/internal/profile"
)

const (
	dpi          = 96
	pageHeightIn = 11.0
	pageWidthIn  = 8.5
	marginIn     = 0.5

	// UsableHeightPx is the content height of one virtual page.
	UsableHeightPx = int((pageHeightIn - 2*marginIn) * dpi)
	usableWidthPx  = int((pageWidthIn - 2*marginIn) * dpi)

	lineHeightPx    = 19
	headingHeightPx = 30
	sectionGapPx    = 14

	// Approximate characters per wrapped line at the preview's default
	// font on a usableWidthPx column.
	charsPerLine = 92
)

// Section is one measurable unit of the rendered profile.
type Section struct {
	Title    string `json:"title"`
	HeightPx int    `json:"height_px"`
}

// Page is one virtual page with the sections (or section parts) it holds.
type Page struct {
	Sections []string `json:"sections"`
	UsedPx   int      `json:"used_px"`
}

// wrappedLines estimates how many display lines a text occupies.
func wrappedLines(text string) int {
	text = strings.TrimSpace(text)
	if text == "" {
		return 0
	}
	n := (len(text) + charsPerLine - 1) / charsPerLine
	if n < 1 {
		n = 1
	}
	return n
}

func textSection(title, body string) (Section, bool) {
	lines := wrappedLines(body)
	if lines == 0 {
		return Section{}, false
	}
	return Section{Title: title, HeightPx: headingHeightPx + lines*lineHeightPx}, true
}

func listSection(title string, items []string) (Section, bool) {
	total := 0
	for _, item := range items {
		total += wrappedLines(item)
	}
	if total == 0 {
		return Section{}, false
	}
	return Section{Title: title, HeightPx: headingHeightPx + total*lineHeightPx}, true
}

// Sections maps a record to its displayable sections in document order,
// applying the auto-hide rule: empty sections are dropped, except
// Background, which always renders.
func Sections(rec *profile.Record) []Section {
	var secs []Section

	header := strings.TrimSpace(rec.Name)
	if rec.Credentials != "" {
		header += ", " + rec.Credentials
	}
	headerLines := wrappedLines(header) + wrappedLines(rec.Specialty)
	if headerLines > 0 {
		secs = append(secs, Section{Title: "header", HeightPx: headerLines * (lineHeightPx + 4)})
	}

	if s, ok := textSection("affiliations", rec.Affiliations); ok {
		secs = append(secs, s)
	}
	if s, ok := textSection("languages", rec.Languages); ok {
		secs = append(secs, s)
	}
	if s, ok := textSection("gender", rec.Gender); ok {
		secs = append(secs, s)
	}
	if s, ok := textSection("academic_title", rec.AcademicTitle); ok {
		secs = append(secs, s)
	}
	if s, ok := listSection("titles", rec.Titles); ok {
		secs = append(secs, s)
	}
	if s, ok := listSection("education", rec.Education); ok {
		secs = append(secs, s)
	}
	if s, ok := listSection("certifications", rec.Certifications); ok {
		secs = append(secs, s)
	}
	if s, ok := listSection("memberships", rec.Memberships); ok {
		secs = append(secs, s)
	}

	if len(rec.Locations) > 0 {
		total := 0
		for _, loc := range rec.Locations {
			total += wrappedLines(loc.Name) + wrappedLines(loc.Address)
			if loc.Phone != "" || loc.Fax != "" {
				total++
			}
		}
		secs = append(secs, Section{Title: "locations", HeightPx: headingHeightPx + total*lineHeightPx})
	}

	// Background renders even when empty (auto-hide exemption).
	bg, _ := textSection("background", rec.Background)
	if bg.HeightPx == 0 {
		bg = Section{Title: "background", HeightPx: headingHeightPx}
	}
	secs = append(secs, bg)

	return secs
}

// Estimate packs sections into virtual pages greedily in document order.
// A section taller than a whole page is split across pages; everything
// else moves to the next page when it doesn't fit.
func Estimate(rec *profile.Record) []Page {
	secs := Sections(rec)

	var pages []Page
	cur := Page{}

	flush := func() {
		pages = append(pages, cur)
		cur = Page{}
	}
	place := func(title string, h int) {
		if cur.UsedPx > 0 {
			cur.UsedPx += sectionGapPx
		}
		cur.Sections = append(cur.Sections, title)
		cur.UsedPx += h
	}

	for _, sec := range secs {
		need := sec.HeightPx
		if cur.UsedPx > 0 {
			need += sectionGapPx
		}
		remaining := UsableHeightPx - cur.UsedPx

		if need <= remaining {
			place(sec.Title, sec.HeightPx)
			continue
		}
		if sec.HeightPx <= UsableHeightPx {
			flush()
			place(sec.Title, sec.HeightPx)
			continue
		}

		// Taller than a page: fill the current page, then whole pages.
		h := sec.HeightPx
		for h > 0 {
			remaining = UsableHeightPx - cur.UsedPx
			if cur.UsedPx > 0 {
				remaining -= sectionGapPx
			}
			if remaining <= 0 {
				flush()
				continue
			}
			take := h
			if take > remaining {
				take = remaining
			}
			place(sec.Title, take)
			h -= take
			if h > 0 {
				flush()
			}
		}
	}

	if len(cur.Sections) > 0 {
		flush()
	}
	if len(pages) == 0 {
		pages = []Page{{}}
	}
	return pages
}
