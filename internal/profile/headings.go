package profile

import "strings"

// sectionHeadings is the closed vocabulary of section headings seen on the
// source profile pages. It doubles as the global stop list: a block never
// extends past a line that starts with any of these, whether or not that
// section is the one being extracted. Frozen at init; never mutated.
var sectionHeadings = []string{
	"about me",
	"about the provider",
	"about",
	"academic appointments",
	"academic title",
	"affiliations",
	"areas of expertise",
	"awards & honors",
	"awards and honors",
	"awards",
	"background",
	"biography",
	"board certification",
	"board certifications",
	"care philosophy",
	"certifications",
	"clinical interests",
	"conditions treated",
	"contact information",
	"education & training",
	"education and training",
	"education",
	"expertise",
	"faculty appointments",
	"fellowship",
	"frequently asked questions",
	"gender",
	"highlights",
	"honors",
	"hospital affiliations",
	"insurance accepted",
	"insurances accepted",
	"insurance plans",
	"internship",
	"languages spoken",
	"languages",
	"licensure",
	"locations",
	"medical school",
	"memberships",
	"office locations",
	"patient reviews",
	"practice locations",
	"procedures performed",
	"procedures",
	"professional memberships",
	"professional titles",
	"publications",
	"ratings & reviews",
	"ratings",
	"research interests",
	"residency",
	"reviews",
	"specialties",
	"specialty",
	"training",
}

// findHeading returns the index of the first line whose lowercased text
// starts with any of the candidate phrases, or -1 if none matches.
// Earlier line index wins, not candidate order.
func findHeading(lines []string, candidates []string) int {
	idx, _ := findHeadingMatch(lines, candidates)
	return idx
}

// findHeadingMatch is findHeading plus the candidate phrase that matched,
// for callers that need to slice the heading line itself.
func findHeadingMatch(lines []string, candidates []string) (int, string) {
	for i, line := range lines {
		low := strings.ToLower(line)
		for _, c := range candidates {
			if strings.HasPrefix(low, strings.ToLower(c)) {
				return i, c
			}
		}
	}
	return -1, ""
}

// lastExactHeading returns the index of the last line exactly equal
// (case-insensitive) to any candidate, or -1. Used for sections whose
// heading phrase also appears earlier as page navigation.
func lastExactHeading(lines []string, candidates []string) int {
	idx := -1
	for i, line := range lines {
		low := strings.ToLower(strings.TrimSpace(line))
		for _, c := range candidates {
			if low == strings.ToLower(c) {
				idx = i
			}
		}
	}
	return idx
}

// extractBlock collects the lines strictly between start and the next line
// that begins with any global section heading or any extra stop phrase.
// The global stop list applies even for sections not being searched for,
// so one section's block never eats into another's data.
func extractBlock(lines []string, start int, extraStops []string) []string {
	var block []string
	for i := start + 1; i < len(lines); i++ {
		low := strings.ToLower(lines[i])
		if startsWithAny(low, sectionHeadings) || startsWithAny(low, extraStops) {
			break
		}
		block = append(block, lines[i])
	}
	return block
}

func startsWithAny(low string, phrases []string) bool {
	for _, p := range phrases {
		if p == "" {
			continue
		}
		if strings.HasPrefix(low, strings.ToLower(p)) {
			return true
		}
	}
	return false
}
