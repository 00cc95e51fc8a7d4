package profile

import "strings"

// Heading candidates per section. Matching is by prefix against the line,
// so longer variants are listed before their prefixes where it matters.
var (
	affiliationHeadings    = []string{"hospital affiliations", "affiliations"}
	backgroundHeadings     = []string{"background", "about me", "about the provider", "about", "biography"}
	genderHeadings         = []string{"gender"}
	academicTitleHeadings  = []string{"academic title"}
	languageHeadings       = []string{"languages spoken", "languages"}
	titleHeadings          = []string{"professional titles"}
	educationHeadings      = []string{"education & training", "education and training", "education"}
	certificationHeadings  = []string{"board certifications", "board certification", "certifications"}
	membershipHeadings     = []string{"professional memberships", "memberships"}
)

// Parse extracts a physician Record from raw pasted page text. It is a
// pure function of its input: no shared state, no I/O, safe to call
// concurrently. It never fails; fields the heuristics cannot locate are
// left empty.
func Parse(raw string) *Record {
	lines := NormalizeLines(raw)

	rec := &Record{}

	id := detectIdentity(lines)
	rec.Name = id.Name
	rec.Credentials = id.Credentials
	rec.Specialty = id.Specialty

	rec.Affiliations = sectionParagraph(lines, affiliationHeadings)
	rec.Background = sectionParagraph(lines, backgroundHeadings)
	rec.Gender = sectionValue(lines, genderHeadings)
	rec.AcademicTitle = sectionValue(lines, academicTitleHeadings)
	if langRaw := sectionValue(lines, languageHeadings); langRaw != "" {
		rec.Languages = parseLanguages(langRaw)
	}

	rec.Titles = sectionList(lines, titleHeadings)
	rec.Education = sectionPairs(lines, educationHeadings)
	rec.Certifications = sectionPairs(lines, certificationHeadings)
	rec.Memberships = sectionList(lines, membershipHeadings)
	rec.Locations = parseLocations(lines)

	// Empty fields serialize as empty lists, not null.
	if rec.Titles == nil {
		rec.Titles = []string{}
	}
	if rec.Education == nil {
		rec.Education = []string{}
	}
	if rec.Certifications == nil {
		rec.Certifications = []string{}
	}
	if rec.Memberships == nil {
		rec.Memberships = []string{}
	}
	if rec.Locations == nil {
		rec.Locations = []Location{}
	}

	return rec
}

func sectionBlock(lines []string, headings []string) (block []string, headingLine string) {
	idx := findHeading(lines, headings)
	if idx < 0 {
		return nil, ""
	}
	return extractBlock(lines, idx, nil), lines[idx]
}

func sectionParagraph(lines []string, headings []string) string {
	block, _ := sectionBlock(lines, headings)
	return joinedParagraph(block)
}

func sectionValue(lines []string, headings []string) string {
	idx, phrase := findHeadingMatch(lines, headings)
	if idx < 0 {
		return ""
	}
	headingLine := lines[idx]
	if v := singleValue(extractBlock(lines, idx, nil), headingLine); v != "" {
		return v
	}
	// Inline form: the value shares the heading's line, no colon between
	// them ("Languages English, French"), common after blob re-breaking.
	return strings.TrimSpace(strings.TrimLeft(headingLine[len(phrase):], " :-"))
}

func sectionList(lines []string, headings []string) []string {
	block, _ := sectionBlock(lines, headings)
	return listItems(block)
}

func sectionPairs(lines []string, headings []string) []string {
	block, _ := sectionBlock(lines, headings)
	return pairedList(block)
}
