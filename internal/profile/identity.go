package profile

import (
	"regexp"
	"strings"
)

// identity is the name/credentials/specialty triple pulled from the top
// of the document. Any field may be empty.
type identity struct {
	Name        string
	Credentials string
	Specialty   string
}

// detectStrategy attempts one extraction approach. ok is false when the
// strategy found no name at all.
type detectStrategy func(lines []string) (identity, bool)

// detectStrategies is ordered strictly from most to least reliable:
// structural context first, pure shape-matching last. The first strategy
// that yields a name wins.
var detectStrategies = []detectStrategy{
	detectPrintHeader,
	detectCommaCredential,
	detectWholeText,
	detectAnyNameShaped,
}

func detectIdentity(lines []string) identity {
	var id identity
	for _, strat := range detectStrategies {
		if got, ok := strat(lines); ok {
			id = got
			break
		}
	}
	if id.Name != "" && id.Credentials == "" {
		id.Credentials = backfillCredentials(lines, id.Name)
	}
	id.Specialty = repairSpecialtyBullets(id.Specialty)
	return id
}

// --- name shape -----------------------------------------------------------

var (
	nameTokenRe     = regexp.MustCompile(`^[A-Z][A-Za-z'.-]*$`)
	prefixedTokenRe = regexp.MustCompile(`^[a-z]{1,3}[A-Z][A-Za-z'.-]*$`)

	nameSuffixRe = regexp.MustCompile(`[,\s]+(Jr\.?|Sr\.?|II|III|IV)$`)
)

// brandNames are directory-site brands that show up as prominent lines
// near the top of a copied page and must never be taken for a name.
var brandNames = []string{
	"healthgrades",
	"webmd",
	"vitals",
	"zocdoc",
	"sharecare",
	"castle connolly",
}

// noisePhrases mark rating/booking/chrome lines that look like content.
var noisePhrases = []string{
	"book an appointment",
	"book online",
	"make an appointment",
	"request appointment",
	"schedule an appointment",
	"accepting new patients",
	"call to schedule",
	"overall rating",
	"star rating",
	"ratings",
	"reviews",
	"leave a review",
	"out of 5",
	"patients' perspective",
	"highlights",
	"sponsored",
	"advertisement",
	"compare providers",
	"claim this profile",
	"telehealth",
	"video visit",
	"top doctor",
	"award",
}

func containsBrand(line string) bool {
	low := strings.ToLower(line)
	for _, b := range brandNames {
		if strings.Contains(low, b) {
			return true
		}
	}
	return false
}

func isNoiseLine(line string) bool {
	low := strings.ToLower(line)
	for _, p := range noisePhrases {
		if strings.Contains(low, p) {
			return true
		}
	}
	return false
}

// isNameShaped approves a line as a plausible personal name: 2-6 tokens,
// each either Capitalized or a short lowercase prefix followed by a
// capital ("deBettencourt"), and the line is neither brand nor noise.
func isNameShaped(line string) bool {
	if containsBrand(line) || isNoiseLine(line) {
		return false
	}
	toks := strings.Fields(line)
	if len(toks) < 2 || len(toks) > 6 {
		return false
	}
	for _, t := range toks {
		if !nameTokenRe.MatchString(t) && !prefixedTokenRe.MatchString(t) {
			return false
		}
	}
	return true
}

// --- credential vocabulary ------------------------------------------------

// credentialVocab is the closed set of recognized post-nominal
// abbreviations, stored uppercased with periods removed.
var credentialVocab = map[string]bool{
	"MD": true, "DO": true, "MBBS": true, "MBCHB": true, "PHD": true,
	"DDS": true, "DMD": true, "DPM": true, "DC": true, "OD": true,
	"PHARMD": true, "PSYD": true, "EDD": true, "DNP": true, "DSC": true,
	"DRPH": true, "MPH": true, "MS": true, "MSC": true, "MSN": true,
	"MA": true, "MBA": true, "MHA": true, "MMSC": true, "MSW": true,
	"BSN": true, "RN": true, "APRN": true, "APN": true, "NP": true,
	"FNP": true, "FNP-BC": true, "FNP-C": true, "ANP": true, "AGNP": true,
	"PNP": true, "WHNP": true, "CNM": true, "CRNA": true, "PA": true,
	"PA-C": true, "DPT": true, "PT": true, "OTD": true, "OTR": true,
	"LCSW": true, "LPC": true, "LMFT": true, "RD": true, "RDN": true,
	"FACS": true, "FACP": true, "FACC": true, "FAAP": true, "FACOG": true,
	"FAAD": true, "FACEP": true, "FCCP": true, "FAAN": true, "FAANS": true,
	"FASN": true, "FSCAI": true, "FHRS": true, "FACG": true, "FASGE": true,
}

var credentialSplitRe = regexp.MustCompile(`[,\s]+`)

func normalizeCredentialToken(tok string) string {
	tok = strings.Trim(tok, "()")
	tok = strings.ReplaceAll(tok, ".", "")
	return strings.ToUpper(tok)
}

// hasCredentialToken reports whether at least one token of the segment is
// a recognized post-nominal abbreviation.
func hasCredentialToken(segment string) bool {
	for _, tok := range credentialSplitRe.Split(segment, -1) {
		if credentialVocab[normalizeCredentialToken(tok)] {
			return true
		}
	}
	return false
}

// --- strategies -----------------------------------------------------------

// detectPrintHeader anchors on the page-chrome "Print" line: the name is
// the first name-shaped line within the next 12, optionally followed by a
// "<Last>, <credentials>" line, then the specialty.
func detectPrintHeader(lines []string) (identity, bool) {
	printIdx := -1
	for i, line := range lines {
		if line == "Print" {
			printIdx = i
			break
		}
	}
	if printIdx < 0 {
		return identity{}, false
	}

	var id identity
	nameIdx := -1
	for i := printIdx + 1; i <= printIdx+12 && i < len(lines); i++ {
		if isNameShaped(lines[i]) {
			id.Name = lines[i]
			nameIdx = i
			break
		}
	}
	if nameIdx < 0 {
		return identity{}, false
	}

	next := nameIdx + 1
	if next < len(lines) {
		// A "<Name-word>, <creds>" line directly under the name carries
		// the credentials; pages restate either the first or last name.
		if before, after, found := strings.Cut(lines[next], ","); found {
			if nameHasWord(id.Name, firstWord(before)) {
				id.Credentials = strings.TrimSpace(after)
				next++
			}
		}
	}
	id.Specialty = scanSpecialty(lines, next, id.Name)
	return id, true
}

// detectCommaCredential scans the first 80 lines for a
// "<Name>, <credentials>" line whose credential segment contains at least
// one recognized abbreviation.
func detectCommaCredential(lines []string) (identity, bool) {
	limit := min(len(lines), 80)
	for i := 0; i < limit; i++ {
		name, creds, ok := splitNameCredential(lines[i])
		if !ok {
			continue
		}
		id := identity{Name: name, Credentials: creds}
		id.Specialty = scanSpecialty(lines, i+1, name)
		return id, true
	}
	return identity{}, false
}

func splitNameCredential(line string) (name, creds string, ok bool) {
	before, after, found := strings.Cut(line, ",")
	if !found {
		return "", "", false
	}
	name = strings.TrimSpace(before)
	creds = strings.TrimSpace(after)
	if name == "" || creds == "" {
		return "", "", false
	}
	base := nameSuffixRe.ReplaceAllString(name, "")
	if !isNameShaped(base) {
		return "", "", false
	}
	if !hasCredentialToken(creds) {
		return "", "", false
	}
	return name, creds, true
}

// wholeTextNameRe uses a deliberately short degree set: at this point in
// the fallback chain precision matters more than coverage.
var wholeTextNameRe = regexp.MustCompile(
	`([A-Z][A-Za-z'.-]+(?: [A-Z][A-Za-z'.-]+){1,3}), ?` +
		`(M\.?D\.?|D\.?O\.?|Ph\.?D\.?|MBBS|DDS|DMD|DPM|DNP|PA-C|NP|OD)\b`)

// detectWholeText searches the entire joined text for
// "Capitalized Name, KNOWN_DEGREE".
func detectWholeText(lines []string) (identity, bool) {
	m := wholeTextNameRe.FindStringSubmatch(strings.Join(lines, "\n"))
	if m == nil {
		return identity{}, false
	}
	return identity{Name: m[1], Credentials: m[2]}, true
}

// detectAnyNameShaped is the last resort: the first name-shaped line
// anywhere, with no credentials or specialty.
func detectAnyNameShaped(lines []string) (identity, bool) {
	for _, line := range lines {
		if isNameShaped(line) {
			return identity{Name: line}, true
		}
	}
	return identity{}, false
}

// --- shared post-processing ----------------------------------------------

// scanSpecialty looks forward up to 8 lines for the first plausible
// specialty line: short, no colon, not noise or brand, and not a
// restatement of the name.
func scanSpecialty(lines []string, start int, name string) string {
	lowName := strings.ToLower(name)
	end := min(start+8, len(lines))
	for i := start; i < end; i++ {
		line := lines[i]
		if startsWithAny(strings.ToLower(line), sectionHeadings) {
			// The header ended; section content is never a specialty.
			break
		}
		if line == "" || len(line) > 200 {
			continue
		}
		if strings.Contains(line, ":") {
			continue
		}
		if isNoiseLine(line) || containsBrand(line) {
			continue
		}
		if lowName != "" && strings.Contains(strings.ToLower(line), lowName) {
			continue
		}
		return line
	}
	return ""
}

// backfillCredentials recovers credentials when no strategy produced
// them: any line holding the name plus a comma yields the remainder.
func backfillCredentials(lines []string, name string) string {
	for _, line := range lines {
		idx := strings.Index(line, name)
		if idx < 0 || !strings.Contains(line, ",") {
			continue
		}
		rest := strings.TrimLeft(line[idx+len(name):], ", ")
		rest = strings.TrimSpace(rest)
		if rest != "" {
			return rest
		}
	}
	return ""
}

var specialtyBoundaryRe = regexp.MustCompile(`([a-z)])([A-Z])`)

// repairSpecialtyBullets re-inserts separators into a concatenated
// multi-specialty string ("Spine SurgeryNeurosurgery"). Text that already
// carries bullets is left alone.
func repairSpecialtyBullets(s string) string {
	if s == "" || strings.Contains(s, "•") {
		return s
	}
	return specialtyBoundaryRe.ReplaceAllString(s, "$1 • $2")
}

func firstWord(s string) string {
	fields := strings.Fields(strings.TrimSpace(s))
	if len(fields) == 0 {
		return ""
	}
	return fields[0]
}

func nameHasWord(name, word string) bool {
	if word == "" {
		return false
	}
	for _, w := range strings.Fields(name) {
		if strings.EqualFold(w, word) {
			return true
		}
	}
	return false
}
