package profile

import (
	"regexp"
	"strings"
)

// locationHeadings are matched exactly (not by prefix) and by last
// occurrence: the same phrase appears earlier on the page as navigation
// chrome, and the first occurrence would capture the nav bar.
var locationHeadings = []string{
	"locations",
	"office locations",
	"practice locations",
}

var (
	phoneLineRe    = regexp.MustCompile(`(?i)^(?:phone|tel|telephone)\b`)
	faxLineRe      = regexp.MustCompile(`(?i)^fax\b`)
	contactValueRe = regexp.MustCompile(`[\d(][\d()+.\-\s/]*`)
	leadingIndexRe = regexp.MustCompile(`^\d+[.)]?\s+`)
)

// Lines the embedded map widget leaves behind when the page is copied.
var mapArtifactExact = map[string]bool{
	"map":        true,
	"view map":   true,
	"directions": true,
	"satellite":  true,
	"zoom in":    true,
	"zoom out":   true,
}

var mapArtifactPrefixes = []string{
	"map data",
	"get directions",
	"loading",
	"leaflet",
	"terms of",
	"©",
}

func isContactLine(line string) bool {
	return phoneLineRe.MatchString(line) || faxLineRe.MatchString(line)
}

// contactValue extracts the number run after a "Phone:"/"Fax:" label.
func contactValue(line string) string {
	if i := strings.Index(line, ":"); i >= 0 {
		line = line[i+1:]
	}
	return strings.TrimSpace(contactValueRe.FindString(line))
}

func isLocationNoise(line string) bool {
	low := strings.ToLower(strings.TrimSpace(line))
	if low == "show more" || low == "show less" {
		return true
	}
	if mapArtifactExact[low] {
		return true
	}
	for _, p := range mapArtifactPrefixes {
		if strings.HasPrefix(low, p) {
			return true
		}
	}
	// Booking-status chrome ("Accepting new patients" etc).
	return isNoiseLine(line)
}

// parseLocations extracts clinic entries from the block after the last
// standalone Locations heading. Each entry is a name line (numeric list
// prefix stripped), an optional address line, then any run of phone/fax
// lines. Entries with no data at all are dropped; document order is kept.
func parseLocations(lines []string) []Location {
	idx := lastExactHeading(lines, locationHeadings)
	if idx < 0 {
		return nil
	}
	block := extractBlock(lines, idx, nil)

	filtered := block[:0:0]
	for _, line := range block {
		if !isLocationNoise(line) {
			filtered = append(filtered, line)
		}
	}

	var out []Location
	i := 0
	for i < len(filtered) {
		var loc Location
		loc.Name = strings.TrimSpace(leadingIndexRe.ReplaceAllString(filtered[i], ""))
		i++
		if i < len(filtered) && !isContactLine(filtered[i]) {
			loc.Address = filtered[i]
			i++
		}
		for i < len(filtered) && isContactLine(filtered[i]) {
			if faxLineRe.MatchString(filtered[i]) {
				if loc.Fax == "" {
					loc.Fax = contactValue(filtered[i])
				}
			} else if loc.Phone == "" {
				loc.Phone = contactValue(filtered[i])
			}
			i++
		}
		if !loc.IsEmpty() {
			out = append(out, loc)
		}
	}
	return out
}
