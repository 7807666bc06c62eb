package analyzer

import (
	"regexp"
	"strings"

	"talentsift/internal/domain"
)

// degreePatterns match a degree literal and the rest of its line, compiled
// once at startup.
var degreePatterns = func() []*regexp.Regexp {
	patterns := make([]*regexp.Regexp, len(EducationDegrees))
	for i, degree := range EducationDegrees {
		patterns[i] = regexp.MustCompile(`(?i)` + regexp.QuoteMeta(degree) + `[^\n]*`)
	}
	return patterns
}()

// Education scans for every known degree literal, case-insensitively, and
// treats each matched line as one degree entry. This is coverage-oriented:
// institution, year, and field are never separated out. Entries with
// identical trimmed text collapse to one, keeping first-seen order.
func Education(text string) []domain.EducationEntry {
	entries := []domain.EducationEntry{}
	seen := make(map[string]struct{})
	for _, pattern := range degreePatterns {
		for _, match := range pattern.FindAllString(text, -1) {
			info := strings.TrimSpace(match)
			if _, dup := seen[info]; dup {
				continue
			}
			seen[info] = struct{}{}
			entries = append(entries, domain.EducationEntry{DegreeInfo: info})
		}
	}
	return entries
}
