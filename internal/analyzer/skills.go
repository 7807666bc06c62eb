package analyzer

import (
	"regexp"
	"sort"
)

// skillPatterns are whole-word, case-insensitive matchers compiled once at
// startup. Word-boundary anchoring keeps "JavaScripting" from matching
// "JavaScript" while "Python," still matches "Python".
var skillPatterns = func() map[string]*regexp.Regexp {
	patterns := make(map[string]*regexp.Regexp, len(SkillsKeywords))
	for _, skill := range SkillsKeywords {
		patterns[skill] = regexp.MustCompile(`(?i)\b` + regexp.QuoteMeta(skill) + `\b`)
	}
	return patterns
}()

// Skills returns every keyword from the closed vocabulary that occurs in the
// text, deduplicated and sorted alphabetically.
func Skills(text string) []string {
	found := []string{}
	for _, skill := range SkillsKeywords {
		if skillPatterns[skill].MatchString(text) {
			found = append(found, skill)
		}
	}
	sort.Strings(found)
	return found
}
