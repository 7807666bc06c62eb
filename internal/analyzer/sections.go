package analyzer

import (
	"regexp"
	"strings"
)

// headingRe matches a generic heading-like line: word characters and spaces
// only. Any such line terminates the current section, so a short bullet of
// plain words can truncate a section early — an accepted imprecision of the
// boundary heuristic.
var headingRe = regexp.MustCompile(`(?m)^\s*\w+[\s\w]*\s*$`)

// Section returns the body of the named free-text section, or nil when the
// text has no line consisting solely of the title. The body runs from the
// end of the heading line to the next heading-like line, or end of text.
func Section(text, title string) *string {
	titleRe := regexp.MustCompile(`(?im)^\s*` + regexp.QuoteMeta(title) + `\s*$`)
	loc := titleRe.FindStringIndex(text)
	if loc == nil {
		return nil
	}

	rest := text[loc[1]:]
	end := len(rest)
	if next := headingRe.FindStringIndex(rest); next != nil {
		end = next[0]
	}
	body := strings.TrimSpace(rest[:end])
	return &body
}
