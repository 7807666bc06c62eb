package analyzer

import (
	"strings"

	"talentsift/internal/domain"
	"talentsift/internal/nlp"
)

// Experience applies a token-level phrase pattern: one or more consecutive
// proper-noun tokens, optionally one punctuation token, then a token inside
// an organization span. Every matching span is captured verbatim as a
// "role + company" candidate, with no validation that the proper-noun run is
// actually a job title; false positives are expected. Separately, every
// distinct organization mentioned anywhere in the document is collected,
// whether or not it took part in a pattern match.
func Experience(doc *nlp.Document) domain.WorkExperience {
	exp := domain.WorkExperience{
		JobRolesAndCompanies:  []string{},
		AllCompaniesMentioned: []string{},
	}

	tokens := doc.Tokens
	for start := 0; start < len(tokens); start++ {
		if !tokens[start].IsProperNoun() {
			continue
		}
		// Try every proper-noun run beginning at start, mirroring the
		// enumerate-all behavior of a phrase matcher with a + quantifier.
		for end := start; end < len(tokens) && tokens[end].IsProperNoun(); end++ {
			next := end + 1
			if next < len(tokens) && tokens[next].IsPunct() {
				next++
			}
			if next < len(tokens) && tokens[next].Entity == nlp.CategoryOrganization {
				span := doc.Text[tokens[start].Start:tokens[next].End]
				exp.JobRolesAndCompanies = append(exp.JobRolesAndCompanies, normalizeSpan(span))
			}
		}
	}

	seen := make(map[string]struct{})
	for _, ent := range doc.Entities {
		if ent.Category != nlp.CategoryOrganization {
			continue
		}
		if _, dup := seen[ent.Text]; dup {
			continue
		}
		seen[ent.Text] = struct{}{}
		exp.AllCompaniesMentioned = append(exp.AllCompaniesMentioned, ent.Text)
	}
	return exp
}

// normalizeSpan collapses internal whitespace so spans crossing line breaks
// read as a single phrase.
func normalizeSpan(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
