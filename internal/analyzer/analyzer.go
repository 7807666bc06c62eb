// Package analyzer holds the heuristic extractors that turn resume text and
// its linguistic annotation into a structured candidate profile. Every
// extractor is a stateless function over its inputs; they run independently
// and only meet again when Profile merges their results.
package analyzer

import (
	"talentsift/internal/domain"
	"talentsift/internal/nlp"
)

// Profile runs all extractors against the same text/annotation pair and
// merges their output into the fixed-shape candidate profile.
func Profile(text string, doc *nlp.Document) domain.CandidateProfile {
	summary := Section(text, "Summary")
	if summary == nil || *summary == "" {
		summary = Section(text, "Objective")
	}

	return domain.CandidateProfile{
		PersonalInfo:   PersonalInfo(text, doc),
		Education:      Education(text),
		WorkExperience: Experience(doc),
		Skills:         Skills(text),
		Projects:       Section(text, "Projects"),
		Certifications: Section(text, "Certifications"),
		Summary:        summary,
	}
}
