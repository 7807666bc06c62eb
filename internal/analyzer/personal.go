package analyzer

import (
	"regexp"

	"talentsift/internal/domain"
	"talentsift/internal/nlp"
)

var (
	emailRe    = regexp.MustCompile(`[\w.+-]+@[\w-]+\.[\w.-]+`)
	phoneRe    = regexp.MustCompile(`(\(?\d{3}\)?[-.\s]?)?(\d{3}[-.\s]?\d{4})`)
	linkedinRe = regexp.MustCompile(`linkedin\.com/in/[\w-]+`)
	githubRe   = regexp.MustCompile(`github\.com/[\w-]+`)
)

// PersonalInfo pulls name, location, and contact details from the text.
// First match wins everywhere: the first PERSON entity becomes the name and
// the first GPE entity the location, with no disambiguation when several are
// mentioned. The phone pattern only covers North-American-style groupings;
// international formats are silently missed.
func PersonalInfo(text string, doc *nlp.Document) domain.PersonalInfo {
	var info domain.PersonalInfo

	if ent, ok := doc.FirstEntity(nlp.CategoryPerson); ok {
		info.FullName = strPtr(ent.Text)
	}
	if ent, ok := doc.FirstEntity(nlp.CategoryLocation); ok {
		info.Location = strPtr(ent.Text)
	}
	if m := emailRe.FindString(text); m != "" {
		info.Email = strPtr(m)
	}
	if m := phoneRe.FindString(text); m != "" {
		info.PhoneNumber = strPtr(m)
	}
	if m := linkedinRe.FindString(text); m != "" {
		info.LinkedInURL = strPtr("https://www." + m)
	}
	if m := githubRe.FindString(text); m != "" {
		info.GitHubURL = strPtr("https://www." + m)
	}
	return info
}

func strPtr(s string) *string {
	return &s
}
