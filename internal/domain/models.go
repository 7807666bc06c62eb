package domain

// PersonalInfo holds contact details located in the resume text. Fields the
// extractors found no match for stay nil and serialize as JSON null.
type PersonalInfo struct {
	FullName    *string `json:"full_name"`
	Email       *string `json:"email"`
	PhoneNumber *string `json:"phone_number"`
	LinkedInURL *string `json:"linkedin_url"`
	GitHubURL   *string `json:"github_url"`
	Location    *string `json:"location"`
}

// EducationEntry is a single free-text degree line; institution and year are
// not separated out.
type EducationEntry struct {
	DegreeInfo string `json:"degree_info"`
}

// WorkExperience holds the heuristic role/company matches plus every distinct
// organization mentioned anywhere in the document.
type WorkExperience struct {
	JobRolesAndCompanies  []string `json:"job_roles_and_companies"`
	AllCompaniesMentioned []string `json:"all_companies_mentioned"`
}

// CandidateProfile is the fixed-shape analysis result. Every field name is
// always present in the response; unextracted fields are null, never omitted.
type CandidateProfile struct {
	PersonalInfo   PersonalInfo     `json:"candidate_personal_info"`
	Education      []EducationEntry `json:"education"`
	WorkExperience WorkExperience   `json:"work_experience"`
	Skills         []string         `json:"skills"`
	Projects       *string          `json:"projects"`
	Certifications *string          `json:"certifications"`
	Summary        *string          `json:"summary"`

	// Not extracted by the current pipeline; kept as null placeholders so the
	// response shape stays stable for clients.
	AchievementsAwards         *string `json:"achievements_awards"`
	Languages                  *string `json:"languages"`
	AvailabilityWorkPreference *string `json:"availability_work_preference"`
}

// ResumeAnalysis pairs the analysis with the uploaded file's original name.
type ResumeAnalysis struct {
	Filename string           `json:"filename"`
	Analysis CandidateProfile `json:"analysis"`
}
