package analyzer

// Static reference lists, loaded once and never mutated. Both are closed
// vocabularies: a skill or degree absent from these lists can never be found.

// SkillsKeywords is the fixed set of recognizable skill names.
var SkillsKeywords = []string{
	"Python", "Java", "JavaScript", "React", "Node.js", "SQL", "MongoDB", "AWS",
	"Git", "Docker", "Kubernetes", "Agile", "Scrum", "Teamwork", "Communication",
	"Leadership", "Problem Solving", "Jira", "Figma", "TensorFlow", "PyTorch",
}

// EducationDegrees is the fixed set of known degree name variants.
var EducationDegrees = []string{
	"B.E.", "B.Tech", "M.Tech", "B.S.", "M.S.", "B.Sc", "M.Sc", "Ph.D",
	"Bachelor of Engineering", "Master of Engineering",
	"Bachelor of Technology", "Master of Technology",
	"Bachelor of Science", "Master of Science", "Doctor of Philosophy",
}
