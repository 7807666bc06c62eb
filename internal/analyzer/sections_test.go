package analyzer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSection_BodyEndsAtNextHeading(t *testing.T) {
	text := "Projects\nBuilt an inventory system.\nShipped a mobile app.\n" +
		"Certifications\nAWS Certified Solutions Architect - Associate\n"

	projects := Section(text, "Projects")

	require.NotNil(t, projects)
	assert.Equal(t, "Built an inventory system.\nShipped a mobile app.", *projects)
	assert.NotContains(t, *projects, "Certifications")
}

func TestSection_LastSectionRunsToEndOfText(t *testing.T) {
	text := "Projects\nBuilt an inventory system.\n" +
		"Certifications\nAWS Certified Solutions Architect - Associate\n"

	certs := Section(text, "Certifications")

	require.NotNil(t, certs)
	assert.Equal(t, "AWS Certified Solutions Architect - Associate", *certs)
}

func TestSection_MissingHeadingReturnsNil(t *testing.T) {
	text := "Projects\nBuilt an inventory system.\n"

	assert.Nil(t, Section(text, "Certifications"))
}

func TestSection_HeadingMatchIsCaseInsensitive(t *testing.T) {
	text := "PROJECTS\nBuilt an inventory system.\n"

	projects := Section(text, "Projects")

	require.NotNil(t, projects)
	assert.Equal(t, "Built an inventory system.", *projects)
}

func TestSection_PlainWordLineTruncatesBody(t *testing.T) {
	// A bullet made only of words looks like a heading to the boundary
	// heuristic, so the body is cut short.
	text := "Projects\nSimple words only\nMore prose here.\n"

	projects := Section(text, "Projects")

	require.NotNil(t, projects)
	assert.Equal(t, "", *projects)
}

func TestSection_IndentedHeadingStillFound(t *testing.T) {
	text := "  Summary  \nSeasoned engineer with a bias for shipping.\n"

	summary := Section(text, "Summary")

	require.NotNil(t, summary)
	assert.Equal(t, "Seasoned engineer with a bias for shipping.", *summary)
}
