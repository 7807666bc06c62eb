package analyzer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"talentsift/internal/nlp"
)

func TestProfile_MergesAllExtractors(t *testing.T) {
	text := "Jane Doe\nEmail: jane@example.com\n" +
		"Python and Docker in production.\n" +
		"B.Tech in Computer Science\n" +
		"Projects\nBuilt an inventory system.\n"
	doc := &nlp.Document{
		Text: text,
		Entities: []nlp.Entity{
			{Text: "Jane Doe", Category: nlp.CategoryPerson, Start: 0, End: 8},
		},
	}

	profile := Profile(text, doc)

	require.NotNil(t, profile.PersonalInfo.FullName)
	assert.Equal(t, "Jane Doe", *profile.PersonalInfo.FullName)
	require.NotNil(t, profile.PersonalInfo.Email)
	assert.Equal(t, "jane@example.com", *profile.PersonalInfo.Email)

	assert.Equal(t, []string{"Docker", "Python"}, profile.Skills)

	require.Len(t, profile.Education, 1)
	assert.Equal(t, "B.Tech in Computer Science", profile.Education[0].DegreeInfo)

	require.NotNil(t, profile.Projects)
	assert.Equal(t, "Built an inventory system.", *profile.Projects)

	assert.Nil(t, profile.Certifications)
	assert.Nil(t, profile.Summary)
	assert.Nil(t, profile.AchievementsAwards)
	assert.Nil(t, profile.Languages)
	assert.Nil(t, profile.AvailabilityWorkPreference)
}

func TestProfile_SummaryFallsBackToObjective(t *testing.T) {
	text := "Objective\nSeeking backend roles.\n"
	doc := &nlp.Document{Text: text}

	profile := Profile(text, doc)

	require.NotNil(t, profile.Summary)
	assert.Equal(t, "Seeking backend roles.", *profile.Summary)
}

func TestProfile_EmptySummarySectionFallsBackToObjective(t *testing.T) {
	text := "Summary\nObjective\nSeeking backend roles.\n"
	doc := &nlp.Document{Text: text}

	profile := Profile(text, doc)

	require.NotNil(t, profile.Summary)
	assert.Equal(t, "Seeking backend roles.", *profile.Summary)
}

func TestProfile_NonEmptySummaryWins(t *testing.T) {
	text := "Summary\nShipping things since 2015.\nObjective\nSeeking backend roles.\n"
	doc := &nlp.Document{Text: text}

	profile := Profile(text, doc)

	require.NotNil(t, profile.Summary)
	assert.Equal(t, "Shipping things since 2015.", *profile.Summary)
}
