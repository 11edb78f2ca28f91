package ranking

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/edu-recommender/internal/types"
)

func sampleProfile() types.UserProfile {
	return types.UserProfile{
		UserID:              "u1",
		Name:                "Alice",
		Goal:                "Ship ML models to production",
		LearningStyle:       types.StyleVisual,
		PreferredDifficulty: types.DifficultyIntermediate,
		TimePerDay:          60,
		ViewedContentIDs:    []int{1},
		InterestTags:        []string{"ml", "deployment"},
	}
}

func sampleCandidates() []types.ContentItem {
	return []types.ContentItem{
		{ID: 1, Title: "Intro to ML", Difficulty: types.DifficultyBeginner, DurationMinutes: 30, Tags: []string{"ml"}, Format: types.FormatVideo},
		{ID: 2, Title: "Deploying Models", Difficulty: types.DifficultyIntermediate, DurationMinutes: 45, Tags: []string{"ml", "deployment"}, Format: types.FormatVideo},
		{ID: 3, Title: "Advanced Theory", Difficulty: types.DifficultyAdvanced, DurationMinutes: 50, Tags: []string{"theory"}, Format: types.FormatSlides},
		{ID: 4, Title: "Marathon Course", Difficulty: types.DifficultyIntermediate, DurationMinutes: 90, Tags: []string{"ml", "deployment"}, Format: types.FormatVideo},
		{ID: 5, Title: "Data Pipelines", Difficulty: types.DifficultyIntermediate, DurationMinutes: 40, Tags: []string{"deployment"}, Format: types.FormatLecture},
	}
}

func TestRuleBasedExcludesViewedAndOverBudget(t *testing.T) {
	result := RuleBased(sampleProfile(), sampleCandidates())

	require.Equal(t, MethodRuleBased, result.Method)
	for _, rec := range result.Recommendations {
		assert.NotEqual(t, 1, rec.ID, "viewed item should be excluded")
		assert.NotEqual(t, 4, rec.ID, "90-minute item exceeds the 60-minute budget")
	}
}

func TestRuleBasedScoringAndOrder(t *testing.T) {
	result := RuleBased(sampleProfile(), sampleCandidates())

	require.Len(t, result.Recommendations, 3)

	// Item 2: full tag overlap (1.0) + video format bonus (0.2), no
	// difficulty penalty.
	top := result.Recommendations[0]
	assert.Equal(t, 2, top.ID)
	assert.Equal(t, 1, top.Rank)
	require.NotNil(t, top.MatchScore)
	assert.Equal(t, 1.0, *top.MatchScore, "raw score 1.2 clamps to 1.0")
	assert.Contains(t, top.Explanation, "ml, deployment")

	// Item 5: overlap 0.5, lecture is not a visual-style format, no penalty.
	second := result.Recommendations[1]
	assert.Equal(t, 5, second.ID)
	assert.Equal(t, 2, second.Rank)
	require.NotNil(t, second.MatchScore)
	assert.Equal(t, 0.5, *second.MatchScore)

	// Item 3: no overlap, no bonus, one step from preferred difficulty.
	// Raw score -0.15 clamps to 0.
	third := result.Recommendations[2]
	assert.Equal(t, 3, third.ID)
	require.NotNil(t, third.MatchScore)
	assert.Equal(t, 0.0, *third.MatchScore)
}

func TestRuleBasedEmptyInterestTags(t *testing.T) {
	profile := sampleProfile()
	profile.InterestTags = nil

	result := RuleBased(profile, sampleCandidates())
	require.NotEmpty(t, result.Recommendations)
	for _, rec := range result.Recommendations {
		require.NotNil(t, rec.MatchScore)
		assert.GreaterOrEqual(t, *rec.MatchScore, 0.0)
		assert.LessOrEqual(t, *rec.MatchScore, 1.0)
	}
}

func TestRuleBasedDeterministic(t *testing.T) {
	first := RuleBased(sampleProfile(), sampleCandidates())
	second := RuleBased(sampleProfile(), sampleCandidates())
	assert.Equal(t, first, second)
}

func TestRuleBasedStableTies(t *testing.T) {
	profile := sampleProfile()
	candidates := []types.ContentItem{
		{ID: 10, Title: "A", Difficulty: types.DifficultyIntermediate, DurationMinutes: 30, Tags: []string{"ml"}, Format: types.FormatVideo},
		{ID: 11, Title: "B", Difficulty: types.DifficultyIntermediate, DurationMinutes: 30, Tags: []string{"ml"}, Format: types.FormatVideo},
	}

	result := RuleBased(profile, candidates)
	require.Len(t, result.Recommendations, 2)
	assert.Equal(t, 10, result.Recommendations[0].ID, "equal scores keep input order")
	assert.Equal(t, 11, result.Recommendations[1].ID)
}

func TestRuleBasedNoEligibleCandidates(t *testing.T) {
	profile := sampleProfile()
	profile.TimePerDay = 5

	result := RuleBased(profile, sampleCandidates())
	assert.Empty(t, result.Recommendations)
	assert.Equal(t, MethodRuleBased, result.Method)
}
