package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validProfile() UserProfile {
	return UserProfile{
		UserID:              "u1",
		Name:                "Alice",
		Goal:                "Learn to deploy ML models into production",
		LearningStyle:       StyleVisual,
		PreferredDifficulty: DifficultyIntermediate,
		TimePerDay:          60,
		ViewedContentIDs:    []int{1},
		InterestTags:        []string{"ml", "deployment"},
	}
}

func TestUserProfile_Validate_Valid(t *testing.T) {
	profile := validProfile()
	require.NoError(t, profile.Validate())
}

func TestUserProfile_Validate_MissingRequiredFields(t *testing.T) {
	profile := validProfile()
	profile.UserID = ""
	profile.Goal = ""
	assert.Error(t, profile.Validate())
}

func TestUserProfile_Validate_NonPositiveTimeBudget(t *testing.T) {
	profile := validProfile()
	profile.TimePerDay = 0
	assert.Error(t, profile.Validate())

	profile.TimePerDay = -30
	assert.Error(t, profile.Validate())
}

func TestUserProfile_Validate_UnknownEnums(t *testing.T) {
	profile := validProfile()
	profile.LearningStyle = "auditory"
	assert.Error(t, profile.Validate())

	profile = validProfile()
	profile.PreferredDifficulty = "Expert"
	assert.Error(t, profile.Validate())
}

func TestUserProfile_HasViewed(t *testing.T) {
	profile := validProfile()
	assert.True(t, profile.HasViewed(1))
	assert.False(t, profile.HasViewed(2))
}

func TestContentItem_Validate(t *testing.T) {
	item := ContentItem{
		ID:              1,
		Title:           "Introduction to Kubernetes for ML Engineers",
		Description:     "Hands-on deployment walkthrough",
		Difficulty:      DifficultyIntermediate,
		DurationMinutes: 45,
		Tags:            []string{"kubernetes", "ml"},
		Format:          FormatVideo,
	}
	require.NoError(t, item.Validate())

	item.DurationMinutes = 0
	assert.Error(t, item.Validate())

	item.DurationMinutes = 45
	item.Format = "podcast"
	assert.Error(t, item.Validate())
}
