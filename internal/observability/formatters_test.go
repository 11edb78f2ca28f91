package observability

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jonathan/edu-recommender/internal/types"
)

func TestPrintProfile(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintProfile(&types.UserProfile{
		UserID:              "u1",
		Name:                "Alice",
		Goal:                "Deploy ML models",
		LearningStyle:       types.StyleVisual,
		PreferredDifficulty: types.DifficultyIntermediate,
		TimePerDay:          60,
		InterestTags:        []string{"ml", "deployment"},
	})

	out := buf.String()
	assert.Contains(t, out, "LEARNER PROFILE")
	assert.Contains(t, out, "Alice")
	assert.Contains(t, out, "ml, deployment")
}

func TestPrintProfileNil(t *testing.T) {
	var buf bytes.Buffer
	NewPrinter(&buf).PrintProfile(nil)
	assert.Empty(t, buf.String())
}

func TestPrintRecommendations(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	score := 0.85
	p.PrintRecommendations([]types.Recommendation{
		{Rank: 1, ID: 2, Title: "Deploying Models", Format: "video", Difficulty: "Intermediate",
			DurationMinutes: 45, Explanation: "Strong tag match.", MatchScore: &score},
	})

	out := buf.String()
	assert.Contains(t, out, "Deploying Models")
	assert.Contains(t, out, "0.850")
	assert.Contains(t, out, "Strong tag match.")
}

func TestPrintRecommendationsEmpty(t *testing.T) {
	var buf bytes.Buffer
	NewPrinter(&buf).PrintRecommendations(nil)
	assert.Contains(t, buf.String(), "No recommendations")
}

func TestPrintPipelineLog(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintPipelineLog([]types.PipelineStep{
		{Step: "Embed content catalogue", Status: types.StepDone, Detail: "Encoded 10 items (12ms, first run)", DurationMS: 12},
		{Step: "Rule-based ranking", Status: types.StepDone, Detail: "Ranked via rule-based -> top 3 (1ms)", DurationMS: 1},
	})

	out := buf.String()
	assert.Contains(t, out, "PIPELINE")
	assert.Contains(t, out, "Embed content catalogue")
}
