package prompts

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGet_RankingPrompts(t *testing.T) {
	system, err := Get("ranking.json", "rerank-system")
	require.NoError(t, err)
	assert.Contains(t, system, "JSON array")
	assert.Contains(t, system, "duration_minutes")

	user, err := Get("ranking.json", "rerank-user")
	require.NoError(t, err)
	assert.Contains(t, user, "{{.CandidatesJSON}}")
}

func TestGet_MissingKey(t *testing.T) {
	_, err := Get("ranking.json", "nope")
	assert.Error(t, err)
}

func TestGet_MissingFile(t *testing.T) {
	_, err := Get("missing.json", "rerank-system")
	assert.Error(t, err)
}

func TestMustGet_PanicsOnMissing(t *testing.T) {
	assert.Panics(t, func() {
		MustGet("ranking.json", "does-not-exist")
	})
}

func TestFormat(t *testing.T) {
	out := Format("Hello {{.Name}}, goal: {{.Goal}}", map[string]string{
		"Name": "Alice",
		"Goal": "learn Go",
	})
	assert.Equal(t, "Hello Alice, goal: learn Go", out)
}
