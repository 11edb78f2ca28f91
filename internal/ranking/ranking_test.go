package ranking

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/edu-recommender/internal/llm"
)

// fakeClient returns a canned response or error and records the prompts it saw.
type fakeClient struct {
	result *llm.Result
	err    error

	lastSystem string
	lastUser   string
}

func (f *fakeClient) Chat(_ context.Context, system, user string, _ llm.Options) (*llm.Result, error) {
	f.lastSystem = system
	f.lastUser = user
	if f.err != nil {
		return nil, f.err
	}
	return f.result, nil
}

func (f *fakeClient) Model() string { return "fake-model" }
func (f *fakeClient) Close() error  { return nil }

func TestRankNilClientUsesRules(t *testing.T) {
	ranker := NewRanker(nil, 0)
	result := ranker.Rank(context.Background(), sampleProfile(), sampleCandidates())

	assert.Equal(t, MethodRuleBased, result.Method)
	assert.NotEmpty(t, result.Recommendations)
}

func TestRankFallsBackOnClientError(t *testing.T) {
	client := &fakeClient{err: errors.New("connection refused")}
	ranker := NewRanker(client, 0)

	result := ranker.Rank(context.Background(), sampleProfile(), sampleCandidates())

	assert.Equal(t, MethodRuleBased, result.Method)
	assert.NotEmpty(t, result.Recommendations, "fallback must still produce recommendations")
}

func TestRankFallsBackOnUnparseableResponse(t *testing.T) {
	client := &fakeClient{result: &llm.Result{Content: "I recommend items 2 and 5."}}
	ranker := NewRanker(client, 0)

	result := ranker.Rank(context.Background(), sampleProfile(), sampleCandidates())
	assert.Equal(t, MethodRuleBased, result.Method)
}

func TestRankLLMSuccess(t *testing.T) {
	client := &fakeClient{result: &llm.Result{
		Content: "```json\n" + `[
			{"id": 2, "rank": 99, "explanation": "Strong tag match."},
			{"id": 5, "explanation": "Covers deployment."},
			{"id": 3}
		]` + "\n```",
		Reasoning: "weighed tags and style",
	}}
	ranker := NewRanker(client, 0)

	result := ranker.Rank(context.Background(), sampleProfile(), sampleCandidates())

	require.Equal(t, MethodLLM, result.Method)
	assert.Equal(t, "weighed tags and style", result.RawReasoning)
	require.Len(t, result.Recommendations, 3)

	first := result.Recommendations[0]
	assert.Equal(t, 1, first.Rank, "rank comes from position, not the model")
	assert.Equal(t, 2, first.ID)
	assert.Equal(t, "Deploying Models", first.Title, "missing fields backfill from the candidate")
	assert.Equal(t, "video", first.Format)
	assert.Equal(t, "Strong tag match.", first.Explanation)

	third := result.Recommendations[2]
	assert.Equal(t, 3, third.Rank)
	assert.Equal(t, "Recommended based on your profile.", third.Explanation)

	// Prompt carries the learner profile and the candidate set.
	assert.Contains(t, client.lastUser, "Alice")
	assert.Contains(t, client.lastUser, "Deploying Models")
}

func TestRankLLMTruncatesToThree(t *testing.T) {
	client := &fakeClient{result: &llm.Result{
		Content: `[{"id": 1}, {"id": 2}, {"id": 3}, {"id": 5}]`,
	}}
	ranker := NewRanker(client, 0)

	result := ranker.Rank(context.Background(), sampleProfile(), sampleCandidates())
	require.Equal(t, MethodLLM, result.Method)
	assert.Len(t, result.Recommendations, 3)
}

func TestRankLLMAnswerInReasoningField(t *testing.T) {
	client := &fakeClient{result: &llm.Result{
		Content:   "",
		Reasoning: `The best picks: [{"id": 5, "explanation": "Pipelines first."}]`,
	}}
	ranker := NewRanker(client, 0)

	result := ranker.Rank(context.Background(), sampleProfile(), sampleCandidates())
	require.Equal(t, MethodLLM, result.Method)
	require.Len(t, result.Recommendations, 1)
	assert.Equal(t, 5, result.Recommendations[0].ID)
}

func TestRankUnknownIDLeavesZeroBackfill(t *testing.T) {
	client := &fakeClient{result: &llm.Result{
		Content: `[{"id": 42, "title": "Mystery", "explanation": "?"}]`,
	}}
	ranker := NewRanker(client, 0)

	result := ranker.Rank(context.Background(), sampleProfile(), sampleCandidates())
	require.Equal(t, MethodLLM, result.Method)
	require.Len(t, result.Recommendations, 1)
	rec := result.Recommendations[0]
	assert.Equal(t, 42, rec.ID)
	assert.Equal(t, "Mystery", rec.Title)
	assert.Empty(t, rec.Format)
}
