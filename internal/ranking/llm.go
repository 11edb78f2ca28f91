package ranking

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/jonathan/edu-recommender/internal/llm"
	"github.com/jonathan/edu-recommender/internal/prompts"
	"github.com/jonathan/edu-recommender/internal/types"
)

// rankViaLLM runs the remote ranking branch and reports its outcome. Every
// failure mode (transport error, non-2xx, empty response, no parseable array)
// ends up as a failure tag, never a propagated error.
func (r *Ranker) rankViaLLM(ctx context.Context, profile types.UserProfile, candidates []types.ContentItem) Outcome {
	userPrompt, err := buildUserPrompt(profile, candidates)
	if err != nil {
		return Outcome{Err: fmt.Errorf("building user prompt: %w", err)}
	}
	systemPrompt := prompts.MustGet("ranking.json", "rerank-system")

	callCtx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	resp, err := r.client.Chat(callCtx, systemPrompt, userPrompt, llm.DefaultOptions())
	if err != nil {
		return Outcome{Err: err}
	}

	// Some providers put the answer in the reasoning field and leave content empty.
	text := resp.Content
	if text == "" {
		text = resp.Reasoning
	}
	if text == "" {
		return Outcome{Err: fmt.Errorf("LLM returned an empty response")}
	}

	text = llm.StripCodeFences(text)
	items := ExtractJSONArray(text)
	if len(items) == 0 {
		return Outcome{Err: fmt.Errorf("no valid JSON array found in LLM response")}
	}

	return Outcome{
		OK: true,
		Result: &Result{
			Recommendations: mapRecommendations(items, candidates),
			RawReasoning:    resp.Reasoning,
			Method:          MethodLLM,
		},
	}
}

// buildUserPrompt assembles the user-turn message: learner profile fields plus
// the JSON-serialized candidate list.
func buildUserPrompt(profile types.UserProfile, candidates []types.ContentItem) (string, error) {
	candidatesJSON, err := json.MarshalIndent(candidates, "", "  ")
	if err != nil {
		return "", err
	}

	template := prompts.MustGet("ranking.json", "rerank-user")
	return prompts.Format(template, map[string]string{
		"Name":                profile.Name,
		"Goal":                profile.Goal,
		"LearningStyle":       string(profile.LearningStyle),
		"PreferredDifficulty": string(profile.PreferredDifficulty),
		"TimePerDay":          strconv.Itoa(profile.TimePerDay),
		"Interests":           strings.Join(profile.InterestTags, ", "),
		"ViewedIDs":           fmt.Sprint(profile.ViewedContentIDs),
		"CandidatesJSON":      string(candidatesJSON),
	}), nil
}

// mapRecommendations converts up to the first 3 extracted objects into
// Recommendation records. Rank is assigned by output position rather than
// trusting any "rank" field the model emitted. Missing fields are back-filled
// from the matching candidate by id when available, otherwise left at their
// zero value.
func mapRecommendations(items []map[string]any, candidates []types.ContentItem) []types.Recommendation {
	byID := make(map[int]types.ContentItem, len(candidates))
	for _, cand := range candidates {
		byID[cand.ID] = cand
	}

	if len(items) > 3 {
		items = items[:3]
	}

	recommendations := make([]types.Recommendation, 0, len(items))
	for idx, obj := range items {
		id := intField(obj, "id", 0)
		fallback := byID[id] // zero value when the id is unknown

		recommendations = append(recommendations, types.Recommendation{
			Rank:            idx + 1,
			ID:              id,
			Title:           stringField(obj, "title", fallback.Title),
			Format:          stringField(obj, "format", string(fallback.Format)),
			Difficulty:      stringField(obj, "difficulty", string(fallback.Difficulty)),
			DurationMinutes: intField(obj, "duration_minutes", fallback.DurationMinutes),
			Tags:            tagsField(obj, "tags", fallback.Tags),
			Explanation:     stringField(obj, "explanation", "Recommended based on your profile."),
		})
	}
	return recommendations
}

func stringField(obj map[string]any, key, fallback string) string {
	if v, ok := obj[key].(string); ok {
		return v
	}
	return fallback
}

func intField(obj map[string]any, key string, fallback int) int {
	// encoding/json decodes numbers in any-typed maps as float64.
	if v, ok := obj[key].(float64); ok {
		return int(v)
	}
	return fallback
}

func tagsField(obj map[string]any, key string, fallback []string) []string {
	raw, ok := obj[key].([]any)
	if !ok {
		return fallback
	}
	tags := make([]string, 0, len(raw))
	for _, entry := range raw {
		if s, ok := entry.(string); ok {
			tags = append(tags, s)
		}
	}
	return tags
}
