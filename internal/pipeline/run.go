// Package pipeline orchestrates the four-stage recommendation flow: embed the
// content catalogue (cached), embed the user profile, retrieve candidates by
// cosine similarity, and re-rank to the final top 3. Every stage is timed and
// appended to a step log that ships with the response.
package pipeline

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/jonathan/edu-recommender/internal/embedding"
	"github.com/jonathan/edu-recommender/internal/ranking"
	"github.com/jonathan/edu-recommender/internal/retrieval"
	"github.com/jonathan/edu-recommender/internal/types"
)

// Step names reported in the pipeline log.
const (
	StepEmbedCatalogue = "Embed content catalogue"
	StepEmbedUser      = "Embed user profile"
	StepRetrieval      = "Cosine similarity retrieval"
	StepLLMRanking     = "LLM re-ranking"
	StepRuleRanking    = "Rule-based ranking"
)

// Catalog supplies the content items the pipeline recommends from.
type Catalog interface {
	All() []types.ContentItem
}

// Runner executes the recommendation pipeline. It is safe for concurrent use.
type Runner struct {
	catalog  Catalog
	embedder embedding.Provider
	ranker   *ranking.Ranker
	k        int

	cache contentCache

	now func() time.Time // injectable for tests
}

// NewRunner wires the pipeline stages together. k is the retrieval fan-out
// handed to the ranker; values below 1 fall back to 5.
func NewRunner(catalog Catalog, embedder embedding.Provider, ranker *ranking.Ranker, k int) *Runner {
	if k < 1 {
		k = 5
	}
	return &Runner{
		catalog:  catalog,
		embedder: embedder,
		ranker:   ranker,
		k:        k,
		now:      time.Now,
	}
}

// Run executes the full pipeline for a validated profile. The only error it
// returns is an embedding failure; ranking problems are absorbed by the
// rule-based fallback inside the ranker. Callers are expected to have run
// profile.Validate() already.
func (r *Runner) Run(ctx context.Context, profile types.UserProfile) (*types.RecommendationResponse, error) {
	start := r.now()
	log := make([]types.PipelineStep, 0, 4)
	items := r.catalog.All()

	// Stage 1: catalogue embeddings, cached across runs.
	stageStart := r.now()
	contentVecs, cached, err := r.contentEmbeddings(ctx, items)
	if err != nil {
		return nil, fmt.Errorf("embedding content catalogue: %w", err)
	}
	dt := r.sinceMS(stageStart)
	source := "first run"
	if cached {
		source = "cached"
	}
	log = append(log, types.PipelineStep{
		Step:       StepEmbedCatalogue,
		Status:     types.StepDone,
		Detail:     fmt.Sprintf("Encoded %d items (%dms, %s)", len(items), dt, source),
		DurationMS: dt,
	})

	// Stage 2: user profile embedding.
	stageStart = r.now()
	userVecs, err := r.embedder.Embed(ctx, []string{embedding.UserText(profile)})
	if err != nil {
		return nil, fmt.Errorf("embedding user profile: %w", err)
	}
	if len(userVecs) != 1 {
		return nil, fmt.Errorf("embedding user profile: expected 1 vector, got %d", len(userVecs))
	}
	dt = r.sinceMS(stageStart)
	log = append(log, types.PipelineStep{
		Step:       StepEmbedUser,
		Status:     types.StepDone,
		Detail:     fmt.Sprintf("Encoded goal + %d interest tags (%dms)", len(profile.InterestTags), dt),
		DurationMS: dt,
	})

	// Stage 3: cosine similarity retrieval.
	stageStart = r.now()
	candidates := make([]retrieval.Candidate, len(items))
	for i, item := range items {
		candidates[i] = retrieval.Candidate{Item: item, Vector: contentVecs[i]}
	}
	top := retrieval.TopK(userVecs[0], candidates, r.k, profile.ViewedContentIDs)
	dt = r.sinceMS(stageStart)
	eligible := len(items) - len(profile.ViewedContentIDs)
	log = append(log, types.PipelineStep{
		Step:       StepRetrieval,
		Status:     types.StepDone,
		Detail:     fmt.Sprintf("Retrieved top-%d from %d candidates (%dms)", r.k, eligible, dt),
		DurationMS: dt,
	})

	// Stage 4: re-ranking. Never fails.
	stageStart = r.now()
	ranked := r.ranker.Rank(ctx, profile, top)
	dt = r.sinceMS(stageStart)
	stepName := StepRuleRanking
	if ranked.Method == ranking.MethodLLM {
		stepName = StepLLMRanking
	}
	log = append(log, types.PipelineStep{
		Step:       stepName,
		Status:     types.StepDone,
		Detail:     fmt.Sprintf("Ranked via %s -> top 3 (%dms)", ranked.Method, dt),
		DurationMS: dt,
	})

	return &types.RecommendationResponse{
		RunID:           uuid.NewString(),
		UserID:          profile.UserID,
		Recommendations: ranked.Recommendations,
		PipelineLog:     log,
		LLMReasoning:    ranked.RawReasoning,
		TotalDurationMS: r.sinceMS(start),
	}, nil
}

// contentEmbeddings returns catalogue vectors, consulting the cache first.
// The cache key is a hash of the ordered id tuple, so adding, removing, or
// reordering items invalidates it.
func (r *Runner) contentEmbeddings(ctx context.Context, items []types.ContentItem) ([]embedding.Vector, bool, error) {
	key := catalogKey(items)
	if vecs, ok := r.cache.get(key); ok {
		return vecs, true, nil
	}

	vecs, err := r.embedder.Embed(ctx, embedding.ContentTexts(items))
	if err != nil {
		return nil, false, err
	}
	if len(vecs) != len(items) {
		return nil, false, fmt.Errorf("expected %d vectors, got %d", len(items), len(vecs))
	}
	r.cache.put(key, vecs)
	return vecs, false, nil
}

func (r *Runner) sinceMS(t time.Time) int64 {
	return r.now().Sub(t).Milliseconds()
}
