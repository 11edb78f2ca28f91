// Package retrieval provides cosine-similarity candidate retrieval over
// content embeddings. All functions are pure: identical inputs produce
// identical, order-stable output.
package retrieval

import (
	"math"
	"sort"

	"github.com/jonathan/edu-recommender/internal/embedding"
	"github.com/jonathan/edu-recommender/internal/types"
)

// Candidate pairs a catalogue item with its embedding vector.
type Candidate struct {
	Item   types.ContentItem
	Vector embedding.Vector
}

// CosineSimilarity returns the cosine of the angle between two vectors,
// in [-1, 1]. A zero vector (or a dimension mismatch) yields 0, not an error.
func CosineSimilarity(a, b embedding.Vector) float64 {
	if len(a) != len(b) || len(a) == 0 {
		return 0
	}

	var dot, normA, normB float64
	for i := range a {
		dot += float64(a[i]) * float64(b[i])
		normA += float64(a[i]) * float64(a[i])
		normB += float64(b[i]) * float64(b[i])
	}
	if normA == 0 || normB == 0 {
		return 0
	}
	return dot / (math.Sqrt(normA) * math.Sqrt(normB))
}

// TopK returns the k candidates most similar to the user vector, excluding
// any whose id appears in excludeIDs. Ties are broken by original candidate
// order (stable sort), which keeps results reproducible.
func TopK(userVec embedding.Vector, candidates []Candidate, k int, excludeIDs []int) []types.ContentItem {
	excluded := make(map[int]bool, len(excludeIDs))
	for _, id := range excludeIDs {
		excluded[id] = true
	}

	type scored struct {
		item  types.ContentItem
		score float64
	}

	eligible := make([]scored, 0, len(candidates))
	for _, cand := range candidates {
		if excluded[cand.Item.ID] {
			continue
		}
		eligible = append(eligible, scored{
			item:  cand.Item,
			score: CosineSimilarity(userVec, cand.Vector),
		})
	}

	sort.SliceStable(eligible, func(i, j int) bool {
		return eligible[i].score > eligible[j].score
	})

	if k > len(eligible) {
		k = len(eligible)
	}
	items := make([]types.ContentItem, 0, k)
	for _, s := range eligible[:k] {
		items = append(items, s.item)
	}
	return items
}
