package ranking

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/jonathan/edu-recommender/internal/types"
)

// styleFormats maps a learning style to the content formats considered a
// good fit for it.
var styleFormats = map[types.LearningStyle]map[types.ContentFormat]bool{
	types.StyleVisual:  {types.FormatVideo: true},
	types.StyleReading: {types.FormatSlides: true, types.FormatLecture: true},
	types.StyleHandsOn: {types.FormatVideo: true, types.FormatLecture: true},
}

// difficultyOrder assigns ordinals used for the difficulty-distance penalty.
var difficultyOrder = map[types.Difficulty]int{
	types.DifficultyBeginner:     0,
	types.DifficultyIntermediate: 1,
	types.DifficultyAdvanced:     2,
}

// Scoring weights for the rule-based path.
const (
	formatBonus          = 0.2
	difficultyPenaltyPer = 0.15
)

// RuleBased scores candidates heuristically and returns up to 3
// recommendations. The score is
// tag_overlap + format_bonus - difficulty_penalty; candidates already viewed
// or exceeding the daily time budget are excluded first. The function is
// deterministic and never fails: with no eligible candidates the result
// carries an empty recommendation list.
func RuleBased(profile types.UserProfile, candidates []types.ContentItem) Result {
	userTags := make(map[string]bool, len(profile.InterestTags))
	for _, tag := range profile.InterestTags {
		userTags[tag] = true
	}
	preferredFormats := styleFormats[profile.LearningStyle]
	prefOrdinal := difficultyOrdinal(profile.PreferredDifficulty)

	type scoredItem struct {
		item       types.ContentItem
		score      float64
		commonTags []string
	}

	scored := make([]scoredItem, 0, len(candidates))
	for _, item := range candidates {
		if profile.HasViewed(item.ID) {
			continue
		}
		if item.DurationMinutes > profile.TimePerDay {
			continue
		}

		var common []string
		for _, tag := range item.Tags {
			if userTags[tag] {
				common = append(common, tag)
			}
		}

		tagOverlap := float64(len(common)) / math.Max(float64(len(profile.InterestTags)), 1)
		score := tagOverlap
		if preferredFormats[item.Format] {
			score += formatBonus
		}
		distance := difficultyOrdinal(item.Difficulty) - prefOrdinal
		if distance < 0 {
			distance = -distance
		}
		score -= float64(distance) * difficultyPenaltyPer

		scored = append(scored, scoredItem{item: item, score: score, commonTags: common})
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].score > scored[j].score
	})
	if len(scored) > 3 {
		scored = scored[:3]
	}

	recommendations := make([]types.Recommendation, 0, len(scored))
	for i, s := range scored {
		matchScore := roundScore(s.score)
		recommendations = append(recommendations, types.Recommendation{
			Rank:            i + 1,
			ID:              s.item.ID,
			Title:           s.item.Title,
			Format:          string(s.item.Format),
			Difficulty:      string(s.item.Difficulty),
			DurationMinutes: s.item.DurationMinutes,
			Tags:            s.item.Tags,
			Explanation: fmt.Sprintf("Matched on tags (%s), format fits your %s style, and difficulty is %s.",
				strings.Join(s.commonTags, ", "), profile.LearningStyle, s.item.Difficulty),
			MatchScore: &matchScore,
		})
	}

	return Result{
		Recommendations: recommendations,
		RawReasoning:    "Rule-based scoring: tag overlap + format match + difficulty proximity.",
		Method:          MethodRuleBased,
	}
}

// difficultyOrdinal returns the ordinal for a difficulty, defaulting unknown
// values to Intermediate.
func difficultyOrdinal(d types.Difficulty) int {
	if ord, ok := difficultyOrder[d]; ok {
		return ord
	}
	return 1
}

// roundScore rounds to 3 decimals and clamps into [0, 1], the match score's
// documented range.
func roundScore(s float64) float64 {
	s = math.Round(s*1000) / 1000
	if s < 0 {
		return 0
	}
	if s > 1 {
		return 1
	}
	return s
}
