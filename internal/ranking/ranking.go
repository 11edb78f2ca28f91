// Package ranking produces the final top-3 recommendations from retrieved
// candidates. Two paths exist: an LLM re-ranking path used when a chat client
// is configured, and a deterministic rule-based path used otherwise or
// whenever the LLM path fails. A ranking failure is never surfaced to the
// caller; the rule-based path is the guaranteed landing zone.
package ranking

import (
	"context"
	"log"
	"time"

	"github.com/jonathan/edu-recommender/internal/llm"
	"github.com/jonathan/edu-recommender/internal/types"
)

// Ranking methods reported in the result so callers can tell which path ran.
const (
	MethodLLM       = "llm"
	MethodRuleBased = "rule-based"
)

// Result is the outcome of the ranking step.
type Result struct {
	Recommendations []types.Recommendation
	RawReasoning    string
	Method          string
}

// Outcome is the tagged result of the remote ranking branch. The branch never
// returns a Go error to callers of Rank; a failure tag routes execution to the
// rule-based branch instead.
type Outcome struct {
	OK     bool
	Result *Result
	Err    error // diagnostic context for logging only
}

// Ranker selects between the LLM and rule-based ranking branches.
type Ranker struct {
	client  llm.Client // nil when no ranking credential is configured
	timeout time.Duration
}

// NewRanker creates a Ranker. A nil client pins every call to the rule-based
// branch.
func NewRanker(client llm.Client, timeout time.Duration) *Ranker {
	if timeout <= 0 {
		timeout = 60 * time.Second
	}
	return &Ranker{client: client, timeout: timeout}
}

// Rank re-ranks candidates for the profile and returns up to 3 recommendations.
// It never fails: any problem on the LLM branch falls through to rules.
func (r *Ranker) Rank(ctx context.Context, profile types.UserProfile, candidates []types.ContentItem) Result {
	if r.client == nil {
		log.Printf("No ranking credential configured, using rule-based ranking")
		return RuleBased(profile, candidates)
	}

	outcome := r.rankViaLLM(ctx, profile, candidates)
	if !outcome.OK {
		log.Printf("LLM ranking failed (%v), falling back to rule-based ranking", outcome.Err)
		return RuleBased(profile, candidates)
	}
	return *outcome.Result
}
