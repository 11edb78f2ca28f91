// Package types provides type definitions for structured data used throughout the edu-recommender system.
package types

import (
	"github.com/go-playground/validator/v10"
)

// Difficulty is a content difficulty tier.
type Difficulty string

// Difficulty tiers, ordered from easiest to hardest.
const (
	DifficultyBeginner     Difficulty = "Beginner"
	DifficultyIntermediate Difficulty = "Intermediate"
	DifficultyAdvanced     Difficulty = "Advanced"
)

// LearningStyle is a learner's preferred modality.
type LearningStyle string

// Supported learning styles.
const (
	StyleVisual  LearningStyle = "visual"
	StyleReading LearningStyle = "reading"
	StyleHandsOn LearningStyle = "hands-on"
)

// ContentFormat is the delivery format of a content item.
type ContentFormat string

// Supported content formats.
const (
	FormatVideo   ContentFormat = "video"
	FormatSlides  ContentFormat = "slides"
	FormatLecture ContentFormat = "lecture"
)

// StepStatus is the outcome of a single pipeline step.
type StepStatus string

// Pipeline step outcomes.
const (
	StepDone    StepStatus = "done"
	StepSkipped StepStatus = "skipped"
	StepError   StepStatus = "error"
)

// ContentItem is a single educational resource in the catalogue.
// Items are immutable once loaded; the catalogue owns them.
type ContentItem struct {
	ID              int           `json:"id" validate:"required"`
	Title           string        `json:"title" validate:"required"`
	Description     string        `json:"description"`
	Difficulty      Difficulty    `json:"difficulty" validate:"required,oneof=Beginner Intermediate Advanced"`
	DurationMinutes int           `json:"duration_minutes" validate:"required,gt=0"`
	Tags            []string      `json:"tags"`
	Format          ContentFormat `json:"format" validate:"required,oneof=video slides lecture"`
}

// UserProfile is a learner's profile used to personalise recommendations.
// It is constructed per request and never persisted by the pipeline.
type UserProfile struct {
	UserID              string        `json:"user_id" validate:"required"`
	Name                string        `json:"name" validate:"required"`
	Goal                string        `json:"goal" validate:"required"`
	LearningStyle       LearningStyle `json:"learning_style" validate:"required,oneof=visual reading hands-on"`
	PreferredDifficulty Difficulty    `json:"preferred_difficulty" validate:"required,oneof=Beginner Intermediate Advanced"`
	TimePerDay          int           `json:"time_per_day" validate:"required,gt=0"`
	ViewedContentIDs    []int         `json:"viewed_content_ids"`
	InterestTags        []string      `json:"interest_tags"`
}

// Recommendation is a single ranked suggestion returned to the user.
// Content fields are denormalized copies taken at ranking time.
type Recommendation struct {
	Rank            int      `json:"rank"`
	ID              int      `json:"id"`
	Title           string   `json:"title"`
	Format          string   `json:"format"`
	Difficulty      string   `json:"difficulty"`
	DurationMinutes int      `json:"duration_minutes"`
	Tags            []string `json:"tags"`
	Explanation     string   `json:"explanation"`
	MatchScore      *float64 `json:"match_score,omitempty"`
}

// PipelineStep is one timing/status record in the recommendation pipeline log.
type PipelineStep struct {
	Step       string     `json:"step"`
	Status     StepStatus `json:"status"`
	Detail     string     `json:"detail"`
	DurationMS int64      `json:"duration_ms"`
}

// RecommendationResponse is the top-level response envelope.
type RecommendationResponse struct {
	RunID           string           `json:"run_id"`
	UserID          string           `json:"user_id"`
	Recommendations []Recommendation `json:"recommendations"`
	PipelineLog     []PipelineStep   `json:"pipeline_log"`
	LLMReasoning    string           `json:"llm_reasoning,omitempty"`
	TotalDurationMS int64            `json:"total_duration_ms"`
}

// Validate validates the UserProfile using the validator.
func (p *UserProfile) Validate() error {
	validate := validator.New()
	return validate.Struct(p)
}

// Validate validates the ContentItem using the validator.
func (c *ContentItem) Validate() error {
	validate := validator.New()
	return validate.Struct(c)
}

// HasViewed reports whether the profile has already viewed the given content id.
func (p *UserProfile) HasViewed(id int) bool {
	for _, viewed := range p.ViewedContentIDs {
		if viewed == id {
			return true
		}
	}
	return false
}
