package embedding

import (
	"fmt"
	"strings"

	"github.com/jonathan/edu-recommender/internal/types"
)

// ContentText builds the single search-friendly string a content item is
// embedded as. Ranking quality depends on this projection; the field order
// (title, description, tags) is part of the contract.
func ContentText(item types.ContentItem) string {
	return fmt.Sprintf("%s. %s Tags: %s", item.Title, item.Description, strings.Join(item.Tags, ", "))
}

// UserText builds the single search-friendly string a user profile is
// embedded as: goal, interests, then learning style.
func UserText(profile types.UserProfile) string {
	return fmt.Sprintf("Goal: %s. Interests: %s. Learning style: %s.",
		profile.Goal, strings.Join(profile.InterestTags, ", "), profile.LearningStyle)
}

// ContentTexts projects every catalogue item, preserving order.
func ContentTexts(items []types.ContentItem) []string {
	texts := make([]string, len(items))
	for i, item := range items {
		texts[i] = ContentText(item)
	}
	return texts
}
