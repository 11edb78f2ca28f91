package llm

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStripCodeFences(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "json fence",
			input:    "```json\n[{\"id\": 1}]\n```",
			expected: "[{\"id\": 1}]",
		},
		{
			name:     "bare fence",
			input:    "```\n[1, 2]\n```",
			expected: "[1, 2]",
		},
		{
			name:     "fence embedded in prose",
			input:    "Here you go:\n```json\n[]\n```\nHope that helps!",
			expected: "Here you go:\n\n[]\n\nHope that helps!",
		},
		{
			name:     "no fence",
			input:    "   plain text  ",
			expected: "plain text",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, StripCodeFences(tt.input))
		})
	}
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", Truncate("short", 10))
	assert.Equal(t, "abc...", Truncate("abcdefgh", 3))
	assert.Equal(t, "abc", Truncate("abc", 3))
}
