// Package llm - util.go provides shared utilities for LLM response processing.
package llm

import "strings"

// StripCodeFences removes every markdown code fence marker from text.
// LLMs often wrap JSON in ```json ... ``` blocks even when instructed not to,
// and sometimes fence fragments appear mid-prose, so all markers are removed
// rather than only a leading/trailing pair.
func StripCodeFences(text string) string {
	text = strings.ReplaceAll(text, "```json", "")
	text = strings.ReplaceAll(text, "```", "")
	return strings.TrimSpace(text)
}

// Truncate shortens s to at most n bytes, appending an ellipsis when cut.
// Used to keep remote error bodies loggable without dumping whole payloads.
func Truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
