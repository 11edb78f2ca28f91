package ranking

import (
	"encoding/json"
)

// ExtractJSONArray scans raw text for every balanced [ ... ] span, parses each
// as JSON, and returns the longest span that parses into an array of objects.
// This tolerates model responses that wrap the array in prose, emit several
// arrays, or leave fragments of malformed JSON around the real answer.
func ExtractJSONArray(raw string) []map[string]any {
	var best []map[string]any
	for i := 0; i < len(raw); i++ {
		if raw[i] != '[' {
			continue
		}
		depth := 0
		for j := i; j < len(raw); j++ {
			switch raw[j] {
			case '[':
				depth++
			case ']':
				depth--
			}
			if depth == 0 {
				var parsed []map[string]any
				if err := json.Unmarshal([]byte(raw[i:j+1]), &parsed); err == nil && len(parsed) > len(best) {
					best = parsed
				}
				break
			}
		}
	}
	return best
}
