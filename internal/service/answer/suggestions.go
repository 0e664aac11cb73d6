package answer

import (
	"encoding/json"
	"strings"
)

const maxSuggestions = 3

// ExtractSuggestions pulls follow-up questions out of a model's free-text
// response. The model is asked for a bare JSON array but routinely wraps it
// in prose, so this is a best-effort parse: any anomaly yields an empty
// list, never an error.
func ExtractSuggestions(raw string) []string {
	start := strings.Index(raw, "[")
	if start == -1 {
		return nil
	}
	segment := raw[start:]
	end := strings.LastIndex(segment, "]")
	if end == -1 {
		return nil
	}

	var items []string
	if err := json.Unmarshal([]byte(segment[:end+1]), &items); err != nil {
		// Trailing prose may carry its own bracket (a markdown link, say),
		// poisoning the widest span. Retry with the tightest one.
		end = strings.Index(segment, "]")
		if err := json.Unmarshal([]byte(segment[:end+1]), &items); err != nil {
			return nil
		}
	}

	seen := make(map[string]struct{}, len(items))
	out := make([]string, 0, maxSuggestions)
	for _, item := range items {
		item = strings.TrimSpace(item)
		if item == "" {
			continue
		}
		if _, dup := seen[item]; dup {
			continue
		}
		seen[item] = struct{}{}
		out = append(out, item)
		if len(out) == maxSuggestions {
			break
		}
	}
	return out
}
