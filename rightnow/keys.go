package rightnow

import (
	"regexp"
	"strings"
)

var (
	acronymBoundary = regexp.MustCompile(`([A-Z\d]+)([A-Z][a-z])`)
	wordBoundary    = regexp.MustCompile(`([a-z\d])([A-Z])`)
)

// Underscore converts a camelCase or PascalCase key to snake_case:
// "viewCount" → "view_count", "APIUri" → "api_uri", "UserHash" → "user_hash".
func Underscore(key string) string {
	key = acronymBoundary.ReplaceAllString(key, "${1}_${2}")
	key = wordBoundary.ReplaceAllString(key, "${1}_${2}")
	key = strings.ReplaceAll(key, "-", "_")
	return strings.ToLower(key)
}

// NormalizeKeys returns a copy of a decoded JSON value with every object key,
// at any depth, rewritten by Underscore. Non-object values are returned as is.
func NormalizeKeys(v any) any {
	switch val := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(val))
		for k, child := range val {
			out[Underscore(k)] = NormalizeKeys(child)
		}
		return out
	case []any:
		out := make([]any, len(val))
		for i, child := range val {
			out[i] = NormalizeKeys(child)
		}
		return out
	default:
		return v
	}
}
