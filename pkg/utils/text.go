package utils

import (
	"strings"

	"github.com/samber/lo"
)

// NoneLiteral stands in for an empty fact sequence in prompts
const NoneLiteral = "none"

// JoinOrNone joins items with ", " or returns "none" when there are none
func JoinOrNone(items []string) string {
	items = lo.Compact(items)
	if len(items) == 0 {
		return NoneLiteral
	}
	return strings.Join(items, ", ")
}

// UniqueTake keeps the first n distinct non-empty values in order
func UniqueTake(values []string, n int) []string {
	uniq := lo.Uniq(lo.Compact(values))
	if len(uniq) > n {
		uniq = uniq[:n]
	}
	return uniq
}

// CleanJSONResponse strips markdown code fences models sometimes wrap JSON in
func CleanJSONResponse(s string) string {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(s, "```")
	return strings.TrimSpace(s)
}

// NormalizePlace lowercases and trims a place name for exact matching
func NormalizePlace(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
