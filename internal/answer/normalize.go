package answer

import "strings"

// Normalize trims whitespace and lowercases an answer for matching.
func Normalize(value string) string {
	return strings.ToLower(strings.TrimSpace(value))
}
