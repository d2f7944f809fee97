// Package strings provides string slice utilities shared across modules.
package strings

import "strings"

// DedupeAndTrimLower trims, lowercases, and deduplicates a slice, dropping
// empties. Order of first occurrence is preserved. Used to enforce participant
// uniqueness at data boundaries.
//
// Example:
//
//	DedupeAndTrimLower([]string{"  Anna@x.edu ", "bob@x.edu", "anna@x.edu", ""})
//	// Returns: []string{"anna@x.edu", "bob@x.edu"}
func DedupeAndTrimLower(values []string) []string {
	if len(values) == 0 {
		return values
	}

	seen := make(map[string]struct{}, len(values))
	result := make([]string, 0, len(values))

	for _, v := range values {
		trimmed := strings.ToLower(strings.TrimSpace(v))
		if trimmed == "" {
			continue
		}
		if _, ok := seen[trimmed]; !ok {
			seen[trimmed] = struct{}{}
			result = append(result, trimmed)
		}
	}

	return result
}
