// Package email holds small helpers for working with student email addresses.
package email

import (
	"strings"
	"unicode"
)

// Normalize trims surrounding whitespace and lowercases an address so the same
// student cannot register twice under case or spacing variants.
func Normalize(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// DeriveNameFromEmail guesses a first and last name from the local part of an
// address. Used for friendly log lines only, never for identity.
func DeriveNameFromEmail(email string) (string, string) {
	localPart := email
	if at := strings.IndexByte(email, '@'); at > 0 {
		localPart = email[:at]
	}

	parts := strings.FieldsFunc(localPart, func(r rune) bool {
		return r == '.' || r == '_' || r == '-' || r == '+'
	})

	if len(parts) == 0 {
		return "Student", "Student"
	}

	first := capitalize(parts[0])
	last := "Student"
	if len(parts) > 1 {
		last = capitalize(parts[len(parts)-1])
	}

	return first, last
}

func capitalize(s string) string {
	if s == "" {
		return s
	}

	runes := []rune(s)
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes)
}
