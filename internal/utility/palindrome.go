// Package utility holds the stateless helpers served next to the product API.
package utility

import (
	"slices"
	"unicode"
)

// Normalize lower-cases word and drops every rune that is not a letter or digit.
func Normalize(word string) []rune {
	out := make([]rune, 0, len(word))
	for _, r := range word {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			out = append(out, unicode.ToLower(r))
		}
	}
	return out
}

// IsPalindrome reports whether the normalized word reads the same in both directions.
// A word without letters or digits is a palindrome.
func IsPalindrome(word string) bool {
	normalized := Normalize(word)
	reversed := slices.Clone(normalized)
	slices.Reverse(reversed)
	return slices.Equal(normalized, reversed)
}
