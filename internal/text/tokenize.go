// Package text provides the shared tokenizer used by both the intent vector
// space and the retrieval corpus. The two vocabularies are independent, but
// they must split text identically.
package text

import (
	"regexp"
	"strings"
)

var tokenPattern = regexp.MustCompile(`[a-zA-Z0-9']+`)

// Tokenize lower-cases its input and returns maximal runs of alphanumerics
// and apostrophes, in order.
func Tokenize(s string) []string {
	matches := tokenPattern.FindAllString(strings.ToLower(s), -1)
	return matches
}

// TermCounts tokenizes s and tallies per-term frequency.
func TermCounts(s string) map[string]int {
	counts := make(map[string]int)
	for _, tok := range Tokenize(s) {
		counts[tok]++
	}
	return counts
}
