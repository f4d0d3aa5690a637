// Package merchant canonicalizes vendor display names and measures how
// similar two names are, so that different spellings of the same business
// compare as equal or near-equal.
package merchant

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// legalSuffixes are legal-entity forms stripped from vendor names.
// "Deutsche Telekom GmbH" and "Deutsche Telekom" must normalize to the
// same string.
// Punctuation is stripped before matching, so "GmbH & Co. KG" arrives
// here as "gmbh co kg".
var legalSuffixes = []string{
	"gmbh co kg", "se co kgaa", "ag co kg", "gmbh co",
	"gmbh", "mbh", "ag", "ug", "kgaa", "kg", "ohg", "gbr", "e k", "ek",
	"se", "co", "inc", "ltd", "llc", "corp", "plc", "sarl", "bv", "nv",
}

// diacriticFolder strips combining marks after canonical decomposition,
// so "café" and "cafe" normalize identically. German umlauts lose their
// dots rather than expanding to ae/oe/ue; both sides of a comparison go
// through the same fold, so distances stay meaningful.
var diacriticFolder = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Normalizer canonicalizes vendor names and computes edit distances.
// The zero value is ready to use.
type Normalizer struct{}

// NewNormalizer creates a vendor name normalizer.
func NewNormalizer() *Normalizer {
	return &Normalizer{}
}

// Normalize returns the canonical form of a vendor display name:
// lowercased, diacritics folded, punctuation removed, legal-entity
// suffixes stripped, and whitespace collapsed.
func (n *Normalizer) Normalize(name string) string {
	s := strings.ToLower(strings.TrimSpace(name))
	if s == "" {
		return ""
	}

	// NFD does not decompose ß, fold it by hand.
	s = strings.ReplaceAll(s, "ß", "ss")
	if folded, _, err := transform.String(diacriticFolder, s); err == nil {
		s = folded
	}

	// Everything that is not a letter or digit separates words.
	s = strings.Map(func(r rune) rune {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			return r
		}
		return ' '
	}, s)

	words := strings.Fields(s)
	words = stripLegalSuffix(words)

	return strings.Join(words, " ")
}

// stripLegalSuffix removes trailing legal-entity forms, longest match
// first, repeating until none remain ("Example Verwaltungs GmbH & Co. KG"
// ends in three suffix words).
func stripLegalSuffix(words []string) []string {
	for {
		stripped := false
		for _, suffix := range legalSuffixes {
			suffixWords := strings.Fields(suffix)
			n := len(suffixWords)
			if n == 0 || len(words) <= n {
				continue
			}
			if strings.Join(words[len(words)-n:], " ") == suffix {
				words = words[:len(words)-n]
				stripped = true
				break
			}
		}
		if !stripped {
			return words
		}
	}
}

// EditDistance computes the Levenshtein distance between two strings,
// counting single-rune insertions, deletions, and substitutions. It uses
// two-row dynamic programming instead of the full matrix.
func (n *Normalizer) EditDistance(a, b string) int {
	ra := []rune(a)
	rb := []rune(b)

	if len(ra) == 0 {
		return len(rb)
	}
	if len(rb) == 0 {
		return len(ra)
	}

	// Keep the shorter string in ra to minimize row width.
	if len(ra) > len(rb) {
		ra, rb = rb, ra
	}

	prev := make([]int, len(ra)+1)
	curr := make([]int, len(ra)+1)
	for i := range prev {
		prev[i] = i
	}

	for j := 1; j <= len(rb); j++ {
		curr[0] = j
		for i := 1; i <= len(ra); i++ {
			if ra[i-1] == rb[j-1] {
				curr[i] = prev[i-1]
			} else {
				curr[i] = 1 + min(prev[i-1], prev[i], curr[i-1])
			}
		}
		prev, curr = curr, prev
	}

	return prev[len(ra)]
}
