// Package keywords tokenizes free-form expense text into normalized,
// stop-word-filtered keywords for the classifier.
package keywords

import "strings"

// minTokenLength is the shortest token worth keeping; anything below is
// almost always an abbreviation or filler.
const minTokenLength = 3

// Extract tokenizes text into lowercase keywords. Every character outside
// [a-zäöüß0-9] is treated as a separator, tokens shorter than three
// characters are dropped, and stop words are filtered out. Empty input
// yields an empty result. The function is pure and deterministic.
func Extract(text string) []string {
	if text == "" {
		return nil
	}

	cleaned := strings.Map(func(r rune) rune {
		if isKeywordRune(r) {
			return r
		}
		return ' '
	}, strings.ToLower(text))

	fields := strings.Fields(cleaned)
	result := make([]string, 0, len(fields))
	for _, token := range fields {
		if len([]rune(token)) < minTokenLength {
			continue
		}
		if _, stop := stopwords[token]; stop {
			continue
		}
		result = append(result, token)
	}

	return result
}

func isKeywordRune(r rune) bool {
	switch {
	case r >= 'a' && r <= 'z':
		return true
	case r >= '0' && r <= '9':
		return true
	case r == 'ä' || r == 'ö' || r == 'ü' || r == 'ß':
		return true
	}
	return false
}
