package model

import (
	"fmt"
	"sort"
)

// Suggestion represents a single category suggestion with a confidence
// score and a human-readable reason.
type Suggestion struct {
	Category   string
	Reason     string
	Confidence float64
}

// Validate ensures the Suggestion has valid data.
func (s *Suggestion) Validate() error {
	if s.Category == "" {
		return fmt.Errorf("category name is required")
	}

	if s.Confidence < 0.0 || s.Confidence > 1.0 {
		return fmt.Errorf("confidence must be between 0.0 and 1.0, got %.2f", s.Confidence)
	}

	return nil
}

// Suggestions is a slice of Suggestion that supports sorting and utility methods.
type Suggestions []Suggestion

// Len implements sort.Interface.
func (s Suggestions) Len() int {
	return len(s)
}

// Less implements sort.Interface - higher confidence comes first.
// Equal confidences fall back to category name so the order is stable
// across runs regardless of map iteration order.
func (s Suggestions) Less(i, j int) bool {
	if s[i].Confidence != s[j].Confidence {
		return s[i].Confidence > s[j].Confidence
	}
	return s[i].Category < s[j].Category
}

// Swap implements sort.Interface.
func (s Suggestions) Swap(i, j int) {
	s[i], s[j] = s[j], s[i]
}

// Sort sorts the suggestions by confidence in descending order.
func (s Suggestions) Sort() {
	sort.Sort(s)
}

// Top returns the highest-confidence suggestion, or nil if empty.
func (s Suggestions) Top() *Suggestion {
	if len(s) == 0 {
		return nil
	}
	s.Sort()
	return &s[0]
}

// Validate ensures all suggestions are valid and no category appears twice.
func (s Suggestions) Validate() error {
	seen := make(map[string]bool)

	for i, suggestion := range s {
		if err := suggestion.Validate(); err != nil {
			return fmt.Errorf("invalid suggestion at index %d: %w", i, err)
		}

		if seen[suggestion.Category] {
			return fmt.Errorf("duplicate category %q in suggestions", suggestion.Category)
		}
		seen[suggestion.Category] = true
	}

	return nil
}
