package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSuggestionsSort(t *testing.T) {
	suggestions := Suggestions{
		{Category: "office", Confidence: 0.5},
		{Category: "hosting", Confidence: 0.95},
		{Category: "telecom", Confidence: 0.7},
	}

	suggestions.Sort()

	assert.Equal(t, "hosting", suggestions[0].Category)
	assert.Equal(t, "telecom", suggestions[1].Category)
	assert.Equal(t, "office", suggestions[2].Category)
}

func TestSuggestionsSortTieBreak(t *testing.T) {
	suggestions := Suggestions{
		{Category: "telecom", Confidence: 0.5},
		{Category: "hosting", Confidence: 0.5},
		{Category: "office", Confidence: 0.5},
	}

	suggestions.Sort()

	// Equal confidences fall back to category name.
	assert.Equal(t, "hosting", suggestions[0].Category)
	assert.Equal(t, "office", suggestions[1].Category)
	assert.Equal(t, "telecom", suggestions[2].Category)
}

func TestSuggestionsTop(t *testing.T) {
	assert.Nil(t, Suggestions{}.Top())

	suggestions := Suggestions{
		{Category: "office", Confidence: 0.5},
		{Category: "hosting", Confidence: 0.95},
	}
	top := suggestions.Top()
	require.NotNil(t, top)
	assert.Equal(t, "hosting", top.Category)
}

func TestSuggestionValidate(t *testing.T) {
	valid := Suggestion{Category: "hosting", Confidence: 0.5}
	assert.NoError(t, valid.Validate())

	missing := Suggestion{Confidence: 0.5}
	assert.Error(t, missing.Validate())

	outOfRange := Suggestion{Category: "hosting", Confidence: 1.2}
	assert.Error(t, outOfRange.Validate())
}

func TestSuggestionsValidateDuplicates(t *testing.T) {
	duplicated := Suggestions{
		{Category: "hosting", Confidence: 0.9},
		{Category: "hosting", Confidence: 0.5},
	}
	assert.Error(t, duplicated.Validate())
}

func TestExpenseTrainable(t *testing.T) {
	tests := []struct {
		name    string
		expense Expense
		want    bool
	}{
		{
			name:    "valid",
			expense: Expense{Category: "hosting"},
			want:    true,
		},
		{
			name:    "no category",
			expense: Expense{},
			want:    false,
		},
		{
			name:    "soft deleted",
			expense: Expense{Category: "hosting", Deleted: true},
			want:    false,
		},
		{
			name:    "duplicate",
			expense: Expense{Category: "hosting", Duplicate: true},
			want:    false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.expense.Trainable())
		})
	}
}
