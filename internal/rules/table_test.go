package rules

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTableMatch(t *testing.T) {
	table := NewTable()

	tests := []struct {
		name         string
		vendorText   string
		wantCategory string
		wantMatch    bool
	}{
		{
			name:         "exact vendor",
			vendorText:   "AWS",
			wantCategory: "hosting",
			wantMatch:    true,
		},
		{
			name:         "substring within longer text",
			vendorText:   "AWS EMEA SARL Rechnung 08/2025",
			wantCategory: "hosting",
			wantMatch:    true,
		},
		{
			name:         "case insensitive",
			vendorText:   "TELEKOM DEUTSCHLAND",
			wantCategory: "telecom",
			wantMatch:    true,
		},
		{
			name:         "german office supplier",
			vendorText:   "Büroshop24 GmbH",
			wantCategory: "office",
			wantMatch:    true,
		},
		{
			name:       "unknown vendor",
			vendorText: "Unbekannte Firma XY",
			wantMatch:  false,
		},
		{
			name:       "empty input",
			vendorText: "",
			wantMatch:  false,
		},
		{
			name:       "whitespace input",
			vendorText: "   ",
			wantMatch:  false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rule, ok := table.Match(tt.vendorText)
			assert.Equal(t, tt.wantMatch, ok)
			if tt.wantMatch {
				assert.Equal(t, tt.wantCategory, rule.Category)
				assert.NotEmpty(t, rule.Label)
			}
		})
	}
}

func TestTableOrder(t *testing.T) {
	table := NewTableWithRules([]Rule{
		{Pattern: "amazon web services", Category: "hosting", Label: "AWS"},
		{Pattern: "amazon", Category: "office", Label: "Amazon"},
	})

	rule, ok := table.Match("Amazon Web Services EMEA")
	require.True(t, ok)
	assert.Equal(t, "hosting", rule.Category, "earlier rule must win")

	rule, ok = table.Match("Amazon Marketplace")
	require.True(t, ok)
	assert.Equal(t, "office", rule.Category)
}

func TestTableDefaultsAreWellFormed(t *testing.T) {
	table := NewTable()
	require.Positive(t, table.Len())

	for _, rule := range defaultRules {
		assert.NotEmpty(t, rule.Pattern)
		assert.NotEmpty(t, rule.Category)
		assert.NotEmpty(t, rule.Label)
		assert.Equal(t, rule.Pattern, string([]rune(rule.Pattern)), "patterns must be valid utf-8")
	}
}
