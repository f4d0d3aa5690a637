package merchant

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	n := NewNormalizer()

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "empty input",
			input: "",
			want:  "",
		},
		{
			name:  "whitespace only",
			input: "   ",
			want:  "",
		},
		{
			name:  "lowercases",
			input: "TELEKOM",
			want:  "telekom",
		},
		{
			name:  "strips gmbh suffix",
			input: "Deutsche Telekom GmbH",
			want:  "deutsche telekom",
		},
		{
			name:  "strips compound suffix",
			input: "Musterfirma Verwaltungs GmbH & Co. KG",
			want:  "musterfirma verwaltungs",
		},
		{
			name:  "strips punctuation",
			input: "Amazon.com, Inc.",
			want:  "amazon com",
		},
		{
			name:  "folds diacritics",
			input: "Café Müller",
			want:  "cafe muller",
		},
		{
			name:  "folds eszett",
			input: "Straßenbau AG",
			want:  "strassenbau",
		},
		{
			name:  "collapses whitespace",
			input: "  Hetzner   Online  ",
			want:  "hetzner online",
		},
		{
			name:  "suffix-only name survives",
			input: "GmbH",
			want:  "gmbh",
		},
		{
			name:  "keeps digits",
			input: "1&1 Telecom GmbH",
			want:  "1 1 telecom",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, n.Normalize(tt.input))
		})
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	n := NewNormalizer()

	inputs := []string{"Deutsche Telekom GmbH", "Café Müller", "AWS EMEA SARL"}
	for _, input := range inputs {
		once := n.Normalize(input)
		assert.Equal(t, once, n.Normalize(once), "normalize must be idempotent for %q", input)
	}
}

func TestEditDistance(t *testing.T) {
	n := NewNormalizer()

	tests := []struct {
		a    string
		b    string
		want int
	}{
		{"", "", 0},
		{"", "abc", 3},
		{"abc", "", 3},
		{"abc", "abc", 0},
		{"kitten", "sitting", 3},
		{"telekom", "telekoom", 1},
		{"telekom", "vodafone", 7},
		{"müller", "muller", 1},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, n.EditDistance(tt.a, tt.b), "EditDistance(%q, %q)", tt.a, tt.b)
		assert.Equal(t, tt.want, n.EditDistance(tt.b, tt.a), "EditDistance(%q, %q)", tt.b, tt.a)
	}
}
