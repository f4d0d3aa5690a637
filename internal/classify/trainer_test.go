package classify

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mkessler-dev/belegwerk/internal/merchant"
	"github.com/mkessler-dev/belegwerk/internal/model"
)

func buildTestModel(records []model.TrainingRecord) *Model {
	return buildModel(records, merchant.NewNormalizer(), time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC))
}

func TestBuildModelZeroRecords(t *testing.T) {
	m := buildTestModel(nil)

	assert.Zero(t, m.TotalRecords)
	assert.Zero(t, m.TotalCategories)
	assert.Empty(t, m.CategoryVectors)
	assert.Empty(t, m.DocumentFrequency)
	assert.Empty(t, m.VendorCategoryCounts)
	assert.Empty(t, m.VendorCategoryAmounts)
	assert.False(t, m.TrainedAt.IsZero())
}

func TestBuildModelVendorStats(t *testing.T) {
	m := buildTestModel([]model.TrainingRecord{
		{Vendor: "Deutsche Telekom GmbH", Category: "telecom", Amount: 49.90},
		{Vendor: "deutsche telekom", Category: "telecom", Amount: 49.90},
		{Vendor: "Deutsche Telekom", Category: "hardware", Amount: 200},
		{Vendor: "Hetzner", Category: "hosting", Amount: 38},
	})

	require.Len(t, m.VendorCategoryCounts, 2)

	// Different spellings of the same vendor merge under one key.
	telekom := m.VendorCategoryCounts["deutsche telekom"]
	require.NotNil(t, telekom)
	assert.Equal(t, 2, telekom["telecom"])
	assert.Equal(t, 1, telekom["hardware"])

	amounts := m.VendorCategoryAmounts["deutsche telekom"]
	require.NotNil(t, amounts)
	assert.Equal(t, []float64{49.90, 49.90}, amounts["telecom"])
	assert.Equal(t, []float64{200}, amounts["hardware"])

	assert.Equal(t, 4, m.TotalRecords)
}

func TestBuildModelSkipsEmptyVendors(t *testing.T) {
	m := buildTestModel([]model.TrainingRecord{
		{Vendor: "", Category: "sonstiges", Amount: 10},
		{Vendor: "   ", Category: "sonstiges", Amount: 10},
	})

	assert.Empty(t, m.VendorCategoryCounts)
	assert.Equal(t, 2, m.TotalRecords, "vendorless records still count toward the total")
	assert.Equal(t, 2, m.CategoryCounts["sonstiges"])
}

func TestBuildModelDuplicateKeywordsCountOnce(t *testing.T) {
	m := buildTestModel([]model.TrainingRecord{
		{Description: "server server server hosting", Category: "hosting"},
	})

	vec := m.CategoryVectors["hosting"]
	require.NotNil(t, vec)
	assert.InDelta(t, vec["hosting"], vec["server"], 1e-12,
		"repeating a keyword within one description must not raise its weight")
}

func TestBuildModelTermFrequency(t *testing.T) {
	m := buildTestModel([]model.TrainingRecord{
		{Description: "server hosting", Category: "hosting"},
		{Description: "server backup", Category: "hosting"},
	})

	// "server" appears in 2 of 2 documents, "hosting" in 1 of 2. Both have
	// document frequency 1 across categories, so the ratio of weights is
	// exactly the ratio of term frequencies.
	vec := m.CategoryVectors["hosting"]
	require.NotNil(t, vec)
	assert.InDelta(t, 2.0, vec["server"]/vec["hosting"], 1e-12)
}

func TestBuildModelDocumentFrequency(t *testing.T) {
	m := buildTestModel([]model.TrainingRecord{
		{Description: "rechnung server", Category: "hosting"},
		{Description: "rechnung toner", Category: "office"},
	})

	assert.Equal(t, 2, m.DocumentFrequency["rechnung"])
	assert.Equal(t, 1, m.DocumentFrequency["server"])
	assert.Equal(t, 1, m.DocumentFrequency["toner"])
	assert.Equal(t, 2, m.TotalCategories)

	// A term present in every category is less distinctive than one
	// unique to a single category.
	assert.Less(t,
		m.CategoryVectors["hosting"]["rechnung"],
		m.CategoryVectors["hosting"]["server"])
}

func TestBuildModelIgnoresKeywordlessDescriptions(t *testing.T) {
	m := buildTestModel([]model.TrainingRecord{
		{Description: "", Category: "hosting"},
		{Description: "f 1", Category: "hosting"},
		{Description: "server", Category: "hosting"},
	})

	// Only one document carries keywords, so TF for "server" is 1/1.
	vec := m.CategoryVectors["hosting"]
	require.NotNil(t, vec)
	assert.InDelta(t, idf(1, 1), vec["server"], 1e-12)
	assert.Equal(t, 1, m.TotalCategories)
	assert.Equal(t, 3, m.TotalRecords)
}

func TestBuildModelSkipsUncategorizedRecords(t *testing.T) {
	m := buildTestModel([]model.TrainingRecord{
		{Vendor: "Telekom", Category: "", Amount: 10},
		{Vendor: "Telekom", Category: "telecom", Amount: 10},
	})

	assert.Equal(t, 1, m.TotalRecords)
	assert.Equal(t, 1, m.VendorCategoryCounts["telekom"]["telecom"])
}

func TestBuildModelEquivalentAcrossRuns(t *testing.T) {
	records := []model.TrainingRecord{
		{Vendor: "Telekom", Description: "Mobilfunk Rechnung", Category: "telecom", Amount: 50},
		{Vendor: "Hetzner", Description: "Server Hosting", Category: "hosting", Amount: 38},
		{Vendor: "Hetzner", Description: "Server Backup", Category: "hosting", Amount: 12},
	}

	first := buildTestModel(records)
	second := buildTestModel(records)

	assert.Equal(t, first.CategoryVectors, second.CategoryVectors)
	assert.Equal(t, first.DocumentFrequency, second.DocumentFrequency)
	assert.Equal(t, first.VendorCategoryCounts, second.VendorCategoryCounts)
	assert.Equal(t, first.VendorCategoryAmounts, second.VendorCategoryAmounts)
	assert.Equal(t, first.CategoryCounts, second.CategoryCounts)
	assert.Equal(t, first.TotalRecords, second.TotalRecords)
	assert.Equal(t, first.TotalCategories, second.TotalCategories)
}

func TestIDF(t *testing.T) {
	assert.InDelta(t, math.Log(2), idf(1, 1), 1e-12)
	assert.InDelta(t, math.Log(1+5.0/2.0), idf(5, 2), 1e-12)

	// Unseen terms are treated as document frequency one.
	assert.InDelta(t, idf(5, 1), idf(5, 0), 1e-12)
}
