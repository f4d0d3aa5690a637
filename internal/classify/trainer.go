package classify

import (
	"math"
	"time"

	"github.com/mkessler-dev/belegwerk/internal/keywords"
	"github.com/mkessler-dev/belegwerk/internal/model"
)

// buildModel constructs a Model from the given training records. Zero
// records is valid and yields an empty Model with TrainedAt set.
// Repeated calls over the same records produce an equivalent Model.
func buildModel(records []model.TrainingRecord, norm Normalizer, now time.Time) *Model {
	m := &Model{
		CategoryVectors:       make(map[string]map[string]float64),
		DocumentFrequency:     make(map[string]int),
		VendorCategoryCounts:  make(map[string]map[string]int),
		VendorCategoryAmounts: make(map[string]map[string][]float64),
		CategoryCounts:        make(map[string]int),
		TrainedAt:             now,
	}

	// Per-category document counts for the TF denominator: only records
	// whose description yields at least one keyword participate.
	docsWithKeywords := make(map[string]int)
	// termDocs[category][term] = number of documents in the category
	// containing the term. Duplicate keywords within one description
	// count once, so verbose text cannot dominate.
	termDocs := make(map[string]map[string]int)

	for _, rec := range records {
		if rec.Category == "" {
			continue
		}

		m.TotalRecords++
		m.CategoryCounts[rec.Category]++

		if rec.Vendor != "" {
			if nv := norm.Normalize(rec.Vendor); nv != "" {
				counts := m.VendorCategoryCounts[nv]
				if counts == nil {
					counts = make(map[string]int)
					m.VendorCategoryCounts[nv] = counts
				}
				counts[rec.Category]++

				amounts := m.VendorCategoryAmounts[nv]
				if amounts == nil {
					amounts = make(map[string][]float64)
					m.VendorCategoryAmounts[nv] = amounts
				}
				amounts[rec.Category] = append(amounts[rec.Category], rec.Amount)
			}
		}

		kws := keywords.Extract(rec.Description)
		if len(kws) == 0 {
			continue
		}

		unique := make(map[string]struct{}, len(kws))
		for _, kw := range kws {
			unique[kw] = struct{}{}
		}

		docsWithKeywords[rec.Category]++
		td := termDocs[rec.Category]
		if td == nil {
			td = make(map[string]int)
			termDocs[rec.Category] = td
		}
		for kw := range unique {
			td[kw]++
		}
	}

	m.TotalCategories = len(docsWithKeywords)

	for _, td := range termDocs {
		for term := range td {
			m.DocumentFrequency[term]++
		}
	}

	for category, td := range termDocs {
		docs := float64(docsWithKeywords[category])
		vector := make(map[string]float64, len(td))
		for term, n := range td {
			tf := float64(n) / docs
			vector[term] = tf * idf(m.TotalCategories, m.DocumentFrequency[term])
		}
		m.CategoryVectors[category] = vector
	}

	return m
}

// idf is the inverse document frequency of a term across categories.
// A document frequency below one is treated as one so terms never seen
// in training still contribute to query vectors.
func idf(totalCategories, documentFrequency int) float64 {
	if documentFrequency < 1 {
		documentFrequency = 1
	}
	return math.Log(1 + float64(totalCategories)/float64(documentFrequency))
}
