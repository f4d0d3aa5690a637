package classify

import "time"

// Model is an immutable snapshot of everything the engine has learned
// from the expense history. A Model is never mutated after buildModel
// returns it; retraining builds a fresh Model off to the side and swaps
// the shared reference atomically.
type Model struct {
	// CategoryVectors maps category -> keyword -> TF-IDF weight.
	CategoryVectors map[string]map[string]float64

	// DocumentFrequency maps keyword -> number of categories containing it.
	DocumentFrequency map[string]int

	// VendorCategoryCounts maps normalized vendor -> category -> occurrences.
	VendorCategoryCounts map[string]map[string]int

	// VendorCategoryAmounts maps normalized vendor -> category -> historical amounts.
	VendorCategoryAmounts map[string]map[string][]float64

	// CategoryCounts maps category -> number of training records in it.
	CategoryCounts map[string]int

	// TotalCategories counts distinct categories with at least one
	// description keyword.
	TotalCategories int

	// TotalRecords counts the records this Model was built from.
	TotalRecords int

	// TrainedAt is when this Model was built.
	TrainedAt time.Time
}
