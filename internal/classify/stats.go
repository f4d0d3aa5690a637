package classify

import (
	"context"
	"sort"

	"github.com/mkessler-dev/belegwerk/internal/model"
)

// topVendorLimit caps the vendor list in the stats report.
const topVendorLimit = 10

// Stats summarizes the current Model, training lazily if none exists.
// The report is built from a snapshot; it never reflects a Model
// mid-rebuild.
func (c *Classifier) Stats(ctx context.Context) (*model.StatsReport, error) {
	m, err := c.currentModel(ctx)
	if err != nil {
		return nil, err
	}

	// Model.TotalCategories only counts keyword-bearing categories; the
	// report covers every category with at least one record.
	report := &model.StatsReport{
		TotalRecords:    m.TotalRecords,
		TotalCategories: len(m.CategoryCounts),
		TotalVendors:    len(m.VendorCategoryCounts),
	}

	if !m.TrainedAt.IsZero() {
		trainedAt := m.TrainedAt
		report.TrainedAt = &trainedAt
	}

	report.TopVendors = topVendors(m)
	report.CategoryCoverage = categoryCoverage(m)

	return report, nil
}

// topVendors ranks vendors by aggregate transaction count and annotates
// each with its single most frequent category.
func topVendors(m *Model) []model.VendorStat {
	stats := make([]model.VendorStat, 0, len(m.VendorCategoryCounts))

	for vendorName, counts := range m.VendorCategoryCounts {
		total := 0
		topCategory := ""
		topCount := 0

		for category, n := range counts {
			total += n
			// Ties resolve to the lexicographically smaller category so
			// the report is stable across runs.
			if n > topCount || (n == topCount && category < topCategory) {
				topCategory = category
				topCount = n
			}
		}

		stats = append(stats, model.VendorStat{
			Vendor:       vendorName,
			TopCategory:  topCategory,
			Transactions: total,
		})
	}

	sort.Slice(stats, func(i, j int) bool {
		if stats[i].Transactions != stats[j].Transactions {
			return stats[i].Transactions > stats[j].Transactions
		}
		return stats[i].Vendor < stats[j].Vendor
	})

	if len(stats) > topVendorLimit {
		stats = stats[:topVendorLimit]
	}
	return stats
}

// categoryCoverage lists every category with its aggregate record count,
// descending.
func categoryCoverage(m *Model) []model.CategoryStat {
	coverage := make([]model.CategoryStat, 0, len(m.CategoryCounts))
	for category, n := range m.CategoryCounts {
		coverage = append(coverage, model.CategoryStat{Category: category, Records: n})
	}

	sort.Slice(coverage, func(i, j int) bool {
		if coverage[i].Records != coverage[j].Records {
			return coverage[i].Records > coverage[j].Records
		}
		return coverage[i].Category < coverage[j].Category
	})

	return coverage
}
