// Package classify implements the auto-categorization engine: it learns
// vendor statistics and per-category keyword vectors from the user's own
// expense history and suggests categories for new expenses. Everything
// runs in-process; no model is ever persisted.
package classify

import (
	"context"

	"github.com/mkessler-dev/belegwerk/internal/model"
	"github.com/mkessler-dev/belegwerk/internal/rules"
)

// RecordSource supplies the historical expenses used for training.
// Implementations must already exclude soft-deleted rows, duplicates, and
// rows without a category. Errors are propagated to the caller untouched.
type RecordSource interface {
	TrainingRecords(ctx context.Context) ([]model.TrainingRecord, error)
}

// Normalizer canonicalizes vendor names and measures edit distance
// between them. Both methods must be pure and deterministic.
type Normalizer interface {
	Normalize(name string) string
	EditDistance(a, b string) int
}

// RuleTable is the static vendor-substring fallback lookup consulted when
// no historical evidence exists for a vendor.
type RuleTable interface {
	Match(vendorText string) (rules.Rule, bool)
}
