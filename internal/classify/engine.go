package classify

import (
	"context"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/mkessler-dev/belegwerk/internal/model"
)

// Classifier is the suggestion engine. It holds the current Model behind
// an atomic pointer: readers always see either the previous complete
// Model or the new one, never a partial rebuild.
type Classifier struct {
	source  RecordSource
	vendors Normalizer
	rules   RuleTable
	model   atomic.Pointer[Model]
	trainMu sync.Mutex
}

// New creates a Classifier. No training happens until the first call to
// Train, Suggest, or Stats.
func New(source RecordSource, vendors Normalizer, rules RuleTable) *Classifier {
	return &Classifier{
		source:  source,
		vendors: vendors,
		rules:   rules,
	}
}

// Train rebuilds the Model from the record source and installs it,
// replacing any previous Model. Rebuilding the same data yields an
// equivalent Model. A source with zero records is valid.
func (c *Classifier) Train(ctx context.Context) error {
	c.trainMu.Lock()
	defer c.trainMu.Unlock()

	_, err := c.rebuild(ctx)
	return err
}

// Reset discards the installed Model, returning the classifier to its
// untrained state. The next Suggest or Stats call retrains implicitly.
func (c *Classifier) Reset() {
	c.model.Store(nil)
}

// Trained reports whether a Model is currently installed.
func (c *Classifier) Trained() bool {
	return c.model.Load() != nil
}

// rebuild must be called with trainMu held. The new Model is built fully
// off to the side before the shared reference is swapped.
func (c *Classifier) rebuild(ctx context.Context) (*Model, error) {
	records, err := c.source.TrainingRecords(ctx)
	if err != nil {
		// Storage faults are the caller's problem; no retry, no rewrap.
		return nil, err
	}

	m := buildModel(records, c.vendors, time.Now().UTC())
	c.model.Store(m)

	slog.Debug("classifier model rebuilt",
		"records", m.TotalRecords,
		"categories", m.TotalCategories,
		"vendors", len(m.VendorCategoryCounts))

	return m, nil
}

// currentModel returns the installed Model, training lazily on first use.
func (c *Classifier) currentModel(ctx context.Context) (*Model, error) {
	if m := c.model.Load(); m != nil {
		return m, nil
	}

	c.trainMu.Lock()
	defer c.trainMu.Unlock()

	if m := c.model.Load(); m != nil {
		return m, nil
	}
	return c.rebuild(ctx)
}

// Suggest returns ranked category suggestions for a candidate expense.
// All four strategies run against the current Model; candidates are
// deduplicated per category keeping the highest confidence, clamped to
// [0,1], and sorted by confidence descending. An empty result means no
// signal fired, which is valid.
func (c *Classifier) Suggest(ctx context.Context, vendorName, description string, amount float64) (model.Suggestions, error) {
	m, err := c.currentModel(ctx)
	if err != nil {
		return nil, err
	}

	normVendor := ""
	if vendorName != "" {
		normVendor = c.vendors.Normalize(vendorName)
	}

	var candidates model.Suggestions
	candidates = append(candidates, c.exactVendorMatches(m, normVendor, amount)...)
	candidates = append(candidates, c.fuzzyVendorMatches(m, normVendor, amount)...)
	candidates = append(candidates, c.keywordMatches(m, description)...)
	candidates = append(candidates, c.ruleFallback(vendorName, candidates)...)

	return rankCandidates(candidates), nil
}
