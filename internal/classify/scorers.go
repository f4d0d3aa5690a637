package classify

import (
	"fmt"
	"math"
	"strings"

	"github.com/mkessler-dev/belegwerk/internal/keywords"
	"github.com/mkessler-dev/belegwerk/internal/model"
)

// Confidence tuning. Vendor history is the strongest signal, keyword
// similarity is capped strictly below any vendor-anchored confidence, and
// static rules sit at the bottom.
const (
	exactVendorStrong   = 0.95
	exactVendorModerate = 0.70
	fuzzyVendorBase     = 0.75
	ruleConfidence      = 0.50

	strongExactCount = 5
	minExactCount    = 2
	minFuzzyCount    = 2

	fuzzySimilarityThreshold = 0.8

	keywordConfidenceCap   = 0.6
	keywordSimilarityFloor = 0.05
	maxReasonKeywords      = 3

	amountBoostValue = 0.10
	amountTolerance  = 0.20
)

// exactVendorMatches scores categories seen under the query vendor's
// normalized name. A single occurrence is not enough evidence.
func (c *Classifier) exactVendorMatches(m *Model, normVendor string, amount float64) model.Suggestions {
	if normVendor == "" {
		return nil
	}

	counts := m.VendorCategoryCounts[normVendor]
	if len(counts) == 0 {
		return nil
	}

	total := 0
	for _, n := range counts {
		total += n
	}

	var out model.Suggestions
	for category, n := range counts {
		var confidence float64
		var reason string

		switch {
		case n >= strongExactCount:
			confidence = exactVendorStrong
			reason = fmt.Sprintf("Vendor matched %d previous transactions", total)
		case n >= minExactCount:
			confidence = exactVendorModerate
			reason = fmt.Sprintf("Vendor matched %d previous transactions", n)
		default:
			continue
		}

		confidence += c.boostForAmount(m, normVendor, category, amount)
		out = append(out, model.Suggestion{
			Category:   category,
			Confidence: confidence,
			Reason:     reason,
		})
	}

	return out
}

// fuzzyVendorMatches scores categories of known vendors whose normalized
// name is close to the query vendor's. Vendors below the similarity
// threshold and categories with fewer than two occurrences never surface.
func (c *Classifier) fuzzyVendorMatches(m *Model, normVendor string, amount float64) model.Suggestions {
	if normVendor == "" {
		return nil
	}

	var out model.Suggestions
	for known, counts := range m.VendorCategoryCounts {
		if known == normVendor {
			continue
		}

		sim := c.similarity(normVendor, known)
		if sim < fuzzySimilarityThreshold {
			continue
		}

		total := 0
		for _, n := range counts {
			total += n
		}

		for category, n := range counts {
			if n < minFuzzyCount {
				continue
			}

			out = append(out, model.Suggestion{
				Category:   category,
				Confidence: fuzzyVendorBase + c.boostForAmount(m, known, category, amount),
				Reason:     fmt.Sprintf("Similar vendor %q (%.0f%% match, %d transactions)", known, sim*100, total),
			})
		}
	}

	return out
}

// similarity compares two already-normalized vendor names. Equal
// non-empty names are exactly 1.0; an empty side is 0.
func (c *Classifier) similarity(a, b string) float64 {
	if a == "" || b == "" {
		return 0
	}
	if a == b {
		return 1.0
	}

	maxLen := max(len([]rune(a)), len([]rune(b)))
	sim := 1 - float64(c.vendors.EditDistance(a, b))/float64(maxLen)
	if sim < 0 {
		return 0
	}
	return sim
}

// keywordMatches scores categories by cosine similarity between the
// query's TF-IDF vector and each category vector. Unseen terms get a
// document frequency of one rather than being skipped.
func (c *Classifier) keywordMatches(m *Model, description string) model.Suggestions {
	if description == "" || len(m.CategoryVectors) == 0 {
		return nil
	}

	kws := keywords.Extract(description)
	if len(kws) == 0 {
		return nil
	}

	frequency := make(map[string]int, len(kws))
	for _, kw := range kws {
		frequency[kw]++
	}

	total := float64(len(kws))
	query := make(map[string]float64, len(frequency))
	for term, n := range frequency {
		query[term] = float64(n) / total * idf(m.TotalCategories, m.DocumentFrequency[term])
	}

	var out model.Suggestions
	for category, vector := range m.CategoryVectors {
		sim := cosineSimilarity(query, vector)
		if sim <= keywordSimilarityFloor {
			continue
		}

		out = append(out, model.Suggestion{
			Category:   category,
			Confidence: math.Min(sim*keywordConfidenceCap, keywordConfidenceCap),
			Reason:     keywordReason(kws, vector),
		})
	}

	return out
}

// keywordReason cites up to three query keywords that overlap the
// category vector, in query order.
func keywordReason(kws []string, vector map[string]float64) string {
	var overlap []string
	seen := make(map[string]bool, len(kws))
	for _, kw := range kws {
		if seen[kw] {
			continue
		}
		seen[kw] = true
		if _, ok := vector[kw]; ok {
			overlap = append(overlap, kw)
			if len(overlap) == maxReasonKeywords {
				break
			}
		}
	}

	if len(overlap) == 0 {
		return "Description similar to previous expenses"
	}
	return fmt.Sprintf("Description matched keywords: %s", strings.Join(overlap, ", "))
}

// ruleFallback consults the static rule table. Historical evidence
// outranks rules: if any existing candidate already covers the rule's
// category with confidence at or above the rule's, the rule contributes
// nothing.
func (c *Classifier) ruleFallback(vendorText string, existing model.Suggestions) model.Suggestions {
	rule, ok := c.rules.Match(vendorText)
	if !ok {
		return nil
	}

	for _, cand := range existing {
		if cand.Category == rule.Category && cand.Confidence >= ruleConfidence {
			return nil
		}
	}

	return model.Suggestions{{
		Category:   rule.Category,
		Confidence: ruleConfidence,
		Reason:     fmt.Sprintf("Rule-based match: %s", rule.Label),
	}}
}

// boostForAmount adds a fixed boost when the query amount is within
// ±20% of any historical amount for the matched vendor and category.
// Missing amount data or a non-positive amount skips the boost silently.
func (c *Classifier) boostForAmount(m *Model, normVendor, category string, amount float64) float64 {
	if amount <= 0 {
		return 0
	}

	for _, historical := range m.VendorCategoryAmounts[normVendor][category] {
		if historical >= amount*(1-amountTolerance) && historical <= amount*(1+amountTolerance) {
			return amountBoostValue
		}
	}
	return 0
}

// cosineSimilarity is the normalized dot product of two sparse vectors.
func cosineSimilarity(a, b map[string]float64) float64 {
	var dot, normA, normB float64

	for term, weight := range a {
		normA += weight * weight
		if other, ok := b[term]; ok {
			dot += weight * other
		}
	}
	for _, weight := range b {
		normB += weight * weight
	}

	if dot == 0 || normA == 0 || normB == 0 {
		return 0
	}
	return dot / (math.Sqrt(normA) * math.Sqrt(normB))
}

// rankCandidates collapses candidates to one per category keeping the
// highest confidence, clamps confidences to [0,1], and sorts by
// confidence descending with category name as the tie-break.
func rankCandidates(candidates model.Suggestions) model.Suggestions {
	best := make(map[string]model.Suggestion, len(candidates))
	for _, cand := range candidates {
		if cand.Confidence > 1.0 {
			cand.Confidence = 1.0
		}
		if cand.Confidence < 0 {
			cand.Confidence = 0
		}

		if prev, ok := best[cand.Category]; !ok || cand.Confidence > prev.Confidence {
			best[cand.Category] = cand
		}
	}

	out := make(model.Suggestions, 0, len(best))
	for _, cand := range best {
		out = append(out, cand)
	}
	out.Sort()

	return out
}
