// Package estimator prices website generation and refinement requests in
// tokens. Estimates are pure and deterministic: the same prompt and
// selections always produce the same result, and nothing is logged,
// stored or fetched. The price is advisory; billing happens elsewhere.
package estimator

import (
	"sitegen-cost/core/catalog"
	"sitegen-cost/core/types"
)

const (
	paletteCategory = "palette"
	customPalette   = "Custom"
	modeCategory    = "mode"
	darkMode        = "Dark"
)

// Estimator prices requests against one catalog and policy. It is safe
// for concurrent use.
type Estimator struct {
	catalog *catalog.Catalog
	policy  Policy
}

// New creates an Estimator. A nil catalog means the shipped catalog.
func New(c *catalog.Catalog, policy Policy) *Estimator {
	if c == nil {
		c = catalog.Default()
	}
	return &Estimator{
		catalog: c,
		policy:  policy,
	}
}

// NewDefault creates an Estimator with the shipped catalog and policy
func NewDefault() *Estimator {
	return New(catalog.Default(), DefaultPolicy())
}

var defaultEstimator = NewDefault()

// Estimate prices a request with the shipped catalog and policy
func Estimate(prompt string, selections types.SelectionSet, refinement bool) types.PriceResult {
	return defaultEstimator.Estimate(prompt, selections, refinement)
}

// Catalog returns the catalog the estimator prices against
func (e *Estimator) Catalog() *catalog.Catalog {
	return e.catalog
}

// Policy returns the estimator's pricing policy
func (e *Estimator) Policy() Policy {
	return e.policy
}

// Estimate prices one request. Refinements are priced from the prompt
// alone; selections only matter for full generations. Unknown categories
// and values cost nothing.
func (e *Estimator) Estimate(prompt string, selections types.SelectionSet, refinement bool) types.PriceResult {
	p := e.policy
	words := CountWords(prompt)

	breakdown := types.Breakdown{
		types.KeyBase:             p.BaseCost,
		types.KeyPromptComplexity: p.promptComplexity(words),
	}

	if refinement {
		subtotal := breakdown.Sum()
		cost := clamp(subtotal, p.RefinementMin, p.RefinementMax)
		return types.PriceResult{
			Cost:       cost,
			Breakdown:  breakdown,
			Estimate:   tierFor(cost, p.RefinementTiers, p.RefinementTop),
			WordCount:  words,
			Subtotal:   subtotal,
			Refinement: true,
		}
	}

	for _, category := range e.catalog.Categories() {
		if !category.Priced() {
			continue
		}
		if cost, charged := categoryCost(category, selections); charged {
			breakdown.Add(category.Name, cost)
		}
	}

	breakdown[types.KeyCustomColors] = 0
	if selections.Single(paletteCategory) == customPalette {
		breakdown[types.KeyCustomColors] = p.CustomColorsCost
	}
	breakdown[types.KeyDarkMode] = 0
	if selections.Single(modeCategory) == darkMode {
		breakdown[types.KeyDarkMode] = p.DarkModeCost
	}
	breakdown[types.KeySections] = p.sectionSurcharge(len(selections.Values(types.KeySections)))
	breakdown[types.KeyStickyElements] = p.stickySurcharge(len(selections.Values(types.KeyStickyElements)))

	subtotal := breakdown.Sum()
	cost := clamp(subtotal, p.GenerationMin, p.GenerationMax)
	return types.PriceResult{
		Cost:      cost,
		Breakdown: breakdown,
		Estimate:  tierFor(cost, p.GenerationTiers, p.GenerationTop),
		WordCount: words,
		Subtotal:  subtotal,
	}
}

// categoryCost looks up what a priced category contributes. Conditional
// categories are not charged at all when nothing is selected.
func categoryCost(category *catalog.Category, selections types.SelectionSet) (int, bool) {
	values := selections.Values(category.Name)
	if len(values) == 0 {
		if category.Conditional {
			return 0, false
		}
		cost, _ := category.Cost("")
		return cost, true
	}

	if category.Kind == catalog.KindSingle {
		values = values[:1]
	}

	total := 0
	for _, v := range values {
		cost, _ := category.Cost(v)
		total += cost
	}
	return total, true
}
