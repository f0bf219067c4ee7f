// Package types - Price result types
package types

// Tier is the qualitative complexity label attached to a price
type Tier string

const (
	TierSimple   Tier = "Simple"
	TierStandard Tier = "Standard"
	TierComplex  Tier = "Complex"
	TierPremium  Tier = "Premium"
)

// String returns the string representation
func (t Tier) String() string {
	return string(t)
}

// Synthetic breakdown component keys. Every other breakdown key is a
// catalog category name.
const (
	KeyBase             = "base"
	KeyPromptComplexity = "promptComplexity"
	KeyCustomColors     = "customColors"
	KeyDarkMode         = "darkMode"
	KeySections         = "sections"
	KeyStickyElements   = "stickyElements"
)

// Breakdown maps a cost component to the tokens it contributes.
// Values may be negative (discounts).
type Breakdown map[string]int

// Add accumulates cost under key
func (b Breakdown) Add(key string, cost int) {
	b[key] += cost
}

// Sum returns the unclamped total of all components
func (b Breakdown) Sum() int {
	total := 0
	for _, v := range b {
		total += v
	}
	return total
}

// PriceResult is the advisory token price of one generation or
// refinement request.
type PriceResult struct {
	// Cost is the clamped token price
	Cost int `json:"cost"`

	// Breakdown itemizes every component that went into Subtotal
	Breakdown Breakdown `json:"breakdown"`

	// Estimate is the qualitative tier for Cost
	Estimate Tier `json:"estimate"`

	// WordCount is the whitespace-delimited word count of the prompt
	WordCount int `json:"wordCount"`

	// Subtotal is the sum of Breakdown before clamping
	Subtotal int `json:"subtotal"`

	// Refinement reports which pricing policy produced the result
	Refinement bool `json:"refinement"`
}

// Clamped reports whether Cost was saturated at a floor or ceiling
func (r PriceResult) Clamped() bool {
	return r.Cost != r.Subtotal
}
