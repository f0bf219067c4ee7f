// Package guards - Runtime assertion guards for price results
package guards

import (
	"fmt"
	"strings"

	"sitegen-cost/core/types"
)

// Bounds is the inclusive clamp range a result must satisfy
type Bounds struct {
	Min int
	Max int
}

// Violation describes one broken invariant
type Violation struct {
	Rule   string
	Detail string
}

func (v Violation) String() string {
	return v.Rule + ": " + v.Detail
}

// CheckPriceResult verifies the structural invariants of a price result:
// the breakdown sums to the subtotal, the cost is the subtotal clamped to
// bounds, and refinements carry only prompt components.
func CheckPriceResult(r types.PriceResult, bounds Bounds) []Violation {
	var violations []Violation

	if sum := r.Breakdown.Sum(); sum != r.Subtotal {
		violations = append(violations, Violation{"SUM", fmt.Sprintf("breakdown sums to %d, subtotal is %d", sum, r.Subtotal)})
	}
	if r.Cost < bounds.Min || r.Cost > bounds.Max {
		violations = append(violations, Violation{"RANGE", fmt.Sprintf("cost %d outside [%d, %d]", r.Cost, bounds.Min, bounds.Max)})
	}
	if want := max(bounds.Min, min(r.Subtotal, bounds.Max)); r.Cost != want {
		violations = append(violations, Violation{"CLAMP", fmt.Sprintf("cost %d, clamped subtotal is %d", r.Cost, want)})
	}
	if r.Estimate == "" {
		violations = append(violations, Violation{"TIER", "estimate tier is empty"})
	}
	if r.Refinement {
		for key := range r.Breakdown {
			if key != types.KeyBase && key != types.KeyPromptComplexity {
				violations = append(violations, Violation{"REFINEMENT", fmt.Sprintf("unexpected component %q", key)})
			}
		}
	}

	return violations
}

// Join renders violations on one line
func Join(violations []Violation) string {
	parts := make([]string, len(violations))
	for i, v := range violations {
		parts[i] = v.String()
	}
	return strings.Join(parts, "; ")
}
