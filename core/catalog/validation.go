// Package catalog - Catalog validation
// Ensures catalog integrity before it is used for pricing.
package catalog

import (
	"fmt"

	"sitegen-cost/core/types"
)

// ValidationRule is a catalog validation rule
type ValidationRule func(*Category) error

// DefaultValidationRules returns the standard validation rules
func DefaultValidationRules() []ValidationRule {
	return []ValidationRule{
		validateName,
		validateReservedName,
		validateDistinctChoices,
		validateCountedPricing,
	}
}

// Validate checks a catalog against validation rules
func (c *Catalog) Validate(rules []ValidationRule) []error {
	var errors []error

	for _, entry := range c.Categories() {
		for _, rule := range rules {
			if err := rule(entry); err != nil {
				errors = append(errors, fmt.Errorf("%s: %w", entry.Name, err))
			}
		}
	}

	return errors
}

func validateName(e *Category) error {
	if e.Name == "" {
		return fmt.Errorf("category name is empty")
	}
	return nil
}

// validateReservedName keeps categories from colliding with the
// breakdown components the estimator computes itself. sections and
// stickyElements are categories, but only as counted ones.
func validateReservedName(e *Category) error {
	switch e.Name {
	case types.KeyBase, types.KeyPromptComplexity, types.KeyCustomColors, types.KeyDarkMode:
		return fmt.Errorf("%q is a reserved breakdown component", e.Name)
	case types.KeySections, types.KeyStickyElements:
		if e.Kind != KindCounted {
			return fmt.Errorf("%q must be a counted category, got %s", e.Name, e.Kind)
		}
	}
	return nil
}

func validateDistinctChoices(e *Category) error {
	seen := make(map[string]struct{}, len(e.Choices))
	for _, ch := range e.Choices {
		if ch.Value == "" {
			return fmt.Errorf("empty choice value; use unselected for the empty selection")
		}
		if _, dup := seen[ch.Value]; dup {
			return fmt.Errorf("duplicate choice %q", ch.Value)
		}
		seen[ch.Value] = struct{}{}
	}
	return nil
}

// validateCountedPricing ensures counted categories carry no lookup costs,
// since the estimator never reads them.
func validateCountedPricing(e *Category) error {
	if e.Kind != KindCounted {
		return nil
	}
	if e.Conditional {
		return fmt.Errorf("counted category cannot be conditional")
	}
	if e.Unselected != 0 {
		return fmt.Errorf("counted category cannot price the unselected state")
	}
	for _, ch := range e.Choices {
		if ch.Cost != 0 {
			return fmt.Errorf("counted category choice %q has cost %d", ch.Value, ch.Cost)
		}
	}
	return nil
}
