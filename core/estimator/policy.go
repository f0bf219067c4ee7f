package estimator

import (
	"fmt"

	"github.com/shopspring/decimal"

	"sitegen-cost/core/guards"
	"sitegen-cost/core/types"
	apperrors "sitegen-cost/internal/errors"
)

// PromptTier prices prompts of up to MaxWords words
type PromptTier struct {
	MaxWords int `json:"max_words" yaml:"max_words"`
	Cost     int `json:"cost" yaml:"cost"`
}

// TierBound labels every price up to and including Max
type TierBound struct {
	Max  int        `json:"max" yaml:"max"`
	Tier types.Tier `json:"tier" yaml:"tier"`
}

// Policy holds every number the estimator prices with
type Policy struct {
	BaseCost int

	// PromptTiers must be ascending by MaxWords; prompts longer than the
	// last tier cost LongPromptCost.
	PromptTiers    []PromptTier
	LongPromptCost int

	RefinementMin int
	RefinementMax int
	GenerationMin int
	GenerationMax int

	CustomColorsCost int
	DarkModeCost     int

	// Sections beyond FreeSections cost ceil(extra * SectionRate)
	FreeSections int
	SectionRate  decimal.Decimal

	// Sticky elements cost StickyElementCost each, capped at StickyElementCap
	StickyElementCost int
	StickyElementCap  int

	// Tier bounds must be ascending; prices above the last bound get the
	// corresponding Top tier.
	RefinementTiers []TierBound
	RefinementTop   types.Tier
	GenerationTiers []TierBound
	GenerationTop   types.Tier
}

// DefaultPolicy returns the shipped pricing policy
func DefaultPolicy() Policy {
	return Policy{
		BaseCost: 5,
		PromptTiers: []PromptTier{
			{MaxWords: 10, Cost: 0},
			{MaxWords: 50, Cost: 2},
			{MaxWords: 150, Cost: 3},
		},
		LongPromptCost: 5,

		RefinementMin: 3,
		RefinementMax: 15,
		GenerationMin: 8,
		GenerationMax: 50,

		CustomColorsCost: 2,
		DarkModeCost:     2,

		FreeSections: 4,
		SectionRate:  decimal.RequireFromString("0.75"),

		StickyElementCost: 1,
		StickyElementCap:  3,

		RefinementTiers: []TierBound{
			{Max: 7, Tier: types.TierSimple},
			{Max: 12, Tier: types.TierStandard},
		},
		RefinementTop: types.TierComplex,
		GenerationTiers: []TierBound{
			{Max: 12, Tier: types.TierSimple},
			{Max: 22, Tier: types.TierStandard},
			{Max: 35, Tier: types.TierComplex},
		},
		GenerationTop: types.TierPremium,
	}
}

// Validate checks the policy for internal consistency
func (p Policy) Validate() error {
	if p.BaseCost < 0 {
		return apperrors.Newf(apperrors.TypeConfig, "base cost %d is negative", p.BaseCost)
	}
	if p.RefinementMin > p.RefinementMax {
		return apperrors.Newf(apperrors.TypeConfig, "refinement min %d exceeds max %d", p.RefinementMin, p.RefinementMax)
	}
	if p.GenerationMin > p.GenerationMax {
		return apperrors.Newf(apperrors.TypeConfig, "generation min %d exceeds max %d", p.GenerationMin, p.GenerationMax)
	}
	if p.FreeSections < 0 || p.StickyElementCost < 0 || p.StickyElementCap < 0 {
		return apperrors.Config("section and sticky-element settings must not be negative")
	}
	if p.SectionRate.IsNegative() {
		return apperrors.Newf(apperrors.TypeConfig, "section rate %s is negative", p.SectionRate)
	}

	prevWords, prevCost := -1, 0
	for i, tier := range p.PromptTiers {
		if tier.MaxWords <= prevWords {
			return apperrors.Newf(apperrors.TypeConfig, "prompt tier %d: max_words must be ascending", i)
		}
		if i > 0 && tier.Cost < prevCost {
			return apperrors.Newf(apperrors.TypeConfig, "prompt tier %d: cost must not decrease", i)
		}
		prevWords, prevCost = tier.MaxWords, tier.Cost
	}
	if len(p.PromptTiers) > 0 && p.LongPromptCost < prevCost {
		return apperrors.Config("long prompt cost must not be below the last prompt tier")
	}

	if err := validateBounds("refinement", p.RefinementTiers, p.RefinementTop); err != nil {
		return err
	}
	return validateBounds("generation", p.GenerationTiers, p.GenerationTop)
}

func validateBounds(name string, bounds []TierBound, top types.Tier) error {
	if top == "" {
		return apperrors.Newf(apperrors.TypeConfig, "%s top tier is empty", name)
	}
	for i := 1; i < len(bounds); i++ {
		if bounds[i].Max <= bounds[i-1].Max {
			return apperrors.Newf(apperrors.TypeConfig, "%s tier %d: max must be ascending", name, i)
		}
	}
	return nil
}

func (p Policy) promptComplexity(words int) int {
	for _, tier := range p.PromptTiers {
		if words <= tier.MaxWords {
			return tier.Cost
		}
	}
	return p.LongPromptCost
}

func (p Policy) sectionSurcharge(count int) int {
	extra := count - p.FreeSections
	if extra <= 0 {
		return 0
	}
	return int(decimal.NewFromInt(int64(extra)).Mul(p.SectionRate).Ceil().IntPart())
}

func (p Policy) stickySurcharge(count int) int {
	if count <= 0 {
		return 0
	}
	return min(count*p.StickyElementCost, p.StickyElementCap)
}

func tierFor(cost int, bounds []TierBound, top types.Tier) types.Tier {
	for _, b := range bounds {
		if cost <= b.Max {
			return b.Tier
		}
	}
	return top
}

func clamp(v, lo, hi int) int {
	return max(lo, min(v, hi))
}

// String summarizes the clamp ranges
func (p Policy) String() string {
	return fmt.Sprintf("base=%d refinement=[%d,%d] generation=[%d,%d]",
		p.BaseCost, p.RefinementMin, p.RefinementMax, p.GenerationMin, p.GenerationMax)
}

// Bounds returns the clamp range for refinements or full generations
func (p Policy) Bounds(refinement bool) guards.Bounds {
	if refinement {
		return guards.Bounds{Min: p.RefinementMin, Max: p.RefinementMax}
	}
	return guards.Bounds{Min: p.GenerationMin, Max: p.GenerationMax}
}
