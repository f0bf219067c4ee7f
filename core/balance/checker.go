// Package balance classifies whether a token balance covers a price.
// It is display-side guidance only: the generation service debits the
// authoritative balance itself.
package balance

import (
	stderrors "errors"

	"github.com/shopspring/decimal"

	"sitegen-cost/core/types"
	apperrors "sitegen-cost/internal/errors"
)

// ErrInsufficientBalance is wrapped by Require when a balance falls short
var ErrInsufficientBalance = stderrors.New("insufficient token balance")

var (
	hundred        = decimal.NewFromInt(100)
	closeThreshold = decimal.NewFromInt(75)
	moderateLimit  = decimal.NewFromInt(50)
)

// Check compares an available balance with a required price
func Check(available, required int) types.BalanceCheck {
	pct := percentage(available, required)

	status := types.BalanceInsufficient
	switch {
	case available >= required:
		status = types.BalanceSufficient
	case pct.GreaterThan(closeThreshold):
		status = types.BalanceClose
	case pct.GreaterThan(moderateLimit):
		status = types.BalanceModerate
	}

	return types.BalanceCheck{
		Sufficient: available >= required,
		Deficit:    max(0, required-available),
		Percentage: pct.InexactFloat64(),
		Status:     status,
	}
}

// Require returns an INPUT_ERROR wrapping ErrInsufficientBalance when
// available does not cover required.
func Require(available, required int) error {
	check := Check(available, required)
	if check.Sufficient {
		return nil
	}
	return apperrors.Wrap(apperrors.TypeInput, "balance does not cover the estimated price", ErrInsufficientBalance).
		WithContext("available", available).
		WithContext("required", required).
		WithContext("deficit", check.Deficit)
}

// percentage is available/required*100 clamped to [0, 100], or 100 when
// nothing is required.
func percentage(available, required int) decimal.Decimal {
	if required <= 0 {
		return hundred
	}
	pct := decimal.NewFromInt(int64(available)).
		Mul(hundred).
		DivRound(decimal.NewFromInt(int64(required)), 4)
	switch {
	case pct.IsNegative():
		return decimal.Zero
	case pct.GreaterThan(hundred):
		return hundred
	default:
		return pct
	}
}
