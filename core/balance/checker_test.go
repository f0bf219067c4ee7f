package balance

import (
	"errors"
	"testing"

	"sitegen-cost/core/types"
	apperrors "sitegen-cost/internal/errors"
)

func TestCheck(t *testing.T) {
	tests := []struct {
		name      string
		available int
		required  int
		want      types.BalanceCheck
	}{
		{
			name:      "quarter of the price",
			available: 5,
			required:  20,
			want:      types.BalanceCheck{Sufficient: false, Deficit: 15, Percentage: 25, Status: types.BalanceInsufficient},
		},
		{
			name:      "exactly enough",
			available: 20,
			required:  20,
			want:      types.BalanceCheck{Sufficient: true, Deficit: 0, Percentage: 100, Status: types.BalanceSufficient},
		},
		{
			name:      "more than enough clamps percentage",
			available: 90,
			required:  20,
			want:      types.BalanceCheck{Sufficient: true, Deficit: 0, Percentage: 100, Status: types.BalanceSufficient},
		},
		{
			name:      "close",
			available: 16,
			required:  20,
			want:      types.BalanceCheck{Sufficient: false, Deficit: 4, Percentage: 80, Status: types.BalanceClose},
		},
		{
			name:      "exactly 75 percent is moderate",
			available: 15,
			required:  20,
			want:      types.BalanceCheck{Sufficient: false, Deficit: 5, Percentage: 75, Status: types.BalanceModerate},
		},
		{
			name:      "exactly 50 percent is insufficient",
			available: 10,
			required:  20,
			want:      types.BalanceCheck{Sufficient: false, Deficit: 10, Percentage: 50, Status: types.BalanceInsufficient},
		},
		{
			name:      "nothing required",
			available: 0,
			required:  0,
			want:      types.BalanceCheck{Sufficient: true, Deficit: 0, Percentage: 100, Status: types.BalanceSufficient},
		},
		{
			name:      "negative balance clamps to zero percent",
			available: -5,
			required:  10,
			want:      types.BalanceCheck{Sufficient: false, Deficit: 15, Percentage: 0, Status: types.BalanceInsufficient},
		},
		{
			name:      "fractional percentage",
			available: 2,
			required:  3,
			want:      types.BalanceCheck{Sufficient: false, Deficit: 1, Percentage: 66.6667, Status: types.BalanceModerate},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Check(tt.available, tt.required); got != tt.want {
				t.Errorf("Check(%d, %d) = %+v, want %+v", tt.available, tt.required, got, tt.want)
			}
		})
	}
}

func TestRequire(t *testing.T) {
	if err := Require(20, 12); err != nil {
		t.Errorf("Require(20, 12) unexpected error: %v", err)
	}

	err := Require(5, 12)
	if err == nil {
		t.Fatal("Require(5, 12) expected error, got nil")
	}
	if !errors.Is(err, ErrInsufficientBalance) {
		t.Errorf("error = %v, want ErrInsufficientBalance", err)
	}
	if !apperrors.IsType(err, apperrors.TypeInput) {
		t.Errorf("error type = %s, want %s", apperrors.TypeOf(err), apperrors.TypeInput)
	}
}
