// Package packs describes the token top-up packs offered for purchase and
// recommends one when a balance falls short. Prices are display data; the
// payment processor charges the authoritative amount.
package packs

import (
	"sort"

	"github.com/shopspring/decimal"
)

// Pack is a purchasable bundle of tokens
type Pack struct {
	ID       string          `json:"id" yaml:"id"`
	Name     string          `json:"name" yaml:"name"`
	Tokens   int             `json:"tokens" yaml:"tokens"`
	Price    decimal.Decimal `json:"price" yaml:"price"`
	Currency string          `json:"currency" yaml:"currency"`
}

// PricePerToken returns the unit price rounded to four places
func (p Pack) PricePerToken() decimal.Decimal {
	if p.Tokens <= 0 {
		return decimal.Zero
	}
	return p.Price.DivRound(decimal.NewFromInt(int64(p.Tokens)), 4)
}

// Suggestion recommends buying Quantity of Pack to cover a deficit
type Suggestion struct {
	Pack     Pack            `json:"pack"`
	Quantity int             `json:"quantity"`
	Tokens   int             `json:"tokens"`
	Total    decimal.Decimal `json:"total"`
}

// Default returns the shipped pack list
func Default() []Pack {
	return []Pack{
		{ID: "starter", Name: "Starter", Tokens: 25, Price: decimal.RequireFromString("4.99"), Currency: "USD"},
		{ID: "creator", Name: "Creator", Tokens: 60, Price: decimal.RequireFromString("9.99"), Currency: "USD"},
		{ID: "pro", Name: "Pro", Tokens: 150, Price: decimal.RequireFromString("19.99"), Currency: "USD"},
		{ID: "studio", Name: "Studio", Tokens: 400, Price: decimal.RequireFromString("44.99"), Currency: "USD"},
	}
}

// Sorted returns packs ordered by token count, smallest first, dropping
// packs that grant no tokens.
func Sorted(list []Pack) []Pack {
	out := make([]Pack, 0, len(list))
	for _, p := range list {
		if p.Tokens > 0 {
			out = append(out, p)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Tokens < out[j].Tokens
	})
	return out
}

// Suggest picks the smallest pack that covers deficit on its own. When
// no single pack is large enough, the largest pack is repeated. ok is
// false when there is nothing to cover or no usable pack.
func Suggest(list []Pack, deficit int) (Suggestion, bool) {
	if deficit <= 0 {
		return Suggestion{}, false
	}
	sorted := Sorted(list)
	if len(sorted) == 0 {
		return Suggestion{}, false
	}

	for _, p := range sorted {
		if p.Tokens >= deficit {
			return suggestion(p, 1), true
		}
	}

	largest := sorted[len(sorted)-1]
	quantity := (deficit + largest.Tokens - 1) / largest.Tokens
	return suggestion(largest, quantity), true
}

func suggestion(p Pack, quantity int) Suggestion {
	return Suggestion{
		Pack:     p,
		Quantity: quantity,
		Tokens:   p.Tokens * quantity,
		Total:    p.Price.Mul(decimal.NewFromInt(int64(quantity))),
	}
}
