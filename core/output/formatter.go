// Package output provides output formatting interfaces.
// This package produces human and machine-readable outputs.
package output

import (
	"io"
	"sort"

	"sitegen-cost/core/packs"
	"sitegen-cost/core/types"
)

// ItemType marks a line item as adding to or discounting the price
type ItemType string

const (
	ItemAddition ItemType = "addition"
	ItemDiscount ItemType = "discount"
)

// LineItem is one displayed breakdown component
type LineItem struct {
	Label string   `json:"label"`
	Cost  int      `json:"cost"`
	Type  ItemType `json:"type"`
}

// LabelFunc maps a breakdown key to its display label
type LabelFunc func(key string) string

// FormatBreakdown converts a breakdown into display line items. Zero
// components are dropped; Cost is the absolute value with negatives
// typed as discounts. The base component leads, then descending cost.
func FormatBreakdown(breakdown types.Breakdown, labels LabelFunc) []LineItem {
	type keyed struct {
		key  string
		item LineItem
	}

	rows := make([]keyed, 0, len(breakdown))
	for key, cost := range breakdown {
		if cost == 0 {
			continue
		}
		label := key
		if labels != nil {
			if l := labels(key); l != "" {
				label = l
			}
		}
		item := LineItem{Label: label, Cost: cost, Type: ItemAddition}
		if cost < 0 {
			item.Cost = -cost
			item.Type = ItemDiscount
		}
		rows = append(rows, keyed{key: key, item: item})
	}

	sort.Slice(rows, func(i, j int) bool {
		a, b := rows[i], rows[j]
		if (a.key == types.KeyBase) != (b.key == types.KeyBase) {
			return a.key == types.KeyBase
		}
		if a.item.Cost != b.item.Cost {
			return a.item.Cost > b.item.Cost
		}
		if a.item.Label != b.item.Label {
			return a.item.Label < b.item.Label
		}
		if a.item.Type != b.item.Type {
			return a.item.Type < b.item.Type
		}
		return a.key < b.key
	})

	items := make([]LineItem, len(rows))
	for i, r := range rows {
		items[i] = r.item
	}
	return items
}

// Format represents output format type
type Format string

const (
	// FormatCLI is a human-readable CLI table
	FormatCLI Format = "cli"

	// FormatJSON is machine-readable JSON
	FormatJSON Format = "json"

	// FormatMarkdown is a markdown report
	FormatMarkdown Format = "markdown"
)

// Formatter produces output in a specific format
type Formatter interface {
	// Format returns the format type
	Format() Format

	// Render produces output for the given report
	Render(w io.Writer, report *Report) error
}

// Report is everything a renderer may show for one estimate
type Report struct {
	// Prompt is echoed back for context
	Prompt string `json:"prompt,omitempty"`

	// Result is the computed price
	Result types.PriceResult `json:"result"`

	// Items is the formatted breakdown
	Items []LineItem `json:"items"`

	// Balance is set when the caller supplied an available balance
	Balance *types.BalanceCheck `json:"balance,omitempty"`

	// Suggestion recommends a top-up when the balance is short
	Suggestion *packs.Suggestion `json:"suggestion,omitempty"`
}

// NewReport builds a report with its breakdown formatted
func NewReport(prompt string, result types.PriceResult, labels LabelFunc) *Report {
	return &Report{
		Prompt: prompt,
		Result: result,
		Items:  FormatBreakdown(result.Breakdown, labels),
	}
}
