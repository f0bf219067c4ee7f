// Package api - API types for token cost estimation
// These types define the contract for the HTTP endpoints.
// The API is stateless and idempotent.
package api

import (
	"time"

	"github.com/shopspring/decimal"

	"sitegen-cost/core/catalog"
	"sitegen-cost/core/output"
	"sitegen-cost/core/packs"
	"sitegen-cost/core/types"
)

// EstimateRequest is the input to POST /estimate
type EstimateRequest struct {
	// Prompt is the user's description. Non-string values are coerced.
	Prompt interface{} `json:"prompt"`

	// Selections maps category name to the chosen value(s)
	Selections types.SelectionSet `json:"selections,omitempty"`

	// Refinement prices an edit of an existing site
	Refinement bool `json:"refinement,omitempty"`
}

// EstimateResponse is the output of POST /estimate
type EstimateResponse struct {
	RequestID string    `json:"request_id"`
	Timestamp time.Time `json:"timestamp"`

	types.PriceResult

	// Items is the display breakdown, zero components removed
	Items []output.LineItem `json:"items"`

	Metadata *ResponseMetadata `json:"metadata,omitempty"`
}

// ResponseMetadata contains audit/reproducibility metadata
type ResponseMetadata struct {
	InputHash     string `json:"input_hash"`
	EngineVersion string `json:"engine_version"`
	DurationMs    int64  `json:"duration_ms"`
}

// BalanceRequest is the input to POST /balance
type BalanceRequest struct {
	Available int `json:"available"`
	Required  int `json:"required"`
}

// BalanceResponse is the output of POST /balance
type BalanceResponse struct {
	types.BalanceCheck

	// Suggestion is set when the balance is insufficient
	Suggestion *packs.Suggestion `json:"suggestion,omitempty"`
}

// DiffRequest is the request for POST /diff
type DiffRequest struct {
	Base EstimateRequest `json:"base"`
	Head EstimateRequest `json:"head"`
}

// DiffResponse is the response for POST /diff
type DiffResponse struct {
	BaseCost   int          `json:"base_cost"`
	HeadCost   int          `json:"head_cost"`
	Delta      int          `json:"delta"`
	BaseTier   types.Tier   `json:"base_estimate"`
	HeadTier   types.Tier   `json:"head_estimate"`
	Changes    []DiffChange `json:"changes"`
	DurationMs int64        `json:"duration_ms"`
}

// DiffChange is one component that differs between base and head
type DiffChange struct {
	types.Change
	Label string `json:"label"`
}

// CategoryView is the wire form of a catalog category
type CategoryView struct {
	Name        string           `json:"name"`
	Label       string           `json:"label"`
	Kind        string           `json:"kind"`
	Conditional bool             `json:"conditional"`
	Unselected  int              `json:"unselected"`
	Choices     []catalog.Choice `json:"choices"`
}

// CatalogResponse is the output of GET /catalog
type CatalogResponse struct {
	Categories []CategoryView `json:"categories"`
	Count      int            `json:"count"`

	// Conditional names the categories charged only when selected
	Conditional []string `json:"conditional"`

	// Labels maps every breakdown key to its display label
	Labels map[string]string `json:"labels"`
}

// PackView is the wire form of a token pack
type PackView struct {
	packs.Pack
	PricePerToken decimal.Decimal `json:"price_per_token"`
}

// PacksResponse is the output of GET /packs
type PacksResponse struct {
	Packs []PackView `json:"packs"`
}

// ErrorResponse wraps an error for the client
type ErrorResponse struct {
	Error ErrorBody `json:"error"`
}

// ErrorBody carries the machine-readable code and message
type ErrorBody struct {
	Code      string `json:"code"`
	Message   string `json:"message"`
	RequestID string `json:"request_id,omitempty"`
}

func newCategoryView(c *catalog.Category) CategoryView {
	return CategoryView{
		Name:        c.Name,
		Label:       c.Label,
		Kind:        c.Kind.String(),
		Conditional: c.Conditional,
		Unselected:  c.Unselected,
		Choices:     c.Choices,
	}
}
