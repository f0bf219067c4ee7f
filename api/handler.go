// Package api - request execution
// The handler wraps the estimator; it contains NO pricing logic.
// All logic is delegated to core packages.
package api

import (
	"context"
	"time"

	"go.uber.org/zap"

	"sitegen-cost/core/balance"
	"sitegen-cost/core/estimator"
	"sitegen-cost/core/guards"
	"sitegen-cost/core/output"
	"sitegen-cost/core/packs"
	"sitegen-cost/core/types"
	apperrors "sitegen-cost/internal/errors"
	"sitegen-cost/internal/logging"
)

// Handler executes API requests against an estimator
type Handler struct {
	estimator *estimator.Estimator
	packs     []packs.Pack
}

// NewHandler creates a new handler. A nil estimator uses the shipped
// catalog and policy; nil packs use the shipped pack list.
func NewHandler(est *estimator.Estimator, packList []packs.Pack) *Handler {
	if est == nil {
		est = estimator.NewDefault()
	}
	if packList == nil {
		packList = packs.Default()
	}
	return &Handler{
		estimator: est,
		packs:     packs.Sorted(packList),
	}
}

// price runs the estimator and refuses results that break the price
// invariants.
func (h *Handler) price(req *EstimateRequest) (types.PriceResult, error) {
	result := h.estimator.Estimate(estimator.PromptText(req.Prompt), req.Selections, req.Refinement)
	if violations := guards.CheckPriceResult(result, h.estimator.Policy().Bounds(result.Refinement)); len(violations) > 0 {
		return types.PriceResult{}, apperrors.Newf(apperrors.TypeInternal, "price result failed invariant checks: %s", guards.Join(violations))
	}
	return result, nil
}

func (h *Handler) estimate(ctx context.Context, requestID string, req *EstimateRequest) (*EstimateResponse, error) {
	result, err := h.price(req)
	if err != nil {
		return nil, err
	}

	logging.FromContext(ctx).Debug("estimate computed",
		zap.Int("cost", result.Cost),
		zap.Int("subtotal", result.Subtotal),
		zap.String("estimate", result.Estimate.String()),
		zap.Bool("refinement", result.Refinement),
	)

	return &EstimateResponse{
		RequestID:   requestID,
		Timestamp:   time.Now().UTC(),
		PriceResult: result,
		Items:       output.FormatBreakdown(result.Breakdown, h.estimator.Catalog().Label),
	}, nil
}

func (h *Handler) balance(req *BalanceRequest) (*BalanceResponse, error) {
	if req.Available < 0 || req.Required < 0 {
		return nil, apperrors.Input("available and required must not be negative")
	}

	check := balance.Check(req.Available, req.Required)
	resp := &BalanceResponse{BalanceCheck: check}
	if suggestion, ok := packs.Suggest(h.packs, check.Deficit); ok {
		resp.Suggestion = &suggestion
	}
	return resp, nil
}

func (h *Handler) diff(req *DiffRequest) (*DiffResponse, error) {
	base, err := h.price(&req.Base)
	if err != nil {
		return nil, err
	}
	head, err := h.price(&req.Head)
	if err != nil {
		return nil, err
	}

	cmp := estimator.Compare(base, head)
	changes := make([]DiffChange, len(cmp.Changes))
	for i, c := range cmp.Changes {
		changes[i] = DiffChange{Change: c, Label: h.estimator.Catalog().Label(c.Key)}
	}

	return &DiffResponse{
		BaseCost: cmp.BaseCost,
		HeadCost: cmp.HeadCost,
		Delta:    cmp.Delta,
		BaseTier: base.Estimate,
		HeadTier: head.Estimate,
		Changes:  changes,
	}, nil
}

func (h *Handler) catalog() *CatalogResponse {
	c := h.estimator.Catalog()
	categories := c.Categories()
	resp := &CatalogResponse{
		Categories:  make([]CategoryView, len(categories)),
		Count:       len(categories),
		Conditional: c.Conditional(),
		Labels:      c.LabelTable(),
	}
	for i, c := range categories {
		resp.Categories[i] = newCategoryView(c)
	}
	return resp
}

func (h *Handler) category(name string) (*CategoryView, error) {
	c, ok := h.estimator.Catalog().Get(name)
	if !ok {
		return nil, apperrors.NotFound("category", name)
	}
	view := newCategoryView(c)
	return &view, nil
}

func (h *Handler) packList() *PacksResponse {
	resp := &PacksResponse{Packs: make([]PackView, len(h.packs))}
	for i, p := range h.packs {
		resp.Packs[i] = PackView{Pack: p, PricePerToken: p.PricePerToken()}
	}
	return resp
}
