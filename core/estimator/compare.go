package estimator

import (
	"sitegen-cost/core/determinism"
	"sitegen-cost/core/types"
)

// Compare reports how head differs from base, component by component.
// Components with equal cost on both sides are omitted; the rest are
// ordered by key.
func Compare(base, head types.PriceResult) types.Comparison {
	keys := map[string]struct{}{}
	for k := range base.Breakdown {
		keys[k] = struct{}{}
	}
	for k := range head.Breakdown {
		keys[k] = struct{}{}
	}

	changes := []types.Change{}
	for _, key := range determinism.SortedKeys(keys) {
		b, inBase := base.Breakdown[key]
		h, inHead := head.Breakdown[key]
		if inBase && inHead && b == h {
			continue
		}

		kind := types.ChangeChanged
		switch {
		case !inBase:
			kind = types.ChangeAdded
		case !inHead:
			kind = types.ChangeRemoved
		}
		if !inBase && h == 0 || !inHead && b == 0 {
			continue
		}
		changes = append(changes, types.Change{Key: key, Kind: kind, Base: b, Head: h, Delta: h - b})
	}

	return types.Comparison{
		BaseCost: base.Cost,
		HeadCost: head.Cost,
		Delta:    head.Cost - base.Cost,
		Changes:  changes,
	}
}
