package estimator

import (
	"reflect"
	"testing"

	"sitegen-cost/core/types"
)

func TestCompare(t *testing.T) {
	base := Estimate("a bakery site", types.NewSelectionSet().Set("style", "Modern"), false)
	head := Estimate("a bakery site", types.NewSelectionSet().
		Set("mode", "Dark").
		Set("animation", "Rich"), false)

	cmp := Compare(base, head)

	if cmp.BaseCost != base.Cost || cmp.HeadCost != head.Cost {
		t.Errorf("costs = %d/%d, want %d/%d", cmp.BaseCost, cmp.HeadCost, base.Cost, head.Cost)
	}
	if cmp.Delta != head.Cost-base.Cost {
		t.Errorf("Delta = %d, want %d", cmp.Delta, head.Cost-base.Cost)
	}

	byKey := map[string]types.Change{}
	for _, c := range cmp.Changes {
		byKey[c.Key] = c
		if c.Delta != c.Head-c.Base {
			t.Errorf("%s: delta %d != head-base", c.Key, c.Delta)
		}
		if c.Delta == 0 {
			t.Errorf("%s: unchanged components should be omitted", c.Key)
		}
	}

	if c, ok := byKey["darkMode"]; !ok || c.Kind != types.ChangeChanged || c.Delta != 2 {
		t.Errorf("darkMode change = %+v", c)
	}
	if c, ok := byKey["animation"]; !ok || c.Kind != types.ChangeAdded || c.Head != 4 {
		t.Errorf("animation change = %+v", c)
	}
	if _, ok := byKey["base"]; ok {
		t.Error("base is identical on both sides and should be omitted")
	}
}

func TestCompareIdentical(t *testing.T) {
	r := Estimate("a portfolio", types.NewSelectionSet().Set("template", "Portfolio"), false)
	cmp := Compare(r, r)
	if cmp.Delta != 0 || len(cmp.Changes) != 0 {
		t.Errorf("Compare(r, r) = %+v, want no changes", cmp)
	}
	if cmp.Changes == nil {
		t.Error("Changes should be empty, not nil")
	}
}

func TestCompareOrdersByKey(t *testing.T) {
	base := types.PriceResult{Cost: 8, Breakdown: types.Breakdown{"base": 5}}
	head := types.PriceResult{Cost: 12, Breakdown: types.Breakdown{"base": 5, "seo": 2, "framework": 1, "darkMode": 2}}

	var keys []string
	for _, c := range Compare(base, head).Changes {
		keys = append(keys, c.Key)
	}
	want := []string{"darkMode", "framework", "seo"}
	if !reflect.DeepEqual(keys, want) {
		t.Errorf("keys = %v, want %v", keys, want)
	}
}
