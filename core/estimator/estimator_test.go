package estimator

import (
	"reflect"
	"strings"
	"testing"

	"sitegen-cost/core/catalog"
	"sitegen-cost/core/guards"
	"sitegen-cost/core/types"
)

func words(n int) string {
	return strings.TrimSpace(strings.Repeat("word ", n))
}

func heavySelections() types.SelectionSet {
	return types.NewSelectionSet().
		Set("template", "E-commerce").
		Set("style", "Futuristic").
		Set("palette", "Custom").
		Set("mode", "Dark").
		Set("typography", "Custom").
		Set("imagery", "3D Renders").
		Set("layout", "Masonry").
		Set("navigation", "Mega Menu").
		Set("heroStyle", "Video Background").
		Set("animation", "Rich").
		Set("backgroundEffect", "3D Shapes").
		Set("seo", "Advanced").
		Set("accessibility", "WCAG AAA").
		Set("framework", "Next.js").
		Set("integrations", "Payments", "Booking", "Search", "Chat Widget").
		Set("sections", "Hero", "Features", "About", "Services", "Pricing", "Testimonials",
			"Team", "Gallery", "Portfolio", "Blog", "Stats", "Timeline", "FAQ", "Contact").
		Set("stickyElements", "Header", "Footer", "CTA Button", "Chat Widget", "Sidebar")
}

func TestEstimateScenarios(t *testing.T) {
	tests := []struct {
		name       string
		prompt     string
		selections types.SelectionSet
		refinement bool
		wantCost   int
		wantTier   types.Tier
		wantWords  int
		wantParts  map[string]int
	}{
		{
			name:      "short prompt, no selections",
			prompt:    "Build me a site",
			wantCost:  8,
			wantTier:  types.TierSimple,
			wantWords: 4,
			wantParts: map[string]int{"base": 5, "promptComplexity": 0},
		},
		{
			name:   "long prompt with custom palette, dark mode and six sections",
			prompt: words(200),
			selections: types.NewSelectionSet().
				Set("palette", "Custom").
				Set("mode", "Dark").
				Set("sections", "Hero", "Features", "Pricing", "FAQ", "Contact", "Footer"),
			wantCost:  16,
			wantTier:  types.TierStandard,
			wantWords: 200,
			wantParts: map[string]int{
				"base": 5, "promptComplexity": 5, "customColors": 2,
				"darkMode": 2, "sections": 2, "stickyElements": 0,
			},
		},
		{
			name:       "short refinement",
			prompt:     "make the button bigger",
			refinement: true,
			wantCost:   5,
			wantTier:   types.TierSimple,
			wantWords:  4,
			wantParts:  map[string]int{"base": 5, "promptComplexity": 0},
		},
		{
			name:       "long refinement",
			prompt:     words(151),
			refinement: true,
			wantCost:   10,
			wantTier:   types.TierStandard,
			wantWords:  151,
		},
		{
			name:       "everything selected saturates at the ceiling",
			prompt:     words(300),
			selections: heavySelections(),
			wantCost:   50,
			wantTier:   types.TierPremium,
			wantWords:  300,
		},
		{
			name:   "template and integrations",
			prompt: words(30),
			selections: types.NewSelectionSet().
				Set("template", "SaaS").
				Set("integrations", "Payments", "Newsletter"),
			wantCost:  14, // 5 + 2 + 3 + 4
			wantTier:  types.TierStandard,
			wantWords: 30,
			wantParts: map[string]int{"template": 3, "integrations": 4},
		},
		{
			name:   "discounts reduce the subtotal",
			prompt: words(60),
			selections: types.NewSelectionSet().
				Set("template", "Agency").
				Set("navigation", "None").
				Set("heroStyle", "Minimal").
				Set("animation", "None"),
			wantCost:  8, // 5 + 3 + 2 - 1 - 1 - 1 = 7, clamped
			wantTier:  types.TierSimple,
			wantWords: 60,
			wantParts: map[string]int{"navigation": -1, "heroStyle": -1, "animation": -1},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Estimate(tt.prompt, tt.selections, tt.refinement)

			if got.Cost != tt.wantCost {
				t.Errorf("Cost = %d, want %d (breakdown %v)", got.Cost, tt.wantCost, got.Breakdown)
			}
			if got.Estimate != tt.wantTier {
				t.Errorf("Estimate = %s, want %s", got.Estimate, tt.wantTier)
			}
			if got.WordCount != tt.wantWords {
				t.Errorf("WordCount = %d, want %d", got.WordCount, tt.wantWords)
			}
			if got.Refinement != tt.refinement {
				t.Errorf("Refinement = %v, want %v", got.Refinement, tt.refinement)
			}
			for key, want := range tt.wantParts {
				if got.Breakdown[key] != want {
					t.Errorf("Breakdown[%s] = %d, want %d", key, got.Breakdown[key], want)
				}
			}
		})
	}
}

func TestRefinementBreakdownOnlyHasPromptComponents(t *testing.T) {
	got := Estimate("tweak the footer", heavySelections(), true)
	want := types.Breakdown{"base": 5, "promptComplexity": 0}
	if !reflect.DeepEqual(got.Breakdown, want) {
		t.Errorf("Breakdown = %v, want %v", got.Breakdown, want)
	}
}

func TestPromptComplexityTiers(t *testing.T) {
	p := DefaultPolicy()
	tests := []struct {
		words int
		want  int
	}{
		{0, 0}, {10, 0}, {11, 2}, {50, 2}, {51, 3}, {150, 3}, {151, 5}, {5000, 5},
	}

	for _, tt := range tests {
		if got := p.promptComplexity(tt.words); got != tt.want {
			t.Errorf("promptComplexity(%d) = %d, want %d", tt.words, got, tt.want)
		}
	}
}

func TestPromptComplexityMonotonic(t *testing.T) {
	p := DefaultPolicy()
	prev := p.promptComplexity(0)
	for w := 1; w <= 400; w++ {
		cur := p.promptComplexity(w)
		if cur < prev {
			t.Fatalf("promptComplexity decreased at %d words: %d -> %d", w, prev, cur)
		}
		prev = cur
	}
}

func TestSectionSurcharge(t *testing.T) {
	p := DefaultPolicy()
	tests := []struct {
		count int
		want  int
	}{
		{0, 0}, {4, 0}, {5, 1}, {6, 2}, {7, 3}, {8, 3}, {12, 6}, {18, 11},
	}

	for _, tt := range tests {
		if got := p.sectionSurcharge(tt.count); got != tt.want {
			t.Errorf("sectionSurcharge(%d) = %d, want %d", tt.count, got, tt.want)
		}
	}
}

func TestStickySurcharge(t *testing.T) {
	p := DefaultPolicy()
	tests := []struct {
		count int
		want  int
	}{
		{0, 0}, {1, 1}, {2, 2}, {3, 3}, {7, 3},
	}

	for _, tt := range tests {
		if got := p.stickySurcharge(tt.count); got != tt.want {
			t.Errorf("stickySurcharge(%d) = %d, want %d", tt.count, got, tt.want)
		}
	}
}

func TestEstimateIsDeterministic(t *testing.T) {
	sel := heavySelections()
	first := Estimate(words(75), sel, false)
	for i := 0; i < 20; i++ {
		if got := Estimate(words(75), sel, false); !reflect.DeepEqual(got, first) {
			t.Fatalf("run %d differs: %+v vs %+v", i, got, first)
		}
	}
}

func TestBreakdownSumLaw(t *testing.T) {
	cases := []types.SelectionSet{
		nil,
		types.NewSelectionSet(),
		heavySelections(),
		types.NewSelectionSet().Set("navigation", "None").Set("heroStyle", "Minimal"),
	}

	for i, sel := range cases {
		for _, refine := range []bool{false, true} {
			got := Estimate(words(i*40), sel, refine)
			if sum := got.Breakdown.Sum(); sum != got.Subtotal {
				t.Errorf("case %d refine=%v: breakdown sum %d != subtotal %d", i, refine, sum, got.Subtotal)
			}
		}
	}
}

func TestClampInvariant(t *testing.T) {
	p := DefaultPolicy()
	prompts := []string{"", "hi", words(12), words(80), words(1000)}
	selections := []types.SelectionSet{nil, heavySelections(),
		types.NewSelectionSet().Set("navigation", "None").Set("animation", "None").Set("heroStyle", "Minimal")}

	for _, prompt := range prompts {
		for _, sel := range selections {
			gen := Estimate(prompt, sel, false)
			if gen.Cost < p.GenerationMin || gen.Cost > p.GenerationMax {
				t.Errorf("generation cost %d outside [%d,%d]", gen.Cost, p.GenerationMin, p.GenerationMax)
			}
			ref := Estimate(prompt, sel, true)
			if ref.Cost < p.RefinementMin || ref.Cost > p.RefinementMax {
				t.Errorf("refinement cost %d outside [%d,%d]", ref.Cost, p.RefinementMin, p.RefinementMax)
			}
			if v := guards.CheckPriceResult(gen, p.Bounds(false)); len(v) > 0 {
				t.Errorf("generation invariants: %s", guards.Join(v))
			}
			if v := guards.CheckPriceResult(ref, p.Bounds(true)); len(v) > 0 {
				t.Errorf("refinement invariants: %s", guards.Join(v))
			}
		}
	}
}

func TestZeroSelectionBaseline(t *testing.T) {
	p := DefaultPolicy()
	got := Estimate("", types.SelectionSet{}, false)
	want := max(p.GenerationMin, min(p.BaseCost, p.GenerationMax))
	if got.Cost != want {
		t.Errorf("baseline cost = %d, want %d", got.Cost, want)
	}
	if got.WordCount != 0 {
		t.Errorf("WordCount = %d, want 0", got.WordCount)
	}
}

func TestRefinementIgnoresSelections(t *testing.T) {
	prompt := words(42)
	plain := Estimate(prompt, nil, true)
	loaded := Estimate(prompt, heavySelections(), true)
	if !reflect.DeepEqual(plain, loaded) {
		t.Errorf("refinement depends on selections: %+v vs %+v", plain, loaded)
	}
}

func TestUnknownKeysAndValuesCostNothing(t *testing.T) {
	sel := types.NewSelectionSet().
		Set("template", "Spaceship").
		Set("integrations", "Teleporter", "Payments").
		Set("favouriteColour", "Teal")

	got := Estimate("a site", sel, false)
	if got.Breakdown["template"] != 0 {
		t.Errorf("unknown template value cost %d, want 0", got.Breakdown["template"])
	}
	if got.Breakdown["integrations"] != 3 {
		t.Errorf("integrations = %d, want 3", got.Breakdown["integrations"])
	}
	if _, ok := got.Breakdown["favouriteColour"]; ok {
		t.Error("unknown category should not appear in breakdown")
	}
}

func TestMultiSelectDeduplicates(t *testing.T) {
	sel := types.NewSelectionSet().
		Set("integrations", "Payments", "Payments", "").
		Set("sections", "Hero", "Hero", "Features", "About", "Team", "Team", "Blog")

	got := Estimate("", sel, false)
	if got.Breakdown["integrations"] != 3 {
		t.Errorf("integrations = %d, want 3", got.Breakdown["integrations"])
	}
	// five distinct sections -> ceil(1 * 0.75) = 1
	if got.Breakdown["sections"] != 1 {
		t.Errorf("sections = %d, want 1", got.Breakdown["sections"])
	}
}

func TestConditionalCategories(t *testing.T) {
	c := catalog.NewCatalog()
	c.Register(catalog.Category{Name: "hosting", Unselected: 3, Choices: []catalog.Choice{{Value: "Static", Cost: 1}}})
	c.Register(catalog.Category{Name: "motion", Conditional: true, Unselected: 4, Choices: []catalog.Choice{{Value: "Fade", Cost: 1}}})
	c.Register(catalog.Category{Name: "widgets", Kind: catalog.KindMulti, Unselected: 2, Choices: []catalog.Choice{{Value: "Clock", Cost: 1}}})
	est := New(c, DefaultPolicy())

	empty := est.Estimate("", nil, false)
	if empty.Breakdown["hosting"] != 3 {
		t.Errorf("unconditional unselected cost = %d, want 3", empty.Breakdown["hosting"])
	}
	if empty.Breakdown["widgets"] != 2 {
		t.Errorf("unconditional multi unselected cost = %d, want 2", empty.Breakdown["widgets"])
	}
	if _, ok := empty.Breakdown["motion"]; ok {
		t.Error("conditional category should not be charged when unselected")
	}

	picked := est.Estimate("", types.NewSelectionSet().Set("motion", "Fade").Set("hosting", "Static"), false)
	if picked.Breakdown["motion"] != 1 {
		t.Errorf("conditional selected cost = %d, want 1", picked.Breakdown["motion"])
	}
	if picked.Breakdown["hosting"] != 1 {
		t.Errorf("unconditional selected cost = %d, want 1", picked.Breakdown["hosting"])
	}
}

func TestCountedCategoriesSkipLookup(t *testing.T) {
	got := Estimate("", types.NewSelectionSet().Set("sections", "Hero"), false)
	if got.Breakdown["sections"] != 0 {
		t.Errorf("sections = %d, want 0 for one section", got.Breakdown["sections"])
	}
}

func TestNilCatalogUsesDefault(t *testing.T) {
	est := New(nil, DefaultPolicy())
	if est.Catalog().Len() != catalog.Default().Len() {
		t.Error("nil catalog should fall back to the shipped catalog")
	}
}

func TestPolicyValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Policy)
		wantErr bool
	}{
		{name: "default is valid", mutate: func(*Policy) {}},
		{name: "negative base", mutate: func(p *Policy) { p.BaseCost = -1 }, wantErr: true},
		{name: "inverted generation clamp", mutate: func(p *Policy) { p.GenerationMin = 60 }, wantErr: true},
		{name: "inverted refinement clamp", mutate: func(p *Policy) { p.RefinementMax = 1 }, wantErr: true},
		{name: "descending prompt tiers", mutate: func(p *Policy) {
			p.PromptTiers = []PromptTier{{MaxWords: 50, Cost: 2}, {MaxWords: 10, Cost: 3}}
		}, wantErr: true},
		{name: "decreasing prompt cost", mutate: func(p *Policy) {
			p.PromptTiers = []PromptTier{{MaxWords: 10, Cost: 3}, {MaxWords: 50, Cost: 2}}
		}, wantErr: true},
		{name: "long prompt cheaper than last tier", mutate: func(p *Policy) { p.LongPromptCost = 1 }, wantErr: true},
		{name: "empty top tier", mutate: func(p *Policy) { p.GenerationTop = "" }, wantErr: true},
		{name: "unordered tier bounds", mutate: func(p *Policy) {
			p.RefinementTiers = []TierBound{{Max: 12, Tier: types.TierStandard}, {Max: 7, Tier: types.TierSimple}}
		}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := DefaultPolicy()
			tt.mutate(&p)
			err := p.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestGenerationTiers(t *testing.T) {
	p := DefaultPolicy()
	tests := []struct {
		cost int
		want types.Tier
	}{
		{8, types.TierSimple}, {12, types.TierSimple}, {13, types.TierStandard},
		{22, types.TierStandard}, {23, types.TierComplex}, {35, types.TierComplex},
		{36, types.TierPremium}, {50, types.TierPremium},
	}
	for _, tt := range tests {
		if got := tierFor(tt.cost, p.GenerationTiers, p.GenerationTop); got != tt.want {
			t.Errorf("generation tier(%d) = %s, want %s", tt.cost, got, tt.want)
		}
	}

	refine := []struct {
		cost int
		want types.Tier
	}{
		{3, types.TierSimple}, {7, types.TierSimple}, {8, types.TierStandard},
		{12, types.TierStandard}, {13, types.TierComplex},
	}
	for _, tt := range refine {
		if got := tierFor(tt.cost, p.RefinementTiers, p.RefinementTop); got != tt.want {
			t.Errorf("refinement tier(%d) = %s, want %s", tt.cost, got, tt.want)
		}
	}
}
