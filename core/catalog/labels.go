package catalog

import "sitegen-cost/core/types"

// syntheticLabels names the breakdown components that are not catalog
// categories, plus the counted-category surcharges.
var syntheticLabels = map[string]string{
	types.KeyBase:             "Base generation",
	types.KeyPromptComplexity: "Prompt complexity",
	types.KeyCustomColors:     "Custom color palette",
	types.KeyDarkMode:         "Dark mode",
	types.KeySections:         "Additional sections",
	types.KeyStickyElements:   "Sticky elements",
}

// LabelTable returns the full breakdown label table for c
func (c *Catalog) LabelTable() map[string]string {
	table := make(map[string]string, len(c.entries)+len(syntheticLabels))
	for name, entry := range c.entries {
		if entry.Label != "" {
			table[name] = entry.Label
		}
	}
	for key, label := range syntheticLabels {
		table[key] = label
	}
	return table
}
