// Package catalog - Authoritative design-option catalog
// Defines every option category a selection set may reference, the
// token cost of each choice, and how the category is priced.
// The catalog is data: adding an option is a table edit, never a logic change.
package catalog

import (
	"sort"
)

// Kind classifies how a category's selection is priced
type Kind int

const (
	// KindSingle - one value, cost looked up in the cost map
	KindSingle Kind = iota
	// KindMulti - a set of values, each value's cost summed
	KindMulti
	// KindCounted - a set of values priced by how many are selected
	KindCounted
)

// String returns string representation
func (k Kind) String() string {
	switch k {
	case KindSingle:
		return "single"
	case KindMulti:
		return "multi"
	case KindCounted:
		return "counted"
	default:
		return "unknown"
	}
}

// ParseKind converts the string form back to a Kind
func ParseKind(s string) (Kind, bool) {
	switch s {
	case "single", "":
		return KindSingle, true
	case "multi":
		return KindMulti, true
	case "counted":
		return KindCounted, true
	default:
		return KindSingle, false
	}
}

// Choice is one selectable value and its token cost delta
type Choice struct {
	Value string `json:"value"`
	Cost  int    `json:"cost"`
}

// Category is a catalog entry for one design-option category
type Category struct {
	Name  string `json:"name"`
	Label string `json:"label"`
	Kind  Kind   `json:"-"`

	// Conditional categories are charged only when something is selected.
	// Unconditional categories always charge, using Unselected when empty.
	Conditional bool `json:"conditional"`

	// Unselected is the cost of the empty selection
	Unselected int `json:"unselected,omitempty"`

	Choices []Choice `json:"choices"`

	index map[string]int
}

// Cost returns the cost of value. Unknown values report ok=false.
func (c *Category) Cost(value string) (int, bool) {
	if value == "" {
		return c.Unselected, true
	}
	if c.index == nil {
		for _, ch := range c.Choices {
			if ch.Value == value {
				return ch.Cost, true
			}
		}
		return 0, false
	}
	cost, ok := c.index[value]
	return cost, ok
}

// Values returns the choice values in declaration order
func (c *Category) Values() []string {
	out := make([]string, len(c.Choices))
	for i, ch := range c.Choices {
		out[i] = ch.Value
	}
	return out
}

// Priced reports whether the category contributes through cost lookups.
// Counted categories are priced by the estimator's counting rules instead.
func (c *Category) Priced() bool {
	return c.Kind != KindCounted
}

func (c *Category) buildIndex() {
	c.index = make(map[string]int, len(c.Choices))
	for _, ch := range c.Choices {
		c.index[ch.Value] = ch.Cost
	}
}

// Catalog is the authoritative option catalog. It is built once and
// read concurrently afterwards; Register must not be called after the
// catalog is shared.
type Catalog struct {
	entries map[string]*Category
}

// NewCatalog creates a new empty catalog
func NewCatalog() *Catalog {
	return &Catalog{
		entries: make(map[string]*Category),
	}
}

// Register adds or replaces a category
func (c *Catalog) Register(entry Category) {
	entry.Choices = append([]Choice(nil), entry.Choices...)
	entry.buildIndex()
	c.entries[entry.Name] = &entry
}

// Get returns a category by name
func (c *Catalog) Get(name string) (*Category, bool) {
	entry, ok := c.entries[name]
	return entry, ok
}

// Len returns the number of categories
func (c *Catalog) Len() int {
	return len(c.entries)
}

// Categories returns all categories sorted by name
func (c *Catalog) Categories() []*Category {
	result := make([]*Category, 0, len(c.entries))
	for _, entry := range c.entries {
		result = append(result, entry)
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].Name < result[j].Name
	})
	return result
}

// Conditional returns the names of all conditional categories, sorted
func (c *Catalog) Conditional() []string {
	var names []string
	for _, entry := range c.Categories() {
		if entry.Conditional {
			names = append(names, entry.Name)
		}
	}
	return names
}

// Merge returns a new catalog holding c's categories with other's
// categories replacing any of the same name.
func (c *Catalog) Merge(other *Catalog) *Catalog {
	merged := NewCatalog()
	for _, entry := range c.entries {
		merged.Register(*entry)
	}
	if other != nil {
		for _, entry := range other.entries {
			merged.Register(*entry)
		}
	}
	return merged
}

// Label returns the display label for a breakdown key. Synthetic
// components win over categories of the same name; unknown keys fall
// back to the raw key.
func (c *Catalog) Label(key string) string {
	if label, ok := syntheticLabels[key]; ok {
		return label
	}
	if entry, ok := c.entries[key]; ok && entry.Label != "" {
		return entry.Label
	}
	return key
}
