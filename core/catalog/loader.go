// Package catalog - HCL catalog files
// Operators override or extend the shipped tables with a file such as:
//
//	category "template" {
//	  label       = "Template"
//	  kind        = "single"
//	  conditional = false
//	  costs = {
//	    "Landing Page" = 0
//	    "E-commerce"   = 4
//	  }
//	}
//
// Counted categories list their options with `choices = [...]`.
// A `""` key in costs prices the unselected state.
package catalog

import (
	stderrors "errors"
	"fmt"
	"math/big"
	"os"
	"sort"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/convert"

	apperrors "sitegen-cost/internal/errors"
)

var fileSchema = &hcl.BodySchema{
	Blocks: []hcl.BlockHeaderSchema{
		{Type: "category", LabelNames: []string{"name"}},
	},
}

var categorySchema = &hcl.BodySchema{
	Attributes: []hcl.AttributeSchema{
		{Name: "label"},
		{Name: "kind"},
		{Name: "conditional"},
		{Name: "unselected"},
		{Name: "costs"},
		{Name: "choices"},
	},
}

// LoadFile parses and validates an HCL catalog file
func LoadFile(path string) (*Catalog, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.TypeConfig, "failed to read catalog file", err).
			WithContext("file", path)
	}
	return Parse(src, path)
}

// Parse decodes HCL catalog source. Every category is validated with
// DefaultValidationRules before the catalog is returned.
func Parse(src []byte, filename string) (*Catalog, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, diagError(filename, diags)
	}

	content, diags := file.Body.Content(fileSchema)
	if diags.HasErrors() {
		return nil, diagError(filename, diags)
	}

	c := NewCatalog()
	for _, block := range content.Blocks {
		entry, err := decodeCategory(block)
		if err != nil {
			return nil, apperrors.Parsing(fmt.Sprintf("category %q", block.Labels[0]), err).
				WithContext("file", filename).
				WithContext("line", block.DefRange.Start.Line)
		}
		if _, dup := c.Get(entry.Name); dup {
			return nil, apperrors.Newf(apperrors.TypeParsing, "category %q declared twice", entry.Name).
				WithContext("file", filename).
				WithContext("line", block.DefRange.Start.Line)
		}
		c.Register(entry)
	}

	if errs := c.Validate(DefaultValidationRules()); len(errs) > 0 {
		return nil, apperrors.Parsing("catalog validation failed", stderrors.Join(errs...)).
			WithContext("file", filename)
	}

	return c, nil
}

func decodeCategory(block *hcl.Block) (Category, error) {
	entry := Category{Name: block.Labels[0]}

	content, diags := block.Body.Content(categorySchema)
	if diags.HasErrors() {
		return entry, diags
	}

	attr := func(name string) (cty.Value, bool, error) {
		a, ok := content.Attributes[name]
		if !ok {
			return cty.NilVal, false, nil
		}
		val, diags := a.Expr.Value(nil)
		if diags.HasErrors() {
			return cty.NilVal, false, diags
		}
		if val.IsNull() {
			return cty.NilVal, false, nil
		}
		if !val.IsWhollyKnown() {
			return cty.NilVal, false, fmt.Errorf("%s: value must be known", name)
		}
		return val, true, nil
	}

	if val, ok, err := attr("label"); err != nil {
		return entry, err
	} else if ok {
		s, err := asString(val)
		if err != nil {
			return entry, fmt.Errorf("label: %w", err)
		}
		entry.Label = s
	}

	if val, ok, err := attr("kind"); err != nil {
		return entry, err
	} else if ok {
		s, err := asString(val)
		if err != nil {
			return entry, fmt.Errorf("kind: %w", err)
		}
		kind, valid := ParseKind(s)
		if !valid {
			return entry, fmt.Errorf("kind: unknown kind %q (want single, multi or counted)", s)
		}
		entry.Kind = kind
	}

	if val, ok, err := attr("conditional"); err != nil {
		return entry, err
	} else if ok {
		b, err := convert.Convert(val, cty.Bool)
		if err != nil {
			return entry, fmt.Errorf("conditional: %w", err)
		}
		entry.Conditional = b.True()
	}

	if val, ok, err := attr("unselected"); err != nil {
		return entry, err
	} else if ok {
		n, err := asInt(val)
		if err != nil {
			return entry, fmt.Errorf("unselected: %w", err)
		}
		entry.Unselected = n
	}

	var order []string
	if val, ok, err := attr("choices"); err != nil {
		return entry, err
	} else if ok {
		list, err := convert.Convert(val, cty.List(cty.String))
		if err != nil {
			return entry, fmt.Errorf("choices: %w", err)
		}
		for _, v := range list.AsValueSlice() {
			if v.IsNull() {
				return entry, fmt.Errorf("choices: null entry")
			}
			order = append(order, v.AsString())
		}
	}

	costs := map[string]int{}
	if val, ok, err := attr("costs"); err != nil {
		return entry, err
	} else if ok {
		if !val.Type().IsObjectType() && !val.Type().IsMapType() {
			return entry, fmt.Errorf("costs: must be a map of choice to integer cost")
		}
		for it := val.ElementIterator(); it.Next(); {
			k, v := it.Element()
			n, err := asInt(v)
			if err != nil {
				return entry, fmt.Errorf("costs[%q]: %w", k.AsString(), err)
			}
			if k.AsString() == "" {
				entry.Unselected = n
				continue
			}
			costs[k.AsString()] = n
		}
	}

	entry.Choices = orderChoices(order, costs)
	return entry, nil
}

// orderChoices lists the declared order first, then any priced values
// not in it, alphabetically.
func orderChoices(order []string, costs map[string]int) []Choice {
	choices := make([]Choice, 0, len(order)+len(costs))
	listed := make(map[string]struct{}, len(order))
	for _, v := range order {
		listed[v] = struct{}{}
		choices = append(choices, Choice{Value: v, Cost: costs[v]})
	}

	var rest []string
	for v := range costs {
		if _, ok := listed[v]; !ok {
			rest = append(rest, v)
		}
	}
	sort.Strings(rest)
	for _, v := range rest {
		choices = append(choices, Choice{Value: v, Cost: costs[v]})
	}
	return choices
}

func asString(val cty.Value) (string, error) {
	s, err := convert.Convert(val, cty.String)
	if err != nil {
		return "", err
	}
	return s.AsString(), nil
}

func asInt(val cty.Value) (int, error) {
	n, err := convert.Convert(val, cty.Number)
	if err != nil {
		return 0, err
	}
	bf := n.AsBigFloat()
	if !bf.IsInt() {
		return 0, fmt.Errorf("cost %s is not an integer", bf.Text('f', -1))
	}
	i, acc := bf.Int64()
	if acc != big.Exact || i > 1<<31-1 || i < -(1<<31) {
		return 0, fmt.Errorf("cost %s is out of range", bf.Text('f', -1))
	}
	return int(i), nil
}

func diagError(filename string, diags hcl.Diagnostics) error {
	err := apperrors.Parsing("invalid catalog file", diags).WithContext("file", filename)
	for _, d := range diags {
		if d.Severity == hcl.DiagError && d.Subject != nil {
			err.WithContext("line", d.Subject.Start.Line)
			break
		}
	}
	return err
}
