package types

import (
	"bytes"
	"encoding/json"
	"strconv"
)

// SelectionSet maps an option category name to the selected value(s).
// Single-select categories hold at most one value; multi-select
// categories hold a set. Absent keys and empty values mean "unselected".
type SelectionSet map[string][]string

// NewSelectionSet creates an empty selection set
func NewSelectionSet() SelectionSet {
	return make(SelectionSet)
}

// Set replaces the values selected for key
func (s SelectionSet) Set(key string, values ...string) SelectionSet {
	s[key] = append([]string(nil), values...)
	return s
}

// Single returns the first non-empty value for key, or "" when unselected
func (s SelectionSet) Single(key string) string {
	for _, v := range s[key] {
		if v != "" {
			return v
		}
	}
	return ""
}

// Values returns the distinct non-empty values for key in selection order
func (s SelectionSet) Values(key string) []string {
	raw := s[key]
	if len(raw) == 0 {
		return nil
	}
	seen := make(map[string]struct{}, len(raw))
	out := make([]string, 0, len(raw))
	for _, v := range raw {
		if v == "" {
			continue
		}
		if _, dup := seen[v]; dup {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	return out
}

// UnmarshalJSON accepts a JSON object whose values are strings, arrays,
// null, numbers or booleans. Scalars are coerced to their string form;
// nested objects are ignored.
func (s *SelectionSet) UnmarshalJSON(data []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	out := make(SelectionSet, len(raw))
	for key, msg := range raw {
		msg = bytes.TrimSpace(msg)
		if len(msg) > 0 && msg[0] == '[' {
			var items []interface{}
			if err := json.Unmarshal(msg, &items); err != nil {
				return err
			}
			values := make([]string, 0, len(items))
			for _, item := range items {
				if v := coerceScalar(item); v != "" {
					values = append(values, v)
				}
			}
			out[key] = values
			continue
		}

		var item interface{}
		if err := json.Unmarshal(msg, &item); err != nil {
			return err
		}
		if v := coerceScalar(item); v != "" {
			out[key] = []string{v}
		} else {
			out[key] = nil
		}
	}

	*s = out
	return nil
}

func coerceScalar(v interface{}) string {
	switch t := v.(type) {
	case string:
		return t
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(t)
	default:
		return ""
	}
}
