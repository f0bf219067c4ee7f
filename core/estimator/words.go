package estimator

import (
	"fmt"
	"strconv"
	"strings"
)

// CountWords returns the number of whitespace-delimited words in prompt
func CountWords(prompt string) int {
	return len(strings.Fields(prompt))
}

// PromptText coerces a loosely typed prompt (for example a decoded JSON
// value) to the string that gets priced. nil becomes the empty prompt.
func PromptText(v interface{}) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(t)
	case []byte:
		return string(t)
	case fmt.Stringer:
		return t.String()
	default:
		return fmt.Sprint(t)
	}
}
