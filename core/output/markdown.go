package output

import (
	"io"
	"strconv"
	"strings"
)

// MarkdownFormatter renders a table suitable for issue or chat comments
type MarkdownFormatter struct{}

// Format returns the format type
func (MarkdownFormatter) Format() Format { return FormatMarkdown }

// Render writes the markdown table
func (MarkdownFormatter) Render(w io.Writer, report *Report) error {
	bw := &errWriter{w: w}
	result := report.Result

	bw.println("## Token cost estimate")
	bw.println("")
	bw.println("| Component | Tokens |")
	bw.println("|---|---:|")
	for _, item := range report.Items {
		sign := "+"
		if item.Type == ItemDiscount {
			sign = "-"
		}
		bw.line("| ", escapeCell(item.Label), " | ", sign, strconv.Itoa(item.Cost), " |")
	}
	bw.line("| **Total** | **", strconv.Itoa(result.Cost), "** |")
	bw.println("")
	bw.line("Complexity: **", result.Estimate.String(), "**")

	if b := report.Balance; b != nil {
		bw.println("")
		bw.line("Balance status: `", b.Status.String(), "`, deficit ", strconv.Itoa(b.Deficit), " tokens")
	}
	return bw.err
}

var cellEscaper = strings.NewReplacer("|", `\|`, "\r\n", " ", "\n", " ")

// escapeCell keeps a label inside one markdown table cell
func escapeCell(s string) string {
	return cellEscaper.Replace(s)
}
