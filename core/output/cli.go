package output

import (
	"fmt"
	"io"
	"strings"
)

// CLIFormatter renders a boxed terminal summary
type CLIFormatter struct{}

// Format returns the format type
func (CLIFormatter) Format() Format { return FormatCLI }

// Render writes the summary box
func (CLIFormatter) Render(w io.Writer, report *Report) error {
	bw := &errWriter{w: w}
	result := report.Result

	bw.println("┌─────────────────────────────────────────────────────────────────────────┐")
	bw.println("│                         TOKEN COST ESTIMATE                             │")
	bw.println("├─────────────────────────────────────────────────────────────────────────┤")

	for _, item := range report.Items {
		amount := fmt.Sprintf("+%d", item.Cost)
		if item.Type == ItemDiscount {
			amount = fmt.Sprintf("-%d", item.Cost)
		}
		bw.printf("│ %-50s %20s │\n", truncate(item.Label, 50), amount)
	}

	bw.println("├─────────────────────────────────────────────────────────────────────────┤")
	if result.Clamped() {
		bw.printf("│ %-50s %20d │\n", "Subtotal (before limits)", result.Subtotal)
	}
	bw.printf("│ %-50s %20s │\n", "TOTAL", fmt.Sprintf("%d tokens", result.Cost))
	bw.printf("│ %-50s %20s │\n", "Complexity", result.Estimate)
	bw.println("└─────────────────────────────────────────────────────────────────────────┘")

	mode := "generation"
	if result.Refinement {
		mode = "refinement"
	}
	bw.printf("\nMode: %s, prompt words: %d\n", mode, result.WordCount)

	if b := report.Balance; b != nil {
		if b.Sufficient {
			bw.printf("Balance: sufficient (%s)\n", b.Status)
		} else {
			bw.printf("Balance: %s, %.0f%% covered, short by %d tokens\n", b.Status, b.Percentage, b.Deficit)
		}
	}
	if s := report.Suggestion; s != nil {
		bw.printf("Suggested top-up: %d x %s (%d tokens) for %s %s\n",
			s.Quantity, s.Pack.Name, s.Tokens, s.Total.StringFixed(2), s.Pack.Currency)
	}

	return bw.err
}

// truncate shortens s to at most maxLen runes
func truncate(s string, maxLen int) string {
	runes := []rune(s)
	if len(runes) <= maxLen {
		return s
	}
	return string(runes[:maxLen-3]) + "..."
}

// errWriter keeps the first write error so rendering code stays linear
type errWriter struct {
	w   io.Writer
	err error
}

func (e *errWriter) printf(format string, args ...interface{}) {
	if e.err != nil {
		return
	}
	_, e.err = fmt.Fprintf(e.w, format, args...)
}

func (e *errWriter) println(s string) {
	e.printf("%s\n", s)
}

func (e *errWriter) line(parts ...string) {
	e.println(strings.Join(parts, ""))
}
