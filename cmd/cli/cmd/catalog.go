// Package cmd - catalog command
package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"sitegen-cost/core/catalog"
	apperrors "sitegen-cost/internal/errors"
)

// catalogCmd lists design-option categories and their costs
var catalogCmd = &cobra.Command{
	Use:   "catalog [category]",
	Short: "List design options and their token costs",
	Long: `Without arguments, list every category in the catalog. With a
category name, list its choices and what each costs.

Examples:
  sitecost catalog
  sitecost catalog animation
  sitecost catalog --catalog overrides.hcl template`,
	Args: cobra.MaximumNArgs(1),
	RunE: runCatalog,
}

func init() {
	catalogCmd.Flags().StringVar(&catalogFile, "catalog", "", "HCL file overriding catalog categories")
}

func runCatalog(cmd *cobra.Command, args []string) error {
	est, err := configEstimator()
	if err != nil {
		return err
	}
	c := est.Catalog()
	out := cmd.OutOrStdout()

	if len(args) == 0 {
		fmt.Fprintf(out, "%-18s %-22s %-8s %-12s %s\n", "NAME", "LABEL", "KIND", "CONDITIONAL", "CHOICES")
		for _, category := range c.Categories() {
			fmt.Fprintf(out, "%-18s %-22s %-8s %-12t %d\n",
				category.Name, truncate(category.Label, 22), category.Kind, category.Conditional, len(category.Choices))
		}
		return nil
	}

	category, ok := c.Get(args[0])
	if !ok {
		return apperrors.NotFound("category", args[0])
	}
	printCategory(out, category)
	return nil
}

func printCategory(out io.Writer, category *catalog.Category) {
	fmt.Fprintf(out, "%s (%s, %s)\n", category.Label, category.Name, category.Kind)
	if category.Conditional {
		fmt.Fprintln(out, "Charged only when selected")
	} else if category.Unselected != 0 {
		fmt.Fprintf(out, "Unselected: %+d\n", category.Unselected)
	}
	if category.Kind == catalog.KindCounted {
		fmt.Fprintln(out, "Priced by the number of selected values")
	}
	fmt.Fprintln(out)
	for _, choice := range category.Choices {
		fmt.Fprintf(out, "  %-28s %+d\n", choice.Value, choice.Cost)
	}
}

// truncate shortens s to at most maxLen runes
func truncate(s string, maxLen int) string {
	runes := []rune(s)
	if len(runes) <= maxLen {
		return s
	}
	return string(runes[:maxLen-3]) + "..."
}
