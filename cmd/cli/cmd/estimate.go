// Package cmd - estimate command
package cmd

import (
	"encoding/json"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"sitegen-cost/core/balance"
	"sitegen-cost/core/output"
	"sitegen-cost/core/packs"
	"sitegen-cost/core/types"
	"sitegen-cost/internal/config"
	apperrors "sitegen-cost/internal/errors"
	"sitegen-cost/internal/logging"
)

var (
	outputFormat   string
	setFlags       []string
	selectionsFile string
	refine         bool
	catalogFile    string
	balanceFlag    int
)

// estimateCmd represents the estimate command
var estimateCmd = &cobra.Command{
	Use:   "estimate [prompt...]",
	Short: "Estimate the token price of a generation request",
	Long: `Price a website generation or refinement request.

The prompt is every positional argument joined by spaces. Design options
are given with --set category=value; multi-select and counted categories
take comma-separated values.

Examples:
  sitecost estimate "a portfolio for a photographer"
  sitecost estimate "shop for handmade soap" --set template=E-commerce --set integrations=Payments,Chat\ Widget
  sitecost estimate --selections choices.json --format json "bakery site"
  sitecost estimate --refine "make the header sticky"
  sitecost estimate "bakery site" --balance 12`,
	RunE: runEstimate,
}

func init() {
	estimateCmd.Flags().StringVarP(&outputFormat, "format", "f", "", "output format (cli, json, markdown)")
	estimateCmd.Flags().StringArrayVarP(&setFlags, "set", "s", nil, "select design options as category=value[,value...]")
	estimateCmd.Flags().StringVar(&selectionsFile, "selections", "", "JSON file with a selections object")
	estimateCmd.Flags().BoolVarP(&refine, "refine", "r", false, "price a refinement instead of a full generation")
	estimateCmd.Flags().StringVar(&catalogFile, "catalog", "", "HCL file overriding catalog categories")
	estimateCmd.Flags().IntVarP(&balanceFlag, "balance", "b", -1, "check this token balance against the price")
}

func runEstimate(cmd *cobra.Command, args []string) error {
	cfg := config.Get()

	est, err := configEstimator()
	if err != nil {
		return err
	}

	selections, err := loadSelections(selectionsFile)
	if err != nil {
		return err
	}
	if err := applySetFlags(selections, setFlags); err != nil {
		return err
	}

	prompt := strings.Join(args, " ")
	result := est.Estimate(prompt, selections, refine)
	logging.Debug("estimate computed",
		zap.Int("cost", result.Cost),
		zap.Int("subtotal", result.Subtotal),
		zap.Int("words", result.WordCount),
		zap.Bool("refinement", result.Refinement),
	)

	report := output.NewReport(prompt, result, est.Catalog().Label)
	if balanceFlag >= 0 {
		check := balance.Check(balanceFlag, result.Cost)
		report.Balance = &check

		packList, err := cfg.PackList()
		if err != nil {
			return err
		}
		if suggestion, ok := packs.Suggest(packList, check.Deficit); ok {
			report.Suggestion = &suggestion
		}
	}

	return render(cmd, report)
}

func render(cmd *cobra.Command, report *output.Report) error {
	format := outputFormat
	if format == "" {
		format = config.Get().Output.DefaultFormat
	}

	formatter, ok := output.DefaultRegistry().Get(output.Format(format))
	if !ok {
		return apperrors.Newf(apperrors.TypeInput, "unknown output format %q", format)
	}
	return formatter.Render(cmd.OutOrStdout(), report)
}

// loadSelections reads a JSON selections object from path. An empty path
// yields an empty set.
func loadSelections(path string) (types.SelectionSet, error) {
	selections := types.NewSelectionSet()
	if path == "" {
		return selections, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.TypeInput, "failed to read selections file", err).
			WithContext("file", path)
	}
	if err := json.Unmarshal(data, &selections); err != nil {
		return nil, apperrors.Wrap(apperrors.TypeParsing, "invalid selections file", err).
			WithContext("file", path)
	}
	return selections, nil
}

// applySetFlags applies category=value[,value...] assignments in order.
// Later assignments to the same category replace earlier ones.
func applySetFlags(selections types.SelectionSet, flags []string) error {
	for _, flag := range flags {
		key, value, ok := strings.Cut(flag, "=")
		key = strings.TrimSpace(key)
		if !ok || key == "" {
			return apperrors.Newf(apperrors.TypeInput, "invalid --set %q, want category=value", flag)
		}

		var values []string
		for _, v := range strings.Split(value, ",") {
			if v = strings.TrimSpace(v); v != "" {
				values = append(values, v)
			}
		}
		selections.Set(key, values...)
	}
	return nil
}
