// Package cmd - balance command
package cmd

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"sitegen-cost/core/balance"
	"sitegen-cost/core/packs"
	"sitegen-cost/internal/config"
	apperrors "sitegen-cost/internal/errors"
)

var (
	balanceJSON    bool
	balanceRequire bool
)

// balanceCmd checks a token balance against a price
var balanceCmd = &cobra.Command{
	Use:   "balance AVAILABLE REQUIRED",
	Short: "Check whether a token balance covers a price",
	Long: `Compare an available token balance with a required price.

With --require the command fails when the balance is insufficient, for
use as a pre-submit guard in scripts.

Examples:
  sitecost balance 5 20
  sitecost balance --json 40 50
  sitecost balance --require 20 12`,
	Args: cobra.ExactArgs(2),
	RunE: runBalance,
}

func init() {
	balanceCmd.Flags().BoolVar(&balanceJSON, "json", false, "print the check as JSON")
	balanceCmd.Flags().BoolVar(&balanceRequire, "require", false, "exit with an error when the balance is insufficient")
}

func runBalance(cmd *cobra.Command, args []string) error {
	available, err := parseTokens("AVAILABLE", args[0])
	if err != nil {
		return err
	}
	required, err := parseTokens("REQUIRED", args[1])
	if err != nil {
		return err
	}

	check := balance.Check(available, required)

	packList, err := config.Get().PackList()
	if err != nil {
		return err
	}
	suggestion, hasSuggestion := packs.Suggest(packList, check.Deficit)

	out := cmd.OutOrStdout()
	if balanceJSON {
		payload := map[string]interface{}{"check": check}
		if hasSuggestion {
			payload["suggestion"] = suggestion
		}
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		if err := enc.Encode(payload); err != nil {
			return err
		}
	} else {
		fmt.Fprintf(out, "Status:     %s\n", check.Status)
		fmt.Fprintf(out, "Coverage:   %.2f%%\n", check.Percentage)
		if !check.Sufficient {
			fmt.Fprintf(out, "Deficit:    %d tokens\n", check.Deficit)
		}
		if hasSuggestion {
			fmt.Fprintf(out, "Suggested:  %d x %s (%d tokens, %s %s)\n",
				suggestion.Quantity, suggestion.Pack.Name, suggestion.Tokens,
				suggestion.Total.StringFixed(2), suggestion.Pack.Currency)
		}
	}

	if balanceRequire {
		return balance.Require(available, required)
	}
	return nil
}

func parseTokens(name, s string) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil || n < 0 {
		return 0, apperrors.Newf(apperrors.TypeInput, "%s must be a non-negative integer, got %q", name, s)
	}
	return n, nil
}
