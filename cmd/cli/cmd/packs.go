// Package cmd - packs command
package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"sitegen-cost/core/packs"
	"sitegen-cost/internal/config"
)

// packsCmd lists the token top-up packs
var packsCmd = &cobra.Command{
	Use:   "packs",
	Short: "List token top-up packs",
	RunE: func(cmd *cobra.Command, args []string) error {
		list, err := config.Get().PackList()
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "%-10s %-12s %8s %10s %12s\n", "ID", "NAME", "TOKENS", "PRICE", "PER TOKEN")
		for _, p := range packs.Sorted(list) {
			fmt.Fprintf(out, "%-10s %-12s %8d %10s %12s\n",
				p.ID, p.Name, p.Tokens, p.Price.StringFixed(2)+" "+p.Currency, p.PricePerToken().String())
		}
		return nil
	},
}
