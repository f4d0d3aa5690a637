package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func suggestCmd() *cobra.Command {
	var (
		vendorName  string
		description string
		amount      float64
	)

	cmd := &cobra.Command{
		Use:   "suggest",
		Short: "Suggest a category for an expense",
		Long: `Suggest an accounting category for a new expense based on your
booking history. Vendor, description, and amount all contribute; the more
you provide, the better the suggestions.

Examples:
  belegwerk suggest --vendor "Telekom Deutschland" --amount 49.90
  belegwerk suggest --vendor "Hetzner" --description "Cloud Server" --amount 38`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			store, err := initStorage(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			suggestions, err := initClassifier(store).Suggest(ctx, vendorName, description, amount)
			if err != nil {
				return fmt.Errorf("failed to get suggestions: %w", err)
			}

			if len(suggestions) == 0 {
				cmd.Println("No suggestions. Categorize this expense manually to teach the engine.")
				return nil
			}

			for _, s := range suggestions {
				cmd.Printf("%-20s %5.1f%%  %s\n", s.Category, s.Confidence*100, s.Reason)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&vendorName, "vendor", "", "vendor name")
	cmd.Flags().StringVar(&description, "description", "", "free-text description")
	cmd.Flags().Float64Var(&amount, "amount", 0, "expense amount in EUR")

	return cmd
}
