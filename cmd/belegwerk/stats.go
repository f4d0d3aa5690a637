package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

func statsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Show what the categorization engine has learned",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			store, err := initStorage(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			report, err := initClassifier(store).Stats(ctx)
			if err != nil {
				return fmt.Errorf("failed to get stats: %w", err)
			}

			cmd.Printf("Training records:  %d\n", report.TotalRecords)
			cmd.Printf("Categories:        %d\n", report.TotalCategories)
			cmd.Printf("Known vendors:     %d\n", report.TotalVendors)
			if report.TrainedAt != nil {
				cmd.Printf("Trained at:        %s\n", report.TrainedAt.Format(time.RFC3339))
			}

			if len(report.TopVendors) > 0 {
				cmd.Println("\nTop vendors:")
				for _, v := range report.TopVendors {
					cmd.Printf("  %-30s %4d bookings  (%s)\n", v.Vendor, v.Transactions, v.TopCategory)
				}
			}

			if len(report.CategoryCoverage) > 0 {
				cmd.Println("\nCategory coverage:")
				for _, c := range report.CategoryCoverage {
					cmd.Printf("  %-30s %4d records\n", c.Category, c.Records)
				}
			}

			return nil
		},
	}
}

func retrainCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "retrain",
		Short: "Rebuild the categorization model from the expense history",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			store, err := initStorage(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			classifier := initClassifier(store)
			if err := classifier.Train(ctx); err != nil {
				return fmt.Errorf("failed to train: %w", err)
			}

			report, err := classifier.Stats(ctx)
			if err != nil {
				return fmt.Errorf("failed to get stats: %w", err)
			}

			cmd.Printf("Model rebuilt from %d records (%d categories, %d vendors)\n",
				report.TotalRecords, report.TotalCategories, report.TotalVendors)
			return nil
		},
	}
}
