package main

import (
	"fmt"
	"os"
	"time"

	"github.com/gocarina/gocsv"
	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"

	"github.com/mkessler-dev/belegwerk/internal/model"
)

// expenseRow is one line of an import CSV.
type expenseRow struct {
	Date        string  `csv:"date"`
	Vendor      string  `csv:"vendor"`
	Description string  `csv:"description"`
	Category    string  `csv:"category"`
	Amount      float64 `csv:"amount"`
}

// importBatchSize is how many rows go into one insert transaction.
const importBatchSize = 100

func importCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "import <file.csv>",
		Short: "Import historical expenses from a CSV file",
		Long: `Import historical expenses from a CSV export. Expected columns:
date, vendor, description, category, amount. Dates may be ISO (2025-03-14)
or German (14.03.2025) format.

Example:
  belegwerk import ~/Downloads/ausgaben-2025.csv`,
		Args: cobra.ExactArgs(1),
		RunE: runImport,
	}

	return cmd
}

func runImport(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	file, err := os.Open(args[0])
	if err != nil {
		return fmt.Errorf("failed to open import file: %w", err)
	}
	defer func() { _ = file.Close() }()

	var rows []expenseRow
	if err := gocsv.UnmarshalFile(file, &rows); err != nil {
		return fmt.Errorf("failed to parse CSV: %w", err)
	}
	if len(rows) == 0 {
		return fmt.Errorf("no rows found in %s", args[0])
	}

	expenses := make([]model.Expense, 0, len(rows))
	for i, row := range rows {
		date, err := parseImportDate(row.Date)
		if err != nil {
			return fmt.Errorf("row %d: %w", i+1, err)
		}

		expenses = append(expenses, model.Expense{
			Date:        date,
			Vendor:      row.Vendor,
			Description: row.Description,
			Category:    row.Category,
			Amount:      row.Amount,
		})
	}

	store, err := initStorage(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = store.Close() }()

	bar := progressbar.NewOptions(len(expenses),
		progressbar.OptionSetWriter(cmd.ErrOrStderr()),
		progressbar.OptionShowCount(),
		progressbar.OptionSetWidth(40),
		progressbar.OptionSetDescription("Importing expenses..."),
	)

	for start := 0; start < len(expenses); start += importBatchSize {
		end := start + importBatchSize
		if end > len(expenses) {
			end = len(expenses)
		}

		if err := store.SaveExpenses(ctx, expenses[start:end]); err != nil {
			return fmt.Errorf("failed to save expenses: %w", err)
		}
		_ = bar.Add(end - start)
	}
	_ = bar.Finish()

	total, err := store.CountExpenses(ctx)
	if err != nil {
		return fmt.Errorf("failed to count expenses: %w", err)
	}

	cmd.Printf("\nImported %d expenses (%d total in database)\n", len(expenses), total)
	return nil
}

// parseImportDate accepts ISO and German date formats.
func parseImportDate(value string) (time.Time, error) {
	for _, layout := range []string{"2006-01-02", "02.01.2006", time.RFC3339} {
		if date, err := time.Parse(layout, value); err == nil {
			return date, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized date %q", value)
}
