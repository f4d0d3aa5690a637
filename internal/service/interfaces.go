// Package service defines the contracts between the application's layers.
package service

import (
	"context"

	"github.com/mkessler-dev/belegwerk/internal/model"
)

// Storage defines the persistence contract consumed by the CLI and the
// classifier.
type Storage interface {
	// TrainingRecords returns the training projection of all valid
	// expenses: categorized, not soft-deleted, not duplicates.
	TrainingRecords(ctx context.Context) ([]model.TrainingRecord, error)

	// SaveExpenses persists a batch of expenses.
	SaveExpenses(ctx context.Context, expenses []model.Expense) error

	// CountExpenses returns the total number of stored expenses.
	CountExpenses(ctx context.Context) (int, error)

	// Migrate brings the schema up to date.
	Migrate(ctx context.Context) error

	Close() error
}

// Suggester is the category suggestion engine consumed by outer surfaces
// such as the CLI.
type Suggester interface {
	// Train rebuilds the model from the historical data source.
	Train(ctx context.Context) error

	// Suggest returns ranked category suggestions for a candidate expense.
	Suggest(ctx context.Context, vendor, description string, amount float64) (model.Suggestions, error)

	// Stats summarizes the current model, training lazily if needed.
	Stats(ctx context.Context) (*model.StatsReport, error)

	// Reset discards the current model.
	Reset()
}
