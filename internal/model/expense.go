// Package model defines the core domain types shared across the application.
package model

import "time"

// Expense represents a single booked expense as stored in the database.
type Expense struct {
	Date        time.Time
	Vendor      string
	Description string
	Category    string
	ID          int64
	Amount      float64
	Deleted     bool
	Duplicate   bool
}

// Trainable reports whether this expense may be used as training input:
// it must carry a category and must be neither soft-deleted nor flagged
// as a duplicate.
func (e *Expense) Trainable() bool {
	return e.Category != "" && !e.Deleted && !e.Duplicate
}

// TrainingRecord returns the training-relevant projection of the expense.
func (e *Expense) TrainingRecord() TrainingRecord {
	return TrainingRecord{
		Vendor:      e.Vendor,
		Description: e.Description,
		Category:    e.Category,
		Amount:      e.Amount,
	}
}
