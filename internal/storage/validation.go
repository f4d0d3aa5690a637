package storage

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/mkessler-dev/belegwerk/internal/model"
)

// Validation errors.
var (
	ErrNilContext    = errors.New("context cannot be nil")
	ErrEmptyString   = errors.New("string parameter cannot be empty")
	ErrNilParameter  = errors.New("parameter cannot be nil")
	ErrEmptySlice    = errors.New("slice cannot be empty")
	ErrInvalidAmount = errors.New("amount must be a finite number")
)

// validateContext ensures the context is not nil.
func validateContext(ctx context.Context) error {
	if ctx == nil {
		return ErrNilContext
	}
	return nil
}

// validateString ensures a string parameter is not empty.
func validateString(s string, paramName string) error {
	if strings.TrimSpace(s) == "" {
		return fmt.Errorf("%w: %s", ErrEmptyString, paramName)
	}
	return nil
}

// validateExpenses validates a slice of expenses.
func validateExpenses(expenses []model.Expense) error {
	if expenses == nil {
		return fmt.Errorf("%w: expenses", ErrNilParameter)
	}
	if len(expenses) == 0 {
		return fmt.Errorf("%w: expenses", ErrEmptySlice)
	}

	for i, expense := range expenses {
		if err := validateExpense(&expense); err != nil {
			return fmt.Errorf("expense at index %d: %w", i, err)
		}
	}
	return nil
}

// validateExpense validates a single expense.
func validateExpense(expense *model.Expense) error {
	if expense == nil {
		return fmt.Errorf("%w: expense", ErrNilParameter)
	}
	if math.IsNaN(expense.Amount) || math.IsInf(expense.Amount, 0) {
		return fmt.Errorf("%w: %f", ErrInvalidAmount, expense.Amount)
	}
	return nil
}
