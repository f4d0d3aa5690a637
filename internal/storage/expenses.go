package storage

import (
	"context"
	"fmt"

	"github.com/mkessler-dev/belegwerk/internal/model"
)

// SaveExpenses saves multiple expenses in one transaction.
func (s *SQLiteStorage) SaveExpenses(ctx context.Context, expenses []model.Expense) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := validateExpenses(expenses); err != nil {
		return err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO expenses (date, vendor, description, category, amount, deleted, duplicate)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return fmt.Errorf("failed to prepare insert: %w", err)
	}
	defer func() { _ = stmt.Close() }()

	for _, expense := range expenses {
		if _, err := stmt.ExecContext(ctx,
			expense.Date,
			expense.Vendor,
			expense.Description,
			expense.Category,
			expense.Amount,
			expense.Deleted,
			expense.Duplicate,
		); err != nil {
			return fmt.Errorf("failed to insert expense: %w", err)
		}
	}

	return tx.Commit()
}

// TrainingRecords returns the training projection of all valid expenses:
// rows with a non-empty category that are neither soft-deleted nor
// flagged as duplicates.
func (s *SQLiteStorage) TrainingRecords(ctx context.Context) ([]model.TrainingRecord, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT vendor, description, category, amount
		FROM expenses
		WHERE category != '' AND deleted = 0 AND duplicate = 0
		ORDER BY date, id
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query training records: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var records []model.TrainingRecord
	for rows.Next() {
		var record model.TrainingRecord
		if err := rows.Scan(&record.Vendor, &record.Description, &record.Category, &record.Amount); err != nil {
			return nil, fmt.Errorf("failed to scan training record: %w", err)
		}
		records = append(records, record)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate training records: %w", err)
	}

	return records, nil
}

// CountExpenses returns the total number of stored expenses, including
// soft-deleted and duplicate rows.
func (s *SQLiteStorage) CountExpenses(ctx context.Context) (int, error) {
	if err := validateContext(ctx); err != nil {
		return 0, err
	}

	var count int
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM expenses`).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count expenses: %w", err)
	}
	return count, nil
}
