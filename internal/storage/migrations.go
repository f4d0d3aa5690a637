package storage

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
)

// ExpectedSchemaVersion is the latest schema version that the application
// expects. If the database cannot be migrated to this version, it's a
// fatal error.
const ExpectedSchemaVersion = 2

// Migration represents a database schema migration.
type Migration struct {
	Up          func(*sql.Tx) error
	Description string
	Version     int
}

var migrations = []Migration{
	{
		Version:     1,
		Description: "Initial expenses schema",
		Up: func(tx *sql.Tx) error {
			queries := []string{
				`CREATE TABLE IF NOT EXISTS expenses (
					id INTEGER PRIMARY KEY AUTOINCREMENT,
					date DATETIME NOT NULL,
					vendor TEXT NOT NULL DEFAULT '',
					description TEXT NOT NULL DEFAULT '',
					category TEXT NOT NULL DEFAULT '',
					amount REAL NOT NULL,
					deleted INTEGER NOT NULL DEFAULT 0,
					created_at DATETIME DEFAULT CURRENT_TIMESTAMP
				)`,
				`CREATE INDEX idx_expenses_category ON expenses(category)`,
				`CREATE INDEX idx_expenses_vendor ON expenses(vendor)`,
				`CREATE INDEX idx_expenses_date ON expenses(date)`,
			}

			for _, query := range queries {
				if _, err := tx.Exec(query); err != nil {
					return fmt.Errorf("failed to execute query: %w", err)
				}
			}
			return nil
		},
	},
	{
		Version:     2,
		Description: "Add duplicate flag to expenses",
		Up: func(tx *sql.Tx) error {
			if _, err := tx.Exec(`ALTER TABLE expenses ADD COLUMN duplicate INTEGER NOT NULL DEFAULT 0`); err != nil {
				return fmt.Errorf("failed to add duplicate column: %w", err)
			}
			return nil
		},
	},
}

// runMigrations applies all pending migrations inside transactions.
func runMigrations(ctx context.Context, db *sql.DB) error {
	var currentVersion int
	if err := db.QueryRowContext(ctx, "PRAGMA user_version").Scan(&currentVersion); err != nil {
		return fmt.Errorf("failed to get schema version: %w", err)
	}

	for _, migration := range migrations {
		if migration.Version <= currentVersion {
			continue
		}

		slog.Info("applying migration",
			"version", migration.Version,
			"description", migration.Description)

		tx, err := db.BeginTx(ctx, nil)
		if err != nil {
			return fmt.Errorf("failed to begin migration transaction: %w", err)
		}

		if err := migration.Up(tx); err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("migration %d failed: %w", migration.Version, err)
		}

		if _, err := tx.Exec(fmt.Sprintf("PRAGMA user_version = %d", migration.Version)); err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("failed to set schema version %d: %w", migration.Version, err)
		}

		if err := tx.Commit(); err != nil {
			return fmt.Errorf("failed to commit migration %d: %w", migration.Version, err)
		}
	}

	// Verify we're at the expected schema version
	var finalVersion int
	if err := db.QueryRowContext(ctx, "PRAGMA user_version").Scan(&finalVersion); err != nil {
		return fmt.Errorf("failed to verify final schema version: %w", err)
	}

	if finalVersion != ExpectedSchemaVersion {
		return fmt.Errorf("database schema version mismatch: expected %d, got %d", ExpectedSchemaVersion, finalVersion)
	}

	return nil
}
