package main

import (
	"context"
	"fmt"

	"github.com/spf13/viper"

	"github.com/mkessler-dev/belegwerk/internal/classify"
	"github.com/mkessler-dev/belegwerk/internal/config"
	"github.com/mkessler-dev/belegwerk/internal/merchant"
	"github.com/mkessler-dev/belegwerk/internal/rules"
	"github.com/mkessler-dev/belegwerk/internal/service"
	"github.com/mkessler-dev/belegwerk/internal/storage"
)

// Interface conformance for the wiring below.
var (
	_ service.Storage   = (*storage.SQLiteStorage)(nil)
	_ service.Suggester = (*classify.Classifier)(nil)
)

// initStorage opens the expense database and runs migrations.
func initStorage(ctx context.Context) (*storage.SQLiteStorage, error) {
	dbPath := viper.GetString("database.path")
	if dbPath == "" {
		dbPath = config.DefaultDatabasePath
	}
	dbPath = config.ExpandPath(dbPath)

	store, err := storage.NewSQLiteStorage(dbPath)
	if err != nil {
		return nil, err
	}

	if err := store.Migrate(ctx); err != nil {
		_ = store.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	return store, nil
}

// initClassifier wires the suggestion engine onto a store.
func initClassifier(store *storage.SQLiteStorage) *classify.Classifier {
	return classify.New(store, merchant.NewNormalizer(), rules.NewTable())
}
