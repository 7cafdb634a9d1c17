package main

import (
	"context"

	"github.com/spf13/viper"

	"matchday/internal/common"
	"matchday/internal/config"
	"matchday/internal/ingest"
	"matchday/internal/storage"
)

// openStorage opens the configured database and applies any pending
// migrations. Callers own the returned storage and must Close it.
func openStorage(ctx context.Context) (*storage.SQLiteStorage, error) {
	store, err := storage.NewSQLiteStorage(config.DatabasePath())
	if err != nil {
		return nil, common.NewUserError("failed to open database", err)
	}

	if err := store.Migrate(ctx); err != nil {
		_ = store.Close()
		return nil, common.NewUserError("failed to migrate database", err)
	}

	return store, nil
}

func sourcesFromViper() ingest.Sources {
	return ingest.Sources{
		Customers:    config.ExpandPath(viper.GetString("data.customers")),
		Transactions: config.ExpandPath(viper.GetString("data.transactions")),
		Sentiment:    config.ExpandPath(viper.GetString("data.sentiment")),
	}
}
