// Package service defines the interfaces for all application services.
package service

import (
	"context"

	"matchday/internal/model"
)

// DuplicateKey is one natural-key group appearing more than once in a
// staging table.
type DuplicateKey struct {
	Key         string
	Occurrences int
}

// Storage defines the contract for our persistence layer.
type Storage interface {
	// Staging operations. Staging tables are append-only: the pipeline
	// appends rows at ingestion and only ever reads them afterwards.
	AppendRawCustomers(ctx context.Context, rows []model.RawCustomer) error
	AppendRawTransactions(ctx context.Context, rows []model.RawTransaction) error
	AppendRawSentiment(ctx context.Context, rows []model.RawSentiment) error
	GetRawCustomers(ctx context.Context) ([]model.RawCustomer, error)
	GetRawTransactions(ctx context.Context) ([]model.RawTransaction, error)
	GetRawSentiment(ctx context.Context) ([]model.RawSentiment, error)

	// Warehouse operations. Each Save call runs in its own database
	// transaction; a constraint failure rolls back that step only.
	CreateWarehouseTables(ctx context.Context) error
	SaveCustomers(ctx context.Context, customers []model.Customer) error
	SaveTransactions(ctx context.Context, transactions []model.Transaction) error
	SaveSentimentPosts(ctx context.Context, posts []model.SentimentPost) error
	SaveCustomerProfiles(ctx context.Context, profiles []model.CustomerProfile) error
	GetCustomers(ctx context.Context) ([]model.Customer, error)
	GetTransactions(ctx context.Context) ([]model.Transaction, error)

	// Diagnostics, all read-only. Table and column names are checked
	// against a fixed allow-list, never against input-file headers.
	RowCount(ctx context.Context, table string) (int, error)
	NullCount(ctx context.Context, table, column string) (int, error)
	DistinctCount(ctx context.Context, table, column string) (int, error)
	DuplicateKeys(ctx context.Context, table, keyColumn string) ([]DuplicateKey, error)
	RawOrphanTransactionCount(ctx context.Context) (int, error)
	CleanOrphanTransactionCount(ctx context.Context) (int, error)
	Columns(table string) ([]string, error)

	Migrate(ctx context.Context) error
	Close() error
}
