package storage

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
)

// ExpectedSchemaVersion is the latest schema version that the application
// expects for the staging store.
const ExpectedSchemaVersion = 1

// Migration represents a database schema migration.
type Migration struct {
	Up          func(*sql.Tx) error
	Description string
	Version     int
}

var migrations = []Migration{
	{
		Version:     1,
		Description: "Staging tables for the three raw sources",
		Up: func(tx *sql.Tx) error {
			queries := []string{
				`CREATE TABLE IF NOT EXISTS raw_customers (
					_row_id INTEGER PRIMARY KEY,
					customer_id TEXT,
					name TEXT,
					email TEXT,
					age TEXT,
					city TEXT,
					country TEXT,
					signup_date TEXT,
					favorite_team TEXT,
					membership_tier TEXT,
					gender TEXT,
					_load_timestamp DATETIME NOT NULL
				)`,
				`CREATE INDEX IF NOT EXISTS idx_raw_customers_key ON raw_customers(customer_id)`,

				`CREATE TABLE IF NOT EXISTS raw_transactions (
					_row_id INTEGER PRIMARY KEY,
					transaction_id TEXT,
					customer_id TEXT,
					timestamp TEXT,
					amount TEXT,
					currency TEXT,
					category TEXT,
					merchant TEXT,
					description TEXT,
					_load_timestamp DATETIME NOT NULL
				)`,
				`CREATE INDEX IF NOT EXISTS idx_raw_transactions_key ON raw_transactions(transaction_id)`,
				`CREATE INDEX IF NOT EXISTS idx_raw_transactions_customer ON raw_transactions(customer_id)`,

				`CREATE TABLE IF NOT EXISTS raw_sentiment (
					_row_id INTEGER PRIMARY KEY,
					id TEXT,
					user TEXT,
					source TEXT,
					text TEXT,
					published_at TEXT,
					topic TEXT,
					tags TEXT,
					sentiment_score TEXT,
					engagement TEXT,
					_load_timestamp DATETIME NOT NULL
				)`,
				`CREATE INDEX IF NOT EXISTS idx_raw_sentiment_key ON raw_sentiment(id)`,
			}

			for _, query := range queries {
				if _, err := tx.Exec(query); err != nil {
					return fmt.Errorf("failed to execute query: %w", err)
				}
			}
			return nil
		},
	},
}

// Migrate brings the staging schema up to the expected version.
func (s *SQLiteStorage) Migrate(ctx context.Context) error {
	if err := validateContext(ctx); err != nil {
		return err
	}

	var current int
	if err := s.db.QueryRowContext(ctx, "PRAGMA user_version").Scan(&current); err != nil {
		return fmt.Errorf("failed to get schema version: %w", err)
	}

	for _, m := range migrations {
		if m.Version <= current {
			continue
		}

		tx, err := s.db.BeginTx(ctx, nil)
		if err != nil {
			return fmt.Errorf("failed to begin migration transaction: %w", err)
		}

		if err := m.Up(tx); err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("migration %d (%s) failed: %w", m.Version, m.Description, err)
		}

		// PRAGMA cannot be parameterized; the version is an int under our control.
		if _, err := tx.Exec(fmt.Sprintf("PRAGMA user_version = %d", m.Version)); err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("failed to set schema version: %w", err)
		}

		if err := tx.Commit(); err != nil {
			return fmt.Errorf("failed to commit migration %d: %w", m.Version, err)
		}

		slog.Info("Applied migration", "version", m.Version, "description", m.Description)
	}

	return nil
}

// Warehouse DDL. The transform engine recreates these with IF NOT EXISTS
// semantics on every run; inserts are purely additive, so re-running a
// transform against populated targets is not idempotent.
var warehouseTables = []string{
	`CREATE TABLE IF NOT EXISTS dim_customers (
		customer_id TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		email TEXT,
		age INTEGER CHECK (age >= 0 AND age <= 150),
		city TEXT,
		country TEXT,
		favorite_team TEXT,
		membership_tier TEXT,
		signup_date DATE,
		_loaded_at DATETIME DEFAULT CURRENT_TIMESTAMP
	)`,
	`CREATE TABLE IF NOT EXISTS fact_transactions (
		transaction_id TEXT PRIMARY KEY,
		customer_id TEXT NOT NULL,
		transaction_date DATETIME NOT NULL,
		amount_eur REAL NOT NULL,
		category TEXT NOT NULL,
		merchant TEXT,
		_source_row_id INTEGER,
		_loaded_at DATETIME DEFAULT CURRENT_TIMESTAMP,
		FOREIGN KEY (customer_id) REFERENCES dim_customers(customer_id)
	)`,
	`CREATE TABLE IF NOT EXISTS fact_sentiment (
		post_id TEXT PRIMARY KEY,
		user_name TEXT,
		topic TEXT,
		sentiment_score REAL,
		engagement INTEGER,
		published_at DATETIME,
		_source_row_id INTEGER,
		_loaded_at DATETIME DEFAULT CURRENT_TIMESTAMP
	)`,
	`CREATE TABLE IF NOT EXISTS customer_profile (
		customer_id TEXT PRIMARY KEY,
		txn_count INTEGER,
		total_spend REAL,
		avg_txn REAL,
		last_txn_date DATE,
		match_ticket_count INTEGER,
		sports_affinity_ratio REAL,
		avg_days_between_txns REAL,
		_loaded_at DATETIME DEFAULT CURRENT_TIMESTAMP
	)`,
}

// CreateWarehouseTables creates the dimension, fact, and profile tables.
func (s *SQLiteStorage) CreateWarehouseTables(ctx context.Context) error {
	if err := validateContext(ctx); err != nil {
		return err
	}

	for _, ddl := range warehouseTables {
		if _, err := s.db.ExecContext(ctx, ddl); err != nil {
			return fmt.Errorf("failed to create warehouse table: %w", err)
		}
	}
	return nil
}
