package storage

import (
	"context"
	"fmt"

	"matchday/internal/service"
)

// Diagnostic queries are pure reads over allow-listed identifiers. Table
// and column names are validated before interpolation; placeholder binding
// is not possible for identifiers in SQLite.

// RowCount returns the number of rows in an allow-listed table.
func (s *SQLiteStorage) RowCount(ctx context.Context, table string) (int, error) {
	if err := validateContext(ctx); err != nil {
		return 0, err
	}
	if err := validateTable(table); err != nil {
		return 0, err
	}

	var n int
	query := fmt.Sprintf(`SELECT COUNT(*) FROM "%s"`, table)
	if err := s.db.QueryRowContext(ctx, query).Scan(&n); err != nil {
		return 0, fmt.Errorf("failed to count rows in %s: %w", table, err)
	}
	return n, nil
}

// NullCount returns the number of NULL values in an allow-listed column.
func (s *SQLiteStorage) NullCount(ctx context.Context, table, column string) (int, error) {
	if err := validateContext(ctx); err != nil {
		return 0, err
	}
	if err := validateColumn(table, column); err != nil {
		return 0, err
	}

	var n int
	query := fmt.Sprintf(`SELECT COUNT(*) FROM "%s" WHERE "%s" IS NULL`, table, column)
	if err := s.db.QueryRowContext(ctx, query).Scan(&n); err != nil {
		return 0, fmt.Errorf("failed to count nulls in %s.%s: %w", table, column, err)
	}
	return n, nil
}

// DistinctCount returns the number of distinct non-null values in a column.
func (s *SQLiteStorage) DistinctCount(ctx context.Context, table, column string) (int, error) {
	if err := validateContext(ctx); err != nil {
		return 0, err
	}
	if err := validateColumn(table, column); err != nil {
		return 0, err
	}

	var n int
	query := fmt.Sprintf(`SELECT COUNT(DISTINCT "%s") FROM "%s"`, column, table)
	if err := s.db.QueryRowContext(ctx, query).Scan(&n); err != nil {
		return 0, fmt.Errorf("failed to count distinct %s.%s: %w", table, column, err)
	}
	return n, nil
}

// DuplicateKeys returns the non-null key groups occurring more than once,
// ordered by descending occurrence count with the key as a deterministic
// tie-break.
func (s *SQLiteStorage) DuplicateKeys(ctx context.Context, table, keyColumn string) ([]service.DuplicateKey, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}
	if err := validateColumn(table, keyColumn); err != nil {
		return nil, err
	}

	query := fmt.Sprintf(`
		SELECT "%s", COUNT(*) AS cnt
		FROM "%s"
		WHERE "%s" IS NOT NULL
		GROUP BY "%s"
		HAVING COUNT(*) > 1
		ORDER BY cnt DESC, "%s" ASC`,
		keyColumn, table, keyColumn, keyColumn, keyColumn)

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query duplicates in %s: %w", table, err)
	}
	defer func() { _ = rows.Close() }()

	var out []service.DuplicateKey
	for rows.Next() {
		var d service.DuplicateKey
		if err := rows.Scan(&d.Key, &d.Occurrences); err != nil {
			return nil, fmt.Errorf("failed to scan duplicate key: %w", err)
		}
		out = append(out, d)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating duplicate keys: %w", err)
	}
	return out, nil
}

// RawOrphanTransactionCount counts staging transactions whose customer_id is
// non-null but absent from the staging customer table. Values are compared
// exactly as ingested, with no normalization: an id differing only by case
// or whitespace counts as orphaned here even though the transform would
// match it after cleaning.
func (s *SQLiteStorage) RawOrphanTransactionCount(ctx context.Context) (int, error) {
	if err := validateContext(ctx); err != nil {
		return 0, err
	}

	var n int
	// The subquery filters NULL keys so NOT IN keeps its intended meaning.
	err := s.db.QueryRowContext(ctx, `
		SELECT COUNT(*)
		FROM raw_transactions
		WHERE customer_id IS NOT NULL
		  AND customer_id NOT IN (
			SELECT customer_id FROM raw_customers WHERE customer_id IS NOT NULL
		  )`).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("failed to count raw orphan transactions: %w", err)
	}
	return n, nil
}

// CleanOrphanTransactionCount counts fact rows whose foreign key is absent
// from the cleaned customer dimension.
func (s *SQLiteStorage) CleanOrphanTransactionCount(ctx context.Context) (int, error) {
	if err := validateContext(ctx); err != nil {
		return 0, err
	}

	var n int
	err := s.db.QueryRowContext(ctx, `
		SELECT COUNT(*)
		FROM fact_transactions
		WHERE customer_id NOT IN (SELECT customer_id FROM dim_customers)`).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("failed to count orphan fact transactions: %w", err)
	}
	return n, nil
}
