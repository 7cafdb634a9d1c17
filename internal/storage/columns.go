package storage

import "fmt"

// tableColumns is the fixed allow-list of diagnosable tables and their
// public columns. Internal bookkeeping columns (the underscore-prefixed
// _row_id, _load_timestamp, _source_row_id, _loaded_at) are deliberately
// absent: diagnostics never profile them and callers can never name them.
var tableColumns = map[string][]string{
	"raw_customers": {
		"customer_id", "name", "email", "age", "city", "country",
		"signup_date", "favorite_team", "membership_tier", "gender",
	},
	"raw_transactions": {
		"transaction_id", "customer_id", "timestamp", "amount",
		"currency", "category", "merchant", "description",
	},
	"raw_sentiment": {
		"id", "user", "source", "text", "published_at", "topic",
		"tags", "sentiment_score", "engagement",
	},
	"dim_customers": {
		"customer_id", "name", "email", "age", "city", "country",
		"favorite_team", "membership_tier", "signup_date",
	},
	"fact_transactions": {
		"transaction_id", "customer_id", "transaction_date", "amount_eur",
		"category", "merchant",
	},
	"fact_sentiment": {
		"post_id", "user_name", "topic", "sentiment_score", "engagement",
		"published_at",
	},
	"customer_profile": {
		"customer_id", "txn_count", "total_spend", "avg_txn",
		"last_txn_date", "match_ticket_count", "sports_affinity_ratio",
		"avg_days_between_txns",
	},
}

// Columns returns the allow-listed public columns of a table in schema order.
func (s *SQLiteStorage) Columns(table string) ([]string, error) {
	cols, ok := tableColumns[table]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownTable, table)
	}
	out := make([]string, len(cols))
	copy(out, cols)
	return out, nil
}
