package transform

import (
	"sort"
	"time"

	"matchday/internal/config"
	"matchday/internal/model"
)

// DedupTransactions groups staging rows by their raw natural key, discards
// rows with no key, and keeps the earliest-ingested physical row per key
// (sequence number ascending, not load timestamp). Output is ordered by key.
func DedupTransactions(rows []model.RawTransaction) []model.RawTransaction {
	best := make(map[string]model.RawTransaction)
	for _, r := range rows {
		if !r.TransactionID.Valid {
			continue
		}
		key := r.TransactionID.String
		cur, ok := best[key]
		if !ok || r.RowID < cur.RowID {
			best[key] = r
		}
	}

	keys := make([]string, 0, len(best))
	for k := range best {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	out := make([]model.RawTransaction, 0, len(best))
	for _, k := range keys {
		out = append(out, best[k])
	}
	return out
}

// BuildTransactions produces the transaction fact from staging rows.
//
// Two different failure policies apply. A bad timestamp never drops a row:
// it falls back to the processing time. A row is dropped entirely when its
// customer key is null or unresolvable against the already-built customer
// dimension, when its amount fails to parse, or when the amount falls
// outside the open interval (MinAmount, MaxAmount). Dropping is a filter
// outcome, not an error.
func BuildTransactions(rows []model.RawTransaction, dimIDs map[string]struct{}, cfg config.Validation, processedAt time.Time) []model.Transaction {
	deduped := DedupTransactions(rows)

	out := make([]model.Transaction, 0, len(deduped))
	for _, r := range deduped {
		if !r.CustomerID.Valid {
			continue
		}
		if _, ok := dimIDs[r.CustomerID.String]; !ok {
			continue
		}

		amount, ok := parseFloat(r.Amount)
		if !ok {
			continue
		}
		// Bounds apply to the 2-decimal value that would be stored, so
		// 49999.999 rounds up to the excluded boundary.
		amount = round2(amount)
		if amount <= cfg.MinAmount || amount >= cfg.MaxAmount {
			continue
		}

		date, ok := parseTimestamp(r.Timestamp)
		if !ok {
			date = processedAt
		}

		out = append(out, model.Transaction{
			ID:          r.TransactionID.String,
			CustomerID:  r.CustomerID.String,
			Date:        date,
			Amount:      amount,
			Category:    lowerTrim(r.Category.Or("")),
			Merchant:    verbatimPtr(r.Merchant),
			SourceRowID: r.RowID,
		})
	}
	return out
}
