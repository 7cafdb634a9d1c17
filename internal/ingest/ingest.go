// Package ingest loads raw CSV and JSON sources into the staging store.
// It is a thin I/O wrapper: no cleaning happens here, and every value is
// staged exactly as it appeared in the source file.
package ingest

import (
	"context"
	"fmt"
	"time"

	"matchday/internal/common"
	"matchday/internal/service"
)

// Ingestor loads the three raw sources into staging tables.
type Ingestor struct {
	now     func() time.Time
	storage service.Storage
}

// New creates an ingestor over the given store.
func New(storage service.Storage) *Ingestor {
	return &Ingestor{
		storage: storage,
		now:     time.Now,
	}
}

// Summary reports what one ingestion pass loaded. A source that fails to
// load is recorded as an issue; it never aborts the other sources.
type Summary struct {
	Timestamp time.Time           `json:"timestamp"`
	Status    string              `json:"status"`
	RowCounts map[string]int      `json:"row_counts"`
	Issues    map[string][]string `json:"issues"`
}

// Sources names the input files for one ingestion pass.
type Sources struct {
	Customers    string
	Transactions string
	Sentiment    string
}

// IngestAll loads every source and returns a summary.
func (i *Ingestor) IngestAll(ctx context.Context, sources Sources) *Summary {
	common.LogInfo("Starting data ingestion", nil)

	summary := &Summary{
		Timestamp: i.now(),
		Status:    "success",
		RowCounts: map[string]int{"customers": 0, "transactions": 0, "sentiment": 0},
		Issues:    map[string][]string{"customers": {}, "transactions": {}, "sentiment": {}},
	}

	if n, err := i.IngestCustomers(ctx, sources.Customers); err != nil {
		common.LogError(err, "Failed to load customers", common.Fields{"path": sources.Customers})
		summary.Issues["customers"] = append(summary.Issues["customers"], fmt.Sprintf("Failed to load: %v", err))
	} else {
		summary.RowCounts["customers"] = n
	}

	if n, err := i.IngestTransactions(ctx, sources.Transactions); err != nil {
		common.LogError(err, "Failed to load transactions", common.Fields{"path": sources.Transactions})
		summary.Issues["transactions"] = append(summary.Issues["transactions"], fmt.Sprintf("Failed to load: %v", err))
	} else {
		summary.RowCounts["transactions"] = n
	}

	if n, err := i.IngestSentiment(ctx, sources.Sentiment); err != nil {
		common.LogError(err, "Failed to load sentiment", common.Fields{"path": sources.Sentiment})
		summary.Issues["sentiment"] = append(summary.Issues["sentiment"], fmt.Sprintf("Failed to load: %v", err))
	} else {
		summary.RowCounts["sentiment"] = n
	}

	common.LogInfo("Ingestion complete", common.Fields{"row_counts": summary.RowCounts})
	return summary
}

// IngestSource loads a single named source into staging. The name must be
// one of customers, transactions, or sentiment.
func (i *Ingestor) IngestSource(ctx context.Context, name string, sources Sources) (int, error) {
	switch name {
	case "customers":
		return i.IngestCustomers(ctx, sources.Customers)
	case "transactions":
		return i.IngestTransactions(ctx, sources.Transactions)
	case "sentiment":
		return i.IngestSentiment(ctx, sources.Sentiment)
	default:
		return 0, fmt.Errorf("%w: %q", common.ErrUnknownSource, name)
	}
}

// IngestCustomers loads the customers CSV into staging.
func (i *Ingestor) IngestCustomers(ctx context.Context, path string) (int, error) {
	rows, err := ReadCustomersCSV(path, i.now())
	if err != nil {
		return 0, err
	}
	if err := i.storage.AppendRawCustomers(ctx, rows); err != nil {
		return 0, err
	}
	return len(rows), nil
}

// IngestTransactions loads the transactions CSV into staging.
func (i *Ingestor) IngestTransactions(ctx context.Context, path string) (int, error) {
	rows, err := ReadTransactionsCSV(path, i.now())
	if err != nil {
		return 0, err
	}
	if err := i.storage.AppendRawTransactions(ctx, rows); err != nil {
		return 0, err
	}
	return len(rows), nil
}

// IngestSentiment loads the sentiment JSON array into staging.
func (i *Ingestor) IngestSentiment(ctx context.Context, path string) (int, error) {
	rows, err := ReadSentimentJSON(path, i.now())
	if err != nil {
		return 0, err
	}
	if err := i.storage.AppendRawSentiment(ctx, rows); err != nil {
		return 0, err
	}
	return len(rows), nil
}
