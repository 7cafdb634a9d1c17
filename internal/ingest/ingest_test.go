package ingest

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"matchday/internal/common"
	"matchday/internal/storage"
)

func newTestStore(t *testing.T) *storage.SQLiteStorage {
	t.Helper()

	store, err := storage.NewSQLiteStorage(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })

	require.NoError(t, store.Migrate(context.Background()))
	return store
}

func TestIngestAllContinuesPastFailures(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	customersPath := writeFile(t, "customers.csv",
		"customer_id,name\nCUST-0001,Marco Rossi\nCUST-0002,Sara Conti\n")
	sentimentPath := writeFile(t, "sentiment.json", `[{"id": "SENT-00001"}]`)

	summary := New(store).IngestAll(ctx, Sources{
		Customers:    customersPath,
		Transactions: filepath.Join(t.TempDir(), "missing.csv"),
		Sentiment:    sentimentPath,
	})

	assert.Equal(t, "success", summary.Status)
	assert.Equal(t, 2, summary.RowCounts["customers"])
	assert.Equal(t, 0, summary.RowCounts["transactions"])
	assert.Equal(t, 1, summary.RowCounts["sentiment"])

	require.Len(t, summary.Issues["transactions"], 1)
	assert.Contains(t, summary.Issues["transactions"][0], "Failed to load")
	assert.Empty(t, summary.Issues["customers"])

	// The failed source never blocks the others from landing in staging.
	rows, err := store.GetRawCustomers(ctx)
	require.NoError(t, err)
	assert.Len(t, rows, 2)
}

func TestIngestSource(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	sources := Sources{
		Customers: writeFile(t, "customers.csv",
			"customer_id,name\nCUST-0001,Marco Rossi\n"),
	}

	n, err := New(store).IngestSource(ctx, "customers", sources)
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	rows, err := store.GetRawCustomers(ctx)
	require.NoError(t, err)
	assert.Len(t, rows, 1)
}

func TestIngestSourceUnknownName(t *testing.T) {
	store := newTestStore(t)

	_, err := New(store).IngestSource(context.Background(), "weather", Sources{})
	require.Error(t, err)
	assert.ErrorIs(t, err, common.ErrUnknownSource)
	assert.Contains(t, err.Error(), "weather")
}
