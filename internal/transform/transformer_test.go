package transform

import (
	"context"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"matchday/internal/config"
	"matchday/internal/model"
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

func stageCustomer(id, name, age string, loadedAt time.Time) model.RawCustomer {
	return model.RawCustomer{
		CustomerID: model.Raw(id),
		Name:       model.Raw(name),
		Age:        model.Raw(age),
		LoadedAt:   loadedAt,
	}
}

func stageTxn(id, customerID, amount string, loadedAt time.Time) model.RawTransaction {
	return model.RawTransaction{
		TransactionID: model.Raw(id),
		CustomerID:    model.Raw(customerID),
		Timestamp:     model.Raw("2025-09-14T18:30:00Z"),
		Amount:        model.Raw(amount),
		Category:      model.Raw("match_tickets"),
		LoadedAt:      loadedAt,
	}
}

func TestTransformAll(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()
	loadedAt := time.Date(2026, 1, 15, 9, 0, 0, 0, time.UTC)

	require.NoError(t, store.AppendRawCustomers(ctx, []model.RawCustomer{
		stageCustomer("CUST-0001", "Marco Rossi", "34", loadedAt),
		stageCustomer("CUST-0002", "Sara Conti", "bad-age", loadedAt),
		stageCustomer("CUST-0001", "Marco Rossi Updated", "35", loadedAt),
	}))
	require.NoError(t, store.AppendRawTransactions(ctx, []model.RawTransaction{
		stageTxn("TXN-000001", "CUST-0001", "120.00", loadedAt),
		stageTxn("TXN-000001", "CUST-0001", "999.00", loadedAt),
		stageTxn("TXN-000002", "CUST-0002", "60.00", loadedAt),
		stageTxn("TXN-000003", "CUST-0404", "30.00", loadedAt),
		stageTxn("TXN-000004", "CUST-0001", "50000.00", loadedAt),
	}))
	require.NoError(t, store.AppendRawSentiment(ctx, []model.RawSentiment{
		{ID: model.Raw("SENT-00001"), SentimentScore: model.Raw("0.8"), LoadedAt: loadedAt},
	}))

	report, err := New(store, config.DefaultValidation()).TransformAll(ctx)
	require.NoError(t, err)

	assert.Equal(t, []string{
		"Tables created",
		"dim_customers: 2 rows",
		"fact_transactions: 2 rows",
		"fact_sentiment: 1 rows",
		"customer_profile: 2 rows",
	}, report.Steps)

	// Earliest-staged duplicate won.
	customers, err := store.GetCustomers(ctx)
	require.NoError(t, err)
	require.Len(t, customers, 2)
	assert.Equal(t, "marco rossi", customers[0].Name)
	assert.Nil(t, customers[1].Age)

	transactions, err := store.GetTransactions(ctx)
	require.NoError(t, err)
	require.Len(t, transactions, 2)
	assert.InDelta(t, 120.00, transactions[0].Amount, 1e-9)
}

func TestTransformAllBestEffortSteps(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()
	loadedAt := time.Date(2026, 1, 15, 9, 0, 0, 0, time.UTC)

	// An out-of-range age violates the dimension's CHECK constraint and
	// fails the whole customer step. Later steps still run against the
	// empty dimension.
	require.NoError(t, store.AppendRawCustomers(ctx, []model.RawCustomer{
		stageCustomer("CUST-0001", "Marco Rossi", "200", loadedAt),
	}))
	require.NoError(t, store.AppendRawTransactions(ctx, []model.RawTransaction{
		stageTxn("TXN-000001", "CUST-0001", "120.00", loadedAt),
	}))

	report, err := New(store, config.DefaultValidation()).TransformAll(ctx)
	require.NoError(t, err)

	require.Len(t, report.Steps, 5)
	assert.True(t, strings.HasPrefix(report.Steps[1], "ERROR in dim_customers:"), "got %q", report.Steps[1])
	assert.Equal(t, "fact_transactions: 0 rows", report.Steps[2])
	assert.Equal(t, "customer_profile: 0 rows", report.Steps[4])
}

func TestTransformAllRerunIsNotIdempotent(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()
	loadedAt := time.Date(2026, 1, 15, 9, 0, 0, 0, time.UTC)

	require.NoError(t, store.AppendRawCustomers(ctx, []model.RawCustomer{
		stageCustomer("CUST-0001", "Marco Rossi", "34", loadedAt),
	}))

	transformer := New(store, config.DefaultValidation())

	first, err := transformer.TransformAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, "dim_customers: 1 rows", first.Steps[1])

	// Loads are additive: a second run collides with the primary key and
	// surfaces as step errors rather than silently replacing rows.
	second, err := transformer.TransformAll(ctx)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(second.Steps[1], "ERROR in dim_customers:"), "got %q", second.Steps[1])

	n, err := store.RowCount(ctx, "dim_customers")
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}
