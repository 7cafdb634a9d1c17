package transform

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"matchday/internal/config"
	"matchday/internal/model"
)

func rawTxn(rowID int64, id, customerID, amount string) model.RawTransaction {
	return model.RawTransaction{
		TransactionID: model.Raw(id),
		CustomerID:    model.Raw(customerID),
		Timestamp:     model.Raw("2025-09-14T18:30:00Z"),
		Amount:        model.Raw(amount),
		Category:      model.Raw("match_tickets"),
		RowID:         rowID,
	}
}

func dimSet(ids ...string) map[string]struct{} {
	out := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		out[id] = struct{}{}
	}
	return out
}

func TestDedupTransactionsKeepsLowestSequence(t *testing.T) {
	rows := []model.RawTransaction{
		rawTxn(8, "TXN-000001", "CUST-0001", "20.00"),
		rawTxn(2, "TXN-000001", "CUST-0001", "30.00"),
		rawTxn(5, "TXN-000002", "CUST-0001", "40.00"),
	}

	got := DedupTransactions(rows)
	require.Len(t, got, 2)
	assert.Equal(t, int64(2), got[0].RowID)
	assert.Equal(t, int64(5), got[1].RowID)
}

func TestBuildTransactionsFilters(t *testing.T) {
	cfg := config.DefaultValidation()
	processedAt := time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC)
	dims := dimSet("CUST-0001")

	tests := []struct {
		name string
		row  model.RawTransaction
		kept bool
	}{
		{name: "valid row", row: rawTxn(0, "TXN-000001", "CUST-0001", "42.50"), kept: true},
		{name: "null customer key", row: rawTxn(0, "TXN-000002", "", "42.50"), kept: false},
		{name: "unresolvable customer", row: rawTxn(0, "TXN-000003", "CUST-9999", "42.50"), kept: false},
		{name: "case mismatched customer", row: rawTxn(0, "TXN-000004", "cust-0001", "42.50"), kept: false},
		{name: "unparseable amount", row: rawTxn(0, "TXN-000005", "CUST-0001", "n/a"), kept: false},
		{name: "missing amount", row: rawTxn(0, "TXN-000006", "CUST-0001", ""), kept: false},
		{name: "upper bound excluded", row: rawTxn(0, "TXN-000007", "CUST-0001", "50000.00"), kept: false},
		{name: "just below upper bound", row: rawTxn(0, "TXN-000008", "CUST-0001", "49999.99"), kept: true},
		{name: "rounds up to excluded bound", row: rawTxn(0, "TXN-000009", "CUST-0001", "49999.999"), kept: false},
		{name: "lower bound excluded", row: rawTxn(0, "TXN-000010", "CUST-0001", "-1000.00"), kept: false},
		{name: "just above lower bound", row: rawTxn(0, "TXN-000011", "CUST-0001", "-999.99"), kept: true},
		{name: "refund inside bounds", row: rawTxn(0, "TXN-000012", "CUST-0001", "-42.00"), kept: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := BuildTransactions([]model.RawTransaction{tt.row}, dims, cfg, processedAt)
			if tt.kept {
				assert.Len(t, got, 1)
			} else {
				assert.Empty(t, got)
			}
		})
	}
}

func TestBuildTransactionsTimestampFallback(t *testing.T) {
	cfg := config.DefaultValidation()
	processedAt := time.Date(2026, 2, 1, 12, 0, 0, 0, time.UTC)

	row := rawTxn(0, "TXN-000001", "CUST-0001", "10.00")
	row.Timestamp = model.Raw("02/01/2026")

	got := BuildTransactions([]model.RawTransaction{row}, dimSet("CUST-0001"), cfg, processedAt)
	require.Len(t, got, 1)
	assert.True(t, processedAt.Equal(got[0].Date))
}

func TestBuildTransactionsNormalizesCategoryAndAmount(t *testing.T) {
	cfg := config.DefaultValidation()
	row := rawTxn(3, "TXN-000001", "CUST-0001", "42,5051")
	row.Category = model.Raw(" Match_Tickets ")
	row.Merchant = model.Raw("San Siro Box Office")

	got := BuildTransactions([]model.RawTransaction{row}, dimSet("CUST-0001"), cfg, time.Now())
	require.Len(t, got, 1)
	assert.Equal(t, "match_tickets", got[0].Category)
	assert.InDelta(t, 42.51, got[0].Amount, 1e-9)
	require.NotNil(t, got[0].Merchant)
	assert.Equal(t, "San Siro Box Office", *got[0].Merchant)
	assert.Equal(t, int64(3), got[0].SourceRowID)
}
