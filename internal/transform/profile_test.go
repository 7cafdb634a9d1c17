package transform

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"matchday/internal/model"
)

func txnOn(customerID, category string, amount float64, date time.Time) model.Transaction {
	return model.Transaction{
		ID:         "TXN-" + customerID + "-" + date.Format("20060102"),
		CustomerID: customerID,
		Date:       date,
		Amount:     amount,
		Category:   category,
	}
}

func TestBuildProfilesZeroTransactions(t *testing.T) {
	customers := []model.Customer{{ID: "CUST-0001", Name: "marco rossi"}}

	got := BuildProfiles(customers, nil)
	require.Len(t, got, 1)

	p := got[0]
	assert.Equal(t, "CUST-0001", p.CustomerID)
	assert.Equal(t, 0, p.TxnCount)
	assert.Equal(t, 0, p.MatchTicketCount)
	assert.Nil(t, p.TotalSpend)
	assert.Nil(t, p.AvgTxn)
	assert.Nil(t, p.LastTxnDate)
	assert.Nil(t, p.SportsAffinityRatio)
	assert.Nil(t, p.AvgDaysBetweenTxns)
}

func TestBuildProfilesAggregates(t *testing.T) {
	customers := []model.Customer{{ID: "CUST-0001", Name: "marco rossi"}}
	d1 := time.Date(2025, 9, 1, 20, 15, 0, 0, time.UTC)
	d2 := time.Date(2025, 9, 11, 8, 0, 0, 0, time.UTC)
	d3 := time.Date(2025, 9, 21, 12, 30, 0, 0, time.UTC)

	transactions := []model.Transaction{
		txnOn("CUST-0001", "match_tickets", 120.00, d1),
		txnOn("CUST-0001", "sports_merchandise", 60.00, d2),
		txnOn("CUST-0001", "groceries", 30.00, d3),
	}

	got := BuildProfiles(customers, transactions)
	require.Len(t, got, 1)
	p := got[0]

	assert.Equal(t, 3, p.TxnCount)
	assert.Equal(t, 1, p.MatchTicketCount)

	require.NotNil(t, p.TotalSpend)
	assert.InDelta(t, 210.00, *p.TotalSpend, 1e-9)

	require.NotNil(t, p.AvgTxn)
	assert.InDelta(t, 70.00, *p.AvgTxn, 1e-9)

	require.NotNil(t, p.LastTxnDate)
	assert.Equal(t, time.Date(2025, 9, 21, 0, 0, 0, 0, time.UTC), *p.LastTxnDate)

	// match_tickets and sports_merchandise both count toward affinity.
	require.NotNil(t, p.SportsAffinityRatio)
	assert.InDelta(t, 0.67, *p.SportsAffinityRatio, 1e-9)

	// 20 days spanned across 2 gaps.
	require.NotNil(t, p.AvgDaysBetweenTxns)
	assert.InDelta(t, 10.0, *p.AvgDaysBetweenTxns, 1e-9)
}

func TestBuildProfilesSingleTransactionInterval(t *testing.T) {
	customers := []model.Customer{{ID: "CUST-0001"}}
	transactions := []model.Transaction{
		txnOn("CUST-0001", "dining", 25.00, time.Date(2025, 10, 1, 19, 0, 0, 0, time.UTC)),
	}

	got := BuildProfiles(customers, transactions)
	require.Len(t, got, 1)
	assert.Equal(t, 1, got[0].TxnCount)
	assert.Nil(t, got[0].AvgDaysBetweenTxns)
	require.NotNil(t, got[0].SportsAffinityRatio)
	assert.InDelta(t, 0.0, *got[0].SportsAffinityRatio, 1e-9)
}

func TestBuildProfilesIgnoresUnknownCustomers(t *testing.T) {
	customers := []model.Customer{{ID: "CUST-0001"}}
	transactions := []model.Transaction{
		txnOn("CUST-9999", "dining", 25.00, time.Date(2025, 10, 1, 0, 0, 0, 0, time.UTC)),
	}

	got := BuildProfiles(customers, transactions)
	require.Len(t, got, 1)
	assert.Equal(t, "CUST-0001", got[0].CustomerID)
	assert.Equal(t, 0, got[0].TxnCount)
}
