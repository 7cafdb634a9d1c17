package model

import "time"

// CustomerProfile is the derived per-customer aggregate over
// fact_transactions. One row exists per dim_customers row, including
// customers with zero transactions; every ratio and average is nil rather
// than NaN or infinity in that case.
type CustomerProfile struct {
	LastTxnDate         *time.Time
	TotalSpend          *float64
	AvgTxn              *float64
	SportsAffinityRatio *float64
	AvgDaysBetweenTxns  *float64
	CustomerID          string
	TxnCount            int
	MatchTicketCount    int
}
