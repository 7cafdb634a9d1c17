package model

import "time"

// Transaction is one row of the fact_transactions table. Rows only reach
// this type after the transform filter: the customer FK resolves against
// dim_customers and the amount parsed and fell strictly inside the
// configured bounds.
type Transaction struct {
	Date        time.Time
	Merchant    *string
	ID          string
	CustomerID  string
	Category    string
	Amount      float64
	SourceRowID int64
}
