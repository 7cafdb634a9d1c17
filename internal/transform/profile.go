package transform

import (
	"strings"

	"matchday/internal/config"
	"matchday/internal/model"
)

// BuildProfiles aggregates the transaction fact into one profile row per
// dimension customer, including customers with zero transactions. Every
// ratio and average is nil-guarded: a customer with no transactions gets
// nil aggregates, and the inter-transaction interval needs at least two
// transactions, never a division by zero.
func BuildProfiles(customers []model.Customer, transactions []model.Transaction) []model.CustomerProfile {
	byCustomer := make(map[string][]model.Transaction, len(customers))
	for _, t := range transactions {
		byCustomer[t.CustomerID] = append(byCustomer[t.CustomerID], t)
	}

	out := make([]model.CustomerProfile, 0, len(customers))
	for _, c := range customers {
		out = append(out, buildProfile(c.ID, byCustomer[c.ID]))
	}
	return out
}

func buildProfile(customerID string, txns []model.Transaction) model.CustomerProfile {
	p := model.CustomerProfile{CustomerID: customerID, TxnCount: len(txns)}
	if len(txns) == 0 {
		return p
	}

	var sum float64
	var affinity int
	first := dateOf(txns[0].Date)
	last := first

	for _, t := range txns {
		sum += t.Amount

		d := dateOf(t.Date)
		if d.Before(first) {
			first = d
		}
		if d.After(last) {
			last = d
		}

		if t.Category == config.TicketCategory {
			p.MatchTicketCount++
		}
		// The exact ticket category also satisfies the sports-keyword OR,
		// so it is double-counted into the affinity numerator by design.
		if strings.Contains(t.Category, config.SportsKeyword) || t.Category == config.TicketCategory {
			affinity++
		}
	}

	total := round2(sum)
	p.TotalSpend = &total

	avg := round2(sum / float64(len(txns)))
	p.AvgTxn = &avg

	lastDate := last
	p.LastTxnDate = &lastDate

	ratio := round2(float64(affinity) / float64(len(txns)))
	p.SportsAffinityRatio = &ratio

	if len(txns) > 1 {
		spanDays := last.Sub(first).Hours() / 24
		interval := round1(spanDays / float64(len(txns)-1))
		p.AvgDaysBetweenTxns = &interval
	}

	return p
}
