package storage

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	"matchday/internal/model"
)

// ptrArg converts an optional value to a driver argument, mapping nil to NULL.
func ptrArg[T any](p *T) any {
	if p == nil {
		return nil
	}
	return *p
}

func stringPtr(ns sql.NullString) *string {
	if !ns.Valid {
		return nil
	}
	s := ns.String
	return &s
}

func intPtr(ni sql.NullInt64) *int {
	if !ni.Valid {
		return nil
	}
	i := int(ni.Int64)
	return &i
}

func floatPtr(nf sql.NullFloat64) *float64 {
	if !nf.Valid {
		return nil
	}
	f := nf.Float64
	return &f
}

func timePtr(nt sql.NullTime) *time.Time {
	if !nt.Valid {
		return nil
	}
	t := nt.Time
	return &t
}

// SaveCustomers inserts dimension rows inside a single transaction. A
// constraint violation rolls back the whole step, leaving the table as it
// was before the call.
func (s *SQLiteStorage) SaveCustomers(ctx context.Context, customers []model.Customer) error {
	if err := validateContext(ctx); err != nil {
		return err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO dim_customers (
			customer_id, name, email, age, city, country,
			favorite_team, membership_tier, signup_date
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return fmt.Errorf("failed to prepare statement: %w", err)
	}
	defer func() { _ = stmt.Close() }()

	for _, c := range customers {
		_, err = stmt.ExecContext(ctx,
			c.ID,
			c.Name,
			ptrArg(c.Email),
			ptrArg(c.Age),
			ptrArg(c.City),
			ptrArg(c.Country),
			ptrArg(c.FavoriteTeam),
			ptrArg(c.MembershipTier),
			ptrArg(c.SignupDate),
		)
		if err != nil {
			return fmt.Errorf("failed to insert customer %s: %w", c.ID, err)
		}
	}

	slog.Debug("saved dimension customers", "count", len(customers))
	return tx.Commit()
}

// SaveTransactions inserts fact rows inside a single transaction.
func (s *SQLiteStorage) SaveTransactions(ctx context.Context, transactions []model.Transaction) error {
	if err := validateContext(ctx); err != nil {
		return err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO fact_transactions (
			transaction_id, customer_id, transaction_date, amount_eur,
			category, merchant, _source_row_id
		) VALUES (?, ?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return fmt.Errorf("failed to prepare statement: %w", err)
	}
	defer func() { _ = stmt.Close() }()

	for _, t := range transactions {
		_, err = stmt.ExecContext(ctx,
			t.ID,
			t.CustomerID,
			t.Date,
			t.Amount,
			t.Category,
			ptrArg(t.Merchant),
			t.SourceRowID,
		)
		if err != nil {
			return fmt.Errorf("failed to insert transaction %s: %w", t.ID, err)
		}
	}

	slog.Debug("saved fact transactions", "count", len(transactions))
	return tx.Commit()
}

// SaveSentimentPosts inserts sentiment fact rows inside a single transaction.
func (s *SQLiteStorage) SaveSentimentPosts(ctx context.Context, posts []model.SentimentPost) error {
	if err := validateContext(ctx); err != nil {
		return err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO fact_sentiment (
			post_id, user_name, topic, sentiment_score, engagement,
			published_at, _source_row_id
		) VALUES (?, ?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return fmt.Errorf("failed to prepare statement: %w", err)
	}
	defer func() { _ = stmt.Close() }()

	for _, p := range posts {
		_, err = stmt.ExecContext(ctx,
			p.ID,
			ptrArg(p.UserName),
			ptrArg(p.Topic),
			ptrArg(p.Score),
			ptrArg(p.Engagement),
			ptrArg(p.PublishedAt),
			p.SourceRowID,
		)
		if err != nil {
			return fmt.Errorf("failed to insert sentiment post %s: %w", p.ID, err)
		}
	}

	slog.Debug("saved fact sentiment", "count", len(posts))
	return tx.Commit()
}

// SaveCustomerProfiles inserts profile rows inside a single transaction.
func (s *SQLiteStorage) SaveCustomerProfiles(ctx context.Context, profiles []model.CustomerProfile) error {
	if err := validateContext(ctx); err != nil {
		return err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO customer_profile (
			customer_id, txn_count, total_spend, avg_txn, last_txn_date,
			match_ticket_count, sports_affinity_ratio, avg_days_between_txns
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return fmt.Errorf("failed to prepare statement: %w", err)
	}
	defer func() { _ = stmt.Close() }()

	for _, p := range profiles {
		_, err = stmt.ExecContext(ctx,
			p.CustomerID,
			p.TxnCount,
			ptrArg(p.TotalSpend),
			ptrArg(p.AvgTxn),
			ptrArg(p.LastTxnDate),
			p.MatchTicketCount,
			ptrArg(p.SportsAffinityRatio),
			ptrArg(p.AvgDaysBetweenTxns),
		)
		if err != nil {
			return fmt.Errorf("failed to insert customer profile %s: %w", p.CustomerID, err)
		}
	}

	slog.Debug("saved customer profiles", "count", len(profiles))
	return tx.Commit()
}

// GetCustomers returns the cleaned customer dimension ordered by key.
func (s *SQLiteStorage) GetCustomers(ctx context.Context) ([]model.Customer, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT customer_id, name, email, age, city, country,
		       favorite_team, membership_tier, signup_date
		FROM dim_customers
		ORDER BY customer_id`)
	if err != nil {
		return nil, fmt.Errorf("failed to query customers: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var out []model.Customer
	for rows.Next() {
		var (
			c                                model.Customer
			email, city, country, team, tier sql.NullString
			age                              sql.NullInt64
			signup                           sql.NullTime
		)
		if err := rows.Scan(&c.ID, &c.Name, &email, &age, &city, &country,
			&team, &tier, &signup); err != nil {
			return nil, fmt.Errorf("failed to scan customer: %w", err)
		}
		c.Email = stringPtr(email)
		c.Age = intPtr(age)
		c.City = stringPtr(city)
		c.Country = stringPtr(country)
		c.FavoriteTeam = stringPtr(team)
		c.MembershipTier = stringPtr(tier)
		c.SignupDate = timePtr(signup)
		out = append(out, c)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating customers: %w", err)
	}
	return out, nil
}

// GetTransactions returns the cleaned transaction fact ordered by customer
// and date, which is the grouping order the profile aggregation consumes.
func (s *SQLiteStorage) GetTransactions(ctx context.Context) ([]model.Transaction, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT transaction_id, customer_id, transaction_date, amount_eur,
		       category, merchant, _source_row_id
		FROM fact_transactions
		ORDER BY customer_id, transaction_date, transaction_id`)
	if err != nil {
		return nil, fmt.Errorf("failed to query transactions: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var out []model.Transaction
	for rows.Next() {
		var (
			t        model.Transaction
			merchant sql.NullString
		)
		if err := rows.Scan(&t.ID, &t.CustomerID, &t.Date, &t.Amount,
			&t.Category, &merchant, &t.SourceRowID); err != nil {
			return nil, fmt.Errorf("failed to scan transaction: %w", err)
		}
		t.Merchant = stringPtr(merchant)
		out = append(out, t)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating transactions: %w", err)
	}
	return out, nil
}
