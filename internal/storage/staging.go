package storage

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"matchday/internal/model"
)

// rawArg converts a staging value to a driver argument, mapping absent to NULL.
func rawArg(r model.RawString) any {
	if !r.Valid {
		return nil
	}
	return r.String
}

// scanRaw converts a scanned nullable column back to a staging value.
func scanRaw(ns sql.NullString) model.RawString {
	if !ns.Valid {
		return model.RawString{}
	}
	return model.RawString{String: ns.String, Valid: true}
}

// nextRowID returns the next synthetic sequence number for a staging table.
// Row ids are monotonic per source and never reused, even across loads.
func nextRowID(ctx context.Context, tx *sql.Tx, table string) (int64, error) {
	if err := validateTable(table); err != nil {
		return 0, err
	}
	var next int64
	query := fmt.Sprintf(`SELECT COALESCE(MAX(_row_id), -1) + 1 FROM "%s"`, table)
	if err := tx.QueryRowContext(ctx, query).Scan(&next); err != nil {
		return 0, fmt.Errorf("failed to compute next row id for %s: %w", table, err)
	}
	return next, nil
}

// AppendRawCustomers appends staging customer rows, assigning sequence numbers
// in slice order. Staging rows are never updated or deleted afterwards.
func (s *SQLiteStorage) AppendRawCustomers(ctx context.Context, rows []model.RawCustomer) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if len(rows) == 0 {
		return nil
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	next, err := nextRowID(ctx, tx, "raw_customers")
	if err != nil {
		return err
	}

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO raw_customers (
			_row_id, customer_id, name, email, age, city, country,
			signup_date, favorite_team, membership_tier, gender, _load_timestamp
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return fmt.Errorf("failed to prepare statement: %w", err)
	}
	defer func() { _ = stmt.Close() }()

	for i, row := range rows {
		_, err = stmt.ExecContext(ctx,
			next+int64(i),
			rawArg(row.CustomerID),
			rawArg(row.Name),
			rawArg(row.Email),
			rawArg(row.Age),
			rawArg(row.City),
			rawArg(row.Country),
			rawArg(row.SignupDate),
			rawArg(row.FavoriteTeam),
			rawArg(row.MembershipTier),
			rawArg(row.Gender),
			row.LoadedAt,
		)
		if err != nil {
			return fmt.Errorf("failed to insert staging customer row %d: %w", i, err)
		}
	}

	slog.Debug("appended staging customers", "count", len(rows))
	return tx.Commit()
}

// AppendRawTransactions appends staging transaction rows.
func (s *SQLiteStorage) AppendRawTransactions(ctx context.Context, rows []model.RawTransaction) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if len(rows) == 0 {
		return nil
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	next, err := nextRowID(ctx, tx, "raw_transactions")
	if err != nil {
		return err
	}

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO raw_transactions (
			_row_id, transaction_id, customer_id, timestamp, amount,
			currency, category, merchant, description, _load_timestamp
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return fmt.Errorf("failed to prepare statement: %w", err)
	}
	defer func() { _ = stmt.Close() }()

	for i, row := range rows {
		_, err = stmt.ExecContext(ctx,
			next+int64(i),
			rawArg(row.TransactionID),
			rawArg(row.CustomerID),
			rawArg(row.Timestamp),
			rawArg(row.Amount),
			rawArg(row.Currency),
			rawArg(row.Category),
			rawArg(row.Merchant),
			rawArg(row.Description),
			row.LoadedAt,
		)
		if err != nil {
			return fmt.Errorf("failed to insert staging transaction row %d: %w", i, err)
		}
	}

	slog.Debug("appended staging transactions", "count", len(rows))
	return tx.Commit()
}

// AppendRawSentiment appends staging sentiment rows.
func (s *SQLiteStorage) AppendRawSentiment(ctx context.Context, rows []model.RawSentiment) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if len(rows) == 0 {
		return nil
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	next, err := nextRowID(ctx, tx, "raw_sentiment")
	if err != nil {
		return err
	}

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO raw_sentiment (
			_row_id, id, user, source, text, published_at, topic,
			tags, sentiment_score, engagement, _load_timestamp
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return fmt.Errorf("failed to prepare statement: %w", err)
	}
	defer func() { _ = stmt.Close() }()

	for i, row := range rows {
		_, err = stmt.ExecContext(ctx,
			next+int64(i),
			rawArg(row.ID),
			rawArg(row.User),
			rawArg(row.Source),
			rawArg(row.Text),
			rawArg(row.PublishedAt),
			rawArg(row.Topic),
			rawArg(row.Tags),
			rawArg(row.SentimentScore),
			rawArg(row.Engagement),
			row.LoadedAt,
		)
		if err != nil {
			return fmt.Errorf("failed to insert staging sentiment row %d: %w", i, err)
		}
	}

	slog.Debug("appended staging sentiment", "count", len(rows))
	return tx.Commit()
}

// GetRawCustomers returns every staging customer row in sequence order.
func (s *SQLiteStorage) GetRawCustomers(ctx context.Context) ([]model.RawCustomer, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT _row_id, customer_id, name, email, age, city, country,
		       signup_date, favorite_team, membership_tier, gender, _load_timestamp
		FROM raw_customers
		ORDER BY _row_id`)
	if err != nil {
		return nil, fmt.Errorf("failed to query staging customers: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var out []model.RawCustomer
	for rows.Next() {
		var (
			r                                                model.RawCustomer
			customerID, name, email, age, city, country      sql.NullString
			signupDate, favoriteTeam, membershipTier, gender sql.NullString
		)
		if err := rows.Scan(&r.RowID, &customerID, &name, &email, &age, &city,
			&country, &signupDate, &favoriteTeam, &membershipTier, &gender, &r.LoadedAt); err != nil {
			return nil, fmt.Errorf("failed to scan staging customer: %w", err)
		}
		r.CustomerID = scanRaw(customerID)
		r.Name = scanRaw(name)
		r.Email = scanRaw(email)
		r.Age = scanRaw(age)
		r.City = scanRaw(city)
		r.Country = scanRaw(country)
		r.SignupDate = scanRaw(signupDate)
		r.FavoriteTeam = scanRaw(favoriteTeam)
		r.MembershipTier = scanRaw(membershipTier)
		r.Gender = scanRaw(gender)
		out = append(out, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating staging customers: %w", err)
	}
	return out, nil
}

// GetRawTransactions returns every staging transaction row in sequence order.
func (s *SQLiteStorage) GetRawTransactions(ctx context.Context) ([]model.RawTransaction, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT _row_id, transaction_id, customer_id, timestamp, amount,
		       currency, category, merchant, description, _load_timestamp
		FROM raw_transactions
		ORDER BY _row_id`)
	if err != nil {
		return nil, fmt.Errorf("failed to query staging transactions: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var out []model.RawTransaction
	for rows.Next() {
		var (
			r                                            model.RawTransaction
			transactionID, customerID, timestamp, amount sql.NullString
			currency, category, merchant, description    sql.NullString
		)
		if err := rows.Scan(&r.RowID, &transactionID, &customerID, &timestamp,
			&amount, &currency, &category, &merchant, &description, &r.LoadedAt); err != nil {
			return nil, fmt.Errorf("failed to scan staging transaction: %w", err)
		}
		r.TransactionID = scanRaw(transactionID)
		r.CustomerID = scanRaw(customerID)
		r.Timestamp = scanRaw(timestamp)
		r.Amount = scanRaw(amount)
		r.Currency = scanRaw(currency)
		r.Category = scanRaw(category)
		r.Merchant = scanRaw(merchant)
		r.Description = scanRaw(description)
		out = append(out, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating staging transactions: %w", err)
	}
	return out, nil
}

// GetRawSentiment returns every staging sentiment row in sequence order.
func (s *SQLiteStorage) GetRawSentiment(ctx context.Context) ([]model.RawSentiment, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT _row_id, id, user, source, text, published_at, topic,
		       tags, sentiment_score, engagement, _load_timestamp
		FROM raw_sentiment
		ORDER BY _row_id`)
	if err != nil {
		return nil, fmt.Errorf("failed to query staging sentiment: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var out []model.RawSentiment
	for rows.Next() {
		var (
			r                                          model.RawSentiment
			id, user, source, text, publishedAt, topic sql.NullString
			tags, sentimentScore, engagement           sql.NullString
		)
		if err := rows.Scan(&r.RowID, &id, &user, &source, &text, &publishedAt,
			&topic, &tags, &sentimentScore, &engagement, &r.LoadedAt); err != nil {
			return nil, fmt.Errorf("failed to scan staging sentiment: %w", err)
		}
		r.ID = scanRaw(id)
		r.User = scanRaw(user)
		r.Source = scanRaw(source)
		r.Text = scanRaw(text)
		r.PublishedAt = scanRaw(publishedAt)
		r.Topic = scanRaw(topic)
		r.Tags = scanRaw(tags)
		r.SentimentScore = scanRaw(sentimentScore)
		r.Engagement = scanRaw(engagement)
		out = append(out, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating staging sentiment: %w", err)
	}
	return out, nil
}
