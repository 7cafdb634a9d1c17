// Package model defines the staging, dimension, fact, and profile types
// shared across the pipeline.
package model

import "time"

// RawString is a loosely-typed staging value: the string exactly as it
// appeared in the source file, or absent. Every coercion policy (null on
// parse failure, default substitution, row filter) is an explicit function
// over this type rather than an implicit property of weak typing.
type RawString struct {
	String string
	Valid  bool
}

// Raw wraps a source string. Empty strings are treated as absent, matching
// how blank CSV cells and JSON nulls arrive from ingestion.
func Raw(s string) RawString {
	if s == "" {
		return RawString{}
	}
	return RawString{String: s, Valid: true}
}

// Or returns the value or a default when absent.
func (r RawString) Or(def string) string {
	if !r.Valid {
		return def
	}
	return r.String
}

// RawCustomer is one staging row from the customers source. Append-only;
// duplicates by customer_id are expected and resolved at transform time.
type RawCustomer struct {
	LoadedAt       time.Time
	CustomerID     RawString
	Name           RawString
	Email          RawString
	Age            RawString
	City           RawString
	Country        RawString
	SignupDate     RawString
	FavoriteTeam   RawString
	MembershipTier RawString
	Gender         RawString
	RowID          int64
}

// RawTransaction is one staging row from the transactions source.
type RawTransaction struct {
	LoadedAt      time.Time
	TransactionID RawString
	CustomerID    RawString
	Timestamp     RawString
	Amount        RawString
	Currency      RawString
	Category      RawString
	Merchant      RawString
	Description   RawString
	RowID         int64
}

// RawSentiment is one staging row from the sentiment source.
type RawSentiment struct {
	LoadedAt       time.Time
	ID             RawString
	User           RawString
	Source         RawString
	Text           RawString
	PublishedAt    RawString
	Topic          RawString
	Tags           RawString
	SentimentScore RawString
	Engagement     RawString
	RowID          int64
}
