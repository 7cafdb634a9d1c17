package model

import "time"

// UnknownName is substituted when a staging customer row has no name.
const UnknownName = "unknown"

// Customer is one row of the dim_customers dimension: exactly one row per
// distinct non-null customer_id after deduplication.
type Customer struct {
	SignupDate     *time.Time
	Email          *string
	Age            *int
	City           *string
	Country        *string
	FavoriteTeam   *string
	MembershipTier *string
	ID             string
	Name           string
}
