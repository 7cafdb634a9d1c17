// Package config provides configuration utilities for the application.
package config

import "github.com/spf13/viper"

// Default thresholds for the validation and transform engines. All of them
// can be overridden via config file, flags, or MATCHDAY_* environment
// variables.
const (
	// DefaultNullRateWarning flags a column when its null rate is strictly
	// above this fraction.
	DefaultNullRateWarning = 0.30

	// DefaultMinAmount and DefaultMaxAmount are exclusive bounds on a valid
	// transaction amount. A staged amount at exactly either bound is dropped.
	DefaultMinAmount = -1000.0
	DefaultMaxAmount = 50000.0

	// Advisory row-count floors. Falling below these adds a warning to the
	// quality report; it never fails a run.
	DefaultMinExpectedCustomers    = 190
	DefaultMinExpectedTransactions = 2400
)

// Category constants used by the customer profile aggregation.
const (
	// TicketCategory is the reserved match-ticket category counted on its own
	// and inside the sports-affinity numerator.
	TicketCategory = "match_tickets"

	// SportsKeyword marks a category as sports-related when contained
	// anywhere in the category name.
	SportsKeyword = "sports"
)

// Validation holds the tunable thresholds consumed by the engines.
type Validation struct {
	NullRateWarning         float64
	MinAmount               float64
	MaxAmount               float64
	MinExpectedCustomers    int
	MinExpectedTransactions int
}

// DefaultValidation returns the built-in thresholds.
func DefaultValidation() Validation {
	return Validation{
		NullRateWarning:         DefaultNullRateWarning,
		MinAmount:               DefaultMinAmount,
		MaxAmount:               DefaultMaxAmount,
		MinExpectedCustomers:    DefaultMinExpectedCustomers,
		MinExpectedTransactions: DefaultMinExpectedTransactions,
	}
}

// SetDefaults registers the validation defaults with viper so config files
// and environment variables can override them.
func SetDefaults() {
	viper.SetDefault("validation.null_rate_warning", DefaultNullRateWarning)
	viper.SetDefault("validation.min_amount", DefaultMinAmount)
	viper.SetDefault("validation.max_amount", DefaultMaxAmount)
	viper.SetDefault("validation.min_expected_customers", DefaultMinExpectedCustomers)
	viper.SetDefault("validation.min_expected_transactions", DefaultMinExpectedTransactions)
	viper.SetDefault("database.path", "output/matchday.db")
	viper.SetDefault("output.dir", "output")
	viper.SetDefault("data.customers", "data/customers.csv")
	viper.SetDefault("data.transactions", "data/transactions.csv")
	viper.SetDefault("data.sentiment", "data/sentiment.json")
}

// ValidationFromViper reads the thresholds from the active viper instance.
func ValidationFromViper() Validation {
	return Validation{
		NullRateWarning:         viper.GetFloat64("validation.null_rate_warning"),
		MinAmount:               viper.GetFloat64("validation.min_amount"),
		MaxAmount:               viper.GetFloat64("validation.max_amount"),
		MinExpectedCustomers:    viper.GetInt("validation.min_expected_customers"),
		MinExpectedTransactions: viper.GetInt("validation.min_expected_transactions"),
	}
}

// DatabasePath returns the SQLite database path, with ~ and env expansion.
func DatabasePath() string {
	return ExpandPath(viper.GetString("database.path"))
}

// OutputDir returns the directory for report files.
func OutputDir() string {
	return ExpandPath(viper.GetString("output.dir"))
}
