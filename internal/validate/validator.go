package validate

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"matchday/internal/common"
	"matchday/internal/config"
	"matchday/internal/service"
)

// Validator computes data-quality diagnostics over staging and cleaned
// tables. Every check is a pure read, validated independently: a query
// failure surfaces as an error field on that check's result and never
// aborts the pass.
type Validator struct {
	now     func() time.Time
	storage service.Storage
	report  *Report
	cfg     config.Validation
}

// New creates a validator against the given store and thresholds.
func New(storage service.Storage, cfg config.Validation) *Validator {
	v := &Validator{
		storage: storage,
		cfg:     cfg,
		now:     time.Now,
	}
	v.report = &Report{Timestamp: v.now(), Issues: []string{}}
	return v
}

// Report returns the report assembled so far.
func (v *Validator) Report() *Report {
	return v.report
}

// ValidateRaw profiles the three staging tables, detects duplicate natural
// keys, and counts raw orphan foreign keys. Run before the transform.
func (v *Validator) ValidateRaw(ctx context.Context) map[string]*TableResult {
	slog.Info("Validating raw data")

	results := map[string]*TableResult{
		"customers":    v.profileTable(ctx, "raw_customers"),
		"transactions": v.profileTable(ctx, "raw_transactions"),
		"sentiment":    v.profileTable(ctx, "raw_sentiment"),
	}

	results["customers"].Duplicates = v.findDuplicates(ctx, "raw_customers", "customer_id")
	results["transactions"].Duplicates = v.findDuplicates(ctx, "raw_transactions", "transaction_id")
	results["sentiment"].Duplicates = v.findDuplicates(ctx, "raw_sentiment", "id")

	results["transactions"].OrphanKeys = v.findRawOrphans(ctx)

	v.checkExpectedRowCount("raw_customers", results["customers"], v.cfg.MinExpectedCustomers)
	v.checkExpectedRowCount("raw_transactions", results["transactions"], v.cfg.MinExpectedTransactions)

	v.report.RawData = results
	return results
}

// ValidateTransformed profiles the cleaned tables, checks referential
// integrity of the transaction fact, and checks customer key uniqueness.
// Run after the transform.
func (v *Validator) ValidateTransformed(ctx context.Context) map[string]*TableResult {
	slog.Info("Validating transformed data")

	results := map[string]*TableResult{
		"dim_customers":     v.profileTable(ctx, "dim_customers"),
		"fact_transactions": v.profileTable(ctx, "fact_transactions"),
		"customer_profile":  v.profileTable(ctx, "customer_profile"),
	}

	results["fact_transactions"].ReferentialIntegrity = v.checkReferentialIntegrity(ctx)
	v.checkCustomerUniqueness(ctx, results["dim_customers"])

	v.report.TransformedData = results
	return results
}

// profileTable computes row count, the public column list, and per-column
// null rates, flagging columns strictly above the warning threshold.
func (v *Validator) profileTable(ctx context.Context, table string) *TableResult {
	rowCount, err := v.storage.RowCount(ctx, table)
	if err != nil {
		common.LogError(err, "Failed to validate table", common.Fields{"table": table})
		return &TableResult{Error: err.Error()}
	}

	columns, err := v.storage.Columns(table)
	if err != nil {
		return &TableResult{Error: err.Error()}
	}

	result := &TableResult{
		RowCount: rowCount,
		Columns:  columns,
	}

	for _, col := range columns {
		nullCount, err := v.storage.NullCount(ctx, table, col)
		if err != nil {
			common.LogError(err, "Failed to count nulls", common.Fields{"table": table, "column": col})
			result.Error = err.Error()
			return result
		}

		// An empty table yields rate 0 for every column, not a division
		// by zero.
		var rate float64
		if rowCount > 0 {
			rate = float64(nullCount) / float64(rowCount)
		}

		if rate > v.cfg.NullRateWarning {
			if result.HighNullColumns == nil {
				result.HighNullColumns = make(map[string]NullRate)
			}
			result.HighNullColumns[col] = NullRate{
				NullCount: nullCount,
				Rate:      rate,
				Warning:   fmt.Sprintf("High null rate: %.1f%%", rate*100),
			}
		}
	}

	return result
}

// findDuplicates reports key groups occurring more than once, descending
// by occurrence count.
func (v *Validator) findDuplicates(ctx context.Context, table, keyColumn string) *DuplicateCheck {
	groups, err := v.storage.DuplicateKeys(ctx, table, keyColumn)
	if err != nil {
		common.LogError(err, "Failed to find duplicates", common.Fields{"table": table})
		return &DuplicateCheck{Error: err.Error()}
	}

	if len(groups) == 0 {
		return &DuplicateCheck{Found: false, Count: 0}
	}

	entries := make([]DuplicateEntry, 0, len(groups))
	for _, g := range groups {
		entries = append(entries, DuplicateEntry{Key: g.Key, Occurrences: g.Occurrences})
	}
	return &DuplicateCheck{Found: true, Count: len(groups), Duplicates: entries}
}

// findRawOrphans counts staging transactions referencing a customer id
// absent from staging customers, compared un-normalized. This deliberately
// skips the cleaning rules, so an id differing only by case or whitespace
// is reported as orphaned here while the cleaned integrity check can still
// come back valid.
func (v *Validator) findRawOrphans(ctx context.Context) *OrphanCheck {
	count, err := v.storage.RawOrphanTransactionCount(ctx)
	if err != nil {
		common.LogError(err, "Failed to find orphan keys", nil)
		return &OrphanCheck{Error: err.Error()}
	}

	note := "None"
	if count > 0 {
		note = "Transactions with non-existent customer_id"
	}
	return &OrphanCheck{Found: count > 0, Count: count, Note: note}
}

// checkReferentialIntegrity verifies that every cleaned fact row resolves
// against the cleaned customer dimension.
func (v *Validator) checkReferentialIntegrity(ctx context.Context) *IntegrityCheck {
	count, err := v.storage.CleanOrphanTransactionCount(ctx)
	if err != nil {
		common.LogError(err, "Failed to check referential integrity", nil)
		return &IntegrityCheck{Error: err.Error()}
	}

	note := "All foreign keys valid"
	if count > 0 {
		note = fmt.Sprintf("%d orphan rows", count)
	}
	return &IntegrityCheck{Valid: count == 0, OrphanCount: count, Note: note}
}

// checkCustomerUniqueness compares total and distinct-key row counts.
func (v *Validator) checkCustomerUniqueness(ctx context.Context, result *TableResult) {
	total, err := v.storage.RowCount(ctx, "dim_customers")
	if err != nil {
		if result.Error == "" {
			result.Error = err.Error()
		}
		return
	}
	distinct, err := v.storage.DistinctCount(ctx, "dim_customers", "customer_id")
	if err != nil {
		if result.Error == "" {
			result.Error = err.Error()
		}
		return
	}

	unique := total == distinct
	result.CustomerIDUnique = &unique
}

// checkExpectedRowCount appends an advisory issue when a staging table
// falls below its expected minimum. Advisory only; never a failure.
func (v *Validator) checkExpectedRowCount(table string, result *TableResult, minimum int) {
	if result.Error != "" || minimum <= 0 {
		return
	}
	if result.RowCount < minimum {
		issue := fmt.Sprintf("%s: row count %d below expected minimum %d", table, result.RowCount, minimum)
		v.report.Issues = append(v.report.Issues, issue)
		slog.Warn("Row count below expected minimum", "table", table, "rows", result.RowCount, "minimum", minimum)
	}
}
