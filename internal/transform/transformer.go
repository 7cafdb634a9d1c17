// Package transform implements the cleaning engine that turns staged rows
// into the dimensional model and the derived customer profile.
package transform

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"matchday/internal/config"
	"matchday/internal/service"
)

// Transformer orchestrates the transform steps against a staging store.
type Transformer struct {
	now     func() time.Time
	storage service.Storage
	cfg     config.Validation
}

// New creates a transformer with the given store and thresholds.
func New(storage service.Storage, cfg config.Validation) *Transformer {
	return &Transformer{
		storage: storage,
		cfg:     cfg,
		now:     time.Now,
	}
}

// Report is the ordered step log of one transform run.
type Report struct {
	Timestamp time.Time `json:"timestamp"`
	Steps     []string  `json:"steps"`
}

func (r *Report) step(format string, args ...any) {
	r.Steps = append(r.Steps, fmt.Sprintf(format, args...))
}

// stepError records a table-scoped failure without aborting the run.
func (r *Report) stepError(table string, err error) {
	r.Steps = append(r.Steps, fmt.Sprintf("ERROR in %s: %v", table, err))
}

// TransformAll runs every transform step in order. Step failures are
// recorded in the report and do not stop later steps, so a failed upstream
// step leaves downstream steps running against a partially-populated model.
// Only a failure to create the target tables themselves is returned as an
// error.
func (t *Transformer) TransformAll(ctx context.Context) (*Report, error) {
	slog.Info("Starting data transformation")
	report := &Report{Timestamp: t.now()}

	if err := t.storage.CreateWarehouseTables(ctx); err != nil {
		return nil, fmt.Errorf("failed to create warehouse tables: %w", err)
	}
	report.step("Tables created")

	t.loadCustomers(ctx, report)
	t.loadTransactions(ctx, report)
	t.loadSentiment(ctx, report)
	t.loadProfiles(ctx, report)

	slog.Info("Transformation complete", "steps", len(report.Steps))
	return report, nil
}

// countStep appends the post-step row count for a table, mirroring what the
// step actually left behind rather than what it attempted to insert.
func (t *Transformer) countStep(ctx context.Context, report *Report, table string) {
	n, err := t.storage.RowCount(ctx, table)
	if err != nil {
		report.stepError(table, err)
		return
	}
	report.step("%s: %d rows", table, n)
	slog.Info("Loaded table", "table", table, "rows", n)
}

func (t *Transformer) loadCustomers(ctx context.Context, report *Report) {
	slog.Info("Loading dim_customers")

	raw, err := t.storage.GetRawCustomers(ctx)
	if err != nil {
		report.stepError("dim_customers", err)
		return
	}

	customers := BuildCustomers(raw)
	if err := t.storage.SaveCustomers(ctx, customers); err != nil {
		report.stepError("dim_customers", err)
		return
	}
	t.countStep(ctx, report, "dim_customers")
}

func (t *Transformer) loadTransactions(ctx context.Context, report *Report) {
	slog.Info("Loading fact_transactions")

	raw, err := t.storage.GetRawTransactions(ctx)
	if err != nil {
		report.stepError("fact_transactions", err)
		return
	}

	// The FK filter resolves against whatever the customer step actually
	// committed, so this step must run strictly after it.
	customers, err := t.storage.GetCustomers(ctx)
	if err != nil {
		report.stepError("fact_transactions", err)
		return
	}
	dimIDs := make(map[string]struct{}, len(customers))
	for _, c := range customers {
		dimIDs[c.ID] = struct{}{}
	}

	transactions := BuildTransactions(raw, dimIDs, t.cfg, t.now())
	if err := t.storage.SaveTransactions(ctx, transactions); err != nil {
		report.stepError("fact_transactions", err)
		return
	}
	t.countStep(ctx, report, "fact_transactions")
}

func (t *Transformer) loadSentiment(ctx context.Context, report *Report) {
	slog.Info("Loading fact_sentiment")

	raw, err := t.storage.GetRawSentiment(ctx)
	if err != nil {
		report.stepError("fact_sentiment", err)
		return
	}

	posts := BuildSentimentPosts(raw)
	if err := t.storage.SaveSentimentPosts(ctx, posts); err != nil {
		report.stepError("fact_sentiment", err)
		return
	}
	t.countStep(ctx, report, "fact_sentiment")
}

func (t *Transformer) loadProfiles(ctx context.Context, report *Report) {
	slog.Info("Loading customer_profile")

	// Aggregation reads the committed model back from the store, not the
	// in-memory output of earlier steps, so it reflects partial failures.
	customers, err := t.storage.GetCustomers(ctx)
	if err != nil {
		report.stepError("customer_profile", err)
		return
	}
	transactions, err := t.storage.GetTransactions(ctx)
	if err != nil {
		report.stepError("customer_profile", err)
		return
	}

	profiles := BuildProfiles(customers, transactions)
	if err := t.storage.SaveCustomerProfiles(ctx, profiles); err != nil {
		report.stepError("customer_profile", err)
		return
	}
	t.countStep(ctx, report, "customer_profile")
}
