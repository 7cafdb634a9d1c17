// Package validate implements the read-only data-quality engine and the
// quality report it assembles.
package validate

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// Report is the full quality report for one pipeline run: a raw half
// computed before the transform and a transformed half computed after.
// A report is built fresh on every pass and never merged across runs.
type Report struct {
	Timestamp       time.Time               `json:"timestamp"`
	RawData         map[string]*TableResult `json:"raw_data,omitempty"`
	TransformedData map[string]*TableResult `json:"transformed_data,omitempty"`
	Issues          []string                `json:"issues"`
}

// TableResult is the diagnostic bundle for one table.
type TableResult struct {
	HighNullColumns      map[string]NullRate `json:"high_null_columns,omitempty"`
	Duplicates           *DuplicateCheck     `json:"duplicates,omitempty"`
	OrphanKeys           *OrphanCheck        `json:"orphan_keys,omitempty"`
	ReferentialIntegrity *IntegrityCheck     `json:"referential_integrity,omitempty"`
	CustomerIDUnique     *bool               `json:"customer_id_unique,omitempty"`
	Error                string              `json:"error,omitempty"`
	Columns              []string            `json:"columns,omitempty"`
	RowCount             int                 `json:"row_count"`
}

// NullRate flags one column whose null rate exceeded the warning threshold.
type NullRate struct {
	Warning   string  `json:"warning"`
	NullCount int     `json:"null_count"`
	Rate      float64 `json:"null_rate"`
}

// DuplicateCheck reports natural-key groups appearing more than once.
type DuplicateCheck struct {
	Error      string           `json:"error,omitempty"`
	Duplicates []DuplicateEntry `json:"duplicates,omitempty"`
	Count      int              `json:"count"`
	Found      bool             `json:"found"`
}

// DuplicateEntry is one duplicated key and its occurrence count.
type DuplicateEntry struct {
	Key         string `json:"key"`
	Occurrences int    `json:"occurrences"`
}

// OrphanCheck reports raw foreign keys with no match in the raw parent table.
type OrphanCheck struct {
	Error string `json:"error,omitempty"`
	Note  string `json:"note"`
	Count int    `json:"count"`
	Found bool   `json:"found"`
}

// IntegrityCheck reports cleaned fact rows whose foreign key does not
// resolve against the cleaned dimension.
type IntegrityCheck struct {
	Error       string `json:"error,omitempty"`
	Note        string `json:"note"`
	OrphanCount int    `json:"orphan_count"`
	Valid       bool   `json:"valid"`
}

// WriteFile serializes the report as indented JSON.
func (r *Report) WriteFile(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0750); err != nil {
		return fmt.Errorf("failed to create report directory: %w", err)
	}

	data, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal quality report: %w", err)
	}

	if err := os.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("failed to write quality report: %w", err)
	}
	return nil
}
