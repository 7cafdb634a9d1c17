// Package storage provides the SQLite persistence layer for the pipeline.
package storage

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

// Validation errors.
var (
	ErrNilContext    = errors.New("context cannot be nil")
	ErrEmptyString   = errors.New("string parameter cannot be empty")
	ErrNilParameter  = errors.New("parameter cannot be nil")
	ErrUnknownTable  = errors.New("table is not in the allow-list")
	ErrUnknownColumn = errors.New("column is not in the allow-list")
)

// validateContext ensures the context is not nil.
func validateContext(ctx context.Context) error {
	if ctx == nil {
		return ErrNilContext
	}
	return nil
}

// validateString ensures a string parameter is not empty.
func validateString(s string, paramName string) error {
	if strings.TrimSpace(s) == "" {
		return fmt.Errorf("%w: %s", ErrEmptyString, paramName)
	}
	return nil
}

// validateTable ensures a table name belongs to the fixed allow-list.
// Identifiers interpolated into diagnostic SQL always pass through here
// first; input-file headers never reach a query.
func validateTable(table string) error {
	if _, ok := tableColumns[table]; !ok {
		return fmt.Errorf("%w: %s", ErrUnknownTable, table)
	}
	return nil
}

// validateColumn ensures a column belongs to the named table's allow-list.
func validateColumn(table, column string) error {
	if err := validateTable(table); err != nil {
		return err
	}
	for _, c := range tableColumns[table] {
		if c == column {
			return nil
		}
	}
	return fmt.Errorf("%w: %s.%s", ErrUnknownColumn, table, column)
}
