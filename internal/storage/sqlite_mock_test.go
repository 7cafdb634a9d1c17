package storage

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"

	"matchday/internal/model"
)

// Mock-backed tests cover failure paths a real database will not produce
// on demand.

func createMockStorage(t *testing.T) (*SQLiteStorage, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("Failed to create mock: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })
	return &SQLiteStorage{db: db, dbPath: "mock"}, mock
}

func TestRowCountQueryFailure(t *testing.T) {
	store, mock := createMockStorage(t)
	queryErr := errors.New("disk I/O error")
	mock.ExpectQuery("SELECT COUNT").WillReturnError(queryErr)

	_, err := store.RowCount(context.Background(), "raw_customers")
	if !errors.Is(err, queryErr) {
		t.Errorf("Expected wrapped query error, got %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("Unmet expectations: %v", err)
	}
}

func TestSaveCustomersRollsBackOnInsertFailure(t *testing.T) {
	store, mock := createMockStorage(t)
	insertErr := errors.New("database is locked")

	mock.ExpectBegin()
	mock.ExpectPrepare("INSERT INTO dim_customers")
	mock.ExpectExec("INSERT INTO dim_customers").WillReturnError(insertErr)
	mock.ExpectRollback()

	err := store.SaveCustomers(context.Background(), []model.Customer{
		{ID: "CUST-0001", Name: "marco rossi"},
	})
	if !errors.Is(err, insertErr) {
		t.Errorf("Expected wrapped insert error, got %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("Unmet expectations: %v", err)
	}
}

func TestAppendRawCustomersSequenceQueryFailure(t *testing.T) {
	store, mock := createMockStorage(t)
	seqErr := errors.New("no such table: raw_customers")

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT COALESCE").WillReturnError(seqErr)
	mock.ExpectRollback()

	err := store.AppendRawCustomers(context.Background(), []model.RawCustomer{
		{CustomerID: model.Raw("CUST-0001")},
	})
	if !errors.Is(err, seqErr) {
		t.Errorf("Expected wrapped sequence error, got %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("Unmet expectations: %v", err)
	}
}
