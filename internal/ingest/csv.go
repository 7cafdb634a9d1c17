package ingest

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"time"

	"matchday/internal/common"
	"matchday/internal/model"
)

// ReadCustomersCSV parses the customers source. Header names are matched
// against the known staging columns; unknown columns are dropped, missing
// ones stage as absent. Blank cells stage as absent too.
func ReadCustomersCSV(path string, loadedAt time.Time) ([]model.RawCustomer, error) {
	records, err := readCSV(path)
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("%w: %s has no header row", common.ErrUnreadableSource, path)
	}

	idx := headerIndex(records[0])
	rows := make([]model.RawCustomer, 0, len(records)-1)
	for _, rec := range records[1:] {
		rows = append(rows, model.RawCustomer{
			CustomerID:     cell(rec, idx, "customer_id"),
			Name:           cell(rec, idx, "name"),
			Email:          cell(rec, idx, "email"),
			Age:            cell(rec, idx, "age"),
			City:           cell(rec, idx, "city"),
			Country:        cell(rec, idx, "country"),
			SignupDate:     cell(rec, idx, "signup_date"),
			FavoriteTeam:   cell(rec, idx, "favorite_team"),
			MembershipTier: cell(rec, idx, "membership_tier"),
			Gender:         cell(rec, idx, "gender"),
			LoadedAt:       loadedAt,
		})
	}
	return rows, nil
}

// ReadTransactionsCSV parses the transactions source.
func ReadTransactionsCSV(path string, loadedAt time.Time) ([]model.RawTransaction, error) {
	records, err := readCSV(path)
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("%w: %s has no header row", common.ErrUnreadableSource, path)
	}

	idx := headerIndex(records[0])
	rows := make([]model.RawTransaction, 0, len(records)-1)
	for _, rec := range records[1:] {
		rows = append(rows, model.RawTransaction{
			TransactionID: cell(rec, idx, "transaction_id"),
			CustomerID:    cell(rec, idx, "customer_id"),
			Timestamp:     cell(rec, idx, "timestamp"),
			Amount:        cell(rec, idx, "amount"),
			Currency:      cell(rec, idx, "currency"),
			Category:      cell(rec, idx, "category"),
			Merchant:      cell(rec, idx, "merchant"),
			Description:   cell(rec, idx, "description"),
			LoadedAt:      loadedAt,
		})
	}
	return rows, nil
}

func readCSV(path string) ([][]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrUnreadableSource, err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	// Source files are messy; short rows are padded with absent values
	// rather than rejected.
	reader.FieldsPerRecord = -1

	var records [][]string
	for {
		rec, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %v", common.ErrUnreadableSource, err)
		}
		records = append(records, rec)
	}
	return records, nil
}

func headerIndex(header []string) map[string]int {
	idx := make(map[string]int, len(header))
	for i, name := range header {
		idx[name] = i
	}
	return idx
}

func cell(record []string, idx map[string]int, column string) model.RawString {
	i, ok := idx[column]
	if !ok || i >= len(record) {
		return model.RawString{}
	}
	return model.Raw(record[i])
}
