package transform

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"matchday/internal/model"
)

func rawCustomer(rowID int64, loadedAt time.Time, id string) model.RawCustomer {
	return model.RawCustomer{
		CustomerID: model.Raw(id),
		Name:       model.Raw("Marco Rossi"),
		RowID:      rowID,
		LoadedAt:   loadedAt,
	}
}

func TestDedupCustomersKeepsEarliestLoad(t *testing.T) {
	t1 := time.Date(2026, 1, 1, 10, 0, 0, 0, time.UTC)
	t2 := t1.Add(time.Hour)

	tests := []struct {
		name      string
		rows      []model.RawCustomer
		wantRowID int64
	}{
		{
			name: "earlier batch wins regardless of order",
			rows: []model.RawCustomer{
				rawCustomer(5, t2, "CUST-0001"),
				rawCustomer(9, t1, "CUST-0001"),
			},
			wantRowID: 9,
		},
		{
			name: "same batch falls back to sequence number",
			rows: []model.RawCustomer{
				rawCustomer(7, t1, "CUST-0001"),
				rawCustomer(3, t1, "CUST-0001"),
			},
			wantRowID: 3,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DedupCustomers(tt.rows)
			require.Len(t, got, 1)
			assert.Equal(t, tt.wantRowID, got[0].RowID)
		})
	}
}

func TestDedupCustomersDiscardsNullKeys(t *testing.T) {
	t1 := time.Date(2026, 1, 1, 10, 0, 0, 0, time.UTC)
	rows := []model.RawCustomer{
		rawCustomer(0, t1, "CUST-0002"),
		{Name: model.Raw("No Key"), RowID: 1, LoadedAt: t1},
		rawCustomer(2, t1, "CUST-0001"),
	}

	got := DedupCustomers(rows)
	require.Len(t, got, 2)
	assert.Equal(t, "CUST-0001", got[0].CustomerID.String)
	assert.Equal(t, "CUST-0002", got[1].CustomerID.String)
}

func TestDedupCustomersTreatsKeysVerbatim(t *testing.T) {
	t1 := time.Date(2026, 1, 1, 10, 0, 0, 0, time.UTC)
	rows := []model.RawCustomer{
		rawCustomer(0, t1, "CUST-0001"),
		rawCustomer(1, t1, "cust-0001"),
		rawCustomer(2, t1, " CUST-0001"),
	}

	// Case and whitespace variants are distinct keys at this stage.
	got := DedupCustomers(rows)
	assert.Len(t, got, 3)
}

func TestDedupCustomersIsIdempotent(t *testing.T) {
	t1 := time.Date(2026, 1, 1, 10, 0, 0, 0, time.UTC)
	rows := []model.RawCustomer{
		rawCustomer(0, t1.Add(time.Hour), "CUST-0001"),
		rawCustomer(1, t1, "CUST-0001"),
		rawCustomer(2, t1, "CUST-0002"),
	}

	once := DedupCustomers(rows)
	twice := DedupCustomers(once)
	assert.Equal(t, once, twice)
}

func TestNormalizeCustomer(t *testing.T) {
	r := model.RawCustomer{
		CustomerID:     model.Raw("CUST-0042"),
		Name:           model.Raw("  Marco ROSSI "),
		Email:          model.Raw(" Marco.Rossi@GMAIL.com"),
		Age:            model.Raw("34"),
		City:           model.Raw("MILAN"),
		Country:        model.Raw("Italy"),
		SignupDate:     model.Raw("2023-06-15"),
		FavoriteTeam:   model.Raw("AC Milan"),
		MembershipTier: model.Raw("Gold "),
	}

	c := NormalizeCustomer(r)

	assert.Equal(t, "CUST-0042", c.ID)
	assert.Equal(t, "marco rossi", c.Name)
	require.NotNil(t, c.Email)
	assert.Equal(t, "marco.rossi@gmail.com", *c.Email)
	require.NotNil(t, c.Age)
	assert.Equal(t, 34, *c.Age)
	require.NotNil(t, c.City)
	assert.Equal(t, "milan", *c.City)
	require.NotNil(t, c.Country)
	assert.Equal(t, "Italy", *c.Country)
	require.NotNil(t, c.SignupDate)
	assert.Equal(t, time.Date(2023, 6, 15, 0, 0, 0, 0, time.UTC), *c.SignupDate)
	require.NotNil(t, c.FavoriteTeam)
	assert.Equal(t, "ac milan", *c.FavoriteTeam)
	require.NotNil(t, c.MembershipTier)
	assert.Equal(t, "gold", *c.MembershipTier)
}

func TestNormalizeCustomerFallbacks(t *testing.T) {
	c := NormalizeCustomer(model.RawCustomer{
		CustomerID: model.Raw("CUST-0001"),
		Age:        model.Raw("thirty"),
		SignupDate: model.Raw("06/15/2023"),
	})

	assert.Equal(t, model.UnknownName, c.Name)
	assert.Nil(t, c.Age)
	assert.Nil(t, c.SignupDate)
	assert.Nil(t, c.Email)
}
