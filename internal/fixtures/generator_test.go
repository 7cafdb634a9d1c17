package fixtures

import (
	"encoding/csv"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func readCSVFile(t *testing.T, path string) [][]string {
	t.Helper()
	f, err := os.Open(path)
	require.NoError(t, err)
	defer func() { _ = f.Close() }()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1
	records, err := reader.ReadAll()
	require.NoError(t, err)
	return records
}

func TestGenerateAllIsDeterministic(t *testing.T) {
	dir1 := t.TempDir()
	dir2 := t.TempDir()

	require.NoError(t, New(dir1, DefaultSeed).GenerateAll())
	require.NoError(t, New(dir2, DefaultSeed).GenerateAll())

	for _, name := range []string{"customers.csv", "transactions.csv", "sentiment.json"} {
		a, err := os.ReadFile(filepath.Join(dir1, name))
		require.NoError(t, err)
		b, err := os.ReadFile(filepath.Join(dir2, name))
		require.NoError(t, err)
		assert.Equal(t, a, b, "%s differs between runs with the same seed", name)
	}
}

func TestGenerateCustomersShape(t *testing.T) {
	dir := t.TempDir()
	g := New(dir, DefaultSeed)
	_, err := g.GenerateCustomers()
	require.NoError(t, err)

	records := readCSVFile(t, filepath.Join(dir, "customers.csv"))
	require.NotEmpty(t, records)
	assert.Equal(t, []string{
		"customer_id", "name", "email", "age", "city", "country",
		"signup_date", "favorite_team", "membership_tier", "gender",
	}, records[0])

	// 200 customers plus 4 near-duplicate rows.
	assert.Len(t, records, 1+customerCount+4)

	ids := make(map[string]int)
	for _, rec := range records[1:] {
		ids[rec[0]]++
	}
	duplicated := 0
	for _, n := range ids {
		if n > 1 {
			duplicated++
		}
	}
	assert.Positive(t, duplicated, "expected at least one duplicated customer_id")
}

func TestGenerateTransactionsShape(t *testing.T) {
	dir := t.TempDir()
	g := New(dir, DefaultSeed)
	customers, err := g.GenerateCustomers()
	require.NoError(t, err)
	require.NoError(t, g.GenerateTransactions(customers))

	records := readCSVFile(t, filepath.Join(dir, "transactions.csv"))
	// 2500 transactions plus 5 duplicates plus 5 orphans.
	assert.Len(t, records, 1+transactionCount+10)

	knownIDs := make(map[string]bool, len(customers))
	for _, c := range customers {
		knownIDs[c.customerID] = true
	}

	orphans := 0
	for _, rec := range records[1:] {
		if !knownIDs[rec[1]] {
			orphans++
		}
	}
	assert.Equal(t, 5, orphans)
}

func TestGenerateSentimentShape(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, New(dir, DefaultSeed).GenerateSentiment())

	data, err := os.ReadFile(filepath.Join(dir, "sentiment.json"))
	require.NoError(t, err)

	var items []map[string]any
	require.NoError(t, json.Unmarshal(data, &items))

	// 115 users posting 2-3 times each.
	assert.GreaterOrEqual(t, len(items), 2*sentimentUsers)
	assert.LessOrEqual(t, len(items), 3*sentimentUsers)

	ids := make(map[string]int)
	var missingScore, nullEngagement int
	for _, item := range items {
		id, ok := item["id"].(string)
		require.True(t, ok)
		ids[id]++

		if item["sentiment_score"] == nil {
			missingScore++
		}
		if item["engagement"] == nil {
			nullEngagement++
		}
	}

	duplicated := 0
	for _, n := range ids {
		if n > 1 {
			duplicated++
		}
	}
	assert.Positive(t, duplicated, "expected duplicate post ids")
	assert.Positive(t, missingScore, "expected some null sentiment scores")
	assert.Positive(t, nullEngagement, "expected some null engagement objects")
}
