package ingest

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadSentimentJSON(t *testing.T) {
	path := writeFile(t, "sentiment.json", `[
		{
			"id": "SENT-00001",
			"user": "@rossonero99",
			"source": "twitter",
			"text": "Forza Milan!",
			"published_at": "2025-09-14T18:30:00Z",
			"topic": "AC Milan",
			"tags": ["football", "ac_milan"],
			"sentiment_score": 0.847,
			"engagement": {"likes": 1250, "shares": 89, "comments": 34}
		},
		{
			"id": "SENT-00002",
			"user": null,
			"text": "",
			"sentiment_score": null
		}
	]`)

	rows, err := ReadSentimentJSON(path, batchTime())
	require.NoError(t, err)
	require.Len(t, rows, 2)

	first := rows[0]
	assert.Equal(t, "SENT-00001", first.ID.String)
	assert.Equal(t, "@rossonero99", first.User.String)
	assert.True(t, first.LoadedAt.Equal(batchTime()))

	// Numbers keep their textual form; lists and objects keep their JSON
	// encoding.
	assert.Equal(t, "0.847", first.SentimentScore.String)
	assert.Equal(t, `["football","ac_milan"]`, first.Tags.String)
	assert.JSONEq(t, `{"likes":1250,"shares":89,"comments":34}`, first.Engagement.String)

	second := rows[1]
	assert.False(t, second.User.Valid, "JSON null stages as absent")
	assert.False(t, second.Text.Valid, "empty string stages as absent")
	assert.False(t, second.SentimentScore.Valid)
	assert.False(t, second.Topic.Valid, "missing field stages as absent")
}

func TestReadSentimentJSONMalformed(t *testing.T) {
	path := writeFile(t, "sentiment.json", `{"not": "an array"}`)
	_, err := ReadSentimentJSON(path, batchTime())
	require.Error(t, err)
}

func TestReadSentimentJSONMissingFile(t *testing.T) {
	_, err := ReadSentimentJSON(filepath.Join(t.TempDir(), "missing.json"), batchTime())
	require.Error(t, err)
}
