package ingest

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"matchday/internal/common"
	"matchday/internal/model"
)

// ReadSentimentJSON parses the sentiment source, a JSON array of objects.
// Scalar values stage as their string form with numbers kept verbatim;
// lists and objects stage as their JSON encoding; nulls stage as absent.
func ReadSentimentJSON(path string, loadedAt time.Time) ([]model.RawSentiment, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrUnreadableSource, err)
	}

	decoder := json.NewDecoder(bytes.NewReader(data))
	decoder.UseNumber()

	var posts []map[string]any
	if err := decoder.Decode(&posts); err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrUnreadableSource, err)
	}

	rows := make([]model.RawSentiment, 0, len(posts))
	for _, post := range posts {
		rows = append(rows, model.RawSentiment{
			ID:             jsonValue(post, "id"),
			User:           jsonValue(post, "user"),
			Source:         jsonValue(post, "source"),
			Text:           jsonValue(post, "text"),
			PublishedAt:    jsonValue(post, "published_at"),
			Topic:          jsonValue(post, "topic"),
			Tags:           jsonValue(post, "tags"),
			SentimentScore: jsonValue(post, "sentiment_score"),
			Engagement:     jsonValue(post, "engagement"),
			LoadedAt:       loadedAt,
		})
	}
	return rows, nil
}

func jsonValue(obj map[string]any, field string) model.RawString {
	v, ok := obj[field]
	if !ok || v == nil {
		return model.RawString{}
	}

	switch val := v.(type) {
	case string:
		return model.Raw(val)
	case json.Number:
		return model.Raw(val.String())
	case bool:
		if val {
			return model.Raw("true")
		}
		return model.Raw("false")
	default:
		// Lists and nested objects keep their JSON encoding so nothing is
		// lost before the transform decides what to do with them.
		encoded, err := json.Marshal(val)
		if err != nil {
			return model.RawString{}
		}
		return model.Raw(string(encoded))
	}
}
