package transform

import (
	"sort"

	"matchday/internal/model"
)

// DedupSentiment keeps the earliest-loaded staging row per non-null post id
// (load timestamp ascending, then sequence number). Output is ordered by key.
func DedupSentiment(rows []model.RawSentiment) []model.RawSentiment {
	best := make(map[string]model.RawSentiment)
	for _, r := range rows {
		if !r.ID.Valid {
			continue
		}
		key := r.ID.String
		cur, ok := best[key]
		if !ok || loadedEarlier(r.LoadedAt, r.RowID, cur.LoadedAt, cur.RowID) {
			best[key] = r
		}
	}

	keys := make([]string, 0, len(best))
	for k := range best {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	out := make([]model.RawSentiment, 0, len(best))
	for _, k := range keys {
		out = append(out, best[k])
	}
	return out
}

// BuildSentimentPosts produces the sentiment fact from staging rows. Every
// typed field nulls on parse failure; no row is ever rejected for content.
func BuildSentimentPosts(rows []model.RawSentiment) []model.SentimentPost {
	deduped := DedupSentiment(rows)

	out := make([]model.SentimentPost, 0, len(deduped))
	for _, r := range deduped {
		var score *float64
		if f, ok := parseFloat(r.SentimentScore); ok {
			rounded := round2(f)
			score = &rounded
		}

		out = append(out, model.SentimentPost{
			ID:          r.ID.String,
			UserName:    lowerTrimPtr(r.User),
			Topic:       lowerTrimPtr(r.Topic),
			Score:       score,
			Engagement:  parseIntPtr(r.Engagement),
			PublishedAt: parseTimestampPtr(r.PublishedAt),
			SourceRowID: r.RowID,
		})
	}
	return out
}
