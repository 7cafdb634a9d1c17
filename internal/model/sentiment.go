package model

import "time"

// SentimentPost is one row of the fact_sentiment table. All attributes
// besides the post id are optional: parse failures null the field rather
// than rejecting the row.
type SentimentPost struct {
	PublishedAt *time.Time
	UserName    *string
	Topic       *string
	Score       *float64
	Engagement  *int
	ID          string
	SourceRowID int64
}
