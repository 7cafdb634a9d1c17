package transform

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"matchday/internal/model"
)

func rawPost(rowID int64, loadedAt time.Time, id string) model.RawSentiment {
	return model.RawSentiment{
		ID:       model.Raw(id),
		User:     model.Raw("@rossonero99"),
		RowID:    rowID,
		LoadedAt: loadedAt,
	}
}

func TestDedupSentimentKeepsEarliestLoad(t *testing.T) {
	t1 := time.Date(2026, 1, 1, 10, 0, 0, 0, time.UTC)
	t2 := t1.Add(time.Hour)

	rows := []model.RawSentiment{
		rawPost(4, t2, "SENT-00001"),
		rawPost(6, t1, "SENT-00001"),
		{Text: model.Raw("no id"), RowID: 7, LoadedAt: t1},
	}

	got := DedupSentiment(rows)
	require.Len(t, got, 1)
	assert.Equal(t, int64(6), got[0].RowID)
}

func TestBuildSentimentPostsCoercion(t *testing.T) {
	r := model.RawSentiment{
		ID:             model.Raw("SENT-00001"),
		User:           model.Raw(" @CurvaSud_1899 "),
		Topic:          model.Raw("AC MILAN"),
		SentimentScore: model.Raw("0.847"),
		Engagement:     model.Raw("1250"),
		PublishedAt:    model.Raw("2025-09-14 18:30"),
	}

	got := BuildSentimentPosts([]model.RawSentiment{r})
	require.Len(t, got, 1)

	post := got[0]
	assert.Equal(t, "SENT-00001", post.ID)
	require.NotNil(t, post.UserName)
	assert.Equal(t, "@curvasud_1899", *post.UserName)
	require.NotNil(t, post.Topic)
	assert.Equal(t, "ac milan", *post.Topic)
	require.NotNil(t, post.Score)
	assert.InDelta(t, 0.85, *post.Score, 1e-9)
	require.NotNil(t, post.Engagement)
	assert.Equal(t, 1250, *post.Engagement)
	require.NotNil(t, post.PublishedAt)
	assert.Equal(t, time.Date(2025, 9, 14, 18, 30, 0, 0, time.UTC), *post.PublishedAt)
}

func TestBuildSentimentPostsNullsOnFailureNeverDrops(t *testing.T) {
	r := model.RawSentiment{
		ID:             model.Raw("SENT-00002"),
		SentimentScore: model.Raw("very positive"),
		Engagement:     model.Raw(`{"likes":1250,"shares":89}`),
		PublishedAt:    model.Raw("14-Sep-2025"),
	}

	got := BuildSentimentPosts([]model.RawSentiment{r})
	require.Len(t, got, 1)

	post := got[0]
	assert.Nil(t, post.Score)
	assert.Nil(t, post.Engagement)
	assert.Nil(t, post.PublishedAt)
	assert.Nil(t, post.UserName)
	assert.Nil(t, post.Topic)
}
