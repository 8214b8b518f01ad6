package notification

import (
	"testing"
	"time"

	"gatherly/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildFeed_NewestFirst(t *testing.T) {
	raw := map[string]models.Notification{
		"n1": {Message: "older", Timestamp: time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC), Read: false},
		"n2": {Message: "newer", Timestamp: time.Date(2024, 1, 2, 10, 0, 0, 0, time.UTC), Read: true},
	}

	feed := BuildFeed(raw)
	require.Len(t, feed, 2)

	assert.Equal(t, "newer", feed[0].Message)
	assert.Equal(t, "older", feed[1].Message)
	assert.Equal(t, 1, UnreadCount(feed))
}

func TestBuildFeed_AssignsIDsFromKeys(t *testing.T) {
	raw := map[string]models.Notification{
		"abc": {Message: "hello", Timestamp: time.Now()},
	}

	feed := BuildFeed(raw)
	require.Len(t, feed, 1)
	assert.Equal(t, "abc", feed[0].ID)
}

func TestBuildFeed_EqualTimestampsKeepStableOrder(t *testing.T) {
	ts := time.Date(2024, 3, 15, 12, 0, 0, 0, time.UTC)
	raw := map[string]models.Notification{
		"c": {Timestamp: ts},
		"a": {Timestamp: ts},
		"b": {Timestamp: ts},
	}

	// Map iteration order varies, so repeated builds only agree if ties are
	// broken deterministically.
	first := BuildFeed(raw)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, BuildFeed(raw))
	}

	require.Len(t, first, 3)
	assert.Equal(t, "a", first[0].ID)
	assert.Equal(t, "b", first[1].ID)
	assert.Equal(t, "c", first[2].ID)
}

func TestBuildFeed_Empty(t *testing.T) {
	assert.Empty(t, BuildFeed(nil))
	assert.Empty(t, BuildFeed(map[string]models.Notification{}))
}

func TestUnreadCount(t *testing.T) {
	feed := []models.Notification{
		{Read: false},
		{Read: true},
		{Read: false},
	}
	assert.Equal(t, 2, UnreadCount(feed))
	assert.Equal(t, 0, UnreadCount(nil))
}
