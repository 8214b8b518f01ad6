package notification

import (
	"sort"

	"gatherly/models"
)

// BuildFeed converts the unordered keyed map a notification listener delivers
// into the deterministically ordered slice the client renders: most recent
// first. Entries sharing a timestamp keep a stable relative order (ascending
// id), so re-running the build on the same input never reshuffles the feed.
func BuildFeed(raw map[string]models.Notification) []models.Notification {
	ids := make([]string, 0, len(raw))
	for id := range raw {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	feed := make([]models.Notification, 0, len(raw))
	for _, id := range ids {
		n := raw[id]
		n.ID = id
		feed = append(feed, n)
	}

	sort.SliceStable(feed, func(i, j int) bool {
		return feed[i].Timestamp.After(feed[j].Timestamp)
	})
	return feed
}

// UnreadCount counts the feed entries not yet marked read.
func UnreadCount(feed []models.Notification) int {
	count := 0
	for _, n := range feed {
		if !n.Read {
			count++
		}
	}
	return count
}
