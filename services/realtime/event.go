package realtime

// Event is one push to subscribed browsers. Payload always carries the latest
// full snapshot for the path; intermediate states that were overwritten before
// delivery are never replayed, so a burst of writes may be observed as a
// single jump to the final state.
type Event struct {
	// Type names the snapshot kind, e.g. "message", "message_update",
	// "notification", "group_update".
	Type string `json:"type"`
	// Path is the document path the snapshot belongs to, e.g.
	// "groupMessages/{groupId}/{messageId}".
	Path string `json:"path"`
	// Payload is the full document snapshot.
	Payload any `json:"payload"`
	// Seq is a per-hub monotonically increasing sequence number.
	Seq int64 `json:"seq"`
}

const (
	EventMessage       = "message"
	EventMessageUpdate = "message_update"
	EventNotification  = "notification"
	EventGroupUpdate   = "group_update"
)

// EventPublisher is the narrow interface services use to fan events out,
// keeping them decoupled from the concrete hub.
type EventPublisher interface {
	BroadcastToUser(userID string, event Event)
	BroadcastToUsers(userIDs []string, event Event)
	OnlineUserIDs() []string
	IsOnline(userID string) bool
}
