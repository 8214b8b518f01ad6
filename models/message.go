package models

import "time"

// MessageKind is the closed set of chat message variants.
type MessageKind string

const (
	MessageKindText  MessageKind = "text"
	MessageKindPoll  MessageKind = "poll"
	MessageKindImage MessageKind = "image"
)

// ValidMessageKind reports whether k is a known message kind.
func ValidMessageKind(k MessageKind) bool {
	switch k {
	case MessageKindText, MessageKindPoll, MessageKindImage:
		return true
	}
	return false
}

// ReactionMap maps an emoji glyph to the set of user IDs who reacted with it.
// An emoji key is removed entirely when its set becomes empty.
type ReactionMap map[string][]string

// Message represents one chat message in a group, with the optional poll and
// reaction sub-documents living inside the same document.
type Message struct {
	ID         string      `json:"id" bson:"id"`
	GroupID    string      `json:"groupId" bson:"groupId"`
	SenderID   string      `json:"senderId" bson:"senderId"`
	SenderName string      `json:"senderName" bson:"senderName"`
	Kind       MessageKind `json:"kind" bson:"kind"`
	Text       string      `json:"text,omitempty" bson:"text,omitempty"`
	ImageURL   string      `json:"imageUrl,omitempty" bson:"imageUrl,omitempty"`
	Poll       *PollRecord `json:"poll,omitempty" bson:"poll,omitempty"`
	Reactions  ReactionMap `json:"reactions,omitempty" bson:"reactions,omitempty"`
	CreatedAt  time.Time   `json:"createdAt" bson:"createdAt"`
}

// Preview returns a short human-readable rendering for notifications.
func (m *Message) Preview() string {
	switch m.Kind {
	case MessageKindText:
		return m.Text
	case MessageKindPoll:
		if m.Poll != nil {
			return "Poll: " + m.Poll.Question
		}
		return "Poll"
	case MessageKindImage:
		return "Sent an image"
	}
	return ""
}
