package models

import "time"

// FriendStatus is the closed set of friendship states.
type FriendStatus string

const (
	FriendStatusPending  FriendStatus = "pending"
	FriendStatusAccepted FriendStatus = "accepted"
)

// ValidFriendStatus reports whether s is a known status value.
func ValidFriendStatus(s FriendStatus) bool {
	switch s {
	case FriendStatusPending, FriendStatusAccepted:
		return true
	}
	return false
}

// Friendship represents a directed friend request that becomes mutual once accepted.
type Friendship struct {
	ID        string       `json:"id" bson:"id"`
	FromID    string       `json:"fromId" bson:"fromId"`
	ToID      string       `json:"toId" bson:"toId"`
	Status    FriendStatus `json:"status" bson:"status"`
	CreatedAt time.Time    `json:"createdAt" bson:"createdAt"`
	UpdatedAt time.Time    `json:"updatedAt" bson:"updatedAt"`
}

// Involves reports whether userID is either side of the friendship.
func (f *Friendship) Involves(userID string) bool {
	return f.FromID == userID || f.ToID == userID
}

// Other returns the counterpart of userID in the friendship.
func (f *Friendship) Other(userID string) string {
	if f.FromID == userID {
		return f.ToID
	}
	return f.FromID
}
