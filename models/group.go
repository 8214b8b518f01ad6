package models

import "time"

// Group represents an outing-planning group.
type Group struct {
	ID          string    `json:"id" bson:"id"`
	Name        string    `json:"name" bson:"name"`
	Description string    `json:"description,omitempty" bson:"description,omitempty"`
	CreatedBy   string    `json:"createdBy" bson:"createdBy"`
	Members     []string  `json:"members" bson:"members"`
	// Invited holds user IDs with a pending invitation; membership is granted
	// only when the invitee accepts.
	Invited    []string   `json:"invited,omitempty" bson:"invited,omitempty"`
	OutingTime *time.Time `json:"outingTime,omitempty" bson:"outingTime,omitempty"`
	OutingSpot string     `json:"outingSpot,omitempty" bson:"outingSpot,omitempty"`
	CreatedAt  time.Time  `json:"createdAt" bson:"createdAt"`
	UpdatedAt  time.Time  `json:"updatedAt" bson:"updatedAt"`
}

// HasMember reports whether userID belongs to the group.
func (g *Group) HasMember(userID string) bool {
	for _, m := range g.Members {
		if m == userID {
			return true
		}
	}
	return false
}

// HasInvite reports whether userID holds a pending invitation.
func (g *Group) HasInvite(userID string) bool {
	for _, m := range g.Invited {
		if m == userID {
			return true
		}
	}
	return false
}
