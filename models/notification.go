package models

import "time"

// NotificationType is the closed set of notification variants.
type NotificationType string

const (
	NotificationGroupInvitation NotificationType = "group_invitation"
	NotificationNewMessage      NotificationType = "new_message"
	NotificationOther           NotificationType = "other"
)

// Notification is owned by exactly one user: only that user marks it read or
// deletes it, and nothing mutates it afterwards.
type Notification struct {
	ID        string           `json:"id" bson:"id"`
	UserID    string           `json:"userId" bson:"userId"`
	Type      NotificationType `json:"type" bson:"type"`
	GroupID   string           `json:"groupId,omitempty" bson:"groupId,omitempty"`
	Message   string           `json:"message" bson:"message"`
	Timestamp time.Time        `json:"timestamp" bson:"timestamp"`
	Read      bool             `json:"read" bson:"read"`

	// Type-specific optional fields.
	InvitedBy      string `json:"invitedBy,omitempty" bson:"invitedBy,omitempty"`
	InvitedByName  string `json:"invitedByName,omitempty" bson:"invitedByName,omitempty"`
	MessageContent string `json:"messageContent,omitempty" bson:"messageContent,omitempty"`
}
