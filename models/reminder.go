package models

import "time"

// ReminderPayload is the task payload for a scheduled outing reminder.
type ReminderPayload struct {
	GroupID    string    `json:"groupId"`
	GroupName  string    `json:"groupName"`
	OutingSpot string    `json:"outingSpot,omitempty"`
	OutingTime time.Time `json:"outingTime"`
	MemberIDs  []string  `json:"memberIds"`
}
