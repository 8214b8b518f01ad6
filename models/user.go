// models/user.go
package models

import "time"

// User represents a platform user.
type User struct {
	ID           string    `json:"id" bson:"id"`
	Username     string    `json:"username" bson:"username"`
	Email        string    `json:"email" bson:"email"`
	PhoneNumber  string    `json:"phoneNumber" bson:"phoneNumber"`
	PasswordHash string    `json:"-" bson:"passwordHash"`
	ProfileImage string    `json:"profileImage,omitempty" bson:"profileImage,omitempty"`
	FCMToken     string    `json:"-" bson:"fcmToken,omitempty"`
	TokenHash    string    `json:"-" bson:"tokenHash,omitempty"`
	CreatedAt    time.Time `json:"createdAt" bson:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt" bson:"updatedAt"`
}

// PublicProfile strips fields other users should not see.
func (u *User) PublicProfile() map[string]any {
	return map[string]any{
		"id":           u.ID,
		"username":     u.Username,
		"profileImage": u.ProfileImage,
	}
}
