package friend

import (
	friendshipRepo "gatherly/database/repository/friendship"
	userRepo "gatherly/database/repository/user"
	"gatherly/models"
)

// FriendView pairs a friendship record with the counterpart's public profile.
type FriendView struct {
	FriendshipID string              `json:"friendshipId"`
	Status       models.FriendStatus `json:"status"`
	// Incoming is true when the counterpart sent the request.
	Incoming bool           `json:"incoming"`
	User     map[string]any `json:"user"`
}

// FriendService manages friend requests and the friend list.
type FriendService interface {
	SendRequest(fromID, toUsername string) (*models.Friendship, error)
	AcceptRequest(userID, friendshipID string) error
	DeclineRequest(userID, friendshipID string) error
	RemoveFriend(userID, friendshipID string) error
	ListFriends(userID string) ([]FriendView, error)
}

// DefaultFriendService is the production implementation.
type DefaultFriendService struct {
	Repo  friendshipRepo.FriendshipRepository
	Users userRepo.UserRepository
}
