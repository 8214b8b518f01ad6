package friendshipRepo

import "gatherly/models"

// FriendshipRepository defines persistence operations for friendships.
type FriendshipRepository interface {
	Create(f *models.Friendship) error
	Delete(id string) error
	GetByID(id string) (*models.Friendship, error)
	GetBetween(userA, userB string) (*models.Friendship, error)
	ListForUser(userID string) ([]models.Friendship, error)
	SetStatus(id string, status models.FriendStatus) error
}
