package friend

import (
	"fmt"

	"gatherly/models"

	"github.com/google/uuid"
)

// SendRequest creates a pending friendship towards the user named toUsername.
func (s *DefaultFriendService) SendRequest(fromID, toUsername string) (*models.Friendship, error) {
	to, err := s.Users.GetByUsername(toUsername)
	if err != nil {
		return nil, fmt.Errorf("SendRequest: %w", err)
	}
	if to == nil {
		return nil, fmt.Errorf("user %q not found", toUsername)
	}
	if to.ID == fromID {
		return nil, fmt.Errorf("cannot friend yourself")
	}

	if existing, err := s.Repo.GetBetween(fromID, to.ID); err != nil {
		return nil, fmt.Errorf("SendRequest: %w", err)
	} else if existing != nil {
		switch existing.Status {
		case models.FriendStatusAccepted:
			return nil, fmt.Errorf("already friends")
		case models.FriendStatusPending:
			return nil, fmt.Errorf("request already pending")
		}
	}

	f := &models.Friendship{
		ID:     uuid.NewString(),
		FromID: fromID,
		ToID:   to.ID,
		Status: models.FriendStatusPending,
	}
	if err := s.Repo.Create(f); err != nil {
		return nil, fmt.Errorf("SendRequest: %w", err)
	}
	return f, nil
}

// AcceptRequest moves a pending request addressed to userID into accepted.
func (s *DefaultFriendService) AcceptRequest(userID, friendshipID string) error {
	f, err := s.pendingFor(userID, friendshipID)
	if err != nil {
		return err
	}
	if err := s.Repo.SetStatus(f.ID, models.FriendStatusAccepted); err != nil {
		return fmt.Errorf("AcceptRequest: %w", err)
	}
	return nil
}

// DeclineRequest drops a pending request addressed to userID.
func (s *DefaultFriendService) DeclineRequest(userID, friendshipID string) error {
	f, err := s.pendingFor(userID, friendshipID)
	if err != nil {
		return err
	}
	if err := s.Repo.Delete(f.ID); err != nil {
		return fmt.Errorf("DeclineRequest: %w", err)
	}
	return nil
}

// RemoveFriend deletes an accepted friendship from either side.
func (s *DefaultFriendService) RemoveFriend(userID, friendshipID string) error {
	f, err := s.Repo.GetByID(friendshipID)
	if err != nil {
		return fmt.Errorf("RemoveFriend: %w", err)
	}
	if f == nil || !f.Involves(userID) {
		return fmt.Errorf("friendship %s not found", friendshipID)
	}
	if err := s.Repo.Delete(f.ID); err != nil {
		return fmt.Errorf("RemoveFriend: %w", err)
	}
	return nil
}

// ListFriends returns all friendships of userID with the counterpart profiles
// attached, pending requests included.
func (s *DefaultFriendService) ListFriends(userID string) ([]FriendView, error) {
	friendships, err := s.Repo.ListForUser(userID)
	if err != nil {
		return nil, fmt.Errorf("ListFriends: %w", err)
	}
	if len(friendships) == 0 {
		return []FriendView{}, nil
	}

	otherIDs := make([]string, 0, len(friendships))
	for _, f := range friendships {
		otherIDs = append(otherIDs, f.Other(userID))
	}
	others, err := s.Users.GetManyByID(otherIDs)
	if err != nil {
		return nil, fmt.Errorf("ListFriends: %w", err)
	}
	byID := make(map[string]models.User, len(others))
	for _, u := range others {
		byID[u.ID] = u
	}

	views := make([]FriendView, 0, len(friendships))
	for _, f := range friendships {
		other, ok := byID[f.Other(userID)]
		if !ok {
			// Counterpart account was deleted; skip the orphaned edge.
			continue
		}
		views = append(views, FriendView{
			FriendshipID: f.ID,
			Status:       f.Status,
			Incoming:     f.ToID == userID,
			User:         other.PublicProfile(),
		})
	}
	return views, nil
}

func (s *DefaultFriendService) pendingFor(userID, friendshipID string) (*models.Friendship, error) {
	f, err := s.Repo.GetByID(friendshipID)
	if err != nil {
		return nil, fmt.Errorf("failed to load friendship: %w", err)
	}
	if f == nil || f.ToID != userID {
		return nil, fmt.Errorf("friendship %s not found", friendshipID)
	}
	if f.Status != models.FriendStatusPending {
		return nil, fmt.Errorf("friendship %s is not pending", friendshipID)
	}
	return f, nil
}
