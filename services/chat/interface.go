package chat

import (
	"context"

	groupRepo "gatherly/database/repository/group"
	messageRepo "gatherly/database/repository/message"
	userRepo "gatherly/database/repository/user"
	"gatherly/models"
	"gatherly/services/notification"
	"gatherly/services/realtime"
)

// ChatService covers group messaging: text, image, and poll messages,
// poll voting, and reaction toggles.
type ChatService interface {
	SendText(ctx context.Context, groupID, senderID, text string) (*models.Message, error)
	SendImage(ctx context.Context, groupID, senderID, imageURL string) (*models.Message, error)
	SendPoll(ctx context.Context, groupID, senderID, question string, options []string) (*models.Message, error)
	ListMessages(groupID, requesterID string, limit int64) ([]models.Message, error)

	// VotePoll records the caller's vote on option optionIndex. A first vote
	// increments the poll total; voting again on a different option moves the
	// vote without changing the total; re-voting the same option returns
	// ErrAlreadyVoted.
	VotePoll(ctx context.Context, groupID, messageID, userID string, optionIndex int) (*models.Message, error)

	// ToggleReaction flips the caller's reaction membership for one emoji.
	ToggleReaction(ctx context.Context, groupID, messageID, userID, emoji string) (*models.Message, error)
}

// DefaultChatService is the production implementation.
type DefaultChatService struct {
	Messages messageRepo.MessageRepository
	Groups   groupRepo.GroupRepository
	Users    userRepo.UserRepository
	Notifier notification.NotificationService
	Events   realtime.EventPublisher
}
