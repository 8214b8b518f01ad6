package group

import (
	"context"
	"time"

	friendshipRepo "gatherly/database/repository/friendship"
	groupRepo "gatherly/database/repository/group"
	userRepo "gatherly/database/repository/user"
	"gatherly/models"
	"gatherly/services/notification"
	"gatherly/services/realtime"

	"github.com/hibiken/asynq"
)

// GroupService manages outing groups: creation, invitations, membership, and
// outing scheduling.
type GroupService interface {
	CreateGroup(creatorID, name, description string) (*models.Group, error)
	GetGroup(groupID, requesterID string) (*models.Group, error)
	ListGroups(userID string) ([]models.Group, error)
	DeleteGroup(groupID, requesterID string) error

	// InviteFriend records a pending invitation for a friend of the inviter
	// and sends the group_invitation notification.
	InviteFriend(ctx context.Context, groupID, inviterID, inviteeID string) error
	AcceptInvite(groupID, userID string) error
	DeclineInvite(groupID, userID string) error
	LeaveGroup(groupID, userID string) error
	ListMembers(groupID, requesterID string) ([]map[string]any, error)

	// ScheduleOuting sets the outing time and place and enqueues a reminder.
	ScheduleOuting(groupID, requesterID string, when time.Time, spot string) (*models.Group, error)
}

// DefaultGroupService is the production implementation.
type DefaultGroupService struct {
	Repo        groupRepo.GroupRepository
	Friendships friendshipRepo.FriendshipRepository
	Users       userRepo.UserRepository
	Notifier    notification.NotificationService
	Events      realtime.EventPublisher
	Reminders   *asynq.Client
}
