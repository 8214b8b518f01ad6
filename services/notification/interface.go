package notification

import (
	"context"

	notificationRepo "gatherly/database/repository/notification"
	userRepo "gatherly/database/repository/user"
	"gatherly/models"
	"gatherly/services/realtime"
)

// NotificationService creates, delivers, and serves notifications.
type NotificationService interface {
	// Feed returns the ordered feed plus its unread count.
	Feed(userID string) ([]models.Notification, int, error)
	MarkRead(userID, notificationID string) error
	Delete(userID, notificationID string) error

	// NotifyGroupInvitation records a group_invitation notification for the
	// invitee and delivers it (hub when online, FCM push otherwise).
	NotifyGroupInvitation(ctx context.Context, group *models.Group, inviter *models.User, inviteeID string) error
	// NotifyNewMessage fans a new_message notification out to every group
	// member except the sender.
	NotifyNewMessage(ctx context.Context, group *models.Group, msg *models.Message) error
	// SendUserPush sends a bare FCM push without recording a notification
	// document. Used for outing reminders.
	SendUserPush(ctx context.Context, userID, title, body string, data map[string]string) error
}

// DefaultNotificationService is the production implementation.
type DefaultNotificationService struct {
	Repo   notificationRepo.NotificationRepository
	Users  userRepo.UserRepository
	Events realtime.EventPublisher
}
