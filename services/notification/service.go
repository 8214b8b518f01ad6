package notification

import (
	"context"
	"fmt"
	"time"

	"gatherly/models"
	"gatherly/services/realtime"
	"gatherly/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Feed loads the user's raw notification map and returns the ordered feed
// with its unread count.
func (s *DefaultNotificationService) Feed(userID string) ([]models.Notification, int, error) {
	raw, err := s.Repo.ListForUser(userID)
	if err != nil {
		return nil, 0, fmt.Errorf("Feed: %w", err)
	}
	feed := BuildFeed(raw)
	return feed, UnreadCount(feed), nil
}

// MarkRead flips the read flag of one notification. Idempotent.
func (s *DefaultNotificationService) MarkRead(userID, notificationID string) error {
	return s.Repo.MarkRead(userID, notificationID)
}

// Delete removes one notification permanently.
func (s *DefaultNotificationService) Delete(userID, notificationID string) error {
	return s.Repo.Delete(userID, notificationID)
}

// NotifyGroupInvitation records and delivers a group_invitation notification.
func (s *DefaultNotificationService) NotifyGroupInvitation(ctx context.Context, group *models.Group, inviter *models.User, inviteeID string) error {
	n := &models.Notification{
		ID:            uuid.NewString(),
		UserID:        inviteeID,
		Type:          models.NotificationGroupInvitation,
		GroupID:       group.ID,
		Message:       fmt.Sprintf("%s invited you to join %s", inviter.Username, group.Name),
		Timestamp:     time.Now(),
		InvitedBy:     inviter.ID,
		InvitedByName: inviter.Username,
	}
	if err := s.Repo.Create(n); err != nil {
		return fmt.Errorf("NotifyGroupInvitation: %w", err)
	}

	s.deliver(ctx, *n, "Group invitation", n.Message, map[string]string{
		"type":    string(models.NotificationGroupInvitation),
		"groupId": group.ID,
	})
	return nil
}

// NotifyNewMessage records and delivers new_message notifications for every
// group member except the sender. A failure for one member does not abort
// delivery to the rest.
func (s *DefaultNotificationService) NotifyNewMessage(ctx context.Context, group *models.Group, msg *models.Message) error {
	logger := utils.GetLogger()
	preview := msg.Preview()

	for _, memberID := range group.Members {
		if memberID == msg.SenderID {
			continue
		}

		n := &models.Notification{
			ID:             uuid.NewString(),
			UserID:         memberID,
			Type:           models.NotificationNewMessage,
			GroupID:        group.ID,
			Message:        fmt.Sprintf("New message in %s", group.Name),
			Timestamp:      time.Now(),
			MessageContent: preview,
		}
		if err := s.Repo.Create(n); err != nil {
			logger.Error("failed to record message notification",
				zap.String("userID", memberID), zap.Error(err))
			continue
		}

		s.deliver(ctx, *n, group.Name, fmt.Sprintf("%s: %s", msg.SenderName, preview), map[string]string{
			"type":    string(models.NotificationNewMessage),
			"groupId": group.ID,
		})
	}
	return nil
}

// deliver pushes a freshly created notification: hub event for online users,
// FCM push for the rest.
func (s *DefaultNotificationService) deliver(ctx context.Context, n models.Notification, title, body string, data map[string]string) {
	s.Events.BroadcastToUser(n.UserID, realtime.Event{
		Type:    realtime.EventNotification,
		Path:    fmt.Sprintf("notifications/%s/%s", n.UserID, n.ID),
		Payload: n,
	})
	if s.Events.IsOnline(n.UserID) {
		return
	}

	if err := s.SendUserPush(ctx, n.UserID, title, body, data); err != nil {
		utils.GetLogger().Warn("failed to push notification",
			zap.String("userID", n.UserID), zap.Error(err))
	}
}
