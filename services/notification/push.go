package notification

import (
	"context"
	"fmt"

	"gatherly/utils"

	"firebase.google.com/go/v4/messaging"
)

// SendUserPush looks up a user's FCM token and sends a push.
func (s *DefaultNotificationService) SendUserPush(
	ctx context.Context,
	userID, title, body string,
	data map[string]string,
) error {
	u, err := s.Users.GetByID(userID)
	if err != nil {
		return fmt.Errorf("SendUserPush: could not find user %s: %w", userID, err)
	}
	if u == nil || u.FCMToken == "" {
		// No push target registered; nothing to deliver.
		return nil
	}

	msg := &messaging.Message{
		Token: u.FCMToken,
		Notification: &messaging.Notification{
			Title: title,
			Body:  body,
		},
		Data: data,
		Android: &messaging.AndroidConfig{
			Priority: "high",
			Notification: &messaging.AndroidNotification{
				Sound: "default",
			},
		},
		APNS: &messaging.APNSConfig{
			Headers: map[string]string{
				"apns-priority":  "10",
				"apns-push-type": "alert",
			},
			Payload: &messaging.APNSPayload{
				Aps: &messaging.Aps{
					Sound: "default",
				},
			},
		},
	}

	if _, err := utils.FCMClient.Send(ctx, msg); err != nil {
		return fmt.Errorf("SendUserPush: failed to send FCM message: %w", err)
	}
	return nil
}
