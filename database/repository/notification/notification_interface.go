package notificationRepo

import "gatherly/models"

// NotificationRepository defines persistence operations for notifications.
//
// MarkRead and Delete each touch a single document keyed by owner and id, so
// concurrent use across different notification ids never races.
type NotificationRepository interface {
	Create(n *models.Notification) error
	Delete(userID, notificationID string) error
	ListForUser(userID string) (map[string]models.Notification, error)
	MarkRead(userID, notificationID string) error
	DeleteReadOlderThan(cutoffDays int) (int64, error)
}
