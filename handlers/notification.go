package handlers

import (
	"net/http"

	"gatherly/services/notification"

	"github.com/gin-gonic/gin"
)

// NotificationHandler serves the notification feed endpoints.
type NotificationHandler struct {
	Service notification.NotificationService
}

// NewNotificationHandler creates a NotificationHandler.
func NewNotificationHandler(svc notification.NotificationService) *NotificationHandler {
	return &NotificationHandler{Service: svc}
}

// FeedHandler handles GET /api/notifications.
func (h *NotificationHandler) FeedHandler(c *gin.Context) {
	userID := currentUserID(c)
	if userID == "" {
		return
	}

	feed, unread, err := h.Service.Feed(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load notifications"})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"notifications": feed,
		"unreadCount":   unread,
	})
}

// MarkReadHandler handles PUT /api/notifications/:notificationID/read.
func (h *NotificationHandler) MarkReadHandler(c *gin.Context) {
	userID := currentUserID(c)
	if userID == "" {
		return
	}

	if err := h.Service.MarkRead(userID, c.Param("notificationID")); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "read"})
}

// DeleteNotificationHandler handles DELETE /api/notifications/:notificationID.
func (h *NotificationHandler) DeleteNotificationHandler(c *gin.Context) {
	userID := currentUserID(c)
	if userID == "" {
		return
	}

	if err := h.Service.Delete(userID, c.Param("notificationID")); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}
