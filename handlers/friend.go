package handlers

import (
	"net/http"

	"gatherly/services/friend"

	"github.com/gin-gonic/gin"
)

// FriendHandler serves friend-management endpoints.
type FriendHandler struct {
	Service friend.FriendService
}

// NewFriendHandler creates a FriendHandler.
func NewFriendHandler(svc friend.FriendService) *FriendHandler {
	return &FriendHandler{Service: svc}
}

// SendRequestHandler handles POST /api/friends/request.
func (h *FriendHandler) SendRequestHandler(c *gin.Context) {
	userID := currentUserID(c)
	if userID == "" {
		return
	}

	var req struct {
		Username string `json:"username" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	f, err := h.Service.SendRequest(userID, req.Username)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, f)
}

// AcceptRequestHandler handles PUT /api/friends/:friendshipID/accept.
func (h *FriendHandler) AcceptRequestHandler(c *gin.Context) {
	userID := currentUserID(c)
	if userID == "" {
		return
	}
	if err := h.Service.AcceptRequest(userID, c.Param("friendshipID")); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Friend request accepted"})
}

// DeclineRequestHandler handles DELETE /api/friends/:friendshipID/decline.
func (h *FriendHandler) DeclineRequestHandler(c *gin.Context) {
	userID := currentUserID(c)
	if userID == "" {
		return
	}
	if err := h.Service.DeclineRequest(userID, c.Param("friendshipID")); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Friend request declined"})
}

// RemoveFriendHandler handles DELETE /api/friends/:friendshipID.
func (h *FriendHandler) RemoveFriendHandler(c *gin.Context) {
	userID := currentUserID(c)
	if userID == "" {
		return
	}
	if err := h.Service.RemoveFriend(userID, c.Param("friendshipID")); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Friend removed"})
}

// ListFriendsHandler handles GET /api/friends.
func (h *FriendHandler) ListFriendsHandler(c *gin.Context) {
	userID := currentUserID(c)
	if userID == "" {
		return
	}
	views, err := h.Service.ListFriends(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, views)
}
