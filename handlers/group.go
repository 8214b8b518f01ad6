package handlers

import (
	"net/http"
	"time"

	"gatherly/services/group"

	"github.com/gin-gonic/gin"
)

// GroupHandler serves group-management endpoints.
type GroupHandler struct {
	Service group.GroupService
}

// NewGroupHandler creates a GroupHandler.
func NewGroupHandler(svc group.GroupService) *GroupHandler {
	return &GroupHandler{Service: svc}
}

// CreateGroupHandler handles POST /api/groups.
func (h *GroupHandler) CreateGroupHandler(c *gin.Context) {
	userID := currentUserID(c)
	if userID == "" {
		return
	}

	var req struct {
		Name        string `json:"name" binding:"required"`
		Description string `json:"description"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	g, err := h.Service.CreateGroup(userID, req.Name, req.Description)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, g)
}

// GetGroupHandler handles GET /api/groups/:groupID.
func (h *GroupHandler) GetGroupHandler(c *gin.Context) {
	userID := currentUserID(c)
	if userID == "" {
		return
	}
	g, err := h.Service.GetGroup(c.Param("groupID"), userID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, g)
}

// ListGroupsHandler handles GET /api/groups.
func (h *GroupHandler) ListGroupsHandler(c *gin.Context) {
	userID := currentUserID(c)
	if userID == "" {
		return
	}
	groups, err := h.Service.ListGroups(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, groups)
}

// DeleteGroupHandler handles DELETE /api/groups/:groupID.
func (h *GroupHandler) DeleteGroupHandler(c *gin.Context) {
	userID := currentUserID(c)
	if userID == "" {
		return
	}
	if err := h.Service.DeleteGroup(c.Param("groupID"), userID); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Group deleted"})
}

// InviteFriendHandler handles POST /api/groups/:groupID/invite.
func (h *GroupHandler) InviteFriendHandler(c *gin.Context) {
	userID := currentUserID(c)
	if userID == "" {
		return
	}

	var req struct {
		UserID string `json:"userId" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.Service.InviteFriend(c.Request.Context(), c.Param("groupID"), userID, req.UserID); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Invitation sent"})
}

// AcceptInviteHandler handles PUT /api/groups/:groupID/invite/accept.
func (h *GroupHandler) AcceptInviteHandler(c *gin.Context) {
	userID := currentUserID(c)
	if userID == "" {
		return
	}
	if err := h.Service.AcceptInvite(c.Param("groupID"), userID); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Invitation accepted"})
}

// DeclineInviteHandler handles DELETE /api/groups/:groupID/invite.
func (h *GroupHandler) DeclineInviteHandler(c *gin.Context) {
	userID := currentUserID(c)
	if userID == "" {
		return
	}
	if err := h.Service.DeclineInvite(c.Param("groupID"), userID); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Invitation declined"})
}

// LeaveGroupHandler handles DELETE /api/groups/:groupID/members/me.
func (h *GroupHandler) LeaveGroupHandler(c *gin.Context) {
	userID := currentUserID(c)
	if userID == "" {
		return
	}
	if err := h.Service.LeaveGroup(c.Param("groupID"), userID); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Left group"})
}

// ListMembersHandler handles GET /api/groups/:groupID/members.
func (h *GroupHandler) ListMembersHandler(c *gin.Context) {
	userID := currentUserID(c)
	if userID == "" {
		return
	}
	members, err := h.Service.ListMembers(c.Param("groupID"), userID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, members)
}

// ScheduleOutingHandler handles PUT /api/groups/:groupID/outing.
func (h *GroupHandler) ScheduleOutingHandler(c *gin.Context) {
	userID := currentUserID(c)
	if userID == "" {
		return
	}

	var req struct {
		Time time.Time `json:"time" binding:"required"`
		Spot string    `json:"spot"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	g, err := h.Service.ScheduleOuting(c.Param("groupID"), userID, req.Time, req.Spot)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, g)
}
