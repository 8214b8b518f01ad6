package handlers

import (
	"net/http"

	"gatherly/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// GetMeHandler handles GET /api/users/me.
func GetMeHandler(c *gin.Context) {
	userID := currentUserID(c)
	if userID == "" {
		return
	}
	usr, err := userService.GetUserByID(userID)
	if err != nil {
		utils.GetLogger().Error("User not found", zap.String("id", userID), zap.Error(err))
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, usr)
}

// SearchUserHandler handles GET /api/users/search/:username.
func SearchUserHandler(c *gin.Context) {
	if currentUserID(c) == "" {
		return
	}
	username := c.Param("username")
	usr, err := userService.SearchByUsername(username)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, usr.PublicProfile())
}

// UpdateUserHandler handles PUT /api/users/me.
func UpdateUserHandler(c *gin.Context) {
	userID := currentUserID(c)
	if userID == "" {
		return
	}

	var fields map[string]any
	if err := c.ShouldBindJSON(&fields); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	usr, err := userService.UpdateProfile(userID, fields)
	if err != nil {
		utils.GetLogger().Error("Profile update failed", zap.String("id", userID), zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, usr)
}

// UpdateFCMTokenHandler handles PUT /api/users/me/fcm-token.
func UpdateFCMTokenHandler(c *gin.Context) {
	userID := currentUserID(c)
	if userID == "" {
		return
	}

	var req struct {
		Token string `json:"token" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := userService.UpdateFCMToken(userID, req.Token); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "FCM token updated"})
}

// DeleteUserHandler handles DELETE /api/users/me.
func DeleteUserHandler(c *gin.Context) {
	userID := currentUserID(c)
	if userID == "" {
		return
	}
	if err := userService.DeleteUser(userID); err != nil {
		utils.GetLogger().Error("Delete error", zap.String("id", userID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "User deleted"})
}
