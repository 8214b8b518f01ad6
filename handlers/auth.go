package handlers

import (
	"net/http"

	"gatherly/services/user"
	"gatherly/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

var userService user.UserService

// SetUserService injects the user service used by the package-level handlers.
func SetUserService(svc user.UserService) {
	userService = svc
}

// RegisterUserHandler handles POST /api/users/register.
func RegisterUserHandler(c *gin.Context) {
	logger := utils.GetLogger()

	var req user.RegistrationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("Invalid registration request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	resp, err := userService.Register(req)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Registration failed", err.Error())
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// AuthenticateUserHandler handles POST /api/users/login.
func AuthenticateUserHandler(c *gin.Context) {
	logger := utils.GetLogger()

	var req struct {
		Email    string `json:"email" binding:"required"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("Invalid login request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	resp, err := userService.Authenticate(req.Email, req.Password)
	if err != nil {
		utils.JSONError(c, http.StatusUnauthorized, "Invalid email or password", err.Error())
		return
	}
	c.JSON(http.StatusOK, resp)
}

// RevokeUserAuthTokenHandler handles DELETE /api/users/revoke.
func RevokeUserAuthTokenHandler(c *gin.Context) {
	userID := currentUserID(c)
	if userID == "" {
		return
	}
	if err := userService.RevokeAuthToken(userID); err != nil {
		utils.GetLogger().Error("Token revoke failed", zap.String("id", userID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Token revoked"})
}
