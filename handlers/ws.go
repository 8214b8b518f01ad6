package handlers

import (
	"net/http"

	userRepo "gatherly/database/repository/user"
	"gatherly/services/realtime"
	"gatherly/utils"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

var wsUpgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	// Browser clients connect from the app origin; CORS policy is enforced
	// on the REST surface, so the upgrade accepts any origin here.
	CheckOrigin: func(r *http.Request) bool { return true },
}

// RealtimeHandler upgrades authenticated connections into hub clients.
type RealtimeHandler struct {
	Hub      *realtime.Hub
	UserRepo userRepo.UserRepository
}

// NewRealtimeHandler creates a RealtimeHandler.
func NewRealtimeHandler(hub *realtime.Hub, repo userRepo.UserRepository) *RealtimeHandler {
	return &RealtimeHandler{Hub: hub, UserRepo: repo}
}

// ConnectHandler handles GET /ws?token=<jwt>. Browsers cannot set an
// Authorization header on a WebSocket handshake, so the token rides in the
// query string instead.
func (h *RealtimeHandler) ConnectHandler(c *gin.Context) {
	logger := utils.GetLogger()

	tokenString := c.Query("token")
	if tokenString == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing token"})
		return
	}

	token, err := utils.ValidateToken(tokenString)
	if err != nil || !token.Valid {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid or expired token"})
		return
	}

	user, err := h.UserRepo.GetByTokenHash(utils.HashToken(tokenString))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to resolve session"})
		return
	}
	if user == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "session revoked"})
		return
	}

	conn, err := wsUpgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		logger.Error("websocket upgrade failed", zap.String("userID", user.ID), zap.Error(err))
		return
	}

	realtime.NewClient(h.Hub, conn, user.ID)
}
