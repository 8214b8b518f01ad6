package routes

import (
	"net/http"
	"time"

	"gatherly/handlers"
	"gatherly/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterUserRoutes registers registration, login, and profile endpoints.
func RegisterUserRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/users")
	{
		api.POST("/register", hb.RegisterUserHandler)
		api.POST("/login", hb.AuthenticateUserHandler)

		// Protected routes (Require Authentication)
		api.Use(middleware.JWTAuthMiddleware(hb.UserRepo))
		api.GET("/me", hb.GetMeHandler)
		api.GET("/search/:username", hb.SearchUserHandler)
		api.PUT("/me", hb.UpdateUserHandler)
		api.PUT("/me/fcm-token", hb.UpdateFCMTokenHandler)
		api.DELETE("/me", hb.DeleteUserHandler)
		api.DELETE("/revoke", hb.RevokeUserAuthTokenHandler)
	}
}

// RegisterFriendRoutes registers friend request and friend list endpoints.
func RegisterFriendRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/friends")
	{
		api.Use(middleware.JWTAuthMiddleware(hb.UserRepo))
		api.GET("", hb.ListFriendsHandler)
		api.POST("/requests", hb.SendFriendRequestHandler)
		api.PUT("/requests/:friendshipID/accept", hb.AcceptFriendRequestHandler)
		api.DELETE("/requests/:friendshipID", hb.DeclineFriendRequestHandler)
		api.DELETE("/:friendshipID", hb.RemoveFriendHandler)
	}
}

// RegisterGroupRoutes registers group management and chat endpoints. Chat
// lives under the group it belongs to since every message is group-scoped.
func RegisterGroupRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/groups")
	{
		api.Use(middleware.JWTAuthMiddleware(hb.UserRepo))
		api.POST("", hb.CreateGroupHandler)
		api.GET("", hb.ListGroupsHandler)
		api.GET("/:groupID", hb.GetGroupHandler)
		api.DELETE("/:groupID", hb.DeleteGroupHandler)
		api.POST("/:groupID/invites", hb.InviteFriendHandler)
		api.PUT("/:groupID/invites/accept", hb.AcceptInviteHandler)
		api.DELETE("/:groupID/invites", hb.DeclineInviteHandler)
		api.DELETE("/:groupID/members/me", hb.LeaveGroupHandler)
		api.GET("/:groupID/members", hb.ListMembersHandler)
		api.PUT("/:groupID/outing", hb.ScheduleOutingHandler)

		// Chat endpoints
		api.GET("/:groupID/messages", hb.ListMessagesHandler)
		api.POST("/:groupID/messages", hb.SendMessageHandler)
		api.PUT("/:groupID/messages/:messageID/vote", hb.VotePollHandler)
		api.PUT("/:groupID/messages/:messageID/reactions", hb.ToggleReactionHandler)
	}
}

// RegisterNotificationRoutes registers the notification feed endpoints.
func RegisterNotificationRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/notifications")
	{
		api.Use(middleware.JWTAuthMiddleware(hb.UserRepo))
		api.GET("", hb.NotificationFeedHandler)
		api.PUT("/:notificationID/read", hb.MarkNotificationHandler)
		api.DELETE("/:notificationID", hb.DeleteNotificationHandler)
	}
}

// RegisterStorageRoutes registers image upload endpoints.
func RegisterStorageRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/storage")
	{
		api.Use(middleware.JWTAuthMiddleware(hb.UserRepo))
		api.POST("/images", hb.UploadImageHandler)
	}
}

// RegisterRealtimeRoute registers the WebSocket endpoint. Auth happens inside
// the handler via a token query parameter.
func RegisterRealtimeRoute(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.GET("/ws", hb.RealtimeConnectHandler)
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "Hi, I'm Gatherly"})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	// Setup global middleware (e.g., CORS) here.
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterUserRoutes(r, hb)
	RegisterFriendRoutes(r, hb)
	RegisterGroupRoutes(r, hb)
	RegisterNotificationRoutes(r, hb)
	RegisterStorageRoutes(r, hb)
	RegisterRealtimeRoute(r, hb)
	RegisterHealthRoute(r)
}
