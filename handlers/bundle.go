package handlers

import (
	userRepoPkg "gatherly/database/repository/user"

	"github.com/gin-gonic/gin"
)

// HandlerBundle groups all endpoint handlers into one struct.
type HandlerBundle struct {
	UserRepo userRepoPkg.UserRepository

	// Auth endpoints
	RegisterUserHandler        gin.HandlerFunc
	AuthenticateUserHandler    gin.HandlerFunc
	RevokeUserAuthTokenHandler gin.HandlerFunc

	// User endpoints
	GetMeHandler          gin.HandlerFunc
	SearchUserHandler     gin.HandlerFunc
	UpdateUserHandler     gin.HandlerFunc
	UpdateFCMTokenHandler gin.HandlerFunc
	DeleteUserHandler     gin.HandlerFunc

	// Friend endpoints
	SendFriendRequestHandler    gin.HandlerFunc
	AcceptFriendRequestHandler  gin.HandlerFunc
	DeclineFriendRequestHandler gin.HandlerFunc
	RemoveFriendHandler         gin.HandlerFunc
	ListFriendsHandler          gin.HandlerFunc

	// Group endpoints
	CreateGroupHandler    gin.HandlerFunc
	GetGroupHandler       gin.HandlerFunc
	ListGroupsHandler     gin.HandlerFunc
	DeleteGroupHandler    gin.HandlerFunc
	InviteFriendHandler   gin.HandlerFunc
	AcceptInviteHandler   gin.HandlerFunc
	DeclineInviteHandler  gin.HandlerFunc
	LeaveGroupHandler     gin.HandlerFunc
	ListMembersHandler    gin.HandlerFunc
	ScheduleOutingHandler gin.HandlerFunc

	// Chat endpoints
	ListMessagesHandler   gin.HandlerFunc
	SendMessageHandler    gin.HandlerFunc
	VotePollHandler       gin.HandlerFunc
	ToggleReactionHandler gin.HandlerFunc

	// Notification endpoints
	NotificationFeedHandler    gin.HandlerFunc
	MarkNotificationHandler    gin.HandlerFunc
	DeleteNotificationHandler  gin.HandlerFunc

	// Storage endpoints
	UploadImageHandler gin.HandlerFunc

	// Realtime endpoint
	RealtimeConnectHandler gin.HandlerFunc
}
