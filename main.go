package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"gatherly/config"
	"gatherly/cron"
	"gatherly/database"
	friendshipRepoPkg "gatherly/database/repository/friendship"
	groupRepoPkg "gatherly/database/repository/group"
	messageRepoPkg "gatherly/database/repository/message"
	notificationRepoPkg "gatherly/database/repository/notification"
	userRepoPkg "gatherly/database/repository/user"
	"gatherly/handlers"
	"gatherly/middleware"
	"gatherly/routes"
	"gatherly/services/chat"
	"gatherly/services/friend"
	"gatherly/services/group"
	"gatherly/services/notification"
	"gatherly/services/realtime"
	"gatherly/services/user"
	"gatherly/utils"

	"github.com/gin-gonic/gin"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitRedis()
	utils.FirebaseInit()

	cloudinaryStorageService, err := utils.Cloudinary()
	if err != nil {
		logger.Sugar().Fatalf("main: failed to initialize cloudinary storage service: %v", err)
	}

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// The realtime hub fans events out to connected browsers.
	hub := realtime.NewHub()
	go hub.Run()

	// repositories.
	userRepo := userRepoPkg.NewMongoUserRepo()
	friendshipRepo := friendshipRepoPkg.NewMongoFriendshipRepo()
	groupRepo := groupRepoPkg.NewMongoGroupRepo()
	messageRepo := messageRepoPkg.NewMongoMessageRepo()
	notificationRepo := notificationRepoPkg.NewMongoNotificationRepo()

	// services.
	userService := &user.DefaultUserService{
		Repo: userRepo,
	}
	handlers.SetUserService(userService)

	notificationService := &notification.DefaultNotificationService{
		Repo:   notificationRepo,
		Users:  userRepo,
		Events: hub,
	}

	friendService := &friend.DefaultFriendService{
		Repo:  friendshipRepo,
		Users: userRepo,
	}

	taskClient := cron.NewTaskClient()
	defer taskClient.Close()

	groupService := &group.DefaultGroupService{
		Repo:        groupRepo,
		Friendships: friendshipRepo,
		Users:       userRepo,
		Notifier:    notificationService,
		Events:      hub,
		Reminders:   taskClient,
	}

	chatService := &chat.DefaultChatService{
		Messages: messageRepo,
		Groups:   groupRepo,
		Users:    userRepo,
		Notifier: notificationService,
		Events:   hub,
	}

	friendHandler := handlers.NewFriendHandler(friendService)
	groupHandler := handlers.NewGroupHandler(groupService)
	chatHandler := handlers.NewChatHandler(chatService)
	notificationHandler := handlers.NewNotificationHandler(notificationService)
	storageHandler := handlers.NewStorageHandler(cloudinaryStorageService)
	realtimeHandler := handlers.NewRealtimeHandler(hub, userRepo)

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		UserRepo: userRepo,

		// Auth endpoints.
		RegisterUserHandler:        handlers.RegisterUserHandler,
		AuthenticateUserHandler:    handlers.AuthenticateUserHandler,
		RevokeUserAuthTokenHandler: handlers.RevokeUserAuthTokenHandler,

		// User endpoints.
		GetMeHandler:          handlers.GetMeHandler,
		SearchUserHandler:     handlers.SearchUserHandler,
		UpdateUserHandler:     handlers.UpdateUserHandler,
		UpdateFCMTokenHandler: handlers.UpdateFCMTokenHandler,
		DeleteUserHandler:     handlers.DeleteUserHandler,

		// Friend endpoints.
		SendFriendRequestHandler:    friendHandler.SendRequestHandler,
		AcceptFriendRequestHandler:  friendHandler.AcceptRequestHandler,
		DeclineFriendRequestHandler: friendHandler.DeclineRequestHandler,
		RemoveFriendHandler:         friendHandler.RemoveFriendHandler,
		ListFriendsHandler:          friendHandler.ListFriendsHandler,

		// Group endpoints.
		CreateGroupHandler:    groupHandler.CreateGroupHandler,
		GetGroupHandler:       groupHandler.GetGroupHandler,
		ListGroupsHandler:     groupHandler.ListGroupsHandler,
		DeleteGroupHandler:    groupHandler.DeleteGroupHandler,
		InviteFriendHandler:   groupHandler.InviteFriendHandler,
		AcceptInviteHandler:   groupHandler.AcceptInviteHandler,
		DeclineInviteHandler:  groupHandler.DeclineInviteHandler,
		LeaveGroupHandler:     groupHandler.LeaveGroupHandler,
		ListMembersHandler:    groupHandler.ListMembersHandler,
		ScheduleOutingHandler: groupHandler.ScheduleOutingHandler,

		// Chat endpoints.
		ListMessagesHandler:   chatHandler.ListMessagesHandler,
		SendMessageHandler:    chatHandler.SendMessageHandler,
		VotePollHandler:       chatHandler.VotePollHandler,
		ToggleReactionHandler: chatHandler.ToggleReactionHandler,

		// Notification endpoints.
		NotificationFeedHandler:   notificationHandler.FeedHandler,
		MarkNotificationHandler:   notificationHandler.MarkReadHandler,
		DeleteNotificationHandler: notificationHandler.DeleteNotificationHandler,

		// Storage endpoints.
		UploadImageHandler: storageHandler.UploadImageHandler,

		// Realtime endpoint.
		RealtimeConnectHandler: realtimeHandler.ConnectHandler,
	}

	// Register routes with the assembled handler bundle.
	routes.RegisterRoutes(router, handlerBundle)

	// Start the async worker (outing reminders + daily notification prune).
	cron.InitWorker(notificationService, notificationRepo)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
