package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"gatherly/services/chat"

	"github.com/gin-gonic/gin"
)

// ChatHandler serves group-chat endpoints: messages, polls, reactions.
type ChatHandler struct {
	Service chat.ChatService
}

// NewChatHandler creates a ChatHandler.
func NewChatHandler(svc chat.ChatService) *ChatHandler {
	return &ChatHandler{Service: svc}
}

// ListMessagesHandler handles GET /api/groups/:groupID/messages.
func (h *ChatHandler) ListMessagesHandler(c *gin.Context) {
	userID := currentUserID(c)
	if userID == "" {
		return
	}

	limit, _ := strconv.ParseInt(c.DefaultQuery("limit", "50"), 10, 64)
	messages, err := h.Service.ListMessages(c.Param("groupID"), userID, limit)
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, messages)
}

// SendMessageHandler handles POST /api/groups/:groupID/messages.
// The kind field selects the variant; each variant has its own payload shape.
func (h *ChatHandler) SendMessageHandler(c *gin.Context) {
	userID := currentUserID(c)
	if userID == "" {
		return
	}

	var req struct {
		Kind     string   `json:"kind" binding:"required"`
		Text     string   `json:"text"`
		ImageURL string   `json:"imageUrl"`
		Question string   `json:"question"`
		Options  []string `json:"options"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	groupID := c.Param("groupID")
	ctx := c.Request.Context()

	switch req.Kind {
	case "text":
		msg, err := h.Service.SendText(ctx, groupID, userID, req.Text)
		h.writeMessage(c, msg, err)
	case "image":
		msg, err := h.Service.SendImage(ctx, groupID, userID, req.ImageURL)
		h.writeMessage(c, msg, err)
	case "poll":
		msg, err := h.Service.SendPoll(ctx, groupID, userID, req.Question, req.Options)
		h.writeMessage(c, msg, err)
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown message kind: " + req.Kind})
	}
}

// VotePollHandler handles PUT /api/groups/:groupID/messages/:messageID/vote.
func (h *ChatHandler) VotePollHandler(c *gin.Context) {
	userID := currentUserID(c)
	if userID == "" {
		return
	}

	var req struct {
		OptionIndex *int `json:"optionIndex" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	msg, err := h.Service.VotePoll(c.Request.Context(), c.Param("groupID"), c.Param("messageID"), userID, *req.OptionIndex)
	h.writeMessage(c, msg, err)
}

// ToggleReactionHandler handles PUT /api/groups/:groupID/messages/:messageID/reactions.
func (h *ChatHandler) ToggleReactionHandler(c *gin.Context) {
	userID := currentUserID(c)
	if userID == "" {
		return
	}

	var req struct {
		Emoji string `json:"emoji" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	msg, err := h.Service.ToggleReaction(c.Request.Context(), c.Param("groupID"), c.Param("messageID"), userID, req.Emoji)
	h.writeMessage(c, msg, err)
}

func (h *ChatHandler) writeMessage(c *gin.Context, msg any, err error) {
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, msg)
}

func (h *ChatHandler) writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, chat.ErrNotMember):
		c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
	case errors.Is(err, chat.ErrMessageNotFound), errors.Is(err, chat.ErrNoPoll):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, chat.ErrAlreadyVoted):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	}
}
