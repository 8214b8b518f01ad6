package chat

import (
	"context"
	"fmt"
	"strings"
	"time"

	"gatherly/models"
	"gatherly/services/realtime"
	"gatherly/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// SendText posts a text message to a group.
func (s *DefaultChatService) SendText(ctx context.Context, groupID, senderID, text string) (*models.Message, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, fmt.Errorf("message text must not be empty")
	}
	return s.send(ctx, groupID, senderID, models.Message{
		Kind: models.MessageKindText,
		Text: text,
	})
}

// SendImage posts an image message referencing an already-uploaded attachment.
func (s *DefaultChatService) SendImage(ctx context.Context, groupID, senderID, imageURL string) (*models.Message, error) {
	if imageURL == "" {
		return nil, fmt.Errorf("image URL must not be empty")
	}
	return s.send(ctx, groupID, senderID, models.Message{
		Kind:     models.MessageKindImage,
		ImageURL: imageURL,
	})
}

// SendPoll posts a poll message. Option order is meaningful: an option's index
// is its stable identity for the lifetime of the poll.
func (s *DefaultChatService) SendPoll(ctx context.Context, groupID, senderID, question string, options []string) (*models.Message, error) {
	question = strings.TrimSpace(question)
	if question == "" {
		return nil, fmt.Errorf("poll question must not be empty")
	}
	if len(options) < 2 {
		return nil, fmt.Errorf("poll needs at least two options")
	}

	pollOptions := make([]models.PollOption, len(options))
	for i, text := range options {
		text = strings.TrimSpace(text)
		if text == "" {
			return nil, fmt.Errorf("poll option %d must not be empty", i)
		}
		pollOptions[i] = models.PollOption{Text: text}
	}

	return s.send(ctx, groupID, senderID, models.Message{
		Kind: models.MessageKindPoll,
		Poll: &models.PollRecord{
			Question:  question,
			Options:   pollOptions,
			CreatedBy: senderID,
			CreatedAt: time.Now(),
		},
	})
}

// send persists the message, fans the snapshot out to group members, and
// records new_message notifications.
func (s *DefaultChatService) send(ctx context.Context, groupID, senderID string, m models.Message) (*models.Message, error) {
	group, err := s.memberGroup(groupID, senderID)
	if err != nil {
		return nil, err
	}

	sender, err := s.Users.GetByID(senderID)
	if err != nil {
		return nil, fmt.Errorf("send: %w", err)
	}
	if sender == nil {
		return nil, fmt.Errorf("sender %s not found", senderID)
	}

	m.ID = uuid.NewString()
	m.GroupID = groupID
	m.SenderID = senderID
	m.SenderName = sender.Username
	m.CreatedAt = time.Now()

	if err := s.Messages.Create(&m); err != nil {
		return nil, fmt.Errorf("send: %w", err)
	}

	s.Events.BroadcastToUsers(group.Members, realtime.Event{
		Type:    realtime.EventMessage,
		Path:    fmt.Sprintf("groupMessages/%s/%s", groupID, m.ID),
		Payload: m,
	})

	if err := s.Notifier.NotifyNewMessage(ctx, group, &m); err != nil {
		utils.GetLogger().Warn("failed to notify group members",
			zap.String("groupID", groupID), zap.Error(err))
	}
	return &m, nil
}

// ListMessages returns the group's recent messages in chronological order.
func (s *DefaultChatService) ListMessages(groupID, requesterID string, limit int64) ([]models.Message, error) {
	if _, err := s.memberGroup(groupID, requesterID); err != nil {
		return nil, err
	}
	return s.Messages.ListForGroup(groupID, limit)
}

// VotePoll merges the caller's vote into the poll snapshot and writes the
// whole poll sub-document back. The fetch and the write are two separate
// round trips, so a concurrent voter whose write lands in between is silently
// overwritten; the merge itself never produces a duplicate membership.
func (s *DefaultChatService) VotePoll(ctx context.Context, groupID, messageID, userID string, optionIndex int) (*models.Message, error) {
	if _, err := s.memberGroup(groupID, userID); err != nil {
		return nil, err
	}

	msg, err := s.Messages.GetByID(groupID, messageID)
	if err != nil {
		return nil, fmt.Errorf("VotePoll: %w", err)
	}
	if msg == nil {
		return nil, ErrMessageNotFound
	}
	if msg.Poll == nil {
		return nil, ErrNoPoll
	}

	var next models.PollRecord
	if votedIndex := msg.Poll.VotedOptionIndex(userID); votedIndex >= 0 {
		if votedIndex == optionIndex {
			return nil, ErrAlreadyVoted
		}
		next, err = applyChangeVote(*msg.Poll, votedIndex, optionIndex, userID)
	} else {
		next, err = applyVote(*msg.Poll, optionIndex, userID)
	}
	if err != nil {
		return nil, fmt.Errorf("VotePoll: %w", err)
	}

	if err := s.Messages.ReplacePoll(groupID, messageID, next); err != nil {
		return nil, fmt.Errorf("VotePoll: %w", err)
	}
	msg.Poll = &next

	s.broadcastUpdate(groupID, msg)
	return msg, nil
}

// ToggleReaction fetches a fresh snapshot, toggles the caller's membership in
// the emoji set, and writes the full map back.
func (s *DefaultChatService) ToggleReaction(ctx context.Context, groupID, messageID, userID, emoji string) (*models.Message, error) {
	if emoji == "" {
		return nil, fmt.Errorf("emoji must not be empty")
	}
	if _, err := s.memberGroup(groupID, userID); err != nil {
		return nil, err
	}

	msg, err := s.Messages.GetByID(groupID, messageID)
	if err != nil {
		return nil, fmt.Errorf("ToggleReaction: %w", err)
	}
	if msg == nil {
		return nil, ErrMessageNotFound
	}

	next := toggleReaction(msg.Reactions, emoji, userID)
	if err := s.Messages.ReplaceReactions(groupID, messageID, next); err != nil {
		return nil, fmt.Errorf("ToggleReaction: %w", err)
	}
	msg.Reactions = next

	s.broadcastUpdate(groupID, msg)
	return msg, nil
}

func (s *DefaultChatService) broadcastUpdate(groupID string, msg *models.Message) {
	group, err := s.Groups.GetByID(groupID)
	if err != nil || group == nil {
		return
	}
	s.Events.BroadcastToUsers(group.Members, realtime.Event{
		Type:    realtime.EventMessageUpdate,
		Path:    fmt.Sprintf("groupMessages/%s/%s", groupID, msg.ID),
		Payload: msg,
	})
}

// memberGroup loads the group and checks membership.
func (s *DefaultChatService) memberGroup(groupID, userID string) (*models.Group, error) {
	group, err := s.Groups.GetByID(groupID)
	if err != nil {
		return nil, fmt.Errorf("failed to load group %s: %w", groupID, err)
	}
	if group == nil {
		return nil, fmt.Errorf("group %s not found", groupID)
	}
	if !group.HasMember(userID) {
		return nil, ErrNotMember
	}
	return group, nil
}
