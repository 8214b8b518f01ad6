package messageRepo

import "gatherly/models"

// MessageRepository defines persistence operations for chat messages.
//
// The poll and reaction writes are deliberately whole-sub-document
// replacements keyed on a snapshot the caller fetched beforehand: the merge is
// computed client-side and written back last-writer-wins. See the chat service
// for the merge functions and the documented lost-update exposure.
type MessageRepository interface {
	Create(m *models.Message) error
	Delete(groupID, messageID string) error
	GetByID(groupID, messageID string) (*models.Message, error)
	ListForGroup(groupID string, limit int64) ([]models.Message, error)
	ReplacePoll(groupID, messageID string, poll models.PollRecord) error
	ReplaceReactions(groupID, messageID string, reactions models.ReactionMap) error
}
