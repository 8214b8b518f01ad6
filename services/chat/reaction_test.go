package chat

import (
	"testing"

	"gatherly/models"

	"github.com/stretchr/testify/assert"
)

func TestToggleReaction_AddsUser(t *testing.T) {
	reactions := models.ReactionMap{"👍": {"bob"}}

	result := toggleReaction(reactions, "👍", "alice")

	assert.Equal(t, []string{"bob", "alice"}, result["👍"])
}

func TestToggleReaction_RemovesUser(t *testing.T) {
	reactions := models.ReactionMap{"👍": {"alice", "bob"}}

	result := toggleReaction(reactions, "👍", "alice")

	assert.Equal(t, []string{"bob"}, result["👍"])
}

func TestToggleReaction_EmptySetDropsKey(t *testing.T) {
	reactions := models.ReactionMap{"🎉": {"alice"}, "👍": {"bob"}}

	result := toggleReaction(reactions, "🎉", "alice")

	_, present := result["🎉"]
	assert.False(t, present)
	assert.Equal(t, []string{"bob"}, result["👍"])
}

func TestToggleReaction_DoubleToggleIsIdentity(t *testing.T) {
	reactions := models.ReactionMap{"👍": {"bob"}, "❤️": {"carol"}}

	once := toggleReaction(reactions, "👍", "alice")
	twice := toggleReaction(once, "👍", "alice")

	assert.Equal(t, reactions, twice)
}

func TestToggleReaction_DoubleToggleIsIdentityFromEmpty(t *testing.T) {
	once := toggleReaction(models.ReactionMap{}, "🔥", "alice")
	twice := toggleReaction(once, "🔥", "alice")

	assert.Empty(t, twice)
}

func TestToggleReaction_DoesNotMutateSnapshot(t *testing.T) {
	reactions := models.ReactionMap{"👍": {"bob"}}

	_ = toggleReaction(reactions, "👍", "alice")

	assert.Equal(t, models.ReactionMap{"👍": {"bob"}}, reactions)
}

func TestToggleReaction_OtherEmojisUntouched(t *testing.T) {
	reactions := models.ReactionMap{"👍": {"bob"}, "❤️": {"carol", "dave"}}

	result := toggleReaction(reactions, "👍", "alice")

	assert.Equal(t, []string{"carol", "dave"}, result["❤️"])
}
