package chat

import "gatherly/models"

// toggleReaction flips userID's membership in the reaction set for emoji and
// returns a fresh map; every other emoji entry passes through unchanged. An
// emoji whose set becomes empty is dropped from the map entirely, so two
// sequential toggles by the same user are the identity.
//
// Like the poll merge, this runs against a snapshot fetched immediately
// beforehand and is written back wholesale, so two different users racing on
// the same emoji can still clobber one another.
func toggleReaction(reactions models.ReactionMap, emoji, userID string) models.ReactionMap {
	next := make(models.ReactionMap, len(reactions)+1)
	for e, users := range reactions {
		next[e] = append([]string(nil), users...)
	}

	users := next[emoji]
	removed := users[:0:0]
	found := false
	for _, u := range users {
		if u == userID {
			found = true
			continue
		}
		removed = append(removed, u)
	}

	if found {
		if len(removed) == 0 {
			delete(next, emoji)
		} else {
			next[emoji] = removed
		}
		return next
	}

	next[emoji] = append(users, userID)
	return next
}
