package chat

import (
	"fmt"
	"math"

	"gatherly/models"
)

// The poll merge functions are pure: they take the snapshot the caller just
// fetched and return a fresh PollRecord that is written back as a whole
// sub-document replacement. Because the snapshot may already be stale by the
// time the write lands, two users racing on the same poll can lose one vote
// to the other's overwrite. That exposure is a property of the snapshot
// replace scheme, not of the merge itself.

// applyVote appends userID to the votes of the option at optionIndex and bumps
// TotalVotes. Precondition: userID does not appear in any option's vote set;
// callers route already-voted users through applyChangeVote instead.
func applyVote(poll models.PollRecord, optionIndex int, userID string) (models.PollRecord, error) {
	if optionIndex < 0 || optionIndex >= len(poll.Options) {
		return poll, fmt.Errorf("option index %d out of range", optionIndex)
	}

	next := clonePoll(poll)
	opt := &next.Options[optionIndex]
	opt.Votes = append(opt.Votes, userID)
	next.TotalVotes = poll.TotalVotes + 1
	return next, nil
}

// applyChangeVote moves userID's vote from one option to another. TotalVotes
// stays unchanged: a changed vote is not a new vote.
func applyChangeVote(poll models.PollRecord, fromIndex, toIndex int, userID string) (models.PollRecord, error) {
	if fromIndex < 0 || fromIndex >= len(poll.Options) {
		return poll, fmt.Errorf("option index %d out of range", fromIndex)
	}
	if toIndex < 0 || toIndex >= len(poll.Options) {
		return poll, fmt.Errorf("option index %d out of range", toIndex)
	}

	next := clonePoll(poll)

	from := &next.Options[fromIndex]
	kept := from.Votes[:0:0]
	for _, v := range from.Votes {
		if v != userID {
			kept = append(kept, v)
		}
	}
	from.Votes = kept

	to := &next.Options[toIndex]
	to.Votes = append(to.Votes, userID)
	return next, nil
}

// WinningOptionIndex returns the index of the option with the most votes.
// Ties resolve to the lowest index. Returns -1 for a poll with no options.
func WinningOptionIndex(poll models.PollRecord) int {
	if len(poll.Options) == 0 {
		return -1
	}
	winner := 0
	for i := 1; i < len(poll.Options); i++ {
		if len(poll.Options[i].Votes) > len(poll.Options[winner].Votes) {
			winner = i
		}
	}
	return winner
}

// OptionPercentages returns the rounded display percentage per option.
// A poll with zero total votes shows 0% everywhere rather than dividing by zero.
func OptionPercentages(poll models.PollRecord) []int {
	percentages := make([]int, len(poll.Options))
	if poll.TotalVotes == 0 {
		return percentages
	}
	for i, opt := range poll.Options {
		percentages[i] = int(math.Round(100 * float64(len(opt.Votes)) / float64(poll.TotalVotes)))
	}
	return percentages
}

// clonePoll deep-copies a poll so the merge never aliases the caller's snapshot.
func clonePoll(poll models.PollRecord) models.PollRecord {
	next := poll
	next.Options = make([]models.PollOption, len(poll.Options))
	for i, opt := range poll.Options {
		next.Options[i] = opt
		next.Options[i].Votes = append([]string(nil), opt.Votes...)
	}
	return next
}
