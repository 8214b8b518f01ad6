package chat

import "errors"

var (
	// ErrNotMember signals the caller does not belong to the group.
	ErrNotMember = errors.New("user is not a member of this group")
	// ErrMessageNotFound signals the referenced message does not exist.
	ErrMessageNotFound = errors.New("message not found")
	// ErrNoPoll signals the referenced message carries no poll.
	ErrNoPoll = errors.New("message has no poll")
	// ErrAlreadyVoted signals a vote for an option the user already voted for.
	ErrAlreadyVoted = errors.New("user already voted for this option")
)
