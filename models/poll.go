package models

import "time"

// PollOption is one choice in a poll. Votes has set semantics: a user appears
// at most once, and under correct operation at most once across all options
// of the same poll. Option identity is its index in PollRecord.Options.
type PollOption struct {
	Text  string   `json:"text" bson:"text"`
	Votes []string `json:"votes,omitempty" bson:"votes,omitempty"`
}

// PollRecord represents one poll attached to a chat message.
//
// TotalVotes is maintained as a derived counter rather than recomputed from
// the option sets on every read; a vote change does not touch it.
type PollRecord struct {
	Question   string       `json:"question" bson:"question"`
	Options    []PollOption `json:"options" bson:"options"`
	CreatedBy  string       `json:"createdBy" bson:"createdBy"`
	CreatedAt  time.Time    `json:"createdAt" bson:"createdAt"`
	TotalVotes int          `json:"totalVotes" bson:"totalVotes"`
}

// VotedOptionIndex returns the index of the option userID has voted for,
// or -1 if the user has not voted on this poll.
func (p *PollRecord) VotedOptionIndex(userID string) int {
	for i, opt := range p.Options {
		for _, v := range opt.Votes {
			if v == userID {
				return i
			}
		}
	}
	return -1
}
