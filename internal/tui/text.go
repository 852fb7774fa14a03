package tui

import (
	"errors"

	"github.com/jask/votechain/internal/api"
)

const (
	MsgIncompleteVote = "Please fill in both Voter ID and Candidate fields."
	MsgSubmitFailed   = "An error occurred."
	MsgVoteAccepted   = "Vote submitted."
	MsgChainFailed    = "Failed to retrieve blockchain."
)

// VoteErrorText picks the text shown for a failed submission: the server's
// message when it sent one, the generic fallback otherwise.
func VoteErrorText(err error) string {
	var apiErr *api.Error
	if errors.As(err, &apiErr) && apiErr.Message != "" {
		return apiErr.Message
	}
	return MsgSubmitFailed
}

// VoteSuccessText returns the server's acceptance message. When the server
// accepted the vote without a message it returns MsgVoteAccepted rather than
// showing an empty notification, which is a deliberate departure from echoing
// the server text verbatim.
func VoteSuccessText(message string) string {
	if message == "" {
		return MsgVoteAccepted
	}
	return message
}
