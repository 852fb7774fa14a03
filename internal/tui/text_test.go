package tui

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jask/votechain/internal/api"
)

func TestVoteSuccessText(t *testing.T) {
	if got := VoteSuccessText("Vote recorded"); got != "Vote recorded" {
		t.Errorf("VoteSuccessText = %q, want server message", got)
	}
	if got := VoteSuccessText(""); got != MsgVoteAccepted {
		t.Errorf("VoteSuccessText(\"\") = %q, want %q", got, MsgVoteAccepted)
	}
}

func TestVoteErrorText(t *testing.T) {
	wrapped := fmt.Errorf("submit: %w", &api.Error{StatusCode: 400, Message: "Invalid vote data"})
	if got := VoteErrorText(wrapped); got != "Invalid vote data" {
		t.Errorf("VoteErrorText = %q, want server message", got)
	}
	if got := VoteErrorText(errors.New("connection refused")); got != MsgSubmitFailed {
		t.Errorf("VoteErrorText = %q, want %q", got, MsgSubmitFailed)
	}
}
