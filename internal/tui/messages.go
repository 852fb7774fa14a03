package tui

import "github.com/jask/votechain/internal/ballot"

type voteResultMsg struct {
	vote    ballot.Vote
	message string
	err     error
}

// chainResultMsg carries the request sequence number it was issued with so
// late completions can be dropped.
type chainResultMsg struct {
	seq  uint64
	text string
	err  error
}

type hideNoticeMsg struct {
	gen uint64
}
