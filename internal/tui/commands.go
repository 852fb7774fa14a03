package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jask/votechain/internal/api"
	"github.com/jask/votechain/internal/ballot"
)

func (a *App) submitCmd(v ballot.Vote) tea.Cmd {
	return func() tea.Msg {
		msg, err := a.svc.SubmitVote(a.ctx, v)
		return voteResultMsg{vote: v, message: msg, err: err}
	}
}

// fetchChain issues the next chain request. Must only be called from the
// dispatcher (Init/Update) since it advances the sequence counter.
func (a *App) fetchChain() tea.Cmd {
	a.chainSeq++
	a.chainPending++
	seq := a.chainSeq
	return func() tea.Msg {
		raw, err := a.svc.FetchChain(a.ctx)
		if err != nil {
			return chainResultMsg{seq: seq, err: err}
		}
		text, err := api.FormatChain(raw)
		return chainResultMsg{seq: seq, text: text, err: err}
	}
}

func (a *App) hideCmd(gen uint64) tea.Cmd {
	return a.after(noticeTimeout, hideNoticeMsg{gen: gen})
}
