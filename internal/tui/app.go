package tui

import (
	"context"
	"encoding/json"
	"time"

	"github.com/charmbracelet/bubbles/cursor"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/sirupsen/logrus"

	"github.com/jask/votechain/internal/ballot"
	"github.com/jask/votechain/internal/config"
)

// Service is the remote side of the vote screen. *api.Client satisfies it.
type Service interface {
	SubmitVote(ctx context.Context, v ballot.Vote) (string, error)
	FetchChain(ctx context.Context) (json.RawMessage, error)
}

type noticeKind string

const (
	noticeSuccess noticeKind = "success"
	noticeError   noticeKind = "error"
)

type notification struct {
	text    string
	kind    noticeKind
	visible bool
	gen     uint64
}

// form field indices
const (
	fieldVoterID = iota
	fieldCandidate
	fieldCount
)

// noticeTimeout is how long a notification stays up.
const noticeTimeout = 5 * time.Second

// App is the vote screen. Update is the only place state changes; network
// calls run as commands and report back through result messages.
type App struct {
	ctx  context.Context
	svc  Service
	log  logrus.FieldLogger
	keys keyMap
	help help.Model

	inputs [fieldCount]textinput.Model
	focus  int

	notice   notification
	coalesce bool
	after    func(time.Duration, tea.Msg) tea.Cmd

	chainText    string
	chainView    viewport.Model
	chainSeq     uint64 // last issued
	chainApplied uint64 // last rendered
	chainPending int
	votePending  int

	width  int
	height int
}

func New(ctx context.Context, cfg config.Config, svc Service, log logrus.FieldLogger) *App {
	if log == nil {
		log = logrus.StandardLogger()
	}
	a := &App{
		ctx:      ctx,
		svc:      svc,
		log:      log,
		keys:     newKeyMap(),
		help:     help.New(),
		coalesce: cfg.UI.CoalesceNotifications,
		after: func(d time.Duration, msg tea.Msg) tea.Cmd {
			return tea.Tick(d, func(time.Time) tea.Msg { return msg })
		},
		chainView: viewport.New(80, 12),
	}
	a.inputs[fieldVoterID] = newInput("voter id")
	a.inputs[fieldCandidate] = newInput("candidate name")
	a.inputs[fieldVoterID].Focus()
	return a
}

func newInput(placeholder string) textinput.Model {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.Prompt = "> "
	ti.CharLimit = 128
	ti.Width = 40
	ti.Cursor.SetMode(cursor.CursorStatic)
	return ti
}

// Init fetches the chain once on startup.
func (a *App) Init() tea.Cmd {
	return a.fetchChain()
}

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch m := msg.(type) {
	case tea.WindowSizeMsg:
		a.resize(m.Width, m.Height)
		return a, nil
	case tea.KeyMsg:
		return a.handleKey(m)
	case voteResultMsg:
		return a, a.handleVoteResult(m)
	case chainResultMsg:
		a.handleChainResult(m)
		return a, nil
	case hideNoticeMsg:
		if a.coalesce && m.gen != a.notice.gen {
			return a, nil
		}
		a.notice.visible = false
		return a, nil
	}
	return a, nil
}

func (a *App) handleKey(m tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(m, a.keys.Quit):
		return a, tea.Quit
	case key.Matches(m, a.keys.Submit):
		return a, a.submit()
	case key.Matches(m, a.keys.Refresh):
		return a, a.fetchChain()
	case key.Matches(m, a.keys.NextField):
		a.setFocus((a.focus + 1) % fieldCount)
		return a, nil
	case key.Matches(m, a.keys.PrevField):
		a.setFocus((a.focus + fieldCount - 1) % fieldCount)
		return a, nil
	case key.Matches(m, a.keys.ScrollUp, a.keys.ScrollDown):
		var cmd tea.Cmd
		a.chainView, cmd = a.chainView.Update(m)
		return a, cmd
	}
	var cmd tea.Cmd
	a.inputs[a.focus], cmd = a.inputs[a.focus].Update(m)
	return a, cmd
}

func (a *App) setFocus(i int) {
	a.inputs[a.focus].Blur()
	a.focus = i
	a.inputs[a.focus].Focus()
}

// submit validates the form locally; an incomplete vote never reaches the network.
func (a *App) submit() tea.Cmd {
	v, err := ballot.NewVote(a.inputs[fieldVoterID].Value(), a.inputs[fieldCandidate].Value())
	if err != nil {
		return a.notify(noticeError, MsgIncompleteVote)
	}
	a.votePending++
	return a.submitCmd(v)
}

// handleVoteResult is the second step of the submit pipeline: on success the
// form is reset and a chain refresh follows.
func (a *App) handleVoteResult(m voteResultMsg) tea.Cmd {
	a.votePending--
	if m.err != nil {
		a.log.WithError(m.err).WithField("voter_id", m.vote.VoterID).Info("vote rejected")
		return a.notify(noticeError, VoteErrorText(m.err))
	}
	a.log.WithField("voter_id", m.vote.VoterID).Info("vote accepted")
	hide := a.notify(noticeSuccess, VoteSuccessText(m.message))
	for i := range a.inputs {
		a.inputs[i].Reset()
	}
	return tea.Batch(hide, a.fetchChain())
}

func (a *App) handleChainResult(m chainResultMsg) {
	a.chainPending--
	if m.seq <= a.chainApplied {
		a.log.WithFields(logrus.Fields{"seq": m.seq, "applied": a.chainApplied}).Debug("dropping stale chain result")
		return
	}
	a.chainApplied = m.seq
	if m.err != nil {
		a.log.WithError(m.err).Warn("fetch chain failed")
		a.setChainText(MsgChainFailed)
		return
	}
	a.setChainText(m.text)
}

func (a *App) setChainText(s string) {
	a.chainText = s
	a.chainView.SetContent(s)
	a.chainView.GotoTop()
}

// notify shows a notification and returns the command that hides it again.
func (a *App) notify(kind noticeKind, text string) tea.Cmd {
	a.notice.gen++
	a.notice.kind = kind
	a.notice.text = text
	a.notice.visible = true
	return a.hideCmd(a.notice.gen)
}

func (a *App) resize(w, h int) {
	a.width = w
	a.height = h
	a.help.Width = w
	vw := w - chainBox.GetHorizontalFrameSize()
	if vw < 20 {
		vw = 20
	}
	vh := h - chromeHeight - chainBox.GetVerticalFrameSize()
	if vh < 3 {
		vh = 3
	}
	a.chainView.Width = vw
	a.chainView.Height = vh
	for i := range a.inputs {
		a.inputs[i].Width = min(40, max(10, w-labelStyle.GetWidth()-4))
	}
}
