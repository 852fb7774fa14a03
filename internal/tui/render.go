package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// rows used by everything except the chain viewport
const chromeHeight = 9

func (a *App) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("votechain"))
	b.WriteString("\n\n")
	b.WriteString(a.renderField("Voter ID", fieldVoterID))
	b.WriteString("\n")
	b.WriteString(a.renderField("Candidate", fieldCandidate))
	b.WriteString("\n\n")
	b.WriteString(a.renderNotice())
	b.WriteString("\n\n")
	b.WriteString(a.renderChainHeader())
	b.WriteString("\n")
	b.WriteString(chainBox.Render(a.chainView.View()))
	b.WriteString("\n")
	b.WriteString(footerStyle.Render(a.help.View(a.keys)))
	return b.String()
}

func (a *App) renderField(label string, idx int) string {
	style := labelStyle
	if a.focus == idx {
		style = focusLabel
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, style.Render(label), a.inputs[idx].View())
}

func (a *App) renderNotice() string {
	if !a.notice.visible {
		if a.votePending > 0 {
			return pendingText.Render("submitting...")
		}
		return ""
	}
	if a.notice.kind == noticeSuccess {
		return successStyle.Render(flatten(a.notice.text))
	}
	return errorStyle.Render(flatten(a.notice.text))
}

func (a *App) renderChainHeader() string {
	h := headerStyle.Render("Blockchain")
	if a.chainPending > 0 {
		h += " " + pendingText.Render("refreshing...")
	}
	return h
}

func flatten(s string) string {
	return strings.ReplaceAll(s, "\n", " ")
}
