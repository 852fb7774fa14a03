package tui

import "github.com/charmbracelet/lipgloss"

// Catppuccin Mocha, trimmed to what the vote screen uses.
const (
	colorPink     lipgloss.Color = "#f5c2e7"
	colorRed      lipgloss.Color = "#f38ba8"
	colorGreen    lipgloss.Color = "#a6e3a1"
	colorTeal     lipgloss.Color = "#94e2d5"
	colorLavender lipgloss.Color = "#b4befe"
	colorText     lipgloss.Color = "#cdd6f4"
	colorSubtext0 lipgloss.Color = "#a6adc8"
	colorOverlay1 lipgloss.Color = "#7f849c"
	colorSurface1 lipgloss.Color = "#45475a"
	colorBase     lipgloss.Color = "#1e1e2e"
)

const (
	colorBrand   = colorPink
	colorFocus   = colorLavender
	colorSuccess = colorGreen
	colorError   = colorRed
	colorInfo    = colorTeal
)

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(colorBrand)
	labelStyle  = lipgloss.NewStyle().Foreground(colorSubtext0).Width(11)
	focusLabel  = labelStyle.Foreground(colorFocus).Bold(true)
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(colorText)
	pendingText = lipgloss.NewStyle().Foreground(colorInfo).Italic(true)
	chainBox    = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(colorSurface1).Padding(0, 1)
	footerStyle = lipgloss.NewStyle().Foreground(colorOverlay1)

	successStyle = lipgloss.NewStyle().Foreground(colorBase).Background(colorSuccess).Bold(true).Padding(0, 1)
	errorStyle   = lipgloss.NewStyle().Foreground(colorBase).Background(colorError).Bold(true).Padding(0, 1)
)
