package tui

import "github.com/charmbracelet/lipgloss"

// ---------------------------------------------------------------------------
// Catppuccin Mocha palette, true-color hex values
// https://catppuccin.com/palette
// ---------------------------------------------------------------------------

const (
	colorPink     lipgloss.Color = "#f5c2e7"
	colorRed      lipgloss.Color = "#f38ba8"
	colorYellow   lipgloss.Color = "#f9e2af"
	colorGreen    lipgloss.Color = "#a6e3a1"
	colorTeal     lipgloss.Color = "#94e2d5"
	colorLavender lipgloss.Color = "#b4befe"

	colorText     lipgloss.Color = "#cdd6f4"
	colorSubtext0 lipgloss.Color = "#a6adc8"
	colorOverlay0 lipgloss.Color = "#6c7086"
	colorSurface2 lipgloss.Color = "#585b70"
	colorSurface0 lipgloss.Color = "#313244"
	colorMantle   lipgloss.Color = "#181825"
)

// Semantic aliases
const (
	colorAccent  = colorPink
	colorFocus   = colorLavender
	colorSuccess = colorGreen
	colorError   = colorRed
	colorWarning = colorYellow
	colorInfo    = colorTeal
	colorMuted   = colorSubtext0
	colorBorder  = colorSurface2
)

var (
	titleStyle = lipgloss.NewStyle().Foreground(colorAccent).Bold(true).Underline(true)

	inputStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorBorder).
			Foreground(colorText).
			Padding(0, 1)
	focusedInputStyle = inputStyle.BorderForeground(colorFocus)
	errorStyle        = lipgloss.NewStyle().Foreground(colorError)
	hintStyle         = lipgloss.NewStyle().Foreground(colorOverlay0)
	arrowStyle        = lipgloss.NewStyle().Foreground(colorMuted).Padding(1, 1, 0, 1)

	menuStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorFocus).
			Background(colorMantle).
			Padding(0, 1)
	menuCursorStyle   = lipgloss.NewStyle().Foreground(colorAccent).Bold(true)
	menuDisabledStyle = lipgloss.NewStyle().Foreground(colorOverlay0).Strikethrough(true)
	menuRuleStyle     = lipgloss.NewStyle().Foreground(colorBorder)
	menuButtonStyle   = lipgloss.NewStyle().Foreground(colorInfo).Padding(1, 1, 0, 1)

	periodStyle    = lipgloss.NewStyle().Foreground(colorText).Background(colorSurface0).Padding(0, 1)
	statusStyle    = lipgloss.NewStyle().Foreground(colorSuccess)
	statusErrStyle = lipgloss.NewStyle().Foreground(colorWarning)
)
