package tui

import "github.com/charmbracelet/lipgloss"

// ---------------------------------------------------------------------------
// Catppuccin Mocha palette
// ---------------------------------------------------------------------------

const (
	colorPink     lipgloss.Color = "#f5c2e7"
	colorMauve    lipgloss.Color = "#cba6f7"
	colorPeach    lipgloss.Color = "#fab387"
	colorGreen    lipgloss.Color = "#a6e3a1"
	colorLavender lipgloss.Color = "#b4befe"
	colorText     lipgloss.Color = "#cdd6f4"
	colorSubtext0 lipgloss.Color = "#a6adc8"
	colorOverlay1 lipgloss.Color = "#7f849c"
	colorSurface1 lipgloss.Color = "#45475a"
	colorSurface0 lipgloss.Color = "#313244"
	colorBase     lipgloss.Color = "#1e1e2e"
)

const (
	colorAccent = colorPink
	colorFocus  = colorLavender
)

var (
	titleStyle     = lipgloss.NewStyle().Bold(true).Foreground(colorAccent)
	containerStyle = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(colorSurface1).Padding(0, 1)
	activeBorder   = containerStyle.BorderForeground(colorFocus)
	badgeStyle     = lipgloss.NewStyle().Foreground(colorBase).Background(colorMauve).Padding(0, 1)
	removeStyle    = lipgloss.NewStyle().Foreground(colorBase).Background(colorMauve).Bold(true)
	arrowStyle     = lipgloss.NewStyle().Foreground(colorOverlay1)
	listRowStyle   = lipgloss.NewStyle().Foreground(colorText)
	selectedStyle  = lipgloss.NewStyle().Foreground(colorGreen).Bold(true)
	checkStyle     = lipgloss.NewStyle().Foreground(colorGreen)
	emojiCellStyle = lipgloss.NewStyle().Padding(0, 1)
	emojiFocused   = emojiCellStyle.Background(colorSurface0).Foreground(colorFocus).Bold(true)
	emptyStyle     = lipgloss.NewStyle().Foreground(colorOverlay1).Italic(true)
	hintStyle      = lipgloss.NewStyle().Foreground(colorPeach)
	filterStyle    = lipgloss.NewStyle().Foreground(colorSubtext0)
)
