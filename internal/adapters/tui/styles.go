package tui

import "github.com/charmbracelet/lipgloss"

// Gold-and-crimson palette of the fortune door.
var (
	colorGold    = lipgloss.Color("#D4AF37")
	colorCrimson = lipgloss.Color("#B22234")
	colorCream   = lipgloss.Color("#FFF8E7")
	colorMuted   = lipgloss.Color("#8C8C8C")
	colorDanger  = lipgloss.Color("#FF5252")
	colorSuccess = lipgloss.Color("#00E676")
	colorLine    = lipgloss.Color("#06C755")
)

var (
	styleTitle = lipgloss.NewStyle().
			Foreground(colorGold).
			Bold(true)

	styleDoor = lipgloss.NewStyle().
			Border(lipgloss.DoubleBorder()).
			BorderForeground(colorGold).
			Foreground(colorCream).
			Background(colorCrimson).
			Padding(1, 4).
			Align(lipgloss.Center)

	styleCard = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorGold).
			Padding(1, 2)

	styleModal = lipgloss.NewStyle().
			Border(lipgloss.ThickBorder()).
			BorderForeground(colorLine).
			Padding(1, 2)

	styleLabel    = lipgloss.NewStyle().Foreground(colorGold).Bold(true)
	styleMuted    = lipgloss.NewStyle().Foreground(colorMuted)
	styleError    = lipgloss.NewStyle().Foreground(colorDanger).Bold(true)
	styleSuccess  = lipgloss.NewStyle().Foreground(colorSuccess).Bold(true)
	styleEmblem   = lipgloss.NewStyle().Padding(0, 1)
	styleLink     = lipgloss.NewStyle().Foreground(colorLine).Underline(true)
	styleSelect   = lipgloss.NewStyle().Padding(0, 1).Border(lipgloss.NormalBorder()).BorderForeground(colorMuted)
	styleSelectOn = styleSelect.BorderForeground(colorGold).Bold(true)
)
