package tui

import "github.com/charmbracelet/lipgloss"

var (
	colorText    lipgloss.Color = "#cdd6f4"
	colorMuted   lipgloss.Color = "#a6adc8"
	colorBorder  lipgloss.Color = "#585b70"
	colorAccent  lipgloss.Color = "#89b4fa"
	colorSuccess lipgloss.Color = "#a6e3a1"
	colorSurface lipgloss.Color = "#313244"
)

var (
	titleStyle       = lipgloss.NewStyle().Bold(true).Underline(true)
	headerStyle      = lipgloss.NewStyle().Foreground(colorText).Bold(true)
	sortedHeadStyle  = lipgloss.NewStyle().Foreground(colorAccent).Bold(true)
	focusHeadStyle   = lipgloss.NewStyle().Background(colorSurface).Foreground(colorAccent).Bold(true)
	separatorStyle   = lipgloss.NewStyle().Foreground(colorBorder)
	cellStyle        = lipgloss.NewStyle().Foreground(colorText)
	placeholderStyle = lipgloss.NewStyle().Foreground(colorMuted)
	statusStyle      = lipgloss.NewStyle().Foreground(colorSuccess)
)
