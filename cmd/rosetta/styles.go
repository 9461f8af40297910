package main

import "github.com/charmbracelet/lipgloss"

// Palette shared by every diagnostic the CLI prints. Translated messages
// carry their own styling and never pass through these.
const (
	ColorPrimary   = lipgloss.Color("#7C3AED")
	ColorMuted     = lipgloss.Color("#6B7280")
	ColorHighlight = lipgloss.Color("#3B82F6")
)

var (
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPrimary)

	SubtitleStyle = lipgloss.NewStyle().
			Foreground(ColorMuted)

	// LabelStyle aligns field names in the locale and explain listings
	LabelStyle = lipgloss.NewStyle().
			Foreground(ColorMuted).
			Width(12)

	ValueStyle = lipgloss.NewStyle().
			Foreground(ColorHighlight)
)

// field renders one "label value" row
func field(label, value string) string {
	return LabelStyle.Render(label) + ValueStyle.Render(value)
}
