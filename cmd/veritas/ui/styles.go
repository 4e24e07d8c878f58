// Package ui provides the visual styling for the veritas CLI.
package ui

import (
	"github.com/charmbracelet/lipgloss"
)

// Semantic colors shared by every command's output.
var (
	Primary = lipgloss.Color("#7C3AED") // Violet
	Muted   = lipgloss.Color("#6B7280") // Gray
	Border  = lipgloss.Color("#374151") // Slate

	Success = lipgloss.Color("#22C55E") // Green
	Danger  = lipgloss.Color("#EF4444") // Red
	Warning = lipgloss.Color("#EAB308") // Yellow
	Info    = lipgloss.Color("#3B82F6") // Blue
	Neutral = lipgloss.Color("#9CA3AF") // Light gray
)

// Styles holds the pre-built lipgloss styles used by the renderers.
type Styles struct {
	Title    lipgloss.Style
	Subtitle lipgloss.Style
	Body     lipgloss.Style
	Muted    lipgloss.Style
	Bold     lipgloss.Style

	Success lipgloss.Style
	Error   lipgloss.Style
	Warning lipgloss.Style
	Info    lipgloss.Style

	Score   lipgloss.Style
	Divider lipgloss.Style
	Panel   lipgloss.Style
}

// NewStyles creates the styles used across the CLI renderers.
func NewStyles() Styles {
	return Styles{
		Title: lipgloss.NewStyle().
			Foreground(Primary).
			Bold(true),

		Subtitle: lipgloss.NewStyle().
			Foreground(Muted).
			Italic(true),

		Body: lipgloss.NewStyle(),

		Muted: lipgloss.NewStyle().
			Foreground(Muted),

		Bold: lipgloss.NewStyle().
			Bold(true),

		Success: lipgloss.NewStyle().
			Foreground(Success).
			Bold(true),

		Error: lipgloss.NewStyle().
			Foreground(Danger).
			Bold(true),

		Warning: lipgloss.NewStyle().
			Foreground(Warning),

		Info: lipgloss.NewStyle().
			Foreground(Info),

		Score: lipgloss.NewStyle().
			Bold(true).
			Padding(0, 1),

		Divider: lipgloss.NewStyle().
			Foreground(Border),

		Panel: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Border).
			Padding(0, 1),
	}
}

// StatusStyle resolves a semantic color name from a verdict status config
// to a concrete style. Unknown names render unstyled.
func StatusStyle(color string) lipgloss.Style {
	switch color {
	case "green":
		return lipgloss.NewStyle().Foreground(Success).Bold(true)
	case "red":
		return lipgloss.NewStyle().Foreground(Danger).Bold(true)
	case "yellow":
		return lipgloss.NewStyle().Foreground(Warning)
	case "blue":
		return lipgloss.NewStyle().Foreground(Info)
	case "gray":
		return lipgloss.NewStyle().Foreground(Neutral)
	}
	return lipgloss.NewStyle()
}

// ScoreStyle picks a style for an overall trust score. Thresholds follow
// the report legend: 70 and above reads healthy, 40 and above cautionary.
func ScoreStyle(score float64) lipgloss.Style {
	switch {
	case score >= 70:
		return lipgloss.NewStyle().Foreground(Success).Bold(true)
	case score >= 40:
		return lipgloss.NewStyle().Foreground(Warning).Bold(true)
	}
	return lipgloss.NewStyle().Foreground(Danger).Bold(true)
}
