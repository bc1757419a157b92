package cmd

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"
)

// Color palette shared by the styled commands.
var (
	colPrimary = lipgloss.Color("#8B5CF6") // Violet
	colSuccess = lipgloss.Color("#22C55E") // Green
	colWarn    = lipgloss.Color("#F97316") // Orange
	colError   = lipgloss.Color("#F43F5E") // Rose
	colDim     = lipgloss.Color("#94A3B8") // Slate
	colBorder  = lipgloss.Color("#334155") // Slate
)

var (
	styleTitle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colPrimary)

	styleDim = lipgloss.NewStyle().
			Foreground(colDim)

	styleGood = lipgloss.NewStyle().
			Foreground(colSuccess).
			Bold(true)

	styleWarn = lipgloss.NewStyle().
			Foreground(colWarn)

	styleBad = lipgloss.NewStyle().
			Foreground(colError)

	styleCard = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colBorder).
			Padding(1, 2)
)

// masteryBar renders a 20-cell mastery bar colored by band.
func masteryBar(mastery float64) string {
	const width = 20
	filled := int(mastery*width + 0.5)
	if filled > width {
		filled = width
	}
	if filled < 0 {
		filled = 0
	}

	bar := strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
	switch {
	case mastery >= 0.7:
		return styleGood.Render(bar)
	case mastery >= 0.4:
		return styleWarn.Render(bar)
	default:
		return styleBad.Render(bar)
	}
}

func percent(v float64) string {
	return fmt.Sprintf("%3.0f%%", v*100)
}
