package home

import (
	"fmt"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/tensequiz/internal/ui/theme"
)

const titleFull = `╔╦╗╔═╗╔╗╔╔═╗╔═╗  ╔═╗ ╦ ╦╦╔═╗
 ║ ║╣ ║║║╚═╗║╣   ║═╬╗║ ║║╔═╝
 ╩ ╚═╝╝╚╝╚═╝╚═╝  ╚═╝╚╚═╝╩╚═╝`

const titleCompact = "T · E · N · S · E   Q · U · I · Z"

// buttonWidth is the fixed width for menu buttons.
const buttonWidth = 22

// renderTitle returns the styled title block or compact fallback.
func renderTitle(cw int, compact bool) string {
	style := lipgloss.NewStyle().
		Foreground(theme.Accent).
		Bold(true)

	title := titleFull
	if compact {
		title = titleCompact
	}
	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render(style.Render(title))
}

// renderWordsBar shows how many words the run covers and a sample pair.
func renderWordsBar(words int, samplePresent, samplePast string, cw int) string {
	count := lipgloss.NewStyle().Foreground(theme.Accent).Bold(true).
		Render(fmt.Sprintf("★ %d WORDS", words))

	stats := count
	if samplePresent != "" {
		sample := lipgloss.NewStyle().Foreground(theme.Secondary).
			Render(fmt.Sprintf("%s → %s", samplePresent, samplePast))
		stats += "   " + sample
	}

	return lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(theme.Secondary).
		Width(cw - 2).
		Align(lipgloss.Center).
		Padding(0, 1).
		Render(stats)
}
