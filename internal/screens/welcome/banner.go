package welcome

import (
	"charm.land/lipgloss/v2"

	"github.com/abhisek/tensequiz/internal/ui/theme"
)

const bannerArt = `
 ████████╗███████╗███╗   ██╗███████╗███████╗
 ╚══██╔══╝██╔════╝████╗  ██║██╔════╝██╔════╝
    ██║   █████╗  ██╔██╗ ██║███████╗█████╗
    ██║   ██╔══╝  ██║╚██╗██║╚════██║██╔══╝
    ██║   ███████╗██║ ╚████║███████║███████╗
    ╚═╝   ╚══════╝╚═╝  ╚═══╝╚══════╝╚══════╝`

const bannerCompact = "T E N S E   Q U I Z"

// RenderBanner returns the TENSE banner with the QUIZ subtitle.
// Uses a compact fallback for terminals narrower than 48 columns.
func RenderBanner(width int) string {
	style := lipgloss.NewStyle().
		Foreground(theme.Primary).
		Bold(true)

	if width < 48 {
		return style.Render(bannerCompact)
	}

	quiz := lipgloss.NewStyle().
		Foreground(theme.Accent).
		Bold(true).
		Render("Q  U  I  Z")
	return lipgloss.JoinVertical(lipgloss.Center, style.Render(bannerArt), "", quiz)
}
