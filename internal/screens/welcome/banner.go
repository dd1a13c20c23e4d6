package welcome

import (
	"charm.land/lipgloss/v2"

	"github.com/prepnova/prepnova/internal/ui/theme"
)

const bannerArt = `
██████╗ ██████╗ ███████╗██████╗ ███╗   ██╗ ██████╗ ██╗   ██╗ █████╗
██╔══██╗██╔══██╗██╔════╝██╔══██╗████╗  ██║██╔═══██╗██║   ██║██╔══██╗
██████╔╝██████╔╝█████╗  ██████╔╝██╔██╗ ██║██║   ██║██║   ██║███████║
██╔═══╝ ██╔══██╗██╔══╝  ██╔═══╝ ██║╚██╗██║██║   ██║╚██╗ ██╔╝██╔══██║
██║     ██║  ██║███████╗██║     ██║ ╚████║╚██████╔╝ ╚████╔╝ ██║  ██║
╚═╝     ╚═╝  ╚═╝╚══════╝╚═╝     ╚═╝  ╚═══╝ ╚═════╝   ╚═══╝  ╚═╝  ╚═╝`

const bannerCompact = "P R E P N O V A"

// RenderBanner returns the PREPNOVA banner styled in the primary color.
// Uses a compact fallback for terminals narrower than 72 columns.
func RenderBanner(width int) string {
	style := lipgloss.NewStyle().
		Foreground(theme.Primary).
		Bold(true)

	if width < 72 {
		return style.Render(bannerCompact)
	}
	return style.Render(bannerArt)
}
