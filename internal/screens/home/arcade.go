package home

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/mathmedha/medha/internal/ui/components"
	"github.com/mathmedha/medha/internal/ui/theme"
)

// Block-letter title.
const arcadeTitleFull = `███╗   ███╗███████╗██████╗ ██╗  ██╗ █████╗
████╗ ████║██╔════╝██╔══██╗██║  ██║██╔══██╗
██╔████╔██║█████╗  ██║  ██║███████║███████║
██║╚██╔╝██║██╔══╝  ██║  ██║██╔══██║██╔══██║
██║ ╚═╝ ██║███████╗██████╔╝██║  ██║██║  ██║
╚═╝     ╚═╝╚══════╝╚═════╝ ╚═╝  ╚═╝╚═╝  ╚═╝`

const arcadeTitleCompact = "M · E · D · H · A"

const subtitle = "a times-table journey through space"

// renderTitle returns the styled title block or compact fallback.
func renderTitle(cw int, compact bool) string {
	style := lipgloss.NewStyle().
		Foreground(theme.Gold).
		Bold(true)

	title := arcadeTitleFull
	if compact {
		title = arcadeTitleCompact
	}
	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render(style.Render(title) + "\n" + theme.Hint.Render(subtitle))
}

// renderStatsBar renders the lifetime totals in a bordered box matching
// content width.
func renderStatsBar(s Stats, cw int, compact bool) string {
	starStyle := theme.StarStyle
	badgeStyle := theme.BadgeStyle
	planetStyle := theme.PlanetStyle
	dimStyle := lipgloss.NewStyle().Foreground(theme.TextDim)

	var stats string
	if compact {
		stats = fmt.Sprintf("%s %s %s %s",
			starStyle.Render(fmt.Sprintf("★%d", s.Stars)),
			badgeStyle.Render(fmt.Sprintf("✪%d", s.Badges)),
			planetStyle.Render(fmt.Sprintf("◉%d", s.Planets)),
			dimStyle.Render(fmt.Sprintf("🚀%d", s.Journeys)),
		)
	} else {
		stats = fmt.Sprintf("%s  %s  %s  %s",
			starStyle.Render(fmt.Sprintf("★ %d STARS", s.Stars)),
			badgeStyle.Render(fmt.Sprintf("✪ %d BADGES", s.Badges)),
			planetStyle.Render(fmt.Sprintf("◉ %d PLANETS", s.Planets)),
			dimStyle.Render(fmt.Sprintf("🚀 %d TRIPS", s.Journeys)),
		)
	}

	return lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(theme.Cyan).
		Width(cw - 2). // account for border chars
		Align(lipgloss.Center).
		Padding(0, 1).
		Render(stats)
}

// buttonWidth is the fixed width for menu buttons.
const buttonWidth = 22

// renderMenu renders each menu item as a fixed-width button.
func renderMenu(items []string, selected int, cw int, disabled map[int]bool) string {
	disabledBtn := lipgloss.NewStyle().
		Width(buttonWidth).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Border).
		Padding(0, 1)

	var buttons []string
	for i, label := range items {
		if disabled[i] {
			buttons = append(buttons, disabledBtn.Render(label))
			continue
		}
		buttons = append(buttons, components.ArcadeButton(label, i == selected, buttonWidth))
	}

	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render(strings.Join(buttons, "\n"))
}

// renderMenuCompact renders menu items as plain lines for small terminals
// where bordered buttons would overflow.
func renderMenuCompact(items []string, selected int, cw int, disabled map[int]bool) string {
	var lines []string
	for i, label := range items {
		var line string
		switch {
		case disabled[i]:
			line = lipgloss.NewStyle().
				Foreground(theme.TextDim).
				Render("   " + label)
		case i == selected:
			line = lipgloss.NewStyle().
				Foreground(theme.BgDark).
				Background(theme.Gold).
				Bold(true).
				Render(" ▸ " + label + " ")
		default:
			line = lipgloss.NewStyle().
				Foreground(theme.Text).
				Render("   " + label)
		}
		lines = append(lines, line)
	}

	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render(strings.Join(lines, "\n"))
}

// renderMascotBox renders the mascot centered in a box matching content width.
func renderMascotBox(variant MascotVariant, cw int) string {
	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render(RenderMascot(variant))
}
