package components

import (
	"charm.land/lipgloss/v2"

	"github.com/mathmedha/medha/internal/ui/theme"
)

// ContentWidth returns the uniform inner width used for all cabinet
// sections, so boxes rendered at this width line up.
func ContentWidth(frameWidth int) int {
	// Leave room for cabinet border (2) + inner padding (4)
	return max(20, min(frameWidth-6, 60))
}

// CabinetFrame wraps content in a double-border cabinet frame,
// centering vertically and horizontally within the given dimensions.
func CabinetFrame(content string, width, height int) string {
	return lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(theme.Primary).
		Width(max(0, width-2)).
		Height(max(0, height-2)).
		Align(lipgloss.Center, lipgloss.Center).
		Render(content)
}

// ArcadeCard wraps content in a rounded-border card at the given content
// width, with an optional heading above the body.
func ArcadeCard(heading, content string, cw int) string {
	if heading != "" {
		content = lipgloss.NewStyle().Foreground(theme.Gold).Bold(true).Render(heading) + "\n\n" + content
	}
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Border).
		Width(cw - 2).
		Align(lipgloss.Center).
		Padding(1, 2).
		Render(content)
}

// ArcadeButton renders a fixed-width menu button.
func ArcadeButton(label string, selected bool, width int) string {
	if selected {
		return lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Bold(true).
			Foreground(theme.BgDark).
			Background(theme.Gold).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(theme.Gold).
			Padding(0, 1).
			Render("▸ " + label)
	}
	return lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Border).
		Padding(0, 1).
		Render(label)
}
