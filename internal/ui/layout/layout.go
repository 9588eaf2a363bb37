package layout

import (
	"fmt"
	"strings"

	"charm.land/bubbles/v2/help"
	"charm.land/bubbles/v2/key"
	"charm.land/lipgloss/v2"

	"github.com/mathmedha/medha/internal/ui/theme"
)

const (
	MinWidth  = 60
	MinHeight = 20

	HeaderHeight = 3
	FooterHeight = 3

	CompactWidthThreshold  = 80
	CompactHeightThreshold = 28
)

// HeaderStats are the running totals shown on the right of the header.
type HeaderStats struct {
	Stars  int
	Badges int
	Muted  bool
}

// IsCompactWidth returns true if the terminal width is in compact range.
func IsCompactWidth(width int) bool {
	return width < CompactWidthThreshold
}

// IsCompactHeight returns true if the terminal height is in compact range.
func IsCompactHeight(height int) bool {
	return height < CompactHeightThreshold
}

// IsTooSmall returns true if the terminal is below minimum size.
func IsTooSmall(width, height int) bool {
	return width < MinWidth || height < MinHeight
}

// ContentHeight returns the available height for screen content.
func ContentHeight(totalHeight int) int {
	h := totalHeight - HeaderHeight - FooterHeight
	if h < 0 {
		return 0
	}
	return h
}

// RenderMinSizeMessage renders the "terminal too small" message.
func RenderMinSizeMessage(width, height int) string {
	msg := lipgloss.NewStyle().
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Width(width).
		Height(height).
		Render(fmt.Sprintf(
			"Terminal too small!\n\nPlease resize to at\nleast %d x %d\n\nCurrent: %d x %d",
			MinWidth, MinHeight, width, height,
		))
	return msg
}

// RenderHeader renders the application header bar.
func RenderHeader(title string, stats HeaderStats, width int) string {
	left := lipgloss.NewStyle().
		Foreground(theme.Primary).
		Bold(true).
		Render("  Math Medha")

	center := lipgloss.NewStyle().
		Foreground(theme.Text).
		Render(title)

	voice := "♪ on"
	if stats.Muted {
		voice = "♪ off"
	}
	right := lipgloss.NewStyle().
		Foreground(theme.Gold).
		Render(fmt.Sprintf("★ %d", stats.Stars)) +
		"   " +
		lipgloss.NewStyle().
			Foreground(theme.Cyan).
			Render(fmt.Sprintf("✪ %d", stats.Badges)) +
		"   " +
		lipgloss.NewStyle().
			Foreground(theme.TextDim).
			Render(voice)

	leftLen := lipgloss.Width(left)
	centerLen := lipgloss.Width(center)
	rightLen := lipgloss.Width(right)

	innerWidth := width - 4 // account for border padding
	if innerWidth < 0 {
		innerWidth = 0
	}

	leftGap := (innerWidth-centerLen)/2 - leftLen
	if leftGap < 1 {
		leftGap = 1
	}

	rightGap := innerWidth - leftLen - leftGap - centerLen - rightLen
	if rightGap < 1 {
		rightGap = 1
	}

	content := left + strings.Repeat(" ", leftGap) + center + strings.Repeat(" ", rightGap) + right

	box := lipgloss.NewStyle().
		Width(width).
		Background(theme.BgCard).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Border).
		Render(content)

	return box
}

// RenderFooter renders the footer with the short help for bindings.
func RenderFooter(bindings []key.Binding, width int) string {
	h := help.New()
	content := "  " + h.ShortHelpView(bindings)

	box := lipgloss.NewStyle().
		Width(width).
		Background(theme.BgCard).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Border).
		Render(content)

	return box
}

// RenderFrame composes the full frame: header + content + footer.
func RenderFrame(header, content, footer string, width, height int) string {
	headerHeight := lipgloss.Height(header)
	footerHeight := lipgloss.Height(footer)

	contentHeight := height - headerHeight - footerHeight
	if contentHeight < 0 {
		contentHeight = 0
	}

	styledContent := lipgloss.NewStyle().
		Width(width).
		Height(contentHeight).
		Render(content)

	return header + "\n" + styledContent + "\n" + footer
}
