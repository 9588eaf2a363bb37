package components

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/mathmedha/medha/internal/ui/theme"
)

// lowFraction is the share of time left below which the timer bar turns red.
const lowFraction = 0.2

// TimerBar displays the journey countdown as a draining bar.
type TimerBar struct {
	Remaining int
	Total     int
	Width     int
}

// NewTimerBar creates a timer bar for remaining of total seconds.
func NewTimerBar(remaining, total, width int) TimerBar {
	return TimerBar{
		Remaining: remaining,
		Total:     total,
		Width:     width,
	}
}

// Fraction returns the share of time left, clamped to [0, 1].
func (p TimerBar) Fraction() float64 {
	if p.Total <= 0 {
		return 0
	}
	f := float64(p.Remaining) / float64(p.Total)
	return max(0, min(1, f))
}

// View renders the bar followed by the time left as m:ss.
func (p TimerBar) View() string {
	label := fmt.Sprintf("  %d:%02d", p.Remaining/60, p.Remaining%60)
	labelStyle := lipgloss.NewStyle().Foreground(theme.Text).Bold(true)

	barWidth := p.Width - lipgloss.Width(label)
	if barWidth < 4 {
		barWidth = 4
	}

	filled := int(float64(barWidth) * p.Fraction())
	empty := barWidth - filled

	fill := theme.ProgressFilled
	if p.Fraction() < lowFraction {
		fill = theme.ProgressLow
		labelStyle = labelStyle.Foreground(theme.Error)
	}

	return fill.Render(strings.Repeat(" ", filled)) +
		theme.ProgressEmpty.Render(strings.Repeat(" ", empty)) +
		labelStyle.Render(label)
}
