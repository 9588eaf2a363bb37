package session

import (
	"fmt"
	"image/color"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/mathmedha/medha/internal/quiz"
	"github.com/mathmedha/medha/internal/rewards"
	"github.com/mathmedha/medha/internal/ui/components"
	"github.com/mathmedha/medha/internal/ui/layout"
	"github.com/mathmedha/medha/internal/ui/theme"
)

const (
	// reservedRows are the content rows not given to the star map: timer,
	// welcome line, question and feedback plus spacing.
	reservedRows = 7
	keypadColumn = 21
	mapMargin    = 2
	minMapWidth  = 20
	minMapHeight = 6
)

// mapSize returns the star-map canvas for the current terminal size.
func (s *SessionScreen) mapSize() (int, int) {
	if s.width == 0 || s.height == 0 {
		return rewards.DefaultMapWidth, rewards.DefaultMapHeight
	}
	w := s.width - mapMargin
	if s.opts.Settings.KeypadVisible() {
		w -= keypadColumn
	}
	h := layout.ContentHeight(s.height) - reservedRows
	return max(w, minMapWidth), max(h, minMapHeight)
}

func (s *SessionScreen) View(width, height int) string {
	if s.quitConfirm {
		return renderQuitConfirm(width, height)
	}

	cd := s.sess.Countdown()
	var b strings.Builder

	bar := components.NewTimerBar(cd.Remaining(), cd.Total(), max(20, width-4))
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, bar.View()))
	b.WriteString("\n")
	b.WriteString(s.renderWelcome(width))
	b.WriteString("\n")

	bounds := s.sess.Board().Bounds()
	t := s.sess.Tracker()
	sky := renderStarMap(s.sess.Board(), int(bounds.Width), int(bounds.Height), t.EffectActive(), cd.Elapsed())
	sky = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(skyBorder(t.EffectActive())).
		Render(sky)

	middle := sky
	if s.opts.Settings.KeypadVisible() {
		middle = lipgloss.JoinHorizontal(lipgloss.Center, sky, "  ", s.keypad.View())
	}
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, middle))
	b.WriteString("\n\n")

	b.WriteString(s.renderQuestion(width))
	b.WriteString("\n")
	b.WriteString(s.renderFeedback(width))

	return b.String()
}

func skyBorder(celebrating bool) color.Color {
	if celebrating {
		return theme.Nebula
	}
	return theme.Border
}

// renderWelcome renders the one-shot welcome line. It dims while fading
// and is blank once gone.
func (s *SessionScreen) renderWelcome(width int) string {
	style := lipgloss.NewStyle().Width(width).Align(lipgloss.Center)
	switch s.sess.Welcome() {
	case quiz.WelcomeShown:
		return style.Foreground(theme.Gold).Bold(true).
			Render("Welcome aboard, space cadet! Answer to launch your journey.")
	case quiz.WelcomeFading:
		return style.Foreground(theme.TextDim).Faint(true).
			Render("Welcome aboard, space cadet! Answer to launch your journey.")
	default:
		return ""
	}
}

func (s *SessionScreen) renderQuestion(width int) string {
	q := s.sess.Question()
	answer := s.sess.Buffer()
	cursor := lipgloss.NewStyle().Foreground(theme.Primary).Render("▌")

	line := lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render(q.Display+" = ") +
		lipgloss.NewStyle().Foreground(theme.Secondary).Bold(true).Render(answer) +
		cursor
	return lipgloss.PlaceHorizontal(width, lipgloss.Center, line)
}

// renderFeedback shows the verdict on the previous answer and any rewards
// it earned.
func (s *SessionScreen) renderFeedback(width int) string {
	last := s.sess.LastOutcome()
	if last == nil {
		return ""
	}

	var line string
	if last.Correct {
		line = theme.Correct.Render(fmt.Sprintf("✓ %s = %d", last.Question.Display, last.Question.Answer()))
	} else {
		line = theme.Incorrect.Render(fmt.Sprintf("✗ %s = %d, not %s", last.Question.Display, last.Question.Answer(), last.Answer))
	}

	for _, e := range last.Events {
		switch e.Kind {
		case quiz.BadgeGranted:
			line += "  " + theme.BadgeStyle.Render("✪ new badge!")
		case quiz.StarGranted:
			line += "  " + theme.StarStyle.Render("★ golden star!")
		case quiz.PlanetRevealed:
			line += "  " + theme.PlanetStyle.Render("◉ "+rewards.Journey[e.Index].Name+"!")
		case quiz.CelebrationEntered:
			line += "  " + theme.CelebrationStyle.Render("✺ galaxy conquered!")
		}
	}
	return lipgloss.PlaceHorizontal(width, lipgloss.Center, line)
}

// renderQuitConfirm renders the quit confirmation dialog.
func renderQuitConfirm(width, height int) string {
	var b strings.Builder
	b.WriteString("\n\n\n")

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Bold(true).
		Render("End this journey early?"))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render("Rewards you earned stay in your history."))
	b.WriteString("\n\n")

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Success).
		Render("[Y] Yes, head home"))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Primary).
		Render("[N] No, keep flying"))

	return b.String()
}
