package summary

import (
	"fmt"
	"image/color"
	"strings"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/mathmedha/medha/internal/quiz"
	"github.com/mathmedha/medha/internal/rewards"
	"github.com/mathmedha/medha/internal/router"
	"github.com/mathmedha/medha/internal/screen"
	"github.com/mathmedha/medha/internal/ui/layout"
	"github.com/mathmedha/medha/internal/ui/theme"
)

// maxAwardLines caps the reward list so the screen fits small terminals.
const maxAwardLines = 8

var (
	homeKey  = key.NewBinding(key.WithKeys("enter", "esc"), key.WithHelp("enter", "home"))
	againKey = key.NewBinding(key.WithKeys("p"), key.WithHelp("p", "play again"))
)

// SummaryScreen displays the results of a finished journey.
type SummaryScreen struct {
	summary   quiz.Summary
	awards    []rewards.Award
	playAgain func() screen.Screen
}

var _ screen.Screen = (*SummaryScreen)(nil)
var _ screen.KeyBindingProvider = (*SummaryScreen)(nil)
var _ screen.StatsProvider = (*SummaryScreen)(nil)

// New creates a new SummaryScreen. playAgain may be nil.
func New(summary quiz.Summary, awards []rewards.Award, playAgain func() screen.Screen) *SummaryScreen {
	return &SummaryScreen{summary: summary, awards: awards, playAgain: playAgain}
}

func (s *SummaryScreen) Init() tea.Cmd {
	return nil
}

func (s *SummaryScreen) Title() string {
	return "Journey Complete"
}

func (s *SummaryScreen) KeyBindings() []key.Binding {
	if s.playAgain == nil {
		return []key.Binding{homeKey}
	}
	return []key.Binding{homeKey, againKey}
}

func (s *SummaryScreen) HeaderStats() layout.HeaderStats {
	return layout.HeaderStats{Stars: s.summary.Stars, Badges: s.summary.Badges}
}

func (s *SummaryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyPressMsg)
	if !ok {
		return s, nil
	}
	switch {
	case key.Matches(kmsg, homeKey):
		return s, func() tea.Msg { return router.PopScreenMsg{} }
	case key.Matches(kmsg, againKey) && s.playAgain != nil:
		next := s.playAgain()
		return s, func() tea.Msg { return router.ReplaceScreenMsg{Screen: next} }
	}
	return s, nil
}

func (s *SummaryScreen) View(width, height int) string {
	sum := s.summary
	center := func(str string) string {
		return lipgloss.PlaceHorizontal(width, lipgloss.Center, str)
	}

	var b strings.Builder

	b.WriteString(center(lipgloss.NewStyle().
		Foreground(theme.Primary).
		Bold(true).
		Render(headline(sum))))
	b.WriteString("\n\n")

	secs := int(sum.Duration.Seconds())
	b.WriteString(center(lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Render(fmt.Sprintf("Time: %d:%02d", secs/60, secs%60))))
	b.WriteString("\n\n")

	statsLine := fmt.Sprintf("Answered: %d      Correct: %d      Accuracy: %.0f%%",
		sum.TotalAttempted, sum.TotalCorrect, sum.Accuracy()*100)
	b.WriteString(center(theme.Body.Render(statsLine)))
	b.WriteString("\n")

	rewardLine := theme.StarStyle.Render(fmt.Sprintf("★ %d stars", sum.Stars)) + "    " +
		theme.BadgeStyle.Render(fmt.Sprintf("✪ %d badges", sum.Badges)) + "    " +
		theme.PlanetStyle.Render(fmt.Sprintf("◉ %d/%d planets", sum.PlanetsRevealed, len(rewards.Journey))) + "    " +
		theme.Body.Render(fmt.Sprintf("best streak %d", sum.BestStreak))
	b.WriteString(center(rewardLine))
	b.WriteString("\n\n")

	if len(s.awards) == 0 {
		return b.String()
	}

	divider := lipgloss.NewStyle().Foreground(theme.Border).Render(
		strings.Repeat("─", max(0, min(width-8, 60))))
	b.WriteString(center(lipgloss.NewStyle().Foreground(theme.TextDim).Render("Rewards")))
	b.WriteString("\n")
	b.WriteString(center(divider))
	b.WriteString("\n\n")

	// Newest rewards are the most interesting; show the tail.
	shown := s.awards
	if len(shown) > maxAwardLines {
		b.WriteString(center(theme.Hint.Render(fmt.Sprintf("… and %d more", len(shown)-maxAwardLines))))
		b.WriteString("\n")
		shown = shown[len(shown)-maxAwardLines:]
	}
	for _, a := range shown {
		line := fmt.Sprintf("%s %s %s · %s", a.Type.Icon(), a.Rarity.DisplayName(), a.Name, a.Reason)
		b.WriteString(center(lipgloss.NewStyle().Foreground(rarityColor(a.Rarity)).Render(line)))
		b.WriteString("\n")
	}

	return b.String()
}

func headline(sum quiz.Summary) string {
	switch {
	case sum.Celebrating:
		return "You conquered the galaxy!"
	case sum.TotalAttempted == 0:
		return "Time's up!"
	case sum.Accuracy() >= 0.9:
		return "Stellar journey!"
	default:
		return "Journey complete!"
	}
}

// rarityColor returns the theme color for a reward rarity.
func rarityColor(r rewards.Rarity) color.Color {
	switch r {
	case rewards.RarityCommon:
		return theme.Text
	case rewards.RarityRare:
		return theme.Secondary
	case rewards.RarityEpic:
		return theme.Primary
	case rewards.RarityLegendary:
		return theme.Gold
	default:
		return theme.Text
	}
}
