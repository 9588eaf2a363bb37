package history

import (
	"context"
	"fmt"
	"image/color"
	"strings"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"

	"charm.land/lipgloss/v2"

	"github.com/mathmedha/medha/internal/rewards"
	"github.com/mathmedha/medha/internal/router"
	"github.com/mathmedha/medha/internal/screen"
	"github.com/mathmedha/medha/internal/store"
	"github.com/mathmedha/medha/internal/ui/components"
	"github.com/mathmedha/medha/internal/ui/theme"
)

// historyLimit is how many past journeys are listed.
const historyLimit = 50

type historyLoadedMsg struct {
	Sessions []store.SessionSummaryRecord
	Rewards  map[string][]store.RewardEventRecord // sessionID → rewards
	Counts   map[string]int
	Err      error
}

type keyMap struct {
	Up      key.Binding
	Down    key.Binding
	Details key.Binding
	Back    key.Binding
}

var keys = keyMap{
	Up:      key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑↓", "navigate")),
	Down:    key.NewBinding(key.WithKeys("down", "j")),
	Details: key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "details")),
	Back:    key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "back")),
}

// HistoryScreen lists past journeys and the rewards each one earned.
type HistoryScreen struct {
	eventRepo store.EventRepo
	sessions  []store.SessionSummaryRecord
	rewards   map[string][]store.RewardEventRecord
	counts    map[string]int
	selected  int
	expanded  map[int]bool
	loaded    bool
	errMsg    string
}

var _ screen.Screen = (*HistoryScreen)(nil)
var _ screen.KeyBindingProvider = (*HistoryScreen)(nil)

// New creates a new HistoryScreen.
func New(eventRepo store.EventRepo) *HistoryScreen {
	return &HistoryScreen{
		eventRepo: eventRepo,
		expanded:  make(map[int]bool),
	}
}

func (s *HistoryScreen) Init() tea.Cmd {
	repo := s.eventRepo
	return func() tea.Msg {
		ctx := context.Background()

		sessions, err := repo.QuerySessionSummaries(ctx, store.QueryOpts{Limit: historyLimit})
		if err != nil {
			return historyLoadedMsg{Err: err}
		}

		counts, _, err := repo.RewardCounts(ctx)
		if err != nil {
			return historyLoadedMsg{Err: err}
		}

		// Rewards are optional detail; show the list even if they fail.
		all, err := repo.QueryRewardEvents(ctx, store.QueryOpts{})
		if err != nil {
			return historyLoadedMsg{Sessions: sessions, Counts: counts}
		}
		bySession := make(map[string][]store.RewardEventRecord)
		for _, r := range all {
			bySession[r.SessionID] = append(bySession[r.SessionID], r)
		}

		return historyLoadedMsg{Sessions: sessions, Rewards: bySession, Counts: counts}
	}
}

func (s *HistoryScreen) Title() string {
	return "History"
}

func (s *HistoryScreen) KeyBindings() []key.Binding {
	return []key.Binding{keys.Details, keys.Up, keys.Back}
}

func (s *HistoryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case historyLoadedMsg:
		if msg.Err != nil {
			s.errMsg = msg.Err.Error()
		} else {
			s.sessions = msg.Sessions
			s.rewards = msg.Rewards
			s.counts = msg.Counts
		}
		s.loaded = true
		return s, nil

	case tea.KeyPressMsg:
		switch {
		case key.Matches(msg, keys.Back):
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		case key.Matches(msg, keys.Up):
			if s.selected > 0 {
				s.selected--
			}
		case key.Matches(msg, keys.Down):
			if s.selected < len(s.sessions)-1 {
				s.selected++
			}
		case key.Matches(msg, keys.Details):
			s.expanded[s.selected] = !s.expanded[s.selected]
		}
	}
	return s, nil
}

func (s *HistoryScreen) View(width, height int) string {
	if s.errMsg != "" {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.Error).
			Render(fmt.Sprintf("\n\nError: %s", s.errMsg))
	}
	if !s.loaded {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).
			Render("\n\n  Loading history...")
	}
	if len(s.sessions) == 0 {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).Italic(true).
			Render("\n\n  No journeys yet. Blast off from the home screen!")
	}

	center := func(str string) string {
		return lipgloss.PlaceHorizontal(width, lipgloss.Center, str)
	}

	var b strings.Builder
	b.WriteString(center(components.ArcadeCard("Lifetime", s.renderTotals(), components.ContentWidth(width))))
	b.WriteString("\n\n")

	for i, sess := range s.sessions {
		var accuracy float64
		if sess.Attempted > 0 {
			accuracy = float64(sess.Correct) / float64(sess.Attempted) * 100
		}

		prefix := "  "
		if i == s.selected {
			prefix = "> "
		}

		line := fmt.Sprintf("%s%s  %d:%02d  %d answered  %.0f%%  ★%d ✪%d ◉%d",
			prefix,
			sess.Timestamp.Format("Jan 02 15:04"),
			sess.DurationSecs/60, sess.DurationSecs%60,
			sess.Attempted, accuracy,
			sess.Stars, sess.Badges, sess.Planets)

		style := lipgloss.NewStyle().Foreground(theme.Text)
		if i == s.selected {
			style = style.Foreground(theme.Primary).Bold(true)
		}
		b.WriteString(center(style.Render(line)))
		b.WriteString("\n")

		if s.expanded[i] {
			b.WriteString(s.renderRewards(sess.SessionID, center))
		}
	}

	return b.String()
}

func (s *HistoryScreen) renderTotals() string {
	return fmt.Sprintf("%s   %s   %s   %s",
		theme.StarStyle.Render(fmt.Sprintf("★ %d", s.counts[string(rewards.RewardStar)])),
		theme.BadgeStyle.Render(fmt.Sprintf("✪ %d", s.counts[string(rewards.RewardBadge)])),
		theme.PlanetStyle.Render(fmt.Sprintf("◉ %d", s.counts[string(rewards.RewardPlanet)])),
		theme.CelebrationStyle.Render(fmt.Sprintf("✺ %d", s.counts[string(rewards.RewardCelebration)])),
	)
}

func (s *HistoryScreen) renderRewards(sessionID string, center func(string) string) string {
	list := s.rewards[sessionID]
	if len(list) == 0 {
		return center(lipgloss.NewStyle().Foreground(theme.TextDim).Italic(true).
			Render("    No rewards this journey")) + "\n"
	}

	var b strings.Builder
	for _, r := range list {
		rt := rewards.RewardType(r.RewardType)
		rarity := rewards.Rarity(r.Rarity)
		line := fmt.Sprintf("    %s %s %s · %s", rt.Icon(), rarity.DisplayName(), r.Name, r.Reason)
		b.WriteString(center(lipgloss.NewStyle().Foreground(rarityColor(rarity)).Render(line)))
		b.WriteString("\n")
	}
	return b.String()
}

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
