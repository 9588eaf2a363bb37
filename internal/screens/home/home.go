package home

import (
	"context"
	"log/slog"
	"strings"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"

	"github.com/mathmedha/medha/internal/rewards"
	"github.com/mathmedha/medha/internal/router"
	"github.com/mathmedha/medha/internal/screen"
	"github.com/mathmedha/medha/internal/screens/history"
	sessionscreen "github.com/mathmedha/medha/internal/screens/session"
	"github.com/mathmedha/medha/internal/settings"
	"github.com/mathmedha/medha/internal/store"
	"github.com/mathmedha/medha/internal/ui/components"
	"github.com/mathmedha/medha/internal/ui/layout"
)

const (
	itemStart = iota
	itemHistory
	itemVoice
	itemKeypad
	itemExit
)

// Stats are the lifetime reward totals shown on the home screen.
type Stats struct {
	Stars    int
	Badges   int
	Planets  int
	Journeys int
	Galaxies int
}

// statsLoadedMsg carries freshly loaded lifetime totals.
type statsLoadedMsg struct {
	stats Stats
}

// HomeScreen is the main home screen of the application.
type HomeScreen struct {
	journey  sessionscreen.Options
	events   store.EventRepo
	settings *settings.Settings

	menu   components.Menu
	stats  Stats
	width  int
	height int
}

var _ screen.Screen = (*HomeScreen)(nil)
var _ screen.KeyBindingProvider = (*HomeScreen)(nil)
var _ screen.StatsProvider = (*HomeScreen)(nil)

// New creates a new HomeScreen. journey holds what every new journey
// screen needs; its Events and Settings also back the home screen.
func New(journey sessionscreen.Options) *HomeScreen {
	if journey.Settings == nil {
		journey.Settings = settings.New(settings.Default())
	}
	h := &HomeScreen{
		journey:  journey,
		events:   journey.Events,
		settings: journey.Settings,
	}

	items := []components.MenuItem{
		itemStart: {Label: "START JOURNEY", Action: h.startJourney},
		itemHistory: {Label: "HISTORY", Disabled: h.events == nil, Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: history.New(h.events)}
			}
		}},
		itemVoice: {Action: func() tea.Cmd {
			h.settings.ToggleMuted()
			return nil
		}},
		itemKeypad: {Action: func() tea.Cmd {
			h.settings.ToggleKeypad()
			return nil
		}},
		itemExit: {Label: "EXIT", Action: func() tea.Cmd {
			return tea.Quit
		}},
	}
	h.menu = components.NewMenu(items)
	return h
}

func (h *HomeScreen) startJourney() tea.Cmd {
	opts := h.journey
	opts.Width, opts.Height = h.width, h.height
	next := sessionscreen.New(opts)
	return func() tea.Msg {
		return router.PushScreenMsg{Screen: next}
	}
}

// Init loads the lifetime totals. It runs again whenever the home screen
// is exposed by a pop, so the totals include the journey just played.
func (h *HomeScreen) Init() tea.Cmd {
	if h.events == nil {
		return nil
	}
	events := h.events
	return func() tea.Msg {
		counts, _, err := events.RewardCounts(context.Background())
		if err != nil {
			slog.Warn("load reward counts", "err", err)
			return nil
		}
		return statsLoadedMsg{stats: statsFromCounts(counts)}
	}
}

func statsFromCounts(counts map[string]int) Stats {
	return Stats{
		Stars:    counts[string(rewards.RewardStar)],
		Badges:   counts[string(rewards.RewardBadge)],
		Planets:  counts[string(rewards.RewardPlanet)],
		Journeys: counts[string(rewards.RewardSession)],
		Galaxies: counts[string(rewards.RewardCelebration)],
	}
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case statsLoadedMsg:
		h.stats = msg.stats
		return h, nil
	case tea.WindowSizeMsg:
		h.width, h.height = msg.Width, msg.Height
		return h, nil
	}
	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

// Stats returns the lifetime totals last loaded.
func (h *HomeScreen) Stats() Stats {
	return h.stats
}

func (h *HomeScreen) HeaderStats() layout.HeaderStats {
	return layout.HeaderStats{
		Stars:  h.stats.Stars,
		Badges: h.stats.Badges,
		Muted:  h.settings.Muted(),
	}
}

func (h *HomeScreen) KeyBindings() []key.Binding {
	return []key.Binding{h.menu.KeyMap.Up, h.menu.KeyMap.Select}
}

func (h *HomeScreen) labels() []string {
	out := make([]string, len(h.menu.Items))
	for i, it := range h.menu.Items {
		out[i] = it.Label
	}
	out[itemVoice] = onOff("VOICE", !h.settings.Muted())
	out[itemKeypad] = onOff("KEYPAD", h.settings.KeypadVisible())
	return out
}

func onOff(name string, on bool) string {
	if on {
		return name + ": ON"
	}
	return name + ": OFF"
}

func (h *HomeScreen) View(width, height int) string {
	// height is the content area; estimate full terminal height
	// by adding back header (3) + footer (3) + frame gaps
	termHeight := height + 8
	compact := termHeight < 34 || width < 80

	cw := components.ContentWidth(width)

	var sections []string
	sections = append(sections, renderTitle(cw, compact))
	if !compact {
		sections = append(sections, renderMascotBox(h.mascotVariant(), cw))
	}
	sections = append(sections, renderStatsBar(h.stats, cw, compact))

	disabled := make(map[int]bool)
	for i, it := range h.menu.Items {
		disabled[i] = it.Disabled
	}
	if compact {
		sections = append(sections, renderMenuCompact(h.labels(), h.menu.Selected, cw, disabled))
	} else {
		sections = append(sections, renderMenu(h.labels(), h.menu.Selected, cw, disabled))
	}

	return components.CabinetFrame(strings.Join(sections, "\n\n"), width, height)
}

func (h *HomeScreen) mascotVariant() MascotVariant {
	switch {
	case h.stats.Galaxies > 0:
		return MascotCelebrating
	case h.settings.Muted():
		return MascotQuiet
	default:
		return MascotIdle
	}
}

func (h *HomeScreen) Title() string {
	return "Home"
}
