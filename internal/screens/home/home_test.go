package home

import (
	"context"
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/mathmedha/medha/internal/router"
	"github.com/mathmedha/medha/internal/screens/history"
	sessionscreen "github.com/mathmedha/medha/internal/screens/session"
	"github.com/mathmedha/medha/internal/settings"
	"github.com/mathmedha/medha/internal/store"
)

// mockEventRepo implements store.EventRepo with fixed reward counts.
type mockEventRepo struct {
	counts map[string]int
}

func (m *mockEventRepo) AppendSessionEvent(context.Context, store.SessionEventData) error {
	return nil
}
func (m *mockEventRepo) AppendRewardEvent(context.Context, store.RewardEventData) error {
	return nil
}
func (m *mockEventRepo) QuerySessionSummaries(context.Context, store.QueryOpts) ([]store.SessionSummaryRecord, error) {
	return nil, nil
}
func (m *mockEventRepo) QueryRewardEvents(context.Context, store.QueryOpts) ([]store.RewardEventRecord, error) {
	return nil, nil
}
func (m *mockEventRepo) RewardCounts(context.Context) (map[string]int, int, error) {
	return m.counts, 0, nil
}

func down(h *HomeScreen, n int) {
	for range n {
		h.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	}
}

func enter(h *HomeScreen) tea.Cmd {
	_, cmd := h.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	return cmd
}

func testHome(repo store.EventRepo) (*HomeScreen, *settings.Settings) {
	st := settings.New(settings.Default())
	return New(sessionscreen.Options{Events: repo, Settings: st}), st
}

func TestHome_LoadsStats(t *testing.T) {
	h, _ := testHome(&mockEventRepo{counts: map[string]int{"star": 12, "badge": 3, "celebration": 1}})
	h.Update(h.Init()())

	if h.Stats().Stars != 12 || h.Stats().Badges != 3 {
		t.Errorf("stats = %+v", h.Stats())
	}
	if h.HeaderStats().Stars != 12 {
		t.Errorf("header stars = %d, want 12", h.HeaderStats().Stars)
	}
	if h.mascotVariant() != MascotCelebrating {
		t.Error("expected the celebrating mascot after a conquered galaxy")
	}
}

func TestHome_NoRepo(t *testing.T) {
	h, _ := testHome(nil)
	if h.Init() != nil {
		t.Error("expected no load without a repo")
	}
	if !h.menu.Items[itemHistory].Disabled {
		t.Error("history should be disabled without a repo")
	}
}

func TestHome_StartJourney(t *testing.T) {
	h, _ := testHome(&mockEventRepo{})
	h.Update(tea.WindowSizeMsg{Width: 100, Height: 40})

	cmd := enter(h)
	if cmd == nil {
		t.Fatal("expected a command")
	}
	msg, ok := cmd().(router.PushScreenMsg)
	if !ok {
		t.Fatal("expected PushScreenMsg")
	}
	scr, ok := msg.Screen.(*sessionscreen.SessionScreen)
	if !ok {
		t.Fatalf("pushed %T, want *session.SessionScreen", msg.Screen)
	}
	if w := scr.Session().Board().Bounds().Width; w != 77 {
		t.Errorf("map width = %v, want 77 for a 100-column terminal", w)
	}
}

func TestHome_History(t *testing.T) {
	h, _ := testHome(&mockEventRepo{})
	down(h, itemHistory)

	msg, ok := enter(h)().(router.PushScreenMsg)
	if !ok {
		t.Fatal("expected PushScreenMsg")
	}
	if _, ok := msg.Screen.(*history.HistoryScreen); !ok {
		t.Errorf("pushed %T, want *history.HistoryScreen", msg.Screen)
	}
}

func TestHome_ToggleVoiceAndKeypad(t *testing.T) {
	h, st := testHome(&mockEventRepo{})

	down(h, itemVoice)
	enter(h)
	if !st.Muted() {
		t.Error("expected voice to be muted")
	}
	if !strings.Contains(strings.Join(h.labels(), " "), "VOICE: OFF") {
		t.Error("expected the voice label to follow the setting")
	}

	down(h, 1)
	enter(h)
	if st.KeypadVisible() {
		t.Error("expected keypad to be hidden")
	}
}

func TestHome_Exit(t *testing.T) {
	h, _ := testHome(&mockEventRepo{})
	down(h, itemExit)

	cmd := enter(h)
	if cmd == nil {
		t.Fatal("expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("expected tea.QuitMsg")
	}
}

func TestHome_View(t *testing.T) {
	h, _ := testHome(&mockEventRepo{})
	if !strings.Contains(h.View(100, 40), "START JOURNEY") {
		t.Error("expected the start button")
	}
	if !strings.Contains(h.View(60, 14), "M · E · D · H · A") {
		t.Error("expected the compact title on a small terminal")
	}
}
