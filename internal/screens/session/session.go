package session

import (
	"log/slog"
	"time"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"

	"github.com/mathmedha/medha/internal/problemgen"
	"github.com/mathmedha/medha/internal/quiz"
	"github.com/mathmedha/medha/internal/rewards"
	"github.com/mathmedha/medha/internal/router"
	"github.com/mathmedha/medha/internal/screen"
	"github.com/mathmedha/medha/internal/screens/summary"
	"github.com/mathmedha/medha/internal/settings"
	"github.com/mathmedha/medha/internal/speech"
	"github.com/mathmedha/medha/internal/store"
	"github.com/mathmedha/medha/internal/ui/components"
	"github.com/mathmedha/medha/internal/ui/layout"
)

// Options holds the dependencies shared by every journey screen.
type Options struct {
	Duration time.Duration

	// NewGenerator returns the question source for a journey. Nil uses
	// the default random generator.
	NewGenerator func() problemgen.Generator

	Events   store.EventRepo
	Settings *settings.Settings
	Speaker  speech.Speaker
	Logger   *slog.Logger

	// Width and Height are the terminal size at the time the journey starts.
	Width  int
	Height int
}

type keyMap struct {
	Submit key.Binding
	Delete key.Binding
	Voice  key.Binding
	Keypad key.Binding
	Quit   key.Binding
	Yes    key.Binding
	No     key.Binding
}

var keys = keyMap{
	Submit: key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "answer")),
	Delete: key.NewBinding(key.WithKeys("backspace"), key.WithHelp("⌫", "delete")),
	Voice:  key.NewBinding(key.WithKeys("m"), key.WithHelp("m", "voice")),
	Keypad: key.NewBinding(key.WithKeys("k"), key.WithHelp("k", "keypad")),
	Quit:   key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "quit")),
	Yes:    key.NewBinding(key.WithKeys("y", "Y"), key.WithHelp("y", "end journey")),
	No:     key.NewBinding(key.WithKeys("n", "N", "esc"), key.WithHelp("n", "keep going")),
}

// SessionScreen implements screen.Screen for a running journey.
type SessionScreen struct {
	opts    Options
	sess    *quiz.Session
	keypad  components.Keypad
	results *quiz.Summary

	width  int
	height int

	// gen identifies the live timer chain.
	gen         int
	quitConfirm bool
}

var _ screen.Screen = (*SessionScreen)(nil)
var _ screen.KeyBindingProvider = (*SessionScreen)(nil)
var _ screen.EscCapturer = (*SessionScreen)(nil)
var _ screen.StatsProvider = (*SessionScreen)(nil)

// New creates a journey screen. The journey starts when the screen is
// initialised.
func New(opts Options) *SessionScreen {
	if opts.Settings == nil {
		opts.Settings = settings.New(settings.Default())
	}

	s := &SessionScreen{
		opts:   opts,
		keypad: components.NewKeypad(),
		width:  opts.Width,
		height: opts.Height,
	}

	var gen problemgen.Generator
	if opts.NewGenerator != nil {
		gen = opts.NewGenerator()
	}
	mapW, mapH := s.mapSize()
	s.sess = quiz.New(quiz.Options{
		Duration:  opts.Duration,
		Generator: gen,
		Board:     rewards.NewBoard(float64(mapW), float64(mapH), nil),
		Events:    opts.Events,
		Settings:  opts.Settings,
		Speaker:   opts.Speaker,
		Logger:    opts.Logger,
		OnResults: func(sum quiz.Summary) { s.results = &sum },
	})
	return s
}

// Session returns the journey driven by this screen.
func (s *SessionScreen) Session() *quiz.Session {
	return s.sess
}

func (s *SessionScreen) Init() tea.Cmd {
	s.sess.Start()
	s.gen++
	return s.tick()
}

func (s *SessionScreen) Title() string {
	return "Space Journey"
}

func (s *SessionScreen) CapturesEsc() bool {
	return !s.sess.Ended() && !s.sess.TornDown()
}

func (s *SessionScreen) HeaderStats() layout.HeaderStats {
	t := s.sess.Tracker()
	return layout.HeaderStats{
		Stars:  t.Stars(),
		Badges: t.Badges(),
		Muted:  s.opts.Settings.Muted(),
	}
}

func (s *SessionScreen) KeyBindings() []key.Binding {
	if s.quitConfirm {
		return []key.Binding{keys.Yes, keys.No}
	}
	b := []key.Binding{keys.Submit, keys.Delete}
	if s.opts.Settings.KeypadVisible() {
		b = append(b, s.keypad.KeyMap.Up, s.keypad.KeyMap.Press)
	}
	return append(b, keys.Voice, keys.Keypad, keys.Quit)
}

func (s *SessionScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case timerTickMsg:
		return s.handleTimerTick(msg)

	case welcomeFadeDoneMsg:
		if msg.gen == s.gen {
			s.sess.FinishWelcomeFade()
		}
		return s, nil

	case tea.WindowSizeMsg:
		s.width = msg.Width
		s.height = msg.Height
		s.sess.Resize(s.mapSize())
		return s, nil

	case tea.KeyPressMsg:
		return s.handleKey(msg)
	}
	return s, nil
}

func (s *SessionScreen) tick() tea.Cmd {
	gen := s.gen
	return tea.Tick(time.Second, func(time.Time) tea.Msg {
		return timerTickMsg{gen: gen}
	})
}

func (s *SessionScreen) handleTimerTick(msg timerTickMsg) (screen.Screen, tea.Cmd) {
	if msg.gen != s.gen || s.sess.Ended() || s.sess.TornDown() {
		return s, nil
	}
	if !s.sess.Tick() {
		return s, s.tick()
	}
	return s, s.showResults()
}

// showResults swaps this screen for the summary of the finished journey.
func (s *SessionScreen) showResults() tea.Cmd {
	if s.results == nil {
		return nil
	}
	opts := s.opts
	opts.Width, opts.Height = s.width, s.height
	next := summary.New(*s.results, s.sess.SessionRewards(), func() screen.Screen {
		return New(opts)
	})
	return func() tea.Msg { return router.ReplaceScreenMsg{Screen: next} }
}

func (s *SessionScreen) handleKey(msg tea.KeyPressMsg) (screen.Screen, tea.Cmd) {
	if s.sess.Ended() || s.sess.TornDown() {
		return s, nil
	}

	if s.quitConfirm {
		switch {
		case key.Matches(msg, keys.Yes):
			s.quit()
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		case key.Matches(msg, keys.No):
			s.quitConfirm = false
		}
		return s, nil
	}

	switch {
	case key.Matches(msg, keys.Quit):
		s.quitConfirm = true
		return s, nil
	case key.Matches(msg, keys.Voice):
		s.opts.Settings.ToggleMuted()
		return s, nil
	case key.Matches(msg, keys.Keypad):
		s.opts.Settings.ToggleKeypad()
		s.sess.Resize(s.mapSize())
		return s, nil
	}

	if s.opts.Settings.KeypadVisible() {
		var pressed *quiz.Key
		s.keypad, pressed = s.keypad.Update(msg)
		if pressed != nil {
			return s, s.press(*pressed)
		}
	}

	if k, ok := quiz.ParseKey(msg.String()); ok {
		s.keypad.Highlight(k)
		return s, s.press(k)
	}
	return s, nil
}

func (s *SessionScreen) press(k quiz.Key) tea.Cmd {
	out, judged := s.sess.Press(k)
	if !judged || !out.WelcomeFadeStarted {
		return nil
	}
	gen := s.gen
	return tea.Tick(quiz.WelcomeFadeDuration, func(time.Time) tea.Msg {
		return welcomeFadeDoneMsg{gen: gen}
	})
}

// quit abandons the journey. Pending ticks are orphaned by bumping gen.
func (s *SessionScreen) quit() {
	s.quitConfirm = false
	s.sess.Teardown()
	s.gen++
}
