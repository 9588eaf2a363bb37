package screen

import (
	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"

	"github.com/mathmedha/medha/internal/ui/layout"
)

// Screen defines the interface for all application screens.
type Screen interface {
	// Init returns an initial command when the screen is first created.
	Init() tea.Cmd

	// Update handles messages and returns updated screen + command.
	Update(msg tea.Msg) (Screen, tea.Cmd)

	// View renders the screen content (excluding header/footer).
	View(width, height int) string

	// Title returns the screen name for the header.
	Title() string
}

// KeyBindingProvider is an optional interface that screens can implement
// to provide custom footer key hints.
type KeyBindingProvider interface {
	KeyBindings() []key.Binding
}

// EscCapturer is implemented by screens that handle Esc themselves
// instead of letting the app pop them.
type EscCapturer interface {
	CapturesEsc() bool
}

// StatsProvider is implemented by screens that fill the header totals.
type StatsProvider interface {
	HeaderStats() layout.HeaderStats
}
