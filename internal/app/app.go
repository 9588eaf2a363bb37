package app

import (
	"fmt"
	"os"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/mathmedha/medha/internal/router"
	"github.com/mathmedha/medha/internal/screen"
	"github.com/mathmedha/medha/internal/screens/home"
	sessionscreen "github.com/mathmedha/medha/internal/screens/session"
	"github.com/mathmedha/medha/internal/settings"
	"github.com/mathmedha/medha/internal/ui/layout"
)

// Options holds dependencies injected into the app. They are handed to
// every journey started from the home screen.
type Options = sessionscreen.Options

var (
	backKey = key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "back"))
	quitKey = key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "quit"))
)

// AppModel is the root Bubble Tea model.
type AppModel struct {
	router   *router.Router
	settings *settings.Settings
	width    int
	height   int
}

// newAppModel creates a new AppModel with the home screen.
func newAppModel(opts Options) AppModel {
	if opts.Settings == nil {
		opts.Settings = settings.New(settings.Default())
	}
	homeScreen := home.New(opts)
	return AppModel{
		router:   router.New(homeScreen),
		settings: opts.Settings,
	}
}

func (m AppModel) Init() tea.Cmd {
	return m.router.Active().Init()
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, m.router.Broadcast(msg)

	case tea.KeyPressMsg:
		switch {
		case key.Matches(msg, quitKey):
			return m, tea.Quit
		case key.Matches(msg, backKey) && !m.activeCapturesEsc():
			if m.router.Depth() > 1 {
				return m, func() tea.Msg { return router.PopScreenMsg{} }
			}
			return m, nil
		}
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

func (m AppModel) activeCapturesEsc() bool {
	c, ok := m.router.Active().(screen.EscCapturer)
	return ok && c.CapturesEsc()
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}

	if layout.IsTooSmall(m.width, m.height) {
		v.SetContent(layout.RenderMinSizeMessage(m.width, m.height))
		return v
	}

	active := m.router.Active()
	title := ""
	if active != nil {
		title = active.Title()
	}

	stats := layout.HeaderStats{Muted: m.settings.Muted()}
	if sp, ok := active.(screen.StatsProvider); ok {
		stats = sp.HeaderStats()
		stats.Muted = m.settings.Muted()
	}
	header := layout.RenderHeader(title, stats, m.width)

	var bindings []key.Binding
	if kp, ok := active.(screen.KeyBindingProvider); ok {
		bindings = kp.KeyBindings()
	} else if m.router.Depth() > 1 {
		bindings = []key.Binding{backKey}
	}
	footer := layout.RenderFooter(append(bindings, quitKey), m.width)

	headerHeight := lipgloss.Height(header)
	footerHeight := lipgloss.Height(footer)
	contentHeight := m.height - headerHeight - footerHeight
	if contentHeight < 0 {
		contentHeight = 0
	}

	content := m.router.View(m.width, contentHeight)
	frame := layout.RenderFrame(header, content, footer, m.width, m.height)

	v.SetContent(frame)
	return v
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	p := tea.NewProgram(newAppModel(opts))
	_, err := p.Run()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}
