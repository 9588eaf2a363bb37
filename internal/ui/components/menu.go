package components

import (
	"strings"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/mathmedha/medha/internal/ui/theme"
)

// MenuItem represents a single item in a navigation menu.
type MenuItem struct {
	Label    string
	Action   func() tea.Cmd
	Disabled bool
}

// MenuKeyMap holds the menu's bindings.
type MenuKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Select key.Binding
}

// DefaultMenuKeyMap returns arrow/vi navigation with enter to select.
func DefaultMenuKeyMap() MenuKeyMap {
	return MenuKeyMap{
		Up:     key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑↓", "navigate")),
		Down:   key.NewBinding(key.WithKeys("down", "j")),
		Select: key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "select")),
	}
}

// Menu is a vertical navigation menu.
type Menu struct {
	Items    []MenuItem
	Selected int
	KeyMap   MenuKeyMap
}

// NewMenu creates a new menu with the given items.
func NewMenu(items []MenuItem) Menu {
	selected := 0
	for i, item := range items {
		if !item.Disabled {
			selected = i
			break
		}
	}
	return Menu{
		Items:    items,
		Selected: selected,
		KeyMap:   DefaultMenuKeyMap(),
	}
}

// Init returns nil (no initial command).
func (m Menu) Init() tea.Cmd {
	return nil
}

// Update handles keyboard navigation.
func (m Menu) Update(msg tea.Msg) (Menu, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyPressMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(kmsg, m.KeyMap.Up):
		for i := m.Selected - 1; i >= 0; i-- {
			if !m.Items[i].Disabled {
				m.Selected = i
				break
			}
		}
	case key.Matches(kmsg, m.KeyMap.Down):
		for i := m.Selected + 1; i < len(m.Items); i++ {
			if !m.Items[i].Disabled {
				m.Selected = i
				break
			}
		}
	case key.Matches(kmsg, m.KeyMap.Select):
		if m.Selected >= 0 && m.Selected < len(m.Items) {
			item := m.Items[m.Selected]
			if item.Action != nil && !item.Disabled {
				return m, item.Action()
			}
		}
	}

	return m, nil
}

// View renders the menu.
func (m Menu) View() string {
	var b strings.Builder
	for i, item := range m.Items {
		switch {
		case i == m.Selected:
			b.WriteString(theme.Selected.Render("  ▸ " + item.Label))
		case item.Disabled:
			b.WriteString(lipgloss.NewStyle().Foreground(theme.TextDim).Render("    " + item.Label))
		default:
			b.WriteString(theme.Unselected.Render("    " + item.Label))
		}
		b.WriteString("\n")
	}
	return b.String()
}
