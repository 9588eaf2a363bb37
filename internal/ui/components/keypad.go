package components

import (
	"strings"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/mathmedha/medha/internal/quiz"
	"github.com/mathmedha/medha/internal/ui/theme"
)

// KeypadKeyMap holds the bindings that drive the on-screen keypad cursor.
type KeypadKeyMap struct {
	Up    key.Binding
	Down  key.Binding
	Left  key.Binding
	Right key.Binding
	Press key.Binding
}

// DefaultKeypadKeyMap moves the cursor with the arrows and presses with space.
func DefaultKeypadKeyMap() KeypadKeyMap {
	return KeypadKeyMap{
		Up:    key.NewBinding(key.WithKeys("up"), key.WithHelp("↑↓←→", "keypad")),
		Down:  key.NewBinding(key.WithKeys("down")),
		Left:  key.NewBinding(key.WithKeys("left")),
		Right: key.NewBinding(key.WithKeys("right")),
		Press: key.NewBinding(key.WithKeys("space"), key.WithHelp("space", "press")),
	}
}

// Keypad is the on-screen answer pad. It produces the same quiz.Keys as
// the physical keyboard.
type Keypad struct {
	Rows   [][]quiz.Key
	Row    int
	Col    int
	KeyMap KeypadKeyMap
}

// NewKeypad creates a keypad over quiz.KeypadLayout with the cursor on ⏎.
func NewKeypad() Keypad {
	rows := quiz.KeypadLayout
	last := len(rows) - 1
	return Keypad{
		Rows:   rows,
		Row:    last,
		Col:    len(rows[last]) - 1,
		KeyMap: DefaultKeypadKeyMap(),
	}
}

// Selected returns the key under the cursor.
func (k Keypad) Selected() quiz.Key {
	return k.Rows[k.Row][k.Col]
}

// Update moves the cursor. When the press binding fires it returns the
// selected key.
func (k Keypad) Update(msg tea.Msg) (Keypad, *quiz.Key) {
	kmsg, ok := msg.(tea.KeyPressMsg)
	if !ok {
		return k, nil
	}

	switch {
	case key.Matches(kmsg, k.KeyMap.Up):
		k.moveRow(-1)
	case key.Matches(kmsg, k.KeyMap.Down):
		k.moveRow(1)
	case key.Matches(kmsg, k.KeyMap.Left):
		if k.Col > 0 {
			k.Col--
		}
	case key.Matches(kmsg, k.KeyMap.Right):
		if k.Col < len(k.Rows[k.Row])-1 {
			k.Col++
		}
	case key.Matches(kmsg, k.KeyMap.Press):
		sel := k.Selected()
		return k, &sel
	}
	return k, nil
}

// Highlight moves the cursor onto target, so a key typed on the physical
// keyboard lights up on the pad.
func (k *Keypad) Highlight(target quiz.Key) {
	for r, row := range k.Rows {
		for c, kk := range row {
			if kk == target {
				k.Row, k.Col = r, c
				return
			}
		}
	}
}

func (k *Keypad) moveRow(delta int) {
	r := k.Row + delta
	if r < 0 || r >= len(k.Rows) {
		return
	}
	k.Row = r
	if k.Col >= len(k.Rows[r]) {
		k.Col = len(k.Rows[r]) - 1
	}
}

// View renders the keypad as a grid of buttons.
func (k Keypad) View() string {
	const cell = 5

	lines := make([]string, 0, len(k.Rows))
	for r, row := range k.Rows {
		// Short rows stretch their buttons to the full pad width.
		w := cell * 3 / len(row)
		btns := make([]string, 0, len(row))
		for c, kk := range row {
			style := theme.KeyInactive
			if r == k.Row && c == k.Col {
				style = theme.KeyActive
			}
			btns = append(btns, style.
				Width(w).
				Align(lipgloss.Center).
				Render(kk.Label()))
		}
		lines = append(lines, strings.Join(btns, " "))
	}
	return lipgloss.JoinVertical(lipgloss.Center, lines...)
}
