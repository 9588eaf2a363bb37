package home

import (
	"charm.land/lipgloss/v2"

	"github.com/mathmedha/medha/internal/ui/theme"
)

// MascotVariant selects which mascot art to display.
type MascotVariant int

const (
	MascotIdle        MascotVariant = iota // rocket on the pad
	MascotCelebrating                      // lift-off, after a conquered galaxy
	MascotQuiet                            // voice is muted
)

const mascotIdle = `  /\
 /  \
 |××|
 |  |
/_/\_\`

const mascotCelebrating = ` ✦/\✦
 /  \
 |××|
 |  |
/_/\_\
 ░▒▓`

const mascotQuiet = `  /\
 /  \  z
 |××| z
 |  |
/_/\_\`

// RenderMascot returns the mascot art for the given variant.
func RenderMascot(variant MascotVariant) string {
	art := mascotIdle
	fg := theme.Primary

	switch variant {
	case MascotCelebrating:
		art = mascotCelebrating
		fg = theme.Gold
	case MascotQuiet:
		art = mascotQuiet
		fg = theme.TextDim
	}

	return lipgloss.NewStyle().
		Foreground(fg).
		Render(art)
}
