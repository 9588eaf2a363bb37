package session

import (
	"math"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/mathmedha/medha/internal/placement"
	"github.com/mathmedha/medha/internal/rewards"
	"github.com/mathmedha/medha/internal/ui/theme"
)

type cell struct {
	r     rune
	style *lipgloss.Style
}

const (
	sunGlyph     = '☉'
	hiddenPlanet = '·'
	starGlyph    = '★'
)

var sparkleGlyphs = []rune{'✦', '✧', '✺'}

// renderStarMap draws the board onto a width × height character grid.
// Layers are drawn bottom up (sky, sun, planets, badges, stars) and a
// later layer wins a shared cell. phase animates the celebration sparkles.
func renderStarMap(b *rewards.Board, width, height int, celebrate bool, phase int) string {
	if width <= 0 || height <= 0 {
		return ""
	}

	grid := make([][]cell, height)
	for y := range grid {
		grid[y] = make([]cell, width)
		for x := range grid[y] {
			grid[y][x] = cell{r: ' '}
			if dust(x, y) {
				grid[y][x] = cell{r: '.', style: &theme.OrbitStyle}
			}
		}
	}

	put := func(p placement.Point, r rune, style *lipgloss.Style) {
		x, y := int(math.Round(p.X)), int(math.Round(p.Y))
		if x < 0 || y < 0 || x >= width || y >= height {
			return
		}
		grid[y][x] = cell{r: r, style: style}
	}

	if celebrate {
		sparkle(grid, phase)
	}

	put(b.Bounds().Centre(), sunGlyph, &theme.StarStyle)
	for i, p := range b.Planets() {
		if i < b.Revealed() {
			put(p.Pos, p.Glyph, &theme.PlanetStyle)
		} else {
			put(p.Pos, hiddenPlanet, &theme.OrbitStyle)
		}
	}
	for _, bd := range b.Badges() {
		put(bd.Pos, bd.Kind.Glyph, &theme.BadgeStyle)
	}
	for _, st := range b.Stars() {
		put(st.Pos, starGlyph, &theme.StarStyle)
	}

	lines := make([]string, height)
	for y, row := range grid {
		var sb strings.Builder
		for _, c := range row {
			if c.style == nil {
				sb.WriteRune(c.r)
				continue
			}
			sb.WriteString(c.style.Render(string(c.r)))
		}
		lines[y] = sb.String()
	}
	return strings.Join(lines, "\n")
}

// dust reports whether a faint background star sits at (x, y). The pattern
// is fixed so the sky does not flicker between frames.
func dust(x, y int) bool {
	return (x*7+y*13)%29 == 0
}

// sparkle scatters celebration glyphs over the sky, shifting with phase.
func sparkle(grid [][]cell, phase int) {
	for y := range grid {
		for x := range grid[y] {
			if (x*3+y*5+phase)%17 != 0 {
				continue
			}
			g := sparkleGlyphs[(x+y+phase)%len(sparkleGlyphs)]
			grid[y][x] = cell{r: g, style: &theme.CelebrationStyle}
		}
	}
}
