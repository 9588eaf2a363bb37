package rewards

import (
	"math"
	"math/rand/v2"

	"github.com/mathmedha/medha/internal/placement"
)

// Default star-map canvas, in terminal cells.
const (
	DefaultMapWidth  = 60
	DefaultMapHeight = 16
	mapPadding       = 1

	// cellAspect squashes the orbit vertically: a terminal cell is about
	// twice as tall as it is wide.
	cellAspect = 0.5
)

// PlacedBadge is a badge on the star map.
type PlacedBadge struct {
	Kind      BadgeKind
	Pos       placement.Point
	Exhausted bool
}

// PlacedStar is a golden star on the star map.
type PlacedStar struct {
	Pos       placement.Point
	Exhausted bool
}

// PlacedPlanet is a planet with its precomputed orbit position.
type PlacedPlanet struct {
	Planet
	Pos placement.Point
}

// Board is the reward and unlock state of one journey: badges and stars
// are append-only, planets are fixed in number and order and revealed
// from the front.
type Board struct {
	bounds placement.Bounds
	opts   placement.SearchOptions
	rng    *rand.Rand

	planets  []PlacedPlanet
	revealed int
	badges   []PlacedBadge
	stars    []PlacedStar
}

// NewBoard creates a board for a width × height canvas. Planet positions
// are computed once here and never move.
func NewBoard(width, height float64, rng *rand.Rand) *Board {
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	b := &Board{
		bounds: placement.Bounds{Width: width, Height: height, Padding: mapPadding},
		opts:   placement.DefaultSearchOptions(),
		rng:    rng,
	}

	centre := b.bounds.Centre()
	radius := 0.8 * math.Min(width/2, height)
	orbit := placement.OrbitPositions(len(Journey), centre, radius)
	b.planets = make([]PlacedPlanet, len(orbit))
	for i, p := range orbit {
		p.Y = centre.Y + (p.Y-centre.Y)*cellAspect
		b.planets[i] = PlacedPlanet{Planet: Journey[i], Pos: p}
	}
	return b
}

// Bounds returns the canvas currently used for new placements.
func (b *Board) Bounds() placement.Bounds {
	return b.bounds
}

// Resize changes the canvas for future placements. Rewards already on the
// map keep their positions even if they now fall outside it.
func (b *Board) Resize(width, height float64) {
	if width <= 0 || height <= 0 {
		return
	}
	b.bounds.Width = width
	b.bounds.Height = height
}

// Planets returns every planet of the journey, revealed or not.
func (b *Board) Planets() []PlacedPlanet {
	return b.planets
}

// Revealed returns how many planets are visible.
func (b *Board) Revealed() int {
	return b.revealed
}

// RevealedPlanets returns the visible planets in journey order.
func (b *Board) RevealedPlanets() []PlacedPlanet {
	return b.planets[:b.revealed]
}

// RevealTo sets the number of visible planets to n, clamped to the
// journey length, and returns the planets that became visible.
func (b *Board) RevealTo(n int) []PlacedPlanet {
	n = max(0, min(n, len(b.planets)))
	var fresh []PlacedPlanet
	if n > b.revealed {
		fresh = b.planets[b.revealed:n]
	}
	b.revealed = n
	return fresh
}

// Badges returns the placed badges in grant order.
func (b *Board) Badges() []PlacedBadge {
	return b.badges
}

// Stars returns the placed stars in grant order.
func (b *Board) Stars() []PlacedStar {
	return b.stars
}

// GrantBadge picks a random badge from the catalog and places it near its
// grid slot, away from planets and other rewards.
func (b *Board) GrantBadge() PlacedBadge {
	kind := Catalog[b.rng.IntN(len(Catalog))]
	candidate := placement.BadgeCandidate(len(b.badges), len(Catalog), b.bounds)
	res := placement.SearchPlacement(candidate, b.Occupied(), b.bounds, b.opts)
	pb := PlacedBadge{Kind: kind, Pos: res.Pos, Exhausted: res.Exhausted}
	b.badges = append(b.badges, pb)
	return pb
}

// GrantStar places a golden star at a random free spot.
func (b *Board) GrantStar() PlacedStar {
	p := b.bounds.Padding
	candidate := placement.Point{
		X: p + b.rng.Float64()*math.Max(0, b.bounds.Width-2*p),
		Y: p + b.rng.Float64()*math.Max(0, b.bounds.Height-2*p),
	}
	res := placement.SearchPlacement(candidate, b.Occupied(), b.bounds, b.opts)
	ps := PlacedStar{Pos: res.Pos, Exhausted: res.Exhausted}
	b.stars = append(b.stars, ps)
	return ps
}

// Occupied returns every position a new reward has to keep clear of: all
// planet orbit slots plus placed badges and stars.
func (b *Board) Occupied() []placement.Point {
	out := make([]placement.Point, 0, len(b.planets)+len(b.badges)+len(b.stars))
	for _, p := range b.planets {
		out = append(out, p.Pos)
	}
	for _, bd := range b.badges {
		out = append(out, bd.Pos)
	}
	for _, s := range b.stars {
		out = append(out, s.Pos)
	}
	return out
}
