// Package placement positions reward icons on the star map so that they
// do not overlap. All functions are pure and never fail: when no free spot
// exists the caller gets a best-effort position flagged as exhausted.
package placement

import "math"

// Point is a position on the map canvas.
type Point struct {
	X, Y float64
}

// Dist returns the Euclidean distance between p and q.
func (p Point) Dist(q Point) float64 {
	return math.Hypot(p.X-q.X, p.Y-q.Y)
}

// Bounds describes the canvas. Positions closer than Padding to an edge are
// out of bounds.
type Bounds struct {
	Width   float64
	Height  float64
	Padding float64
}

// Contains reports whether p lies inside the padded canvas.
func (b Bounds) Contains(p Point) bool {
	return p.X >= b.Padding && p.X <= b.Width-b.Padding &&
		p.Y >= b.Padding && p.Y <= b.Height-b.Padding
}

// Centre returns the middle of the canvas.
func (b Bounds) Centre() Point {
	return Point{X: b.Width / 2, Y: b.Height / 2}
}

// SearchOptions tunes the spiral search.
type SearchOptions struct {
	// MinDistance is the smallest allowed distance between two rewards.
	MinDistance float64

	// AngleStep is the angle increment per search step, in radians.
	AngleStep float64

	// RadiusStep is how much the spiral grows after a full revolution.
	RadiusStep float64
}

// DefaultSearchOptions returns the options used by the star map.
func DefaultSearchOptions() SearchOptions {
	return SearchOptions{
		MinDistance: 4,
		AngleStep:   math.Pi / 8,
		RadiusStep:  2,
	}
}

// Result is the outcome of a placement search.
type Result struct {
	Pos Point

	// Exhausted is true when the spiral reached its radius limit without
	// finding a free spot; Pos is then the original candidate.
	Exhausted bool

	// Probes counts the positions examined, including the candidate.
	Probes int

	// Radius is the spiral radius at which the search stopped (0 when the
	// candidate was accepted).
	Radius float64
}

// SearchPlacement returns candidate if it is in bounds and at least
// MinDistance away from every existing position. Otherwise it walks a
// spiral outward from candidate until it finds such a position or the
// radius exceeds half the canvas size, in which case it falls back to
// candidate.
func SearchPlacement(candidate Point, existing []Point, b Bounds, opts SearchOptions) Result {
	def := DefaultSearchOptions()
	if opts.AngleStep <= 0 {
		opts.AngleStep = def.AngleStep
	}
	if opts.RadiusStep <= 0 {
		opts.RadiusStep = def.RadiusStep
	}

	free := func(p Point) bool {
		if !b.Contains(p) {
			return false
		}
		for _, e := range existing {
			if p.Dist(e) < opts.MinDistance {
				return false
			}
		}
		return true
	}

	res := Result{Pos: candidate, Probes: 1}
	if free(candidate) {
		return res
	}

	limit := math.Max(b.Width, b.Height) / 2
	radius := opts.RadiusStep
	angle := 0.0
	for radius <= limit {
		p := Point{
			X: candidate.X + radius*math.Cos(angle),
			Y: candidate.Y + radius*math.Sin(angle),
		}
		res.Probes++
		if free(p) {
			res.Pos = p
			res.Radius = radius
			return res
		}
		angle += opts.AngleStep
		if angle >= 2*math.Pi {
			angle -= 2 * math.Pi
			radius += opts.RadiusStep
		}
	}

	res.Exhausted = true
	res.Radius = radius
	return res
}

// BadgeCandidate returns the starting position for the index-th badge. The
// canvas is split into a square grid with ceil(sqrt(catalogSize)) cells per
// side and the candidate is the centre of the index-th cell (wrapping).
func BadgeCandidate(index, catalogSize int, b Bounds) Point {
	cells := int(math.Ceil(math.Sqrt(float64(catalogSize))))
	if cells < 1 {
		cells = 1
	}
	if index < 0 {
		index = -index
	}
	slot := index % (cells * cells)
	col := slot % cells
	row := slot / cells

	cellW := b.Width / float64(cells)
	cellH := b.Height / float64(cells)
	return Point{
		X: float64(col)*cellW + cellW/2,
		Y: float64(row)*cellH + cellH/2,
	}
}

// OrbitPositions spreads n points evenly around a circle of the given radius.
// The i-th point sits at angle i·2π/n.
func OrbitPositions(n int, centre Point, radius float64) []Point {
	if n <= 0 {
		return nil
	}
	out := make([]Point, n)
	for i := range out {
		angle := float64(i) * 2 * math.Pi / float64(n)
		out[i] = Point{
			X: centre.X + radius*math.Cos(angle),
			Y: centre.Y + radius*math.Sin(angle),
		}
	}
	return out
}
