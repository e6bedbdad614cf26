// Package fov computes field-of-view over a tile.Grid using recursive
// shadowcasting, the standard RogueBasin eight-octant algorithm.
package fov

import "rlkit/tile"

// Code tracks what an observer knows about a cell: never seen, seen at
// some point in the past but not currently visible, or visible right
// now.
type Code int

const (
	// CannotSee is the zero value: the cell has never been observed.
	CannotSee Code = iota
	// Seen was visible at some earlier update but is not now.
	Seen
	// Visible is in view as of the most recent Calculate call.
	Visible
)

// Grid parallels a tile.Grid, recording what has been seen of it.
type Grid struct {
	Width, Height int
	cells         []Code
}

// NewGrid creates a visibility grid matching the given dimensions, with
// every cell starting CannotSee.
func NewGrid(width, height int) *Grid {
	return &Grid{Width: width, Height: height, cells: make([]Code, width*height)}
}

func (g *Grid) index(x, y int) int {
	if x < 0 || y < 0 || x >= g.Width || y >= g.Height {
		return -1
	}
	return x + y*g.Width
}

// At returns the visibility code at (x, y), or CannotSee out of bounds.
func (g *Grid) At(x, y int) Code {
	i := g.index(x, y)
	if i < 0 {
		return CannotSee
	}
	return g.cells[i]
}

func (g *Grid) set(x, y int, c Code) {
	i := g.index(x, y)
	if i < 0 {
		return
	}
	g.cells[i] = c
}

// Config tunes shadowcasting behavior.
type Config struct {
	// Symmetric makes the boundary slope tests use non-strict
	// inequalities, so that if A can see B, B can also see A. Without
	// it, the comparisons are strict, which admits slightly more
	// generous (but not reflexive) corner peeking.
	Symmetric bool
	// MaxRecursion bounds how many nested child scans castLight may
	// spawn chasing wall corners, independent of radius; a degenerate
	// grid of alternating wall/floor cells could otherwise recurse once
	// per row. Defaults to 100 if zero.
	MaxRecursion int
	// InRange overrides the range test applied to a candidate cell's
	// offset (dx, dy) from the origin. Defaults to Chebyshev distance
	// <= radius, matching spec's "every cell within Chebyshev distance"
	// range predicate; a caller wanting a circular light radius can
	// supply its own Euclidean test here instead.
	InRange func(dx, dy, radius int) bool
}

func (c Config) maxRecursion() int {
	if c.MaxRecursion <= 0 {
		return 100
	}
	return c.MaxRecursion
}

func (c Config) inRange(dx, dy, radius int) bool {
	if c.InRange != nil {
		return c.InRange(dx, dy, radius)
	}
	if radius < 0 {
		return true
	}
	return chebyshevInt(dx, dy) <= radius
}

func chebyshevInt(dx, dy int) int {
	if dx < 0 {
		dx = -dx
	}
	if dy < 0 {
		dy = -dy
	}
	if dx > dy {
		return dx
	}
	return dy
}

// octant transform matrices: for each octant, a (dx, dy) sweep pair
// maps to a world offset via worldX = cx + dx*xx + dy*xy, worldY = cy +
// dx*yx + dy*yy. These are the standard RogueBasin multipliers.
var octants = [8][4]int{
	{1, 0, 0, 1},
	{0, 1, 1, 0},
	{0, -1, 1, 0},
	{-1, 0, 0, 1},
	{-1, 0, 0, -1},
	{0, -1, -1, 0},
	{0, 1, -1, 0},
	{1, 0, 0, -1},
}

// Calculate updates view from (cx, cy) out to radius tiles. Cells that
// were Visible as of the previous call are first demoted to Seen (the
// observer remembers them but no longer sees them); Calculate then
// promotes every cell actually in view back to Visible. Cells it has
// never reached stay CannotSee.
func Calculate(grid *tile.Grid, view *Grid, cx, cy, radius int, config Config) {
	for i, c := range view.cells {
		if c == Visible {
			view.cells[i] = Seen
		}
	}

	if grid.InBounds(cx, cy) {
		view.set(cx, cy, Visible)
	}

	for _, m := range octants {
		castLight(grid, view, cx, cy, 1, 1.0, 0.0, radius, m[0], m[1], m[2], m[3], config, 0)
	}
}

func castLight(grid *tile.Grid, view *Grid, cx, cy, row int, start, end float64, radius, xx, xy, yx, yy int, config Config, depth int) {
	if start < end {
		return
	}
	if depth > config.maxRecursion() {
		return
	}

	// A negative radius means unbounded range, capped in practice by the
	// recursion ceiling rather than a cell count.
	maxRow := radius
	if maxRow < 0 {
		maxRow = config.maxRecursion()
	}
	newStart := start

	for j := row; j <= maxRow; j++ {
		dy := -j
		blocked := false

		for dx := -j; dx <= 0; dx++ {
			wx := cx + dx*xx + dy*xy
			wy := cy + dx*yx + dy*yy

			lSlope := (float64(dx) - 0.5) / (float64(dy) + 0.5)
			rSlope := (float64(dx) + 0.5) / (float64(dy) - 0.5)

			if rightOfBeam(start, rSlope, config.Symmetric) {
				continue
			}
			if leftOfBeam(end, lSlope, config.Symmetric) {
				break
			}

			if config.inRange(dx, dy, radius) && grid.InBounds(wx, wy) {
				view.set(wx, wy, Visible)
			}

			opaque := grid.IsOpaque(wx, wy)

			if blocked {
				if opaque {
					newStart = rSlope
				} else {
					blocked = false
					start = newStart
				}
			} else if opaque && j < maxRow {
				blocked = true
				castLight(grid, view, cx, cy, j+1, start, lSlope, radius, xx, xy, yx, yy, config, depth+1)
				newStart = rSlope
			}
		}
		if blocked {
			break
		}
	}
}

func rightOfBeam(start, rSlope float64, symmetric bool) bool {
	if symmetric {
		return start <= rSlope
	}
	return start < rSlope
}

func leftOfBeam(end, lSlope float64, symmetric bool) bool {
	if symmetric {
		return end >= lSlope
	}
	return end > lSlope
}
