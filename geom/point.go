// Package geom provides the real-valued point type shared by the line
// rasteriser and the distance functions used for pathfinding and FOV.
package geom

import "math"

// Point is a pair of real-valued coordinates. Real-valued because the
// line rasteriser advances by fractional steps and the distance
// functions operate on continuous space; integer grid indices are
// obtained by flooring.
type Point struct {
	X, Y float64
}

// XY is a convenience constructor for integer grid coordinates.
func XY(x, y int) Point {
	return Point{X: float64(x), Y: float64(y)}
}

// Floor returns the integer cell this point falls within.
func (p Point) Floor() (int, int) {
	return int(math.Floor(p.X)), int(math.Floor(p.Y))
}

// Eq reports whether two points reference the same grid cell.
func (p Point) Eq(o Point) bool {
	px, py := p.Floor()
	ox, oy := o.Floor()
	return px == ox && py == oy
}

// DistanceFunc computes a cost between two points. Implementations used
// as Dijkstra edge weights must be non-negative.
type DistanceFunc func(from, to Point) float64

// Manhattan is the taxicab distance |dx|+|dy|.
func Manhattan(from, to Point) float64 {
	return math.Abs(from.X-to.X) + math.Abs(from.Y-to.Y)
}

// Euclidean is the straight-line distance.
func Euclidean(from, to Point) float64 {
	dx := from.X - to.X
	dy := from.Y - to.Y
	return math.Sqrt(dx*dx + dy*dy)
}

// Chebyshev is the chessboard distance max(|dx|,|dy|).
func Chebyshev(from, to Point) float64 {
	dx := math.Abs(from.X - to.X)
	dy := math.Abs(from.Y - to.Y)
	if dx > dy {
		return dx
	}
	return dy
}

// Simple is the distance used when no distance function is supplied: 0
// for identical cells, 1 for orthogonal neighbours, 1.4 otherwise
// (diagonal neighbours).
func Simple(from, to Point) float64 {
	if from.Eq(to) {
		return 0
	}
	if from.X == to.X || from.Y == to.Y {
		return 1
	}
	return 1.4
}
