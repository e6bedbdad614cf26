package geom

import (
	"math"

	"rlkit/path"
)

// Line rasterises a Bresenham-variant line between two real-valued
// points, advancing the major axis one full step at a time and the
// minor axis by accumulated error, at the given fractional step size.
// Both endpoints are included in the result.
func Line(from, to Point, step float64) *path.Path[Point] {
	if step <= 0 {
		step = 1
	}

	dx := to.X - from.X
	dy := to.Y - from.Y

	head := path.New(from)
	tail := head

	if dx == 0 && dy == 0 {
		return head
	}

	if math.Abs(dx) >= math.Abs(dy) {
		// x is the major axis.
		slope := 0.0
		if dx != 0 {
			slope = dy / dx
		}
		dir := step
		if dx < 0 {
			dir = -step
		}

		x := from.X
		y := from.Y
		error := 0.0
		for !withinStep(x, to.X, dir) {
			x += dir
			error += slope * step
			if math.Abs(error) > 0.5 {
				if error > 0 {
					y += step
				} else {
					y -= step
				}
				error -= sign(error)
			}
			tail = tail.Append(Point{X: x, Y: y})
		}
	} else {
		// y is the major axis.
		slope := 0.0
		if dy != 0 {
			slope = dx / dy
		}
		dir := step
		if dy < 0 {
			dir = -step
		}

		x := from.X
		y := from.Y
		error := 0.0
		for !withinStep(y, to.Y, dir) {
			y += dir
			error += slope * step
			if math.Abs(error) > 0.5 {
				if error > 0 {
					x += step
				} else {
					x -= step
				}
				error -= sign(error)
			}
			tail = tail.Append(Point{X: x, Y: y})
		}
	}

	return head
}

// withinStep reports whether cur has reached or passed target when
// advancing by dir each iteration.
func withinStep(cur, target, dir float64) bool {
	if dir > 0 {
		return cur >= target-1e-9
	}
	return cur <= target+1e-9
}

func sign(v float64) float64 {
	if v > 0 {
		return 1
	}
	if v < 0 {
		return -1
	}
	return 0
}
