package mapgen

import (
	"rlkit/rng"
	"rlkit/tile"
)

var mazeDirs = [4][2]int{{0, -1}, {1, 0}, {0, 1}, {-1, 0}}

// GenerateMaze carves a perfect maze (every open cell reachable from
// every other, no loops) on the odd-numbered lattice of a width x
// height grid, using a randomized growing-tree walk: from a growing
// frontier of visited cells, repeatedly pick one at random, carve into
// an unvisited neighbour two cells away if one exists, or drop it from
// the frontier if it's boxed in.
func GenerateMaze(width, height int, source rng.Source) (*tile.Grid, error) {
	if source == nil {
		return nil, ErrNilParameter
	}
	grid, err := tile.NewGrid(width, height)
	if err != nil {
		return nil, err
	}
	grid.Fill(tile.Rock)

	if width < 3 || height < 3 {
		return grid, nil
	}

	grid.Set(1, 1, tile.Corridor)
	frontier := [][2]int{{1, 1}}

	for len(frontier) > 0 {
		idx := source.Intn(0, len(frontier)-1)
		x, y := frontier[idx][0], frontier[idx][1]

		var options [][2]int
		for _, d := range mazeDirs {
			if canCarveMaze(grid, x, y, d[0], d[1]) {
				options = append(options, d)
			}
		}

		if len(options) == 0 {
			frontier[idx] = frontier[len(frontier)-1]
			frontier = frontier[:len(frontier)-1]
			continue
		}

		d := options[source.Intn(0, len(options)-1)]
		wx, wy := x+d[0], y+d[1]
		nx, ny := x+d[0]*2, y+d[1]*2
		grid.Set(wx, wy, tile.Corridor)
		grid.Set(nx, ny, tile.Corridor)
		frontier = append(frontier, [2]int{nx, ny})
	}

	return grid, nil
}

func canCarveMaze(grid *tile.Grid, x, y, dx, dy int) bool {
	nx, ny := x+dx*2, y+dy*2
	if !grid.InBounds(nx, ny) {
		return false
	}
	return grid.Is(nx, ny, tile.Rock)
}
