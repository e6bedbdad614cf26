package mapgen

import (
	"rlkit/graph"
	"rlkit/rng"
	"rlkit/tile"
)

// GenerateAutomata fills a width x height grid by seeding random noise
// and applying a birth/survival rule over the 8-neighbourhood for
// config.Iterations rounds, optionally smoothing single-cell noise,
// stitching disconnected caverns together, or culling everything but
// the largest one.
func GenerateAutomata(width, height int, config AutomataConfig, source rng.Source) (*tile.Grid, error) {
	if source == nil {
		return nil, ErrNilParameter
	}
	if err := config.Validate(); err != nil {
		return nil, err
	}

	grid, err := tile.NewGrid(width, height)
	if err != nil {
		return nil, err
	}

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			if source.Float64() < config.FillProbability {
				grid.Set(x, y, tile.Rock)
			} else {
				grid.Set(x, y, tile.Room)
			}
		}
	}

	for i := 0; i < config.Iterations; i++ {
		step(grid, config)
	}

	if config.Smoothing {
		smooth(grid)
	}

	if config.ConnectRegions {
		connectCaveRegions(grid)
	} else if config.CullUnconnected {
		cullToLargestArea(grid)
	}

	if config.FillBorder {
		fillBorder(grid)
	}

	return grid, nil
}

// fillBorder stamps Rock around the four edges of the grid, closing off
// any cavern that settled flush against the boundary.
func fillBorder(grid *tile.Grid) {
	for x := 0; x < grid.Width; x++ {
		grid.Set(x, 0, tile.Rock)
		grid.Set(x, grid.Height-1, tile.Rock)
	}
	for y := 0; y < grid.Height; y++ {
		grid.Set(0, y, tile.Rock)
		grid.Set(grid.Width-1, y, tile.Rock)
	}
}

// countWalls counts Rock neighbours in the 8-neighbourhood of (x, y),
// treating out-of-bounds cells as walls so caverns close off cleanly at
// the map edge.
func countWalls(grid *tile.Grid, x, y int) int {
	count := 0
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			nx, ny := x+dx, y+dy
			if !grid.InBounds(nx, ny) {
				count++
				continue
			}
			if grid.Is(nx, ny, tile.Rock) {
				count++
			}
		}
	}
	return count
}

func step(grid *tile.Grid, config AutomataConfig) {
	next := make([]tile.Code, grid.Width*grid.Height)
	for y := 0; y < grid.Height; y++ {
		for x := 0; x < grid.Width; x++ {
			walls := countWalls(grid, x, y)
			idx := x + y*grid.Width
			switch {
			case walls > config.BirthLimit:
				next[idx] = tile.Rock
			case walls < config.SurvivalLimit:
				next[idx] = tile.Room
			default:
				next[idx] = grid.At(x, y)
			}
		}
	}
	for y := 0; y < grid.Height; y++ {
		for x := 0; x < grid.Width; x++ {
			grid.Set(x, y, next[x+y*grid.Width])
		}
	}
}

// smooth removes single-cell wall and floor noise: a wall with few wall
// neighbours opens up, a floor nearly surrounded by wall fills in.
func smooth(grid *tile.Grid) {
	for y := 1; y < grid.Height-1; y++ {
		for x := 1; x < grid.Width-1; x++ {
			walls := countWalls(grid, x, y)
			if grid.Is(x, y, tile.Rock) && walls <= 2 {
				grid.Set(x, y, tile.Room)
			} else if grid.Is(x, y, tile.Room) && walls >= 7 {
				grid.Set(x, y, tile.Rock)
			}
		}
	}
}

// connectCaveRegions finds every disconnected cavern and, while more
// than one remains, carves a biased corridor from the first node of the
// largest region to the nearest node of the first other region in scan
// order, repeating until everything is one connected area.
func connectCaveRegions(grid *tile.Grid) {
	for {
		g := graph.NewGraph(grid, true, grid.IsPassable)
		regions := connectedRegions(g)
		if len(regions) <= 1 {
			return
		}

		largestIdx := 0
		for i, r := range regions {
			if len(r) > len(regions[largestIdx]) {
				largestIdx = i
			}
		}
		largest := regions[largestIdx]

		otherIdx := 0
		if otherIdx == largestIdx {
			otherIdx = 1
		}
		other := regions[otherIdx]

		a := largest[0]
		b := nearestNode(other, a)
		carveBiased(grid, a.X, a.Y, b.X, b.Y, nil, false)
	}
}

func nearestNode(candidates []*graph.Node, to *graph.Node) *graph.Node {
	best := candidates[0]
	bestDist := manhattanInt(best, to)
	for _, c := range candidates[1:] {
		if d := manhattanInt(c, to); d < bestDist {
			best = c
			bestDist = d
		}
	}
	return best
}

func manhattanInt(a, b *graph.Node) int {
	dx := a.X - b.X
	if dx < 0 {
		dx = -dx
	}
	dy := a.Y - b.Y
	if dy < 0 {
		dy = -dy
	}
	return dx + dy
}

// connectedRegions partitions every node in g into connected components.
func connectedRegions(g *graph.Graph) [][]*graph.Node {
	seen := make(map[*graph.Node]bool)
	var regions [][]*graph.Node

	for _, n := range g.Nodes() {
		if seen[n] {
			continue
		}
		var region []*graph.Node
		stack := []*graph.Node{n}
		seen[n] = true
		for len(stack) > 0 {
			cur := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			region = append(region, cur)
			for i := 0; i < cur.NeighborCount; i++ {
				nb := cur.Neighbors[i]
				if !seen[nb] {
					seen[nb] = true
					stack = append(stack, nb)
				}
			}
		}
		regions = append(regions, region)
	}
	return regions
}
