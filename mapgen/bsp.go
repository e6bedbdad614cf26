package mapgen

import (
	"rlkit/bsp"
	"rlkit/geom"
	"rlkit/graph"
	"rlkit/rng"
	"rlkit/tile"
)

// GenerateBSP fills a width x height grid with Rock, recursively
// partitions it, drops one room per leaf, and connects rooms per
// config.Corridors. It returns the carved grid and the BSP tree, which
// callers can walk (e.g. for debug rendering or placing monsters per
// leaf) after generation.
func GenerateBSP(width, height int, config BSPConfig, source rng.Source) (*tile.Grid, *bsp.Node, error) {
	if source == nil {
		return nil, nil, ErrNilParameter
	}
	if err := config.Validate(); err != nil {
		return nil, nil, err
	}

	grid, err := tile.NewGrid(width, height)
	if err != nil {
		return nil, nil, err
	}
	grid.Fill(tile.Rock)

	root := bsp.NewTree(width, height)
	bsp.RecursiveSplit(root, source, config.RoomMaxWidth+config.RoomPadding, config.RoomMaxHeight+config.RoomPadding, config.MaxRecursion)

	generateRooms(root, grid, config, source)

	switch config.Corridors {
	case CorridorSimple:
		connectSubtrees(root, grid, config, source, carveSimple)
	case CorridorBSP:
		connectSubtrees(root, grid, config, source, carveBiased)
	case CorridorRandomly:
		connectRandomly(root, grid, config, source)
	case CorridorNone:
		// leave rooms unconnected
	}

	return grid, root, nil
}

// generateRooms drops a room into every leaf. Each child's leaf status
// is checked independently: the older "both children gated on
// left.IsLeaf()" shortcut silently skipped right-side rooms whenever
// the left child happened to be an internal node, so it is not
// reproduced here.
func generateRooms(node *bsp.Node, grid *tile.Grid, cfg BSPConfig, source rng.Source) {
	if node == nil {
		return
	}
	if bsp.IsLeaf(node) {
		placeRoom(node, grid, cfg, source)
		return
	}
	generateRooms(node.Left, grid, cfg, source)
	generateRooms(node.Right, grid, cfg, source)
}

func placeRoom(node *bsp.Node, grid *tile.Grid, cfg BSPConfig, source rng.Source) {
	width := source.Intn(cfg.RoomMinWidth, cfg.RoomMaxWidth)
	if width+cfg.RoomPadding*2 > node.Width {
		width = node.Width - cfg.RoomPadding*2
	}
	height := source.Intn(cfg.RoomMinHeight, cfg.RoomMaxHeight)
	if height+cfg.RoomPadding*2 > node.Height {
		height = node.Height - cfg.RoomPadding*2
	}
	if width < 1 || height < 1 {
		return
	}

	var x, y int
	if cfg.RandomiseRoomLocation {
		x = source.Intn(node.X+cfg.RoomPadding, maxInt(node.X+cfg.RoomPadding, node.X+node.Width-width-cfg.RoomPadding))
		y = source.Intn(node.Y+cfg.RoomPadding, maxInt(node.Y+cfg.RoomPadding, node.Y+node.Height-height-cfg.RoomPadding))
	} else {
		x = node.X + (node.Width-width)/2
		y = node.Y + (node.Height-height)/2
	}

	for gy := y; gy < y+height; gy++ {
		for gx := x; gx < x+width; gx++ {
			grid.Set(gx, gy, tile.Room)
		}
	}
}

// connectSubtrees walks every internal node bottom-up and, if both
// children's subtrees contain a room, carves a corridor between them
// using carve.
func connectSubtrees(node *bsp.Node, grid *tile.Grid, cfg BSPConfig, source rng.Source, carve func(grid *tile.Grid, x1, y1, x2, y2 int, source rng.Source, drawDoors bool)) {
	if node == nil || bsp.IsLeaf(node) {
		return
	}
	connectSubtrees(node.Left, grid, cfg, source, carve)
	connectSubtrees(node.Right, grid, cfg, source, carve)

	lx, ly, lok := bsp.FindRoom(node.Left, grid)
	rx, ry, rok := bsp.FindRoom(node.Right, grid)
	if lok && rok {
		carve(grid, lx, ly, rx, ry, source, cfg.DrawDoors)
	}
}

// connectRandomly shuffles every leaf in the tree and connects adjacent
// pairs in the shuffled order, regardless of tree structure, then culls
// every region but the largest connected one so a pairing that missed a
// leaf entirely doesn't leave it stranded.
func connectRandomly(root *bsp.Node, grid *tile.Grid, cfg BSPConfig, source rng.Source) {
	leaves := bsp.Leaves(root)
	if len(leaves) < 2 {
		return
	}

	shuffled := make([]*bsp.Node, len(leaves))
	copy(shuffled, leaves)
	for i := len(shuffled) - 1; i > 0; i-- {
		j := source.Intn(0, i)
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	}

	for i := 0; i+1 < len(shuffled); i++ {
		lx, ly, lok := bsp.FindRoom(shuffled[i], grid)
		rx, ry, rok := bsp.FindRoom(shuffled[i+1], grid)
		if lok && rok {
			carveBiased(grid, lx, ly, rx, ry, source, cfg.DrawDoors)
		}
	}

	cullToLargestArea(grid)
}

func cullToLargestArea(grid *tile.Grid) {
	g := graph.NewGraph(grid, true, grid.IsPassable)
	largest := graph.LargestConnectedArea(g)

	keep := make(map[[2]int]bool, len(largest))
	for _, n := range largest {
		keep[[2]int{n.X, n.Y}] = true
	}

	for y := 0; y < grid.Height; y++ {
		for x := 0; x < grid.Width; x++ {
			if grid.IsPassable(x, y) && !keep[[2]int{x, y}] {
				grid.Set(x, y, tile.Rock)
			}
		}
	}
}

// carveSimple connects two points with a single L-shaped corridor: a
// horizontal run followed by a vertical one, or vice versa, chosen by
// coin flip, matching the original header's two-leg corridor carve.
func carveSimple(grid *tile.Grid, x1, y1, x2, y2 int, source rng.Source, drawDoors bool) {
	var pts [][2]int
	if source.Intn(0, 1) == 0 {
		pts = lPath(x1, y1, x2, y2, true)
	} else {
		pts = lPath(x1, y1, x2, y2, false)
	}
	carveAndDoor(grid, pts, drawDoors)
}

func lPath(x1, y1, x2, y2 int, horizontalFirst bool) [][2]int {
	var pts [][2]int
	if horizontalFirst {
		for x := x1; x != x2; x += intSign(x2 - x1) {
			pts = append(pts, [2]int{x, y1})
		}
		pts = append(pts, [2]int{x2, y1})
		for y := y1; y != y2; y += intSign(y2 - y1) {
			pts = append(pts, [2]int{x2, y})
		}
		pts = append(pts, [2]int{x2, y2})
	} else {
		for y := y1; y != y2; y += intSign(y2 - y1) {
			pts = append(pts, [2]int{x1, y})
		}
		pts = append(pts, [2]int{x1, y2})
		for x := x1; x != x2; x += intSign(x2 - x1) {
			pts = append(pts, [2]int{x, y2})
		}
		pts = append(pts, [2]int{x2, y2})
	}
	return pts
}

// carveBiased connects two points by scoring the whole grid with
// Dijkstra from the destination using an edge cost that favors digging
// through rock, tolerates existing doors for free, and strongly
// disprefers corners and other walls (the "hardest idea in the
// library": the resulting path is the cheapest under those penalties,
// which can be longer than the shortest route, and it tends to avoid
// carving corridors that clip through room corners).
func carveBiased(grid *tile.Grid, x1, y1, x2, y2 int, source rng.Source, drawDoors bool) {
	g := graph.NewGraph(grid, false, func(x, y int) bool { return true })

	start := g.At(x1, y1)
	end := g.At(x2, y2)
	if start == nil || end == nil {
		return
	}

	g.Reset()
	graph.ScoreCustom(end, corridorCost(grid))

	p := graph.NewPath(start)
	pts := make([][2]int, 0, p.Len())
	for cur := p; cur != nil; cur = cur.Walk() {
		px, py := cur.Point.Floor()
		pts = append(pts, [2]int{px, py})
	}
	carveAndDoor(grid, pts, drawDoors)
}

func corridorCost(grid *tile.Grid) graph.CostFunc {
	return func(current, neighbor *graph.Node) float64 {
		r := current.Score + geom.Manhattan(current.Point(), neighbor.Point())
		switch {
		case grid.Is(neighbor.X, neighbor.Y, tile.Door):
			return r
		case grid.IsCornerWall(neighbor.X, neighbor.Y):
			return r + 99
		case grid.IsWall(neighbor.X, neighbor.Y):
			return r + 9
		default:
			return r
		}
	}
}

// carveAndDoor carves every Rock cell on pts to Corridor, except a cell
// that borders an existing Room becomes a Door instead when drawDoors is
// set, marking the threshold between corridor and room.
func carveAndDoor(grid *tile.Grid, pts [][2]int, drawDoors bool) {
	for _, p := range pts {
		x, y := p[0], p[1]
		if !grid.Is(x, y, tile.Rock) {
			continue
		}
		if drawDoors && grid.IsRoomWall(x, y) {
			grid.Set(x, y, tile.Door)
		} else {
			grid.Set(x, y, tile.Corridor)
		}
	}
}

func intSign(v int) int {
	if v > 0 {
		return 1
	}
	if v < 0 {
		return -1
	}
	return 0
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
