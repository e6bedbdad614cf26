// Package graph builds an 8-neighbour adjacency graph over a tile grid
// and scores it with Dijkstra's algorithm, for pathfinding and
// connectivity analysis.
package graph

import (
	"math"

	"rlkit/geom"
	"rlkit/heap"
	"rlkit/path"
	"rlkit/tile"

	"github.com/zyedidia/generic/mapset"
)

// MaxNeighbors bounds a node's adjacency list: the 8 cells surrounding
// it on a square grid.
const MaxNeighbors = 8

// Node is one grid cell. Score holds the running Dijkstra distance
// (math.Inf(1) until reached).
type Node struct {
	X, Y          int
	Neighbors     [MaxNeighbors]*Node
	NeighborCount int
	Score         float64
}

// Point renders the node's coordinates as a geom.Point.
func (n *Node) Point() geom.Point {
	return geom.XY(n.X, n.Y)
}

func (n *Node) addNeighbor(o *Node) {
	if n.NeighborCount >= MaxNeighbors {
		return
	}
	n.Neighbors[n.NeighborCount] = o
	n.NeighborCount++
}

// Graph is a flat array of nodes indexed x+y*width, one per grid cell
// that passes the construction filter.
type Graph struct {
	Width, Height int
	nodes         []*Node
}

var cardinalOffsets = [4][2]int{{1, 0}, {-1, 0}, {0, 1}, {0, -1}}
var diagonalOffsets = [4][2]int{{1, 1}, {1, -1}, {-1, 1}, {-1, -1}}

// NewGraph builds a graph over grid. filter decides which cells become
// nodes (nil defaults to grid.IsPassable); includeDiagonals additionally
// links the four diagonal neighbours, not just the four cardinal ones.
func NewGraph(grid *tile.Grid, includeDiagonals bool, filter func(x, y int) bool) *Graph {
	if filter == nil {
		filter = grid.IsPassable
	}

	g := &Graph{Width: grid.Width, Height: grid.Height}
	g.nodes = make([]*Node, grid.Width*grid.Height)

	for y := 0; y < grid.Height; y++ {
		for x := 0; x < grid.Width; x++ {
			if filter(x, y) {
				g.nodes[g.index(x, y)] = &Node{X: x, Y: y, Score: math.Inf(1)}
			}
		}
	}

	link := func(offsets [4][2]int) {
		for y := 0; y < grid.Height; y++ {
			for x := 0; x < grid.Width; x++ {
				cur := g.At(x, y)
				if cur == nil {
					continue
				}
				for _, d := range offsets {
					nb := g.At(x+d[0], y+d[1])
					if nb != nil {
						cur.addNeighbor(nb)
					}
				}
			}
		}
	}
	link(cardinalOffsets)
	if includeDiagonals {
		link(diagonalOffsets)
	}

	return g
}

func (g *Graph) index(x, y int) int {
	return x + y*g.Width
}

// At returns the node at (x, y), or nil if out of bounds or filtered out
// at construction.
func (g *Graph) At(x, y int) *Node {
	if x < 0 || y < 0 || x >= g.Width || y >= g.Height {
		return nil
	}
	return g.nodes[g.index(x, y)]
}

// Nodes returns every constructed node (filtered-out cells are absent).
func (g *Graph) Nodes() []*Node {
	out := make([]*Node, 0, len(g.nodes))
	for _, n := range g.nodes {
		if n != nil {
			out = append(out, n)
		}
	}
	return out
}

// Reset sets every node's score back to infinity, so the graph can be
// rescored from a different origin.
func (g *Graph) Reset() {
	for _, n := range g.nodes {
		if n != nil {
			n.Score = math.Inf(1)
		}
	}
}

// CostFunc computes the edge weight of stepping from current to
// neighbor, given current's already-settled score. This is distinct
// from geom.DistanceFunc: a DistanceFunc measures pure geometric
// separation, while a CostFunc may fold in terrain penalties (doors,
// walls) on top of it.
type CostFunc func(current, neighbor *Node) float64

// ScoreCustom runs Dijkstra's algorithm from start using cost to weight
// edges, writing the result into each reachable node's Score field.
// Every node begins at +Inf (via Reset, or from NewGraph); start is
// seeded to zero. A node is pushed onto the queue exactly once, the
// first time it receives a finite score; later relaxations update
// Score in place without a second push, which is cheaper than a full
// decrease-key heap and, since scores only ever fall, never reorders a
// node past one already popped with a lower score.
func ScoreCustom(start *Node, cost CostFunc) {
	if start == nil {
		return
	}
	start.Score = 0

	queue := heap.New[*Node](16, func(a, b *Node) bool { return a.Score < b.Score })
	queue.Push(start)

	for queue.Len() > 0 {
		cur, ok := queue.Pop()
		if !ok {
			break
		}
		for i := 0; i < cur.NeighborCount; i++ {
			nb := cur.Neighbors[i]
			r := cost(cur, nb)
			if r < nb.Score {
				wasInf := math.IsInf(nb.Score, 1)
				nb.Score = r
				if wasInf {
					queue.Push(nb)
				}
			}
		}
	}
}

// Score runs plain Dijkstra from start, weighting each edge by distance
// between the two nodes' points under the given distance function.
func Score(start *Node, distance geom.DistanceFunc) {
	ScoreCustom(start, func(current, neighbor *Node) float64 {
		return current.Score + distance(current.Point(), neighbor.Point())
	})
}

// NewDijkstra scores g from start using geom.Manhattan distance, the
// default used throughout mapgen's corridor carving.
func NewDijkstra(g *Graph, start *Node) {
	g.Reset()
	Score(start, geom.Manhattan)
}

// LowestScoredNeighbor returns the neighbor of node with the smallest
// Score. Returns (nil, false) if node has no neighbours.
func LowestScoredNeighbor(node *Node) (*Node, bool) {
	if node == nil || node.NeighborCount == 0 {
		return nil, false
	}
	best := node.Neighbors[0]
	for i := 1; i < node.NeighborCount; i++ {
		if node.Neighbors[i].Score < best.Score {
			best = node.Neighbors[i]
		}
	}
	return best, true
}

// HighestScoredNeighbor returns the neighbor of node with the largest
// Score. Returns (nil, false) if node has no neighbours.
func HighestScoredNeighbor(node *Node) (*Node, bool) {
	if node == nil || node.NeighborCount == 0 {
		return nil, false
	}
	best := node.Neighbors[0]
	for i := 1; i < node.NeighborCount; i++ {
		if node.Neighbors[i].Score > best.Score {
			best = node.Neighbors[i]
		}
	}
	return best, true
}

// NewPath walks downhill from start, following the lowest-scored
// neighbour at each step, until reaching a node with score 0 (the
// origin the graph was last scored from) or a node with no improving
// neighbour. The graph must already be scored (Score, ScoreCustom, or
// NewDijkstra) with the desired destination as the scoring origin.
func NewPath(start *Node) *path.Path[geom.Point] {
	if start == nil {
		return nil
	}
	head := path.New(start.Point())
	tail := head

	cur := start
	for cur.Score > 0 {
		next, ok := LowestScoredNeighbor(cur)
		if !ok || next.Score >= cur.Score {
			break
		}
		tail = tail.Append(next.Point())
		cur = next
	}
	return head
}

// LargestConnectedArea partitions every node in g into connected
// components (via cardinal/diagonal adjacency, whatever NewGraph built)
// and returns the members of the largest one.
func LargestConnectedArea(g *Graph) []*Node {
	visited := mapset.New[*Node]()
	var best []*Node

	for _, n := range g.Nodes() {
		if visited.Has(n) {
			continue
		}
		region := floodFill(n, visited)
		if len(region) > len(best) {
			best = region
		}
	}
	return best
}

func floodFill(start *Node, visited mapset.Set[*Node]) []*Node {
	var region []*Node
	stack := []*Node{start}
	visited.Put(start)

	for len(stack) > 0 {
		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		region = append(region, n)

		for i := 0; i < n.NeighborCount; i++ {
			nb := n.Neighbors[i]
			if !visited.Has(nb) {
				visited.Put(nb)
				stack = append(stack, nb)
			}
		}
	}
	return region
}
