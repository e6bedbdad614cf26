package graph_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"rlkit/geom"
	"rlkit/graph"
	"rlkit/tile"
)

func emptyGrid(t *testing.T, w, h int) *tile.Grid {
	t.Helper()
	g, err := tile.NewGrid(w, h)
	require.New(t).NoError(err)
	g.Fill(tile.Room)
	return g
}

func TestNewGraphLinksCardinalNeighbors(t *testing.T) {
	require := require.New(t)

	grid := emptyGrid(t, 3, 3)
	g := graph.NewGraph(grid, false, nil)

	center := g.At(1, 1)
	require.NotNil(center)
	require.Equal(4, center.NeighborCount)

	corner := g.At(0, 0)
	require.Equal(2, corner.NeighborCount)
}

func TestNewGraphWithDiagonals(t *testing.T) {
	require := require.New(t)

	grid := emptyGrid(t, 3, 3)
	g := graph.NewGraph(grid, true, nil)

	center := g.At(1, 1)
	require.Equal(8, center.NeighborCount)
}

func TestNewGraphRespectsFilter(t *testing.T) {
	require := require.New(t)

	grid, err := tile.NewGrid(3, 3)
	require.NoError(err)
	grid.Set(1, 1, tile.Room)

	g := graph.NewGraph(grid, true, grid.IsPassable)
	require.NotNil(g.At(1, 1))
	require.Nil(g.At(0, 0))
}

func TestScoreSingleStep(t *testing.T) {
	require := require.New(t)

	grid := emptyGrid(t, 3, 1)
	g := graph.NewGraph(grid, false, nil)

	start := g.At(0, 0)
	graph.NewDijkstra(g, start)

	require.Equal(0.0, start.Score)
	require.Equal(1.0, g.At(1, 0).Score)
	require.Equal(2.0, g.At(2, 0).Score)
}

func TestLowestAndHighestScoredNeighbor(t *testing.T) {
	require := require.New(t)

	grid := emptyGrid(t, 3, 1)
	g := graph.NewGraph(grid, false, nil)
	graph.NewDijkstra(g, g.At(0, 0))

	middle := g.At(1, 0)
	lowest, ok := graph.LowestScoredNeighbor(middle)
	require.True(ok)
	require.Equal(g.At(0, 0), lowest)

	highest, ok := graph.HighestScoredNeighbor(middle)
	require.True(ok)
	require.Equal(g.At(2, 0), highest)
}

func TestNewPathStartEqualsEnd(t *testing.T) {
	require := require.New(t)

	grid := emptyGrid(t, 3, 3)
	g := graph.NewGraph(grid, false, nil)
	origin := g.At(1, 1)

	graph.NewDijkstra(g, origin)
	p := graph.NewPath(origin)

	require.Equal(1, p.Len())
}

func TestNewPathFollowsShortestRoute(t *testing.T) {
	require := require.New(t)

	grid := emptyGrid(t, 5, 1)
	g := graph.NewGraph(grid, false, nil)

	graph.NewDijkstra(g, g.At(4, 0))
	p := graph.NewPath(g.At(0, 0))

	points := p.Slice()
	require.Len(points, 5)
	for i, pt := range points {
		x, y := pt.Floor()
		require.Equal(i, x)
		require.Equal(0, y)
	}
}

func TestLargestConnectedArea(t *testing.T) {
	require := require.New(t)

	grid, err := tile.NewGrid(5, 1)
	require.NoError(err)
	grid.Set(0, 0, tile.Room)
	grid.Set(1, 0, tile.Room)
	// gap at x=2
	grid.Set(3, 0, tile.Room)

	g := graph.NewGraph(grid, true, grid.IsPassable)
	largest := graph.LargestConnectedArea(g)

	require.Len(largest, 2)
}

func TestScoreCustomUsesCost(t *testing.T) {
	require := require.New(t)

	grid := emptyGrid(t, 3, 1)
	g := graph.NewGraph(grid, false, nil)

	graph.ScoreCustom(g.At(0, 0), func(current, neighbor *graph.Node) float64 {
		return current.Score + 5
	})

	require.Equal(5.0, g.At(1, 0).Score)
	require.Equal(10.0, g.At(2, 0).Score)
	require.False(math.IsInf(g.At(2, 0).Score, 1))
}

func TestPointMatchesGeomXY(t *testing.T) {
	require := require.New(t)

	grid := emptyGrid(t, 2, 2)
	g := graph.NewGraph(grid, false, nil)
	n := g.At(1, 0)
	require.Equal(geom.XY(1, 0), n.Point())
}
