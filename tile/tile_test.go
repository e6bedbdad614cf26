package tile_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"rlkit/tile"
)

func TestNewGrid(t *testing.T) {
	t.Run("rejects non-positive dimensions", func(t *testing.T) {
		require := require.New(t)

		_, err := tile.NewGrid(0, 5)
		require.ErrorIs(err, tile.ErrInvalidConfig)

		_, err = tile.NewGrid(5, -1)
		require.ErrorIs(err, tile.ErrInvalidConfig)
	})

	t.Run("1x1 grid starts as Rock", func(t *testing.T) {
		require := require.New(t)

		g, err := tile.NewGrid(1, 1)
		require.NoError(err)
		require.Equal(tile.Rock, g.At(0, 0))
	})
}

func TestGridOutOfBounds(t *testing.T) {
	require := require.New(t)

	g, err := tile.NewGrid(3, 3)
	require.NoError(err)

	require.Equal(tile.Rock, g.At(-1, 0))
	require.Equal(tile.Rock, g.At(99, 99))
	require.False(g.InBounds(-1, 0))

	g.Set(-1, -1, tile.Room) // must not panic
}

func TestIsPassable(t *testing.T) {
	require := require.New(t)

	g, err := tile.NewGrid(5, 5)
	require.NoError(err)

	g.Set(1, 1, tile.Room)
	g.Set(2, 1, tile.Corridor)
	g.Set(3, 1, tile.Door)
	g.Set(4, 1, tile.DoorOpen)

	require.True(g.IsPassable(1, 1))
	require.True(g.IsPassable(2, 1))
	require.True(g.IsPassable(3, 1))
	require.True(g.IsPassable(4, 1))
	require.False(g.IsPassable(0, 0))
}

func TestIsOpaque(t *testing.T) {
	require := require.New(t)

	g, err := tile.NewGrid(5, 5)
	require.NoError(err)

	g.Set(1, 1, tile.Room)
	g.Set(2, 1, tile.Door)
	g.Set(3, 1, tile.DoorOpen)

	require.False(g.IsOpaque(1, 1))
	require.True(g.IsOpaque(2, 1))
	require.False(g.IsOpaque(3, 1))
	require.True(g.IsOpaque(0, 0)) // Rock
	require.True(g.IsOpaque(-5, -5))
}

func TestWallClassification(t *testing.T) {
	require := require.New(t)

	// A single 3x3 room surrounded by rock: every rock cell touching
	// the room is a wall.
	g, err := tile.NewGrid(6, 6)
	require.NoError(err)
	for y := 1; y <= 3; y++ {
		for x := 1; x <= 3; x++ {
			g.Set(x, y, tile.Room)
		}
	}

	require.True(g.IsWall(0, 1))
	require.True(g.IsRoomWall(0, 1))

	// a cell in the middle of the room is never a wall
	require.False(g.IsWall(2, 2))

	// a rock cell far from the room is not a wall
	require.False(g.IsWall(5, 5))
}

func TestWallMaskCorner(t *testing.T) {
	require := require.New(t)

	g, err := tile.NewGrid(5, 5)
	require.NoError(err)
	for y := 1; y <= 3; y++ {
		for x := 1; x <= 3; x++ {
			g.Set(x, y, tile.Room)
		}
	}

	// (0,0) is the top-left corner wall: it should connect both east
	// (to (1,0) if that's a wall) and south (to (0,1)).
	mask := g.WallMask(0, 0)
	require.NotZero(mask)

	// An isolated wall cell with no connecting wall neighbour reports
	// WallOther: (1,0) sits between two Room cells, and neither of its
	// in-bounds cardinal neighbours is a wall.
	solo, err := tile.NewGrid(3, 1)
	require.NoError(err)
	solo.Set(0, 0, tile.Room)
	solo.Set(2, 0, tile.Room)
	require.Equal(tile.WallOther, solo.WallMask(1, 0))
}

func TestIsConnecting(t *testing.T) {
	require := require.New(t)

	g, err := tile.NewGrid(5, 5)
	require.NoError(err)
	g.Set(2, 2, tile.Room)

	require.True(g.IsConnecting([2]int{1, 1}, [2]int{1, 2}))
}
