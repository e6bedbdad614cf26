package geom_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"rlkit/geom"
)

func TestLine(t *testing.T) {
	t.Run("rasterises a shallow diagonal", func(t *testing.T) {
		require := require.New(t)

		p := geom.Line(geom.XY(0, 0), geom.XY(5, 3), 1)
		var got [][2]int
		for cur := p; cur != nil; cur = cur.Walk() {
			x, y := cur.Point.Floor()
			got = append(got, [2]int{x, y})
		}

		require.Equal([][2]int{{0, 0}, {1, 1}, {2, 1}, {3, 2}, {4, 2}, {5, 3}}, got)
	})

	t.Run("single point when from equals to", func(t *testing.T) {
		require := require.New(t)

		p := geom.Line(geom.XY(4, 4), geom.XY(4, 4), 1)
		require.Equal(1, p.Len())
	})

	t.Run("vertical line", func(t *testing.T) {
		require := require.New(t)

		p := geom.Line(geom.XY(2, 0), geom.XY(2, 4), 1)
		require.Equal(5, p.Len())
		last := p.Slice()[p.Len()-1]
		x, y := last.Floor()
		require.Equal(2, x)
		require.Equal(4, y)
	})
}

func TestPointFloor(t *testing.T) {
	require := require.New(t)

	x, y := geom.XY(3, 7).Floor()
	require.Equal(3, x)
	require.Equal(7, y)
}

func TestDistanceFuncs(t *testing.T) {
	require := require.New(t)

	a := geom.XY(0, 0)
	b := geom.XY(3, 4)

	require.Equal(7.0, geom.Manhattan(a, b))
	require.InDelta(5.0, geom.Euclidean(a, b), 1e-9)
	require.Equal(4.0, geom.Chebyshev(a, b))
}
