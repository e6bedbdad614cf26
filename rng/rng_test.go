package rng_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"rlkit/rng"
)

func TestIntnDegenerateRange(t *testing.T) {
	require := require.New(t)

	source := rng.Default(1)
	require.Equal(7, source.Intn(7, 7))
}

func TestIntnInRange(t *testing.T) {
	require := require.New(t)

	source := rng.Default(42)
	for i := 0; i < 200; i++ {
		v := source.Intn(3, 9)
		require.GreaterOrEqual(v, 3)
		require.LessOrEqual(v, 9)
	}
}

func TestDefaultIsReproducible(t *testing.T) {
	require := require.New(t)

	a := rng.Default(99)
	b := rng.Default(99)

	for i := 0; i < 50; i++ {
		require.Equal(a.Intn(0, 1000), b.Intn(0, 1000))
	}
}

func TestFloat64Range(t *testing.T) {
	require := require.New(t)

	source := rng.Default(7)
	for i := 0; i < 200; i++ {
		v := source.Float64()
		require.GreaterOrEqual(v, 0.0)
		require.Less(v, 1.0)
	}
}
