package bench

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSpaceValidation(t *testing.T) {
	_, err := NewSpace()
	assert.ErrorIs(t, err, ErrConfiguration)

	_, err = NewSpace(Real{Low: 1, High: 0})
	assert.ErrorIs(t, err, ErrConfiguration)

	_, err = NewSpace(Real{Low: 1, High: 1})
	assert.ErrorIs(t, err, ErrConfiguration)

	_, err = NewSpace(Integer{Low: 5, High: 5})
	assert.ErrorIs(t, err, ErrConfiguration)
}

func TestLHSStratification(t *testing.T) {
	space, err := NewSpace(Real{Low: 0, High: 1}, Real{Low: -2, High: 2})
	require.NoError(t, err)
	space.Seed(42)

	const n = 10

	points := space.LHS(n)
	require.Len(t, points, n)

	// Every dimension must hit each of its n strata exactly once.
	for j := 0; j < space.NDims(); j++ {
		low, high := space.Dims()[j].Bounds()

		seen := make(map[int]bool)

		for _, p := range points {
			u := (p[j] - low) / (high - low)
			stratum := int(math.Floor(u * n))

			assert.GreaterOrEqual(t, u, 0.0)
			assert.Less(t, u, 1.0)
			assert.False(t, seen[stratum], "stratum %d hit twice in dim %d", stratum, j)
			seen[stratum] = true
		}
	}
}

func TestLHSIntegerDimension(t *testing.T) {
	space, err := NewSpace(Integer{Low: 1, High: 6})
	require.NoError(t, err)
	space.Seed(42)

	// 12 points over 6 values: stratification gives each value exactly twice.
	points := space.LHS(12)

	counts := make(map[float64]int)

	for _, p := range points {
		v := p[0]

		assert.Equal(t, math.Trunc(v), v, "integer dimension produced %v", v)
		assert.GreaterOrEqual(t, v, 1.0)
		assert.LessOrEqual(t, v, 6.0)

		counts[v]++
	}

	for v := 1.0; v <= 6; v++ {
		assert.Equal(t, 2, counts[v], "value %v", v)
	}
}

func TestLHSSeedReproducible(t *testing.T) {
	space, err := NewSpace(Real{Low: 0, High: 1}, Integer{Low: 0, High: 9})
	require.NoError(t, err)

	space.Seed(7)
	first := space.LHS(20)

	space.Seed(7)
	second := space.LHS(20)

	assert.Equal(t, first, second)
}

func TestDimensionsFromRanges(t *testing.T) {
	reals := Dimensions(Range[float64]{Min: -1, Max: 1}, Range[float64]{Min: 0, Max: 10})
	require.Len(t, reals, 2)

	assert.IsType(t, Real{}, reals[0])

	low, high := reals[1].Bounds()
	assert.Equal(t, 0.0, low)
	assert.Equal(t, 10.0, high)

	ints := Dimensions(Range[int]{Min: 1, Max: 32})
	require.Len(t, ints, 1)

	assert.IsType(t, Integer{}, ints[0])
}

func TestAsSpace(t *testing.T) {
	space, err := NewSpace(Real{Low: 0, High: 1})
	require.NoError(t, err)

	same, err := AsSpace(space)
	require.NoError(t, err)
	assert.Same(t, space, same)

	fromDims, err := AsSpace([]Dimension{Real{Low: 0, High: 1}, Integer{Low: 1, High: 8}})
	require.NoError(t, err)
	assert.Equal(t, 2, fromDims.NDims())

	fromBounds, err := AsSpace([][2]float64{{-5, 10}, {0, 15}})
	require.NoError(t, err)
	assert.Equal(t, 2, fromBounds.NDims())

	_, err = AsSpace("a space")
	assert.ErrorIs(t, err, ErrConfiguration)
}
