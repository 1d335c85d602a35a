package hydraulic_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pipecalc/hydraulic"
)

func TestInterpolate_Densifies(t *testing.T) {
	terrain := hydraulic.Terrain{
		X: []float64{0, 100, 300},
		Z: []float64{10, 20, 0},
	}

	dense := terrain.Interpolate(4)

	// Each of the 2 segments contributes extra+1 new steps plus the start.
	require.Len(t, dense.X, 2*5+1)
	require.Len(t, dense.Z, len(dense.X))

	// Start and end points are preserved exactly.
	assert.Equal(t, 0.0, dense.X[0])
	assert.Equal(t, 10.0, dense.Z[0])
	assert.Equal(t, 300.0, dense.X[len(dense.X)-1])
	assert.Equal(t, 0.0, dense.Z[len(dense.Z)-1])

	// Shared endpoint between segments appears once.
	count := 0
	for _, x := range dense.X {
		if x == 100 {
			count++
		}
	}
	assert.Equal(t, 1, count)

	// Interior samples are linear in both coordinates.
	assert.InDelta(t, 20.0, dense.X[1], 1e-12)
	assert.InDelta(t, 12.0, dense.Z[1], 1e-12)

	// Ordering survives.
	for i := 1; i < len(dense.X); i++ {
		assert.Greater(t, dense.X[i], dense.X[i-1])
	}
}

func TestInterpolate_NoExtraReturnsCopy(t *testing.T) {
	terrain := hydraulic.Terrain{X: []float64{0, 50}, Z: []float64{1, 2}}

	same := terrain.Interpolate(0)
	assert.Equal(t, terrain.X, same.X)
	assert.Equal(t, terrain.Z, same.Z)

	// The copy is independent of the input.
	same.Z[0] = 99
	assert.Equal(t, 1.0, terrain.Z[0])
}
