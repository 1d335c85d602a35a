package hydraulic_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pipecalc/hydraulic"
)

var (
	testFluid = hydraulic.Fluid{Density: 1000, Viscosity: 0.001, Velocity: 1.5}
	testPipe  = hydraulic.Pipe{Diameter: 0.1, Roughness: 0.0002}
)

// rolling 5 km route, one full sine period of 40 m relief
func rollingTerrain() hydraulic.Terrain {
	n := 21
	terrain := hydraulic.Terrain{X: make([]float64, n), Z: make([]float64, n)}
	for i := range terrain.X {
		terrain.X[i] = float64(i) * 250
		terrain.Z[i] = 20 * math.Sin(terrain.X[i]/800)
	}

	return terrain
}

func TestForwardProfile_NoPumpsWhenHeadIsAmple(t *testing.T) {
	terrain := hydraulic.Terrain{X: []float64{0, 100, 200}, Z: []float64{0, 0, 0}}

	res, err := hydraulic.ForwardProfile(terrain, testFluid, testPipe, 50, 1, 20, 0)
	require.NoError(t, err)

	assert.Empty(t, res.Pumps)
	assert.Empty(t, res.Profile.Jumps)
	assert.InDelta(t, 50, res.Profile.StartHead(), 1e-12)
	assert.True(t, res.FrictionConverged)
	assert.InDelta(t, 150000, res.Reynolds, 1e-9)

	// Pure friction on flat ground: strictly decreasing head.
	for i := 1; i < len(res.Profile.Samples); i++ {
		assert.Less(t, res.Profile.Samples[i].Head, res.Profile.Samples[i-1].Head)
	}
}

func TestForwardProfile_PumpAtStartPoint(t *testing.T) {
	terrain := hydraulic.Terrain{X: []float64{0, 100, 200}, Z: []float64{0, 0, 0}}

	// Initial head is already inside the margin, so the start itself needs a
	// booster.
	res, err := hydraulic.ForwardProfile(terrain, testFluid, testPipe, 0.5, 1, 20, 0)
	require.NoError(t, err)

	require.NotEmpty(t, res.Pumps)
	assert.Equal(t, 0.0, res.Pumps[0].Position)
	require.NotEmpty(t, res.Profile.Jumps)
	assert.Equal(t, 0.0, res.Profile.Jumps[0].X)
	assert.InDelta(t, 20, res.Profile.Jumps[0].Delta, 1e-12)
}

func TestForwardProfile_MarginWidensPumpCount(t *testing.T) {
	terrain := rollingTerrain()

	counts := make([]int, 0)
	for _, margin := range []float64{0, 5, 10, 15, 20, 25, 30, 34} {
		res, err := hydraulic.ForwardProfile(terrain, testFluid, testPipe, 60, margin, 35, 0)
		require.NoError(t, err)

		// Every jump is one pump of the configured head.
		require.Len(t, res.Profile.Jumps, len(res.Pumps))
		for _, j := range res.Profile.Jumps {
			assert.InDelta(t, 35, j.Delta, 1e-12)
		}

		counts = append(counts, len(res.Pumps))
	}

	// A wider margin can only add pumps, never remove them.
	for i := 1; i < len(counts); i++ {
		assert.GreaterOrEqual(t, counts[i], counts[i-1])
	}
	assert.Equal(t, 3, counts[0])
	assert.Equal(t, 4, counts[len(counts)-1])
}

func TestForwardProfile_MarginHoldsBetweenPumps(t *testing.T) {
	terrain := rollingTerrain()
	const margin = 10.0

	res, err := hydraulic.ForwardProfile(terrain, testFluid, testPipe, 60, margin, 35, 0)
	require.NoError(t, err)

	// At every sample the post-jump head clears the terrain by the margin.
	for i, s := range res.Profile.Samples {
		post := s.Head
		for _, j := range res.Profile.Jumps {
			if j.X == s.X {
				post += j.Delta
			}
		}
		assert.Greater(t, post-terrain.Z[i], margin, "sample %d", i)
	}
}

func TestForwardProfile_ExtraPointsDensify(t *testing.T) {
	terrain := hydraulic.Terrain{X: []float64{0, 100, 200}, Z: []float64{0, 5, 0}}

	res, err := hydraulic.ForwardProfile(terrain, testFluid, testPipe, 50, 1, 20, 9)
	require.NoError(t, err)

	assert.Len(t, res.Profile.Samples, 2*10+1)
}

func TestForwardProfile_SlopeLengthExceedsHorizontal(t *testing.T) {
	flat := hydraulic.Terrain{X: []float64{0, 100}, Z: []float64{10, 10}}
	steep := hydraulic.Terrain{X: []float64{0, 100}, Z: []float64{0, 80}}

	flatRes, err := hydraulic.ForwardProfile(flat, testFluid, testPipe, 100, 0, 20, 0)
	require.NoError(t, err)
	steepRes, err := hydraulic.ForwardProfile(steep, testFluid, testPipe, 100, 0, 20, 0)
	require.NoError(t, err)

	flatLoss := flatRes.Profile.Samples[0].Head - flatRes.Profile.Samples[1].Head
	steepLoss := steepRes.Profile.Samples[0].Head - steepRes.Profile.Samples[1].Head
	assert.Greater(t, steepLoss, flatLoss)
}

func TestForwardProfile_InputValidation(t *testing.T) {
	terrain := hydraulic.Terrain{X: []float64{0, 100}, Z: []float64{0, 0}}

	_, err := hydraulic.ForwardProfile(hydraulic.Terrain{X: []float64{0}, Z: []float64{0}}, testFluid, testPipe, 50, 1, 20, 0)
	assert.Error(t, err)

	_, err = hydraulic.ForwardProfile(hydraulic.Terrain{X: []float64{0, 100}, Z: []float64{0}}, testFluid, testPipe, 50, 1, 20, 0)
	assert.Error(t, err)

	bad := testFluid
	bad.Velocity = 0
	_, err = hydraulic.ForwardProfile(terrain, bad, testPipe, 50, 1, 20, 0)
	assert.Error(t, err)

	badPipe := testPipe
	badPipe.Diameter = -0.1
	_, err = hydraulic.ForwardProfile(terrain, testFluid, badPipe, 50, 1, 20, 0)
	assert.Error(t, err)
}
