package hydraulic_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pipecalc/hydraulic"
)

func undulating() hydraulic.Terrain {
	return hydraulic.Terrain{
		X: []float64{0, 100, 200, 300},
		Z: []float64{5, 10, 0, 8},
	}
}

func TestBackwardProfile_NoPumps(t *testing.T) {
	terrain := undulating()

	res, err := hydraulic.BackwardProfile(terrain, testFluid, testPipe, 20, nil)
	require.NoError(t, err)

	// Anchored at the outlet.
	assert.InDelta(t, 20+8, res.Profile.EndHead(), 1e-9)
	assert.Empty(t, res.Pumps)
	assert.Empty(t, res.Profile.Jumps)

	// Without pumps the head can only fall in the flow direction.
	for i := 1; i < len(res.Profile.Samples); i++ {
		assert.Less(t, res.Profile.Samples[i].Head, res.Profile.Samples[i-1].Head)
	}
}

func TestBackwardProfile_WithPumps(t *testing.T) {
	terrain := undulating()

	base, err := hydraulic.BackwardProfile(terrain, testFluid, testPipe, 20, nil)
	require.NoError(t, err)

	// Deliberately out of order; the result must come back sorted.
	pumps := []hydraulic.Pump{
		{Position: 150, Head: 25},
		{Position: 50, Head: 10},
	}
	res, err := hydraulic.BackwardProfile(terrain, testFluid, testPipe, 20, pumps)
	require.NoError(t, err)

	require.Len(t, res.Pumps, 2)
	assert.Equal(t, 50.0, res.Pumps[0].Position)
	assert.Equal(t, 150.0, res.Pumps[1].Position)

	// The outlet head is still authoritative.
	assert.InDelta(t, 20+8, res.Profile.EndHead(), 1e-9)

	// Each pump lowers the required inlet head by its own delivery.
	assert.InDelta(t, base.Profile.StartHead()-35, res.Profile.StartHead(), 1e-9)

	require.Len(t, res.Profile.Jumps, 2)
	assert.Equal(t, 50.0, res.Profile.Jumps[0].X)
	assert.InDelta(t, 10, res.Profile.Jumps[0].Delta, 1e-9)
	assert.Equal(t, 150.0, res.Profile.Jumps[1].X)
	assert.InDelta(t, 25, res.Profile.Jumps[1].Delta, 1e-9)

	// The caller's slice keeps its order.
	assert.Equal(t, 150.0, pumps[0].Position)
}

func TestBackwardProfile_RejectsUnknownPump(t *testing.T) {
	_, err := hydraulic.BackwardProfile(undulating(), testFluid, testPipe, 20,
		[]hydraulic.Pump{{Position: 100, Unknown: true}})
	assert.Error(t, err)
}

func TestBackwardProfile_PumpOutOfRange(t *testing.T) {
	_, err := hydraulic.BackwardProfile(undulating(), testFluid, testPipe, 20,
		[]hydraulic.Pump{{Position: 500, Head: 10}})
	assert.ErrorIs(t, err, hydraulic.ErrPumpOutOfRange)
}
