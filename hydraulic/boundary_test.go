package hydraulic_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pipecalc/hydraulic"
)

func TestBoundaryConstrainedProfile_ClosesBothEnds(t *testing.T) {
	terrain := undulating()
	pumps := []hydraulic.Pump{
		{Position: 100, Head: 15},
		{Position: 200, Unknown: true},
	}

	res, err := hydraulic.BoundaryConstrainedProfile(terrain, testFluid, testPipe, 30, 12, pumps)
	require.NoError(t, err)

	assert.InDelta(t, 30+terrain.Z[0], res.Profile.StartHead(), 1e-9)
	assert.InDelta(t, 12+terrain.Z[3], res.Profile.EndHead(), 1e-9)

	// Known pumps first, solved pump last with its computed head.
	require.Len(t, res.Pumps, 2)
	assert.Equal(t, 100.0, res.Pumps[0].Position)
	assert.InDelta(t, 15, res.Pumps[0].Head, 1e-12)
	solved := res.Pumps[1]
	assert.Equal(t, 200.0, solved.Position)
	assert.False(t, solved.Unknown)

	// The solved head shows up as the jump at its position.
	var delta float64
	for _, j := range res.Profile.Jumps {
		if j.X == 200 {
			delta = j.Delta
		}
	}
	assert.InDelta(t, solved.Head, delta, 1e-9)
}

func TestBoundaryConstrainedProfile_SolvedHeadMatchesDeficit(t *testing.T) {
	terrain := undulating()

	// With no known pumps the solved head is exactly the gap between the
	// unconstrained backward start and the requested inlet head.
	base, err := hydraulic.BackwardProfile(terrain, testFluid, testPipe, 12, nil)
	require.NoError(t, err)
	gap := base.Profile.StartHead() - (30 + terrain.Z[0])

	res, err := hydraulic.BoundaryConstrainedProfile(terrain, testFluid, testPipe, 30, 12,
		[]hydraulic.Pump{{Position: 150, Unknown: true}})
	require.NoError(t, err)

	require.Len(t, res.Pumps, 1)
	assert.InDelta(t, gap, res.Pumps[0].Head, 1e-9)
	assert.InDelta(t, 30+terrain.Z[0], res.Profile.StartHead(), 1e-9)
}

func TestBoundaryConstrainedProfile_NegativeSolvedHead(t *testing.T) {
	terrain := undulating()

	// An oversupplied inlet solves to a negative pump head; the closure still
	// holds and the sign is the caller's signal that the pump is unnecessary.
	res, err := hydraulic.BoundaryConstrainedProfile(terrain, testFluid, testPipe, 500, 12,
		[]hydraulic.Pump{{Position: 150, Unknown: true}})
	require.NoError(t, err)

	assert.Negative(t, res.Pumps[0].Head)
	assert.InDelta(t, 500+terrain.Z[0], res.Profile.StartHead(), 1e-9)
	assert.InDelta(t, 12+terrain.Z[3], res.Profile.EndHead(), 1e-9)
}

func TestBoundaryConstrainedProfile_UnknownCount(t *testing.T) {
	terrain := undulating()

	_, err := hydraulic.BoundaryConstrainedProfile(terrain, testFluid, testPipe, 30, 12,
		[]hydraulic.Pump{{Position: 100, Head: 15}})
	assert.ErrorIs(t, err, hydraulic.ErrUnknownPumpCount)

	_, err = hydraulic.BoundaryConstrainedProfile(terrain, testFluid, testPipe, 30, 12,
		[]hydraulic.Pump{
			{Position: 100, Unknown: true},
			{Position: 200, Unknown: true},
		})
	assert.ErrorIs(t, err, hydraulic.ErrUnknownPumpCount)

	_, err = hydraulic.BoundaryConstrainedProfile(terrain, testFluid, testPipe, 30, 12, nil)
	assert.ErrorIs(t, err, hydraulic.ErrUnknownPumpCount)
}

func TestBoundaryConstrainedProfile_UnknownPumpOutOfRange(t *testing.T) {
	_, err := hydraulic.BoundaryConstrainedProfile(undulating(), testFluid, testPipe, 30, 12,
		[]hydraulic.Pump{{Position: 999, Unknown: true}})
	assert.ErrorIs(t, err, hydraulic.ErrPumpOutOfRange)
}
