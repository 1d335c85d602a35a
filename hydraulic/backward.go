package hydraulic

import (
	"fmt"
	"math"
	"sort"
)

// BackwardProfile integrates friction losses backward from a known head at the
// last terrain point, then overlays the caller's known-head pumps in ascending
// position order. Each insertion keeps the far end fixed, and the profile is
// re-anchored once more afterwards, so the final sample equals
// finalHead + Z[last] exactly: the far boundary is authoritative here, in
// contrast to BoundaryConstrainedProfile which closes the near boundary
// through its solved pump.
func BackwardProfile(terrain Terrain, fluid Fluid, pipe Pipe, finalHead float64, pumps []Pump) (Result, error) {
	if err := terrain.validate(); err != nil {
		return Result{}, err
	}
	if err := fluid.validate(); err != nil {
		return Result{}, err
	}
	if err := pipe.validate(); err != nil {
		return Result{}, err
	}
	for i, pm := range pumps {
		if pm.Unknown {
			return Result{}, fmt.Errorf("hydraulic: pump %d has no head; unknown-head pumps are only solved by BoundaryConstrainedProfile", i)
		}
	}

	re := Reynolds(fluid, pipe.Diameter)
	friction, converged, err := FrictionFactor(re, pipe.Diameter, pipe.Roughness)
	if err != nil {
		return Result{}, err
	}

	prof := backwardBase(terrain, friction, fluid.Velocity, pipe.Diameter, finalHead)

	ordered := append([]Pump(nil), pumps...)
	sort.SliceStable(ordered, func(i, j int) bool { return ordered[i].Position < ordered[j].Position })
	for _, pm := range ordered {
		prof, err = prof.InsertPump(pm.Position, pm.Head)
		if err != nil {
			return Result{}, err
		}
	}

	// Restore the boundary condition in case insertion arithmetic drifted it.
	prof = prof.shift(finalHead + terrain.Z[len(terrain.Z)-1] - prof.EndHead())

	return Result{
		Profile:           prof,
		Pumps:             ordered,
		Reynolds:          re,
		Friction:          friction,
		FrictionConverged: converged,
	}, nil
}

// backwardBase builds the no-pump profile by walking the terrain in reverse
// from finalHead + Z[last], adding the loss of each segment: moving upstream
// against the flow undoes the forward loss.
func backwardBase(terrain Terrain, friction, velocity, diameter, finalHead float64) Profile {
	n := len(terrain.X)
	heads := make([]float64, n)
	heads[n-1] = finalHead + terrain.Z[n-1]
	for i := n - 2; i >= 0; i-- {
		length := math.Hypot(terrain.X[i+1]-terrain.X[i], terrain.Z[i+1]-terrain.Z[i])
		heads[i] = heads[i+1] + segmentLoss(friction, length, diameter, velocity)
	}

	samples := make([]Sample, n)
	for i := range samples {
		samples[i] = Sample{X: terrain.X[i], Head: heads[i]}
	}

	return Profile{Samples: samples}
}
