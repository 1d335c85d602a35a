package hydraulic

import "math"

// ForwardProfile walks the terrain from the inlet, accumulating Darcy-Weisbach
// losses over slope-true segment lengths, and inserts a booster pump of fixed
// pumpHead wherever the clearance between head and terrain drops to
// safetyMargin or below; the start point is checked too. One friction factor,
// computed from the representative velocity, is held for the whole route.
// extraPoints > 0 densifies the terrain first, which tightens the positions at
// which pumps can be triggered. No limit is placed on the number of pumps; a
// margin/pumpHead combination that violates the margin at every step inserts a
// pump at every step.
func ForwardProfile(terrain Terrain, fluid Fluid, pipe Pipe, initialHead, safetyMargin, pumpHead float64, extraPoints int) (Result, error) {
	if err := terrain.validate(); err != nil {
		return Result{}, err
	}
	if err := fluid.validate(); err != nil {
		return Result{}, err
	}
	if err := pipe.validate(); err != nil {
		return Result{}, err
	}

	if extraPoints > 0 {
		terrain = terrain.Interpolate(extraPoints)
	}

	re := Reynolds(fluid, pipe.Diameter)
	friction, converged, err := FrictionFactor(re, pipe.Diameter, pipe.Roughness)
	if err != nil {
		return Result{}, err
	}

	prof := Profile{Samples: make([]Sample, 0, len(terrain.X))}
	var pumps []Pump

	head := initialHead + terrain.Z[0]
	prof.Samples = append(prof.Samples, Sample{X: terrain.X[0], Head: head})
	if head-terrain.Z[0] <= safetyMargin {
		prof.addJump(terrain.X[0], pumpHead)
		pumps = append(pumps, Pump{Position: terrain.X[0], Head: pumpHead})
		head += pumpHead
	}

	for i := 1; i < len(terrain.X); i++ {
		length := math.Hypot(terrain.X[i]-terrain.X[i-1], terrain.Z[i]-terrain.Z[i-1])
		head -= segmentLoss(friction, length, pipe.Diameter, fluid.Velocity)
		prof.Samples = append(prof.Samples, Sample{X: terrain.X[i], Head: head})

		if head-terrain.Z[i] <= safetyMargin {
			prof.addJump(terrain.X[i], pumpHead)
			pumps = append(pumps, Pump{Position: terrain.X[i], Head: pumpHead})
			head += pumpHead
		}
	}

	return Result{
		Profile:           prof,
		Pumps:             pumps,
		Reynolds:          re,
		Friction:          friction,
		FrictionConverged: converged,
	}, nil
}
