package hydraulic

import (
	"fmt"
	"math"
)

const (
	laminarLimit     = 2000
	colebrookStart   = 0.02
	colebrookTol     = 1e-6
	colebrookMaxIter = 100
)

// Reynolds computes the route-wide Reynolds number for the fluid flowing in a
// pipe of the given internal diameter.
func Reynolds(f Fluid, diameter float64) float64 {
	return f.Density * f.Velocity * diameter / f.Viscosity
}

// FrictionFactor returns the Darcy friction factor for the given regime.
// Below Re=2000 the laminar closed form 64/Re is used. Otherwise the implicit
// Colebrook relation is solved by fixed-point iteration; converged reports
// whether the iteration met its tolerance within the budget. The last iterate
// is returned either way.
func FrictionFactor(reynolds, diameter, roughness float64) (factor float64, converged bool, err error) {
	if reynolds <= 0 {
		return 0, false, fmt.Errorf("hydraulic: reynolds number must be positive, got %g", reynolds)
	}
	if diameter <= 0 {
		return 0, false, fmt.Errorf("hydraulic: pipe diameter must be positive, got %g", diameter)
	}
	if roughness < 0 {
		return 0, false, fmt.Errorf("hydraulic: pipe roughness must not be negative, got %g", roughness)
	}

	if reynolds < laminarLimit {
		return 64 / reynolds, true, nil
	}

	factor, converged = colebrook(reynolds, diameter, roughness)

	return factor, converged, nil
}

// colebrook iterates 1/sqrt(f) = -2*log10(eps/(3.7*D) + 2.51/(Re*sqrt(f)))
// starting from f=0.02.
func colebrook(re, diameter, roughness float64) (float64, bool) {
	f := colebrookStart
	for i := 0; i < colebrookMaxIter; i++ {
		prev := f
		rhs := -2 * math.Log10(roughness/(3.7*diameter)+2.51/(re*math.Sqrt(f)))
		f = 1 / (rhs * rhs)
		if math.Abs(f-prev) < colebrookTol {
			return f, true
		}
	}

	return f, false
}

// segmentLoss is the Darcy-Weisbach head loss over a segment of true length l.
func segmentLoss(friction, length, diameter, velocity float64) float64 {
	return friction * (length / diameter) * velocity * velocity / (2 * Gravity)
}
