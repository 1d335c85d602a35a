package hydraulic

import "math"

// EndStateFluid describes the fluid at the inlet of a single pipe run.
type EndStateFluid struct {
	Pressure  float64 // Pa
	Velocity  float64 // m/s
	Density   float64 // kg/m^3
	Elevation float64 // m
	Viscosity float64 // Pa.s
}

// EndStatePipe describes a pipe run whose diameter may change at the outlet.
type EndStatePipe struct {
	InletDiameter   float64 // m
	OutletDiameter  float64 // m
	Length          float64 // m
	OutletElevation float64 // m
	Roughness       float64 // m
}

// EndState is the computed condition at the pipe outlet.
type EndState struct {
	Pressure          float64 `json:"pressure"`          // Pa
	Velocity          float64 `json:"velocity"`          // m/s
	PressureHead      float64 `json:"pressureHead"`      // m
	HeadLoss          float64 `json:"headLoss"`          // m
	Reynolds          float64 `json:"reynolds"`          //
	Friction          float64 `json:"friction"`          //
	FrictionConverged bool    `json:"frictionConverged"` //
}

// PipeEndState computes pressure, velocity and pressure head at the outlet of
// a pipe run with friction. Continuity fixes the outlet velocity from the
// diameter change, the Reynolds number and friction factor are evaluated on
// the outlet section, and the energy balance is Bernoulli with the
// Darcy-Weisbach loss subtracted.
func PipeEndState(fluid EndStateFluid, pipe EndStatePipe) (EndState, error) {
	if err := positive("fluid pressure", fluid.Pressure); err != nil {
		return EndState{}, err
	}
	if err := positive("fluid velocity", fluid.Velocity); err != nil {
		return EndState{}, err
	}
	if err := positive("fluid density", fluid.Density); err != nil {
		return EndState{}, err
	}
	if err := positive("fluid viscosity", fluid.Viscosity); err != nil {
		return EndState{}, err
	}
	if err := positive("inlet diameter", pipe.InletDiameter); err != nil {
		return EndState{}, err
	}
	if err := positive("outlet diameter", pipe.OutletDiameter); err != nil {
		return EndState{}, err
	}
	if err := positive("pipe length", pipe.Length); err != nil {
		return EndState{}, err
	}

	inletArea := math.Pi * pipe.InletDiameter * pipe.InletDiameter / 4
	outletArea := math.Pi * pipe.OutletDiameter * pipe.OutletDiameter / 4
	v2 := fluid.Velocity * (inletArea / outletArea)

	re := fluid.Density * v2 * pipe.OutletDiameter / fluid.Viscosity
	friction, converged, err := FrictionFactor(re, pipe.OutletDiameter, pipe.Roughness)
	if err != nil {
		return EndState{}, err
	}

	loss := segmentLoss(friction, pipe.Length, pipe.OutletDiameter, v2)

	head1 := fluid.Pressure/(fluid.Density*Gravity) + fluid.Velocity*fluid.Velocity/(2*Gravity) + fluid.Elevation
	head2 := head1 - loss
	p2 := fluid.Density * Gravity * (head2 - v2*v2/(2*Gravity) - pipe.OutletElevation)

	return EndState{
		Pressure:          p2,
		Velocity:          v2,
		PressureHead:      p2 / (fluid.Density * Gravity),
		HeadLoss:          loss,
		Reynolds:          re,
		Friction:          friction,
		FrictionConverged: converged,
	}, nil
}
