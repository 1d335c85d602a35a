// Package hydraulic computes hydraulic head profiles along a pipeline laid
// over a terrain polyline: Darcy-Weisbach friction losses, Colebrook friction
// factors and booster pump placement. All functions are pure; inputs are never
// mutated and every call is independent of every other.
package hydraulic

import (
	"errors"
	"fmt"
)

// Physical constants.
const (
	Gravity      = 9.81   // m/s^2
	WaterDensity = 1000.0 // kg/m^3
	AtmPressure  = 101325 // Pa
)

var (
	// ErrUnknownPumpCount is returned by BoundaryConstrainedProfile when the
	// pump list does not contain exactly one pump with an unknown head.
	ErrUnknownPumpCount = errors.New("hydraulic: exactly one pump with unknown head is required")

	// ErrPumpOutOfRange is returned when a pump position falls outside the
	// distance range of the profile it is inserted into.
	ErrPumpOutOfRange = errors.New("hydraulic: pump position outside profile range")

	// ErrEmptyProfile is returned when an operation needs a non-empty profile.
	ErrEmptyProfile = errors.New("hydraulic: profile has no samples")
)

// Fluid holds the constant fluid parameters of one computation.
type Fluid struct {
	Density   float64 // kg/m^3
	Viscosity float64 // Pa.s
	Velocity  float64 // m/s, representative velocity for the whole route
}

func (f Fluid) validate() error {
	if err := positive("fluid density", f.Density); err != nil {
		return err
	}
	if err := positive("fluid viscosity", f.Viscosity); err != nil {
		return err
	}

	return positive("fluid velocity", f.Velocity)
}

// Pipe holds the constant pipe parameters of one computation.
type Pipe struct {
	Diameter  float64 // m, internal
	Roughness float64 // m, absolute
}

func (p Pipe) validate() error {
	if err := positive("pipe diameter", p.Diameter); err != nil {
		return err
	}
	if p.Roughness < 0 {
		return fmt.Errorf("hydraulic: pipe roughness must not be negative, got %g", p.Roughness)
	}

	return nil
}

// Pump is a discrete energy injection at a fixed position along the route.
// A pump with Unknown set has its Head solved by BoundaryConstrainedProfile.
type Pump struct {
	Position float64 `json:"position"` // m along the route
	Head     float64 `json:"head"`     // m of delivered head
	Unknown  bool    `json:"-"`
}

// Terrain is an ordered (distance, elevation) polyline. Distances are expected
// to be strictly increasing; the engine does not enforce monotonicity.
type Terrain struct {
	X []float64 // m
	Z []float64 // m
}

func (t Terrain) validate() error {
	if len(t.X) != len(t.Z) {
		return fmt.Errorf("hydraulic: terrain has %d distances but %d elevations", len(t.X), len(t.Z))
	}
	if len(t.X) < 2 {
		return fmt.Errorf("hydraulic: terrain needs at least 2 points, got %d", len(t.X))
	}

	return nil
}

// Result is the outcome of one profile computation.
type Result struct {
	Profile Profile
	// Pumps holds every pump of the profile in ascending position order, with
	// all heads resolved.
	Pumps []Pump
	// Reynolds and Friction are the single route-wide values; segment-local
	// re-evaluation is deliberately not performed.
	Reynolds float64
	Friction float64
	// FrictionConverged is false when the Colebrook iteration exhausted its
	// budget; the last iterate was used anyway.
	FrictionConverged bool
}

func positive(name string, v float64) error {
	if v <= 0 {
		return fmt.Errorf("hydraulic: %s must be positive, got %g", name, v)
	}

	return nil
}
