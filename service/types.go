package service

// Computation modes stored on a run record.
const (
	ModeForward  = "forward"
	ModeBackward = "backward"
	ModeBoundary = "boundary"
)

type ImportTerrainResult struct {
	TerrainID      int64  `json:"terrainId"`
	Name           string `json:"name"`
	ImportedPoints int    `json:"importedPoints"`
}

type TerrainInfo struct {
	ID         int64  `json:"id"`
	Name       string `json:"name"`
	PointCount int    `json:"pointCount"`
	CreatedAt  string `json:"createdAt"`
}

type FluidParams struct {
	Density   float64 `json:"density" binding:"required"`
	Viscosity float64 `json:"viscosity" binding:"required"`
	Velocity  float64 `json:"velocity" binding:"required"`
}

type PipeParams struct {
	Diameter  float64 `json:"diameter" binding:"required"`
	Roughness float64 `json:"roughness"`
}

// PumpSpec is a caller-supplied pump. A nil Head marks the one pump whose head
// the boundary-constrained mode must solve for.
type PumpSpec struct {
	Position float64  `json:"position"`
	Head     *float64 `json:"head"`
}

type ForwardParams struct {
	TerrainID    int64       `json:"terrainId" binding:"required"`
	Fluid        FluidParams `json:"fluid" binding:"required"`
	Pipe         PipeParams  `json:"pipe" binding:"required"`
	InitialHead  float64     `json:"initialHead"`
	SafetyMargin float64     `json:"safetyMargin"`
	PumpHead     float64     `json:"pumpHead" binding:"required"`
	ExtraPoints  int         `json:"extraPoints"`
}

type BackwardParams struct {
	TerrainID int64       `json:"terrainId" binding:"required"`
	Fluid     FluidParams `json:"fluid" binding:"required"`
	Pipe      PipeParams  `json:"pipe" binding:"required"`
	FinalHead float64     `json:"finalHead"`
	Pumps     []PumpSpec  `json:"pumps"`
}

type BoundaryParams struct {
	TerrainID   int64       `json:"terrainId" binding:"required"`
	Fluid       FluidParams `json:"fluid" binding:"required"`
	Pipe        PipeParams  `json:"pipe" binding:"required"`
	InitialHead float64     `json:"initialHead"`
	FinalHead   float64     `json:"finalHead"`
	Pumps       []PumpSpec  `json:"pumps" binding:"required"`
}

type EndStateParams struct {
	Pressure        float64 `json:"pressure" binding:"required"`
	Velocity        float64 `json:"velocity" binding:"required"`
	Density         float64 `json:"density" binding:"required"`
	Elevation       float64 `json:"elevation"`
	Viscosity       float64 `json:"viscosity" binding:"required"`
	InletDiameter   float64 `json:"inletDiameter" binding:"required"`
	OutletDiameter  float64 `json:"outletDiameter" binding:"required"`
	Length          float64 `json:"length" binding:"required"`
	OutletElevation float64 `json:"outletElevation"`
	Roughness       float64 `json:"roughness"`
}

type PumpDTO struct {
	Position float64 `json:"position"`
	Head     float64 `json:"head"`
	Solved   bool    `json:"solved"`
}

// RunResult carries the rendered profile polyline (duplicate x at pump
// positions) together with the resolved pump list and run metadata.
type RunResult struct {
	RunID             int64     `json:"runId"`
	Mode              string    `json:"mode"`
	X                 []float64 `json:"x"`
	Head              []float64 `json:"head"`
	TerrainX          []float64 `json:"terrainX"`
	TerrainZ          []float64 `json:"terrainZ"`
	Pumps             []PumpDTO `json:"pumps"`
	ReynoldsNumber    float64   `json:"reynoldsNumber"`
	FrictionFactor    float64   `json:"frictionFactor"`
	FrictionConverged bool      `json:"frictionConverged"`
}

type RunSummary struct {
	RunID             int64   `json:"runId"`
	TerrainID         int64   `json:"terrainId"`
	Mode              string  `json:"mode"`
	CreatedAt         string  `json:"createdAt"`
	PumpCount         int     `json:"pumpCount"`
	ReynoldsNumber    float64 `json:"reynoldsNumber"`
	FrictionFactor    float64 `json:"frictionFactor"`
	FrictionConverged bool    `json:"frictionConverged"`
}
