package model

import "time"

type TerrainProfile struct {
	ID         int64     `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	Name       string    `gorm:"column:name;size:128;uniqueIndex" json:"name"`
	PointCount int       `gorm:"column:point_count" json:"pointCount"`
	CreatedAt  time.Time `gorm:"column:created_at" json:"createdAt"`
}

func (TerrainProfile) TableName() string { return "terrain_profiles" }

type TerrainPoint struct {
	ID        int64   `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	ProfileID int64   `gorm:"column:profile_id;index" json:"profileId"`
	Seq       int     `gorm:"column:seq" json:"seq"`
	Distance  float64 `gorm:"column:distance" json:"distance"`
	Elevation float64 `gorm:"column:elevation" json:"elevation"`
}

func (TerrainPoint) TableName() string { return "terrain_points" }

type ComputationRun struct {
	ID        int64     `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	TerrainID int64     `gorm:"column:terrain_id;index" json:"terrainId"`
	Mode      string    `gorm:"column:mode;size:16" json:"mode"`
	CreatedAt time.Time `gorm:"column:created_at" json:"createdAt"`

	Density   float64 `gorm:"column:density" json:"density"`
	Viscosity float64 `gorm:"column:viscosity" json:"viscosity"`
	Velocity  float64 `gorm:"column:velocity" json:"velocity"`
	Diameter  float64 `gorm:"column:diameter" json:"diameter"`
	Roughness float64 `gorm:"column:roughness" json:"roughness"`

	InitialHead  float64 `gorm:"column:initial_head" json:"initialHead"`
	FinalHead    float64 `gorm:"column:final_head" json:"finalHead"`
	SafetyMargin float64 `gorm:"column:safety_margin" json:"safetyMargin"`
	PumpHead     float64 `gorm:"column:pump_head" json:"pumpHead"`
	ExtraPoints  int     `gorm:"column:extra_points" json:"extraPoints"`

	ReynoldsNumber    float64 `gorm:"column:reynolds_number" json:"reynoldsNumber"`
	FrictionFactor    float64 `gorm:"column:friction_factor" json:"frictionFactor"`
	FrictionConverged bool    `gorm:"column:friction_converged" json:"frictionConverged"`
	PumpCount         int     `gorm:"column:pump_count" json:"pumpCount"`
}

func (ComputationRun) TableName() string { return "computation_runs" }

type PumpPlacement struct {
	ID       int64   `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	RunID    int64   `gorm:"column:run_id;index" json:"runId"`
	Position float64 `gorm:"column:position" json:"position"`
	Head     float64 `gorm:"column:head" json:"head"`
	Solved   bool    `gorm:"column:solved" json:"solved"`
}

func (PumpPlacement) TableName() string { return "pump_placements" }
