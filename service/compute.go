package service

import (
	"fmt"
	"time"

	"pipecalc/hydraulic"
	"pipecalc/model"
	"pipecalc/pkg/logger"
)

// RunForward computes the forward profile with automatic pump insertion,
// persists the run and its pump placements, and returns the rendered result.
func (s *Service) RunForward(p ForwardParams) (*RunResult, error) {
	terrain, err := s.terrain(p.TerrainID)
	if err != nil {
		return nil, err
	}

	res, err := hydraulic.ForwardProfile(
		terrain,
		hydraulic.Fluid{Density: p.Fluid.Density, Viscosity: p.Fluid.Viscosity, Velocity: p.Fluid.Velocity},
		hydraulic.Pipe{Diameter: p.Pipe.Diameter, Roughness: p.Pipe.Roughness},
		p.InitialHead, p.SafetyMargin, p.PumpHead, p.ExtraPoints,
	)
	if err != nil {
		return nil, err
	}

	run := model.ComputationRun{
		TerrainID:    p.TerrainID,
		Mode:         ModeForward,
		CreatedAt:    time.Now(),
		Density:      p.Fluid.Density,
		Viscosity:    p.Fluid.Viscosity,
		Velocity:     p.Fluid.Velocity,
		Diameter:     p.Pipe.Diameter,
		Roughness:    p.Pipe.Roughness,
		InitialHead:  p.InitialHead,
		SafetyMargin: p.SafetyMargin,
		PumpHead:     p.PumpHead,
		ExtraPoints:  p.ExtraPoints,
	}

	return s.persistRun(&run, terrain, res, nil)
}

// RunBackward computes the profile anchored at a known final head with
// caller-supplied known-head pumps.
func (s *Service) RunBackward(p BackwardParams) (*RunResult, error) {
	terrain, err := s.terrain(p.TerrainID)
	if err != nil {
		return nil, err
	}

	pumps := pumpSpecs(p.Pumps)
	res, err := hydraulic.BackwardProfile(
		terrain,
		hydraulic.Fluid{Density: p.Fluid.Density, Viscosity: p.Fluid.Viscosity, Velocity: p.Fluid.Velocity},
		hydraulic.Pipe{Diameter: p.Pipe.Diameter, Roughness: p.Pipe.Roughness},
		p.FinalHead, pumps,
	)
	if err != nil {
		return nil, err
	}

	run := model.ComputationRun{
		TerrainID: p.TerrainID,
		Mode:      ModeBackward,
		CreatedAt: time.Now(),
		Density:   p.Fluid.Density,
		Viscosity: p.Fluid.Viscosity,
		Velocity:  p.Fluid.Velocity,
		Diameter:  p.Pipe.Diameter,
		Roughness: p.Pipe.Roughness,
		FinalHead: p.FinalHead,
	}

	return s.persistRun(&run, terrain, res, nil)
}

// RunBoundary solves the head of the single unknown pump so both boundary
// pressures hold, and persists the fully resolved pump list. The solved pump
// is flagged in the stored placements.
func (s *Service) RunBoundary(p BoundaryParams) (*RunResult, error) {
	terrain, err := s.terrain(p.TerrainID)
	if err != nil {
		return nil, err
	}

	pumps := pumpSpecs(p.Pumps)
	res, err := hydraulic.BoundaryConstrainedProfile(
		terrain,
		hydraulic.Fluid{Density: p.Fluid.Density, Viscosity: p.Fluid.Viscosity, Velocity: p.Fluid.Velocity},
		hydraulic.Pipe{Diameter: p.Pipe.Diameter, Roughness: p.Pipe.Roughness},
		p.InitialHead, p.FinalHead, pumps,
	)
	if err != nil {
		return nil, err
	}

	run := model.ComputationRun{
		TerrainID:   p.TerrainID,
		Mode:        ModeBoundary,
		CreatedAt:   time.Now(),
		Density:     p.Fluid.Density,
		Viscosity:   p.Fluid.Viscosity,
		Velocity:    p.Fluid.Velocity,
		Diameter:    p.Pipe.Diameter,
		Roughness:   p.Pipe.Roughness,
		InitialHead: p.InitialHead,
		FinalHead:   p.FinalHead,
	}

	// The solved pump sits last in the resolved list.
	solved := map[int]bool{len(res.Pumps) - 1: true}

	return s.persistRun(&run, terrain, res, solved)
}

// EndState computes the outlet condition of a single pipe run with a diameter
// change. Pure pass-through; nothing is persisted.
func (s *Service) EndState(p EndStateParams) (*hydraulic.EndState, error) {
	state, err := hydraulic.PipeEndState(
		hydraulic.EndStateFluid{
			Pressure:  p.Pressure,
			Velocity:  p.Velocity,
			Density:   p.Density,
			Elevation: p.Elevation,
			Viscosity: p.Viscosity,
		},
		hydraulic.EndStatePipe{
			InletDiameter:   p.InletDiameter,
			OutletDiameter:  p.OutletDiameter,
			Length:          p.Length,
			OutletElevation: p.OutletElevation,
			Roughness:       p.Roughness,
		},
	)
	if err != nil {
		return nil, err
	}
	if !state.FrictionConverged {
		logger.Logger.Warnf("colebrook iteration did not converge for Re=%.0f, using last iterate", state.Reynolds)
	}

	return &state, nil
}

func (s *Service) GetRunHistory(terrainID int64) ([]RunSummary, error) {
	query := s.db.Model(&model.ComputationRun{}).Order("created_at DESC")
	if terrainID > 0 {
		query = query.Where("terrain_id = ?", terrainID)
	}

	var runs []model.ComputationRun
	if err := query.Find(&runs).Error; err != nil {
		logger.Logger.Errorf("list computation runs failed: %v", err)
		return nil, err
	}

	summaries := make([]RunSummary, len(runs))
	for i, r := range runs {
		summaries[i] = RunSummary{
			RunID:             r.ID,
			TerrainID:         r.TerrainID,
			Mode:              r.Mode,
			CreatedAt:         r.CreatedAt.Format(time.DateTime),
			PumpCount:         r.PumpCount,
			ReynoldsNumber:    r.ReynoldsNumber,
			FrictionFactor:    r.FrictionFactor,
			FrictionConverged: r.FrictionConverged,
		}
	}

	return summaries, nil
}

// persistRun writes the run record and its pump placements, then renders the
// result DTO. solved marks indices of pumps whose head was computed rather
// than supplied.
func (s *Service) persistRun(run *model.ComputationRun, terrain hydraulic.Terrain, res hydraulic.Result, solved map[int]bool) (*RunResult, error) {
	run.ReynoldsNumber = res.Reynolds
	run.FrictionFactor = res.Friction
	run.FrictionConverged = res.FrictionConverged
	run.PumpCount = len(res.Pumps)

	if !res.FrictionConverged {
		logger.Logger.Warnf("colebrook iteration did not converge for Re=%.0f, using last iterate", res.Reynolds)
	}

	tx := s.db.Begin()
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
		}
	}()

	if err := tx.Create(run).Error; err != nil {
		tx.Rollback()
		return nil, fmt.Errorf("create computation run: %w", err)
	}

	if len(res.Pumps) > 0 {
		placements := make([]model.PumpPlacement, len(res.Pumps))
		for i, pm := range res.Pumps {
			placements[i] = model.PumpPlacement{
				RunID:    run.ID,
				Position: pm.Position,
				Head:     pm.Head,
				Solved:   solved[i],
			}
		}
		if err := tx.Create(&placements).Error; err != nil {
			tx.Rollback()
			return nil, fmt.Errorf("create pump placements: %w", err)
		}
	}

	if err := tx.Commit().Error; err != nil {
		return nil, fmt.Errorf("commit computation run: %w", err)
	}

	xs, heads := res.Profile.Polyline()
	dto := &RunResult{
		RunID:             run.ID,
		Mode:              run.Mode,
		X:                 xs,
		Head:              heads,
		TerrainX:          terrain.X,
		TerrainZ:          terrain.Z,
		Pumps:             make([]PumpDTO, len(res.Pumps)),
		ReynoldsNumber:    res.Reynolds,
		FrictionFactor:    res.Friction,
		FrictionConverged: res.FrictionConverged,
	}
	for i, pm := range res.Pumps {
		dto.Pumps[i] = PumpDTO{Position: pm.Position, Head: pm.Head, Solved: solved[i]}
	}

	return dto, nil
}
