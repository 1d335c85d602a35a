package service

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/xuri/excelize/v2"

	"pipecalc/hydraulic"
	"pipecalc/model"
	"pipecalc/pkg/logger"
)

// ExportRun recomputes the profile of a stored run and writes it to an XLSX
// workbook under dir, returning the file path. Computation is deterministic,
// so replaying the stored parameters reproduces the profile exactly; a
// boundary run replays as a backward run over its resolved pumps, which yields
// the identical profile because every insertion preserves the far end.
func (s *Service) ExportRun(runID int64, dir string) (string, error) {
	var run model.ComputationRun
	if err := s.db.First(&run, runID).Error; err != nil {
		return "", fmt.Errorf("load run %d: %w", runID, err)
	}

	terrain, err := s.terrain(run.TerrainID)
	if err != nil {
		return "", err
	}

	var placements []model.PumpPlacement
	if err = s.db.Where("run_id = ?", runID).Order("position ASC").Find(&placements).Error; err != nil {
		return "", err
	}

	fluid := hydraulic.Fluid{Density: run.Density, Viscosity: run.Viscosity, Velocity: run.Velocity}
	pipe := hydraulic.Pipe{Diameter: run.Diameter, Roughness: run.Roughness}

	var res hydraulic.Result
	switch run.Mode {
	case ModeForward:
		res, err = hydraulic.ForwardProfile(terrain, fluid, pipe, run.InitialHead, run.SafetyMargin, run.PumpHead, run.ExtraPoints)
	case ModeBackward, ModeBoundary:
		pumps := make([]hydraulic.Pump, len(placements))
		for i, pl := range placements {
			pumps[i] = hydraulic.Pump{Position: pl.Position, Head: pl.Head}
		}
		res, err = hydraulic.BackwardProfile(terrain, fluid, pipe, run.FinalHead, pumps)
	default:
		return "", fmt.Errorf("run %d has unknown mode %q", runID, run.Mode)
	}
	if err != nil {
		return "", fmt.Errorf("replay run %d: %w", runID, err)
	}

	if err = os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}
	path := filepath.Join(dir, fmt.Sprintf("run_%d.xlsx", runID))
	if err = writeRunWorkbook(path, terrain, res); err != nil {
		return "", err
	}

	logger.Logger.Infof("exported run %d to %s", runID, path)

	return path, nil
}

func writeRunWorkbook(path string, terrain hydraulic.Terrain, res hydraulic.Result) error {
	wb := excelize.NewFile()
	defer wb.Close()

	const profileSheet = "Profile"
	wb.SetSheetName(wb.GetSheetName(0), profileSheet)

	xs, heads := res.Profile.Polyline()
	_ = wb.SetCellValue(profileSheet, "A1", "distance_m")
	_ = wb.SetCellValue(profileSheet, "B1", "head_m")
	for i := range xs {
		cellA, _ := excelize.CoordinatesToCellName(1, i+2)
		cellB, _ := excelize.CoordinatesToCellName(2, i+2)
		_ = wb.SetCellValue(profileSheet, cellA, xs[i])
		_ = wb.SetCellValue(profileSheet, cellB, heads[i])
	}

	const terrainSheet = "Terrain"
	if _, err := wb.NewSheet(terrainSheet); err != nil {
		return err
	}
	_ = wb.SetCellValue(terrainSheet, "A1", "distance_m")
	_ = wb.SetCellValue(terrainSheet, "B1", "elevation_m")
	for i := range terrain.X {
		cellA, _ := excelize.CoordinatesToCellName(1, i+2)
		cellB, _ := excelize.CoordinatesToCellName(2, i+2)
		_ = wb.SetCellValue(terrainSheet, cellA, terrain.X[i])
		_ = wb.SetCellValue(terrainSheet, cellB, terrain.Z[i])
	}

	const pumpSheet = "Pumps"
	if _, err := wb.NewSheet(pumpSheet); err != nil {
		return err
	}
	_ = wb.SetCellValue(pumpSheet, "A1", "position_m")
	_ = wb.SetCellValue(pumpSheet, "B1", "head_m")
	for i, pm := range res.Pumps {
		cellA, _ := excelize.CoordinatesToCellName(1, i+2)
		cellB, _ := excelize.CoordinatesToCellName(2, i+2)
		_ = wb.SetCellValue(pumpSheet, cellA, pm.Position)
		_ = wb.SetCellValue(pumpSheet, cellB, pm.Head)
	}

	return wb.SaveAs(path)
}
